package health

import (
	"database/sql"
)

// PostgresRepository implements Repository using Postgres. A nil db is
// valid and means the process runs without a database.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Available() bool {
	return r.db != nil
}

func (r *PostgresRepository) Ping() error {
	if r.db == nil {
		return ErrNotConfigured
	}
	return r.db.Ping()
}

func (r *PostgresRepository) Tables(limit int) ([]string, error) {
	if r.db == nil {
		return nil, ErrNotConfigured
	}
	rows, err := r.db.Query(`SELECT tablename FROM pg_catalog.pg_tables WHERE schemaname = 'public' ORDER BY tablename LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0, limit)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			continue
		}
		out = append(out, name)
	}
	return out, rows.Err()
}
