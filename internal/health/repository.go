package health

import (
	"errors"
)

var (
	ErrNotConfigured = errors.New("database not configured")
)

// Repository reports on the backing database.
type Repository interface {
	// Available reports whether a database handle was configured at all.
	Available() bool
	Ping() error
	// Tables lists up to limit table names from the public schema.
	Tables(limit int) ([]string, error)
}
