package health

// tableListLimit caps the number of table names in the diagnostic report.
const tableListLimit = 10

// Service builds the diagnostic report. The configured flags mirror whether
// DATABASE_URL / DATABASE_NAME were set, independent of whether the
// connection actually works.
type Service struct {
	repo           Repository
	urlConfigured  bool
	nameConfigured bool
}

func NewService(repo Repository, urlConfigured, nameConfigured bool) *Service {
	return &Service{repo: repo, urlConfigured: urlConfigured, nameConfigured: nameConfigured}
}

// Check probes the database and reports the outcome as display strings.
func (s *Service) Check() Report {
	rep := Report{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if s.repo.Available() {
		if err := s.repo.Ping(); err != nil {
			rep.Database = "❌ Error: " + truncate(err.Error(), 50)
		} else {
			rep.Database = "✅ Available"
			rep.ConnectionStatus = "Connected"
			tables, err := s.repo.Tables(tableListLimit)
			if err != nil {
				rep.Database = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
			} else {
				rep.Collections = tables
				rep.Database = "✅ Connected & Working"
			}
		}
	}

	rep.DatabaseURL = setFlag(s.urlConfigured)
	rep.DatabaseName = setFlag(s.nameConfigured)
	return rep
}

func setFlag(configured bool) string {
	if configured {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
