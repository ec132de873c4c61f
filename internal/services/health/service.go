package health

import "database/sql"

// Service encapsulates health-related checks.
type Service struct {
	DB *sql.DB
}

// NewService constructs a new health service. db may be nil when the
// process runs on in-memory storage.
func NewService(db *sql.DB) *Service {
	return &Service{DB: db}
}

// Status returns a simple health payload.
func (s *Service) Status() map[string]any {
	storage := "memory"
	if s.DB != nil {
		storage = "postgres"
		if err := s.DB.Ping(); err != nil {
			storage = "postgres_unavailable"
		}
	}
	return map[string]any{
		"ok":      true,
		"storage": storage,
	}
}
