package health

import (
	"context"
	"time"
)

const pingTimeout = 2 * time.Second

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Service encapsulates health-related checks.
type Service struct {
	DB Pinger
}

// NewService constructs a health service. db may be nil when the CV store runs in memory.
func NewService(db Pinger) *Service {
	return &Service{DB: db}
}

// Report is the /health payload.
type Report struct {
	OK       bool   `json:"ok"`
	Store    string `json:"store"`
	Database string `json:"database,omitempty"`
}

// Status reports liveness and, when configured, database reachability.
func (s *Service) Status(ctx context.Context) Report {
	if s == nil || s.DB == nil {
		return Report{OK: true, Store: "memory"}
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := s.DB.PingContext(pingCtx); err != nil {
		return Report{OK: false, Store: "postgres", Database: "down"}
	}
	return Report{OK: true, Store: "postgres", Database: "up"}
}
