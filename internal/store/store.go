// Package store defines run persistence and its SQLite implementation.
package store

import (
	"context"
	"time"

	"github.com/techtide/orchestrator/internal/domain"
)

// StatusUpdate carries the mutable fields of a run status change. Nil and
// zero fields are left untouched.
type StatusUpdate struct {
	Status     domain.RunStatus
	Output     map[string]any
	Error      string
	StartedAt  *time.Time
	FinishedAt *time.Time

	// AllowedFrom restricts the update to runs currently in one of these
	// statuses. The check and the write are a single statement, so a
	// concurrent transition cannot slip between them. Empty means
	// unconditional.
	AllowedFrom []domain.RunStatus
}

// Store is the persistence boundary for runs and their event log.
type Store interface {
	// Run operations
	CreateRun(ctx context.Context, run *domain.Run) error
	GetRun(ctx context.Context, runID string) (*domain.Run, error)
	ListRuns(ctx context.Context, tenantID string, limit int) ([]domain.Run, error)
	UpdateRunStatus(ctx context.Context, runID string, update StatusUpdate) (*domain.Run, error)

	// Event operations
	AppendEvent(ctx context.Context, event *domain.RunEvent) error
	ListEvents(ctx context.Context, runID string) ([]domain.RunEvent, error)

	// Lifecycle
	Close() error
}
