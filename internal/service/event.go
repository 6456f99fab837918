package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/techtide/orchestrator/internal/domain"
)

// recordEvent appends an audit event for a run. Event appends are best
// effort: failures are logged and swallowed, never retried, and never affect
// the run's status.
func (s *Service) recordEvent(ctx context.Context, run *domain.Run, eventType string, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("failed to marshal event payload",
			zap.String("run_id", run.ID),
			zap.String("event_type", eventType),
			zap.Error(err))
		return
	}

	event := &domain.RunEvent{
		ID:        uuid.New().String(),
		RunID:     run.ID,
		TenantID:  run.TenantID,
		EventType: eventType,
		Payload:   raw,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.AppendEvent(ctx, event); err != nil {
		s.logger.Error("failed to append run event",
			zap.String("run_id", run.ID),
			zap.String("event_type", eventType),
			zap.Error(err))
	}
}
