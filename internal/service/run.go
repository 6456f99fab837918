package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/techtide/orchestrator/internal/domain"
	"github.com/techtide/orchestrator/internal/invoker"
	"github.com/techtide/orchestrator/internal/store"
)

// ExecuteAgent accepts a run for the given agent and tenant, persists it as
// queued, and starts execution in the background. The returned run is the
// queued snapshot; callers poll or list events to observe progress.
func (s *Service) ExecuteAgent(ctx context.Context, tenantID, agentID string, input map[string]any) (*domain.Run, error) {
	if !s.agents.Exists(agentID) {
		return nil, &domain.AgentNotFoundError{AgentID: agentID}
	}

	if s.guard != nil {
		allowed, reason, err := s.guard.Authorize(ctx, agentID, tenantID)
		if err != nil {
			return nil, fmt.Errorf("failed to authorize execution: %w", err)
		}
		if !allowed {
			return nil, &domain.ExecutionBlockedError{AgentID: agentID, Reason: reason}
		}
	}

	now := time.Now().UTC()
	run := &domain.Run{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		AgentID:   agentID,
		Status:    domain.RunStatusQueued,
		Input:     input,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.CreateRun(ctx, run); err != nil {
		return nil, err
	}

	// The run context is detached from the request: the caller returning
	// must not abort the execution. Only an explicit cancellation does.
	runCtx, cancel := context.WithCancel(context.Background())
	s.cancels.register(run.ID, cancel)

	s.metrics.RunStarted(agentID)
	go s.executeAsync(runCtx, run)

	snapshot := *run
	return &snapshot, nil
}

// executeAsync drives a run from queued to a terminal status. Store writes
// use a background context so a cancellation never aborts the bookkeeping;
// the run context only gates the invocation and the cancellation checks.
func (s *Service) executeAsync(ctx context.Context, run *domain.Run) {
	defer s.cancels.remove(run.ID)
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("panic during run execution",
				zap.String("run_id", run.ID),
				zap.Any("panic", r))
			finished := time.Now().UTC()
			message := fmt.Sprintf("internal error: %v", r)
			if s.applyTerminal(run, store.StatusUpdate{
				Status:     domain.RunStatusFailed,
				Error:      message,
				FinishedAt: &finished,
			}) {
				var duration time.Duration
				if run.StartedAt != nil {
					duration = finished.Sub(*run.StartedAt)
				}
				s.recordEvent(context.Background(), run, domain.EventExecutionFailed, map[string]any{
					"error":       message,
					"duration_ms": duration.Milliseconds(),
				})
				s.metrics.RunCompleted(string(domain.RunStatusFailed), duration)
			}
		}
	}()

	// A cancellation that raced ahead of scheduling aborts before the run
	// ever starts: no running transition, no started_at.
	if ctx.Err() != nil {
		s.markCanceled(run, "pre_start_abort")
		return
	}

	started := time.Now().UTC()
	updated, err := s.store.UpdateRunStatus(context.Background(), run.ID, store.StatusUpdate{
		Status:      domain.RunStatusRunning,
		StartedAt:   &started,
		AllowedFrom: s.transitionSources(domain.RunStatusRunning),
	})
	if err != nil {
		var invalid *domain.InvalidTransitionError
		if errors.As(err, &invalid) {
			// The cancel endpoint finalized the run first.
			s.logger.Debug("run no longer queued, skipping execution",
				zap.String("run_id", run.ID),
				zap.String("status", string(invalid.From)))
			return
		}
		s.logger.Error("failed to mark run as running, abandoning execution",
			zap.String("run_id", run.ID),
			zap.Error(err))
		return
	}
	*run = *updated

	s.recordEvent(context.Background(), run, domain.EventExecutionStarted, map[string]any{
		"agent_id": run.AgentID,
	})

	if ctx.Err() != nil {
		s.markCanceled(run, "canceled before invocation")
		return
	}

	result, err := s.invoker.Invoke(ctx, invoker.Request{
		RunID:    run.ID,
		AgentID:  run.AgentID,
		TenantID: run.TenantID,
		Input:    run.Input,
	})

	// A cancellation that lands while the invoker runs wins over whatever
	// the invoker produced: the result is discarded.
	if ctx.Err() != nil {
		s.markCanceled(run, "canceled during invocation")
		return
	}

	finished := time.Now().UTC()
	duration := finished.Sub(started)
	if err != nil {
		s.logger.Error("agent invocation faulted",
			zap.String("run_id", run.ID),
			zap.String("agent_id", run.AgentID),
			zap.Error(err))
		if s.applyTerminal(run, store.StatusUpdate{
			Status:     domain.RunStatusFailed,
			Error:      err.Error(),
			FinishedAt: &finished,
		}) {
			s.recordEvent(context.Background(), run, domain.EventExecutionFailed, map[string]any{
				"error":       err.Error(),
				"duration_ms": duration.Milliseconds(),
			})
			s.metrics.RunCompleted(string(domain.RunStatusFailed), duration)
		}
		return
	}

	// The terminal status lands first; the invoker's trace and the summary
	// event follow only once the result is committed.
	if result.Success {
		if s.applyTerminal(run, store.StatusUpdate{
			Status:     domain.RunStatusSucceeded,
			Output:     result.Output,
			FinishedAt: &finished,
		}) {
			s.replayInvokerEvents(run, result.Events)
			s.recordEvent(context.Background(), run, domain.EventExecutionCompleted, map[string]any{
				"agent_id":    run.AgentID,
				"duration_ms": duration.Milliseconds(),
			})
			s.metrics.RunCompleted(string(domain.RunStatusSucceeded), duration)
		}
		return
	}

	if s.applyTerminal(run, store.StatusUpdate{
		Status:     domain.RunStatusFailed,
		Error:      result.Error,
		FinishedAt: &finished,
	}) {
		s.replayInvokerEvents(run, result.Events)
		s.recordEvent(context.Background(), run, domain.EventExecutionFailed, map[string]any{
			"error":       result.Error,
			"duration_ms": duration.Milliseconds(),
		})
		s.metrics.RunCompleted(string(domain.RunStatusFailed), duration)
	}
}

func (s *Service) replayInvokerEvents(run *domain.Run, events []invoker.Event) {
	for _, event := range events {
		s.recordEvent(context.Background(), run, event.Type, event.Payload)
	}
}

// markCanceled finalizes a run after its context was canceled. The cancel
// endpoint usually writes the terminal status first, so an already-terminal
// run is left alone.
func (s *Service) markCanceled(run *domain.Run, reason string) {
	current, err := s.store.GetRun(context.Background(), run.ID)
	if err == nil && current != nil && current.Status.Terminal() {
		return
	}

	finished := time.Now().UTC()
	if s.applyTerminal(run, store.StatusUpdate{
		Status:     domain.RunStatusCanceled,
		FinishedAt: &finished,
	}) {
		s.recordEvent(context.Background(), run, domain.EventExecutionCanceled, map[string]any{
			"reason": reason,
		})
		var duration time.Duration
		if run.StartedAt != nil {
			duration = finished.Sub(*run.StartedAt)
		}
		s.metrics.RunCompleted(string(domain.RunStatusCanceled), duration)
	}
}

// transitionSources returns every status from which the policy permits a
// transition to target.
func (s *Service) transitionSources(target domain.RunStatus) []domain.RunStatus {
	all := []domain.RunStatus{
		domain.RunStatusQueued,
		domain.RunStatusRunning,
		domain.RunStatusSucceeded,
		domain.RunStatusFailed,
		domain.RunStatusCanceled,
	}
	var sources []domain.RunStatus
	for _, from := range all {
		if s.transitions.CanTransition(from, target) {
			sources = append(sources, from)
		}
	}
	return sources
}

// applyTerminal writes a terminal status, retrying transient store failures
// with doubling backoff and jitter. The write carries the policy's allowed
// source statuses so a transition committed concurrently (a cancel racing
// the result) makes the write a no-op instead of overwriting it. Returns
// false when the write never landed; on retry exhaustion the run is stuck in
// running until an operator intervenes, which is why that path logs at error
// with the full context.
func (s *Service) applyTerminal(run *domain.Run, update store.StatusUpdate) bool {
	if !s.transitions.CanTransition(run.Status, update.Status) {
		s.logger.Debug("skipping terminal write, transition not allowed",
			zap.String("run_id", run.ID),
			zap.String("from", string(run.Status)),
			zap.String("to", string(update.Status)))
		return false
	}
	update.AllowedFrom = s.transitionSources(update.Status)

	ctx := context.Background()
	delay := s.opts.TerminalWriteBaseDelay
	var lastErr error

	for attempt := 0; attempt <= s.opts.TerminalWriteRetries; attempt++ {
		if attempt > 0 {
			wait := delay + time.Duration(rand.Float64()*0.3*float64(delay))
			s.logger.Warn("retrying terminal status write",
				zap.String("run_id", run.ID),
				zap.String("status", string(update.Status)),
				zap.Int("attempt", attempt+1),
				zap.Duration("backoff", wait),
				zap.Error(lastErr))
			s.metrics.TerminalWriteRetried()
			time.Sleep(wait)
			delay *= 2
		}

		updated, err := s.store.UpdateRunStatus(ctx, run.ID, update)
		if err == nil {
			*run = *updated
			return true
		}
		lastErr = err

		var notFound *domain.RunNotFoundError
		if errors.As(err, &notFound) {
			s.logger.Error("run vanished before terminal write",
				zap.String("run_id", run.ID),
				zap.String("status", string(update.Status)))
			return false
		}
		var invalid *domain.InvalidTransitionError
		if errors.As(err, &invalid) {
			s.logger.Debug("terminal write lost to a concurrent transition",
				zap.String("run_id", run.ID),
				zap.String("current", string(invalid.From)),
				zap.String("to", string(update.Status)))
			return false
		}
	}

	s.logger.Error("terminal status write exhausted all retries, run is stuck in running",
		zap.String("run_id", run.ID),
		zap.String("status", string(update.Status)),
		zap.Int("attempts", s.opts.TerminalWriteRetries+1),
		zap.Error(lastErr))
	return false
}

// RequestCancellation signals the executing goroutine of a run. Returns true
// when a live execution context was signaled, false when the run is unknown,
// already finished, or was already signaled.
func (s *Service) RequestCancellation(runID string) bool {
	return s.cancels.signal(runID)
}

// CancelRun transitions a run to canceled and signals its execution if one
// is in flight. Canceling a terminal run fails with InvalidTransitionError.
func (s *Service) CancelRun(ctx context.Context, runID string) (*domain.Run, error) {
	run, err := s.store.GetRun(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to load run: %w", err)
	}
	if run == nil {
		return nil, &domain.RunNotFoundError{RunID: runID}
	}
	if !s.transitions.CanTransition(run.Status, domain.RunStatusCanceled) {
		return nil, &domain.InvalidTransitionError{From: run.Status, To: domain.RunStatusCanceled}
	}

	s.cancels.signal(runID)

	finished := time.Now().UTC()
	updated, err := s.store.UpdateRunStatus(ctx, runID, store.StatusUpdate{
		Status:      domain.RunStatusCanceled,
		FinishedAt:  &finished,
		AllowedFrom: s.transitionSources(domain.RunStatusCanceled),
	})
	if err != nil {
		return nil, err
	}

	s.recordEvent(ctx, updated, domain.EventExecutionCanceled, map[string]any{
		"reason": "canceled by user",
	})
	return updated, nil
}

// GetRun loads a run.
func (s *Service) GetRun(ctx context.Context, runID string) (*domain.Run, error) {
	run, err := s.store.GetRun(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to load run: %w", err)
	}
	if run == nil {
		return nil, &domain.RunNotFoundError{RunID: runID}
	}
	return run, nil
}

// ListRuns returns the most recent runs for a tenant.
func (s *Service) ListRuns(ctx context.Context, tenantID string, limit int) ([]domain.Run, error) {
	if limit <= 0 || limit > s.opts.ListLimit {
		limit = s.opts.ListLimit
	}
	return s.store.ListRuns(ctx, tenantID, limit)
}

// ListRunEvents returns a run's audit log in insertion order.
func (s *Service) ListRunEvents(ctx context.Context, runID string) ([]domain.RunEvent, error) {
	run, err := s.store.GetRun(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to load run: %w", err)
	}
	if run == nil {
		return nil, &domain.RunNotFoundError{RunID: runID}
	}
	return s.store.ListEvents(ctx, runID)
}
