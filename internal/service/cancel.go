package service

import (
	"context"
	"sync"
)

// cancelRegistry tracks the cancel function of every in-flight run so a
// cancellation request can reach the executing goroutine.
type cancelRegistry struct {
	mu      sync.Mutex
	cancels map[string]context.CancelFunc
}

func newCancelRegistry() *cancelRegistry {
	return &cancelRegistry{cancels: make(map[string]context.CancelFunc)}
}

func (r *cancelRegistry) register(runID string, cancel context.CancelFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cancels[runID] = cancel
}

// signal cancels the run's context and removes the entry. Returns false when
// the run has no registered context, which covers both unknown runs and runs
// that already finished or were already signaled.
func (r *cancelRegistry) signal(runID string) bool {
	r.mu.Lock()
	cancel, ok := r.cancels[runID]
	delete(r.cancels, runID)
	r.mu.Unlock()
	if !ok {
		return false
	}
	cancel()
	return true
}

func (r *cancelRegistry) remove(runID string) {
	r.mu.Lock()
	delete(r.cancels, runID)
	r.mu.Unlock()
}
