package domain

import (
	"errors"
	"fmt"
)

// ErrPersistenceUnavailable indicates the backing store is unreachable or
// not configured. Wrap store connectivity failures with this sentinel.
var ErrPersistenceUnavailable = errors.New("persistence unavailable")

// AgentNotFoundError is returned when an agent id is unknown to the catalog.
type AgentNotFoundError struct {
	AgentID string
}

func (e *AgentNotFoundError) Error() string {
	return fmt.Sprintf("agent not found: %s", e.AgentID)
}

// RunNotFoundError is returned when a run id is unknown to the store.
type RunNotFoundError struct {
	RunID string
}

func (e *RunNotFoundError) Error() string {
	return fmt.Sprintf("run not found: %s", e.RunID)
}

// InvalidTransitionError is returned when a status change violates the
// transition policy.
type InvalidTransitionError struct {
	From RunStatus
	To   RunStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: %s -> %s", e.From, e.To)
}

// ExecutionBlockedError is returned when the execution guardrail policy
// rejects a request before any run is created.
type ExecutionBlockedError struct {
	AgentID string
	Reason  string
}

func (e *ExecutionBlockedError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("execution blocked for agent %s", e.AgentID)
	}
	return fmt.Sprintf("execution blocked for agent %s: %s", e.AgentID, e.Reason)
}
