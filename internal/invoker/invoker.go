// Package invoker executes an agent's work and reports the outcome.
package invoker

import (
	"context"
	"time"
)

// Request identifies the agent to run and the task it receives.
type Request struct {
	RunID    string
	AgentID  string
	TenantID string
	Input    map[string]any
}

// Event is a point-in-time observation emitted while the agent runs.
type Event struct {
	Type      string
	Timestamp time.Time
	Payload   map[string]any
}

// Result reports the outcome of an agent invocation. Success false means the
// agent ran but failed in a way it could report. A returned error from Invoke
// means the invocation itself faulted.
type Result struct {
	Success bool
	Output  map[string]any
	Error   string
	Events  []Event
}

// Invoker runs agents.
type Invoker interface {
	Invoke(ctx context.Context, req Request) (*Result, error)
}
