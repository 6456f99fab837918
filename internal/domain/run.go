package domain

import (
	"encoding/json"
	"time"
)

// Run represents a single tracked execution attempt of an agent.
type Run struct {
	ID         string         `json:"id"`
	TenantID   string         `json:"tenant_id"`
	AgentID    string         `json:"agent_id"`
	Status     RunStatus      `json:"status"`
	Input      map[string]any `json:"input"`
	Output     map[string]any `json:"output,omitempty"`
	Error      string         `json:"error,omitempty"`
	StartedAt  *time.Time     `json:"started_at,omitempty"`
	FinishedAt *time.Time     `json:"finished_at,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// RunEvent is an immutable audit record appended to a run's event log.
type RunEvent struct {
	ID        string          `json:"id"`
	RunID     string          `json:"run_id"`
	TenantID  string          `json:"tenant_id"`
	EventType string          `json:"event_type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// Event types appended by the orchestrator at lifecycle checkpoints.
const (
	EventExecutionStarted   = "execution_started"
	EventExecutionCompleted = "execution_completed"
	EventExecutionFailed    = "execution_failed"
	EventExecutionCanceled  = "execution_canceled"
)
