package invoker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/techtide/orchestrator/internal/catalog"
	"github.com/techtide/orchestrator/internal/llm"
)

// LLMInvoker runs an agent as a single completion against the configured
// provider, using the agent's catalog definition as the system prompt.
type LLMInvoker struct {
	registry *catalog.Registry
	client   llm.Client
	timeout  time.Duration
	logger   *zap.Logger
}

// NewLLMInvoker builds an invoker. timeout bounds a single agent invocation;
// zero means 120s.
func NewLLMInvoker(registry *catalog.Registry, client llm.Client, timeout time.Duration, logger *zap.Logger) *LLMInvoker {
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LLMInvoker{registry: registry, client: client, timeout: timeout, logger: logger}
}

// Invoke executes the agent. A timeout is reported as a failed result, not an
// error: the invocation completed, the agent just ran out of time. Caller
// cancellation is surfaced as an error so the caller can apply its own
// cancellation semantics.
func (inv *LLMInvoker) Invoke(ctx context.Context, req Request) (*Result, error) {
	agent, ok := inv.registry.ByID(req.AgentID)
	if !ok {
		return nil, fmt.Errorf("unknown agent: %s", req.AgentID)
	}

	ctx, cancel := context.WithTimeout(ctx, inv.timeout)
	defer cancel()

	prompt := renderTask(req.Input)
	events := []Event{{
		Type:      "invocation_started",
		Timestamp: time.Now().UTC(),
		Payload:   map[string]any{"agent_id": agent.ID, "provider": inv.client.Provider()},
	}}

	completion, err := inv.client.Complete(ctx, llm.Request{
		System: catalog.RenderSystemPrompt(agent),
		Prompt: prompt,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			inv.logger.Warn("agent invocation timed out",
				zap.String("run_id", req.RunID),
				zap.String("agent_id", agent.ID),
				zap.Duration("timeout", inv.timeout))
			events = append(events, Event{
				Type:      "invocation_timed_out",
				Timestamp: time.Now().UTC(),
				Payload:   map[string]any{"timeout_seconds": inv.timeout.Seconds()},
			})
			return &Result{
				Success: false,
				Error:   fmt.Sprintf("agent %s timed out after %s", agent.ID, inv.timeout),
				Events:  events,
			}, nil
		}
		return nil, fmt.Errorf("agent invocation failed: %w", err)
	}

	events = append(events, Event{
		Type:      "invocation_completed",
		Timestamp: time.Now().UTC(),
		Payload: map[string]any{
			"model":         completion.Model,
			"input_tokens":  completion.Usage.InputTokens,
			"output_tokens": completion.Usage.OutputTokens,
		},
	})

	return &Result{
		Success: true,
		Output: map[string]any{
			"text":  completion.Text,
			"model": completion.Model,
			"usage": map[string]any{
				"input_tokens":  completion.Usage.InputTokens,
				"output_tokens": completion.Usage.OutputTokens,
			},
		},
		Events: events,
	}, nil
}

// renderTask flattens the run input into the user prompt. A plain "prompt"
// key is passed through; anything else is serialized as the task payload.
func renderTask(input map[string]any) string {
	if input == nil {
		return "No task input was provided. Report what you would need to proceed."
	}
	if prompt, ok := input["prompt"].(string); ok && prompt != "" {
		return prompt
	}
	raw, err := json.Marshal(input)
	if err != nil {
		return fmt.Sprintf("%v", input)
	}
	return "Task input:\n" + string(raw)
}
