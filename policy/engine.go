// Package policy evaluates execution guardrails with OPA.
package policy

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/rego"
)

// Engine evaluates the execution policy for agent runs.
type Engine struct {
	query rego.PreparedEvalQuery
}

// NewEngine compiles the given policy content.
func NewEngine(ctx context.Context, policyContent string) (*Engine, error) {
	r := rego.New(
		rego.Query("data.execution_policy.decision"),
		rego.Module("execution_policy.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Engine{query: query}, nil
}

// Authorize decides whether a tenant may execute an agent. The policy
// returns either a decision string or an object {decision, reason}.
func (e *Engine) Authorize(ctx context.Context, agentID, tenantID string) (bool, string, error) {
	input := map[string]any{
		"agent_id":  agentID,
		"tenant_id": tenantID,
	}

	results, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return false, "", fmt.Errorf("failed to evaluate policy: %w", err)
	}

	// No matching rule means the policy carries no default; treat as allow.
	if len(results) == 0 || len(results[0].Expressions) == 0 {
		return true, "default", nil
	}

	switch val := results[0].Expressions[0].Value.(type) {
	case string:
		return val == "allow", "", nil
	case map[string]any:
		decision, _ := val["decision"].(string)
		reason, _ := val["reason"].(string)
		return decision == "allow", reason, nil
	default:
		return true, "unexpected return type", nil
	}
}

// DefaultPolicy is the policy content used when none is configured.
const DefaultPolicy = `
package execution_policy

default decision = "allow"

# Nothing runs for an explicitly suspended tenant.
decision = "block" {
	input.tenant_id == "suspended"
}

# The lead agent is reserved for the default tenant.
decision = "block" {
	input.agent_id == "ceo"
	input.tenant_id != "default"
}
`
