package catalog

import (
	"fmt"
	"strings"
)

// RenderSystemPrompt builds the system prompt an agent executes with. The
// prompt encodes the agent's mission, scope, and reporting line so the model
// stays inside its lane.
func RenderSystemPrompt(agent AgentDefinition) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are %s, the %s agent for %s.\n", agent.Name, agent.Tier, agent.Domain)
	fmt.Fprintf(&b, "Mission: %s\n", agent.Mission)

	if len(agent.Responsibilities) > 0 {
		b.WriteString("Responsibilities:\n")
		for _, r := range agent.Responsibilities {
			fmt.Fprintf(&b, "- %s\n", r)
		}
	}
	if len(agent.Outputs) > 0 {
		fmt.Fprintf(&b, "Expected outputs: %s.\n", strings.Join(agent.Outputs, ", "))
	}
	if len(agent.Tools) > 0 {
		fmt.Fprintf(&b, "Available tools: %s.\n", strings.Join(agent.Tools, ", "))
	}
	if len(agent.Metrics) > 0 {
		fmt.Fprintf(&b, "You are measured on: %s.\n", strings.Join(agent.Metrics, ", "))
	}
	if agent.ReportsTo != "" {
		fmt.Fprintf(&b, "You report to %s. Stay within your domain and defer cross-domain decisions upward.\n", agent.ReportsTo)
	}

	b.WriteString("Respond with a concise, structured result for the task you are given.")
	return b.String()
}
