// Package catalog holds the static registry of agents the dashboard can
// execute: one lead, ten coordinators, fifty workers.
package catalog

// AgentTier identifies an agent's level in the org hierarchy.
type AgentTier string

const (
	TierLead        AgentTier = "ceo"
	TierCoordinator AgentTier = "coordinator"
	TierWorker      AgentTier = "worker"
)

// AgentDefinition describes a single agent in the catalog.
type AgentDefinition struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Tier             AgentTier `json:"tier"`
	Domain           string    `json:"domain"`
	Mission          string    `json:"mission"`
	Responsibilities []string  `json:"responsibilities"`
	Outputs          []string  `json:"outputs"`
	Tools            []string  `json:"tools"`
	Metrics          []string  `json:"metrics"`
	ReportsTo        string    `json:"reports_to,omitempty"`
}

// Registry is an immutable view over the static agent definitions.
type Registry struct {
	lead         AgentDefinition
	coordinators []AgentDefinition
	workers      []AgentDefinition
	byID         map[string]AgentDefinition
}

// NewRegistry builds the registry from the static definitions.
func NewRegistry() *Registry {
	r := &Registry{
		lead:         leadAgent,
		coordinators: coordinatorAgents,
		workers:      workerAgents,
		byID:         make(map[string]AgentDefinition, 1+len(coordinatorAgents)+len(workerAgents)),
	}
	r.byID[leadAgent.ID] = leadAgent
	for _, a := range coordinatorAgents {
		r.byID[a.ID] = a
	}
	for _, a := range workerAgents {
		r.byID[a.ID] = a
	}
	return r
}

// Lead returns the top-level agent.
func (r *Registry) Lead() AgentDefinition { return r.lead }

// Coordinators returns the coordinator-tier agents.
func (r *Registry) Coordinators() []AgentDefinition {
	return append([]AgentDefinition(nil), r.coordinators...)
}

// Workers returns the worker-tier agents.
func (r *Registry) Workers() []AgentDefinition {
	return append([]AgentDefinition(nil), r.workers...)
}

// All returns every agent, lead first, then coordinators, then workers.
func (r *Registry) All() []AgentDefinition {
	all := make([]AgentDefinition, 0, len(r.byID))
	all = append(all, r.lead)
	all = append(all, r.coordinators...)
	all = append(all, r.workers...)
	return all
}

// ByID looks up an agent definition.
func (r *Registry) ByID(id string) (AgentDefinition, bool) {
	a, ok := r.byID[id]
	return a, ok
}

// Exists reports whether an agent id is known to the catalog.
func (r *Registry) Exists(id string) bool {
	_, ok := r.byID[id]
	return ok
}
