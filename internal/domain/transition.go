package domain

// TransitionRule declares the allowed target statuses for a source status.
type TransitionRule struct {
	From RunStatus
	To   []RunStatus
}

// defaultTransitions is the canonical run state machine. Terminal statuses
// have no outgoing transitions.
var defaultTransitions = []TransitionRule{
	{From: RunStatusQueued, To: []RunStatus{RunStatusRunning, RunStatusCanceled}},
	{From: RunStatusRunning, To: []RunStatus{RunStatusSucceeded, RunStatusFailed, RunStatusCanceled}},
	{From: RunStatusSucceeded, To: nil},
	{From: RunStatusFailed, To: nil},
	{From: RunStatusCanceled, To: nil},
}

// TransitionPolicy validates run status transitions. The zero value is not
// usable; construct via DefaultTransitionPolicy or Extend.
type TransitionPolicy struct {
	allowed map[RunStatus][]RunStatus
}

// DefaultTransitionPolicy returns a policy holding the default rule table.
func DefaultTransitionPolicy() *TransitionPolicy {
	return newTransitionPolicy(defaultTransitions)
}

func newTransitionPolicy(rules []TransitionRule) *TransitionPolicy {
	allowed := make(map[RunStatus][]RunStatus, len(rules))
	for _, rule := range rules {
		for _, to := range rule.To {
			if !contains(allowed[rule.From], to) {
				allowed[rule.From] = append(allowed[rule.From], to)
			}
		}
		if _, ok := allowed[rule.From]; !ok {
			allowed[rule.From] = nil
		}
	}
	return &TransitionPolicy{allowed: allowed}
}

// CanTransition reports whether from -> to is permitted. Total over the
// full status-pair space; unknown pairs are simply rejected.
func (p *TransitionPolicy) CanTransition(from, to RunStatus) bool {
	return contains(p.allowed[from], to)
}

// AllowedTargets returns the permitted target statuses for from, in rule
// declaration order. Empty for terminal and unknown statuses.
func (p *TransitionPolicy) AllowedTargets(from RunStatus) []RunStatus {
	targets := p.allowed[from]
	out := make([]RunStatus, len(targets))
	copy(out, targets)
	return out
}

// Extend returns a new policy layering additional rules on top of this
// one. Existing rules are never removed or narrowed; the receiver is left
// untouched.
func (p *TransitionPolicy) Extend(rules ...TransitionRule) *TransitionPolicy {
	merged := make(map[RunStatus][]RunStatus, len(p.allowed))
	for from, to := range p.allowed {
		merged[from] = append([]RunStatus(nil), to...)
	}
	for _, rule := range rules {
		for _, to := range rule.To {
			if !contains(merged[rule.From], to) {
				merged[rule.From] = append(merged[rule.From], to)
			}
		}
	}
	return &TransitionPolicy{allowed: merged}
}

func contains(targets []RunStatus, status RunStatus) bool {
	for _, t := range targets {
		if t == status {
			return true
		}
	}
	return false
}
