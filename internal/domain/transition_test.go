package domain

import "testing"

var allStatuses = []RunStatus{
	RunStatusQueued,
	RunStatusRunning,
	RunStatusSucceeded,
	RunStatusFailed,
	RunStatusCanceled,
}

func TestDefaultTransitionTable(t *testing.T) {
	policy := DefaultTransitionPolicy()

	allowed := map[[2]RunStatus]bool{
		{RunStatusQueued, RunStatusRunning}:    true,
		{RunStatusQueued, RunStatusCanceled}:   true,
		{RunStatusRunning, RunStatusSucceeded}: true,
		{RunStatusRunning, RunStatusFailed}:    true,
		{RunStatusRunning, RunStatusCanceled}:  true,
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			want := allowed[[2]RunStatus{from, to}]
			if got := policy.CanTransition(from, to); got != want {
				t.Fatalf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestTerminalStatusesHaveNoTargets(t *testing.T) {
	policy := DefaultTransitionPolicy()

	for _, status := range allStatuses {
		if !status.Terminal() {
			continue
		}
		if targets := policy.AllowedTargets(status); len(targets) != 0 {
			t.Fatalf("expected no targets for %s, got %v", status, targets)
		}
	}
}

func TestCanTransitionUnknownStatus(t *testing.T) {
	policy := DefaultTransitionPolicy()

	if policy.CanTransition("paused", RunStatusRunning) {
		t.Fatal("unknown source status should not transition")
	}
	if policy.CanTransition(RunStatusQueued, "paused") {
		t.Fatal("unknown target status should not transition")
	}
	if targets := policy.AllowedTargets("paused"); len(targets) != 0 {
		t.Fatalf("expected no targets for unknown status, got %v", targets)
	}
}

func TestExtendPreservesDefaults(t *testing.T) {
	policy := DefaultTransitionPolicy()
	extended := policy.Extend(TransitionRule{
		From: RunStatusQueued,
		To:   []RunStatus{RunStatusFailed},
	})

	// Every default transition still holds.
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			if policy.CanTransition(from, to) && !extended.CanTransition(from, to) {
				t.Fatalf("extension removed default transition %s -> %s", from, to)
			}
		}
	}

	if !extended.CanTransition(RunStatusQueued, RunStatusFailed) {
		t.Fatal("extended rule not applied")
	}

	// The receiver must be unaffected.
	if policy.CanTransition(RunStatusQueued, RunStatusFailed) {
		t.Fatal("Extend mutated the original policy")
	}
}

func TestExtendDeduplicates(t *testing.T) {
	extended := DefaultTransitionPolicy().Extend(TransitionRule{
		From: RunStatusQueued,
		To:   []RunStatus{RunStatusRunning, RunStatusRunning},
	})

	targets := extended.AllowedTargets(RunStatusQueued)
	seen := map[RunStatus]int{}
	for _, target := range targets {
		seen[target]++
	}
	if seen[RunStatusRunning] != 1 {
		t.Fatalf("duplicate targets after extend: %v", targets)
	}
}

func TestTerminal(t *testing.T) {
	cases := map[RunStatus]bool{
		RunStatusQueued:    false,
		RunStatusRunning:   false,
		RunStatusSucceeded: true,
		RunStatusFailed:    true,
		RunStatusCanceled:  true,
	}
	for status, want := range cases {
		if got := status.Terminal(); got != want {
			t.Fatalf("%s.Terminal() = %v, want %v", status, got, want)
		}
	}
}
