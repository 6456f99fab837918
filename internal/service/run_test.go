package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/techtide/orchestrator/internal/catalog"
	"github.com/techtide/orchestrator/internal/domain"
	"github.com/techtide/orchestrator/internal/invoker"
	"github.com/techtide/orchestrator/internal/store"
)

// memStore is an in-memory Store with failure hooks for exercising the
// retry and cancellation paths deterministically.
type memStore struct {
	mu     sync.Mutex
	runs   map[string]*domain.Run
	events []domain.RunEvent

	// failures[status] makes UpdateRunStatus to that status fail that many
	// times before succeeding.
	failures map[domain.RunStatus]int
	// updateAttempts counts UpdateRunStatus calls per status.
	updateAttempts map[domain.RunStatus]int
	// onRunning fires once after the run is marked running.
	onRunning func()
	// beforeUpdate[status] fires once before the next write of that status
	// is applied, outside the store lock.
	beforeUpdate map[domain.RunStatus]func()
}

func newMemStore() *memStore {
	return &memStore{
		runs:           make(map[string]*domain.Run),
		failures:       make(map[domain.RunStatus]int),
		updateAttempts: make(map[domain.RunStatus]int),
		beforeUpdate:   make(map[domain.RunStatus]func()),
	}
}

func (m *memStore) CreateRun(ctx context.Context, run *domain.Run) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *run
	m.runs[run.ID] = &copied
	return nil
}

func (m *memStore) GetRun(ctx context.Context, runID string) (*domain.Run, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	run, ok := m.runs[runID]
	if !ok {
		return nil, nil
	}
	copied := *run
	return &copied, nil
}

func (m *memStore) ListRuns(ctx context.Context, tenantID string, limit int) ([]domain.Run, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var runs []domain.Run
	for _, run := range m.runs {
		if run.TenantID == tenantID && len(runs) < limit {
			runs = append(runs, *run)
		}
	}
	return runs, nil
}

func (m *memStore) UpdateRunStatus(ctx context.Context, runID string, update store.StatusUpdate) (*domain.Run, error) {
	m.mu.Lock()
	pre := m.beforeUpdate[update.Status]
	delete(m.beforeUpdate, update.Status)
	m.mu.Unlock()
	if pre != nil {
		pre()
	}

	m.mu.Lock()
	m.updateAttempts[update.Status]++
	if m.failures[update.Status] > 0 {
		m.failures[update.Status]--
		m.mu.Unlock()
		return nil, domain.ErrPersistenceUnavailable
	}
	run, ok := m.runs[runID]
	if !ok {
		m.mu.Unlock()
		return nil, &domain.RunNotFoundError{RunID: runID}
	}
	if len(update.AllowedFrom) > 0 {
		allowed := false
		for _, from := range update.AllowedFrom {
			if run.Status == from {
				allowed = true
				break
			}
		}
		if !allowed {
			current := run.Status
			m.mu.Unlock()
			return nil, &domain.InvalidTransitionError{From: current, To: update.Status}
		}
	}
	run.Status = update.Status
	if update.Output != nil {
		run.Output = update.Output
	}
	if update.Error != "" {
		run.Error = update.Error
	}
	if update.StartedAt != nil {
		run.StartedAt = update.StartedAt
	}
	if update.FinishedAt != nil {
		run.FinishedAt = update.FinishedAt
	}
	run.UpdatedAt = time.Now().UTC()
	copied := *run
	hook := m.onRunning
	if update.Status == domain.RunStatusRunning {
		m.onRunning = nil
	}
	m.mu.Unlock()

	if update.Status == domain.RunStatusRunning && hook != nil {
		hook()
	}
	return &copied, nil
}

func (m *memStore) AppendEvent(ctx context.Context, event *domain.RunEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, *event)
	return nil
}

func (m *memStore) ListEvents(ctx context.Context, runID string) ([]domain.RunEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var events []domain.RunEvent
	for _, e := range m.events {
		if e.RunID == runID {
			events = append(events, e)
		}
	}
	return events, nil
}

func (m *memStore) Close() error { return nil }

func (m *memStore) eventTypes(runID string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var types []string
	for _, e := range m.events {
		if e.RunID == runID {
			types = append(types, e.EventType)
		}
	}
	return types
}

// fakeInvoker returns a scripted result, optionally blocking until the run
// context is canceled first.
type fakeInvoker struct {
	mu         sync.Mutex
	called     bool
	result     *invoker.Result
	err        error
	waitForCtx bool
	panicMsg   string
}

func (f *fakeInvoker) Invoke(ctx context.Context, req invoker.Request) (*invoker.Result, error) {
	f.mu.Lock()
	f.called = true
	f.mu.Unlock()
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	if f.waitForCtx {
		<-ctx.Done()
	}
	return f.result, f.err
}

func (f *fakeInvoker) wasCalled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.called
}

type fakeGuard struct {
	allowed bool
	reason  string
	err     error
}

func (g *fakeGuard) Authorize(ctx context.Context, agentID, tenantID string) (bool, string, error) {
	return g.allowed, g.reason, g.err
}

func fastOptions() Options {
	return Options{
		TerminalWriteRetries:   2,
		TerminalWriteBaseDelay: time.Millisecond,
	}
}

func newTestService(st store.Store, inv invoker.Invoker, guard ExecutionGuard) *Service {
	return New(st, inv, catalog.NewRegistry(), guard, nil, zap.NewNop(), fastOptions())
}

func waitForTerminal(t *testing.T, st store.Store, runID string) *domain.Run {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		run, err := st.GetRun(context.Background(), runID)
		if err != nil {
			t.Fatalf("GetRun failed: %v", err)
		}
		if run != nil && run.Status.Terminal() {
			return run
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("run never reached a terminal status")
	return nil
}

func TestExecuteAgentHappyPath(t *testing.T) {
	st := newMemStore()
	inv := &fakeInvoker{result: &invoker.Result{
		Success: true,
		Output:  map[string]any{"text": "done"},
		Events: []invoker.Event{
			{Type: "invocation_started", Timestamp: time.Now().UTC()},
			{Type: "invocation_completed", Timestamp: time.Now().UTC()},
		},
	}}
	svc := newTestService(st, inv, nil)

	run, err := svc.ExecuteAgent(context.Background(), "t1", "ceo", map[string]any{"prompt": "go"})
	if err != nil {
		t.Fatalf("ExecuteAgent failed: %v", err)
	}
	if run.Status != domain.RunStatusQueued {
		t.Fatalf("expected queued snapshot, got %s", run.Status)
	}
	if run.Output != nil || run.Error != "" || run.StartedAt != nil || run.FinishedAt != nil {
		t.Fatalf("queued snapshot has terminal fields: %+v", run)
	}

	final := waitForTerminal(t, st, run.ID)
	if final.Status != domain.RunStatusSucceeded {
		t.Fatalf("expected succeeded, got %s (error=%q)", final.Status, final.Error)
	}
	if final.Output["text"] != "done" {
		t.Fatalf("unexpected output: %+v", final.Output)
	}
	if final.Error != "" {
		t.Fatalf("succeeded run carries an error: %q", final.Error)
	}
	if final.StartedAt == nil || final.FinishedAt == nil {
		t.Fatalf("timestamps not set: %+v", final)
	}

	types := st.eventTypes(run.ID)
	want := []string{
		domain.EventExecutionStarted,
		"invocation_started",
		"invocation_completed",
		domain.EventExecutionCompleted,
	}
	if len(types) != len(want) {
		t.Fatalf("expected events %v, got %v", want, types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("expected events %v, got %v", want, types)
		}
	}

	events, err := st.ListEvents(context.Background(), run.ID)
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	var summary map[string]any
	if err := json.Unmarshal(events[len(events)-1].Payload, &summary); err != nil {
		t.Fatalf("failed to decode summary payload: %v", err)
	}
	if _, ok := summary["duration_ms"]; !ok {
		t.Fatalf("summary event missing duration: %+v", summary)
	}
}

func TestExecuteAgentDomainFailure(t *testing.T) {
	st := newMemStore()
	inv := &fakeInvoker{result: &invoker.Result{Success: false, Error: "agent gave up"}}
	svc := newTestService(st, inv, nil)

	run, err := svc.ExecuteAgent(context.Background(), "t1", "ceo", nil)
	if err != nil {
		t.Fatalf("ExecuteAgent failed: %v", err)
	}

	final := waitForTerminal(t, st, run.ID)
	if final.Status != domain.RunStatusFailed {
		t.Fatalf("expected failed, got %s", final.Status)
	}
	if final.Error != "agent gave up" {
		t.Fatalf("unexpected error: %q", final.Error)
	}
	if final.Output != nil {
		t.Fatalf("failed run carries output: %+v", final.Output)
	}
}

func TestExecuteAgentInvocationFault(t *testing.T) {
	st := newMemStore()
	inv := &fakeInvoker{err: errors.New("connection refused")}
	svc := newTestService(st, inv, nil)

	run, err := svc.ExecuteAgent(context.Background(), "t1", "ceo", nil)
	if err != nil {
		t.Fatalf("ExecuteAgent failed: %v", err)
	}

	final := waitForTerminal(t, st, run.ID)
	if final.Status != domain.RunStatusFailed {
		t.Fatalf("expected failed, got %s", final.Status)
	}
	if final.Error != "connection refused" {
		t.Fatalf("unexpected error: %q", final.Error)
	}
}

func TestExecuteAgentUnknownAgent(t *testing.T) {
	st := newMemStore()
	svc := newTestService(st, &fakeInvoker{}, nil)

	_, err := svc.ExecuteAgent(context.Background(), "t1", "no-such-agent", nil)
	var notFound *domain.AgentNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected AgentNotFoundError, got %v", err)
	}
	if len(st.runs) != 0 {
		t.Fatalf("unknown agent produced a persisted run")
	}
}

func TestExecuteAgentBlockedByPolicy(t *testing.T) {
	st := newMemStore()
	svc := newTestService(st, &fakeInvoker{}, &fakeGuard{allowed: false, reason: "tenant suspended"})

	_, err := svc.ExecuteAgent(context.Background(), "t1", "ceo", nil)
	var blocked *domain.ExecutionBlockedError
	if !errors.As(err, &blocked) {
		t.Fatalf("expected ExecutionBlockedError, got %v", err)
	}
	if blocked.Reason != "tenant suspended" {
		t.Fatalf("unexpected reason: %q", blocked.Reason)
	}
	if len(st.runs) != 0 {
		t.Fatalf("blocked execution produced a persisted run")
	}
}

func TestCancellationBeforeInvocation(t *testing.T) {
	st := newMemStore()
	inv := &fakeInvoker{result: &invoker.Result{Success: true}}
	svc := newTestService(st, inv, nil)

	done := make(chan struct{})
	st.onRunning = func() {
		svc.RequestCancellation(currentRunID(t, st))
		close(done)
	}

	run, err := svc.ExecuteAgent(context.Background(), "t1", "ceo", nil)
	if err != nil {
		t.Fatalf("ExecuteAgent failed: %v", err)
	}
	<-done

	final := waitForTerminal(t, st, run.ID)
	if final.Status != domain.RunStatusCanceled {
		t.Fatalf("expected canceled, got %s", final.Status)
	}
	if inv.wasCalled() {
		t.Fatal("invoker was called after cancellation")
	}
	if final.Output != nil || final.Error != "" {
		t.Fatalf("canceled run carries a result: %+v", final)
	}
}

func TestCancellationDuringInvocationDiscardsResult(t *testing.T) {
	st := newMemStore()
	inv := &fakeInvoker{
		waitForCtx: true,
		result:     &invoker.Result{Success: true, Output: map[string]any{"text": "too late"}},
	}
	svc := newTestService(st, inv, nil)

	run, err := svc.ExecuteAgent(context.Background(), "t1", "ceo", nil)
	if err != nil {
		t.Fatalf("ExecuteAgent failed: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for !svc.RequestCancellation(run.ID) {
		if time.Now().After(deadline) {
			t.Fatal("could not signal cancellation")
		}
		time.Sleep(2 * time.Millisecond)
	}

	final := waitForTerminal(t, st, run.ID)
	if final.Status != domain.RunStatusCanceled {
		t.Fatalf("expected canceled, got %s", final.Status)
	}
	if final.Output != nil {
		t.Fatalf("discarded result leaked into the run: %+v", final.Output)
	}
}

func TestRequestCancellationIdempotence(t *testing.T) {
	st := newMemStore()
	inv := &fakeInvoker{waitForCtx: true, result: &invoker.Result{Success: true}}
	svc := newTestService(st, inv, nil)

	run, err := svc.ExecuteAgent(context.Background(), "t1", "ceo", nil)
	if err != nil {
		t.Fatalf("ExecuteAgent failed: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for !svc.RequestCancellation(run.ID) {
		if time.Now().After(deadline) {
			t.Fatal("could not signal cancellation")
		}
		time.Sleep(2 * time.Millisecond)
	}
	if svc.RequestCancellation(run.ID) {
		t.Fatal("second cancellation request reported a live context")
	}
	if svc.RequestCancellation("unknown-run") {
		t.Fatal("unknown run reported a live context")
	}
	waitForTerminal(t, st, run.ID)
}

func TestTerminalWriteRetriesThenSucceeds(t *testing.T) {
	st := newMemStore()
	st.failures[domain.RunStatusSucceeded] = 2
	inv := &fakeInvoker{result: &invoker.Result{Success: true, Output: map[string]any{"text": "ok"}}}
	svc := newTestService(st, inv, nil)

	run, err := svc.ExecuteAgent(context.Background(), "t1", "ceo", nil)
	if err != nil {
		t.Fatalf("ExecuteAgent failed: %v", err)
	}

	final := waitForTerminal(t, st, run.ID)
	if final.Status != domain.RunStatusSucceeded {
		t.Fatalf("expected succeeded, got %s", final.Status)
	}

	st.mu.Lock()
	attempts := st.updateAttempts[domain.RunStatusSucceeded]
	st.mu.Unlock()
	if attempts != 3 {
		t.Fatalf("expected 3 write attempts, got %d", attempts)
	}
}

func TestTerminalWriteExhaustionLeavesRunning(t *testing.T) {
	st := newMemStore()
	st.failures[domain.RunStatusSucceeded] = 100
	inv := &fakeInvoker{result: &invoker.Result{Success: true}}
	svc := newTestService(st, inv, nil)

	run, err := svc.ExecuteAgent(context.Background(), "t1", "ceo", nil)
	if err != nil {
		t.Fatalf("ExecuteAgent failed: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		st.mu.Lock()
		attempts := st.updateAttempts[domain.RunStatusSucceeded]
		st.mu.Unlock()
		if attempts >= 3 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("expected 3 attempts, got %d", attempts)
		}
		time.Sleep(2 * time.Millisecond)
	}
	time.Sleep(10 * time.Millisecond)

	st.mu.Lock()
	attempts := st.updateAttempts[domain.RunStatusSucceeded]
	st.mu.Unlock()
	if attempts != 3 {
		t.Fatalf("expected exactly 3 attempts, got %d", attempts)
	}

	current, err := st.GetRun(context.Background(), run.ID)
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if current.Status != domain.RunStatusRunning {
		t.Fatalf("expected run stuck in running, got %s", current.Status)
	}
}

func TestCancelRun(t *testing.T) {
	st := newMemStore()
	inv := &fakeInvoker{waitForCtx: true, result: &invoker.Result{Success: true}}
	svc := newTestService(st, inv, nil)

	run, err := svc.ExecuteAgent(context.Background(), "t1", "ceo", nil)
	if err != nil {
		t.Fatalf("ExecuteAgent failed: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		current, _ := st.GetRun(context.Background(), run.ID)
		if current.Status == domain.RunStatusRunning {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("run never started")
		}
		time.Sleep(2 * time.Millisecond)
	}

	canceled, err := svc.CancelRun(context.Background(), run.ID)
	if err != nil {
		t.Fatalf("CancelRun failed: %v", err)
	}
	if canceled.Status != domain.RunStatusCanceled {
		t.Fatalf("expected canceled, got %s", canceled.Status)
	}
	if canceled.FinishedAt == nil {
		t.Fatal("finished_at not set on cancel")
	}
}

func TestCancelRunTerminalIsInvalid(t *testing.T) {
	st := newMemStore()
	inv := &fakeInvoker{result: &invoker.Result{Success: true}}
	svc := newTestService(st, inv, nil)

	run, err := svc.ExecuteAgent(context.Background(), "t1", "ceo", nil)
	if err != nil {
		t.Fatalf("ExecuteAgent failed: %v", err)
	}
	waitForTerminal(t, st, run.ID)

	_, err = svc.CancelRun(context.Background(), run.ID)
	var invalid *domain.InvalidTransitionError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}
}

func TestCancelRunUnknown(t *testing.T) {
	svc := newTestService(newMemStore(), &fakeInvoker{}, nil)

	_, err := svc.CancelRun(context.Background(), "ghost")
	var notFound *domain.RunNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected RunNotFoundError, got %v", err)
	}
}

func TestGetRunUnknown(t *testing.T) {
	svc := newTestService(newMemStore(), &fakeInvoker{}, nil)

	_, err := svc.GetRun(context.Background(), "ghost")
	var notFound *domain.RunNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected RunNotFoundError, got %v", err)
	}
}

func TestListRunEventsUnknownRun(t *testing.T) {
	svc := newTestService(newMemStore(), &fakeInvoker{}, nil)

	_, err := svc.ListRunEvents(context.Background(), "ghost")
	var notFound *domain.RunNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected RunNotFoundError, got %v", err)
	}
}

func TestCancelCommittedDuringTerminalWriteWins(t *testing.T) {
	st := newMemStore()
	inv := &fakeInvoker{result: &invoker.Result{Success: true, Output: map[string]any{"text": "hi"}}}
	svc := newTestService(st, inv, nil)

	// The cancel endpoint commits canceled between the post-invoke check and
	// the succeeded write. The committed status must win.
	st.beforeUpdate[domain.RunStatusSucceeded] = func() {
		if _, err := svc.CancelRun(context.Background(), currentRunID(t, st)); err != nil {
			t.Errorf("CancelRun failed: %v", err)
		}
	}

	run, err := svc.ExecuteAgent(context.Background(), "t1", "ceo", nil)
	if err != nil {
		t.Fatalf("ExecuteAgent failed: %v", err)
	}

	final := waitForTerminal(t, st, run.ID)
	if final.Status != domain.RunStatusCanceled {
		t.Fatalf("committed canceled status was overwritten: final status %s", final.Status)
	}
	if final.Output != nil {
		t.Fatalf("discarded result leaked into the run: %+v", final.Output)
	}

	deadline := time.Now().Add(time.Second)
	for {
		st.mu.Lock()
		attempts := st.updateAttempts[domain.RunStatusSucceeded]
		st.mu.Unlock()
		if attempts == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("expected 1 losing write attempt, got %d", attempts)
		}
		time.Sleep(2 * time.Millisecond)
	}
	time.Sleep(10 * time.Millisecond)

	st.mu.Lock()
	attempts := st.updateAttempts[domain.RunStatusSucceeded]
	st.mu.Unlock()
	if attempts != 1 {
		t.Fatalf("lost transition race was retried: %d attempts", attempts)
	}
}

func TestPreStartCancellationSkipsRunning(t *testing.T) {
	st := newMemStore()
	inv := &fakeInvoker{result: &invoker.Result{Success: true}}
	svc := newTestService(st, inv, nil)

	run := newQueuedServiceRun("r1")
	if err := st.CreateRun(context.Background(), run); err != nil {
		t.Fatalf("CreateRun failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc.executeAsync(ctx, run)

	final, err := st.GetRun(context.Background(), "r1")
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if final.Status != domain.RunStatusCanceled {
		t.Fatalf("expected canceled, got %s", final.Status)
	}
	if final.FinishedAt == nil {
		t.Fatal("finished_at not set")
	}
	if final.StartedAt != nil {
		t.Fatalf("pre-start-canceled run entered running: startedAt=%v", final.StartedAt)
	}
	if inv.wasCalled() {
		t.Fatal("invoker was called for a pre-start-canceled run")
	}

	st.mu.Lock()
	runningAttempts := st.updateAttempts[domain.RunStatusRunning]
	st.mu.Unlock()
	if runningAttempts != 0 {
		t.Fatalf("running transition was attempted %d times", runningAttempts)
	}

	events, err := st.ListEvents(context.Background(), "r1")
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	if len(events) != 1 || events[0].EventType != domain.EventExecutionCanceled {
		t.Fatalf("unexpected events: %+v", events)
	}
	var payload map[string]any
	if err := json.Unmarshal(events[0].Payload, &payload); err != nil {
		t.Fatalf("failed to decode payload: %v", err)
	}
	if payload["reason"] != "pre_start_abort" {
		t.Fatalf("unexpected cancellation reason: %v", payload["reason"])
	}
}

func TestExecuteAgentInvokerPanic(t *testing.T) {
	st := newMemStore()
	inv := &fakeInvoker{panicMsg: "boom"}
	svc := newTestService(st, inv, nil)

	run, err := svc.ExecuteAgent(context.Background(), "t1", "ceo", nil)
	if err != nil {
		t.Fatalf("ExecuteAgent failed: %v", err)
	}

	final := waitForTerminal(t, st, run.ID)
	if final.Status != domain.RunStatusFailed {
		t.Fatalf("expected failed, got %s", final.Status)
	}
	if !strings.Contains(final.Error, "internal error") || !strings.Contains(final.Error, "boom") {
		t.Fatalf("unexpected error: %q", final.Error)
	}

	events, err := st.ListEvents(context.Background(), run.ID)
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	last := events[len(events)-1]
	if last.EventType != domain.EventExecutionFailed {
		t.Fatalf("expected execution_failed last, got %s", last.EventType)
	}
	var payload map[string]any
	if err := json.Unmarshal(last.Payload, &payload); err != nil {
		t.Fatalf("failed to decode payload: %v", err)
	}
	if _, ok := payload["duration_ms"]; !ok {
		t.Fatalf("failure event missing duration: %+v", payload)
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}.withDefaults()
	if opts.TerminalWriteRetries != 2 {
		t.Fatalf("expected 2 retries, got %d", opts.TerminalWriteRetries)
	}
	if opts.TerminalWriteBaseDelay != time.Second {
		t.Fatalf("expected 1s base delay, got %s", opts.TerminalWriteBaseDelay)
	}
	if opts.ListLimit != 50 {
		t.Fatalf("expected list limit 50, got %d", opts.ListLimit)
	}
}

func newQueuedServiceRun(id string) *domain.Run {
	now := time.Now().UTC()
	return &domain.Run{
		ID:        id,
		TenantID:  "t1",
		AgentID:   "ceo",
		Status:    domain.RunStatusQueued,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func currentRunID(t *testing.T, st *memStore) string {
	t.Helper()
	st.mu.Lock()
	defer st.mu.Unlock()
	for id := range st.runs {
		return id
	}
	t.Fatal("no run in store")
	return ""
}
