package invoker

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/techtide/orchestrator/internal/catalog"
	"github.com/techtide/orchestrator/internal/llm"
)

type fakeLLM struct {
	completion *llm.Completion
	err        error
	waitForCtx bool

	gotSystem string
	gotPrompt string
}

func (f *fakeLLM) Provider() string { return "fake" }

func (f *fakeLLM) Complete(ctx context.Context, req llm.Request) (*llm.Completion, error) {
	f.gotSystem = req.System
	f.gotPrompt = req.Prompt
	if f.waitForCtx {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.completion, nil
}

func TestLLMInvokerSuccess(t *testing.T) {
	fake := &fakeLLM{completion: &llm.Completion{
		Text:  "quarterly plan",
		Model: "test-model",
		Usage: llm.Usage{InputTokens: 10, OutputTokens: 20},
	}}
	inv := NewLLMInvoker(catalog.NewRegistry(), fake, time.Second, zap.NewNop())

	result, err := inv.Invoke(context.Background(), Request{
		RunID:   "r1",
		AgentID: "ceo",
		Input:   map[string]any{"prompt": "plan the quarter"},
	})
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success, got %+v", result)
	}
	if result.Output["text"] != "quarterly plan" {
		t.Fatalf("unexpected output: %+v", result.Output)
	}
	if fake.gotPrompt != "plan the quarter" {
		t.Fatalf("prompt not passed through: %q", fake.gotPrompt)
	}
	if !strings.Contains(fake.gotSystem, "Brian Cozy") {
		t.Fatalf("system prompt not rendered from catalog:\n%s", fake.gotSystem)
	}
	if len(result.Events) != 2 || result.Events[1].Type != "invocation_completed" {
		t.Fatalf("unexpected events: %+v", result.Events)
	}
}

func TestLLMInvokerUnknownAgent(t *testing.T) {
	inv := NewLLMInvoker(catalog.NewRegistry(), &fakeLLM{}, time.Second, zap.NewNop())

	if _, err := inv.Invoke(context.Background(), Request{AgentID: "nope"}); err == nil {
		t.Fatal("expected error for unknown agent")
	}
}

func TestLLMInvokerTimeoutIsDomainFailure(t *testing.T) {
	fake := &fakeLLM{waitForCtx: true}
	inv := NewLLMInvoker(catalog.NewRegistry(), fake, 10*time.Millisecond, zap.NewNop())

	result, err := inv.Invoke(context.Background(), Request{RunID: "r1", AgentID: "ceo"})
	if err != nil {
		t.Fatalf("timeout should not be an invocation fault: %v", err)
	}
	if result.Success {
		t.Fatal("expected failed result on timeout")
	}
	if !strings.Contains(result.Error, "timed out") {
		t.Fatalf("unexpected error message: %q", result.Error)
	}
}

func TestLLMInvokerCallerCancellationIsFault(t *testing.T) {
	fake := &fakeLLM{waitForCtx: true}
	inv := NewLLMInvoker(catalog.NewRegistry(), fake, time.Minute, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := inv.Invoke(ctx, Request{RunID: "r1", AgentID: "ceo"})
	if err == nil {
		t.Fatal("expected error on caller cancellation")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled in chain, got %v", err)
	}
}

func TestLLMInvokerProviderErrorIsFault(t *testing.T) {
	fake := &fakeLLM{err: errors.New("rate limited")}
	inv := NewLLMInvoker(catalog.NewRegistry(), fake, time.Second, zap.NewNop())

	if _, err := inv.Invoke(context.Background(), Request{RunID: "r1", AgentID: "ceo"}); err == nil {
		t.Fatal("expected error on provider failure")
	}
}

func TestRenderTaskSerializesStructuredInput(t *testing.T) {
	got := renderTask(map[string]any{"ticket": "T-42"})
	if !strings.Contains(got, `"ticket":"T-42"`) {
		t.Fatalf("unexpected task rendering: %q", got)
	}
	if renderTask(nil) == "" {
		t.Fatal("nil input should still produce a prompt")
	}
}
