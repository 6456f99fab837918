// Package service implements the run lifecycle: accepting executions,
// driving them to a terminal status, and handling cancellation.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/techtide/orchestrator/internal/domain"
	"github.com/techtide/orchestrator/internal/invoker"
	"github.com/techtide/orchestrator/internal/metrics"
	"github.com/techtide/orchestrator/internal/store"
)

// AgentLookup answers whether an agent id can be executed.
type AgentLookup interface {
	Exists(id string) bool
}

// ExecutionGuard decides whether a tenant may execute an agent.
type ExecutionGuard interface {
	Authorize(ctx context.Context, agentID, tenantID string) (allowed bool, reason string, err error)
}

// Options tune the service. Zero values fall back to production defaults.
type Options struct {
	// TerminalWriteRetries is the number of retries after the first failed
	// attempt to persist a terminal status. Defaults to 2.
	TerminalWriteRetries int
	// TerminalWriteBaseDelay is the delay before the first retry; it doubles
	// per attempt with jitter on top.
	TerminalWriteBaseDelay time.Duration
	// ListLimit caps ListRuns results when the caller passes no limit.
	ListLimit int
}

func (o Options) withDefaults() Options {
	if o.TerminalWriteRetries <= 0 {
		o.TerminalWriteRetries = 2
	}
	if o.TerminalWriteBaseDelay <= 0 {
		o.TerminalWriteBaseDelay = time.Second
	}
	if o.ListLimit <= 0 {
		o.ListLimit = 50
	}
	return o
}

type Service struct {
	store       store.Store
	invoker     invoker.Invoker
	agents      AgentLookup
	guard       ExecutionGuard
	transitions *domain.TransitionPolicy
	cancels     *cancelRegistry
	metrics     *metrics.Collector
	logger      *zap.Logger
	opts        Options
}

// New wires the service. guard and collector may be nil; lookups and the
// invoker may not.
func New(st store.Store, inv invoker.Invoker, agents AgentLookup, guard ExecutionGuard, collector *metrics.Collector, logger *zap.Logger, opts Options) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:       st,
		invoker:     inv,
		agents:      agents,
		guard:       guard,
		transitions: domain.DefaultTransitionPolicy(),
		cancels:     newCancelRegistry(),
		metrics:     collector,
		logger:      logger,
		opts:        opts.withDefaults(),
	}
}
