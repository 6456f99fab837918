package llm

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// RetryOptions bound the retry loop around a provider client.
type RetryOptions struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

// DefaultRetryOptions returns the retry settings used in production.
func DefaultRetryOptions() RetryOptions {
	return RetryOptions{
		MaxRetries: 2,
		BaseDelay:  500 * time.Millisecond,
		MaxDelay:   10 * time.Second,
	}
}

type retryingClient struct {
	inner  Client
	opts   RetryOptions
	logger *zap.Logger
}

// WithRetry wraps a client so transient provider errors are retried with
// exponential backoff and jitter. Context cancellation is never retried.
func WithRetry(inner Client, opts RetryOptions, logger *zap.Logger) Client {
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	if opts.BaseDelay <= 0 {
		opts.BaseDelay = 500 * time.Millisecond
	}
	if opts.MaxDelay <= 0 {
		opts.MaxDelay = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &retryingClient{inner: inner, opts: opts, logger: logger}
}

func (c *retryingClient) Provider() string { return c.inner.Provider() }

func (c *retryingClient) Complete(ctx context.Context, req Request) (*Completion, error) {
	var lastErr error
	delay := c.opts.BaseDelay

	for attempt := 0; attempt <= c.opts.MaxRetries; attempt++ {
		completion, err := c.inner.Complete(ctx, req)
		if err == nil {
			return completion, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if attempt == c.opts.MaxRetries {
			break
		}

		wait := delay + time.Duration(rand.Float64()*0.3*float64(delay))
		c.logger.Warn("llm call failed, retrying",
			zap.String("provider", c.inner.Provider()),
			zap.Int("attempt", attempt+1),
			zap.Duration("backoff", wait),
			zap.Error(err))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}

		delay *= 2
		if delay > c.opts.MaxDelay {
			delay = c.opts.MaxDelay
		}
	}

	return nil, lastErr
}
