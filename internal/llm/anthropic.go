package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicOptions configure the Anthropic adapter.
type AnthropicOptions struct {
	Model       string
	Temperature float64
	MaxTokens   int64
	APIKey      string
}

// AnthropicClient wraps the Anthropic Messages API.
type AnthropicClient struct {
	client *anthropic.Client
	opts   AnthropicOptions
}

// NewAnthropicClient creates an adapter using the official client.
func NewAnthropicClient(optFns ...func(o *AnthropicOptions)) *AnthropicClient {
	opts := AnthropicOptions{
		Model:       string(anthropic.ModelClaude3_5Sonnet20241022),
		Temperature: 0.7,
		MaxTokens:   4096,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}
	client := anthropic.NewClient(clientOpts...)

	return &AnthropicClient{client: &client, opts: opts}
}

func (c *AnthropicClient) Provider() string { return "anthropic" }

// Complete runs a single non-streaming message request.
func (c *AnthropicClient) Complete(ctx context.Context, req Request) (*Completion, error) {
	maxTokens := c.opts.MaxTokens
	if req.MaxTokens > 0 {
		maxTokens = req.MaxTokens
	}
	temperature := c.opts.Temperature
	if req.Temperature > 0 {
		temperature = req.Temperature
	}

	params := anthropic.MessageNewParams{
		Model: anthropic.Model(c.opts.Model),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(temperature),
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic api error: %w", err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.AsText().Text)
		}
	}

	return &Completion{
		Text:  text.String(),
		Model: string(resp.Model),
		Usage: Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
		},
	}, nil
}
