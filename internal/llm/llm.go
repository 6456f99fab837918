// Package llm abstracts the completion providers agents execute against.
package llm

import (
	"context"
	"fmt"
)

// Request is a single-turn completion request.
type Request struct {
	System      string
	Prompt      string
	MaxTokens   int64
	Temperature float64
}

// Usage reports token consumption for a completion.
type Usage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
}

// Completion is the provider-agnostic result of a completion call.
type Completion struct {
	Text  string `json:"text"`
	Model string `json:"model"`
	Usage Usage  `json:"usage"`
}

// Client is implemented by each provider adapter.
type Client interface {
	Complete(ctx context.Context, req Request) (*Completion, error)
	Provider() string
}

// Config selects and configures a provider.
type Config struct {
	Provider        string
	OpenAIAPIKey    string
	OpenAIModel     string
	AnthropicAPIKey string
	AnthropicModel  string
}

// New builds a provider client from config.
func New(cfg Config) (Client, error) {
	switch cfg.Provider {
	case "openai":
		return NewOpenAIClient(func(o *OpenAIOptions) {
			if cfg.OpenAIModel != "" {
				o.Model = cfg.OpenAIModel
			}
		}), nil
	case "anthropic":
		return NewAnthropicClient(func(o *AnthropicOptions) {
			if cfg.AnthropicAPIKey != "" {
				o.APIKey = cfg.AnthropicAPIKey
			}
			if cfg.AnthropicModel != "" {
				o.Model = cfg.AnthropicModel
			}
		}), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %q", cfg.Provider)
	}
}
