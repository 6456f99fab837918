package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
)

// OpenAIOptions configure the OpenAI adapter.
type OpenAIOptions struct {
	Model               string
	Temperature         float64
	MaxCompletionTokens int64
}

// OpenAIClient wraps the OpenAI Chat Completions API. The API key is read
// from the environment by the official client.
type OpenAIClient struct {
	client *openai.Client
	opts   OpenAIOptions
}

// NewOpenAIClient creates an adapter using the official client.
func NewOpenAIClient(optFns ...func(o *OpenAIOptions)) *OpenAIClient {
	client := openai.NewClient()
	return NewOpenAIClientFromClient(&client, optFns...)
}

// NewOpenAIClientFromClient creates an adapter from an existing client.
func NewOpenAIClientFromClient(client *openai.Client, optFns ...func(o *OpenAIOptions)) *OpenAIClient {
	opts := OpenAIOptions{
		Model:               openai.ChatModelGPT4oMini,
		Temperature:         0.7,
		MaxCompletionTokens: 4096,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &OpenAIClient{client: client, opts: opts}
}

func (c *OpenAIClient) Provider() string { return "openai" }

// Complete runs a single non-streaming chat completion.
func (c *OpenAIClient) Complete(ctx context.Context, req Request) (*Completion, error) {
	messages := []openai.ChatCompletionMessageParamUnion{}
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	messages = append(messages, openai.UserMessage(req.Prompt))

	params := openai.ChatCompletionNewParams{
		Messages:            messages,
		Model:               c.opts.Model,
		Temperature:         openai.Float(c.opts.Temperature),
		MaxCompletionTokens: openai.Int(c.opts.MaxCompletionTokens),
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}
	if req.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(req.MaxTokens)
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai: no choices returned")
	}

	return &Completion{
		Text:  resp.Choices[0].Message.Content,
		Model: resp.Model,
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
		},
	}, nil
}
