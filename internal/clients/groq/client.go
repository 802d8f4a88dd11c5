// Package groq provides an LLM client for Groq's OpenAI-compatible API
package groq

import (
	"context"
	"fmt"
	"strings"

	oa "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/stratahq/strata/internal/common"
	"github.com/stratahq/strata/internal/interfaces"
)

const (
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	DefaultModel   = "llama-3.3-70b-versatile"

	systemPrompt = "You are a professional investment advisor. Provide concise, " +
		"investor-focused analysis in the exact section format requested."
)

// Client implements the LLMClient interface over Groq
type Client struct {
	cli    oa.Client
	model  string
	logger *common.Logger
}

var _ interfaces.LLMClient = (*Client)(nil)

// ClientOption configures the client
type ClientOption func(*Client)

// WithModel sets the model to use
func WithModel(model string) ClientOption {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new Groq client. An optional baseURL override is
// accepted for tests.
func NewClient(apiKey string, baseURL string, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		cli:    oa.NewClient(option.WithAPIKey(apiKey), option.WithBaseURL(baseURL)),
		model:  DefaultModel,
		logger: common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Model returns the configured model identifier
func (c *Client) Model() string {
	return c.model
}

// GenerateText sends a prompt and returns the model's text response
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	c.logger.Debug().Str("model", c.model).Msg("Groq completion request")

	resp, err := c.cli.Chat.Completions.New(ctx, oa.ChatCompletionNewParams{
		Model: c.model,
		Messages: []oa.ChatCompletionMessageParamUnion{
			oa.SystemMessage(systemPrompt),
			oa.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("groq completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("groq completion: empty response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
