package genai

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

const (
	defaultModel       = "gemini-2.5-flash"
	defaultTemperature = 0.1
)

// Config defines generative backend client settings
type Config struct {
	APIKey      string
	Model       string
	Temperature float64
}

// Client performs single-shot completions against Gemini. Responses are
// requested in JSON mode at low temperature for near-deterministic
// extraction.
type Client struct {
	model       llms.Model
	modelName   string
	temperature float64
}

// NewClient instantiates a Gemini client
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("genai: api key is required")
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = defaultModel
	}

	temperature := cfg.Temperature
	if temperature <= 0 {
		temperature = defaultTemperature
	}

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.APIKey),
		googleai.WithDefaultModel(modelName),
	)
	if err != nil {
		return nil, fmt.Errorf("genai: create client: %w", err)
	}

	return &Client{
		model:       llm,
		modelName:   modelName,
		temperature: temperature,
	}, nil
}

// Model reports the configured model name.
func (c *Client) Model() string {
	return c.modelName
}

// Generate performs one completion round trip with a system instruction and
// a user prompt, returning the raw response text.
func (c *Client) Generate(ctx context.Context, system, prompt string) (string, error) {
	if c == nil {
		return "", fmt.Errorf("genai: client is nil")
	}

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, system),
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	}

	resp, err := c.model.GenerateContent(ctx, messages,
		llms.WithTemperature(c.temperature),
		llms.WithJSONMode(),
	)
	if err != nil {
		return "", fmt.Errorf("genai: generate: %w", err)
	}

	if resp == nil || len(resp.Choices) == 0 {
		return "", fmt.Errorf("genai: backend returned no choices")
	}

	return resp.Choices[0].Content, nil
}
