package gemini

import (
	"context"
	"fmt"

	"github.com/kinnective/jobextractor/internal/domain/extract"
	"github.com/kinnective/jobextractor/pkg/genai"
)

// Ensure Provider implements extract.Generator
var _ extract.Generator = (*Provider)(nil)

// Provider adapts the Gemini client to the extraction backend seam
type Provider struct {
	client *genai.Client
}

// NewProvider creates a Provider from a Gemini client
func NewProvider(client *genai.Client) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("gemini: client is required")
	}
	return &Provider{client: client}, nil
}

func (p *Provider) Name() string {
	return "gemini"
}

func (p *Provider) Generate(ctx context.Context, system, prompt string) (string, error) {
	return p.client.Generate(ctx, system, prompt)
}
