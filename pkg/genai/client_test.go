package genai

import (
	"context"
	"testing"
)

func TestNewClientRequiresAPIKey(t *testing.T) {
	if _, err := NewClient(context.Background(), Config{}); err == nil {
		t.Fatal("expected an error when no api key is configured")
	}
}

func TestNilClientGenerate(t *testing.T) {
	var c *Client
	if _, err := c.Generate(context.Background(), "system", "prompt"); err == nil {
		t.Fatal("expected an error from a nil client")
	}
}
