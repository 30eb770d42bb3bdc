package extract

import "context"

// Generator is the external generative text backend. It is treated as a
// black box that returns opaque text expected to contain one JSON object.
type Generator interface {
	// e.g. "gemini"
	Name() string

	// Generate performs one completion round trip.
	Generate(ctx context.Context, system, prompt string) (string, error)
}
