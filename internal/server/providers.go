package server

import (
	"time"

	"github.com/kinnective/jobextractor/internal/config"
	"github.com/kinnective/jobextractor/pkg/genai"
	"github.com/kinnective/jobextractor/pkg/mongodb"
)

// provideGenAIConfig extracts generative backend config from main config
func provideGenAIConfig(cfg config.Config) genai.Config {
	return genai.Config{
		APIKey: cfg.Gemini.APIKey,
		Model:  cfg.Gemini.Model,
	}
}

// provideMongoConfig extracts document store config from main config
func provideMongoConfig(cfg config.Config) mongodb.Config {
	return mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	}
}

// provideRecencyWindow converts the configured day count to a duration
func provideRecencyWindow(cfg config.Config) time.Duration {
	return time.Duration(cfg.RecencyWindowDays) * 24 * time.Hour
}
