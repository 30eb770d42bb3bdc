package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const defaultRecencyWindowDays = 730

// Config contains runtime settings for the extraction service.
type Config struct {
	LogLevel string
	Host     string // default 0.0.0.0
	Port     string // default PORT env or 8080
	Gemini   struct {
		APIKey string
		Model  string
	}
	Mongo struct {
		URI      string
		Database string
	}
	// RecencyWindowDays bounds how old a backend-supplied posting date may
	// be before it is discarded as stale.
	RecencyWindowDays int
}

// Load populates config from environment variables. A missing credential or
// connection string is a configuration error reported before any call is made.
func Load() (Config, error) {
	cfg := Config{
		LogLevel:          "info",
		Host:              "0.0.0.0",
		Port:              "8080",
		RecencyWindowDays: defaultRecencyWindowDays,
	}
	cfg.Gemini.Model = "gemini-2.5-flash"
	cfg.Mongo.Database = "kinnective"

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("HTTP_HOST"); v != "" {
		cfg.Host = v
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		cfg.Gemini.Model = v
	}

	cfg.Mongo.URI = os.Getenv("MONGO_URI")
	if v := os.Getenv("MONGO_DATABASE"); v != "" {
		cfg.Mongo.Database = v
	}

	if v := os.Getenv("EXTRACT_RECENCY_WINDOW_DAYS"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil || days <= 0 {
			return cfg, fmt.Errorf("EXTRACT_RECENCY_WINDOW_DAYS must be a positive integer, got %q", v)
		}
		cfg.RecencyWindowDays = days
	}

	var missingVars []string

	if cfg.Gemini.APIKey == "" {
		missingVars = append(missingVars, "GEMINI_API_KEY")
	}

	if cfg.Mongo.URI == "" {
		missingVars = append(missingVars, "MONGO_URI")
	}

	if len(missingVars) > 0 {
		return cfg, fmt.Errorf("missing required environment variables: %s", strings.Join(missingVars, ", "))
	}

	return cfg, nil
}
