//go:build wireinject
// +build wireinject

package server

import (
	"context"

	"github.com/google/wire"

	"github.com/kinnective/jobextractor/internal/config"
	"github.com/kinnective/jobextractor/internal/domain/extract"
	"github.com/kinnective/jobextractor/internal/domain/extract/providers/gemini"
	"github.com/kinnective/jobextractor/internal/repository"
	mongostore "github.com/kinnective/jobextractor/internal/storage/mongo"
	"github.com/kinnective/jobextractor/pkg/genai"
	"github.com/kinnective/jobextractor/pkg/logging"
	"github.com/kinnective/jobextractor/pkg/mongodb"
)

// InitializeServer wires the full pipeline behind the HTTP server
func InitializeServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Server, error) {
	wire.Build(
		// Generative backend
		provideGenAIConfig,
		genai.NewClient,
		gemini.NewProvider,
		wire.Bind(new(extract.Generator), new(*gemini.Provider)),

		// Extraction service
		provideRecencyWindow,
		extract.NewServiceWithDeps,

		// Document store
		provideMongoConfig,
		mongodb.NewFactory,
		mongostore.NewStore,
		wire.Bind(new(repository.JobRepository), new(*mongostore.Store)),
		wire.Bind(new(repository.CompanyRepository), new(*mongostore.Store)),
		wire.Bind(new(repository.HealthChecker), new(*mongostore.Store)),

		// HTTP surface
		NewHandler,
		NewServer,
	)

	return &Server{}, nil
}
