package main

import (
	"context"
	"log"
	"net"
	"os"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/kinnective/jobextractor/internal/config"
	"github.com/kinnective/jobextractor/internal/server"
	"github.com/kinnective/jobextractor/pkg/logging"
	"github.com/kinnective/jobextractor/pkg/shutdown"
)

func main() {
	// .env is a local-dev convenience; its absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	srv, err := server.InitializeServer(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("failed to initialize server", "err", err)
		os.Exit(1)
	}

	go shutdown.Graceful(
		[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
		srv,
		10*time.Second,
		logger,
	)

	logger.Info("job extraction API initialized and starting",
		"addr", net.JoinHostPort(cfg.Host, cfg.Port),
		"model", cfg.Gemini.Model,
	)

	if err := srv.Run(); err != nil {
		logger.Error("HTTP server exited with error", "err", err)
	} else {
		logger.Info("HTTP server stopped")
	}
}
