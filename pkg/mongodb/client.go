package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const (
	defaultServerSelectionTimeout = 5 * time.Second
	defaultConnectTimeout         = 10 * time.Second
	defaultOperationTimeout       = 10 * time.Second
)

// Config defines document store connection settings
type Config struct {
	URI                    string
	Database               string
	ServerSelectionTimeout time.Duration
	ConnectTimeout         time.Duration
	OperationTimeout       time.Duration
}

// Factory hands out short-lived MongoDB clients with bounded timeouts.
// Callers own each client and must Disconnect it on every exit path.
type Factory struct {
	cfg Config
}

// NewFactory validates connection settings
func NewFactory(cfg Config) (*Factory, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("mongodb: connection URI is required")
	}
	if cfg.Database == "" {
		return nil, fmt.Errorf("mongodb: database name is required")
	}

	if cfg.ServerSelectionTimeout <= 0 {
		cfg.ServerSelectionTimeout = defaultServerSelectionTimeout
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = defaultConnectTimeout
	}
	if cfg.OperationTimeout <= 0 {
		cfg.OperationTimeout = defaultOperationTimeout
	}

	return &Factory{cfg: cfg}, nil
}

// Database reports the configured database name.
func (f *Factory) Database() string {
	return f.cfg.Database
}

// Connect opens a fresh client and verifies it with a ping.
func (f *Factory) Connect(ctx context.Context) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(f.cfg.URI).
		SetServerSelectionTimeout(f.cfg.ServerSelectionTimeout).
		SetConnectTimeout(f.cfg.ConnectTimeout).
		SetTimeout(f.cfg.OperationTimeout)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb: connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongodb: ping: %w", err)
	}

	return client, nil
}
