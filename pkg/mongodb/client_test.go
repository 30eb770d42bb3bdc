package mongodb

import (
	"testing"
	"time"
)

func TestNewFactoryValidation(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"missing uri", Config{Database: "db"}},
		{"missing database", Config{URI: "mongodb://localhost:27017"}},
	}

	for _, tc := range cases {
		if _, err := NewFactory(tc.cfg); err == nil {
			t.Fatalf("%s: expected an error", tc.name)
		}
	}
}

func TestNewFactoryDefaults(t *testing.T) {
	f, err := NewFactory(Config{
		URI:      "mongodb://localhost:27017",
		Database: "db",
	})
	if err != nil {
		t.Fatalf("NewFactory: %v", err)
	}

	if f.Database() != "db" {
		t.Fatalf("Database() = %q, want db", f.Database())
	}
	if f.cfg.ServerSelectionTimeout != 5*time.Second {
		t.Fatalf("ServerSelectionTimeout = %v, want 5s", f.cfg.ServerSelectionTimeout)
	}
	if f.cfg.ConnectTimeout != 10*time.Second {
		t.Fatalf("ConnectTimeout = %v, want 10s", f.cfg.ConnectTimeout)
	}
	if f.cfg.OperationTimeout != 10*time.Second {
		t.Fatalf("OperationTimeout = %v, want 10s", f.cfg.OperationTimeout)
	}
}

func TestNewFactoryKeepsExplicitTimeouts(t *testing.T) {
	f, err := NewFactory(Config{
		URI:                    "mongodb://localhost:27017",
		Database:               "db",
		ServerSelectionTimeout: time.Second,
		ConnectTimeout:         2 * time.Second,
		OperationTimeout:       3 * time.Second,
	})
	if err != nil {
		t.Fatalf("NewFactory: %v", err)
	}

	if f.cfg.ServerSelectionTimeout != time.Second ||
		f.cfg.ConnectTimeout != 2*time.Second ||
		f.cfg.OperationTimeout != 3*time.Second {
		t.Fatalf("explicit timeouts were overridden: %+v", f.cfg)
	}
}
