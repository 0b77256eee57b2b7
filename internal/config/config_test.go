package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 8084 {
		t.Errorf("default port = %d, want 8084", cfg.Server.Port)
	}
	if cfg.Dataset.Months != 9 {
		t.Errorf("default months = %d, want 9", cfg.Dataset.Months)
	}
	if cfg.Dataset.Seed != 42 {
		t.Errorf("default seed = %d, want 42", cfg.Dataset.Seed)
	}
	if cfg.Logger.Format != "json" {
		t.Errorf("default log format = %q, want json", cfg.Logger.Format)
	}
	if cfg.Address() != "localhost:8084" {
		t.Errorf("Address() = %q, want localhost:8084", cfg.Address())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("SERVER_READ_TIMEOUT", "5s")
	t.Setenv("DATASET_MONTHS", "3")
	t.Setenv("DATASET_SEED", "7")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SECURITY_ALLOWED_ORIGINS", "http://a.example,http://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("read timeout = %v, want 5s", cfg.Server.ReadTimeout)
	}
	if cfg.Dataset.Months != 3 {
		t.Errorf("months = %d, want 3", cfg.Dataset.Months)
	}
	if cfg.Dataset.Seed != 7 {
		t.Errorf("seed = %d, want 7", cfg.Dataset.Seed)
	}
	if cfg.Logger.Format != "text" {
		t.Errorf("log format = %q, want text", cfg.Logger.Format)
	}
	if len(cfg.Security.AllowedOrigins) != 2 {
		t.Errorf("allowed origins = %v, want 2 entries", cfg.Security.AllowedOrigins)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"port out of range", "SERVER_PORT", "70000"},
		{"zero months", "DATASET_MONTHS", "0"},
		{"negative months", "DATASET_MONTHS", "-2"},
		{"unknown log level", "LOG_LEVEL", "verbose"},
		{"unknown log format", "LOG_FORMAT", "xml"},
		{"zero rate limit", "SECURITY_RATE_LIMIT_RPS", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("Load() with %s=%s should fail", tt.key, tt.value)
			}
		})
	}
}

func TestInvalidEnvValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")
	t.Setenv("DATASET_SEED", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Server.Port != 8084 {
		t.Errorf("port = %d, want default 8084", cfg.Server.Port)
	}
	if cfg.Dataset.Seed != 42 {
		t.Errorf("seed = %d, want default 42", cfg.Dataset.Seed)
	}
}
