package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HTTPPort != "8080" {
		t.Errorf("HTTPPort = %q, want 8080", cfg.HTTPPort)
	}
	if cfg.DatabaseMaxConns != 10 {
		t.Errorf("DatabaseMaxConns = %d, want 10", cfg.DatabaseMaxConns)
	}
	if cfg.RateCacheTTL != time.Hour {
		t.Errorf("RateCacheTTL = %s, want 1h", cfg.RateCacheTTL)
	}
	if cfg.RedisURL != "" {
		t.Errorf("RedisURL = %q, want empty by default", cfg.RedisURL)
	}
	if cfg.ReportDir != "reports" {
		t.Errorf("ReportDir = %q, want reports", cfg.ReportDir)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("BUDGETS", "food=200")
	t.Setenv("EXCHANGE_RATE_API_KEY", "key-123")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HTTPPort != "9090" {
		t.Errorf("HTTPPort = %q, want 9090", cfg.HTTPPort)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.Budgets != "food=200" {
		t.Errorf("Budgets = %q, want food=200", cfg.Budgets)
	}
	if cfg.ExchangeRateAPIKey != "key-123" {
		t.Errorf("ExchangeRateAPIKey = %q", cfg.ExchangeRateAPIKey)
	}
}
