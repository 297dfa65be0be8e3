package config

import (
	"strings"
	"testing"
)

func TestLoad_DatabaseURLRequiredInProduction(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when DATABASE_URL is unset in production")
	}
}

func TestLoad_DevelopmentFallsBackToLocalDatabase(t *testing.T) {
	t.Setenv("GO_ENV", "development")
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(cfg.DBUrl, "localhost") {
		t.Fatalf("expected localhost fallback, got %q", cfg.DBUrl)
	}
	if !cfg.Development() {
		t.Fatal("expected development mode")
	}
}
