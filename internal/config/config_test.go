package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("failed to load defaults: %v", err)
	}

	if cfg.Server.HTTPAddress != ":8080" {
		t.Errorf("Expected default address :8080, got %s", cfg.Server.HTTPAddress)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Expected default log level info, got %s", cfg.Logging.Level)
	}
	if cfg.Database.Enabled {
		t.Error("Expected database disabled by default")
	}
	if cfg.AI.Seed != 0 {
		t.Errorf("Expected time-seeded AI by default, got seed %d", cfg.AI.Seed)
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  http_address: ":9090"
  shutdown_timeout: 30s
logging:
  level: debug
  format: json
ai:
  seed: 42
  overrides:
    EASY:
      thinking_time: 100ms
      mistake_chance: 0.5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Server.HTTPAddress != ":9090" {
		t.Errorf("Expected :9090, got %s", cfg.Server.HTTPAddress)
	}
	if cfg.Server.ShutdownTimeout != 30*time.Second {
		t.Errorf("Expected 30s shutdown timeout, got %s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("Expected debug/json logging, got %s/%s", cfg.Logging.Level, cfg.Logging.Format)
	}
	if cfg.AI.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", cfg.AI.Seed)
	}

	override, ok := cfg.AI.Overrides["EASY"]
	if !ok {
		t.Fatal("Expected EASY override present")
	}
	if override.ThinkingTime != 100*time.Millisecond {
		t.Errorf("Expected 100ms thinking time, got %s", override.ThinkingTime)
	}
	if override.MistakeChance != 0.5 {
		t.Errorf("Expected mistake chance 0.5, got %f", override.MistakeChance)
	}
}

func TestLoad_DatabaseNeedsURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
database:
  enabled: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected error enabling the database without a url")
	}
}
