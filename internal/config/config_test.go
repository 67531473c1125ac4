package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const testConfig = `
server:
  address: ":9000"
database:
  url: "postgres://test"
jwt:
  signing_key: "file-key"
  access_ttl_minutes: 30
`

func writeTestConfig(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(testConfig), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeTestConfig(t))
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SIGNING_KEY", "")

	cfg := LoadConfig()

	if cfg.Server.Address != ":9000" {
		t.Errorf("expected address :9000, got %q", cfg.Server.Address)
	}
	if cfg.Database.URL != "postgres://test" {
		t.Errorf("unexpected database url: %q", cfg.Database.URL)
	}
	if cfg.JWT.SigningKey != "file-key" {
		t.Errorf("unexpected signing key: %q", cfg.JWT.SigningKey)
	}
	if cfg.AccessTTL() != 30*time.Minute {
		t.Errorf("unexpected access TTL: %v", cfg.AccessTTL())
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeTestConfig(t))
	t.Setenv("DATABASE_URL", "postgres://override")
	t.Setenv("JWT_SIGNING_KEY", "env-key")

	cfg := LoadConfig()

	if cfg.Database.URL != "postgres://override" {
		t.Errorf("expected env override, got %q", cfg.Database.URL)
	}
	if cfg.JWT.SigningKey != "env-key" {
		t.Errorf("expected env override, got %q", cfg.JWT.SigningKey)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_ADDR", "")

	cfg := LoadConfig()

	if cfg.Server.Address != ":8000" {
		t.Errorf("expected default address :8000, got %q", cfg.Server.Address)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("expected default redis addr, got %q", cfg.Redis.Addr)
	}
	if cfg.RefreshTTL() != 720*time.Hour {
		t.Errorf("unexpected refresh TTL: %v", cfg.RefreshTTL())
	}
	if cfg.SessionTTL() != 336*time.Hour {
		t.Errorf("unexpected session TTL: %v", cfg.SessionTTL())
	}
}
