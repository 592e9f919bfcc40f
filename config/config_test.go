package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_RequiresDSN(t *testing.T) {
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when DSN is missing")
	}
}

func TestLoad_EnvOverridesAndDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("DATABASE_DSN", "app:pass@tcp(127.0.0.1:3306)/lawchat")
	t.Setenv("PORT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("DIFY_API_URL", "")
	t.Setenv("DIFY_API_KEY", "key-1")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Database.DSN != "app:pass@tcp(127.0.0.1:3306)/lawchat" {
		t.Fatalf("unexpected dsn: %q", cfg.Database.DSN)
	}
	if cfg.Server.Port != DefaultPort {
		t.Fatalf("expected default port, got %q", cfg.Server.Port)
	}
	if cfg.Server.Environment != "development" {
		t.Fatalf("expected default environment, got %q", cfg.Server.Environment)
	}
	if cfg.Dify.APIURL != DefaultDifyAPIURL {
		t.Fatalf("expected default Dify URL, got %q", cfg.Dify.APIURL)
	}
	if cfg.Dify.APIKey != "key-1" {
		t.Fatalf("expected Dify key from env, got %q", cfg.Dify.APIKey)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 {
		t.Fatalf("expected default origins, got %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoad_AllowedOriginsSplit(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("DATABASE_DSN", "dsn")
	t.Setenv("ALLOWED_ORIGINS", "http://a.example, http://b.example ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []string{"http://a.example", "http://b.example"}
	if len(cfg.CORS.AllowedOrigins) != len(want) {
		t.Fatalf("unexpected origins: %v", cfg.CORS.AllowedOrigins)
	}
	for i, o := range want {
		if cfg.CORS.AllowedOrigins[i] != o {
			t.Fatalf("origin %d: expected %q, got %q", i, o, cfg.CORS.AllowedOrigins[i])
		}
	}
}

func TestLoad_YAMLFileWithEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := strings.Join([]string{
		"server:",
		"  port: \"9000\"",
		"database:",
		"  dsn: yaml-dsn",
		"dify:",
		"  api_url: http://yaml.example/v1/chat-messages",
		"  api_key: yaml-key",
	}, "\n")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("DATABASE_DSN", "env-dsn")
	t.Setenv("PORT", "")
	t.Setenv("DIFY_API_URL", "")
	t.Setenv("DIFY_API_KEY", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "9000" {
		t.Fatalf("expected yaml port, got %q", cfg.Server.Port)
	}
	if cfg.Database.DSN != "env-dsn" {
		t.Fatalf("expected env to override yaml dsn, got %q", cfg.Database.DSN)
	}
	if cfg.Dify.APIKey != "yaml-key" {
		t.Fatalf("expected yaml Dify key, got %q", cfg.Dify.APIKey)
	}
}
