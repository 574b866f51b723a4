package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDerivesWorkspacePaths(t *testing.T) {
	ws := t.TempDir()
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := New(ws, "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if cfg.StatePath != filepath.Join(ws, ".synmap", "mindmap.json") {
		t.Fatalf("state path = %q", cfg.StatePath)
	}
	if cfg.DBPath != filepath.Join(ws, ".synmap", "synmap.db") {
		t.Fatalf("db path = %q", cfg.DBPath)
	}
	if cfg.NotesDir != filepath.Join(ws, "notes") || cfg.ExportsDir != filepath.Join(ws, "exports") {
		t.Fatalf("dirs = %q, %q", cfg.NotesDir, cfg.ExportsDir)
	}
	if cfg.Model != DefaultModel || cfg.BaseURL != DefaultBaseURL {
		t.Fatalf("defaults = %q, %q", cfg.Model, cfg.BaseURL)
	}
	if cfg.HasAPIKey() {
		t.Fatal("HasAPIKey = true with no key anywhere")
	}
}

func TestAPIKeyResolutionOrder(t *testing.T) {
	ws := t.TempDir()
	if err := os.MkdirAll(filepath.Join(ws, ".synmap"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	yaml := "model: gemini-1.5-pro\napi_key: from-file\n"
	if err := os.WriteFile(filepath.Join(ws, ".synmap", "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("GEMINI_API_KEY", "from-env")

	cfg, err := New(ws, "from-flag")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if cfg.APIKey != "from-flag" {
		t.Fatalf("flag should win, got %q", cfg.APIKey)
	}
	if cfg.Model != "gemini-1.5-pro" {
		t.Fatalf("model = %q", cfg.Model)
	}

	cfg, err = New(ws, "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if cfg.APIKey != "from-file" {
		t.Fatalf("file should win over env, got %q", cfg.APIKey)
	}
	if !cfg.HasAPIKey() {
		t.Fatal("HasAPIKey = false with a resolved key")
	}
}

func TestAPIKeyFromNamedEnvVar(t *testing.T) {
	ws := t.TempDir()
	if err := os.MkdirAll(filepath.Join(ws, ".synmap"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	yaml := "api_key_env: SYNMAP_TEST_KEY\n"
	if err := os.WriteFile(filepath.Join(ws, ".synmap", "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("SYNMAP_TEST_KEY", "from-named-env")

	cfg, err := New(ws, "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if cfg.APIKey != "from-named-env" {
		t.Fatalf("api key = %q", cfg.APIKey)
	}
}

func TestConfigRejectsUnknownFields(t *testing.T) {
	ws := t.TempDir()
	if err := os.MkdirAll(filepath.Join(ws, ".synmap"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(ws, ".synmap", "config.yaml"), []byte("surprise: true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := New(ws, ""); err == nil {
		t.Fatal("expected decode error for unknown field")
	}
}
