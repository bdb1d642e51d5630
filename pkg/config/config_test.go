package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_MODEL", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !errors.Is(cfg.RequireAPIKey(), ErrMissingAPIKey) {
		t.Fatalf("RequireAPIKey=%v, want ErrMissingAPIKey", cfg.RequireAPIKey())
	}
	if cfg.Model != "gpt-4.1" {
		t.Fatalf("Model=%q, want default", cfg.Model)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OpenAIAPIKey != "sk-env" || cfg.Model != "gpt-4o-mini" {
		t.Fatalf("cfg=%+v", cfg)
	}
	if err := cfg.RequireAPIKey(); err != nil {
		t.Fatalf("RequireAPIKey: %v", err)
	}
}

func TestLoad_FromSecretsFile(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	path := filepath.Join(t.TempDir(), "secrets.env")
	contents := "OPENAI_API_KEY=sk-file\nOPENAI_MODEL=gpt-4.1-mini\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write secrets: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OpenAIAPIKey != "sk-file" || cfg.Model != "gpt-4.1-mini" {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestLoad_EnvironmentWinsOverFile(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env")

	path := filepath.Join(t.TempDir(), "secrets.env")
	if err := os.WriteFile(path, []byte("OPENAI_API_KEY=sk-file\n"), 0o600); err != nil {
		t.Fatalf("write secrets: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OpenAIAPIKey != "sk-env" {
		t.Fatalf("OpenAIAPIKey=%q, want the environment value", cfg.OpenAIAPIKey)
	}
}

func TestLoad_AbsentSecretsFileIsSkipped(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env")

	cfg, err := Load(filepath.Join(t.TempDir(), "no-such.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OpenAIAPIKey != "sk-env" {
		t.Fatalf("cfg=%+v", cfg)
	}
}
