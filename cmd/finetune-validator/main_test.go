package main

import (
	"flag"
	"testing"
)

func TestParseFlags_Defaults(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("finetune-validator", flag.ContinueOnError)
	cfg, err := parseFlags(fs, nil)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.InputPath != "fine_tuning_data.jsonl" {
		t.Fatalf("InputPath=%q", cfg.InputPath)
	}
	if cfg.Quiet {
		t.Fatalf("Quiet=true, want false")
	}
}

func TestParseFlags_Overrides(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("finetune-validator", flag.ContinueOnError)
	cfg, err := parseFlags(fs, []string{"-in", "corpus.jsonl", "-quiet"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.InputPath != "corpus.jsonl" {
		t.Fatalf("InputPath=%q", cfg.InputPath)
	}
	if !cfg.Quiet {
		t.Fatalf("Quiet=false, want true")
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	if err := (Config{}).Validate(); err == nil {
		t.Fatalf("expected error for empty config")
	}
	if err := (Config{InputPath: "corpus.jsonl"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
