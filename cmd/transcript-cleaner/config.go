package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

type Config struct {
	InputPath        string
	OutputPath       string
	MaxConversations int
	Pretty           bool
}

func (c Config) Validate() error {
	if c.InputPath == "" {
		return errors.New("missing -in")
	}
	if c.OutputPath == "" {
		return errors.New("missing -out")
	}
	if c.MaxConversations < 0 {
		return errors.New("max must be >= 0")
	}
	return nil
}

func defaultConfig() Config {
	return Config{
		InputPath:        filepath.FromSlash("last-500-conversation-dugunbuketi.json"),
		OutputPath:       filepath.FromSlash("cleaned_conversations.json"),
		MaxConversations: 100,
		Pretty:           true,
	}
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := defaultConfig()
	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.InputPath, "in", cfg.InputPath, "Path to the raw conversation export (JSON array)")
	fs.StringVar(&cfg.OutputPath, "out", cfg.OutputPath, "Path to write cleaned conversations to")
	fs.IntVar(&cfg.MaxConversations, "max", cfg.MaxConversations, "Stop after N successfully normalized conversations (0 = all)")
	fs.BoolVar(&cfg.Pretty, "pretty", cfg.Pretty, "Pretty-print the output JSON")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage:\n  %s [flags]\n\nFlags:\n", filepath.Base(os.Args[0]))
		fs.PrintDefaults()
		fmt.Fprintln(fs.Output(), "\nExamples:")
		fmt.Fprintln(fs.Output(), "  go run ./cmd/transcript-cleaner -in export.json -out cleaned_conversations.json")
		fmt.Fprintln(fs.Output(), "  go run ./cmd/transcript-cleaner -max 0")
	}

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.InputPath = filepath.Clean(cfg.InputPath)
	cfg.OutputPath = filepath.Clean(cfg.OutputPath)
	return cfg, nil
}
