package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/occasionlabs/convo-insights/analysis"
	appconfig "github.com/occasionlabs/convo-insights/pkg/config"
)

type Config struct {
	ConversationsPath string
	ResultsPath       string
	SecretsFile       string
	APIKey            string
	Model             string
	Selection         string
	Delay             time.Duration
	Dedupe            bool
	Yes               bool
}

func (c Config) Validate() error {
	if c.ConversationsPath == "" {
		return errors.New("missing -in")
	}
	if c.ResultsPath == "" {
		return errors.New("missing -out")
	}
	if c.Delay < 0 {
		return errors.New("delay must be >= 0")
	}
	return nil
}

func defaultConfig() Config {
	return Config{
		ConversationsPath: filepath.FromSlash("cleaned_conversations.json"),
		ResultsPath:       filepath.FromSlash(analysis.DefaultResultsPath),
		SecretsFile:       filepath.FromSlash(appconfig.DefaultSecretsFile),
		Delay:             100 * time.Millisecond,
	}
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := defaultConfig()
	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.ConversationsPath, "in", cfg.ConversationsPath, "Path to cleaned conversations JSON")
	fs.StringVar(&cfg.ResultsPath, "out", cfg.ResultsPath, "Path to the result store (appended to, rewritten whole)")
	fs.StringVar(&cfg.SecretsFile, "secrets", cfg.SecretsFile, "Optional env-format secrets file (skipped when absent)")
	fs.StringVar(&cfg.APIKey, "api-key", "", "OpenAI API key (overrides OPENAI_API_KEY)")
	fs.StringVar(&cfg.Model, "model", "", "OpenAI model (overrides OPENAI_MODEL)")
	fs.StringVar(&cfg.Selection, "range", "", "Non-interactive selection: 'all', 'N', or 'start-end' (skips the prompt)")
	fs.DurationVar(&cfg.Delay, "delay", cfg.Delay, "Fixed pause between classification calls")
	fs.BoolVar(&cfg.Dedupe, "dedupe", false, "Skip records whose conversation id is already in the store")
	fs.BoolVar(&cfg.Yes, "yes", false, "Skip the confirmation prompt")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage:\n  %s [flags]\n\nFlags:\n", filepath.Base(os.Args[0]))
		fs.PrintDefaults()
		fmt.Fprintln(fs.Output(), "\nExamples:")
		fmt.Fprintln(fs.Output(), "  go run ./cmd/conversation-grader")
		fmt.Fprintln(fs.Output(), "  go run ./cmd/conversation-grader -range 11-50 -yes")
	}

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.ConversationsPath = filepath.Clean(cfg.ConversationsPath)
	cfg.ResultsPath = filepath.Clean(cfg.ResultsPath)
	if cfg.SecretsFile != "" {
		cfg.SecretsFile = filepath.Clean(cfg.SecretsFile)
	}
	return cfg, nil
}
