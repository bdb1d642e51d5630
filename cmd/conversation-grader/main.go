package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/occasionlabs/convo-insights/analysis"
	"github.com/occasionlabs/convo-insights/analysis/provider"
	appconfig "github.com/occasionlabs/convo-insights/pkg/config"
)

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run(cfg Config, logger *zap.Logger) error {
	appCfg, err := appconfig.Load(cfg.SecretsFile)
	if err != nil {
		return err
	}
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = appCfg.OpenAIAPIKey
	}
	if apiKey == "" {
		return appconfig.ErrMissingAPIKey
	}
	model := cfg.Model
	if model == "" {
		model = appCfg.Model
	}

	fmt.Println("Conversation Analysis Tool")
	fmt.Println(strings.Repeat("=", 60))

	convs, err := loadConversations(cfg.ConversationsPath)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d conversations from %s\n", len(convs), cfg.ConversationsPath)

	reader := bufio.NewReader(os.Stdin)

	var sel Selection
	if cfg.Selection != "" {
		sel, err = ParseSelection(cfg.Selection)
		if err != nil {
			return fmt.Errorf("-range: %w", err)
		}
	} else {
		sel, err = promptSelection(reader, os.Stdout)
		if err != nil {
			fmt.Println("\nOperation cancelled.")
			return nil
		}
	}

	opts := analysis.GradeOptions{Delay: cfg.Delay}
	if sel.All {
		fmt.Printf("\nStarting analysis of all %d conversations...\n", len(convs))
	} else {
		start, end := sel.Start, sel.End
		if end > len(convs) {
			end = len(convs)
		}
		opts.Start, opts.End = &start, &end
		fmt.Printf("\nStarting analysis of conversations %d-%d...\n", start+1, end)
	}

	if !cfg.Yes && !confirm(reader, os.Stdout, "Continue? (y/n): ") {
		fmt.Println("Operation cancelled.")
		return nil
	}

	client, err := provider.New(apiKey, model)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := analysis.GradeAll(ctx, openAIGrader{client: client}, convs, opts, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Successfully analyzed: %d conversations\n", len(res.Records))
	if res.Failed > 0 {
		fmt.Printf("Failed to analyze: %d conversations\n", res.Failed)
	}
	if len(res.Records) == 0 {
		fmt.Println("No conversations were successfully analyzed.")
		return nil
	}

	report, err := analysis.SaveResults(cfg.ResultsPath, res.Records, cfg.Dedupe, logger)
	if err != nil {
		return err
	}
	fmt.Printf("Results appended to %q\n", cfg.ResultsPath)
	fmt.Printf("New classifications: %d\n", report.New)
	if report.Skipped > 0 {
		fmt.Printf("Skipped duplicates: %d\n", report.Skipped)
	}
	fmt.Printf("Total classifications: %d\n", report.Total)

	// Statistics cover only this run's records, not the whole store.
	analysis.RenderSummary(os.Stdout, analysis.Summarize(res.Records))

	fmt.Println("\nAnalysis completed successfully!")
	return nil
}

// loadConversations reads the canonical transcript file. Unlike the result
// store, a broken input here is fatal: there is nothing sensible to grade.
func loadConversations(path string) ([]analysis.Conversation, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read conversations: %w", err)
	}
	var convs []analysis.Conversation
	if err := json.Unmarshal(b, &convs); err != nil {
		return nil, fmt.Errorf("parse conversations (expected a JSON array at the root): %w", err)
	}
	return convs, nil
}
