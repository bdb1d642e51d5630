package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/occasionlabs/convo-insights/analysis"
	"github.com/occasionlabs/convo-insights/analysis/fileutils"
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

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run(cfg Config) error {
	fmt.Printf("Loading conversations from %s...\n", cfg.InputPath)

	b, err := os.ReadFile(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("read export: %w", err)
	}
	var raws []analysis.RawConversation
	if err := json.Unmarshal(b, &raws); err != nil {
		return fmt.Errorf("parse export (expected a JSON array at the root): %w", err)
	}
	fmt.Printf("Found %d conversations in file\n", len(raws))

	cleaned := analysis.NormalizeAll(raws, cfg.MaxConversations, func(scanned, valid int) {
		fmt.Printf("Processed %d conversations, %d valid\n", scanned, valid)
	})
	fmt.Printf("\nSuccessfully processed %d conversations\n", len(cleaned))

	fmt.Printf("Saving to %s...\n", cfg.OutputPath)
	if err := fileutils.WriteJSONFileAtomic(cfg.OutputPath, cleaned, cfg.Pretty); err != nil {
		return err
	}
	fmt.Printf("Done! Saved %d conversations to %s\n", len(cleaned), cfg.OutputPath)
	return nil
}
