package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/occasionlabs/convo-insights/analysis"
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

	ok, err := run(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	if !ok {
		os.Exit(1)
	}
}

func run(cfg Config) (bool, error) {
	fmt.Printf("Validating JSONL file: %s\n", cfg.InputPath)

	f, err := os.Open(cfg.InputPath)
	if err != nil {
		return false, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	report, err := analysis.ValidateCorpus(f)
	if err != nil {
		return false, err
	}

	fmt.Printf("Total lines: %d\n", report.TotalLines)
	if !cfg.Quiet {
		for _, d := range report.Diagnostics {
			fmt.Printf("Line %d: %s\n", d.Line, d.Reason)
		}
	}
	fmt.Printf("Summary: %d/%d lines are valid\n", report.ValidLines, report.TotalLines)

	if report.Valid() {
		fmt.Println("All lines are valid - file is ready for fine-tuning upload")
		return true, nil
	}
	fmt.Println("Some lines have issues - file needs fixing before upload")
	return false, nil
}
