package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/jeduden/textsmith"
	"github.com/jeduden/textsmith/internal/output"
	"github.com/jeduden/textsmith/internal/plaintext"
)

// runAnalyze implements the "analyze" subcommand: readability reports.
func runAnalyze(args []string) int {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	var (
		configPath string
		format     string
		noColor    bool
		markdown   bool
		verbose    bool
	)

	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.StringVarP(&format, "format", "f", "text", "Output format: text, json")
	fs.BoolVar(&noColor, "no-color", false, "Disable ANSI colors")
	fs.BoolVar(&markdown, "markdown", false, "Extract plain text from Markdown before analyzing")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: textsmith analyze [flags] [files...]\n\n"+
			"Compute readability statistics for text files.\n\n"+
			"Files can be paths, directories (walked recursively for text files), or\n"+
			"glob patterns. With no file arguments, reads from stdin if piped.\n"+
			"Files with a Markdown extension are reduced to plain text first.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := newLogger(verbose)
	cfg, err := loadConfig(configPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textsmith: %v\n", err)
		return 2
	}

	analyzer := &textsmith.Analyzer{
		WordsPerMinute: cfg.Analyze.WordsPerMinute,
		MaxKeywords:    cfg.Analyze.MaxKeywords,
		StopWords:      cfg.Analyze.StopWords,
	}

	var reports []output.Report

	fileArgs := fs.Args()
	if len(fileArgs) == 0 {
		if !isStdinPipe() {
			return 0
		}
		text, err := readStdin()
		if err != nil {
			fmt.Fprintf(os.Stderr, "textsmith: %v\n", err)
			return 2
		}
		if markdown {
			text = plaintext.FromMarkdown([]byte(text))
		}
		reports = append(reports, output.Report{
			Source: "<stdin>",
			Result: analyzer.Analyze(text),
		})
	} else {
		resolved, err := resolveInputFiles(fileArgs, cfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "textsmith: %v\n", err)
			return 2
		}
		for _, path := range resolved {
			source, err := os.ReadFile(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "textsmith: reading %q: %v\n", path, err)
				return 2
			}
			text := string(source)
			if markdown || isMarkdownPath(path) {
				text = plaintext.FromMarkdown(source)
			}
			reports = append(reports, output.Report{
				Source: path,
				Result: analyzer.Analyze(text),
			})
		}
	}

	formatter, ok := reportFormatter(format, noColor)
	if !ok {
		fmt.Fprintf(os.Stderr, "textsmith: unknown format %q (supported: text, json)\n", format)
		return 2
	}
	if err := formatter.Format(os.Stdout, reports); err != nil {
		fmt.Fprintf(os.Stderr, "textsmith: error writing output: %v\n", err)
		return 2
	}
	return 0
}

// reportFormatter selects the output formatter for analysis reports.
func reportFormatter(format string, noColor bool) (output.Formatter, bool) {
	switch format {
	case "json":
		return &output.JSONFormatter{}, true
	case "text":
		return &output.TextFormatter{Color: !noColor}, true
	}
	return nil, false
}

// isMarkdownPath returns true for .md and .markdown files.
func isMarkdownPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".markdown"
}
