package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/jeduden/textsmith"
	"github.com/jeduden/textsmith/internal/lorem"
	"github.com/jeduden/textsmith/internal/plaintext"
)

// runTransform handles the shared shape of the strip, format and case
// subcommands: read stdin or files, apply a string transform, print the
// result to stdout.
func runTransform(fileArgs []string, configPath string, verbose bool,
	transform func(string) string) int {

	logger := newLogger(verbose)
	cfg, err := loadConfig(configPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textsmith: %v\n", err)
		return 2
	}

	if len(fileArgs) == 0 {
		if !isStdinPipe() {
			return 0
		}
		text, err := readStdin()
		if err != nil {
			fmt.Fprintf(os.Stderr, "textsmith: %v\n", err)
			return 2
		}
		fmt.Println(transform(text))
		return 0
	}

	resolved, err := resolveInputFiles(fileArgs, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textsmith: %v\n", err)
		return 2
	}

	for i, path := range resolved {
		source, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "textsmith: reading %q: %v\n", path, err)
			return 2
		}
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(transform(string(source)))
	}
	return 0
}

// runStrip implements the "strip" subcommand.
func runStrip(args []string) int {
	fs := flag.NewFlagSet("strip", flag.ContinueOnError)
	var (
		configPath string
		markdown   bool
		verbose    bool
	)

	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.BoolVar(&markdown, "markdown", false, "Extract plain text from Markdown instead of tag stripping only")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: textsmith strip [flags] [files...]\n\n"+
			"Remove markup tags, decode HTML entities and normalize whitespace.\n"+
			"With no file arguments, reads from stdin if piped.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	transform := textsmith.StripFormatting
	if markdown {
		transform = func(text string) string {
			return textsmith.StripFormatting(plaintext.FromMarkdown([]byte(text)))
		}
	}
	return runTransform(fs.Args(), configPath, verbose, transform)
}

// runFormat implements the "format" subcommand.
func runFormat(args []string) int {
	fs := flag.NewFlagSet("format", flag.ContinueOnError)
	var (
		configPath string
		verbose    bool
	)

	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: textsmith format [flags] [files...]\n\n"+
			"Re-flow punctuation, capitalization and whitespace into tidy prose.\n"+
			"With no file arguments, reads from stdin if piped.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	return runTransform(fs.Args(), configPath, verbose, textsmith.AutoFormat)
}

// runCase implements the "case" subcommand.
func runCase(args []string) int {
	fs := flag.NewFlagSet("case", flag.ContinueOnError)
	var (
		configPath string
		mode       string
		verbose    bool
	)

	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.StringVarP(&mode, "mode", "m", "", "Case mode: upper, lower, title, sentence")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: textsmith case --mode <mode> [files...]\n\n"+
			"Convert text case. Modes: upper, lower, title, sentence.\n"+
			"With no file arguments, reads from stdin if piped.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	// Fail fast on a missing mode instead of echoing input unchanged.
	if mode == "" {
		fmt.Fprintf(os.Stderr, "textsmith: case requires --mode\n")
		return 2
	}

	return runTransform(fs.Args(), configPath, verbose, func(text string) string {
		return textsmith.ConvertCase(text, mode)
	})
}

// runLorem implements the "lorem" subcommand: placeholder text.
func runLorem(args []string) int {
	fs := flag.NewFlagSet("lorem", flag.ContinueOnError)
	var (
		configPath string
		kind       string
		count      int
		style      string
		verbose    bool
	)

	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.StringVarP(&kind, "kind", "k", "paragraphs", "Unit: words, sentences, paragraphs")
	fs.IntVarP(&count, "count", "n", 3, "Number of units to generate")
	fs.StringVarP(&style, "style", "s", "", "Word library: latin, english, tech, business")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: textsmith lorem [flags]\n\n"+
			"Generate placeholder text from themed word libraries.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "textsmith: lorem takes no file arguments\n")
		return 2
	}

	logger := newLogger(verbose)
	cfg, err := loadConfig(configPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textsmith: %v\n", err)
		return 2
	}

	k, ok := lorem.ParseKind(kind)
	if !ok {
		fmt.Fprintf(os.Stderr, "textsmith: unknown kind %q (supported: words, sentences, paragraphs)\n", kind)
		return 2
	}

	if style == "" {
		style = cfg.Lorem.Style
	}

	g := &lorem.Generator{}
	if r := cfg.Lorem.SentenceWords; len(r) == 2 {
		g.SentenceWords = lorem.Range{Min: r[0], Max: r[1]}
	}
	if r := cfg.Lorem.ParagraphSentences; len(r) == 2 {
		g.ParagraphSentences = lorem.Range{Min: r[0], Max: r[1]}
	}

	text := g.Generate(k, count, style)
	if text != "" {
		fmt.Println(text)
	}
	return 0
}
