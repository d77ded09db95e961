package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/jeduden/textsmith/internal/config"
	"github.com/jeduden/textsmith/internal/files"
	logpkg "github.com/jeduden/textsmith/internal/log"
)

func main() {
	os.Exit(run())
}

const usageText = `Usage: textsmith <command> [flags] [files...]

Commands:
  analyze   Compute readability statistics for text
  strip     Remove markup tags and whitespace noise
  format    Re-flow punctuation, capitalization and whitespace
  case      Convert text case (upper, lower, title, sentence)
  lorem     Generate placeholder text from themed word libraries
  stats     List metrics and rank files by them
  init      Generate a default .textsmith.yml config file
  version   Print version and exit

Global flags:
  -h, --help      Show this help

Run 'textsmith <command> --help' for more information on a command.
`

func run() int {
	// Handle no arguments: print usage, exit 0.
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	first := os.Args[1]

	switch first {
	case "--help", "-h", "help":
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	// Dispatch to subcommand.
	switch first {
	case "analyze":
		return runAnalyze(os.Args[2:])
	case "strip":
		return runStrip(os.Args[2:])
	case "format":
		return runFormat(os.Args[2:])
	case "case":
		return runCase(os.Args[2:])
	case "lorem":
		return runLorem(os.Args[2:])
	case "stats":
		return runStats(os.Args[2:])
	case "init":
		return runInit(os.Args[2:])
	case "version":
		printVersion()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "textsmith: unknown command %q\n\n%s", first, usageText)
		return 2
	}
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("textsmith %s\n", version)
}

// runInit implements the "init" subcommand: generate .textsmith.yml.
func runInit(args []string) int {
	if len(args) > 0 {
		fmt.Fprintf(os.Stderr, "textsmith: init takes no arguments\n")
		return 2
	}

	const configFile = ".textsmith.yml"

	if _, err := os.Stat(configFile); err == nil {
		fmt.Fprintf(os.Stderr, "textsmith: %s already exists\n", configFile)
		return 2
	}

	data, err := config.Dump(config.Defaults())
	if err != nil {
		fmt.Fprintf(os.Stderr, "textsmith: %v\n", err)
		return 2
	}

	if err := os.WriteFile(configFile, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "textsmith: writing %s: %v\n", configFile, err)
		return 2
	}

	fmt.Fprintf(os.Stderr, "textsmith: created %s\n", configFile)
	return 0
}

// isStdinPipe returns true if stdin is a pipe (not a terminal).
func isStdinPipe() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// readStdin reads all of stdin.
func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// loadConfig loads configuration by either using the specified path or
// discovering a config file from the current directory.
func loadConfig(configPath string, logger *logpkg.Logger) (*config.Config, error) {
	defaults := config.Defaults()

	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		logger.Printf("config: %s", configPath)
		return config.Merge(defaults, loaded), nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return config.Merge(defaults, nil), nil
	}

	discovered, err := config.Discover(cwd)
	if err != nil || discovered == "" {
		return config.Merge(defaults, nil), nil
	}

	loaded, err := config.Load(discovered)
	if err != nil {
		return nil, err
	}

	logger.Printf("config: %s", discovered)
	return config.Merge(defaults, loaded), nil
}

// resolveInputFiles expands file arguments and drops config-ignored
// paths.
func resolveInputFiles(fileArgs []string, cfg *config.Config, logger *logpkg.Logger) ([]string, error) {
	resolved, err := files.Resolve(fileArgs)
	if err != nil {
		return nil, err
	}

	kept := resolved[:0]
	for _, f := range resolved {
		if cfg.IsIgnored(f) {
			logger.Printf("ignored: %s", f)
			continue
		}
		kept = append(kept, f)
	}
	logger.Printf("files: %d", len(kept))
	return kept, nil
}

// newLogger builds the verbose logger for a subcommand.
func newLogger(verbose bool) *logpkg.Logger {
	return &logpkg.Logger{Enabled: verbose, W: os.Stderr}
}
