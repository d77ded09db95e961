package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	flag "github.com/spf13/pflag"

	metricspkg "github.com/jeduden/textsmith/internal/metrics"
)

const statsUsageText = `Usage: textsmith stats <command> [flags] [files...]

Commands:
  list     List available metrics from the shared registry
  rank     Rank files by selected metrics
`

func runStats(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, statsUsageText)
		return 0
	}

	switch args[0] {
	case "list":
		return runStatsList(args[1:])
	case "rank":
		return runStatsRank(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "textsmith: stats: unknown command %q\n", args[0])
		return 2
	}
}

func runStatsList(args []string) int {
	fs := flag.NewFlagSet("stats list", flag.ContinueOnError)
	var format string

	fs.StringVarP(&format, "format", "f", "text", "Output format: text, json")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: textsmith stats list [flags]\n\n"+
			"List available metrics in the shared registry.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "textsmith: stats list takes no file arguments\n")
		return 2
	}

	defs := metricspkg.All()
	switch format {
	case "text":
		if err := writeStatsListText(defs); err != nil {
			fmt.Fprintf(os.Stderr, "textsmith: writing output: %v\n", err)
			return 2
		}
	case "json":
		if err := writeStatsListJSON(defs); err != nil {
			fmt.Fprintf(os.Stderr, "textsmith: writing output: %v\n", err)
			return 2
		}
	default:
		fmt.Fprintf(os.Stderr, "textsmith: unknown format %q (supported: text, json)\n", format)
		return 2
	}

	return 0
}

func writeStatsListText(defs []metricspkg.Definition) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, def := range defs {
		marker := ""
		if def.Default {
			marker = "*"
		}
		if _, err := fmt.Fprintf(w, "%s%s\t%s\t%s\n",
			def.ID, marker, def.Name, def.Description); err != nil {
			return err
		}
	}
	return w.Flush()
}

type jsonMetricDef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Kind        string `json:"kind"`
	Default     bool   `json:"default"`
}

func writeStatsListJSON(defs []metricspkg.Definition) error {
	items := make([]jsonMetricDef, 0, len(defs))
	for _, def := range defs {
		items = append(items, jsonMetricDef{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Kind:        string(def.Kind),
			Default:     def.Default,
		})
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

type statsRankOptions struct {
	configPath string
	metricsRaw string
	byRaw      string
	orderRaw   string
	top        int
	format     string
	verbose    bool
}

func runStatsRank(args []string) int {
	fs := flag.NewFlagSet("stats rank", flag.ContinueOnError)
	var opts statsRankOptions

	fs.StringVarP(&opts.configPath, "config", "c", "", "Override config file path")
	fs.StringVar(&opts.metricsRaw, "metrics", "", "Comma-separated metrics (defaults to registry defaults)")
	fs.StringVar(&opts.byRaw, "by", "", "Metric to sort by")
	fs.StringVar(&opts.orderRaw, "order", "", "Sort order: asc or desc (defaults by metric)")
	fs.IntVar(&opts.top, "top", 0, "Limit results to top N files (0 = all)")
	fs.StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Log progress to stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: textsmith stats rank [flags] [files...]\n\n"+
			"Compute selected metrics and rank text files.\n"+
			"With no file arguments, defaults to the current directory.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if opts.top < 0 {
		fmt.Fprintf(os.Stderr, "textsmith: --top must be >= 0\n")
		return 2
	}

	fileArgs := fs.Args()
	if len(fileArgs) == 0 {
		fileArgs = []string{"."}
	}

	return executeStatsRank(opts, fileArgs)
}

func executeStatsRank(opts statsRankOptions, fileArgs []string) int {
	defs, byDef, order, err := resolveRankSelection(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textsmith: %v\n", err)
		return 2
	}

	logger := newLogger(opts.verbose)
	cfg, err := loadConfig(opts.configPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textsmith: %v\n", err)
		return 2
	}

	paths, err := resolveInputFiles(fileArgs, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textsmith: %v\n", err)
		return 2
	}

	rows, err := metricspkg.Collect(paths, defs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textsmith: %v\n", err)
		return 2
	}
	metricspkg.SortRows(rows, byDef, order)
	rows = metricspkg.LimitRows(rows, opts.top)

	switch opts.format {
	case "text":
		if err := writeRankText(defs, rows); err != nil {
			fmt.Fprintf(os.Stderr, "textsmith: writing output: %v\n", err)
			return 2
		}
	case "json":
		if err := writeRankJSON(defs, rows); err != nil {
			fmt.Fprintf(os.Stderr, "textsmith: writing output: %v\n", err)
			return 2
		}
	default:
		fmt.Fprintf(os.Stderr, "textsmith: unknown format %q (supported: text, json)\n", opts.format)
		return 2
	}

	return 0
}

// resolveRankSelection turns the raw metric/by/order flags into
// registry definitions.
func resolveRankSelection(opts statsRankOptions) ([]metricspkg.Definition, metricspkg.Definition, metricspkg.Order, error) {
	defs, err := metricspkg.Resolve(metricspkg.SplitList(opts.metricsRaw))
	if err != nil {
		return nil, metricspkg.Definition{}, "", err
	}

	byDef := defs[0]
	if opts.byRaw != "" {
		def, ok := metricspkg.Lookup(opts.byRaw)
		if !ok {
			return nil, metricspkg.Definition{}, "", fmt.Errorf("unknown metric %q for --by", opts.byRaw)
		}
		byDef = def
		found := false
		for _, d := range defs {
			if d.ID == def.ID {
				found = true
				break
			}
		}
		if !found {
			defs = append(defs, def)
		}
	}

	order := byDef.DefaultOrder
	if opts.orderRaw != "" {
		parsed, err := metricspkg.ParseOrder(opts.orderRaw)
		if err != nil {
			return nil, metricspkg.Definition{}, "", err
		}
		order = parsed
	}

	return defs, byDef, order, nil
}

func writeRankText(defs []metricspkg.Definition, rows []metricspkg.Row) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	header := "file"
	for _, def := range defs {
		header += "\t" + def.Name
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	for _, row := range rows {
		line := row.Path
		for _, def := range defs {
			line += "\t" + metricspkg.FormatValue(def, row.Metrics[def.Name])
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return w.Flush()
}

type jsonRankRow struct {
	File    string         `json:"file"`
	Metrics map[string]any `json:"metrics"`
}

func writeRankJSON(defs []metricspkg.Definition, rows []metricspkg.Row) error {
	items := make([]jsonRankRow, 0, len(rows))
	for _, row := range rows {
		values := make(map[string]any, len(defs))
		for _, def := range defs {
			values[def.Name] = metricspkg.JSONValue(def, row.Metrics[def.Name])
		}
		items = append(items, jsonRankRow{
			File:    row.Path,
			Metrics: values,
		})
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}
