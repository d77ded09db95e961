package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jeduden/textsmith/internal/textstat"
)

// wordsPerMinute is the reading speed for the reading-time metric.
const wordsPerMinute = 200

var registry = []Definition{
	{
		ID:           "TS001",
		Name:         "bytes",
		Description:  "File size measured in bytes.",
		Kind:         KindInteger,
		Precision:    0,
		Default:      false,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) float64 {
			return float64(doc.ByteCount())
		},
	},
	{
		ID:           "TS002",
		Name:         "lines",
		Description:  "Raw content line count.",
		Kind:         KindInteger,
		Precision:    0,
		Default:      false,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) float64 {
			return float64(doc.LineCount())
		},
	},
	{
		ID:           "TS003",
		Name:         "characters",
		Description:  "Character count of the extracted text.",
		Kind:         KindInteger,
		Precision:    0,
		Default:      true,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) float64 {
			return float64(doc.CharacterCount())
		},
	},
	{
		ID:           "TS004",
		Name:         "words",
		Description:  "Word count of the extracted text.",
		Kind:         KindInteger,
		Precision:    0,
		Default:      true,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) float64 {
			return float64(doc.WordCount())
		},
	},
	{
		ID:           "TS005",
		Name:         "sentences",
		Description:  "Sentence count of the extracted text.",
		Kind:         KindInteger,
		Precision:    0,
		Default:      true,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) float64 {
			return float64(doc.SentenceCount())
		},
	},
	{
		ID:           "TS006",
		Name:         "paragraphs",
		Description:  "Paragraph count of the extracted text.",
		Kind:         KindInteger,
		Precision:    0,
		Default:      true,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) float64 {
			return float64(doc.ParagraphCount())
		},
	},
	{
		ID:           "TS007",
		Name:         "reading-time",
		Description:  "Estimated reading time in minutes at 200 words per minute.",
		Kind:         KindInteger,
		Precision:    0,
		Default:      true,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) float64 {
			words := doc.WordCount()
			if words == 0 {
				return 0
			}
			return float64((words + wordsPerMinute - 1) / wordsPerMinute)
		},
	},
	{
		ID:           "TS008",
		Name:         "flesch",
		Description:  "Flesch reading-ease score (higher reads easier).",
		Kind:         KindInteger,
		Precision:    0,
		Default:      true,
		DefaultOrder: OrderAsc,
		Compute: func(doc *Document) float64 {
			return float64(textstat.Flesch(
				doc.WordCount(),
				doc.SentenceCount(),
				doc.SyllableCount(),
			))
		},
	},
}

// All returns all metrics sorted by ID.
func All() []Definition {
	defs := append([]Definition(nil), registry...)
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].ID < defs[j].ID
	})
	return defs
}

// Defaults returns the default-selected metrics.
func Defaults() []Definition {
	all := All()
	out := make([]Definition, 0, len(all))
	for _, def := range all {
		if def.Default {
			out = append(out, def)
		}
	}
	return out
}

// Lookup searches by metric ID (case-insensitive) or by name.
func Lookup(query string) (Definition, bool) {
	for _, def := range All() {
		if matches(def, query) {
			return def, true
		}
	}
	return Definition{}, false
}

// Resolve resolves user-selected metric names/IDs, deduplicated in
// selection order. Empty names returns the default metrics.
func Resolve(names []string) ([]Definition, error) {
	if len(names) == 0 {
		return Defaults(), nil
	}

	seen := make(map[string]struct{}, len(names))
	defs := make([]Definition, 0, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}

		def, ok := Lookup(name)
		if !ok {
			return nil, unknownMetricErr(name)
		}

		if _, exists := seen[def.ID]; exists {
			continue
		}
		seen[def.ID] = struct{}{}
		defs = append(defs, def)
	}

	if len(defs) == 0 {
		return nil, fmt.Errorf("no metrics selected")
	}
	return defs, nil
}

// SplitList parses comma-separated metric names.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func matches(def Definition, query string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return false
	}
	return strings.EqualFold(def.ID, q) || def.Name == strings.ToLower(q)
}

func unknownMetricErr(name string) error {
	names := make([]string, 0, len(registry))
	for _, def := range All() {
		names = append(names, def.Name)
	}
	return fmt.Errorf(
		"unknown metric %q (available: %s)", name, strings.Join(names, ", "),
	)
}
