package metrics

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
)

// Row holds computed metric values for a single file.
type Row struct {
	Path    string
	Metrics map[string]float64
}

// Collect computes all selected metrics for each file path.
func Collect(paths []string, defs []Definition) ([]Row, error) {
	rows := make([]Row, 0, len(paths))
	for _, path := range paths {
		source, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}

		doc := NewDocument(path, source)
		values := make(map[string]float64, len(defs))
		for _, def := range defs {
			values[def.Name] = def.Compute(doc)
		}

		rows = append(rows, Row{
			Path:    path,
			Metrics: values,
		})
	}
	return rows, nil
}

// SortRows sorts rows deterministically by a metric with the path as
// tiebreaker.
func SortRows(rows []Row, by Definition, order Order) {
	sort.Slice(rows, func(i, j int) bool {
		diff := rows[i].Metrics[by.Name] - rows[j].Metrics[by.Name]
		if math.Abs(diff) > 1e-9 {
			if order == OrderAsc {
				return diff < 0
			}
			return diff > 0
		}
		return rows[i].Path < rows[j].Path
	})
}

// LimitRows returns at most top rows (if top > 0).
func LimitRows(rows []Row, top int) []Row {
	if top <= 0 || top >= len(rows) {
		return rows
	}
	return rows[:top]
}

// FormatValue renders a metric value for text output.
func FormatValue(def Definition, value float64) string {
	switch def.Kind {
	case KindInteger:
		return strconv.FormatInt(int64(math.Round(value)), 10)
	case KindFloat:
		return strconv.FormatFloat(roundTo(value, def.Precision), 'f', def.Precision, 64)
	default:
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
}

// JSONValue converts a metric value into a JSON-safe scalar.
func JSONValue(def Definition, value float64) any {
	switch def.Kind {
	case KindInteger:
		return int64(math.Round(value))
	case KindFloat:
		return roundTo(value, def.Precision)
	default:
		return value
	}
}

func roundTo(value float64, precision int) float64 {
	if precision < 0 {
		return value
	}
	scale := math.Pow10(precision)
	return math.Round(value*scale) / scale
}
