// Package config loads and merges the .textsmith.yml configuration.
package config

import (
	"path/filepath"

	"github.com/gobwas/glob"
)

// Config is the top-level configuration.
type Config struct {
	Analyze AnalyzeCfg `yaml:"analyze"`
	Lorem   LoremCfg   `yaml:"lorem"`
	Ignore  []string   `yaml:"ignore"`
}

// AnalyzeCfg tunes the readability analyzer.
type AnalyzeCfg struct {
	// WordsPerMinute sets the reading speed used for reading-time
	// estimates.
	WordsPerMinute int `yaml:"words-per-minute"`

	// MaxKeywords caps the extracted keyword list.
	MaxKeywords int `yaml:"max-keywords"`

	// StopWords are excluded from keyword extraction in addition to
	// the built-in English set.
	StopWords []string `yaml:"stop-words"`
}

// LoremCfg tunes the placeholder-text generator.
type LoremCfg struct {
	// Style names the default word library.
	Style string `yaml:"style"`

	// SentenceWords is the [min, max] word count drawn per sentence.
	SentenceWords []int `yaml:"sentence-words"`

	// ParagraphSentences is the [min, max] sentence count drawn per
	// paragraph.
	ParagraphSentences []int `yaml:"paragraph-sentences"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Analyze: AnalyzeCfg{
			WordsPerMinute: 200,
			MaxKeywords:    7,
		},
		Lorem: LoremCfg{
			Style:              "english",
			SentenceWords:      []int{5, 14},
			ParagraphSentences: []int{3, 7},
		},
	}
}

// Merge merges a loaded config on top of defaults. Zero values in the
// loaded config keep their defaults; Ignore comes from the loaded
// config only.
func Merge(defaults, loaded *Config) *Config {
	out := *defaults
	if loaded == nil {
		return &out
	}

	if loaded.Analyze.WordsPerMinute > 0 {
		out.Analyze.WordsPerMinute = loaded.Analyze.WordsPerMinute
	}
	if loaded.Analyze.MaxKeywords > 0 {
		out.Analyze.MaxKeywords = loaded.Analyze.MaxKeywords
	}
	if len(loaded.Analyze.StopWords) > 0 {
		out.Analyze.StopWords = loaded.Analyze.StopWords
	}

	if loaded.Lorem.Style != "" {
		out.Lorem.Style = loaded.Lorem.Style
	}
	if isRange(loaded.Lorem.SentenceWords) {
		out.Lorem.SentenceWords = loaded.Lorem.SentenceWords
	}
	if isRange(loaded.Lorem.ParagraphSentences) {
		out.Lorem.ParagraphSentences = loaded.Lorem.ParagraphSentences
	}

	out.Ignore = loaded.Ignore
	return &out
}

// isRange reports whether r is a valid closed [min, max] pair.
func isRange(r []int) bool {
	return len(r) == 2 && r[0] >= 1 && r[1] >= r[0]
}

// IsIgnored returns true if the file path matches any of the configured
// ignore patterns.
func (c *Config) IsIgnored(path string) bool {
	cleanPath := filepath.Clean(path)

	for _, pattern := range c.Ignore {
		g, err := glob.Compile(pattern)
		if err != nil {
			continue
		}
		if g.Match(path) || g.Match(cleanPath) || g.Match(filepath.Base(path)) {
			return true
		}
	}
	return false
}
