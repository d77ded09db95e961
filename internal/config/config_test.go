package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.Analyze.WordsPerMinute != 200 {
		t.Errorf("words-per-minute = %d, want 200", cfg.Analyze.WordsPerMinute)
	}
	if cfg.Analyze.MaxKeywords != 7 {
		t.Errorf("max-keywords = %d, want 7", cfg.Analyze.MaxKeywords)
	}
	if cfg.Lorem.Style != "english" {
		t.Errorf("style = %q, want english", cfg.Lorem.Style)
	}
}

func TestMerge_NilLoadedKeepsDefaults(t *testing.T) {
	cfg := Merge(Defaults(), nil)
	if cfg.Analyze.WordsPerMinute != 200 {
		t.Errorf("words-per-minute = %d, want 200", cfg.Analyze.WordsPerMinute)
	}
}

func TestMerge_LoadedOverrides(t *testing.T) {
	loaded := &Config{
		Analyze: AnalyzeCfg{WordsPerMinute: 250},
		Lorem:   LoremCfg{Style: "tech"},
		Ignore:  []string{"*.bak"},
	}
	cfg := Merge(Defaults(), loaded)
	if cfg.Analyze.WordsPerMinute != 250 {
		t.Errorf("words-per-minute = %d, want 250", cfg.Analyze.WordsPerMinute)
	}
	if cfg.Analyze.MaxKeywords != 7 {
		t.Errorf("max-keywords = %d, want default 7", cfg.Analyze.MaxKeywords)
	}
	if cfg.Lorem.Style != "tech" {
		t.Errorf("style = %q, want tech", cfg.Lorem.Style)
	}
	if len(cfg.Ignore) != 1 {
		t.Errorf("ignore = %v, want one pattern", cfg.Ignore)
	}
}

func TestMerge_InvalidRangeIgnored(t *testing.T) {
	loaded := &Config{
		Lorem: LoremCfg{SentenceWords: []int{9, 3}},
	}
	cfg := Merge(Defaults(), loaded)
	if cfg.Lorem.SentenceWords[0] != 5 || cfg.Lorem.SentenceWords[1] != 14 {
		t.Errorf("sentence-words = %v, want default [5 14]", cfg.Lorem.SentenceWords)
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, configFileName)
	content := "analyze:\n  words-per-minute: 180\n  stop-words: [gopher]\nlorem:\n  style: business\nignore:\n  - \"*.log\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Analyze.WordsPerMinute != 180 {
		t.Errorf("words-per-minute = %d, want 180", cfg.Analyze.WordsPerMinute)
	}
	if len(cfg.Analyze.StopWords) != 1 || cfg.Analyze.StopWords[0] != "gopher" {
		t.Errorf("stop-words = %v", cfg.Analyze.StopWords)
	}
	if cfg.Lorem.Style != "business" {
		t.Errorf("style = %q, want business", cfg.Lorem.Style)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, configFileName)
	if err := os.WriteFile(path, []byte("analyze: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDiscover_FindsInParent(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(root, configFileName)
	if err := os.WriteFile(cfgPath, []byte("{}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Discover(sub)
	if err != nil {
		t.Fatal(err)
	}
	if got != cfgPath {
		t.Errorf("got %q, want %q", got, cfgPath)
	}
}

func TestDiscover_StopsAtGitBoundary(t *testing.T) {
	root := t.TempDir()
	repo := filepath.Join(root, "repo")
	sub := filepath.Join(repo, "docs")
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}
	// Config above the repo root must not be discovered.
	if err := os.WriteFile(filepath.Join(root, configFileName), []byte("{}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Discover(sub)
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("expected no config past .git boundary, got %q", got)
	}
}

func TestIsIgnored(t *testing.T) {
	cfg := &Config{Ignore: []string{"*.log", "build/*"}}
	if !cfg.IsIgnored("debug.log") {
		t.Error("expected debug.log to be ignored")
	}
	if !cfg.IsIgnored("build/out.txt") {
		t.Error("expected build/out.txt to be ignored")
	}
	if cfg.IsIgnored("notes.txt") {
		t.Error("did not expect notes.txt to be ignored")
	}
}
