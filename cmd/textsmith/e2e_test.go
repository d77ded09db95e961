package main_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all e2e tests.
	// go test runs from the package directory (cmd/textsmith/),
	// so "go build ." builds the main package in this directory.
	tmp, err := os.MkdirTemp("", "textsmith-e2e-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create temp dir: %v\n", err)
		os.Exit(1)
	}

	binaryPath = filepath.Join(tmp, "textsmith")
	cmd := exec.Command("go", "build", "-o", binaryPath, ".")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build binary: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	_ = os.RemoveAll(tmp)
	os.Exit(code)
}

// runBinary runs the textsmith binary with the given args and optional
// stdin. It returns stdout, stderr, and the exit code.
func runBinary(t *testing.T, stdin string, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	err := cmd.Run()
	exitCode = 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			t.Fatalf("unexpected error running binary: %v", err)
		}
	}

	return outBuf.String(), errBuf.String(), exitCode
}

// writeFixture creates a file with the given content in the given directory.
func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture %s: %v", path, err)
	}
	return path
}

func TestE2E_NoArgs_ExitsZero(t *testing.T) {
	_, _, exitCode := runBinary(t, "")
	if exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", exitCode)
	}
}

func TestE2E_UnknownCommand(t *testing.T) {
	_, _, exitCode := runBinary(t, "", "frobnicate")
	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
}

func TestE2E_AnalyzeStdin(t *testing.T) {
	stdout, _, exitCode := runBinary(t,
		"The quick brown fox jumps over the lazy dog. It barked.",
		"analyze", "--no-color")
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	if !strings.Contains(stdout, "<stdin>") {
		t.Errorf("expected stdin marker in output: %s", stdout)
	}
	if !strings.Contains(stdout, "words: 11") {
		t.Errorf("expected word count in output: %s", stdout)
	}
	if !strings.Contains(stdout, "sentences: 2") {
		t.Errorf("expected sentence count in output: %s", stdout)
	}
}

func TestE2E_AnalyzeJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "sample.txt", "Plain text with several simple words here.\n")

	stdout, _, exitCode := runBinary(t, "", "analyze", "--format", "json", path)
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}

	var reports []map[string]interface{}
	if err := json.Unmarshal([]byte(stdout), &reports); err != nil {
		t.Fatalf("stdout is not valid JSON: %v\nstdout: %s", err, stdout)
	}
	if len(reports) != 1 {
		t.Fatalf("expected 1 report, got %d", len(reports))
	}

	requiredFields := []string{
		"source", "words", "characters", "sentences", "paragraphs",
		"reading_time_minutes", "flesch_score", "grade_level", "keywords",
	}
	for _, field := range requiredFields {
		if _, ok := reports[0][field]; !ok {
			t.Errorf("JSON report missing required field %q", field)
		}
	}
}

func TestE2E_StripStdin(t *testing.T) {
	stdout, _, exitCode := runBinary(t, "<b>Hello</b>   world", "strip")
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	if strings.TrimRight(stdout, "\n") != "Hello world" {
		t.Errorf("got %q, want %q", stdout, "Hello world")
	}
}

func TestE2E_FormatStdin(t *testing.T) {
	stdout, _, exitCode := runBinary(t, "hello , world .and i agree", "format")
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	got := strings.TrimRight(stdout, "\n")
	if !strings.Contains(got, "Hello, world.") {
		t.Errorf("unexpected format output: %q", got)
	}
	if !strings.Contains(got, "I agree") {
		t.Errorf("expected pronoun fix in output: %q", got)
	}
}

func TestE2E_CaseTitle(t *testing.T) {
	stdout, _, exitCode := runBinary(t, "hello world", "case", "--mode", "title")
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	if strings.TrimRight(stdout, "\n") != "Hello World" {
		t.Errorf("got %q, want %q", stdout, "Hello World")
	}
}

func TestE2E_CaseRequiresMode(t *testing.T) {
	_, stderr, exitCode := runBinary(t, "text", "case")
	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
	if !strings.Contains(stderr, "--mode") {
		t.Errorf("expected mode hint in stderr: %s", stderr)
	}
}

func TestE2E_LoremWords(t *testing.T) {
	stdout, _, exitCode := runBinary(t, "", "lorem", "--kind", "words", "--count", "5", "--style", "latin")
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	out := strings.TrimRight(stdout, "\n")
	if !strings.HasSuffix(out, ".") {
		t.Fatalf("expected trailing period, got %q", out)
	}
	tokens := strings.Fields(strings.TrimSuffix(out, "."))
	if len(tokens) != 5 {
		t.Errorf("expected 5 tokens, got %d: %q", len(tokens), out)
	}
}

func TestE2E_LoremZeroCount(t *testing.T) {
	stdout, _, exitCode := runBinary(t, "", "lorem", "--kind", "paragraphs", "--count", "0", "--style", "tech")
	if exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", exitCode)
	}
	if strings.TrimSpace(stdout) != "" {
		t.Errorf("expected empty output, got %q", stdout)
	}
}

func TestE2E_StatsList(t *testing.T) {
	stdout, _, exitCode := runBinary(t, "", "stats", "list")
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	for _, want := range []string{"TS004", "words", "flesch"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in stats list output: %s", want, stdout)
		}
	}
}

func TestE2E_StatsRank(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "long.txt", strings.Repeat("several words of content here ", 20))
	writeFixture(t, dir, "short.txt", "tiny file")

	stdout, _, exitCode := runBinary(t, "", "stats", "rank", "--metrics", "words", "--by", "words", dir)
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}

	longIdx := strings.Index(stdout, "long.txt")
	shortIdx := strings.Index(stdout, "short.txt")
	if longIdx < 0 || shortIdx < 0 {
		t.Fatalf("expected both files in output: %s", stdout)
	}
	if longIdx > shortIdx {
		t.Errorf("expected long.txt ranked above short.txt:\n%s", stdout)
	}
}

func TestE2E_InitCreatesConfig(t *testing.T) {
	dir := t.TempDir()

	cmd := exec.Command(binaryPath, "init")
	cmd.Dir = dir
	if err := cmd.Run(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, ".textsmith.yml"))
	if err != nil {
		t.Fatalf("reading generated config: %v", err)
	}
	if !strings.Contains(string(data), "words-per-minute") {
		t.Errorf("generated config missing expected keys:\n%s", data)
	}

	// A second init must refuse to overwrite.
	cmd = exec.Command(binaryPath, "init")
	cmd.Dir = dir
	if err := cmd.Run(); err == nil {
		t.Error("expected second init to fail")
	}
}

func TestE2E_Version(t *testing.T) {
	stdout, _, exitCode := runBinary(t, "", "version")
	if exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", exitCode)
	}
	if !strings.HasPrefix(stdout, "textsmith ") {
		t.Errorf("expected version output, got %q", stdout)
	}
}

func TestE2E_ConfigStopWords(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFixture(t, dir, ".textsmith.yml",
		"analyze:\n  stop-words: [gopher]\n")
	path := writeFixture(t, dir, "text.txt", "gopher gopher gopher compiler compiler linker")

	stdout, _, exitCode := runBinary(t, "", "analyze", "--config", cfgPath, "--no-color", path)
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	if strings.Contains(stdout, "gopher,") || strings.HasSuffix(strings.TrimSpace(stdout), "gopher") {
		t.Errorf("expected gopher suppressed from keywords:\n%s", stdout)
	}
	if !strings.Contains(stdout, "compiler") {
		t.Errorf("expected compiler keyword in output:\n%s", stdout)
	}
}
