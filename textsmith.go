// Package textsmith is a toolkit of pure text transformations:
// readability analysis, markup/whitespace cleanup, case conversion and
// placeholder-text generation. Every entry point is total over string
// input; invalid arguments degrade to defined defaults instead of
// returning errors.
package textsmith

import (
	"unicode/utf8"

	"github.com/jeduden/textsmith/internal/casing"
	"github.com/jeduden/textsmith/internal/format"
	"github.com/jeduden/textsmith/internal/lorem"
	"github.com/jeduden/textsmith/internal/textstat"
)

// MaxKeywords is the default cap on extracted keywords.
const MaxKeywords = 7

// DefaultWordsPerMinute is the reading speed used for reading-time
// estimates.
const DefaultWordsPerMinute = 200

// emptyGrade is the grade label reported for empty input.
const emptyGrade = "—"

// Result holds the statistics computed by a single analysis call.
type Result struct {
	Words       int      `json:"words"`
	Characters  int      `json:"characters"`
	Sentences   int      `json:"sentences"`
	Paragraphs  int      `json:"paragraphs"`
	ReadingTime int      `json:"reading_time_minutes"`
	Flesch      int      `json:"flesch_score"`
	Grade       string   `json:"grade_level"`
	Keywords    []string `json:"keywords"`
}

// Analyzer computes text statistics with tunable parameters. The zero
// value uses the package defaults.
type Analyzer struct {
	// WordsPerMinute sets the reading speed for the reading-time
	// estimate. Values below one fall back to the default.
	WordsPerMinute int

	// MaxKeywords caps the keyword list. Values below one fall back
	// to the default.
	MaxKeywords int

	// StopWords are extra words excluded from keyword extraction, on
	// top of the built-in English stop-word set.
	StopWords []string
}

// Analyze computes word, character, sentence and paragraph counts, a
// Flesch reading-ease score with its grade label, an estimated reading
// time and the top keywords of text. Empty or whitespace-only input
// yields all-zero counts, no keywords and a placeholder grade label.
func (a *Analyzer) Analyze(text string) Result {
	words := textstat.Words(text)
	if len(words) == 0 {
		return Result{Grade: emptyGrade, Keywords: []string{}}
	}

	syllables := 0
	for _, w := range words {
		syllables += textstat.Syllables(w)
	}

	sentences := textstat.Sentences(text)
	score := textstat.Flesch(len(words), len(sentences), syllables)

	wpm := a.WordsPerMinute
	if wpm < 1 {
		wpm = DefaultWordsPerMinute
	}
	limit := a.MaxKeywords
	if limit < 1 {
		limit = MaxKeywords
	}
	stop := textstat.StopWords()
	for _, w := range a.StopWords {
		stop[w] = true
	}

	keywords := textstat.Keywords(text, stop, limit)
	if keywords == nil {
		keywords = []string{}
	}

	return Result{
		Words:       len(words),
		Characters:  utf8.RuneCountInString(text),
		Sentences:   len(sentences),
		Paragraphs:  len(textstat.Paragraphs(text)),
		ReadingTime: (len(words) + wpm - 1) / wpm,
		Flesch:      score,
		Grade:       textstat.GradeLevel(score),
		Keywords:    keywords,
	}
}

// Analyze runs a default Analyzer over text.
func Analyze(text string) Result {
	a := &Analyzer{}
	return a.Analyze(text)
}

// StripFormatting removes markup tags, decodes HTML entities and
// normalizes whitespace. See the format package for exact behavior.
func StripFormatting(text string) string {
	return format.Strip(text)
}

// AutoFormat re-flows punctuation, capitalization and whitespace into
// tidy prose. Applying it to its own output is a no-op.
func AutoFormat(text string) string {
	return format.Auto(text)
}

// ConvertCase maps text to the named case mode (upper, lower, title or
// sentence). An unrecognized mode returns the input unchanged.
func ConvertCase(text, mode string) string {
	m, ok := casing.ParseMode(mode)
	if !ok {
		return text
	}
	return casing.Convert(text, m)
}

// GenerateLorem produces count units (words, sentences or paragraphs)
// of placeholder text from the named word library. Unknown styles fall
// back to the English library; an unknown kind or non-positive count
// yields an empty string.
func GenerateLorem(kind string, count int, style string) string {
	return lorem.Generate(kind, count, style)
}
