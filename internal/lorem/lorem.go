// Package lorem synthesizes placeholder text from themed word
// libraries. Output is randomly varied but always within the declared
// structural bounds; a zero or negative count yields an empty string.
package lorem

import (
	"math/rand"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind selects the unit of generated text.
type Kind string

// Supported generation kinds.
const (
	KindWords      Kind = "words"
	KindSentences  Kind = "sentences"
	KindParagraphs Kind = "paragraphs"
)

// ParseKind normalizes a user-provided kind string.
func ParseKind(raw string) (Kind, bool) {
	switch Kind(strings.ToLower(strings.TrimSpace(raw))) {
	case KindWords:
		return KindWords, true
	case KindSentences:
		return KindSentences, true
	case KindParagraphs:
		return KindParagraphs, true
	}
	return "", false
}

// Range is a closed bounded interval for random draws.
type Range struct {
	Min int
	Max int
}

// draw picks a value in [Min, Max] using intn.
func (r Range) draw(intn func(int) int) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + intn(r.Max-r.Min+1)
}

// Default draw bounds.
var (
	DefaultSentenceWords      = Range{Min: 5, Max: 14}
	DefaultParagraphSentences = Range{Min: 3, Max: 7}
)

// Generator produces placeholder text. The zero value uses the global
// math/rand source and the default bounds; tests inject IntN for
// deterministic output.
type Generator struct {
	// IntN returns a uniform value in [0, n). Nil falls back to the
	// global non-deterministic source.
	IntN func(n int) int

	// SentenceWords bounds the word count drawn per sentence.
	SentenceWords Range

	// ParagraphSentences bounds the sentence count drawn per paragraph.
	ParagraphSentences Range
}

func (g *Generator) intn(n int) int {
	if g.IntN != nil {
		return g.IntN(n)
	}
	return rand.Intn(n)
}

func (g *Generator) sentenceWords() Range {
	if g.SentenceWords.Min > 0 {
		return g.SentenceWords
	}
	return DefaultSentenceWords
}

func (g *Generator) paragraphSentences() Range {
	if g.ParagraphSentences.Min > 0 {
		return g.ParagraphSentences
	}
	return DefaultParagraphSentences
}

// Generate produces count units of the given kind from the library
// selected by style. Unknown styles fall back to the English library;
// an unknown kind or non-positive count yields an empty string.
func (g *Generator) Generate(kind Kind, count int, style string) string {
	if count <= 0 {
		return ""
	}
	lib := LibraryFor(style)

	switch kind {
	case KindWords:
		return g.words(lib, count) + "."
	case KindSentences:
		return g.sentences(lib, count)
	case KindParagraphs:
		return g.paragraphs(lib, count)
	}
	return ""
}

// words draws count words uniformly with replacement, space-joined.
func (g *Generator) words(lib Library, count int) string {
	var b strings.Builder
	for i := 0; i < count; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(lib.Words[g.intn(len(lib.Words))])
	}
	return b.String()
}

// sentences produces count capitalized, period-terminated sentences
// joined by single spaces. Each sentence draws its word count from the
// configured closed range.
func (g *Generator) sentences(lib Library, count int) string {
	var b strings.Builder
	bounds := g.sentenceWords()
	for i := 0; i < count; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		n := bounds.draw(g.intn)
		if n < 1 {
			n = 1
		}
		b.WriteString(capitalize(g.words(lib, n)))
		b.WriteByte('.')
	}
	return b.String()
}

// paragraphs produces count paragraphs joined by blank lines. Each
// paragraph draws its sentence count from the configured closed range.
func (g *Generator) paragraphs(lib Library, count int) string {
	var b strings.Builder
	bounds := g.paragraphSentences()
	for i := 0; i < count; i++ {
		if i > 0 {
			b.WriteString("\n\n")
		}
		n := bounds.draw(g.intn)
		if n < 1 {
			n = 1
		}
		b.WriteString(g.sentences(lib, n))
	}
	return b.String()
}

// capitalize uppercases the first rune of s.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Generate produces placeholder text with a default Generator. Kind
// and style are accepted as raw strings so the caller never has to
// validate; anything unrecognized degrades per the Generator contract.
func Generate(kind string, count int, style string) string {
	k, ok := ParseKind(kind)
	if !ok {
		return ""
	}
	g := &Generator{}
	return g.Generate(k, count, style)
}
