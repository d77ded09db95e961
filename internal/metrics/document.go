// Package metrics computes and ranks per-file text statistics through
// a shared registry of metric definitions.
package metrics

import (
	"bytes"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/jeduden/textsmith/internal/plaintext"
	"github.com/jeduden/textsmith/internal/textstat"
)

// Document is the shared metric input for a single file. Derived
// values are computed lazily and cached, so several metrics over the
// same file segment the text only once.
type Document struct {
	Path   string
	Source []byte

	text      string
	textReady bool

	words      []string
	wordsReady bool

	sentences      int
	sentencesReady bool

	paragraphs      int
	paragraphsReady bool

	syllables      int
	syllablesReady bool
}

// NewDocument constructs a Document wrapper for metric computation.
func NewDocument(path string, source []byte) *Document {
	return &Document{
		Path:   path,
		Source: source,
	}
}

// isMarkdown reports whether the document path has a Markdown extension.
func (d *Document) isMarkdown() bool {
	ext := strings.ToLower(filepath.Ext(d.Path))
	return ext == ".md" || ext == ".markdown"
}

// Text returns the document's prose. Markdown files are reduced to
// plain text first so markup does not inflate the statistics.
func (d *Document) Text() string {
	if d.textReady {
		return d.text
	}
	if d.isMarkdown() {
		d.text = plaintext.FromMarkdown(d.Source)
	} else {
		d.text = string(d.Source)
	}
	d.textReady = true
	return d.text
}

// ByteCount returns the raw file byte count.
func (d *Document) ByteCount() int {
	return len(d.Source)
}

// LineCount returns the content line count.
func (d *Document) LineCount() int {
	if len(d.Source) == 0 {
		return 0
	}
	lines := bytes.Count(d.Source, []byte("\n"))
	if d.Source[len(d.Source)-1] != '\n' {
		lines++
	}
	return lines
}

// CharacterCount returns the rune count of the document text.
func (d *Document) CharacterCount() int {
	return utf8.RuneCountInString(d.Text())
}

// WordCount returns the word count of the document text.
func (d *Document) WordCount() int {
	return len(d.wordList())
}

func (d *Document) wordList() []string {
	if !d.wordsReady {
		d.words = textstat.Words(d.Text())
		d.wordsReady = true
	}
	return d.words
}

// SentenceCount returns the sentence count of the document text.
func (d *Document) SentenceCount() int {
	if !d.sentencesReady {
		d.sentences = len(textstat.Sentences(d.Text()))
		d.sentencesReady = true
	}
	return d.sentences
}

// ParagraphCount returns the paragraph count of the document text.
func (d *Document) ParagraphCount() int {
	if !d.paragraphsReady {
		d.paragraphs = len(textstat.Paragraphs(d.Text()))
		d.paragraphsReady = true
	}
	return d.paragraphs
}

// SyllableCount returns the estimated syllable total of the document
// text.
func (d *Document) SyllableCount() int {
	if !d.syllablesReady {
		total := 0
		for _, w := range d.wordList() {
			total += textstat.Syllables(w)
		}
		d.syllables = total
		d.syllablesReady = true
	}
	return d.syllables
}
