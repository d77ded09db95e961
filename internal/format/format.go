// Package format reformats plain text: stripping markup and whitespace
// noise, and re-flowing punctuation and capitalization. Both operations
// are total over string input and idempotent on their own output.
package format

import (
	"html"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	markupTag       = regexp.MustCompile(`<[^>]*>`)
	spaceRun        = regexp.MustCompile(`[ \t]+`)
	spacedLineBreak = regexp.MustCompile(`[ \t]*\n[ \t]*`)
	lineBreakRun    = regexp.MustCompile(`\n{3,}`)
)

// Strip removes markup tags and whitespace noise from text: anything
// between < and > is dropped, HTML character entities are decoded, runs
// of spaces and tabs collapse to a single space, whitespace touching a
// line break is removed, runs of three or more line breaks collapse to
// exactly two, and leading/trailing whitespace is trimmed.
func Strip(text string) string {
	if text == "" {
		return ""
	}
	out := markupTag.ReplaceAllString(text, "")
	out = html.UnescapeString(out)
	out = spaceRun.ReplaceAllString(out, " ")
	out = spacedLineBreak.ReplaceAllString(out, "\n")
	out = lineBreakRun.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}

var (
	paragraphSplit  = regexp.MustCompile(`\n[ \t]*\n`)
	innerWhitespace = regexp.MustCompile(`\s+`)
	spaceBeforeMark = regexp.MustCompile(`\s+([,.!?;:])`)
	cramped         = regexp.MustCompile(`([.!?])([A-Z])`)
	spacedQuoteL    = regexp.MustCompile(`(\w)\s+'(\w)`)
	spacedQuoteR    = regexp.MustCompile(`(\w)'\s+(\w)`)
	lonePronoun     = regexp.MustCompile(`\bi\b`)
	sentenceStart   = regexp.MustCompile(`(?:^|[.!?] )[a-z]`)
)

// Auto re-flows text into tidy prose. Paragraphs (blank-line separated)
// are processed independently; within a paragraph each physical line
// keeps its own break. Per line: whitespace runs collapse to one space,
// ends are trimmed, whitespace before , . ! ? ; : is deleted, a missing
// space after sentence-ending punctuation is inserted when an uppercase
// letter follows, the first letter of the line and of each sentence is
// capitalized, a standalone lowercase i becomes I, and stray spaces
// around apostrophes are tightened. Empty lines and paragraphs are
// dropped.
func Auto(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	var paragraphs []string
	for _, para := range paragraphSplit.Split(text, -1) {
		var lines []string
		for _, line := range strings.Split(para, "\n") {
			line = formatLine(line)
			if line != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) > 0 {
			paragraphs = append(paragraphs, strings.Join(lines, "\n"))
		}
	}
	return strings.Join(paragraphs, "\n\n")
}

// formatLine normalizes a single physical line.
func formatLine(line string) string {
	line = innerWhitespace.ReplaceAllString(line, " ")
	line = strings.TrimSpace(line)
	if line == "" {
		return ""
	}
	line = spaceBeforeMark.ReplaceAllString(line, "$1")
	line = cramped.ReplaceAllString(line, "$1 $2")
	line = spacedQuoteL.ReplaceAllString(line, "$1'$2")
	line = spacedQuoteR.ReplaceAllString(line, "$1'$2")
	line = lonePronoun.ReplaceAllString(line, "I")
	line = sentenceStart.ReplaceAllStringFunc(line, upperLast)
	return line
}

// upperLast uppercases the final rune of s. The sentenceStart pattern
// ends on the letter to capitalize, so the match's last rune is always
// an ASCII lowercase letter.
func upperLast(s string) string {
	r, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size] + string(unicode.ToUpper(r))
}
