// Package casing maps text between letter-case conventions.
package casing

import (
	"strings"
	"unicode"
)

// Mode selects a case conversion.
type Mode string

// Supported conversion modes.
const (
	Upper    Mode = "upper"
	Lower    Mode = "lower"
	Title    Mode = "title"
	Sentence Mode = "sentence"
)

// ParseMode normalizes a user-provided mode string. Unrecognized values
// return ok=false; Convert treats them as the identity.
func ParseMode(raw string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case Upper:
		return Upper, true
	case Lower:
		return Lower, true
	case Title:
		return Title, true
	case Sentence:
		return Sentence, true
	}
	return "", false
}

// Convert maps text to the given case mode. An unrecognized mode
// returns the input unchanged, so the function is total.
func Convert(text string, mode Mode) string {
	switch mode {
	case Upper:
		return strings.ToUpper(text)
	case Lower:
		return strings.ToLower(text)
	case Title:
		return titleCase(text)
	case Sentence:
		return sentenceCase(text)
	}
	return text
}

// titleCase capitalizes the first rune of every whitespace-delimited
// token and lowercases the remainder. Whitespace is preserved as-is.
func titleCase(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	atStart := true
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			atStart = true
			b.WriteRune(r)
		case atStart:
			atStart = false
			b.WriteRune(unicode.ToUpper(r))
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// sentenceCase lowercases the whole text, then capitalizes the first
// letter and the first letter after each sentence-ending punctuation
// mark followed by a space.
func sentenceCase(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	capNext := true
	sawEnder := false
	for _, r := range strings.ToLower(text) {
		switch {
		case r == '.' || r == '!' || r == '?':
			sawEnder = true
		case sawEnder && unicode.IsSpace(r):
			capNext = true
			sawEnder = false
		case unicode.IsLetter(r):
			sawEnder = false
			if capNext {
				capNext = false
				b.WriteRune(unicode.ToUpper(r))
				continue
			}
		default:
			sawEnder = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
