// Package textstat provides segmentation and readability statistics
// over plain English text. All functions are total: any string input,
// including the empty string, produces a defined result.
package textstat

import (
	"math"
	"regexp"
	"strings"
)

var (
	sentenceEnd    = regexp.MustCompile(`[.!?]+`)
	paragraphBreak = regexp.MustCompile(`\n[ \t]*\n`)
)

// Words splits text into whitespace-delimited tokens. Empty tokens are
// discarded, so whitespace-only input yields an empty slice.
func Words(text string) []string {
	return strings.Fields(text)
}

// Sentences splits text on runs of sentence-ending punctuation and
// returns the trimmed non-empty fragments. Consecutive punctuation
// collapses into one boundary and a trailing terminator produces no
// empty sentence.
func Sentences(text string) []string {
	parts := sentenceEnd.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

// Paragraphs splits text on blank lines (a newline, optional spaces or
// tabs, then another newline) and returns trimmed non-empty fragments.
func Paragraphs(text string) []string {
	parts := paragraphBreak.Split(text, -1)
	paragraphs := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// Syllables estimates the syllable count of a single word using an
// English spelling heuristic: short words count as one syllable, a
// silent-e style suffix is dropped, a leading y is ignored, and each
// run of one or two vowels counts as one syllable group.
func Syllables(word string) int {
	w := strings.ToLower(word)
	if len(w) <= 3 {
		return 1
	}

	for _, suffix := range []string{"es", "ed", "e"} {
		if !strings.HasSuffix(w, suffix) {
			continue
		}
		prev := w[len(w)-len(suffix)-1]
		if !isVowel(prev) {
			w = w[:len(w)-len(suffix)]
		}
		break
	}

	w = strings.TrimPrefix(w, "y")

	groups := 0
	run := 0
	for i := 0; i < len(w); i++ {
		if isVowel(w[i]) {
			run++
			continue
		}
		groups += (run + 1) / 2
		run = 0
	}
	groups += (run + 1) / 2

	if groups == 0 {
		return 1
	}
	return groups
}

// isVowel reports whether c is a vowel for syllable counting. y counts
// as a vowel.
func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// Flesch computes the Flesch reading-ease score from word, sentence and
// syllable totals, rounded to the nearest integer. The sentence count
// is floored at one so a fragment without terminators still scores.
// Zero words returns zero.
func Flesch(words, sentences, syllables int) int {
	if words == 0 {
		return 0
	}
	if sentences < 1 {
		sentences = 1
	}
	score := 206.835 -
		1.015*(float64(words)/float64(sentences)) -
		84.6*(float64(syllables)/float64(words))
	return int(math.Round(score))
}

// GradeLevel buckets a Flesch reading-ease score into a human-readable
// US grade label. Higher scores mean easier text.
func GradeLevel(score int) string {
	switch {
	case score >= 90:
		return "5th Grade"
	case score >= 80:
		return "6th Grade"
	case score >= 70:
		return "7th Grade"
	case score >= 60:
		return "8th-9th Grade"
	case score >= 50:
		return "10th-12th Grade"
	case score >= 30:
		return "College"
	default:
		return "Graduate"
	}
}
