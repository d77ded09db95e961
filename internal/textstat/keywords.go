package textstat

import (
	"regexp"
	"sort"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// defaultStopWords are common English function words excluded from
// keyword extraction.
var defaultStopWords = []string{
	"the", "and", "for", "are", "but", "not", "you", "all", "can",
	"had", "her", "was", "one", "our", "out", "day", "get", "has",
	"him", "his", "how", "man", "new", "now", "old", "see", "two",
	"way", "who", "its", "did", "yes", "this", "that", "with",
	"have", "from", "they", "will", "been", "were", "said", "each",
	"which", "their", "would", "there", "what", "about", "when",
	"make", "like", "time", "just", "know", "take", "into", "your",
	"some", "them", "than", "then", "only", "over", "also", "after",
	"more", "other", "these", "could", "because", "such", "very",
}

// StopWords returns the default stop-word set. The returned map is a
// fresh copy on each call, so callers may extend it.
func StopWords() map[string]bool {
	set := make(map[string]bool, len(defaultStopWords))
	for _, w := range defaultStopWords {
		set[w] = true
	}
	return set
}

// keywordCount tracks a candidate keyword's frequency and the position
// at which it was first seen, for a stable tie break.
type keywordCount struct {
	word  string
	count int
	first int
}

// Keywords extracts up to limit keywords from text, ordered by
// descending frequency with first-seen order breaking ties. Words are
// lowercased and stripped of non-alphanumeric characters; tokens of
// length two or less and stop words are discarded.
func Keywords(text string, stop map[string]bool, limit int) []string {
	if limit <= 0 {
		return nil
	}
	if stop == nil {
		stop = StopWords()
	}

	index := make(map[string]int)
	var counts []keywordCount
	for _, field := range strings.Fields(text) {
		word := nonAlphanumeric.ReplaceAllString(strings.ToLower(field), "")
		if len(word) <= 2 || stop[word] {
			continue
		}
		if i, ok := index[word]; ok {
			counts[i].count++
			continue
		}
		index[word] = len(counts)
		counts = append(counts, keywordCount{
			word:  word,
			count: 1,
			first: len(counts),
		})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].first < counts[j].first
	})

	if len(counts) > limit {
		counts = counts[:limit]
	}
	keywords := make([]string, 0, len(counts))
	for _, c := range counts {
		keywords = append(keywords, c.word)
	}
	return keywords
}
