package output

import (
	"fmt"
	"io"
	"strings"
)

// TextFormatter renders reports in human-readable text format. When
// Color is true, the source name is printed in cyan and grade labels in
// yellow.
type TextFormatter struct {
	Color bool
}

// Format writes one block per report: the source name, the counts, the
// readability line, and the keyword list.
func (f *TextFormatter) Format(w io.Writer, reports []Report) error {
	for i, rep := range reports {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		source := rep.Source
		grade := rep.Result.Grade
		if f.Color {
			source = "\033[36m" + source + "\033[0m"
			grade = "\033[33m" + grade + "\033[0m"
		}

		_, err := fmt.Fprintf(w,
			"%s\n"+
				"  words: %d  characters: %d  sentences: %d  paragraphs: %d\n"+
				"  reading time: %d min  flesch: %d  grade: %s\n"+
				"  keywords: %s\n",
			source,
			rep.Result.Words, rep.Result.Characters,
			rep.Result.Sentences, rep.Result.Paragraphs,
			rep.Result.ReadingTime, rep.Result.Flesch, grade,
			keywordList(rep.Result.Keywords),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func keywordList(keywords []string) string {
	if len(keywords) == 0 {
		return "-"
	}
	return strings.Join(keywords, ", ")
}
