// Package plaintext extracts readable prose from Markdown documents.
// Inline markup (emphasis, links, code spans, images) is reduced to its
// visible text so downstream statistics count what a reader would read.
package plaintext

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// FromMarkdown parses source as Markdown and returns its plain text.
// Block boundaries become blank lines so paragraph counting still works
// on the extracted text.
func FromMarkdown(source []byte) string {
	reader := text.NewReader(source)
	doc := goldmark.DefaultParser().Parse(reader)
	return Extract(doc, source)
}

// Extract walks the AST rooted at node and collects plain text from the
// given source. Links contribute their label, images their alt text,
// and code spans their literal content.
func Extract(node ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			switch t := n.(type) {
			case *ast.Text:
				b.Write(t.Segment.Value(source))
				if t.SoftLineBreak() || t.HardLineBreak() {
					b.WriteByte('\n')
				}
			case *ast.AutoLink:
				b.Write(t.URL(source))
			case *ast.CodeBlock, *ast.FencedCodeBlock:
				writeLines(&b, n, source)
			}
			return ast.WalkContinue, nil
		}

		// A blank line between blocks keeps paragraph boundaries
		// visible in the extracted text.
		switch n.(type) {
		case *ast.Paragraph, *ast.Heading, *ast.ListItem, *ast.Blockquote,
			*ast.CodeBlock, *ast.FencedCodeBlock:
			b.WriteString("\n\n")
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

// writeLines copies a code block's raw lines into b.
func writeLines(b *strings.Builder, n ast.Node, source []byte) {
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
}
