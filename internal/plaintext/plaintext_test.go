package plaintext

import (
	"strings"
	"testing"
)

func TestFromMarkdown_PlainParagraph(t *testing.T) {
	got := FromMarkdown([]byte("Hello world.\n"))
	if got != "Hello world." {
		t.Errorf("got %q, want %q", got, "Hello world.")
	}
}

func TestFromMarkdown_LinkKeepsLabel(t *testing.T) {
	got := FromMarkdown([]byte("Click [here](https://example.com) now.\n"))
	if got != "Click here now." {
		t.Errorf("got %q, want %q", got, "Click here now.")
	}
}

func TestFromMarkdown_EmphasisAndStrong(t *testing.T) {
	got := FromMarkdown([]byte("This is *important* and **bold** text.\n"))
	if got != "This is important and bold text." {
		t.Errorf("got %q, want %q", got, "This is important and bold text.")
	}
}

func TestFromMarkdown_CodeSpan(t *testing.T) {
	got := FromMarkdown([]byte("Use `fmt.Println` to print.\n"))
	if got != "Use fmt.Println to print." {
		t.Errorf("got %q, want %q", got, "Use fmt.Println to print.")
	}
}

func TestFromMarkdown_ImageAltText(t *testing.T) {
	got := FromMarkdown([]byte("See ![alt text](image.png) here.\n"))
	if got != "See alt text here." {
		t.Errorf("got %q, want %q", got, "See alt text here.")
	}
}

func TestFromMarkdown_HeadingAndParagraphSeparated(t *testing.T) {
	got := FromMarkdown([]byte("# Title\n\nBody text.\n"))
	if !strings.Contains(got, "Title") || !strings.Contains(got, "Body text.") {
		t.Fatalf("missing content in %q", got)
	}
	if !strings.Contains(got, "\n\n") {
		t.Errorf("expected a blank line between blocks, got %q", got)
	}
}

func TestFromMarkdown_SoftLineBreak(t *testing.T) {
	got := FromMarkdown([]byte("first line\nsecond line\n"))
	if got != "first line\nsecond line" {
		t.Errorf("got %q, want %q", got, "first line\nsecond line")
	}
}

func TestFromMarkdown_FencedCode(t *testing.T) {
	got := FromMarkdown([]byte("Before.\n\n```\ncode here\n```\n\nAfter.\n"))
	if !strings.Contains(got, "code here") {
		t.Errorf("expected code content in %q", got)
	}
}

func TestFromMarkdown_Empty(t *testing.T) {
	if got := FromMarkdown(nil); got != "" {
		t.Errorf("got %q, want empty string", got)
	}
}
