package dabom

import (
	"strings"
	"testing"
)

func TestLooksLikeHTML(t *testing.T) {
	tests := []struct {
		content string
		want    bool
	}{
		{"plain text about Go", false},
		{"1 < 2 and 3 > 2", false},
		{"<p>paragraph</p>", true},
		{"line<br/>break", true},
		{`see <a href="https://go.dev">Go</a>`, true},
		{"<STRONG>loud</STRONG>", true},
	}

	for _, tt := range tests {
		if got := looksLikeHTML(tt.content); got != tt.want {
			t.Errorf("looksLikeHTML(%q) = %v, want %v", tt.content, got, tt.want)
		}
	}
}

func TestMarkdownContent(t *testing.T) {
	input := []CleanedResult{
		{URL: "https://a.test", Content: "<p>hello <strong>world</strong></p>"},
		{URL: "https://b.test", Content: "already plain"},
	}

	got := markdownContent(input)

	if len(got) != 2 {
		t.Fatalf("got %d results, want 2", len(got))
	}
	if strings.Contains(got[0].Content, "<p>") || !strings.Contains(got[0].Content, "**world**") {
		t.Errorf("HTML not converted: %q", got[0].Content)
	}
	if got[1].Content != "already plain" {
		t.Errorf("plain content changed: %q", got[1].Content)
	}
	if got[0].URL != "https://a.test" || got[1].URL != "https://b.test" {
		t.Error("URLs or order changed")
	}
	if input[0].Content != "<p>hello <strong>world</strong></p>" {
		t.Error("input slice was modified")
	}
}
