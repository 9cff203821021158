package markdown

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		wants []string
	}{
		{"heading and emphasis", "# Title\n\nSome **bold** text.", []string{"<h1", "Title", "<strong>bold</strong>"}},
		{"gfm table", "| a | b |\n|---|---|\n| 1 | 2 |", []string{"<table>", "<td>1</td>"}},
		{"strikethrough", "~~gone~~", []string{"<del>gone</del>"}},
		{"autolink", "see https://example.com now", []string{`<a href="https://example.com"`}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Render(tc.in)
			for _, want := range tc.wants {
				if !strings.Contains(got, want) {
					t.Fatalf("Render(%q) = %q, missing %q", tc.in, got, want)
				}
			}
		})
	}
}

func TestRenderEmptyInput(t *testing.T) {
	if got := Render("   \n  "); got != "" {
		t.Fatalf("Render(whitespace) = %q, want empty", got)
	}
}
