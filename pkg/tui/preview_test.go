package tui

import (
	"strings"
	"testing"

	"github.com/scrawl/scrawl-cli/pkg/models"
)

func TestRenderPreviewPlainWraps(t *testing.T) {
	text := "one two three four five six seven eight nine ten"
	got := renderPreview(models.KindPlain, text, 20, "auto")

	if !strings.Contains(got, "one") {
		t.Errorf("expected content preserved, got %q", got)
	}
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 20 {
			t.Errorf("line longer than wrap width: %q", line)
		}
	}
}

func TestRenderPreviewMarkdown(t *testing.T) {
	got := renderPreview(models.KindMarkdown, "# Heading\n\nSome body text.", 40, "auto")

	if !strings.Contains(got, "Heading") {
		t.Errorf("expected heading text in output, got %q", got)
	}
	if !strings.Contains(got, "Some body text") {
		t.Errorf("expected body text in output, got %q", got)
	}
}

func TestRenderPreviewMarkdownNamedStyle(t *testing.T) {
	// A concrete style name takes the standard-style path
	got := renderPreview(models.KindMarkdown, "plain words", 40, "notty")
	if !strings.Contains(got, "plain words") {
		t.Errorf("expected content preserved, got %q", got)
	}
}

func TestRenderPreviewHTML(t *testing.T) {
	src := `<html><head><title>t</title><style>p{color:red}</style></head>
<body><h1>Title</h1><p>First paragraph.</p><p>Second<br>line.</p>
<script>alert("no")</script></body></html>`

	got := renderPreview(models.KindHTML, src, 60, "auto")

	if !strings.Contains(got, "Title") {
		t.Errorf("expected heading text, got %q", got)
	}
	if !strings.Contains(got, "First paragraph.") {
		t.Errorf("expected paragraph text, got %q", got)
	}
	if strings.Contains(got, "alert") {
		t.Errorf("script content leaked into output: %q", got)
	}
	if strings.Contains(got, "color:red") {
		t.Errorf("style content leaked into output: %q", got)
	}
	if strings.Contains(got, "<p>") {
		t.Errorf("markup leaked into output: %q", got)
	}
}

func TestHTMLToTextBreaksAndBlocks(t *testing.T) {
	got := htmlToText("<p>one</p><p>two<br>three</p>")

	if !strings.Contains(got, "one") || !strings.Contains(got, "two") {
		t.Fatalf("missing text: %q", got)
	}
	// br forces a line break inside the second paragraph
	lines := strings.Split(got, "\n")
	foundBreak := false
	for i, line := range lines {
		if strings.TrimSpace(line) == "two" && i+1 < len(lines) && strings.TrimSpace(lines[i+1]) == "three" {
			foundBreak = true
		}
	}
	if !foundBreak {
		t.Errorf("expected two/three on separate lines, got %q", got)
	}
}

func TestTidyText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "collapses runs of spaces",
			input: "a   b\t\tc",
			want:  "a b c",
		},
		{
			name:  "caps blank lines at one",
			input: "a\n\n\n\nb",
			want:  "a\n\nb",
		},
		{
			name:  "trims the edges",
			input: "\n\n  hello  \n\n",
			want:  "hello",
		},
		{
			name:  "empty stays empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tidyText(tt.input)
			if got != tt.want {
				t.Errorf("tidyText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRenderPreviewNarrowWidthFloor(t *testing.T) {
	// Absurdly narrow panes still render rather than panic
	got := renderPreview(models.KindPlain, "hello world", 2, "auto")
	if got == "" {
		t.Error("expected non-empty output at narrow width")
	}
}
