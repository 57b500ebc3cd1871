package tui

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestPluralize(t *testing.T) {
	if got := pluralize(1); got != "" {
		t.Errorf("pluralize(1) = %q, want empty", got)
	}
	if got := pluralize(0); got != "s" {
		t.Errorf("pluralize(0) = %q, want s", got)
	}
	if got := pluralize(3); got != "s" {
		t.Errorf("pluralize(3) = %q, want s", got)
	}
}

func TestTruncateLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{
			name:     "fits untouched",
			input:    "notes.txt",
			maxWidth: 20,
			want:     "notes.txt",
		},
		{
			name:     "exact fit untouched",
			input:    "notes.txt",
			maxWidth: 9,
			want:     "notes.txt",
		},
		{
			name:     "truncates with ellipsis",
			input:    "a-very-long-document-name.md",
			maxWidth: 10,
			want:     "a-very-lo…",
		},
		{
			name:     "zero width",
			input:    "notes.txt",
			maxWidth: 0,
			want:     "",
		},
		{
			name:     "width one",
			input:    "notes.txt",
			maxWidth: 1,
			want:     "…",
		},
		{
			name:     "empty input",
			input:    "",
			maxWidth: 5,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateLabel(tt.input, tt.maxWidth)
			if got != tt.want {
				t.Errorf("truncateLabel(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestTruncateLabelWideRunes(t *testing.T) {
	// Wide characters count two cells, so the result must respect cell
	// width rather than rune count
	in := "日本語のファイル.txt"
	got := truncateLabel(in, 8)
	if w := runewidth.StringWidth(got); w > 8 {
		t.Errorf("truncated width = %d, want <= 8 (got %q)", w, got)
	}
	if got == in {
		t.Error("expected truncation for wide input")
	}
}

func TestPadLine(t *testing.T) {
	if got := padLine("ab", 5); got != "ab   " {
		t.Errorf("padLine = %q", got)
	}
	if got := padLine("abcdef", 3); got != "abcdef" {
		t.Errorf("padLine should not cut, got %q", got)
	}
}
