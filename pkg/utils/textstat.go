package utils

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// CountLines returns the number of lines in text. Empty text is one
// line; a trailing newline opens another, matching how the editor
// places its cursor.
func CountLines(text string) int {
	return strings.Count(text, "\n") + 1
}

// CountWords returns the number of whitespace-separated words in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// CountRunes returns the number of characters in text.
func CountRunes(text string) int {
	return utf8.RuneCountInString(text)
}

// FormatDocStats formats line, word and character counts for display.
func FormatDocStats(text string) string {
	return fmt.Sprintf("%dL %dW %dC", CountLines(text), CountWords(text), CountRunes(text))
}
