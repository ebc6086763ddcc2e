package patchnotes

import (
	"strings"
	"unicode/utf8"
)

// WrapText packs the space-separated words of text into lines of at most
// maxWidth characters. Words are never split, so a single word longer than
// maxWidth gets a line of its own. Empty input yields no lines.
func WrapText(text string, maxWidth int) []string {
	var lines []string
	var line strings.Builder
	lineLen := 0

	for _, word := range strings.Split(text, " ") {
		if word == "" {
			continue
		}
		wordLen := utf8.RuneCountInString(word)

		if lineLen > 0 && lineLen+wordLen+1 > maxWidth {
			lines = append(lines, line.String())
			line.Reset()
			lineLen = 0
		}
		if lineLen > 0 {
			line.WriteByte(' ')
			lineLen++
		}
		line.WriteString(word)
		lineLen += wordLen
	}

	if lineLen > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
