// Package wrap word-wraps runs of styled text to a fixed width.
package wrap

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Piece is a run of text rendered with one style.
type Piece struct {
	Text  string
	Style lipgloss.Style
}

// Lines wraps pieces into lines no wider than width cells.
//
// Words are split on spaces and rendered one at a time, so a style never
// spans a line break. Runs of spaces collapse to one, leading spaces on a
// wrapped line are dropped, and words longer than width are hard-split.
func Lines(pieces []Piece, width int) []string {
	if width < 1 {
		width = 1
	}

	var (
		lines        []string
		line         strings.Builder
		lineWidth    int
		pendingSpace bool
	)

	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineWidth = 0
		pendingSpace = false
	}

	put := func(word string, style lipgloss.Style) {
		w := lipgloss.Width(word)
		sep := 0
		if pendingSpace && lineWidth > 0 {
			sep = 1
		}
		if lineWidth > 0 && lineWidth+sep+w > width {
			flush()
			sep = 0
		}
		if sep == 1 {
			line.WriteByte(' ')
			lineWidth++
		}
		line.WriteString(style.Render(word))
		lineWidth += w
		pendingSpace = false
	}

	for _, p := range pieces {
		text := p.Text
		for len(text) > 0 {
			if text[0] == ' ' {
				pendingSpace = true
				text = text[1:]
				continue
			}
			end := strings.IndexByte(text, ' ')
			if end < 0 {
				end = len(text)
			}
			word := text[:end]
			text = text[end:]

			for _, chunk := range split(word, width) {
				put(chunk, p.Style)
			}
		}
	}

	if lineWidth > 0 || len(lines) == 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// Plain wraps unstyled text.
func Plain(text string, width int) []string {
	return Lines([]Piece{{Text: text, Style: lipgloss.NewStyle()}}, width)
}

// split hard-splits word into chunks of at most width runes.
func split(word string, width int) []string {
	runes := []rune(word)
	if len(runes) <= width {
		return []string{word}
	}
	chunks := make([]string, 0, len(runes)/width+1)
	for len(runes) > width {
		chunks = append(chunks, string(runes[:width]))
		runes = runes[width:]
	}
	if len(runes) > 0 {
		chunks = append(chunks, string(runes))
	}
	return chunks
}
