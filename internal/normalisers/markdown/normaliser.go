package markdown

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/wik/internal/core/domain"
	"github.com/custodia-labs/wik/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.SpanNormaliser = (*Normaliser)(nil)

// Pre-compiled line patterns.
var (
	headingLine = regexp.MustCompile(`^(#{1,6})\s+(.*)`)
	inlineLink  = regexp.MustCompile(`\[(.*?)\]\(\./([^\s]+) "([^"]+)"\)`)
	imageLine   = regexp.MustCompile(`^\[!\[`)
)

// Normaliser converts markdown into spans.
type Normaliser struct{}

// New creates a new markdown normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Normalise converts markdown into an ordered span sequence.
//
// Each heading line becomes one heading span. Each other line becomes plain
// and link spans. Both are followed by a break span. Image lines produce no
// spans at all. Indices run from zero without gaps.
func (n *Normaliser) Normalise(markdown string) []domain.FormattedSpan {
	spans := make([]domain.FormattedSpan, 0)
	emit := func(span domain.FormattedSpan) {
		span.Index = len(spans)
		spans = append(spans, span)
	}

	for _, line := range splitLines(markdown) {
		switch {
		case headingLine.MatchString(line):
			m := headingLine.FindStringSubmatch(line)
			emit(domain.FormattedSpan{
				Text:         m[2],
				IsHeading:    true,
				HeadingLevel: len(m[1]),
			})

		case imageLine.MatchString(line):
			continue

		default:
			pos := 0
			for _, loc := range inlineLink.FindAllStringSubmatchIndex(line, -1) {
				start, end := loc[0], loc[1]
				if pos < start {
					emit(domain.FormattedSpan{Text: line[pos:start]})
				}
				emit(domain.FormattedSpan{
					Text: line[loc[2]:loc[3]],
					Link: line[loc[6]:loc[7]],
				})
				pos = end
			}
			if pos < len(line) {
				emit(domain.FormattedSpan{Text: line[pos:]})
			}
		}

		emit(domain.FormattedSpan{IsBreak: true})
	}

	return spans
}

// splitLines splits text on newlines, dropping a trailing carriage return
// from each line and the empty line after a final newline.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
