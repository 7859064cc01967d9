package domain

import "strings"

// ArticlePayload is the payload cached for an article request.
type ArticlePayload struct {
	// Title is the canonical article title that was requested.
	Title string `json:"title"`

	// Markdown is the article body converted from the source HTML.
	Markdown string `json:"markdown_content"`
}

// Article is a loaded article ready for display.
type Article struct {
	// Title is the canonical article title.
	Title string

	// Spans is the normalised and pruned span sequence.
	Spans []FormattedSpan
}

// Text renders the spans as plain text, one display line per output line.
// Headings keep their level as leading '#' markers and links show their
// label only.
func (a *Article) Text() string {
	var b strings.Builder
	for _, line := range SplitLines(a.Spans) {
		for _, span := range line {
			if span.IsHeading {
				b.WriteString(strings.Repeat("#", span.HeadingLevel))
				b.WriteByte(' ')
			}
			b.WriteString(span.Text)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
