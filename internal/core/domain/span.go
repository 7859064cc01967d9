package domain

import "fmt"

// FormattedSpan is one tagged unit of document text.
//
// A span is exactly one of: a heading, a link label, plain text or a
// paragraph break. Index values are assigned in a single left-to-right pass
// and are contiguous per document.
type FormattedSpan struct {
	// Index is the position of the span within its document.
	Index int `json:"index"`

	// Text is the displayable payload. Empty for breaks.
	Text string `json:"text"`

	// IsHeading marks a section heading.
	IsHeading bool `json:"is_heading"`

	// HeadingLevel is the number of heading markers, 0 when not a heading.
	HeadingLevel int `json:"heading_level"`

	// Link is the link target text. Non-empty iff the span is a hyperlink label.
	Link string `json:"link,omitempty"`

	// IsBreak marks a line/paragraph boundary.
	IsBreak bool `json:"is_break"`
}

// IsLink reports whether the span is a hyperlink label.
func (s FormattedSpan) IsLink() bool {
	return s.Link != ""
}

// String returns a debug representation of the span.
func (s FormattedSpan) String() string {
	switch {
	case s.IsHeading:
		return fmt.Sprintf("index: %d, text: %s, %d heading", s.Index, s.Text, s.HeadingLevel)
	case s.IsLink():
		return fmt.Sprintf("index: %d, text: %s, link: %s", s.Index, s.Text, s.Link)
	case s.IsBreak:
		return fmt.Sprintf("index: %d, line break", s.Index)
	default:
		return fmt.Sprintf("index: %d, text: %s", s.Index, s.Text)
	}
}

// SplitLines groups spans into display lines, using break spans as separators.
// Break spans are not included in the output. A trailing break does not
// produce an empty final line.
func SplitLines(spans []FormattedSpan) [][]FormattedSpan {
	var lines [][]FormattedSpan
	current := make([]FormattedSpan, 0)
	for _, span := range spans {
		if span.IsBreak {
			lines = append(lines, current)
			current = make([]FormattedSpan, 0)
			continue
		}
		current = append(current, span)
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}
