// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/wik/internal/core/domain"
)

// Theme is the palette, one colour per role on screen.
type Theme struct {
	// Accent marks titles, major headings and the selected result.
	Accent lipgloss.Color

	// Link colours hyperlinks inside articles.
	Link lipgloss.Color

	// Match colours the terms the search engine matched in a snippet.
	Match lipgloss.Color

	// Text is body text.
	Text lipgloss.Color

	// Paper is the page colour, used behind selected text.
	Paper lipgloss.Color

	// Dim is for hints, counters and loading messages.
	Dim lipgloss.Color

	// Error is for failed loads.
	Error lipgloss.Color

	// Frame is the colour of borders.
	Frame lipgloss.Color

	// Bar is the status bar background.
	Bar lipgloss.Color
}

// DefaultTheme returns a dark palette after Wikipedia's own colours.
func DefaultTheme() *Theme {
	return &Theme{
		Accent: lipgloss.Color("#6B9BF2"), // Link blue
		Link:   lipgloss.Color("#36C5B3"), // Teal
		Match:  lipgloss.Color("#FFCC33"), // Yellow
		Text:   lipgloss.Color("#EAECF0"), // Paper
		Paper:  lipgloss.Color("#202122"), // Base black
		Dim:    lipgloss.Color("#72777D"), // Gray
		Error:  lipgloss.Color("#DD3333"), // Red
		Frame:  lipgloss.Color("#54595D"), // Border gray
		Bar:    lipgloss.Color("#101418"),
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Normal     lipgloss.Style
	Muted      lipgloss.Style
	Selected   lipgloss.Style
	Error      lipgloss.Style
	InputField lipgloss.Style
	StatusBar  lipgloss.Style
	Help       lipgloss.Style
	Border     lipgloss.Style

	// Heading is used for section headings of level 3 and deeper,
	// MajorHeading for levels 1 and 2.
	Heading      lipgloss.Style
	MajorHeading lipgloss.Style

	Link lipgloss.Style

	// Highlight marks matched terms in search snippets.
	Highlight lipgloss.Style
}

// NewStyles builds styles from theme, or from DefaultTheme when nil.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Link),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Text),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Dim),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Paper).
			Background(theme.Accent),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Frame).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Dim).
			Background(theme.Bar).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Dim),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Frame),

		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Text),

		MajorHeading: lipgloss.NewStyle().
			Bold(true).
			Italic(true).
			Foreground(theme.Accent),

		Link: lipgloss.NewStyle().
			Underline(true).
			Foreground(theme.Link),

		Highlight: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Match),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// HeadingStyle returns the style for a heading of the given level.
func (s *Styles) HeadingStyle(level int) lipgloss.Style {
	if level <= 2 {
		return s.MajorHeading
	}
	return s.Heading
}

// Span returns the style an article span is drawn with. Headings win
// over links.
func (s *Styles) Span(span domain.FormattedSpan) lipgloss.Style {
	switch {
	case span.IsHeading:
		return s.HeadingStyle(span.HeadingLevel)
	case span.IsLink():
		return s.Link
	default:
		return s.Normal
	}
}

// Segment returns the style of a search snippet segment.
func (s *Styles) Segment(highlighted bool) lipgloss.Style {
	if highlighted {
		return s.Highlight
	}
	return s.Normal
}
