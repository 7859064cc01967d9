// Package status provides the one-line status bar shown under each view.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/wik/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/wik/internal/adapters/driving/tui/styles"
)

// State is what the bar is reporting on.
type State string

const (
	StateIdle      State = "idle"
	StateSearching State = "searching"
	StateResults   State = "results"
	StateFetching  State = "fetching"
	StateReading   State = "reading"
	StateFailed    State = "failed"
)

// Bar reports the last search or article load on the left and the keys
// that apply to it on the right.
type Bar struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	state  State

	// subject is the query or article title the state refers to.
	subject string
	hits    int
	err     error
	width   int
}

// NewBar creates a status bar. Nil arguments fall back to the defaults.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &Bar{styles: s, keymap: km, state: StateIdle, width: 80}
}

// Init implements tea.Model.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. The bar is driven by the owning view, not
// by messages.
func (s *Bar) Update(tea.Msg) (*Bar, tea.Cmd) {
	return s, nil
}

// Searching reports a search for query in flight.
func (s *Bar) Searching(query string) {
	s.state, s.subject, s.err = StateSearching, query, nil
}

// Results reports a finished search for query that returned hits results.
func (s *Bar) Results(query string, hits int) {
	s.state, s.subject, s.hits, s.err = StateResults, query, hits, nil
}

// Fetching reports an article load for title in flight.
func (s *Bar) Fetching(title string) {
	s.state, s.subject, s.err = StateFetching, title, nil
}

// Reading reports title as the article on screen.
func (s *Bar) Reading(title string) {
	s.state, s.subject, s.err = StateReading, title, nil
}

// Failed reports err. The subject of the failed load is kept so the
// message can name it.
func (s *Bar) Failed(err error) {
	s.state, s.err = StateFailed, err
}

// Clear returns the bar to idle.
func (s *Bar) Clear() {
	s.state, s.subject, s.hits, s.err = StateIdle, "", 0, nil
}

// State returns what the bar is reporting on.
func (s *Bar) State() State {
	return s.state
}

// Subject returns the query or title the current state refers to.
func (s *Bar) Subject() string {
	return s.subject
}

// Hits returns the result count of the last finished search.
func (s *Bar) Hits() int {
	return s.hits
}

// SetWidth sets the rendered width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the rendered width.
func (s *Bar) Width() int {
	return s.width
}

// View renders the bar padded to its width.
func (s *Bar) View() string {
	left := s.describe()
	right := s.hints()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}
	return s.styles.StatusBar.Width(s.width).Render(left + strings.Repeat(" ", padding) + right)
}

func (s *Bar) describe() string {
	switch s.state {
	case StateSearching:
		return s.styles.Muted.Render(fmt.Sprintf("Searching for %q...", s.subject))
	case StateResults:
		switch s.hits {
		case 0:
			return s.styles.Muted.Render(fmt.Sprintf("No results for %q", s.subject))
		case 1:
			return s.styles.Normal.Render(fmt.Sprintf("1 result for %q", s.subject))
		}
		return s.styles.Normal.Render(fmt.Sprintf("%d results for %q", s.hits, s.subject))
	case StateFetching:
		return s.styles.Muted.Render(fmt.Sprintf("Loading %q...", s.subject))
	case StateReading:
		return s.styles.Title.Render(s.subject)
	case StateFailed:
		if s.err == nil {
			return s.styles.Error.Render("Error")
		}
		return s.styles.Error.Render("Error: " + firstLine(s.err.Error()))
	case StateIdle:
	}
	return s.styles.Muted.Render("Type a query and press enter")
}

func (s *Bar) hints() string {
	var bindings []key.Binding
	switch {
	case s.state == StateReading:
		bindings = s.keymap.ArticleHelp()
	case s.state == StateResults && s.hits > 0:
		bindings = s.keymap.ResultsHelp()
	default:
		bindings = s.keymap.ShortHelp()
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return s.styles.Help.Render(strings.Join(parts, " | "))
}

// firstLine keeps multi-line transport errors to one row.
func firstLine(msg string) string {
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		return msg[:i]
	}
	return msg
}
