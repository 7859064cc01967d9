// Package search provides the search view for the TUI.
package search

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/wik/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/wik/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/wik/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/wik/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/wik/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/wik/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/wik/internal/core/domain"
)

// View represents the search view with input, results list, and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.TextInput
	list      *list.ResultList
	statusbar *status.Bar

	width      int
	height     int
	ready      bool
	err        error
	loading    bool
	focusInput bool // true = input mode (typing), false = results mode (navigating)
}

// NewView creates a new search view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:     s,
		keymap:     km,
		input:      input.NewTextInput(s, "Search: ", ""),
		list:       list.NewResultList(s),
		statusbar:  status.NewBar(s, km),
		width:      80,
		height:     24,
		focusInput: true, // Start in input mode
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchLoaded:
		v.handleSearchLoaded(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.Failed(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	if v.focusInput {
		v.input, cmd = v.input.Update(msg)
	}
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if keymap.Matches(msg.String(), v.keymap.Menu) {
		return v, func() tea.Msg {
			return messages.MenuOpened{From: messages.ViewSearch}
		}
	}

	// Input mode: enter submits, everything else types.
	if v.focusInput {
		if msg.Type == tea.KeyEnter {
			query := strings.TrimSpace(v.input.Value())
			if query == "" {
				return v, nil
			}
			return v, func() tea.Msg {
				return messages.SearchRequested{Query: query}
			}
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	// Results mode
	switch {
	case msg.Type == tea.KeyEnter:
		result := v.list.SelectedResult()
		if result == nil {
			return v, nil
		}
		title := result.Title
		return v, func() tea.Msg {
			return messages.ArticleRequested{Title: title}
		}
	case keymap.Matches(msg.String(), v.keymap.Up):
		v.list.MoveUp()
	case keymap.Matches(msg.String(), v.keymap.Down):
		v.list.MoveDown()
	case keymap.Matches(msg.String(), v.keymap.NewSearch):
		return v, v.FocusInput(true)
	}

	return v, nil
}

// handleSearchLoaded applies a finished load. A failure keeps the
// previous results on screen.
func (v *View) handleSearchLoaded(msg messages.SearchLoaded) {
	v.loading = false
	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.Failed(msg.Err)
		return
	}

	v.err = nil
	v.list.SetResults(msg.Results)
	v.statusbar.Results(msg.Query, len(msg.Results))

	if len(msg.Results) > 0 {
		v.FocusResults()
	}
}

// SetLoading marks a search for query as in flight.
func (v *View) SetLoading(query string) {
	v.loading = true
	v.input.SetValue(query)
	v.statusbar.Searching(query)
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)
	sections = append(sections, v.styles.Title.Render("wik"), "", v.input.View(), "")

	if v.loading && v.list.IsEmpty() {
		sections = append(sections, v.styles.Muted.Render("Loading..."))
	} else {
		sections = append(sections, v.list.View())
	}

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	// Allocate space to components
	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-9) // Reserve space for header, input, status
	v.statusbar.SetWidth(width)
}

// FocusInput switches to input mode, optionally clearing the query.
func (v *View) FocusInput(clear bool) tea.Cmd {
	v.focusInput = true
	if clear {
		v.input.SetValue("")
	}
	return v.input.Focus()
}

// FocusResults switches to results mode.
func (v *View) FocusResults() {
	v.focusInput = false
	v.input.Blur()
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current search query.
func (v *View) Query() string {
	return v.input.Value()
}

// Results returns the current search results.
func (v *View) Results() []domain.SearchResult {
	return v.list.Results()
}

// SelectedIndex returns the index of the selected result.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// SelectedResult returns the currently selected result.
func (v *View) SelectedResult() *domain.SearchResult {
	return v.list.SelectedResult()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Loading reports whether a search is in flight.
func (v *View) Loading() bool {
	return v.loading
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}
