// Package credits provides the credits screen for the TUI.
package credits

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/wik/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/wik/internal/adapters/driving/tui/styles"
)

var lines = []string{
	"Article text and search results come from Wikipedia,",
	"the free encyclopedia, and are available under the",
	"Creative Commons Attribution-ShareAlike 4.0 License.",
	"",
	"Built with Bubble Tea, Bubbles and Lip Gloss by Charm,",
	"and Cobra by spf13.",
}

// View is the credits screen. Any key returns to the menu.
type View struct {
	styles *styles.Styles
	width  int
	height int
	ready  bool
}

// NewView creates a new credits view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{styles: s, width: 80, height: 24}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the credits view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
	case tea.KeyMsg:
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}
	return v, nil
}

// View renders the credits.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	body := make([]string, 0, len(lines)+4)
	body = append(body, v.styles.Title.Render("Credits"), "")
	for _, line := range lines {
		body = append(body, v.styles.Normal.Render(line))
	}
	body = append(body, "", v.styles.Help.Render("press any key to return"))

	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, body...))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}
