// Package title provides the start screen of the TUI.
package title

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/wik/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/wik/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/wik/internal/adapters/driving/tui/styles"
)

const banner = `          _ _
__      _(_) | __
\ \ /\ / / | |/ /
 \ V  V /| |   <
  \_/\_/ |_|_|\_\`

// View is the title screen: a banner and a single query input.
type View struct {
	styles *styles.Styles
	input  *input.TextInput
	width  int
	height int
	ready  bool
}

// NewView creates a new title view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		input:  input.NewTextInput(s, "", ""),
		width:  80,
		height: 24,
	}
}

// Init initialises the title view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the title view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			query := strings.TrimSpace(v.input.Value())
			if query == "" {
				return v, nil
			}
			return v, func() tea.Msg {
				return messages.SearchRequested{Query: query}
			}
		case tea.KeyEsc:
			return v, func() tea.Msg { return messages.Quit{} }
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// View renders the title screen centred in the terminal.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		v.styles.Title.Render(banner),
		"",
		v.styles.Muted.Render("Wikipedia in your terminal"),
		"",
		v.input.View(),
		"",
		v.styles.Help.Render("[enter] search  [esc] quit"),
	)

	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, content)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.SetWidth(width / 2)
}

// Query returns the text typed so far.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery replaces the typed text.
func (v *View) SetQuery(query string) {
	v.input.SetValue(query)
}
