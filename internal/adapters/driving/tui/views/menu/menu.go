// Package menu provides the search and article menus for the TUI.
package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/wik/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/wik/internal/adapters/driving/tui/styles"
)

// Action identifies what a menu item does. The app interprets it.
type Action int

const (
	// ActionResume returns to the screen the menu was opened from.
	ActionResume Action = iota
	// ActionNewSearch focuses an empty query input.
	ActionNewSearch
	// ActionBackToResults returns from an article to its result list.
	ActionBackToResults
	// ActionCredits shows the credits screen.
	ActionCredits
	// ActionQuit exits the application.
	ActionQuit
)

// String returns the string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionResume:
		return "resume"
	case ActionNewSearch:
		return "new_search"
	case ActionBackToResults:
		return "back_to_results"
	case ActionCredits:
		return "credits"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// ActionSelected is sent when a menu item is chosen.
type ActionSelected struct {
	Action Action
}

// Item represents a single menu option.
type Item struct {
	Label  string
	Action Action
}

// searchItems is the menu shown over the search screen.
var searchItems = []Item{
	{Label: "Resume", Action: ActionResume},
	{Label: "New search", Action: ActionNewSearch},
	{Label: "Credits", Action: ActionCredits},
	{Label: "Quit", Action: ActionQuit},
}

// articleItems is the menu shown over the article screen.
var articleItems = []Item{
	{Label: "Resume", Action: ActionResume},
	{Label: "Back to results", Action: ActionBackToResults},
	{Label: "New search", Action: ActionNewSearch},
	{Label: "Credits", Action: ActionCredits},
	{Label: "Quit", Action: ActionQuit},
}

// View represents the menu view.
type View struct {
	styles   *styles.Styles
	origin   messages.ViewType
	items    []Item
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new menu view showing the search menu.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:   s,
		origin:   messages.ViewSearch,
		items:    searchItems,
		selected: 0,
		width:    80,
		height:   24,
	}
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetOrigin selects the item set for the screen the menu opens over and
// resets the selection.
func (v *View) SetOrigin(origin messages.ViewType) {
	v.origin = origin
	v.selected = 0
	if origin == messages.ViewArticle {
		v.items = articleItems
	} else {
		v.items = searchItems
	}
}

// Origin returns the screen the menu was opened over.
func (v *View) Origin() messages.ViewType {
	return v.origin
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < len(v.items)-1 {
				v.selected++
			}
			return v, nil

		case "enter":
			return v, selectAction(v.items[v.selected].Action)

		case "esc":
			return v, selectAction(ActionResume)

		case "q":
			return v, selectAction(ActionQuit)
		}
	}

	return v, nil
}

func selectAction(action Action) tea.Cmd {
	return func() tea.Msg {
		return ActionSelected{Action: action}
	}
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	heading := "Search menu"
	if v.origin == messages.ViewArticle {
		heading = "Article menu"
	}
	b.WriteString(v.styles.Title.Render("wik"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render(heading))
	b.WriteString("\n\n")

	for i, item := range v.items {
		cursor := "  "
		style := v.styles.Normal

		if i == v.selected {
			cursor = "> "
			style = v.styles.Subtitle
		}

		b.WriteString(cursor + style.Render(item.Label))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Select  [Esc] Resume  [q] Quit"))

	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center,
		v.styles.Border.Padding(1, 4).Render(b.String()))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// Items returns the items currently shown.
func (v *View) Items() []Item {
	return v.items
}
