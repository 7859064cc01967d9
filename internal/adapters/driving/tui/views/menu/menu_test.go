package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wik/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/wik/internal/adapters/driving/tui/styles"
)

func selectedAction(t *testing.T, cmd tea.Cmd) Action {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(ActionSelected)
	require.True(t, ok)
	return msg.Action
}

func TestNewView(t *testing.T) {
	s := styles.DefaultStyles()

	view := NewView(s)

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
	assert.Len(t, view.Items(), 4)
	assert.Equal(t, 0, view.Selected())
	assert.Equal(t, messages.ViewSearch, view.Origin())
	assert.Equal(t, 80, view.width)
	assert.Equal(t, 24, view.height)
}

func TestNewView_NilStyles(t *testing.T) {
	view := NewView(nil)

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
}

func TestView_Init(t *testing.T) {
	assert.Nil(t, NewView(nil).Init())
}

func TestView_Update_WindowSize(t *testing.T) {
	view := NewView(nil)

	updated, cmd := view.Update(tea.WindowSizeMsg{Width: 100, Height: 50})

	assert.Equal(t, view, updated)
	assert.Nil(t, cmd)
	assert.True(t, view.ready)
	assert.Equal(t, 100, view.width)
	assert.Equal(t, 50, view.height)
}

func TestView_SetOrigin(t *testing.T) {
	view := NewView(nil)
	view.selected = 2

	view.SetOrigin(messages.ViewArticle)

	assert.Equal(t, messages.ViewArticle, view.Origin())
	assert.Equal(t, 0, view.Selected())
	require.Len(t, view.Items(), 5)
	assert.Equal(t, ActionBackToResults, view.Items()[1].Action)

	view.SetOrigin(messages.ViewSearch)

	assert.Len(t, view.Items(), 4)
	for _, item := range view.Items() {
		assert.NotEqual(t, ActionBackToResults, item.Action)
	}
}

func TestView_Navigate(t *testing.T) {
	view := NewView(nil)

	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, view.Selected())

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, 2, view.Selected())

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	assert.Equal(t, 1, view.Selected())

	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, view.Selected(), "selection stops at the top")

	for i := 0; i < 10; i++ {
		view.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, len(view.Items())-1, view.Selected(), "selection stops at the bottom")
}

func TestView_Enter_SelectsItemAction(t *testing.T) {
	tests := []struct {
		origin messages.ViewType
		index  int
		want   Action
	}{
		{messages.ViewSearch, 0, ActionResume},
		{messages.ViewSearch, 1, ActionNewSearch},
		{messages.ViewSearch, 2, ActionCredits},
		{messages.ViewSearch, 3, ActionQuit},
		{messages.ViewArticle, 1, ActionBackToResults},
		{messages.ViewArticle, 2, ActionNewSearch},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			view := NewView(nil)
			view.SetOrigin(tt.origin)
			view.selected = tt.index

			_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

			assert.Equal(t, tt.want, selectedAction(t, cmd))
		})
	}
}

func TestView_Esc_Resumes(t *testing.T) {
	view := NewView(nil)
	view.selected = 3

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, ActionResume, selectedAction(t, cmd))
}

func TestView_Q_Quits(t *testing.T) {
	view := NewView(nil)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	assert.Equal(t, ActionQuit, selectedAction(t, cmd))
}

func TestView_UnknownKey(t *testing.T) {
	view := NewView(nil)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})

	assert.Nil(t, cmd)
	assert.Equal(t, 0, view.Selected())
}

func TestView_View_NotReady(t *testing.T) {
	assert.Equal(t, "Initialising...", NewView(nil).View())
}

func TestView_View_Ready(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(80, 24)

	output := view.View()

	assert.Contains(t, output, "Search menu")
	assert.Contains(t, output, "Resume")
	assert.Contains(t, output, "New search")
	assert.Contains(t, output, "Credits")
	assert.Contains(t, output, "Quit")
	assert.NotContains(t, output, "Back to results")
}

func TestView_View_ArticleMenu(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(80, 24)
	view.SetOrigin(messages.ViewArticle)

	output := view.View()

	assert.Contains(t, output, "Article menu")
	assert.Contains(t, output, "Back to results")
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "resume", ActionResume.String())
	assert.Equal(t, "new_search", ActionNewSearch.String())
	assert.Equal(t, "back_to_results", ActionBackToResults.String())
	assert.Equal(t, "credits", ActionCredits.String())
	assert.Equal(t, "quit", ActionQuit.String())
	assert.Equal(t, "unknown", Action(99).String())
}
