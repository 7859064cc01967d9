package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wik/internal/adapters/driving/tui/styles"
)

func TestNewTextInput(t *testing.T) {
	s := styles.DefaultStyles()
	input := NewTextInput(s, "Search: ", "")

	require.NotNil(t, input)
	assert.Equal(t, "", input.Value())
	assert.True(t, input.Focused())
	assert.Equal(t, DefaultPlaceholder, input.textinput.Placeholder)
}

func TestNewTextInput_NilStyles(t *testing.T) {
	input := NewTextInput(nil, "", "type here")

	require.NotNil(t, input)
	assert.NotNil(t, input.styles)
	assert.Equal(t, "type here", input.textinput.Placeholder)
}

func TestTextInput_Init(t *testing.T) {
	input := NewTextInput(nil, "", "")

	assert.NotNil(t, input.Init())
}

func TestTextInput_Update(t *testing.T) {
	input := NewTextInput(nil, "", "")

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}
	updated, _ := input.Update(msg)

	assert.Equal(t, input, updated)
	assert.Equal(t, "a", input.Value())
}

func TestTextInput_IgnoresKeysWhenBlurred(t *testing.T) {
	input := NewTextInput(nil, "", "")
	input.Blur()

	input.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})

	assert.Equal(t, "", input.Value())
}

func TestTextInput_View(t *testing.T) {
	input := NewTextInput(nil, "Search: ", "")

	assert.Contains(t, input.View(), "Search")
}

func TestTextInput_ViewWithoutLabel(t *testing.T) {
	input := NewTextInput(nil, "", "")
	input.SetValue("rust")

	assert.Contains(t, input.View(), "rust")
}

func TestTextInput_SetValue(t *testing.T) {
	input := NewTextInput(nil, "", "")

	input.SetValue("hello world")

	assert.Equal(t, "hello world", input.Value())
}

func TestTextInput_FocusBlur(t *testing.T) {
	input := NewTextInput(nil, "", "")

	input.Blur()
	assert.False(t, input.Focused())

	input.Focus()
	assert.True(t, input.Focused())
}

func TestTextInput_SetWidth(t *testing.T) {
	input := NewTextInput(nil, "Search: ", "")

	input.SetWidth(100)

	assert.Equal(t, 100, input.Width())
	assert.Equal(t, 100-8-6, input.textinput.Width)
}

func TestTextInput_SetWidth_Minimum(t *testing.T) {
	input := NewTextInput(nil, "Search: ", "")

	input.SetWidth(10)

	assert.Equal(t, 20, input.textinput.Width)
}

func TestTextInput_Reset(t *testing.T) {
	input := NewTextInput(nil, "", "")
	input.SetValue("something")

	input.Reset()

	assert.Equal(t, "", input.Value())
}
