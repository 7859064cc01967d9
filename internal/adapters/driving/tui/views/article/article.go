// Package article provides the article reading view for the TUI.
package article

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/wik/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/wik/internal/adapters/driving/tui/components/wrap"
	"github.com/custodia-labs/wik/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/wik/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/wik/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/wik/internal/core/domain"
)

// View shows a formatted article with scrolling.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	statusbar *status.Bar

	article      *domain.Article
	pending      string
	lines        []string
	scrollOffset int
	width        int
	height       int
	ready        bool
	err          error
	loading      bool
}

// NewView creates a new article view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:    s,
		keymap:    km,
		statusbar: status.NewBar(s, km),
		width:     80,
		height:    24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the article view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ArticleLoaded:
		v.handleArticleLoaded(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.Failed(msg.Err)
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Menu):
		return v, func() tea.Msg {
			return messages.MenuOpened{From: messages.ViewArticle}
		}
	case keymap.Matches(key, v.keymap.Up):
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}
	case keymap.Matches(key, v.keymap.Down):
		if v.scrollOffset < v.maxScrollOffset() {
			v.scrollOffset++
		}
	case keymap.Matches(key, v.keymap.PageUp):
		v.scrollOffset -= v.visibleLines()
		if v.scrollOffset < 0 {
			v.scrollOffset = 0
		}
	case keymap.Matches(key, v.keymap.PageDown):
		v.scrollOffset += v.visibleLines()
		if v.scrollOffset > v.maxScrollOffset() {
			v.scrollOffset = v.maxScrollOffset()
		}
	case keymap.Matches(key, v.keymap.Top):
		v.scrollOffset = 0
	case keymap.Matches(key, v.keymap.Bottom):
		v.scrollOffset = v.maxScrollOffset()
	}

	return v, nil
}

// handleArticleLoaded applies a finished load. A failure keeps the
// previous article on screen.
func (v *View) handleArticleLoaded(msg messages.ArticleLoaded) {
	v.loading = false
	v.pending = ""
	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.Failed(msg.Err)
		return
	}

	v.err = nil
	v.article = msg.Article
	v.scrollOffset = 0
	v.render()
	v.statusbar.Reading(msg.Article.Title)
}

// SetLoading marks a load of title as in flight.
func (v *View) SetLoading(title string) {
	v.loading = true
	v.pending = title
	v.statusbar.Fetching(title)
}

// render lays the article's spans out as wrapped, styled lines.
func (v *View) render() {
	v.lines = nil
	if v.article == nil {
		return
	}

	contentWidth := v.width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	for _, line := range domain.SplitLines(v.article.Spans) {
		if len(line) == 0 {
			v.lines = append(v.lines, "")
			continue
		}
		pieces := make([]wrap.Piece, 0, len(line))
		for _, span := range line {
			pieces = append(pieces, wrap.Piece{Text: span.Text, Style: v.styles.Span(span)})
		}
		v.lines = append(v.lines, wrap.Lines(pieces, contentWidth)...)
	}
}

// visibleLines returns the number of lines that can be displayed.
func (v *View) visibleLines() int {
	// Reserve lines for title, separator, scroll indicator and status bar
	available := v.height - 7
	if available < 1 {
		available = 1
	}
	return available
}

// maxScrollOffset returns the maximum scroll offset.
func (v *View) maxScrollOffset() int {
	maxOffset := len(v.lines) - v.visibleLines()
	if maxOffset < 0 {
		maxOffset = 0
	}
	return maxOffset
}

// View renders the article view.
func (v *View) View() string {
	var b strings.Builder

	title := "Article"
	switch {
	case v.article != nil:
		title = v.article.Title
	case v.pending != "":
		title = v.pending
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", minInt(v.width-4, 60)))
	b.WriteString("\n\n")

	switch {
	case v.article == nil && v.loading:
		b.WriteString(v.styles.Muted.Render("Loading article..."))
		b.WriteString("\n")
	case v.article == nil && v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n")
	case len(v.lines) == 0:
		b.WriteString(v.styles.Muted.Render("(No content)"))
		b.WriteString("\n")
	default:
		visible := v.visibleLines()
		for i := v.scrollOffset; i < len(v.lines) && i < v.scrollOffset+visible; i++ {
			b.WriteString(v.lines[i])
			b.WriteString("\n")
		}

		if len(v.lines) > visible {
			percentage := 0
			if v.maxScrollOffset() > 0 {
				percentage = v.scrollOffset * 100 / v.maxScrollOffset()
			}
			b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d%%] Line %d-%d of %d",
				percentage,
				v.scrollOffset+1,
				minInt(v.scrollOffset+visible, len(v.lines)),
				len(v.lines))))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.statusbar.View())

	return b.String()
}

// SetDimensions sets the view dimensions and re-wraps the article.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.statusbar.SetWidth(width)
	v.render()
	if v.scrollOffset > v.maxScrollOffset() {
		v.scrollOffset = v.maxScrollOffset()
	}
}

// Article returns the article on screen, if any.
func (v *View) Article() *domain.Article {
	return v.article
}

// Lines returns the rendered lines.
func (v *View) Lines() []string {
	return v.lines
}

// ScrollOffset returns the index of the first visible line.
func (v *View) ScrollOffset() int {
	return v.scrollOffset
}

// Loading reports whether a load is in flight.
func (v *View) Loading() bool {
	return v.loading
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
