// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/wik/internal/adapters/driving/tui/components/wrap"
	"github.com/custodia-labs/wik/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/wik/internal/core/domain"
)

// ResultList displays search results in a navigable list.
// Snippets are wrapped to the list width with matched terms highlighted.
type ResultList struct {
	results  []domain.SearchResult
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		results:  nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the result list.
func (r *ResultList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *ResultList) Update(msg tea.Msg) (*ResultList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the visible window of results followed by a scroll
// indicator.
func (r *ResultList) View() string {
	if len(r.results) == 0 {
		return r.styles.Muted.Render("No results")
	}

	budget := r.height - 2
	if budget < 1 {
		budget = 1
	}

	// Walk forward from the selection until the window is full, then
	// extend backwards into whatever space is left.
	blocks := make(map[int][]string)
	used := 0
	end := r.selected
	for end < len(r.results) {
		block := r.renderResult(end)
		if used > 0 && used+len(block) > budget {
			break
		}
		blocks[end] = block
		used += len(block)
		end++
	}
	start := r.selected
	for start > 0 {
		block := r.renderResult(start - 1)
		if used+len(block) > budget {
			break
		}
		start--
		blocks[start] = block
		used += len(block)
	}

	lines := make([]string, 0, used+2)
	for i := start; i < end; i++ {
		lines = append(lines, blocks[i]...)
	}

	lines = append(lines, "", r.styles.Muted.Render(
		fmt.Sprintf("[%d/%d]", r.selected+1, len(r.results)),
	))

	return strings.Join(lines, "\n")
}

// renderResult formats one result as a title line, its wrapped snippet and
// a blank separator.
func (r *ResultList) renderResult(index int) []string {
	result := &r.results[index]

	indicator := "  "
	titleStyle := r.styles.Subtitle
	if index == r.selected {
		indicator = "> "
		titleStyle = r.styles.Selected
	}

	title := result.Title
	if title == "" {
		title = "(Untitled)"
	}

	lines := []string{titleStyle.Render(indicator + title)}

	segments := result.Segments()
	pieces := make([]wrap.Piece, 0, len(segments))
	for _, seg := range segments {
		pieces = append(pieces, wrap.Piece{Text: seg.Text, Style: r.styles.Segment(seg.Highlighted)})
	}

	width := r.width - 4
	if width < 20 {
		width = 20
	}
	if len(pieces) > 0 {
		for _, line := range wrap.Lines(pieces, width) {
			lines = append(lines, "    "+line)
		}
	}

	return append(lines, "")
}

// SetResults updates the result list.
func (r *ResultList) SetResults(results []domain.SearchResult) {
	r.results = results
	r.selected = 0
}

// Results returns the current results.
func (r *ResultList) Results() []domain.SearchResult {
	return r.results
}

// Selected returns the index of the selected result.
func (r *ResultList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *ResultList) SetSelected(index int) {
	if index >= 0 && index < len(r.results) {
		r.selected = index
	}
}

// SelectedResult returns the currently selected result, or nil if none.
func (r *ResultList) SelectedResult() *domain.SearchResult {
	if len(r.results) == 0 || r.selected < 0 || r.selected >= len(r.results) {
		return nil
	}
	return &r.results[r.selected]
}

// MoveUp moves selection up.
func (r *ResultList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *ResultList) MoveDown() {
	if r.selected < len(r.results)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Width returns the current width.
func (r *ResultList) Width() int {
	return r.width
}

// Height returns the current height.
func (r *ResultList) Height() int {
	return r.height
}

// Count returns the number of results.
func (r *ResultList) Count() int {
	return len(r.results)
}

// IsEmpty returns whether the list is empty.
func (r *ResultList) IsEmpty() bool {
	return len(r.results) == 0
}
