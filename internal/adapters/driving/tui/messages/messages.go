// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"time"

	"github.com/custodia-labs/wik/internal/core/domain"
)

// PollInterval is how often the app polls its background loads.
const PollInterval = 16 * time.Millisecond

// SearchRequested asks the app to launch a search.
type SearchRequested struct {
	Query string
}

// ArticleRequested asks the app to launch an article load.
type ArticleRequested struct {
	Title string
}

// SearchLoaded carries a finished search load to the search view.
// On failure Results still holds the previous results.
type SearchLoaded struct {
	Query   string
	Results []domain.SearchResult
	Err     error
}

// ArticleLoaded carries a finished article load to the article view.
type ArticleLoaded struct {
	Article *domain.Article
	Err     error
}

// Tick drives the poll loop.
type Tick time.Time

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// MenuOpened is sent when a screen opens the menu over itself.
type MenuOpened struct {
	From ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewTitle is the start screen with a single query input.
	ViewTitle ViewType = iota
	// ViewSearch is the search input and results view.
	ViewSearch
	// ViewArticle shows a formatted article.
	ViewArticle
	// ViewMenu is the search or article menu.
	ViewMenu
	// ViewCredits shows the credits screen.
	ViewCredits
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewTitle:
		return "title"
	case ViewSearch:
		return "search"
	case ViewArticle:
		return "article"
	case ViewMenu:
		return "menu"
	case ViewCredits:
		return "credits"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
