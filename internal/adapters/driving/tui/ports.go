// Package tui provides the interactive terminal user interface for wik.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/wik/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search runs full-text searches.
	Search driving.SearchService

	// Article loads formatted articles.
	Article driving.ArticleService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(search driving.SearchService, article driving.ArticleService) *Ports {
	return &Ports{
		Search:  search,
		Article: article,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Article == nil {
		return ErrMissingArticleService
	}
	return nil
}
