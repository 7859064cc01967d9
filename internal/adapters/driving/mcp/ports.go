package mcp

import (
	"github.com/custodia-labs/wik/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search runs encyclopedia searches.
	Search driving.SearchService

	// Article loads formatted articles.
	Article driving.ArticleService

	// Cache exposes the session cache. Optional.
	Cache driving.CacheService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Article == nil {
		return ErrMissingArticleService
	}
	return nil
}
