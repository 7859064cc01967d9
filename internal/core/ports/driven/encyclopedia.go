package driven

import (
	"context"

	"github.com/custodia-labs/wik/internal/core/domain"
)

// EncyclopediaClient talks to the remote encyclopedia API.
//
// The URL methods are pure and render the exact request the fetch methods
// issue, so the rendered URL doubles as the cache key for that request.
type EncyclopediaClient interface {
	// SearchURL renders the search request for query.
	SearchURL(query string, limit int) string

	// ArticleURL renders the article request for title.
	ArticleURL(title string) string

	// Search runs a full-text search.
	// Errors wrap domain.ErrTransport or domain.ErrDeserialization.
	Search(ctx context.Context, query string, limit int) (*domain.SearchResponse, error)

	// ArticleHTML fetches the rendered HTML of an article.
	// A missing page matches both domain.ErrTransport and domain.ErrNotFound.
	ArticleHTML(ctx context.Context, title string) (string, error)
}
