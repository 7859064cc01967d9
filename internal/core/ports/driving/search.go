package driving

import (
	"context"

	"github.com/custodia-labs/wik/internal/core/domain"
)

// SearchService provides search capabilities to external actors.
type SearchService interface {
	// Search returns hits for query, served from the session cache when
	// the same request was made before.
	Search(ctx context.Context, query string) ([]domain.SearchResult, error)

	// SearchLimit is Search with an explicit hit limit.
	// A non-positive limit uses the configured one.
	SearchLimit(ctx context.Context, query string, limit int) ([]domain.SearchResult, error)
}

// ArticleService loads articles for display.
type ArticleService interface {
	// Article returns the normalised and pruned spans of the article
	// with the given canonical title.
	Article(ctx context.Context, title string) (*domain.Article, error)
}
