package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/custodia-labs/wik/internal/core/domain"
	"github.com/custodia-labs/wik/internal/core/ports/driven"
	"github.com/custodia-labs/wik/internal/core/ports/driving"
	"github.com/custodia-labs/wik/internal/logger"
)

// Ensure FetchService implements the interfaces.
var (
	_ driving.SearchService  = (*FetchService)(nil)
	_ driving.ArticleService = (*FetchService)(nil)
)

// snippetEllipsis surrounds every displayed snippet.
const snippetEllipsis = "..."

// FetchService serves search and article requests through the request cache.
//
// A request is keyed by the URL the client would issue for it. Hits are
// answered from the cache without touching the network. Misses are fetched
// outside the cache lock, and concurrent misses for the same key share one
// network call.
type FetchService struct {
	cache      *RequestCache
	client     driven.EncyclopediaClient
	converter  driven.MarkupConverter
	normaliser driven.SpanNormaliser
	pruner     driven.SectionPruner
	limit      int

	group singleflight.Group
}

// NewFetchService creates a new fetch service.
// A non-positive limit falls back to domain.DefaultSearchLimit.
func NewFetchService(
	cache *RequestCache,
	client driven.EncyclopediaClient,
	converter driven.MarkupConverter,
	normaliser driven.SpanNormaliser,
	pruner driven.SectionPruner,
	limit int,
) *FetchService {
	if limit <= 0 {
		limit = domain.DefaultSearchLimit
	}
	return &FetchService{
		cache:      cache,
		client:     client,
		converter:  converter,
		normaliser: normaliser,
		pruner:     pruner,
		limit:      limit,
	}
}

// Cache returns the request cache backing the service.
func (s *FetchService) Cache() *RequestCache {
	return s.cache
}

// Search returns hits for query with snippets wrapped in ellipses.
func (s *FetchService) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	return s.SearchLimit(ctx, query, s.limit)
}

// SearchLimit is Search with an explicit hit limit. Different limits are
// different requests and are cached separately. A non-positive limit uses
// the configured one.
func (s *FetchService) SearchLimit(ctx context.Context, query string, limit int) ([]domain.SearchResult, error) {
	if limit <= 0 {
		limit = s.limit
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search: empty query: %w", domain.ErrInvalidInput)
	}

	logger.Section("Search")
	logger.Debug("Query: %q, limit: %d", query, limit)

	key := s.client.SearchURL(query, limit)
	resp, err := getOrFetch(ctx, s, key, func(ctx context.Context) (domain.SearchResponse, error) {
		r, err := s.client.Search(ctx, query, limit)
		if err != nil {
			return domain.SearchResponse{}, err
		}
		return *r, nil
	})
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	// The cached payload is shared, so decorate a copy.
	results := make([]domain.SearchResult, len(resp.Results))
	for i, r := range resp.Results {
		r.Snippet = snippetEllipsis + r.Snippet + snippetEllipsis
		results[i] = r
	}

	logger.Info("Search %q: %d results", query, len(results))
	return results, nil
}

// Article returns the normalised and pruned spans of the titled article.
// The cache holds the converted markdown, so spans are rebuilt on every load.
func (s *FetchService) Article(ctx context.Context, title string) (*domain.Article, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("article: empty title: %w", domain.ErrInvalidInput)
	}

	logger.Section("Article")
	logger.Debug("Title: %q", title)

	key := s.client.ArticleURL(title)
	payload, err := getOrFetch(ctx, s, key, func(ctx context.Context) (domain.ArticlePayload, error) {
		html, err := s.client.ArticleHTML(ctx, title)
		if err != nil {
			return domain.ArticlePayload{}, err
		}
		markdown, err := s.converter.Convert(ctx, html)
		if err != nil {
			return domain.ArticlePayload{}, fmt.Errorf("convert markup: %w: %w", domain.ErrDeserialization, err)
		}
		return domain.ArticlePayload{Title: title, Markdown: markdown}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("article %q: %w", title, err)
	}

	spans := s.normaliser.Normalise(payload.Markdown)
	pruned := s.pruner.Prune(spans)
	logger.Debug("Article %q: %d spans, %d after pruning", title, len(spans), len(pruned))

	return &domain.Article{Title: payload.Title, Spans: pruned}, nil
}

// getOrFetch answers key from the cache, or runs fetch and records its
// result. Nothing is recorded when fetch fails. A failed cache write is
// logged and the fetched payload is still returned.
func getOrFetch[T any](
	ctx context.Context,
	s *FetchService,
	key string,
	fetch func(context.Context) (T, error),
) (T, error) {
	var cached T
	if s.cache.Resolve(key, &cached) {
		logger.Debug("Cache hit: %s", key)
		return cached, nil
	}

	// The flight outlives any one caller's context: callers that joined it
	// must not fail because the first caller gave up. Each caller still
	// stops waiting when its own context is done.
	flight := s.group.DoChan(key, func() (any, error) {
		// An earlier flight for this key may have finished between the
		// miss above and joining the group.
		var recorded T
		if s.cache.Resolve(key, &recorded) {
			return recorded, nil
		}

		logger.Debug("Cache miss: %s", key)
		payload, err := fetch(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}

		if err := s.cache.Record(key, payload); err != nil {
			logger.Warn("Caching %s failed: %v", key, err)
		}
		return payload, nil
	})

	var zero T
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-flight:
		if res.Err != nil {
			return zero, res.Err
		}
		if res.Shared {
			logger.Debug("Shared in-flight fetch: %s", key)
		}
		return res.Val.(T), nil
	}
}
