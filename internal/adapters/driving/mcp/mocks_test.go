package mcp

import (
	"context"

	"github.com/custodia-labs/wik/internal/core/domain"
	"github.com/custodia-labs/wik/internal/core/ports/driving"
)

var (
	_ driving.SearchService  = (*mockSearchService)(nil)
	_ driving.ArticleService = (*mockArticleService)(nil)
	_ driving.CacheService   = (*mockCacheService)(nil)
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results   []domain.SearchResult
	err       error
	lastLimit int
}

func (m *mockSearchService) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	return m.SearchLimit(ctx, query, 0)
}

func (m *mockSearchService) SearchLimit(_ context.Context, _ string, limit int) ([]domain.SearchResult, error) {
	m.lastLimit = limit
	return m.results, m.err
}

// mockArticleService is a mock implementation of driving.ArticleService.
type mockArticleService struct {
	article   *domain.Article
	err       error
	lastTitle string
}

func (m *mockArticleService) Article(_ context.Context, title string) (*domain.Article, error) {
	m.lastTitle = title
	return m.article, m.err
}

// mockCacheService is a mock implementation of driving.CacheService.
type mockCacheService struct {
	entries []domain.CacheEntry
}

func (m *mockCacheService) Session() domain.Session { return domain.Session{ID: "test"} }

func (m *mockCacheService) Root() string { return ":memory:" }

func (m *mockCacheService) Entries() []domain.CacheEntry { return m.entries }

func (m *mockCacheService) Sessions() ([]string, error) { return []string{"test"}, nil }

func (m *mockCacheService) Clear() error { return nil }

func testPorts() *Ports {
	return &Ports{
		Search:  &mockSearchService{},
		Article: &mockArticleService{article: &domain.Article{Title: "Go"}},
	}
}
