package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/wik/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wik/internal/core/domain"
	"github.com/custodia-labs/wik/internal/core/services"
)

var errMockFailure = errors.New("mock failure")

type mockSearchService struct {
	results   []domain.SearchResult
	err       error
	lastQuery string
	lastLimit int
}

func (m *mockSearchService) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	return m.SearchLimit(ctx, query, 0)
}

func (m *mockSearchService) SearchLimit(_ context.Context, query string, limit int) ([]domain.SearchResult, error) {
	m.lastQuery = query
	m.lastLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

type mockArticleService struct {
	article *domain.Article
	err     error
}

func (m *mockArticleService) Article(_ context.Context, title string) (*domain.Article, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.article != nil {
		return m.article, nil
	}
	return &domain.Article{Title: title}, nil
}

type mockCacheService struct {
	root     string
	sessions []string
	entries  []domain.CacheEntry
	clears   int
	clearErr error
}

func (m *mockCacheService) Session() domain.Session { return domain.Session{ID: "test-session"} }

func (m *mockCacheService) Root() string { return m.root }

func (m *mockCacheService) Entries() []domain.CacheEntry { return m.entries }

func (m *mockCacheService) Sessions() ([]string, error) { return m.sessions, nil }

func (m *mockCacheService) Clear() error {
	m.clears++
	return m.clearErr
}

func testArticle() *domain.Article {
	return &domain.Article{
		Title: "Go (programming language)",
		Spans: []domain.FormattedSpan{
			{Index: 0, Text: "History", IsHeading: true, HeadingLevel: 2},
			{Index: 1, IsBreak: true},
			{Index: 2, Text: "Designed at "},
			{Index: 3, Text: "Google", Link: "Google"},
			{Index: 4, IsBreak: true},
		},
	}
}

// setupTestServices installs mock services and returns a func restoring
// the previous ones.
func setupTestServices() func() {
	oldSearch, oldArticle := searchService, articleService
	oldSettings, oldCache := settingsService, cacheService
	oldBootstrap := bootstrap

	SetServices(&Services{
		Search: &mockSearchService{results: []domain.SearchResult{
			{Title: "Go (programming language)", PageID: 25039021, Snippet: `<span class="searchmatch">Go</span> is a language`},
			{Title: "Go (game)", PageID: 12431, Snippet: "board game"},
		}},
		Article:  &mockArticleService{article: testArticle()},
		Settings: services.NewSettingsService(memory.NewConfigStore()),
		Cache:    &mockCacheService{root: "/tmp/wik-test", sessions: []string{"a", "b"}},
	})
	bootstrap = nil

	return func() {
		searchService, articleService = oldSearch, oldArticle
		settingsService, cacheService = oldSettings, oldCache
		bootstrap = oldBootstrap
		clearOnExit = false
	}
}

// runRoot executes the command tree with args and returns its output.
// Flags are reset before and after, since cobra keeps parsed values and
// Changed marks on the shared command tree between runs.
func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	defer resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag of cmd and its subcommands to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}
