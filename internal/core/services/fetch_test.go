package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wik/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/wik/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wik/internal/adapters/driven/wikipedia"
	"github.com/custodia-labs/wik/internal/core/domain"
	"github.com/custodia-labs/wik/internal/normalisers/html"
	"github.com/custodia-labs/wik/internal/normalisers/markdown"
)

const rustArticleHTML = `<html><body>
<h1>Rust</h1>
<p>Rust is a <a href="./Programming_language" title="Programming language">programming language</a>.</p>
<h2>History</h2>
<p>Started at Mozilla.</p>
<h2>See also</h2>
<ul><li><a href="./Go_(programming_language)" title="Go (programming language)">Go</a></li></ul>
<h2>References</h2>
<p>Citation needed.</p>
</body></html>`

// mockClient is a scripted driven.EncyclopediaClient.
type mockClient struct {
	searchCalls  atomic.Int32
	articleCalls atomic.Int32

	gate       chan struct{}
	searchErr  error
	articleErr error
	results    []domain.SearchResult
	html       string
}

func newMockClient() *mockClient {
	return &mockClient{
		results: []domain.SearchResult{
			{Title: "Rust (programming language)", PageID: 1, Snippet: `<span class="searchmatch">Rust</span> is fast`},
			{Title: "Rust", PageID: 2, Snippet: "iron oxide"},
		},
		html: rustArticleHTML,
	}
}

func (m *mockClient) SearchURL(query string, limit int) string {
	return fmt.Sprintf("mock://search?q=%s&limit=%d", query, limit)
}

func (m *mockClient) ArticleURL(title string) string {
	return "mock://article/" + title
}

func (m *mockClient) Search(ctx context.Context, query string, limit int) (*domain.SearchResponse, error) {
	m.searchCalls.Add(1)
	if m.gate != nil {
		<-m.gate
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	results := make([]domain.SearchResult, len(m.results))
	copy(results, m.results)
	return &domain.SearchResponse{Results: results}, nil
}

func (m *mockClient) ArticleHTML(ctx context.Context, title string) (string, error) {
	m.articleCalls.Add(1)
	if m.articleErr != nil {
		return "", m.articleErr
	}
	return m.html, nil
}

type failingConverter struct{}

func (failingConverter) Convert(context.Context, string) (string, error) {
	return "", errors.New("unbalanced markup")
}

func newTestFetchService(client *mockClient, store *memory.ContentStore) *FetchService {
	cache := NewRequestCache(domain.NewSession(), store)
	return NewFetchService(cache, client, html.New(), markdown.New(), markdown.NewDefaultPruner(), 10)
}

func TestNewFetchService_DefaultLimit(t *testing.T) {
	service := NewFetchService(
		NewRequestCache(domain.NewSession(), memory.NewContentStore()),
		newMockClient(), html.New(), markdown.New(), markdown.NewDefaultPruner(), 0,
	)

	assert.Equal(t, domain.DefaultSearchLimit, service.limit)
}

func TestFetchService_Search(t *testing.T) {
	client := newMockClient()
	service := newTestFetchService(client, memory.NewContentStore())

	results, err := service.Search(context.Background(), "Rust")

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, `...<span class="searchmatch">Rust</span> is fast...`, results[0].Snippet)
	assert.Equal(t, "...iron oxide...", results[1].Snippet)
	assert.True(t, service.Cache().Has(client.SearchURL("Rust", 10)))
}

func TestFetchService_Search_CacheHitSkipsNetwork(t *testing.T) {
	client := newMockClient()
	service := newTestFetchService(client, memory.NewContentStore())
	ctx := context.Background()

	first, err := service.Search(ctx, "Rust")
	require.NoError(t, err)
	second, err := service.Search(ctx, "Rust")
	require.NoError(t, err)

	assert.Equal(t, int32(1), client.searchCalls.Load())
	assert.Equal(t, first, second, "decoration must not compound on cached results")
}

func TestFetchService_Search_TrimsQuery(t *testing.T) {
	client := newMockClient()
	service := newTestFetchService(client, memory.NewContentStore())
	ctx := context.Background()

	_, err := service.Search(ctx, "  Rust ")
	require.NoError(t, err)
	_, err = service.Search(ctx, "Rust")
	require.NoError(t, err)

	assert.Equal(t, int32(1), client.searchCalls.Load())
}

func TestFetchService_SearchLimit_KeysByLimit(t *testing.T) {
	client := newMockClient()
	store := memory.NewContentStore()
	service := newTestFetchService(client, store)
	ctx := context.Background()

	_, err := service.SearchLimit(ctx, "Rust", 5)
	require.NoError(t, err)
	_, err = service.SearchLimit(ctx, "Rust", 0)
	require.NoError(t, err)
	_, err = service.Search(ctx, "Rust")
	require.NoError(t, err)

	assert.Equal(t, int32(2), client.searchCalls.Load())
	assert.True(t, service.Cache().Has("mock://search?q=Rust&limit=5"))
	assert.True(t, service.Cache().Has("mock://search?q=Rust&limit=10"))
}

func TestFetchService_Search_EmptyQuery(t *testing.T) {
	client := newMockClient()
	service := newTestFetchService(client, memory.NewContentStore())

	_, err := service.Search(context.Background(), "   ")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, client.searchCalls.Load())
}

func TestFetchService_Search_FailureRecordsNothing(t *testing.T) {
	client := newMockClient()
	client.searchErr = fmt.Errorf("%w: connection refused", domain.ErrTransport)
	store := memory.NewContentStore()
	service := newTestFetchService(client, store)
	ctx := context.Background()

	_, err := service.Search(ctx, "Rust")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.Zero(t, service.Cache().Len())
	assert.Zero(t, store.Len(service.Cache().Session()))

	client.searchErr = nil
	_, err = service.Search(ctx, "Rust")
	require.NoError(t, err)
	assert.Equal(t, int32(2), client.searchCalls.Load())
}

func TestFetchService_Search_CacheWriteFailureStillReturns(t *testing.T) {
	client := newMockClient()
	store := memory.NewContentStore()
	store.FailPuts(errors.New("read-only filesystem"))
	service := newTestFetchService(client, store)
	ctx := context.Background()

	results, err := service.Search(ctx, "Rust")
	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Zero(t, service.Cache().Len())

	_, err = service.Search(ctx, "Rust")
	require.NoError(t, err)
	assert.Equal(t, int32(2), client.searchCalls.Load())
}

func TestFetchService_Search_ConcurrentMissesShareOneFetch(t *testing.T) {
	client := newMockClient()
	client.gate = make(chan struct{})
	service := newTestFetchService(client, memory.NewContentStore())

	const callers = 8
	var wg sync.WaitGroup
	errs := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.Search(context.Background(), "Rust")
			errs <- err
		}()
	}

	require.Eventually(t, func() bool { return client.searchCalls.Load() == 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(client.gate)
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, int32(1), client.searchCalls.Load())
	assert.Equal(t, 1, service.Cache().Len())
}

func TestFetchService_Search_CancelledCallerDoesNotFailJoinedCaller(t *testing.T) {
	client := newMockClient()
	client.gate = make(chan struct{})
	service := newTestFetchService(client, memory.NewContentStore())

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := service.Search(firstCtx, "Rust")
		firstErr <- err
	}()
	require.Eventually(t, func() bool { return client.searchCalls.Load() == 1 }, time.Second, time.Millisecond)

	type outcome struct {
		results []domain.SearchResult
		err     error
	}
	second := make(chan outcome, 1)
	go func() {
		results, err := service.Search(context.Background(), "Rust")
		second <- outcome{results, err}
	}()
	time.Sleep(20 * time.Millisecond)

	cancelFirst()
	select {
	case err := <-firstErr:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("cancelled caller kept waiting on the fetch")
	}

	close(client.gate)
	got := <-second
	require.NoError(t, got.err)
	assert.Len(t, got.results, 2)
	assert.Equal(t, int32(1), client.searchCalls.Load())
	assert.Equal(t, 1, service.Cache().Len())
}

func TestFetchService_Search_MismatchedCacheEntryRefetches(t *testing.T) {
	client := newMockClient()
	service := newTestFetchService(client, memory.NewContentStore())

	key := client.SearchURL("Rust", 10)
	require.NoError(t, service.Cache().Record(key, domain.ArticlePayload{Title: "Rust", Markdown: "# Rust"}))

	var resp domain.SearchResponse
	assert.False(t, service.Cache().Resolve(key, &resp))

	results, err := service.Search(context.Background(), "Rust")
	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, int32(1), client.searchCalls.Load())

	_, err = service.Search(context.Background(), "Rust")
	require.NoError(t, err)
	assert.Equal(t, int32(1), client.searchCalls.Load())
}

func TestFetchService_Article(t *testing.T) {
	client := newMockClient()
	service := newTestFetchService(client, memory.NewContentStore())

	article, err := service.Article(context.Background(), "Rust")
	require.NoError(t, err)

	assert.Equal(t, "Rust", article.Title)
	require.NotEmpty(t, article.Spans)

	var headings []string
	var links []string
	for _, span := range article.Spans {
		if span.IsHeading {
			headings = append(headings, span.Text)
		}
		if span.IsLink() {
			links = append(links, span.Link)
		}
	}
	assert.Equal(t, []string{"Rust", "History", "See also"}, headings)
	assert.Contains(t, links, "Programming language")
	assert.Contains(t, links, "Go (programming language)")

	for i, span := range article.Spans {
		assert.Equal(t, i, span.Index)
	}
}

func TestFetchService_Article_CachesMarkdown(t *testing.T) {
	client := newMockClient()
	store := memory.NewContentStore()
	service := newTestFetchService(client, store)
	ctx := context.Background()

	first, err := service.Article(ctx, "Rust")
	require.NoError(t, err)
	second, err := service.Article(ctx, "Rust")
	require.NoError(t, err)

	assert.Equal(t, int32(1), client.articleCalls.Load())
	assert.Equal(t, first, second)

	var payload domain.ArticlePayload
	require.True(t, service.Cache().Resolve(client.ArticleURL("Rust"), &payload))
	assert.Equal(t, "Rust", payload.Title)
	assert.Contains(t, payload.Markdown, "# Rust")
}

func TestFetchService_Article_NotFound(t *testing.T) {
	client := newMockClient()
	client.articleErr = fmt.Errorf("%w: 404", domain.ErrNotFound)
	service := newTestFetchService(client, memory.NewContentStore())

	_, err := service.Article(context.Background(), "Nope")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, service.Cache().Len())
}

func TestFetchService_Article_ConversionFailure(t *testing.T) {
	client := newMockClient()
	cache := NewRequestCache(domain.NewSession(), memory.NewContentStore())
	service := NewFetchService(cache, client, failingConverter{}, markdown.New(), markdown.NewDefaultPruner(), 10)

	_, err := service.Article(context.Background(), "Rust")

	assert.ErrorIs(t, err, domain.ErrDeserialization)
	assert.Zero(t, cache.Len())
}

func TestFetchService_Article_EmptyTitle(t *testing.T) {
	client := newMockClient()
	service := newTestFetchService(client, memory.NewContentStore())

	_, err := service.Article(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, client.articleCalls.Load())
}

// TestFetchService_Search_DiskSession runs a search against a fake
// MediaWiki through the real client and disk store.
func TestFetchService_Search_DiskSession(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"query":{"search":[{"title":"Rust","pageid":26281,"snippet":"iron oxide"}]}}`))
	}))
	defer server.Close()

	store, err := file.NewContentStore(t.TempDir())
	require.NoError(t, err)
	client := wikipedia.NewClient(wikipedia.Config{BaseURL: server.URL, RequestsPerSecond: 100})
	defer func() { _ = client.Close() }()

	session := domain.NewSession()
	cache := NewRequestCache(session, store)
	service := NewFetchService(cache, client, html.New(), markdown.New(), markdown.NewDefaultPruner(), 25)
	ctx := context.Background()

	results, err := service.Search(ctx, "Rust")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "...iron oxide...", results[0].Snippet)

	files, err := os.ReadDir(store.SessionDir(session))
	require.NoError(t, err)
	require.Len(t, files, 1)

	entries := cache.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, client.SearchURL("Rust", 25), entries[0].Key)
	assert.Equal(t, entries[0].FileName, files[0].Name())
	assert.FileExists(t, filepath.Join(store.SessionDir(session), ContentHash(entries[0].Key)))

	again, err := service.Search(ctx, "Rust")
	require.NoError(t, err)
	assert.Equal(t, results, again)
	assert.Equal(t, int32(1), calls.Load())
}
