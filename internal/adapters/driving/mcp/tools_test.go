package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wik/internal/core/domain"
)

func TestServer_handleSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("returns search results", func(t *testing.T) {
		mockSearch := &mockSearchService{
			results: []domain.SearchResult{
				{
					Title:   "Go (programming language)",
					PageID:  25039021,
					Snippet: `...<span class="searchmatch">Go</span> is a &quot;fast&quot; language...`,
				},
			},
		}
		ports := testPorts()
		ports.Search = mockSearch
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleSearch(ctx, nil, SearchInput{Query: "go", Limit: 5})

		require.NoError(t, err)
		assert.Equal(t, 5, mockSearch.lastLimit)
		assert.Equal(t, 1, output.Count)
		require.Len(t, output.Results, 1)
		assert.Equal(t, "Go (programming language)", output.Results[0].Title)
		assert.Equal(t, 25039021, output.Results[0].PageID)
		assert.Equal(t, `...Go is a "fast" language...`, output.Results[0].Snippet)
	})

	t.Run("zero limit defers to settings", func(t *testing.T) {
		mockSearch := &mockSearchService{}
		ports := testPorts()
		ports.Search = mockSearch
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleSearch(ctx, nil, SearchInput{Query: "go"})

		require.NoError(t, err)
		assert.Zero(t, mockSearch.lastLimit)
		assert.Equal(t, 0, output.Count)
		assert.NotNil(t, output.Results)
	})

	t.Run("returns error on search failure", func(t *testing.T) {
		ports := testPorts()
		ports.Search = &mockSearchService{err: domain.ErrTransport}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleSearch(ctx, nil, SearchInput{Query: "go"})

		assert.ErrorIs(t, err, domain.ErrTransport)
	})
}

func TestServer_handleReadArticle(t *testing.T) {
	ctx := context.Background()

	t.Run("returns article text", func(t *testing.T) {
		mockArticle := &mockArticleService{
			article: &domain.Article{
				Title: "Go (programming language)",
				Spans: []domain.FormattedSpan{
					{Index: 0, Text: "Go", IsHeading: true, HeadingLevel: 1},
					{Index: 1, IsBreak: true},
					{Index: 2, Text: "Go is "},
					{Index: 3, Text: "compiled", Link: "compiled"},
					{Index: 4, IsBreak: true},
				},
			},
		}
		ports := testPorts()
		ports.Article = mockArticle
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleReadArticle(ctx, nil, ArticleInput{Title: "Go (programming language)"})

		require.NoError(t, err)
		assert.Equal(t, "Go (programming language)", mockArticle.lastTitle)
		assert.Equal(t, "Go (programming language)", output.Title)
		assert.Equal(t, "# Go\nGo is compiled\n", output.Text)
		assert.Equal(t, 2, output.Lines)
		assert.Equal(t, "Go (programming language) (2 lines)", output.String())
	})

	t.Run("returns error on load failure", func(t *testing.T) {
		ports := testPorts()
		ports.Article = &mockArticleService{err: domain.ErrNotFound}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleReadArticle(ctx, nil, ArticleInput{Title: "Nope"})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
