package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/wik/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the search query"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default from settings)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	Title   string `json:"title"`
	PageID  int    `json:"page_id"`
	Snippet string `json:"snippet,omitempty"`
}

// ArticleInput is the input schema for the read_article tool.
type ArticleInput struct {
	Title string `json:"title" jsonschema:"the canonical article title, as returned by search"`
}

// ArticleOutput is the output schema for the read_article tool.
type ArticleOutput struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	Lines int    `json:"lines"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search Wikipedia article titles and text",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "read_article",
		Description: "Read a Wikipedia article as plain text, without reference and link sections",
	}, s.handleReadArticle)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	results, err := s.ports.Search.SearchLimit(ctx, input.Query, input.Limit)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}

	for i := range results {
		output.Results[i] = SearchResultOutput{
			Title:   results[i].Title,
			PageID:  results[i].PageID,
			Snippet: results[i].PlainSnippet(),
		}
	}

	return nil, output, nil
}

// handleReadArticle handles the read_article tool invocation.
func (s *Server) handleReadArticle(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ArticleInput,
) (*mcp.CallToolResult, ArticleOutput, error) {
	article, err := s.ports.Article.Article(ctx, input.Title)
	if err != nil {
		return nil, ArticleOutput{}, err
	}

	return nil, articleOutput(article), nil
}

func articleOutput(article *domain.Article) ArticleOutput {
	return ArticleOutput{
		Title: article.Title,
		Text:  article.Text(),
		Lines: len(domain.SplitLines(article.Spans)),
	}
}

// String returns a one-line summary, used in logs.
func (o ArticleOutput) String() string {
	return fmt.Sprintf("%s (%d lines)", o.Title, o.Lines)
}
