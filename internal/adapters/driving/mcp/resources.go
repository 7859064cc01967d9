package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/wik/internal/logger"
)

const (
	// uriScheme is the custom URI scheme for wik resources.
	uriScheme = "wik://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the session's request table.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "cache/entries",
		Name:        "cache-entries",
		Description: "Requests answered from this session's cache",
		MIMEType:    "application/json",
	}, s.handleCacheResource)

	// Template for article text.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "articles/{title}",
		Name:        "article",
		Description: "Plain text of a Wikipedia article",
		MIMEType:    "text/plain",
	}, s.handleArticleResource)
}

// handleCacheResource returns the session's request table.
func (s *Server) handleCacheResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Cache == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	entries := s.ports.Cache.Entries()
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling cache entries: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleArticleResource returns the text of the article named in the URI.
func (s *Server) handleArticleResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	title := extractArticleTitle(req.Params.URI)
	if title == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	article, err := s.ports.Article.Article(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("loading article: %w", err)
	}
	logger.Debug("MCP resource %s: %s", req.Params.URI, articleOutput(article))

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     article.Text(),
		}},
	}, nil
}

// extractArticleTitle extracts the unescaped title from a URI like
// wik://articles/{title}.
func extractArticleTitle(uri string) string {
	const prefix = uriScheme + "articles/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	title, err := url.PathUnescape(strings.TrimPrefix(uri, prefix))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(title)
}
