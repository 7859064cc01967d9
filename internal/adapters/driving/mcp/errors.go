// Package mcp provides an MCP (Model Context Protocol) server adapter for wik.
// It lets AI assistants search the encyclopedia and read articles through
// the same cached fetch path as the terminal UI.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// ErrMissingArticleService is returned when the article service is not provided.
var ErrMissingArticleService = errors.New("mcp: article service is required")
