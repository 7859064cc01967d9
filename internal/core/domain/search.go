package domain

import (
	"html"
	"strings"
)

// Markers MediaWiki places around the parts of a snippet matching the query.
const (
	searchMatchOpen  = `<span class="searchmatch">`
	searchMatchClose = `</span>`
)

// SearchResult represents a single search hit.
type SearchResult struct {
	// Title is the canonical article title.
	Title string `json:"title"`

	// PageID is the encyclopedia's identifier for the article.
	PageID int `json:"pageid"`

	// Snippet is a fragment of article text with matches marked up.
	Snippet string `json:"snippet"`
}

// SearchResponse is the payload cached for a search request.
type SearchResponse struct {
	// Results are the hits in ranking order.
	Results []SearchResult `json:"results"`
}

// SnippetSegment is a run of snippet text that is either a match or not.
type SnippetSegment struct {
	Text        string
	Highlighted bool
}

// Segments splits the snippet into plain and highlighted runs.
// HTML entities are decoded and any other markup is left untouched.
func (r SearchResult) Segments() []SnippetSegment {
	parts := strings.Split(r.Snippet, searchMatchOpen)
	segments := make([]SnippetSegment, 0, len(parts)*2)

	for i, part := range parts {
		if i == 0 {
			if part != "" {
				segments = append(segments, SnippetSegment{Text: html.UnescapeString(part)})
			}
			continue
		}

		// Every part after the first starts with matched text, then the
		// closing tag, then unmatched text.
		matched, rest, _ := strings.Cut(part, searchMatchClose)
		if matched != "" {
			segments = append(segments, SnippetSegment{Text: html.UnescapeString(matched), Highlighted: true})
		}
		if rest != "" {
			segments = append(segments, SnippetSegment{Text: html.UnescapeString(rest)})
		}
	}

	return segments
}

// PlainSnippet returns the snippet with match markup removed.
func (r SearchResult) PlainSnippet() string {
	var b strings.Builder
	for _, seg := range r.Segments() {
		b.WriteString(seg.Text)
	}
	return b.String()
}
