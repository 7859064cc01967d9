package html

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/custodia-labs/wik/internal/core/domain"
	"github.com/custodia-labs/wik/internal/core/ports/driven"
)

// Ensure Converter implements the interface.
var _ driven.MarkupConverter = (*Converter)(nil)

// wikiLinkPrefix marks an href pointing at another article.
const wikiLinkPrefix = "./"

// skipped elements are dropped together with their content.
var skipped = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Table:    true,
	atom.Sup:      true,
	atom.Head:     true,
	atom.Noscript: true,
}

// paragraphs are separated from surrounding text by a blank line.
var paragraphs = map[atom.Atom]bool{
	atom.P:          true,
	atom.Blockquote: true,
	atom.Figure:     true,
	atom.Pre:        true,
	atom.Ul:         true,
	atom.Ol:         true,
	atom.Dl:         true,
}

// lineBlocks end the current line without adding a blank line.
var lineBlocks = map[atom.Atom]bool{
	atom.Div:        true,
	atom.Section:    true,
	atom.Article:    true,
	atom.Header:     true,
	atom.Footer:     true,
	atom.Main:       true,
	atom.Figcaption: true,
	atom.Dd:         true,
	atom.Dt:         true,
	atom.Hr:         true,
}

// headingLevels maps heading elements to their marker count.
var headingLevels = map[atom.Atom]int{
	atom.H1: 1,
	atom.H2: 2,
	atom.H3: 3,
	atom.H4: 4,
	atom.H5: 5,
	atom.H6: 6,
}

// Converter converts article HTML to markdown.
type Converter struct{}

// New creates a new HTML converter.
func New() *Converter {
	return &Converter{}
}

// Convert parses html and renders it as markdown.
func (c *Converter) Convert(_ context.Context, source string) (string, error) {
	doc, err := html.Parse(strings.NewReader(source))
	if err != nil {
		return "", fmt.Errorf("parse html: %w: %w", domain.ErrDeserialization, err)
	}

	w := &writer{}
	c.walk(w, doc)
	return w.String(), nil
}

// walk renders n and its descendants into w.
func (c *Converter) walk(w *writer, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		w.text(n.Data)
		return
	case html.ElementNode:
	case html.DocumentNode:
		c.children(w, n)
		return
	default:
		return
	}

	switch {
	case skipped[n.DataAtom]:
		return

	case headingLevels[n.DataAtom] > 0:
		w.paragraph()
		w.line(strings.Repeat("#", headingLevels[n.DataAtom]) + " " + textContent(n))
		w.paragraph()

	case n.DataAtom == atom.A:
		c.anchor(w, n)

	case n.DataAtom == atom.Br:
		w.endLine()

	case n.DataAtom == atom.Li:
		w.endLine()
		w.text("* ")
		c.children(w, n)
		w.endLine()

	case paragraphs[n.DataAtom]:
		w.paragraph()
		c.children(w, n)
		w.paragraph()

	case lineBlocks[n.DataAtom]:
		w.endLine()
		c.children(w, n)
		w.endLine()

	case n.DataAtom == atom.Img:
		// Images only survive inside links.

	default:
		c.children(w, n)
	}
}

func (c *Converter) children(w *writer, n *html.Node) {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.walk(w, child)
	}
}

// anchor renders a link. Wiki links keep their target and title, image
// links get a line of their own, anything else is reduced to its label.
func (c *Converter) anchor(w *writer, n *html.Node) {
	href := attr(n, "href")

	if img := onlyImage(n); img != nil {
		w.endLine()
		w.line(fmt.Sprintf("[![%s](%s)](%s)", attr(img, "alt"), attr(img, "src"), href))
		return
	}

	label := textContent(n)
	if label == "" {
		return
	}

	if !strings.HasPrefix(href, wikiLinkPrefix) {
		w.text(label)
		return
	}

	title := attr(n, "title")
	if title == "" {
		title = strings.ReplaceAll(strings.TrimPrefix(href, wikiLinkPrefix), "_", " ")
	}
	target := strings.Join(strings.Fields(href), "_")
	w.text(fmt.Sprintf(`[%s](%s "%s")`, label, target, strings.ReplaceAll(title, `"`, "'")))
}

// onlyImage returns the img element if it is the anchor's only content.
func onlyImage(n *html.Node) *html.Node {
	var img *html.Node
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		switch {
		case child.Type == html.TextNode && strings.TrimSpace(child.Data) == "":
			continue
		case child.Type == html.ElementNode && child.DataAtom == atom.Img && img == nil:
			img = child
		default:
			return nil
		}
	}
	return img
}

// textContent returns the whitespace-collapsed text under n, ignoring
// skipped elements.
func textContent(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(node *html.Node) {
		if node.Type == html.ElementNode && skipped[node.DataAtom] {
			return
		}
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
			b.WriteByte(' ')
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			collect(child)
		}
	}
	collect(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
