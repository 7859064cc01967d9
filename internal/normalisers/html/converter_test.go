package html

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wik/internal/normalisers/markdown"
)

func convert(t *testing.T, source string) string {
	t.Helper()
	out, err := New().Convert(context.Background(), source)
	require.NoError(t, err)
	return out
}

func TestConvert_HeadingsAndParagraphs(t *testing.T) {
	out := convert(t, `<html><body>
<section><h2 id="History">History</h2>
<p>First   paragraph
spans lines.</p>
<p>Second.</p>
</section></body></html>`)

	assert.Equal(t, "## History\n\nFirst paragraph spans lines.\n\nSecond.", out)
}

func TestConvert_WikiLink(t *testing.T) {
	out := convert(t, `<p>Hello <a rel="mw:WikiLink" href="./Rust_(programming_language)" title="Rust (programming language)">Rust</a> world</p>`)

	assert.Equal(t, `Hello [Rust](./Rust_(programming_language) "Rust (programming language)") world`, out)
}

func TestConvert_WikiLinkWithoutTitle(t *testing.T) {
	out := convert(t, `<p><a href="./Memory_safety">memory safety</a></p>`)

	assert.Equal(t, `[memory safety](./Memory_safety "Memory safety")`, out)
}

func TestConvert_ExternalLinkKeepsLabel(t *testing.T) {
	out := convert(t, `<p>See <a href="https://www.rust-lang.org/">the site</a>.</p>`)

	assert.Equal(t, "See the site.", out)
}

func TestConvert_ImageLink(t *testing.T) {
	out := convert(t, `<figure><a href="./File:Logo.svg"><img src="//upload.example/Logo.svg" alt="Logo"/></a><figcaption>The logo</figcaption></figure>`)

	assert.Equal(t, "[![Logo](//upload.example/Logo.svg)](./File:Logo.svg)\nThe logo", out)
}

func TestConvert_SkipsTagsWithContent(t *testing.T) {
	out := convert(t, `<head><title>T</title></head><body>
<style>.x{color:red}</style>
<script>alert(1)</script>
<p>Fact<sup class="reference"><a href="#cite_note-1">[1]</a></sup> stated.</p>
<table><tr><td>cell</td></tr></table>
</body>`)

	assert.Equal(t, "Fact stated.", out)
}

func TestConvert_ListItems(t *testing.T) {
	out := convert(t, `<ul><li>one</li><li>two</li></ul>`)

	assert.Equal(t, "* one\n* two", out)
}

func TestConvert_LineBreak(t *testing.T) {
	out := convert(t, `<p>a<br>b</p>`)

	assert.Equal(t, "a\nb", out)
}

func TestConvert_Empty(t *testing.T) {
	assert.Equal(t, "", convert(t, ""))
}

func TestConvert_FeedsNormaliser(t *testing.T) {
	out := convert(t, `<h1>Title</h1><p>Hello <a href="./b" title="c">a</a> world</p>`)

	spans := markdown.New().Normalise(out)

	require.Len(t, spans, 7)
	assert.True(t, spans[0].IsHeading)
	assert.Equal(t, "Title", spans[0].Text)
	assert.True(t, spans[1].IsBreak)
	assert.True(t, spans[2].IsBreak) // blank line between heading and paragraph
	assert.Equal(t, "Hello ", spans[3].Text)
	assert.Equal(t, "a", spans[4].Text)
	assert.Equal(t, "c", spans[4].Link)
	assert.Equal(t, " world", spans[5].Text)
	assert.True(t, spans[6].IsBreak)
}
