// Package markdown turns article markdown into FormattedSpan sequences.
//
// Only the subset produced by the html converter is recognised: heading
// lines, inline links of the form [label](./target "title"), and lines
// that start with an image link. Everything else is plain text.
package markdown
