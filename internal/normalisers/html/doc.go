// Package html converts rendered article HTML into the markdown subset read
// by the markdown normaliser.
//
// Output rules:
//
//   - h1-h6 become "#" heading lines
//   - wiki links (href "./Target") become [label](./Target "title")
//   - an anchor wrapping only an image becomes a [![alt](src)](href) line
//   - script, style, table and sup elements are dropped with their content
//   - block elements end the current line; paragraphs are separated by a
//     blank line
//
// Other markup is reduced to its text.
package html
