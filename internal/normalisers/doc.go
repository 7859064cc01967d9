// Package normalisers holds the article text pipeline.
//
//   - html: converts rendered article HTML into a small markdown subset
//   - markdown: turns that markdown into FormattedSpan sequences and
//     prunes trailing boilerplate sections
//
// Both are pure functions of their input and safe for concurrent use.
package normalisers
