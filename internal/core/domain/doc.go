// Package domain defines the core business entities for wik.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - Session: One run of the process and its isolated cache directory
//   - CacheEntry: A request key and the content file that holds its payload
//   - SearchResult: A single hit returned by the encyclopedia search API
//   - ArticlePayload: The cached markup of an article
//   - FormattedSpan: A tagged unit of displayable article text
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library, github.com/google/uuid
//   - Cannot Import: Any internal/ package
package domain
