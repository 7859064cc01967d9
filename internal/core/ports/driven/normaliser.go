package driven

import (
	"context"

	"github.com/custodia-labs/wik/internal/core/domain"
)

// MarkupConverter converts article HTML into the markdown subset understood
// by SpanNormaliser: heading lines, inline links and image-link lines.
type MarkupConverter interface {
	Convert(ctx context.Context, html string) (string, error)
}

// SpanNormaliser turns markdown into an ordered span sequence.
// Span indices are contiguous from zero.
type SpanNormaliser interface {
	Normalise(markdown string) []domain.FormattedSpan
}

// SectionPruner removes trailing boilerplate sections from a span sequence.
// Output preserves the relative order and indices of the retained spans.
type SectionPruner interface {
	Prune(spans []domain.FormattedSpan) []domain.FormattedSpan
}
