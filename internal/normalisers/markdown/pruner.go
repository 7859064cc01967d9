package markdown

import (
	"github.com/custodia-labs/wik/internal/core/domain"
	"github.com/custodia-labs/wik/internal/core/ports/driven"
)

// Ensure Pruner implements the interface.
var _ driven.SectionPruner = (*Pruner)(nil)

// Pruner drops the trailing boilerplate of an article.
//
// Pruning starts at the first heading that is a boilerplate title, or at
// the first heading after a trailer title. Once started it never stops.
type Pruner struct {
	boilerplate map[string]struct{}
	trailers    map[string]struct{}
}

// NewPruner creates a pruner. Titles are matched exactly.
func NewPruner(boilerplate, trailers []string) *Pruner {
	return &Pruner{
		boilerplate: toSet(boilerplate),
		trailers:    toSet(trailers),
	}
}

// NewDefaultPruner creates a pruner with the default title lists.
func NewDefaultPruner() *Pruner {
	return NewPruner(domain.DefaultBoilerplateTitles(), domain.DefaultTrailerTitles())
}

// Prune returns the spans before the pruned tail.
// Retained spans keep their original indices.
func (p *Pruner) Prune(spans []domain.FormattedSpan) []domain.FormattedSpan {
	kept := make([]domain.FormattedSpan, 0, len(spans))
	removing := false
	trailerSeen := false

	for _, span := range spans {
		if span.IsHeading {
			if _, ok := p.boilerplate[span.Text]; ok || trailerSeen {
				removing = true
			}
			if _, ok := p.trailers[span.Text]; ok {
				trailerSeen = true
			}
		}
		if removing {
			continue
		}
		kept = append(kept, span)
	}

	return kept
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
