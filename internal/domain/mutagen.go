// Package domain contains the core mutant generation workflow and logic.
package domain

import (
	"log/slog"

	m "mutar.dev/pkg/mutar/internal/model"
)

// Mutagen turns one statement into its mutants.
type Mutagen interface {
	Locator
	MutateStatement(statement *m.Node, span m.Span, insideBlock bool) []m.Mutant
}

// MutagenOption configures a Mutagen.
type MutagenOption func(*mutagen)

// WithKeepPartial keeps degenerate root-head deletions in the result.
func WithKeepPartial(keep bool) MutagenOption {
	return func(mg *mutagen) {
		mg.keepPartial = keep
	}
}

type mutagen struct {
	Locator
	Mutator

	keepPartial bool
}

// NewMutagen creates a Mutagen from a locator and a mutator.
func NewMutagen(locator Locator, mutator Mutator, options ...MutagenOption) Mutagen {
	mg := &mutagen{
		Locator: locator,
		Mutator: mutator,
	}

	for _, option := range options {
		option(mg)
	}

	return mg
}

// MutateStatement locates every site in the statement and applies each one
// to a fresh copy. Failed surgeries are skipped.
func (mg *mutagen) MutateStatement(statement *m.Node, span m.Span, insideBlock bool) []m.Mutant {
	sites := mg.Locate(statement, span, insideBlock)
	if len(sites) == 0 {
		slog.Warn("No mutation sites in statement", "span", span.String())
		return nil
	}

	mutants := make([]m.Mutant, 0, len(sites))

	for i := range sites {
		mutant, outcome := mg.Apply(statement, sites, i)

		switch outcome {
		case m.OutcomeApplied:
			mutants = append(mutants, *mutant)
		case m.OutcomePartial:
			if mg.keepPartial {
				mutants = append(mutants, *mutant)
			}
		case m.OutcomeFailed:
			slog.Debug("Skipping site", "span", span.String(), "path", sites[i].Path.String(), "operator", sites[i].Op.Type())
		}
	}

	return mutants
}
