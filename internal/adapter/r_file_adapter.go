package adapter

import (
	"context"
	"fmt"

	m "mutar.dev/pkg/mutar/internal/model"
	"mutar.dev/pkg/mutar/internal/rlang"
)

// RFileAdapter encapsulates R parsing and source regeneration so the domain
// layer only ever sees expression trees.
type RFileAdapter interface {
	// Parse reads the top-level statements of an R script together with the
	// source span of each statement.
	Parse(ctx context.Context, filename m.Path, src []byte) (m.Program, error)

	// Deparse renders statements back to R source, one per line.
	Deparse(statements []*m.Node) []byte
}

// LocalRFileAdapter provides a concrete RFileAdapter backed by the rlang parser.
type LocalRFileAdapter struct{}

// NewLocalRFileAdapter constructs a LocalRFileAdapter.
func NewLocalRFileAdapter() *LocalRFileAdapter {
	return &LocalRFileAdapter{}
}

// Parse builds the program for the provided filename/source pair.
func (a *LocalRFileAdapter) Parse(ctx context.Context, filename m.Path, src []byte) (m.Program, error) {
	if err := ctx.Err(); err != nil {
		return m.Program{}, err
	}

	program, err := rlang.Parse(string(filename), src)
	if err != nil {
		return m.Program{}, fmt.Errorf("parse %s: %w", filename, err)
	}

	return program, nil
}

// Deparse renders statements to source text.
func (a *LocalRFileAdapter) Deparse(statements []*m.Node) []byte {
	return rlang.Deparse(statements)
}
