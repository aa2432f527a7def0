package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"mutar.dev/pkg/mutar/internal/adapter"
	m "mutar.dev/pkg/mutar/internal/model"
)

// Errors returned by the orchestrator and the workflow.
var (
	ErrSpanMismatch    = errors.New("span count does not match statement count")
	ErrNoStatements    = errors.New("no statements to mutate")
	ErrDuplicateMutant = errors.New("mutant listed by more than one shard")
)

// Orchestrator turns a parsed program into whole-file variants. Each variant
// differs from the original program in exactly one statement.
type Orchestrator interface {
	// MutateFile generates every variant and keeps the ones the evaluator
	// accepts.
	MutateFile(ctx context.Context, program m.Program) ([]m.FileMutant, error)
	// Generate builds every variant without evaluating it.
	Generate(program m.Program) ([]m.FileMutant, error)
	// Filter keeps the variants the evaluator accepts, in input order.
	Filter(ctx context.Context, variants []m.FileMutant) ([]m.FileMutant, error)
}

// OrchestratorOption configures an Orchestrator.
type OrchestratorOption func(*orchestrator)

// WithEvalTimeout bounds every single evaluation. Zero disables the bound.
func WithEvalTimeout(timeout time.Duration) OrchestratorOption {
	return func(o *orchestrator) {
		o.evalTimeout = timeout
	}
}

type orchestrator struct {
	Mutagen
	adapter.Evaluator

	metrics     *Metrics
	evalTimeout time.Duration
}

// NewOrchestrator constructs an Orchestrator backed by the provided mutagen
// and evaluator.
func NewOrchestrator(mutagen Mutagen, evaluator adapter.Evaluator, metrics *Metrics, options ...OrchestratorOption) Orchestrator {
	o := &orchestrator{
		Mutagen:   mutagen,
		Evaluator: evaluator,
		metrics:   metrics,
	}

	for _, option := range options {
		option(o)
	}

	return o
}

func (o *orchestrator) MutateFile(ctx context.Context, program m.Program) ([]m.FileMutant, error) {
	variants, err := o.Generate(program)
	if err != nil {
		return nil, err
	}

	return o.Filter(ctx, variants)
}

func (o *orchestrator) Generate(program m.Program) ([]m.FileMutant, error) {
	if len(program.Spans) != len(program.Statements) {
		return nil, fmt.Errorf("%w: %d spans for %d statements", ErrSpanMismatch, len(program.Spans), len(program.Statements))
	}

	blocks := DetectBlocks(program.Statements)
	variants := make([]m.FileMutant, 0)

	for i, statement := range program.Statements {
		for _, mutant := range o.MutateStatement(statement, program.Spans[i], blocks[i]) {
			variants = append(variants, m.FileMutant{
				StatementIndex: i,
				Statements:     spliceStatement(program.Statements, i, mutant.Tree),
				Description:    mutant.Description,
				Site:           mutant.Site,
				Outcome:        mutant.Outcome,
			})
		}
	}

	slog.Debug("Generated variants", "statements", len(program.Statements), "variants", len(variants))

	return variants, nil
}

func (o *orchestrator) Filter(ctx context.Context, variants []m.FileMutant) ([]m.FileMutant, error) {
	kept := make([]m.FileMutant, 0, len(variants))

	for _, variant := range variants {
		if err := ctx.Err(); err != nil {
			return kept, err
		}

		start := time.Now()
		err := o.evaluate(ctx, variant.Statements)
		o.metrics.RecordVariant(err == nil, time.Since(start).Seconds())

		if err != nil {
			slog.Debug("Discarding variant", "statement", variant.StatementIndex, "description", variant.Description, "error", err)
			continue
		}

		kept = append(kept, variant)
	}

	return kept, nil
}

func (o *orchestrator) evaluate(ctx context.Context, statements []*m.Node) error {
	if o.evalTimeout <= 0 {
		return o.Evaluate(ctx, statements)
	}

	evalCtx, cancel := context.WithTimeout(ctx, o.evalTimeout)
	defer cancel()

	return o.Evaluate(evalCtx, statements)
}

// DetectBlocks reports, per top-level statement, whether it is a { } block.
func DetectBlocks(statements []*m.Node) []bool {
	blocks := make([]bool, len(statements))
	for i, statement := range statements {
		blocks[i] = statement.IsBlock()
	}

	return blocks
}

// spliceStatement returns a new statement list with index replaced by
// replacement, or dropped when replacement is nil. The other statements are
// deep copies, so no variant shares nodes with the program or another variant.
func spliceStatement(statements []*m.Node, index int, replacement *m.Node) []*m.Node {
	out := make([]*m.Node, 0, len(statements))

	for i, statement := range statements {
		switch {
		case i != index:
			out = append(out, statement.Clone())
		case replacement != nil:
			out = append(out, replacement)
		}
	}

	return out
}
