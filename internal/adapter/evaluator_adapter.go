package adapter

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	m "mutar.dev/pkg/mutar/internal/model"
	"mutar.dev/pkg/mutar/internal/rlang"
)

// Evaluator decides whether a whole-file variant is still a valid program.
// A nil error keeps the variant; any error discards it.
type Evaluator interface {
	Evaluate(ctx context.Context, statements []*m.Node) error
}

// SyntaxEvaluator checks a variant without running R: the statements must
// have well-formed shapes and their deparsed text must parse back.
type SyntaxEvaluator struct{}

// NewSyntaxEvaluator constructs a SyntaxEvaluator.
func NewSyntaxEvaluator() *SyntaxEvaluator {
	return &SyntaxEvaluator{}
}

// Evaluate validates the statements.
func (e *SyntaxEvaluator) Evaluate(ctx context.Context, statements []*m.Node) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := rlang.CheckProgram(statements); err != nil {
		return err
	}

	reparsed, err := rlang.Parse("variant.R", rlang.Deparse(statements))
	if err != nil {
		return fmt.Errorf("reparse variant: %w", err)
	}

	if len(reparsed.Statements) != len(statements) {
		return fmt.Errorf("reparse variant: got %d statements, want %d", len(reparsed.Statements), len(statements))
	}

	return nil
}

// RscriptMode selects what the Rscript evaluator asks R to do.
type RscriptMode string

// Available Rscript modes.
const (
	// RscriptParse only parses the variant.
	RscriptParse RscriptMode = "parse"
	// RscriptEval parses and evaluates the variant in a fresh environment.
	RscriptEval RscriptMode = "eval"
)

// rscriptWaitDelay bounds how long Evaluate waits for stderr after the
// process is killed.
const rscriptWaitDelay = 2 * time.Second

var rscriptPrograms = map[RscriptMode]string{
	RscriptParse: "invisible(parse(file('stdin')))",
	RscriptEval:  "invisible(eval(parse(file('stdin')), envir = new.env()))",
}

// RscriptEvaluator runs every variant in its own Rscript process, so a
// variant that loops forever or crashes R cannot affect the next one.
type RscriptEvaluator struct {
	binary string
	mode   RscriptMode
}

// NewRscriptEvaluator constructs an RscriptEvaluator. An empty binary uses
// Rscript from PATH.
func NewRscriptEvaluator(binary string, mode RscriptMode) (*RscriptEvaluator, error) {
	if _, ok := rscriptPrograms[mode]; !ok {
		return nil, fmt.Errorf("unknown rscript mode %q", mode)
	}

	if binary == "" {
		binary = "Rscript"
	}

	return &RscriptEvaluator{binary: binary, mode: mode}, nil
}

// Evaluate feeds the deparsed variant to Rscript on stdin. The process is
// killed when ctx is done.
func (e *RscriptEvaluator) Evaluate(ctx context.Context, statements []*m.Node) error {
	cmd := exec.CommandContext(ctx, e.binary, "--vanilla", "-e", rscriptPrograms[e.mode])
	cmd.Stdin = bytes.NewReader(rlang.Deparse(statements))
	cmd.WaitDelay = rscriptWaitDelay

	var stderr bytes.Buffer

	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("rscript %s: %w", e.mode, ctxErr)
	}

	if err != nil {
		return fmt.Errorf("rscript %s: %w: %s", e.mode, err, strings.TrimSpace(stderr.String()))
	}

	return nil
}
