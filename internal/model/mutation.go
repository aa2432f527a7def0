package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Span locates a top-level statement in its source file. Lines and columns
// are 1-based; the end column is inclusive.
type Span struct {
	StartLine int `yaml:"start_line"`
	StartCol  int `yaml:"start_col"`
	EndLine   int `yaml:"end_line"`
	EndCol    int `yaml:"end_col"`
}

// Valid reports whether the span is well formed.
func (s Span) Valid() bool {
	if s.StartLine < 1 || s.StartCol < 1 || s.EndLine < s.StartLine || s.EndCol < 1 {
		return false
	}

	return s.EndLine > s.StartLine || s.EndCol >= s.StartCol
}

func (s Span) String() string {
	return fmt.Sprintf("Line %d, Col %d - Line %d, Col %d", s.StartLine, s.StartCol, s.EndLine, s.EndCol)
}

// TreePath addresses a node by child indices from a statement root. Index 0
// is the head position of a call, 1 its first argument.
type TreePath []int

// Append returns a new path with idx added; p is not modified.
func (p TreePath) Append(idx int) TreePath {
	out := make(TreePath, len(p), len(p)+1)
	copy(out, p)

	return append(out, idx)
}

// Parent returns all elements but the last.
func (p TreePath) Parent() TreePath {
	if len(p) == 0 {
		return nil
	}

	return p[:len(p)-1]
}

// Last returns the final element, or -1 for the root path.
func (p TreePath) Last() int {
	if len(p) == 0 {
		return -1
	}

	return p[len(p)-1]
}

func (p TreePath) String() string {
	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = strconv.Itoa(idx)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// Site is one located opportunity to mutate a statement.
type Site struct {
	Path     TreePath
	Op       Operator
	Span     Span
	Original string
}

// Outcome is the result kind of one tree surgery.
type Outcome int

const (
	// OutcomeApplied means a clean mutant was produced.
	OutcomeApplied Outcome = iota
	// OutcomePartial is the degenerate root-head deletion: a tree was
	// produced but it changes the statement's arity.
	OutcomePartial
	// OutcomeFailed means the site could not be applied.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomePartial:
		return "partial"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Mutant is a mutated copy of one statement.
type Mutant struct {
	Tree        *Node
	Description string
	Site        Site
	Outcome     Outcome
}

// Program is one parsed source file: its top-level statements and one span
// per statement.
type Program struct {
	Statements []*Node
	Spans      []Span
}

// FileMutant is a whole-file variant in which exactly one statement differs
// from the original program.
type FileMutant struct {
	ID             uint
	Source         Source
	StatementIndex int
	Statements     []*Node
	Description    string
	Site           Site
	Outcome        Outcome
	Code           []byte
	Diff           string
}
