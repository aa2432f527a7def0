package model

import (
	"errors"
	"fmt"
)

// OperatorFamily groups operator kinds for reporting.
type OperatorFamily string

// Operator families.
const (
	FamilyArithmetic OperatorFamily = "arithmetic"
	FamilyComparison OperatorFamily = "comparison"
	FamilyLogical    OperatorFamily = "logical"
	FamilyStructural OperatorFamily = "structural"
)

// Action is what applying an operator does to its site.
type Action int

const (
	// ActionRewrite replaces the head token of a call with its paired token.
	ActionRewrite Action = iota
	// ActionExcise removes the node from its parent's argument list.
	ActionExcise
)

func (a Action) String() string {
	switch a {
	case ActionRewrite:
		return "rewrite"
	case ActionExcise:
		return "excise"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Errors returned by Operator.Flip.
var (
	ErrNotRewrite   = errors.New("operator does not rewrite")
	ErrNotCall      = errors.New("node is not a call")
	ErrHeadMismatch = errors.New("call head does not match operator")
)

// Operator is one entry of the mutation catalogue. Rewrite operators carry
// the token they match (From) and the single token they flip to (To);
// excise operators carry neither.
type Operator struct {
	Kind   string
	Family OperatorFamily
	Action Action
	From   Symbol
	To     Symbol
}

// Type returns the kind name used in diagnostics, e.g. "PlusOperator".
func (o Operator) Type() string {
	return o.Kind + "Operator"
}

// IsExcise reports whether the operator deletes instead of rewriting.
func (o Operator) IsExcise() bool {
	return o.Action == ActionExcise
}

// Flip replaces the head of call with the paired token. Only the head
// symbol changes; arguments are left as they are.
func (o Operator) Flip(call *Node) error {
	if o.Action != ActionRewrite {
		return fmt.Errorf("%s: %w", o.Type(), ErrNotRewrite)
	}

	head, ok := call.HeadSymbol()
	if !ok {
		return fmt.Errorf("%s: %w", o.Type(), ErrNotCall)
	}

	if head != o.From {
		return fmt.Errorf("%s: head %q: %w", o.Type(), head, ErrHeadMismatch)
	}

	call.Items[0] = &Node{Kind: KindSymbol, Sym: o.To, Tag: call.Items[0].Tag}

	return nil
}
