// Package model defines the data structures for mutation testing.
package model

import (
	"strings"
	"sync"
)

// Symbol is an interned handle for an identifier or operator name. Two
// symbols are the same name exactly when their handles are equal.
type Symbol uint32

// NoSymbol is the zero handle; it never names anything.
const NoSymbol Symbol = 0

// SymbolTable maps names to handles and back. It only ever grows, so a
// handle stays valid for the lifetime of the process.
type SymbolTable struct {
	mu     sync.RWMutex
	byName map[string]Symbol
	names  []string
}

// NewSymbolTable creates an empty table. Handle 0 is reserved for NoSymbol.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		byName: map[string]Symbol{},
		names:  []string{""},
	}
}

// Intern returns the handle for name, allocating one if needed.
func (t *SymbolTable) Intern(name string) Symbol {
	t.mu.RLock()
	sym, ok := t.byName[name]
	t.mu.RUnlock()

	if ok {
		return sym
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if sym, ok := t.byName[name]; ok {
		return sym
	}

	sym = Symbol(len(t.names))
	t.names = append(t.names, name)
	t.byName[name] = sym

	return sym
}

// Name returns the name behind a handle, or "" for unknown handles.
func (t *SymbolTable) Name(sym Symbol) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if int(sym) >= len(t.names) {
		return ""
	}

	return t.names[sym]
}

var symbols = NewSymbolTable()

// Intern interns name in the process-wide symbol table.
func Intern(name string) Symbol {
	return symbols.Intern(name)
}

// String returns the symbol's name.
func (s Symbol) String() string {
	return symbols.Name(s)
}

// Well-known structural symbols.
var (
	BlockSymbol    = Intern("{")
	FunctionSymbol = Intern("function")
	FormalsSymbol  = Intern("pairlist")
)

// NodeKind tells atoms and calls apart.
type NodeKind int

const (
	// KindSymbol is an identifier such as x or `my var`.
	KindSymbol NodeKind = iota
	// KindLiteral is a constant: number, string, logical, NULL.
	KindLiteral
	// KindMissing is the empty argument, e.g. the formal x in function(x).
	KindMissing
	// KindCall is a head plus arguments; Items[0] is the head.
	KindCall
)

// LiteralKind classifies literal atoms.
type LiteralKind int

// Literal kinds.
const (
	LitNone LiteralKind = iota
	LitNumber
	LitString
	LitLogical
	LitNull
)

// Node is one vertex of an expression tree. Trees are treated as values:
// code that wants a changed tree clones it first.
type Node struct {
	Kind    NodeKind
	Sym     Symbol
	Literal LiteralKind
	Text    string
	// Tag is the argument name for f(x = 1) style arguments and formals.
	Tag   string
	Items []*Node
}

// Sym builds a symbol node.
func Sym(name string) *Node {
	return &Node{Kind: KindSymbol, Sym: Intern(name)}
}

// Num builds a numeric literal from its source text.
func Num(text string) *Node {
	return &Node{Kind: KindLiteral, Literal: LitNumber, Text: text}
}

// Str builds a string literal; text keeps its quotes.
func Str(text string) *Node {
	return &Node{Kind: KindLiteral, Literal: LitString, Text: text}
}

// Lgl builds a logical literal (TRUE, FALSE, NA).
func Lgl(text string) *Node {
	return &Node{Kind: KindLiteral, Literal: LitLogical, Text: text}
}

// Null builds the NULL literal.
func Null() *Node {
	return &Node{Kind: KindLiteral, Literal: LitNull, Text: "NULL"}
}

// Missing builds an empty argument.
func Missing() *Node {
	return &Node{Kind: KindMissing}
}

// Call builds head(args...) where head is a symbol name.
func Call(head string, args ...*Node) *Node {
	return CallNode(Sym(head), args...)
}

// CallNode builds a call with an arbitrary head expression.
func CallNode(head *Node, args ...*Node) *Node {
	items := make([]*Node, 0, len(args)+1)
	items = append(items, head)
	items = append(items, args...)

	return &Node{Kind: KindCall, Items: items}
}

// Tagged sets the argument name of n and returns it.
func Tagged(tag string, n *Node) *Node {
	n.Tag = tag
	return n
}

// IsCall reports whether n is a call node.
func (n *Node) IsCall() bool {
	return n != nil && n.Kind == KindCall && len(n.Items) > 0
}

// Head returns the head of a call, or nil.
func (n *Node) Head() *Node {
	if !n.IsCall() {
		return nil
	}

	return n.Items[0]
}

// HeadSymbol returns the head symbol of a call whose head is a plain symbol.
func (n *Node) HeadSymbol() (Symbol, bool) {
	head := n.Head()
	if head == nil || head.Kind != KindSymbol {
		return NoSymbol, false
	}

	return head.Sym, true
}

// Args returns the arguments of a call.
func (n *Node) Args() []*Node {
	if !n.IsCall() {
		return nil
	}

	return n.Items[1:]
}

// IsBlock reports whether n is a { ... } block.
func (n *Node) IsBlock() bool {
	sym, ok := n.HeadSymbol()
	return ok && sym == BlockSymbol
}

// Clone returns a deep copy sharing nothing with n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}

	out := &Node{
		Kind:    n.Kind,
		Sym:     n.Sym,
		Literal: n.Literal,
		Text:    n.Text,
		Tag:     n.Tag,
	}

	if n.Items != nil {
		out.Items = make([]*Node, len(n.Items))
		for i, item := range n.Items {
			out.Items[i] = item.Clone()
		}
	}

	return out
}

// Equal reports deep structural equality.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}

	if n.Kind != other.Kind || n.Sym != other.Sym || n.Literal != other.Literal ||
		n.Text != other.Text || n.Tag != other.Tag || len(n.Items) != len(other.Items) {
		return false
	}

	for i := range n.Items {
		if !n.Items[i].Equal(other.Items[i]) {
			return false
		}
	}

	return true
}

// Resolve walks path from n. It returns false when any step is out of
// range or passes through an atom.
func (n *Node) Resolve(path TreePath) (*Node, bool) {
	node := n
	for _, idx := range path {
		if node == nil || node.Kind != KindCall || idx < 0 || idx >= len(node.Items) {
			return nil, false
		}

		node = node.Items[idx]
	}

	return node, node != nil
}

// String renders a compact prefix form, e.g. (+ a (* b c)). It is meant for
// logs and test failures; real source text comes from the deparser.
func (n *Node) String() string {
	var b strings.Builder
	n.writePrefix(&b)

	return b.String()
}

func (n *Node) writePrefix(b *strings.Builder) {
	if n == nil {
		b.WriteString("<nil>")
		return
	}

	if n.Tag != "" {
		b.WriteString(n.Tag)
		b.WriteString("=")
	}

	switch n.Kind {
	case KindSymbol:
		b.WriteString(n.Sym.String())
	case KindLiteral:
		b.WriteString(n.Text)
	case KindMissing:
		b.WriteString("<missing>")
	case KindCall:
		b.WriteString("(")

		for i, item := range n.Items {
			if i > 0 {
				b.WriteString(" ")
			}

			item.writePrefix(b)
		}

		b.WriteString(")")
	}
}
