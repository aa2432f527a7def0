// Package mutagens holds the catalogue of operator mutations: which call
// heads can be flipped, and to what.
package mutagens

import (
	"sync"

	m "mutar.dev/pkg/mutar/internal/model"
)

// rewrite builds a rewrite operator from its kind name and token pair.
func rewrite(kind string, family m.OperatorFamily, from, to string) m.Operator {
	return m.Operator{
		Kind:   kind,
		Family: family,
		Action: m.ActionRewrite,
		From:   m.Intern(from),
		To:     m.Intern(to),
	}
}

var (
	tableOnce sync.Once
	catalogue []m.Operator
	bySymbol  map[m.Symbol]m.Operator
)

func buildTable() {
	catalogue = make([]m.Operator, 0, len(arithmeticOperators)+len(comparisonOperators)+len(logicalOperators))
	catalogue = append(catalogue, arithmeticOperators...)
	catalogue = append(catalogue, comparisonOperators...)
	catalogue = append(catalogue, logicalOperators...)

	bySymbol = make(map[m.Symbol]m.Operator, len(catalogue))
	for _, op := range catalogue {
		bySymbol[op.From] = op
	}
}

// Lookup returns the rewrite operator whose token is sym.
func Lookup(sym m.Symbol) (m.Operator, bool) {
	tableOnce.Do(buildTable)

	op, ok := bySymbol[sym]

	return op, ok
}

// LookupToken is Lookup by name.
func LookupToken(token string) (m.Operator, bool) {
	return Lookup(m.Intern(token))
}

// Catalogue returns every rewrite operator in table order. The returned
// slice is a copy.
func Catalogue() []m.Operator {
	tableOnce.Do(buildTable)

	out := make([]m.Operator, len(catalogue))
	copy(out, catalogue)

	return out
}

// Families returns the rewrite operators of one family.
func Families(family m.OperatorFamily) []m.Operator {
	var out []m.Operator

	for _, op := range Catalogue() {
		if op.Family == family {
			out = append(out, op)
		}
	}

	return out
}
