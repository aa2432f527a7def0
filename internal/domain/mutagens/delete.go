package mutagens

import m "mutar.dev/pkg/mutar/internal/model"

// Delete returns the structural operator that excises a node from its
// parent instead of rewriting it.
func Delete() m.Operator {
	return m.Operator{
		Kind:   "Delete",
		Family: m.FamilyStructural,
		Action: m.ActionExcise,
	}
}
