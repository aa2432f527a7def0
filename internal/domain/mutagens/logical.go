package mutagens

import m "mutar.dev/pkg/mutar/internal/model"

// & and | are the vectorised forms, && and || the short-circuit forms. Each
// flips within its own form.
var logicalOperators = []m.Operator{
	rewrite("And", m.FamilyLogical, "&", "|"),
	rewrite("Or", m.FamilyLogical, "|", "&"),
	rewrite("LogicalAnd", m.FamilyLogical, "&&", "||"),
	rewrite("LogicalOr", m.FamilyLogical, "||", "&&"),
}
