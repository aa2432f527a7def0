package mutagens

import m "mutar.dev/pkg/mutar/internal/model"

var comparisonOperators = []m.Operator{
	rewrite("Equal", m.FamilyComparison, "==", "!="),
	rewrite("NotEqual", m.FamilyComparison, "!=", "=="),
	rewrite("LessThan", m.FamilyComparison, "<", ">"),
	rewrite("MoreThan", m.FamilyComparison, ">", "<"),
	rewrite("LessOrEqual", m.FamilyComparison, "<=", ">="),
	rewrite("MoreOrEqual", m.FamilyComparison, ">=", "<="),
}
