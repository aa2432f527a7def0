package mutagens

import m "mutar.dev/pkg/mutar/internal/model"

// Each arithmetic operator flips to exactly one partner.
var arithmeticOperators = []m.Operator{
	rewrite("Plus", m.FamilyArithmetic, "+", "-"),
	rewrite("Minus", m.FamilyArithmetic, "-", "+"),
	rewrite("Multiply", m.FamilyArithmetic, "*", "/"),
	rewrite("Divide", m.FamilyArithmetic, "/", "*"),
}
