package rlang

import (
	"strings"
	"unicode"

	m "mutar.dev/pkg/mutar/internal/model"
)

const (
	indentUnit  = "    "
	precControl = 5
	precAtom    = 1000
)

var unaryOps = map[string]int{
	"-": precUnary,
	"+": precUnary,
	"!": precNot,
	"~": precTilde,
}

var controlHeads = map[string]bool{
	"function": true,
	"if":       true,
	"for":      true,
	"while":    true,
	"repeat":   true,
}

var assignOps = map[string]bool{
	"<-":  true,
	"<<-": true,
	"=":   true,
}

// Deparse renders statements as R source, one statement per line.
func Deparse(statements []*m.Node) []byte {
	var b strings.Builder

	for _, stmt := range statements {
		pr := &printer{b: &b}
		pr.expr(stmt, precLowest)
		b.WriteByte('\n')
	}

	return []byte(b.String())
}

// DeparseNode renders a single expression.
func DeparseNode(n *m.Node) string {
	var b strings.Builder

	pr := &printer{b: &b}
	pr.expr(n, precLowest)

	return b.String()
}

type printer struct {
	b      *strings.Builder
	indent int
}

type form int

const (
	formAtom form = iota
	formBinary
	formUnary
	formBlock
	formControl
	formJump
	formIndex
	formMember
	formNamespace
	formCall
)

// classify decides how a node prints. Calls whose shape does not fit their
// head's syntax fall back to the prefix form `head`(args).
func classify(n *m.Node) (form, int) {
	if !n.IsCall() {
		return formAtom, precAtom
	}

	head, ok := n.HeadSymbol()
	if !ok {
		return formCall, precPostfix
	}

	name := head.String()
	args := n.Args()

	switch {
	case name == "{":
		return formBlock, precAtom
	case name == "break" || name == "next":
		if len(args) == 0 {
			return formJump, precAtom
		}
	case controlHeads[name]:
		if controlShapeOK(name, args) {
			return formControl, precControl
		}
	case name == "[" || name == "[[":
		if len(args) >= 1 && args[0].Tag == "" && args[0].Kind != m.KindMissing {
			return formIndex, precPostfix
		}
	case name == "$" || name == "@":
		if len(args) == 2 && untagged(args) && isMemberName(args[1]) && args[0].Kind != m.KindMissing {
			return formMember, precPostfix
		}
	case name == "::" || name == ":::":
		if len(args) == 2 && untagged(args) && isMemberName(args[0]) && isMemberName(args[1]) {
			return formNamespace, precNamespace
		}
	}

	if len(args) == 2 && untagged(args) && noneMissing(args) {
		if info, ok := lookupInfix(name); ok && name != "->" && name != "->>" && name != "|>" {
			return formBinary, info.prec
		}
	}

	if len(args) == 1 && untagged(args) && noneMissing(args) {
		if prec, ok := unaryOps[name]; ok {
			return formUnary, prec
		}
	}

	return formCall, precPostfix
}

func controlShapeOK(name string, args []*m.Node) bool {
	if !untagged(args) || !noneMissing(args) {
		return false
	}

	switch name {
	case "function":
		return len(args) == 2 && args[0].IsCall() && args[0].Items[0].Kind == m.KindSymbol && args[0].Items[0].Sym == m.FormalsSymbol
	case "if":
		return len(args) == 2 || len(args) == 3
	case "for":
		return len(args) == 3 && args[0].Kind == m.KindSymbol
	case "while":
		return len(args) == 2
	case "repeat":
		return len(args) == 1
	}

	return false
}

func untagged(args []*m.Node) bool {
	for _, arg := range args {
		if arg.Tag != "" {
			return false
		}
	}

	return true
}

func noneMissing(args []*m.Node) bool {
	for _, arg := range args {
		if arg == nil || arg.Kind == m.KindMissing {
			return false
		}
	}

	return true
}

func isMemberName(n *m.Node) bool {
	return n.Kind == m.KindSymbol || (n.Kind == m.KindLiteral && n.Literal == m.LitString)
}

func (pr *printer) write(s string) {
	pr.b.WriteString(s)
}

func (pr *printer) newline() {
	pr.b.WriteByte('\n')
	pr.write(strings.Repeat(indentUnit, pr.indent))
}

// expr prints n, wrapping it in parentheses when it binds looser than minPrec.
func (pr *printer) expr(n *m.Node, minPrec int) {
	if n == nil {
		return
	}

	kind, prec := classify(n)
	if prec < minPrec {
		pr.write("(")
		pr.print(n, kind)
		pr.write(")")

		return
	}

	pr.print(n, kind)
}

func (pr *printer) print(n *m.Node, kind form) {
	switch kind {
	case formAtom:
		pr.atom(n)
	case formBinary:
		pr.binary(n)
	case formUnary:
		name := n.Items[0].Sym.String()
		pr.write(name)
		pr.expr(n.Items[1], unaryOps[name])
	case formBlock:
		pr.block(n)
	case formControl:
		pr.control(n)
	case formJump:
		pr.write(n.Items[0].Sym.String())
	case formIndex:
		pr.index(n)
	case formMember:
		pr.expr(n.Items[1], precPostfix)
		pr.write(n.Items[0].Sym.String())
		pr.atom(n.Items[2])
	case formNamespace:
		pr.atom(n.Items[1])
		pr.write(n.Items[0].Sym.String())
		pr.atom(n.Items[2])
	default:
		pr.call(n)
	}
}

func (pr *printer) atom(n *m.Node) {
	switch n.Kind {
	case m.KindSymbol:
		pr.write(quoteName(n.Sym.String()))
	case m.KindLiteral:
		pr.write(n.Text)
	case m.KindMissing:
	default:
		pr.expr(n, precLowest)
	}
}

func (pr *printer) binary(n *m.Node) {
	name := n.Items[0].Sym.String()
	info, _ := lookupInfix(name)

	leftMin, rightMin := info.prec, info.prec+1
	if info.right {
		leftMin, rightMin = info.prec+1, info.prec
	}

	if info.prec == precCompare {
		leftMin = info.prec + 1
	}

	right := n.Items[2]
	if assignOps[name] {
		if kind, _ := classify(right); kind == formControl {
			rightMin = precLowest
		}
	}

	pr.expr(n.Items[1], leftMin)

	switch name {
	case "^", ":":
		pr.write(name)
	default:
		pr.write(" " + name + " ")
	}

	pr.expr(right, rightMin)
}

func (pr *printer) block(n *m.Node) {
	pr.write("{")
	pr.indent++

	for _, stmt := range n.Args() {
		pr.newline()
		pr.expr(stmt, precLowest)
	}

	pr.indent--
	pr.newline()
	pr.write("}")
}

func (pr *printer) control(n *m.Node) {
	args := n.Args()

	switch name := n.Items[0].Sym.String(); name {
	case "function":
		pr.write("function(")
		pr.arguments(args[0].Args(), true)
		pr.write(") ")
		pr.expr(args[1], precLowest)
	case "if":
		pr.write("if (")
		pr.expr(args[0], precLowest)
		pr.write(") ")

		then := args[1]
		if len(args) == 3 && isOpenIf(then) {
			pr.write("(")
			pr.expr(then, precLowest)
			pr.write(")")
		} else {
			pr.expr(then, precLowest)
		}

		if len(args) == 3 {
			pr.write(" else ")
			pr.expr(args[2], precLowest)
		}
	case "for":
		pr.write("for (")
		pr.atom(args[0])
		pr.write(" in ")
		pr.expr(args[1], precLowest)
		pr.write(") ")
		pr.expr(args[2], precLowest)
	case "while":
		pr.write("while (")
		pr.expr(args[0], precLowest)
		pr.write(") ")
		pr.expr(args[1], precLowest)
	case "repeat":
		pr.write("repeat ")
		pr.expr(args[0], precLowest)
	}
}

// isOpenIf reports an if without else, which would capture a following else.
func isOpenIf(n *m.Node) bool {
	kind, _ := classify(n)
	if kind != formControl {
		return false
	}

	sym, _ := n.HeadSymbol()

	return sym.String() == "if" && len(n.Args()) == 2
}

func (pr *printer) index(n *m.Node) {
	name := n.Items[0].Sym.String()
	args := n.Args()

	pr.expr(args[0], precPostfix)
	pr.write(name)
	pr.arguments(args[1:], false)

	if name == "[[" {
		pr.write("]]")
	} else {
		pr.write("]")
	}
}

func (pr *printer) call(n *m.Node) {
	head := n.Items[0]
	if head.Kind == m.KindSymbol {
		pr.write(quoteName(head.Sym.String()))
	} else {
		pr.expr(head, precPostfix)
	}

	pr.write("(")
	pr.arguments(n.Args(), false)
	pr.write(")")
}

// arguments prints a comma separated list. A formal without a default
// prints as its bare name; a named call argument keeps its " = ".
func (pr *printer) arguments(args []*m.Node, formals bool) {
	for i, arg := range args {
		if i > 0 {
			pr.write(", ")
		}

		if arg.Tag != "" {
			pr.write(quoteName(arg.Tag))

			if arg.Kind == m.KindMissing && formals {
				continue
			}

			pr.write(" = ")
		}

		pr.expr(arg, precLowest)
	}
}

// quoteName backticks names that are not syntactic.
func quoteName(name string) string {
	if isSyntactic(name) {
		return name
	}

	return "`" + strings.ReplaceAll(name, "`", "\\`") + "`"
}

func isSyntactic(name string) bool {
	if name == "" || reserved[name] {
		return false
	}

	for i, r := range name {
		switch {
		case unicode.IsLetter(r):
		case r == '.':
			if i == 0 && len(name) > 1 && unicode.IsDigit(rune(name[1])) {
				return false
			}
		case unicode.IsDigit(r) || r == '_':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}

	return true
}
