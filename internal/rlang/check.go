package rlang

import (
	"errors"
	"fmt"

	m "mutar.dev/pkg/mutar/internal/model"
)

// ErrMalformed is wrapped by every Check failure.
var ErrMalformed = errors.New("malformed expression")

var binaryOnly = map[string]bool{
	"*": true, "/": true, "^": true, ":": true,
	"==": true, "!=": true, "<": true, ">": true, "<=": true, ">=": true,
	"&": true, "&&": true, "|": true, "||": true,
}

// Check validates the shape of a tree the way R does when it evaluates it:
// operators need operands, control constructs need their parts, and
// assignment needs a target. It does not evaluate anything.
func Check(n *m.Node) error {
	return check(n, m.TreePath{})
}

// CheckProgram runs Check over every statement.
func CheckProgram(statements []*m.Node) error {
	for i, stmt := range statements {
		if stmt == nil {
			return fmt.Errorf("statement %d: empty: %w", i+1, ErrMalformed)
		}

		if err := Check(stmt); err != nil {
			return fmt.Errorf("statement %d: %w", i+1, err)
		}
	}

	return nil
}

func malformed(path m.TreePath, format string, args ...any) error {
	return fmt.Errorf("%s at %s: %w", fmt.Sprintf(format, args...), path, ErrMalformed)
}

func check(n *m.Node, path m.TreePath) error {
	if n == nil {
		return malformed(path, "nil node")
	}

	if n.Kind != m.KindCall {
		return nil
	}

	if len(n.Items) == 0 {
		return malformed(path, "call without head")
	}

	if err := checkShape(n, path); err != nil {
		return err
	}

	for i, item := range n.Items {
		if i == 1 && isFunction(n) {
			for j, param := range item.Args() {
				if err := check(param, path.Append(i).Append(j+1)); err != nil {
					return err
				}
			}

			continue
		}

		if err := check(item, path.Append(i)); err != nil {
			return err
		}
	}

	return nil
}

func isFunction(n *m.Node) bool {
	head, ok := n.HeadSymbol()
	return ok && head == m.FunctionSymbol
}

func checkShape(n *m.Node, path m.TreePath) error {
	head, ok := n.HeadSymbol()
	if !ok {
		return nil
	}

	name := head.String()
	args := n.Args()

	switch {
	case name == "+" || name == "-":
		return operands(name, args, path, 1, 2)
	case name == "!":
		return operands(name, args, path, 1, 1)
	case binaryOnly[name] || isSpecialOp(name):
		return operands(name, args, path, 2, 2)
	case assignOps[name]:
		if err := operands(name, args, path, 2, 2); err != nil {
			return err
		}

		return assignable(args[0], path.Append(1))
	case name == "if":
		return operands(name, args, path, 2, 3)
	case name == "while":
		return operands(name, args, path, 2, 2)
	case name == "repeat":
		return operands(name, args, path, 1, 1)
	case name == "break" || name == "next":
		return operands(name, args, path, 0, 0)
	case name == "for":
		if err := operands(name, args, path, 3, 3); err != nil {
			return err
		}

		if args[0].Kind != m.KindSymbol {
			return malformed(path, "for loop variable is not a name")
		}
	case name == "function":
		if len(args) != 2 || !args[0].IsCall() || args[0].Items[0].Kind != m.KindSymbol || args[0].Items[0].Sym != m.FormalsSymbol {
			return malformed(path, "function needs formals and a body")
		}

		return formals(args[0].Args(), path.Append(1))
	case name == "$" || name == "@":
		if len(args) != 2 || !isMemberName(args[1]) {
			return malformed(path, "invalid %q access", name)
		}
	case name == "[" || name == "[[":
		if len(args) == 0 || args[0].Kind == m.KindMissing {
			return malformed(path, "%q needs an object", name)
		}
	case head == m.FormalsSymbol:
		return malformed(path, "formals outside a function")
	}

	return nil
}

func operands(name string, args []*m.Node, path m.TreePath, lo, hi int) error {
	if len(args) < lo || len(args) > hi {
		if lo == hi {
			return malformed(path, "%q takes %d argument(s), got %d", name, lo, len(args))
		}

		return malformed(path, "%q takes %d to %d arguments, got %d", name, lo, hi, len(args))
	}

	for i, arg := range args {
		if arg.Kind == m.KindMissing {
			return malformed(path.Append(i+1), "%q has an empty argument", name)
		}
	}

	return nil
}

func assignable(target *m.Node, path m.TreePath) error {
	switch target.Kind {
	case m.KindSymbol:
		return nil
	case m.KindLiteral:
		if target.Literal == m.LitString {
			return nil
		}
	case m.KindCall:
		return nil
	}

	return malformed(path, "invalid assignment target %s", DeparseNode(target))
}

func formals(params []*m.Node, path m.TreePath) error {
	seen := map[string]bool{}

	for i, param := range params {
		if param.Tag == "" {
			return malformed(path.Append(i+1), "formal argument without a name")
		}

		if seen[param.Tag] {
			return malformed(path.Append(i+1), "repeated formal argument %q", param.Tag)
		}

		seen[param.Tag] = true
	}

	return nil
}
