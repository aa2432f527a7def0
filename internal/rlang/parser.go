package rlang

import (
	"fmt"

	m "mutar.dev/pkg/mutar/internal/model"
)

// Binding powers, loosest first. Grouping parentheses are not kept in the
// tree; Deparse puts them back from these same levels.
const (
	precLowest    = 0
	precEq        = 10
	precLeft      = 20
	precRight     = 30
	precTilde     = 35
	precOr        = 40
	precAnd       = 50
	precNot       = 60
	precCompare   = 70
	precSum       = 80
	precProduct   = 90
	precSpecial   = 100
	precRange     = 110
	precUnary     = 120
	precPower     = 130
	precPostfix   = 140
	precNamespace = 150
)

type infixOp struct {
	prec  int
	right bool
}

var infixOps = map[string]infixOp{
	"=":   {precEq, true},
	"<-":  {precLeft, true},
	"<<-": {precLeft, true},
	"->":  {precRight, false},
	"->>": {precRight, false},
	"~":   {precTilde, false},
	"||":  {precOr, false},
	"|":   {precOr, false},
	"&&":  {precAnd, false},
	"&":   {precAnd, false},
	"==":  {precCompare, false},
	"!=":  {precCompare, false},
	"<":   {precCompare, false},
	">":   {precCompare, false},
	"<=":  {precCompare, false},
	">=":  {precCompare, false},
	"+":   {precSum, false},
	"-":   {precSum, false},
	"*":   {precProduct, false},
	"/":   {precProduct, false},
	"|>":  {precSpecial, false},
	":":   {precRange, false},
	"^":   {precPower, true},
	"$":   {precPostfix, false},
	"@":   {precPostfix, false},
	"::":  {precNamespace, false},
	":::": {precNamespace, false},
}

// lookupInfix also covers user %op% operators.
func lookupInfix(op string) (infixOp, bool) {
	if isSpecialOp(op) {
		return infixOp{precSpecial, false}, true
	}

	info, ok := infixOps[op]

	return info, ok
}

func isSpecialOp(op string) bool {
	return len(op) >= 2 && op[0] == '%' && op[len(op)-1] == '%'
}

var literalIdents = map[string]func(string) *m.Node{
	"TRUE":          m.Lgl,
	"FALSE":         m.Lgl,
	"NA":            m.Lgl,
	"NA_integer_":   m.Lgl,
	"NA_real_":      m.Lgl,
	"NA_character_": m.Lgl,
	"Inf":           m.Num,
	"NaN":           m.Num,
	"NULL":          func(string) *m.Node { return m.Null() },
}

var reserved = map[string]bool{
	"function": true, "if": true, "else": true, "for": true, "in": true,
	"while": true, "repeat": true, "break": true, "next": true,
	"TRUE": true, "FALSE": true, "NULL": true, "NA": true, "Inf": true, "NaN": true,
	"NA_integer_": true, "NA_real_": true, "NA_character_": true,
}

type parser struct {
	file  string
	toks  []Token
	pos   int
	last  Token
	depth int
	// skipNL is a stack; the top says whether newlines are insignificant,
	// which holds inside ( ) and [ ] but not inside { }.
	skipNL []bool
}

// Parse parses a whole file into its top-level statements and their spans.
func Parse(file string, src []byte) (m.Program, error) {
	toks, err := Lex(file, src)
	if err != nil {
		return m.Program{}, err
	}

	p := &parser{file: file, toks: toks, skipNL: []bool{false}}

	var prog m.Program

	for {
		p.skipSeparators()

		if p.peek().Kind == TokEOF {
			return prog, nil
		}

		start := p.peek()

		stmt, err := p.parseExpr(precLowest)
		if err != nil {
			return m.Program{}, err
		}

		if err := p.endStatement(TokEOF); err != nil {
			return m.Program{}, err
		}

		prog.Statements = append(prog.Statements, stmt)
		prog.Spans = append(prog.Spans, m.Span{
			StartLine: start.Line,
			StartCol:  start.Col,
			EndLine:   p.last.EndLine,
			EndCol:    p.last.EndCol,
		})
	}
}

// ParseStatement parses src and returns its first statement.
func ParseStatement(src string) (*m.Node, m.Span, error) {
	prog, err := Parse("", []byte(src))
	if err != nil {
		return nil, m.Span{}, err
	}

	if len(prog.Statements) == 0 {
		return nil, m.Span{}, &SyntaxError{Line: 1, Col: 1, Msg: "no statements"}
	}

	return prog.Statements[0], prog.Spans[0], nil
}

func (p *parser) errorAt(tok Token, format string, args ...any) error {
	return &SyntaxError{File: p.file, Line: tok.Line, Col: tok.Col, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) unexpected(tok Token) error {
	switch tok.Kind {
	case TokIdent, TokOp, TokNumber, TokString:
		return p.errorAt(tok, "unexpected %s %q", tok.Kind, tok.Text)
	default:
		return p.errorAt(tok, "unexpected %s", tok.Kind)
	}
}

func (p *parser) pushNL(skip bool) {
	p.skipNL = append(p.skipNL, skip)
}

func (p *parser) popNL() {
	p.skipNL = p.skipNL[:len(p.skipNL)-1]
}

func (p *parser) peek() Token {
	if p.skipNL[len(p.skipNL)-1] {
		p.skipNewlines()
	}

	return p.toks[p.pos]
}

// peekPast returns the token after the next one, ignoring newlines.
func (p *parser) peekPast() Token {
	i := p.pos + 1
	for i < len(p.toks)-1 && p.toks[i].Kind == TokNewline {
		i++
	}

	return p.toks[i]
}

func (p *parser) next() Token {
	tok := p.peek()
	if tok.Kind != TokEOF {
		p.pos++
	}

	p.last = tok

	return tok
}

func (p *parser) skipNewlines() {
	for p.toks[p.pos].Kind == TokNewline {
		p.pos++
	}
}

func (p *parser) skipSeparators() {
	for k := p.toks[p.pos].Kind; k == TokNewline || k == TokSemicolon; k = p.toks[p.pos].Kind {
		p.pos++
	}
}

func (p *parser) expect(kind TokenKind) (Token, error) {
	tok := p.peek()
	if tok.Kind != kind {
		return tok, p.errorAt(tok, "expected %s, found %s", kind, describe(tok))
	}

	return p.next(), nil
}

func describe(tok Token) string {
	switch tok.Kind {
	case TokIdent, TokOp, TokNumber, TokString:
		return fmt.Sprintf("%s %q", tok.Kind, tok.Text)
	default:
		return tok.Kind.String()
	}
}

// endStatement accepts a newline, a semicolon or the closer.
func (p *parser) endStatement(closer TokenKind) error {
	tok := p.toks[p.pos]

	switch tok.Kind {
	case TokNewline, TokSemicolon:
		p.pos++
		return nil
	case closer:
		return nil
	default:
		return p.unexpected(tok)
	}
}

func (p *parser) parseExpr(rbp int) (*m.Node, error) {
	left, err := p.nud()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.peek()

		lbp := p.infixPower(tok)
		if lbp <= rbp {
			return left, nil
		}

		left, err = p.led(left)
		if err != nil {
			return nil, err
		}
	}
}

func (p *parser) infixPower(tok Token) int {
	switch tok.Kind {
	case TokLParen, TokLBracket, TokLDBracket:
		return precPostfix
	case TokOp:
		if info, ok := lookupInfix(tok.Text); ok {
			return info.prec
		}
	}

	return precLowest
}

func (p *parser) nud() (*m.Node, error) {
	tok := p.next()

	switch tok.Kind {
	case TokNumber:
		return m.Num(tok.Text), nil
	case TokString:
		return m.Str(tok.Text), nil
	case TokIdent:
		return p.identifier(tok)
	case TokLParen:
		return p.group()
	case TokLBrace:
		return p.block()
	case TokOp:
		return p.prefix(tok)
	default:
		return nil, p.unexpected(tok)
	}
}

func (p *parser) identifier(tok Token) (*m.Node, error) {
	if tok.Quoted {
		return m.Sym(tok.Text), nil
	}

	if build, ok := literalIdents[tok.Text]; ok {
		return build(tok.Text), nil
	}

	switch tok.Text {
	case "function":
		return p.function()
	case "if":
		return p.ifExpr()
	case "for":
		return p.forExpr()
	case "while":
		return p.whileExpr()
	case "repeat":
		body, err := p.body()
		if err != nil {
			return nil, err
		}

		return m.Call("repeat", body), nil
	case "break", "next":
		return m.Call(tok.Text), nil
	case "else", "in":
		return nil, p.unexpected(tok)
	}

	return m.Sym(tok.Text), nil
}

func (p *parser) prefix(tok Token) (*m.Node, error) {
	var rbp int

	switch tok.Text {
	case "-", "+":
		rbp = precUnary
	case "!":
		rbp = precNot
	case "~":
		rbp = precTilde
	case "\\":
		return p.function()
	default:
		return nil, p.unexpected(tok)
	}

	operand, err := p.parseExpr(rbp)
	if err != nil {
		return nil, err
	}

	return m.Call(tok.Text, operand), nil
}

func (p *parser) group() (*m.Node, error) {
	p.pushNL(true)
	defer p.popNL()

	inner, err := p.parseExpr(precLowest)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokRParen); err != nil {
		return nil, err
	}

	return inner, nil
}

func (p *parser) block() (*m.Node, error) {
	p.pushNL(false)
	p.depth++

	defer func() {
		p.popNL()
		p.depth--
	}()

	var stmts []*m.Node

	for {
		p.skipSeparators()

		if p.toks[p.pos].Kind == TokRBrace {
			p.next()
			return m.Call("{", stmts...), nil
		}

		stmt, err := p.parseExpr(precLowest)
		if err != nil {
			return nil, err
		}

		if err := p.endStatement(TokRBrace); err != nil {
			return nil, err
		}

		stmts = append(stmts, stmt)
	}
}

// body parses the body of a control construct, which may start on the
// next line.
func (p *parser) body() (*m.Node, error) {
	p.skipNewlines()

	return p.parseExpr(precLowest)
}

func (p *parser) condition() (*m.Node, error) {
	if _, err := p.expect(TokLParen); err != nil {
		return nil, err
	}

	return p.group()
}

func (p *parser) function() (*m.Node, error) {
	if _, err := p.expect(TokLParen); err != nil {
		return nil, err
	}

	p.pushNL(true)

	formals := []*m.Node{}

	for p.peek().Kind != TokRParen {
		name, err := p.expect(TokIdent)
		if err != nil {
			p.popNL()
			return nil, err
		}

		value := m.Missing()

		if tok := p.peek(); tok.Kind == TokOp && tok.Text == "=" {
			p.next()

			value, err = p.parseExpr(precEq)
			if err != nil {
				p.popNL()
				return nil, err
			}
		}

		formals = append(formals, m.Tagged(name.Text, value))

		if p.peek().Kind != TokComma {
			break
		}

		p.next()
	}

	_, err := p.expect(TokRParen)

	p.popNL()

	if err != nil {
		return nil, err
	}

	body, err := p.body()
	if err != nil {
		return nil, err
	}

	return m.Call("function", m.CallNode(&m.Node{Kind: m.KindSymbol, Sym: m.FormalsSymbol}, formals...), body), nil
}

func (p *parser) ifExpr() (*m.Node, error) {
	cond, err := p.condition()
	if err != nil {
		return nil, err
	}

	then, err := p.body()
	if err != nil {
		return nil, err
	}

	if !p.atElse() {
		return m.Call("if", cond, then), nil
	}

	p.next()

	otherwise, err := p.body()
	if err != nil {
		return nil, err
	}

	return m.Call("if", cond, then, otherwise), nil
}

// atElse reports whether an else follows. At top level it has to be on the
// same line as the end of the if body; inside braces or brackets newlines
// may come first.
func (p *parser) atElse() bool {
	save := p.pos

	if p.depth > 0 || p.skipNL[len(p.skipNL)-1] {
		p.skipNewlines()
	}

	tok := p.toks[p.pos]
	if tok.Kind == TokIdent && !tok.Quoted && tok.Text == "else" {
		return true
	}

	p.pos = save

	return false
}

func (p *parser) forExpr() (*m.Node, error) {
	if _, err := p.expect(TokLParen); err != nil {
		return nil, err
	}

	p.pushNL(true)

	variable, err := p.expect(TokIdent)
	if err != nil {
		p.popNL()
		return nil, err
	}

	if tok := p.next(); tok.Kind != TokIdent || tok.Text != "in" {
		p.popNL()
		return nil, p.errorAt(tok, "expected in, found %s", describe(tok))
	}

	seq, err := p.parseExpr(precLowest)
	if err == nil {
		_, err = p.expect(TokRParen)
	}

	p.popNL()

	if err != nil {
		return nil, err
	}

	body, err := p.body()
	if err != nil {
		return nil, err
	}

	return m.Call("for", m.Sym(variable.Text), seq, body), nil
}

func (p *parser) whileExpr() (*m.Node, error) {
	cond, err := p.condition()
	if err != nil {
		return nil, err
	}

	body, err := p.body()
	if err != nil {
		return nil, err
	}

	return m.Call("while", cond, body), nil
}

func (p *parser) led(left *m.Node) (*m.Node, error) {
	tok := p.next()

	switch tok.Kind {
	case TokLParen:
		args, err := p.arguments(TokRParen)
		if err != nil {
			return nil, err
		}

		return m.CallNode(left, args...), nil
	case TokLBracket:
		args, err := p.arguments(TokRBracket)
		if err != nil {
			return nil, err
		}

		return m.Call("[", append([]*m.Node{left}, args...)...), nil
	case TokLDBracket:
		args, err := p.arguments(TokRBracket)
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(TokRBracket); err != nil {
			return nil, err
		}

		return m.Call("[[", append([]*m.Node{left}, args...)...), nil
	}

	switch tok.Text {
	case "$", "@":
		return p.member(tok, left)
	case "::", ":::":
		return p.namespace(tok, left)
	}

	info, _ := lookupInfix(tok.Text)

	rbp := info.prec
	if info.right {
		rbp--
	}

	p.skipNewlines()

	right, err := p.parseExpr(rbp)
	if err != nil {
		return nil, err
	}

	switch tok.Text {
	case "->":
		return m.Call("<-", right, left), nil
	case "->>":
		return m.Call("<<-", right, left), nil
	case "|>":
		if !right.IsCall() {
			return nil, p.errorAt(tok, "the pipe operator requires a function call as RHS")
		}

		items := append([]*m.Node{right.Items[0], left}, right.Items[1:]...)

		return &m.Node{Kind: m.KindCall, Items: items}, nil
	}

	return m.Call(tok.Text, left, right), nil
}

func (p *parser) member(tok Token, left *m.Node) (*m.Node, error) {
	p.skipNewlines()

	name := p.next()

	switch name.Kind {
	case TokIdent:
		return m.Call(tok.Text, left, m.Sym(name.Text)), nil
	case TokString:
		return m.Call(tok.Text, left, m.Str(name.Text)), nil
	default:
		return nil, p.unexpected(name)
	}
}

func (p *parser) namespace(tok Token, left *m.Node) (*m.Node, error) {
	if left.Kind != m.KindSymbol && !(left.Kind == m.KindLiteral && left.Literal == m.LitString) {
		return nil, p.errorAt(tok, "unexpected %q", tok.Text)
	}

	name := p.next()
	if name.Kind != TokIdent && name.Kind != TokString {
		return nil, p.unexpected(name)
	}

	rhs := m.Sym(name.Text)
	if name.Kind == TokString {
		rhs = m.Str(name.Text)
	}

	return m.Call(tok.Text, left, rhs), nil
}

// arguments parses a comma separated argument list up to closer. Empty
// slots become missing arguments; name = value pairs become tagged ones.
func (p *parser) arguments(closer TokenKind) ([]*m.Node, error) {
	p.pushNL(true)
	defer p.popNL()

	var args []*m.Node

	if p.peek().Kind == closer {
		p.next()
		return args, nil
	}

	for {
		arg, err := p.argument(closer)
		if err != nil {
			return nil, err
		}

		args = append(args, arg)

		if p.peek().Kind != TokComma {
			break
		}

		p.next()
	}

	if _, err := p.expect(closer); err != nil {
		return nil, err
	}

	return args, nil
}

func (p *parser) argument(closer TokenKind) (*m.Node, error) {
	tok := p.peek()
	if tok.Kind == TokComma || tok.Kind == closer {
		return m.Missing(), nil
	}

	if tok.Kind == TokIdent || tok.Kind == TokString {
		if eq := p.peekPast(); eq.Kind == TokOp && eq.Text == "=" {
			p.next()
			p.next()

			tag := tok.Text
			if tok.Kind == TokString {
				tag = unquote(tok.Text)
			}

			if next := p.peek(); next.Kind == TokComma || next.Kind == closer {
				return m.Tagged(tag, m.Missing()), nil
			}

			value, err := p.parseExpr(precEq)
			if err != nil {
				return nil, err
			}

			return m.Tagged(tag, value), nil
		}
	}

	return p.parseExpr(precLowest)
}

func unquote(s string) string {
	if len(s) >= 2 {
		return s[1 : len(s)-1]
	}

	return s
}
