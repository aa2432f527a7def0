// Package rlang parses and prints the subset of R that mutar mutates.
package rlang

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenKind classifies lexer output.
type TokenKind int

// Token kinds.
const (
	TokEOF TokenKind = iota
	TokNewline
	TokIdent
	TokNumber
	TokString
	TokOp
	TokLParen
	TokRParen
	TokLBrace
	TokRBrace
	TokLBracket
	TokLDBracket
	TokRBracket
	TokComma
	TokSemicolon
)

var tokenNames = map[TokenKind]string{
	TokEOF:       "end of input",
	TokNewline:   "newline",
	TokIdent:     "identifier",
	TokNumber:    "number",
	TokString:    "string",
	TokOp:        "operator",
	TokLParen:    "'('",
	TokRParen:    "')'",
	TokLBrace:    "'{'",
	TokRBrace:    "'}'",
	TokLBracket:  "'['",
	TokLDBracket: "'[['",
	TokRBracket:  "']'",
	TokComma:     "','",
	TokSemicolon: "';'",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}

	return fmt.Sprintf("token(%d)", int(k))
}

// Token is one lexeme with its 1-based position. EndCol is inclusive.
type Token struct {
	Kind TokenKind
	Text string
	// Quoted marks identifiers written with backticks; Text holds the bare name.
	Quoted  bool
	Line    int
	Col     int
	EndLine int
	EndCol  int
}

// SyntaxError reports a lexing or parsing failure at a source position.
type SyntaxError struct {
	File string
	Line int
	Col  int
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Col, e.Msg)
	}

	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Msg)
}

// operators ordered longest first so the scanner can match greedily.
var operators = []string{
	":::", "<<-", "->>",
	"::", "<-", "->", "<=", ">=", "==", "!=", "&&", "||", "|>",
	"+", "-", "*", "/", "^", "<", ">", "!", "&", "|", "~", "?", ":", "=", "$", "@", "\\",
}

type lexer struct {
	file string
	src  string
	pos  int
	line int
	col  int
	toks []Token
}

// Lex splits src into tokens. Comments are dropped; newlines are kept since
// they terminate statements outside brackets.
func Lex(file string, src []byte) ([]Token, error) {
	lx := &lexer{file: file, src: string(src), line: 1, col: 1}

	for {
		tok, err := lx.next()
		if err != nil {
			return nil, err
		}

		lx.toks = append(lx.toks, tok)

		if tok.Kind == TokEOF {
			return lx.toks, nil
		}
	}
}

func (lx *lexer) peekRune(offset int) rune {
	p := lx.pos

	for i := 0; i < offset; i++ {
		if p >= len(lx.src) {
			return utf8.RuneError
		}

		_, size := utf8.DecodeRuneInString(lx.src[p:])
		p += size
	}

	if p >= len(lx.src) {
		return 0
	}

	r, _ := utf8.DecodeRuneInString(lx.src[p:])

	return r
}

func (lx *lexer) advance() rune {
	r, size := utf8.DecodeRuneInString(lx.src[lx.pos:])
	lx.pos += size

	if r == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}

	return r
}

func (lx *lexer) errorf(line, col int, format string, args ...any) error {
	return &SyntaxError{File: lx.file, Line: line, Col: col, Msg: fmt.Sprintf(format, args...)}
}

func (lx *lexer) next() (Token, error) {
	lx.skipBlanks()

	line, col := lx.line, lx.col
	start := lx.pos

	if lx.pos >= len(lx.src) {
		return Token{Kind: TokEOF, Line: line, Col: col, EndLine: line, EndCol: col}, nil
	}

	r := lx.peekRune(0)

	var (
		kind   TokenKind
		text   string
		quoted bool
		err    error
	)

	switch {
	case r == '\n':
		lx.advance()

		kind = TokNewline
	case r == '"' || r == '\'':
		kind = TokString
		text, err = lx.scanString(r, line, col)
	case r == '`':
		kind = TokIdent
		quoted = true
		text, err = lx.scanBacktick(line, col)
	case unicode.IsDigit(r) || (r == '.' && unicode.IsDigit(lx.peekRune(1))):
		kind = TokNumber
		text = lx.scanNumber()
	case unicode.IsLetter(r) || r == '.':
		kind = TokIdent
		text = lx.scanIdent()
	case r == '%':
		kind = TokOp
		text, err = lx.scanPercent(line, col)
	default:
		kind, text, err = lx.scanPunct(line, col)
	}

	if err != nil {
		return Token{}, err
	}

	if text == "" && kind != TokNewline {
		text = lx.src[start:lx.pos]
	}

	endLine, endCol := lx.line, lx.col-1
	if kind == TokNewline {
		endLine, endCol = line, col
	}

	return Token{Kind: kind, Text: text, Quoted: quoted, Line: line, Col: col, EndLine: endLine, EndCol: endCol}, nil
}

func (lx *lexer) skipBlanks() {
	for lx.pos < len(lx.src) {
		r := lx.peekRune(0)

		switch {
		case r == '#':
			for lx.pos < len(lx.src) && lx.peekRune(0) != '\n' {
				lx.advance()
			}
		case r != '\n' && unicode.IsSpace(r):
			lx.advance()
		default:
			return
		}
	}
}

func (lx *lexer) scanString(quote rune, line, col int) (string, error) {
	start := lx.pos
	lx.advance()

	for lx.pos < len(lx.src) {
		r := lx.advance()

		switch r {
		case '\\':
			if lx.pos >= len(lx.src) {
				return "", lx.errorf(line, col, "unterminated string")
			}

			lx.advance()
		case quote:
			return lx.src[start:lx.pos], nil
		}
	}

	return "", lx.errorf(line, col, "unterminated string")
}

func (lx *lexer) scanBacktick(line, col int) (string, error) {
	lx.advance()

	var b strings.Builder

	for lx.pos < len(lx.src) {
		r := lx.advance()

		switch r {
		case '\\':
			if lx.pos < len(lx.src) {
				b.WriteRune(lx.advance())
			}
		case '`':
			if b.Len() == 0 {
				return "", lx.errorf(line, col, "empty backquoted name")
			}

			return b.String(), nil
		default:
			b.WriteRune(r)
		}
	}

	return "", lx.errorf(line, col, "unterminated backquoted name")
}

func (lx *lexer) scanNumber() string {
	start := lx.pos

	if lx.peekRune(0) == '0' && (lx.peekRune(1) == 'x' || lx.peekRune(1) == 'X') {
		lx.advance()
		lx.advance()

		for isHexDigit(lx.peekRune(0)) {
			lx.advance()
		}
	} else {
		for unicode.IsDigit(lx.peekRune(0)) || lx.peekRune(0) == '.' {
			lx.advance()
		}

		if r := lx.peekRune(0); r == 'e' || r == 'E' {
			next := lx.peekRune(1)
			if unicode.IsDigit(next) || ((next == '+' || next == '-') && unicode.IsDigit(lx.peekRune(2))) {
				lx.advance()
				lx.advance()

				for unicode.IsDigit(lx.peekRune(0)) {
					lx.advance()
				}
			}
		}
	}

	if r := lx.peekRune(0); r == 'L' || r == 'i' {
		lx.advance()
	}

	return lx.src[start:lx.pos]
}

func isHexDigit(r rune) bool {
	return unicode.IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func (lx *lexer) scanIdent() string {
	start := lx.pos

	for {
		r := lx.peekRune(0)
		if r == 0 || !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '_') {
			break
		}

		lx.advance()
	}

	return lx.src[start:lx.pos]
}

func (lx *lexer) scanPercent(line, col int) (string, error) {
	start := lx.pos
	lx.advance()

	for lx.pos < len(lx.src) {
		r := lx.advance()
		if r == '\n' {
			break
		}

		if r == '%' {
			return lx.src[start:lx.pos], nil
		}
	}

	return "", lx.errorf(line, col, "unterminated %%op%%")
}

func (lx *lexer) scanPunct(line, col int) (TokenKind, string, error) {
	r := lx.peekRune(0)

	single := map[rune]TokenKind{
		'(': TokLParen,
		')': TokRParen,
		'{': TokLBrace,
		'}': TokRBrace,
		']': TokRBracket,
		',': TokComma,
		';': TokSemicolon,
	}

	if kind, ok := single[r]; ok {
		lx.advance()
		return kind, "", nil
	}

	if r == '[' {
		lx.advance()

		if lx.peekRune(0) == '[' {
			lx.advance()
			return TokLDBracket, "[[", nil
		}

		return TokLBracket, "[", nil
	}

	rest := lx.src[lx.pos:]
	for _, op := range operators {
		if strings.HasPrefix(rest, op) {
			for range op {
				lx.advance()
			}

			return TokOp, op, nil
		}
	}

	return 0, "", lx.errorf(line, col, "unexpected character %q", r)
}
