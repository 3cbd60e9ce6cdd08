package astparser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nihei9/ebnf-tools/ebnferr"
)

type tokenKind string

const (
	tokenKindID        = tokenKind("id")
	tokenKindTerminal  = tokenKind("terminal")
	tokenKindDef       = tokenKind("::=")
	tokenKindOr        = tokenKind("|")
	tokenKindSemicolon = tokenKind(";")
	tokenKindLParen    = tokenKind("(")
	tokenKindRParen    = tokenKind(")")
	tokenKindStar      = tokenKind("*")
	tokenKindPlus      = tokenKind("+")
	tokenKindQuestion  = tokenKind("?")
	tokenKindEps       = tokenKind("_")
	tokenKindEOF       = tokenKind("eof")
	tokenKindInvalid   = tokenKind("invalid")
)

type token struct {
	kind tokenKind
	text string
	pos  ebnferr.Position
}

// lexer is a hand-written scanner for the grammar source syntax. It
// tracks row/column the way nihei9/vartan's spec/lexer.go tracks row,
// but does not depend on an external lexer-generator framework (see
// DESIGN.md).
type lexer struct {
	src    []rune
	pos    int
	row    int
	col    int
	errs   ebnferr.SpecErrors
}

func newLexer(src string) *lexer {
	return &lexer{
		src: []rune(src),
		row: 1,
		col: 1,
	}
}

func (l *lexer) here() ebnferr.Position {
	return ebnferr.Position{Row: l.row, Col: l.col}
}

func (l *lexer) peekRune() (rune, bool) {
	if l.pos >= len(l.src) {
		return 0, false
	}
	return l.src[l.pos], true
}

func (l *lexer) advance() (rune, bool) {
	r, ok := l.peekRune()
	if !ok {
		return 0, false
	}
	l.pos++
	if r == '\n' {
		l.row++
		l.col = 1
	} else {
		l.col++
	}
	return r, true
}

func (l *lexer) skipWSAndComments() {
	for {
		r, ok := l.peekRune()
		if !ok {
			return
		}
		if unicode.IsSpace(r) {
			l.advance()
			continue
		}
		if r == '/' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '/' {
			for {
				r, ok := l.peekRune()
				if !ok || r == '\n' {
					break
				}
				l.advance()
			}
			continue
		}
		return
	}
}

func isIDStart(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func isIDCont(r rune) bool {
	return isIDStart(r) || (r >= '0' && r <= '9') || r == '_'
}

// next returns the next token. It never fails: lexical errors are
// recorded via synErrInvalidChar/synErrUnclosedTerminal and reported
// as an Invalid token so the parser can keep scanning and collect
// further diagnostics, in keeping with a "collected, reporting
// continues" policy for reader errors.
func (l *lexer) next() *token {
	l.skipWSAndComments()

	pos := l.here()
	r, ok := l.peekRune()
	if !ok {
		return &token{kind: tokenKindEOF, pos: pos}
	}

	switch {
	case r == ':':
		return l.lexDef(pos)
	case r == '|':
		l.advance()
		return &token{kind: tokenKindOr, text: "|", pos: pos}
	case r == ';':
		l.advance()
		return &token{kind: tokenKindSemicolon, text: ";", pos: pos}
	case r == '(':
		l.advance()
		return &token{kind: tokenKindLParen, text: "(", pos: pos}
	case r == ')':
		l.advance()
		return &token{kind: tokenKindRParen, text: ")", pos: pos}
	case r == '*':
		l.advance()
		return &token{kind: tokenKindStar, text: "*", pos: pos}
	case r == '+':
		l.advance()
		return &token{kind: tokenKindPlus, text: "+", pos: pos}
	case r == '?':
		l.advance()
		return &token{kind: tokenKindQuestion, text: "?", pos: pos}
	case r == '\'':
		return l.lexTerminal(pos)
	case r == '_':
		l.advance()
		return &token{kind: tokenKindEps, text: "_", pos: pos}
	case isIDStart(r):
		return l.lexID(pos)
	default:
		l.advance()
		l.errs = append(l.errs, &ebnferr.SpecError{Cause: synErrInvalidChar, Pos: pos})
		return &token{kind: tokenKindInvalid, text: string(r), pos: pos}
	}
}

func (l *lexer) lexDef(pos ebnferr.Position) *token {
	l.advance()
	if r, ok := l.peekRune(); ok && r == ':' {
		l.advance()
		if r2, ok := l.peekRune(); ok && r2 == '=' {
			l.advance()
			return &token{kind: tokenKindDef, text: "::=", pos: pos}
		}
	}
	l.errs = append(l.errs, &ebnferr.SpecError{Cause: synErrInvalidChar, Pos: pos})
	return &token{kind: tokenKindInvalid, text: ":", pos: pos}
}

func (l *lexer) lexID(pos ebnferr.Position) *token {
	var b strings.Builder
	for {
		r, ok := l.peekRune()
		if !ok || !isIDCont(r) {
			break
		}
		b.WriteRune(r)
		l.advance()
	}
	text := b.String()
	if text == "_" {
		return &token{kind: tokenKindEps, text: text, pos: pos}
	}
	return &token{kind: tokenKindID, text: text, pos: pos}
}

func (l *lexer) lexTerminal(pos ebnferr.Position) *token {
	l.advance() // opening '
	var b strings.Builder
	b.WriteRune('\'')
	for {
		r, ok := l.peekRune()
		if !ok || r == '\n' {
			l.errs = append(l.errs, &ebnferr.SpecError{Cause: synErrUnclosedTerminal, Pos: pos})
			return &token{kind: tokenKindInvalid, text: b.String(), pos: pos}
		}
		if r == '\'' {
			l.advance()
			b.WriteRune('\'')
			break
		}
		b.WriteRune(r)
		l.advance()
	}
	text := b.String()
	if utf8.RuneCountInString(text) <= 2 {
		l.errs = append(l.errs, &ebnferr.SpecError{Cause: synErrEmptyTerminal, Pos: pos})
	}
	return &token{kind: tokenKindTerminal, text: text, pos: pos}
}
