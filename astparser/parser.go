// Package astparser turns grammar source text into an ast.File,
// reporting lexical and syntactic errors with source locations.
// nihei9/vartan backs this stage with the generated maleeni
// lexer/parser framework; since that requires a `maleeni compile`
// code-generation step this module cannot run, this package is a
// hand-written lexer plus recursive-descent parser instead (see
// DESIGN.md), matching the token-kind/row-tracking shape of vartan's
// spec/lexer.go and the error style of its
// spec/grammar/parser/syntax_error.go.
package astparser

import (
	"fmt"

	"github.com/nihei9/ebnf-tools/ast"
	"github.com/nihei9/ebnf-tools/ebnferr"
)

// Parse reads one grammar source and returns its AST. Lexical and
// syntactic errors are collected and returned together, sorted by
// source location; if any are present, the returned
// *ast.File is nil since downstream passes have no meaningful partial
// grammar to work with. A source containing no rule is reported as an
// error.
func Parse(src string) (*ast.File, error) {
	p := &parser{
		lex:   newLexer(src),
		arena: ast.NewArena(),
	}
	p.advance()

	var rules []*ast.Rule
	for p.cur.kind != tokenKindEOF {
		r := p.parseRule()
		if r != nil {
			rules = append(rules, r)
		}
		if !p.recovered {
			// Avoid an infinite loop if parseRule made no progress.
			p.advance()
		}
	}
	rules = append(rules, p.groupRules...)

	errs := append(ebnferr.SpecErrors{}, p.lex.errs...)
	errs = append(errs, p.errs...)
	if len(rules) == 0 && len(errs) == 0 {
		errs = append(errs, &ebnferr.SpecError{Cause: synErrExpectedID, Pos: p.cur.pos})
	}
	if len(errs) > 0 {
		return nil, errs.Sorted()
	}

	return ast.NewFile(rules), nil
}

type parser struct {
	lex   *lexer
	arena *ast.Arena

	cur  *token
	errs ebnferr.SpecErrors

	// recovered is set when parseRule consumed at least one token past
	// the point a syntax error occurred, so the caller's loop doesn't
	// also advance and skip two tokens.
	recovered bool

	// groupCounter and groupRules back the desugaring of a
	// parenthesized group with more than one alternative: the Prod
	// sum type has no Alt node, so "(" a "|" b ")" is
	// rewritten on the spot into a fresh auxiliary rule, the same way
	// the flattener invents auxiliaries for Optional/Star.
	groupCounter int
	groupRules   []*ast.Rule
}

func (p *parser) advance() {
	p.cur = p.lex.next()
	p.recovered = false
}

func (p *parser) fail(cause error) {
	p.errs = append(p.errs, &ebnferr.SpecError{Cause: cause, Pos: p.cur.pos})
}

// parseRule parses `Name ::= Alt1 | Alt2 | … ;`. On a syntax error, it
// records the error and skips tokens up to (and including) the next
// ';' or EOF so subsequent rules can still be parsed and reported on.
func (p *parser) parseRule() *ast.Rule {
	if p.cur.kind != tokenKindID {
		p.fail(synErrExpectedID)
		p.recoverToSemicolon()
		return nil
	}
	name := p.cur.text
	p.advance()

	if p.cur.kind != tokenKindDef {
		p.fail(synErrExpectedDef)
		p.recoverToSemicolon()
		return nil
	}
	p.advance()

	alts := p.parseAltList()

	if p.cur.kind != tokenKindSemicolon {
		p.fail(synErrExpectedSemicolon)
		p.recoverToSemicolon()
		return nil
	}
	p.advance()
	p.recovered = true

	if len(alts) == 0 {
		return nil
	}
	return p.arena.NewRule(name, alts)
}

func (p *parser) recoverToSemicolon() {
	for p.cur.kind != tokenKindSemicolon && p.cur.kind != tokenKindEOF {
		p.advance()
	}
	if p.cur.kind == tokenKindSemicolon {
		p.advance()
	}
	p.recovered = true
}

func (p *parser) parseAltList() []*ast.Prod {
	var alts []*ast.Prod
	if a := p.parseAlt(); a != nil {
		alts = append(alts, a)
	}
	for p.cur.kind == tokenKindOr {
		p.advance()
		if a := p.parseAlt(); a != nil {
			alts = append(alts, a)
		}
	}
	return alts
}

// parseAlt parses a whitespace-separated sequence of atoms and folds
// it into a left-associative Concat chain; associativity doesn't
// matter semantically, only linearization order does.
func (p *parser) parseAlt() *ast.Prod {
	var acc *ast.Prod
	n := 0
	for p.atAtomStart() {
		atom := p.parseAtom()
		n++
		if acc == nil {
			acc = atom
		} else {
			acc = p.arena.Concat(acc, atom)
		}
	}
	if n == 0 {
		p.fail(synErrEmptyAlt)
		return nil
	}
	return acc
}

func (p *parser) atAtomStart() bool {
	switch p.cur.kind {
	case tokenKindID, tokenKindTerminal, tokenKindLParen, tokenKindEps:
		return true
	default:
		return false
	}
}

func (p *parser) parseAtom() *ast.Prod {
	var base *ast.Prod
	switch p.cur.kind {
	case tokenKindID:
		base = p.arena.NonTerminal(p.cur.text)
		p.advance()
	case tokenKindTerminal:
		base = p.arena.Terminal(p.cur.text)
		p.advance()
	case tokenKindEps:
		base = p.arena.Eps()
		p.advance()
	case tokenKindLParen:
		p.advance()
		base = p.parseAltListAsGroup()
		if p.cur.kind != tokenKindRParen {
			p.fail(synErrExpectedRParen)
		} else {
			p.advance()
		}
	default:
		p.fail(synErrExpectedAtom)
		p.advance()
		base = p.arena.Eps()
	}

	for {
		switch p.cur.kind {
		case tokenKindStar:
			base = p.arena.Star(base)
			p.advance()
		case tokenKindPlus:
			base = p.arena.Plus(base)
			p.advance()
		case tokenKindQuestion:
			base = p.arena.Optional(base)
			p.advance()
		default:
			return base
		}
	}
}

// parseAltListAsGroup parses the alternatives inside "( … )". A single
// alternative is returned as-is; more than one is hoisted into a
// fresh auxiliary rule (Prod has no Alt node) and referenced by name.
func (p *parser) parseAltListAsGroup() *ast.Prod {
	alts := p.parseAltList()
	switch len(alts) {
	case 0:
		return p.arena.Eps()
	case 1:
		return alts[0]
	default:
		name := fmt.Sprintf("__group%d", p.groupCounter)
		p.groupCounter++
		p.groupRules = append(p.groupRules, p.arena.NewRule(name, alts))
		return p.arena.NonTerminal(name)
	}
}
