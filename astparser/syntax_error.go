package astparser

import "errors"

// Lexical and syntax errors, named the way nihei9/vartan's
// spec/grammar/parser/syntax_error.go names its sentinel errors.
var (
	synErrUnclosedTerminal = errors.New("unclosed terminal literal")
	synErrEmptyTerminal    = errors.New("a terminal literal must contain at least one character")
	synErrInvalidChar      = errors.New("unrecognized character")

	synErrExpectedID        = errors.New("expected a rule name")
	synErrExpectedDef       = errors.New("expected '::=' after a rule name")
	synErrExpectedSemicolon = errors.New("expected ';' at the end of a rule")
	synErrExpectedRParen    = errors.New("expected ')' to close a group")
	synErrExpectedAtom      = errors.New("expected an identifier, a terminal, '(', or '_'")
	synErrEmptyAlt          = errors.New("an alternative must contain at least one atom, or be '_'")
)
