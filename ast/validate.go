package ast

import "fmt"

// UndefinedReferenceError reports a NonTerminal atom that does not
// resolve to any Rule in the same File. This is a semantic error,
// only discoverable after parsing (at generation or flattening time),
// so this check is exposed as a function any of those passes can call
// rather than being folded into parsing.
type UndefinedReferenceError struct {
	Name string
}

func (e *UndefinedReferenceError) Error() string {
	return fmt.Sprintf("undefined nonterminal: %v", e.Name)
}

// CheckDefined walks every Prod reachable from f's rules and reports
// the first NonTerminal reference that does not name a Rule in f.
// Shared Prod subtrees are visited once.
func (f *File) CheckDefined() error {
	seen := map[*Prod]bool{}
	var walk func(p *Prod) error
	walk = func(p *Prod) error {
		if p == nil || seen[p] {
			return nil
		}
		seen[p] = true
		switch p.Kind {
		case KindConcat:
			if err := walk(p.Left); err != nil {
				return err
			}
			return walk(p.Right)
		case KindOptional, KindStar, KindPlus:
			return walk(p.Inner)
		case KindNonTerminal:
			if _, ok := f.Lookup(p.Name); !ok {
				return &UndefinedReferenceError{Name: p.Name}
			}
			return nil
		default:
			return nil
		}
	}
	for _, r := range f.Rules {
		for _, p := range r.Prod {
			if err := walk(p); err != nil {
				return err
			}
		}
	}
	return nil
}
