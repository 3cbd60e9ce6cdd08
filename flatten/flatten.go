// Package flatten lowers an ast.File (EBNF with Optional/Star/Plus
// sugar) into pure BNF, represented as grammar.FlatRule values. It is
// grounded on original_source/src/flatten.rs's flatten_one/flatten_prod
// pipeline, generalized to also lower Plus (which the original leaves
// unhandled; it lowers directly to `x x*` instead).
package flatten

import (
	"fmt"

	"github.com/nihei9/ebnf-tools/ast"
	"github.com/nihei9/ebnf-tools/grammar"
)

// workItem is one alternative still awaiting elimination, queued under
// the name of the rule it belongs to.
type workItem struct {
	name string
	alt  *ast.Prod
}

type flattener struct {
	arena   *ast.Arena
	counter int
	queue   []workItem
}

func (fl *flattener) freshName(base, suffix string) string {
	n := fmt.Sprintf("%s_%s%d", base, suffix, fl.counter)
	fl.counter++
	return n
}

// eliminate rewrites prod so that it contains no Optional, Star, or
// Plus node, introducing auxiliary rules (queued on fl.queue) for
// each one encountered.
// Concat(Eps, r) and Concat(l, Eps) collapse away, matching
// flatten_one's simplification.
func (fl *flattener) eliminate(name string, prod *ast.Prod) *ast.Prod {
	switch prod.Kind {
	case ast.KindEps, ast.KindTerminal, ast.KindNonTerminal:
		return prod

	case ast.KindConcat:
		l := fl.eliminate(name, prod.Left)
		r := fl.eliminate(name, prod.Right)
		return simplifyConcat(fl.arena, l, r)

	case ast.KindOptional:
		inner := fl.eliminate(name, prod.Inner)
		auxName := fl.freshName(name, "opt")
		fl.queue = append(fl.queue, workItem{name: auxName, alt: inner})
		fl.queue = append(fl.queue, workItem{name: auxName, alt: fl.arena.Eps()})
		return fl.arena.NonTerminal(auxName)

	case ast.KindStar:
		inner := fl.eliminate(name, prod.Inner)
		auxName := fl.freshName(name, "star")
		ref := fl.arena.NonTerminal(auxName)
		fl.queue = append(fl.queue, workItem{name: auxName, alt: fl.arena.Concat(inner, ref)})
		fl.queue = append(fl.queue, workItem{name: auxName, alt: fl.arena.Eps()})
		return ref

	case ast.KindPlus:
		// x+ lowers directly to `x x*`.
		lowered := fl.arena.Concat(prod.Inner, fl.arena.Star(prod.Inner))
		return fl.eliminate(name, lowered)

	default:
		panic(fmt.Sprintf("flatten: unhandled Prod kind %s", prod.Kind))
	}
}

func simplifyConcat(arena *ast.Arena, l, r *ast.Prod) *ast.Prod {
	if l.Kind == ast.KindEps {
		return r
	}
	if r.Kind == ast.KindEps {
		return l
	}
	return arena.Concat(l, r)
}

// linearize walks a pure-BNF Prod tree (Concat/Terminal/NonTerminal/Eps
// only) into a flat right-hand side.
func linearize(prod *ast.Prod) []grammar.FlatSymbol {
	switch prod.Kind {
	case ast.KindEps:
		return []grammar.FlatSymbol{grammar.Eps()}
	case ast.KindTerminal:
		return []grammar.FlatSymbol{grammar.Terminal(prod.Text)}
	case ast.KindNonTerminal:
		return []grammar.FlatSymbol{grammar.NonTerminal(prod.Name)}
	case ast.KindConcat:
		return append(linearize(prod.Left), linearize(prod.Right)...)
	default:
		panic(fmt.Sprintf("flatten: linearize saw non-BNF kind %s", prod.Kind))
	}
}

// augmentedStartName is the name of the synthetic rule S' -> S that
// BuildLR0Automaton expects as rules[0].
func augmentedStartName(start string) string {
	return start + "'"
}

// Flatten lowers file into a flat rule list, augmented start rule
// first. Rules are emitted breadth-first: every original rule's
// alternatives first (so the start rule's rules come first, matching
// declaration order), then the auxiliary rules discovered while
// eliminating them, then the auxiliary rules their own eliminations
// discover, and so on, which keeps output order deterministic and
// tied to declaration order rather than map iteration.
func Flatten(file *ast.File) []*grammar.FlatRule {
	fl := &flattener{arena: ast.NewArena()}

	start := file.Start().Name
	out := []*grammar.FlatRule{
		{Name: augmentedStartName(start), Symbols: []grammar.FlatSymbol{grammar.NonTerminal(start)}},
	}

	for _, r := range file.Rules {
		for _, alt := range r.Prod {
			fl.queue = append(fl.queue, workItem{name: r.Name, alt: alt})
		}
	}

	for len(fl.queue) > 0 {
		item := fl.queue[0]
		fl.queue = fl.queue[1:]
		eliminated := fl.eliminate(item.name, item.alt)
		out = append(out, &grammar.FlatRule{Name: item.name, Symbols: linearize(eliminated)})
	}

	return out
}
