// Package gen implements a randomized sentence generator, grounded on
// original_source/src/gen.rs's Generate trait impls for
// File/RuleDef/Prod. It also accepts an optional TOML weights file
// (github.com/BurntSushi/toml) that overrides the continuation
// probability and recursion budget without touching the hard-coded
// 0.6/max_level defaults.
package gen

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/nihei9/ebnf-tools/ast"
)

// DefaultContinuation is the probability an Optional/Star continues
// to emit one more occurrence of its inner production.
const DefaultContinuation = 0.6

// DefaultMaxLevel is the recursion level at which Optional and Star
// stop emitting further occurrences. Recursion through nonterminal
// references is not cut off at this level.
const DefaultMaxLevel = 50

// Weights overrides the generator's tunable parameters, loadable from
// a small TOML file:
//
//	continuation = 0.6
//	max_level = 50
type Weights struct {
	Continuation float64 `toml:"continuation"`
	MaxLevel     int     `toml:"max_level"`
}

// DefaultWeights returns the generator's hard-coded defaults.
func DefaultWeights() Weights {
	return Weights{Continuation: DefaultContinuation, MaxLevel: DefaultMaxLevel}
}

// UndefinedNonTerminalError reports a nonterminal reference with no
// matching rule, a fatal error.
type UndefinedNonTerminalError struct {
	Name string
}

func (e *UndefinedNonTerminalError) Error() string {
	return fmt.Sprintf("generate: undefined nonterminal %q", e.Name)
}

// Generator renders random sentences from an ast.File.
type Generator struct {
	file    *ast.File
	weights Weights
	rand    *rand.Rand
}

// New builds a Generator. A nil rng falls back to a source seeded
// with 1, so output stays reproducible (cmd/ebnfctl wires --seed
// through rand.New(rand.NewSource(seed))).
func New(file *ast.File, weights Weights, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Generator{file: file, weights: weights, rand: rng}
}

// Generate renders one sentence starting from the file's start rule.
func (g *Generator) Generate() (string, error) {
	return g.generateRule(g.file.Start(), 0)
}

func (g *Generator) generateRule(rule *ast.Rule, level int) (string, error) {
	alt := rule.Prod[g.rand.Intn(len(rule.Prod))]
	return g.generateProd(alt, level)
}

func (g *Generator) generateProd(prod *ast.Prod, level int) (string, error) {
	switch prod.Kind {
	case ast.KindEps:
		return "", nil

	case ast.KindTerminal:
		return prod.TerminalPayload(), nil

	case ast.KindNonTerminal:
		rule, ok := g.file.Lookup(prod.Name)
		if !ok {
			return "", &UndefinedNonTerminalError{Name: prod.Name}
		}
		return g.generateRule(rule, level+1)

	case ast.KindConcat:
		l, err := g.generateProd(prod.Left, level)
		if err != nil {
			return "", err
		}
		r, err := g.generateProd(prod.Right, level)
		if err != nil {
			return "", err
		}
		return joinFragments(l, r), nil

	case ast.KindOptional:
		if level >= g.weights.MaxLevel || g.rand.Float64() >= g.weights.Continuation {
			return "", nil
		}
		return g.generateProd(prod.Inner, level+1)

	case ast.KindStar:
		var parts []string
		for level+len(parts) < g.weights.MaxLevel && g.rand.Float64() < g.weights.Continuation {
			s, err := g.generateProd(prod.Inner, level+1)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, " "), nil

	case ast.KindPlus:
		first, err := g.generateProd(prod.Inner, level+1)
		if err != nil {
			return "", err
		}
		rest, err := g.generateProd(&ast.Prod{Kind: ast.KindStar, Inner: prod.Inner}, level+1)
		if err != nil {
			return "", err
		}
		return joinFragments(first, rest), nil

	default:
		panic(fmt.Sprintf("gen: unhandled Prod kind %s", prod.Kind))
	}
}

func joinFragments(l, r string) string {
	if l == "" {
		return r
	}
	if r == "" {
		return l
	}
	return l + " " + r
}
