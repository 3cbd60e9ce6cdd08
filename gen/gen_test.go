package gen

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/nihei9/ebnf-tools/ast"
)

func TestGenerateConcatAndTerminal(t *testing.T) {
	a := ast.NewArena()
	rule := a.NewRule("s", []*ast.Prod{a.Concat(a.Terminal("'a'"), a.Terminal("'b'"))})
	file := ast.NewFile([]*ast.Rule{rule})

	g := New(file, DefaultWeights(), rand.New(rand.NewSource(1)))
	out, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if out != "a b" {
		t.Fatalf("Generate() = %q, want %q", out, "a b")
	}
}

func TestGenerateUndefinedNonTerminal(t *testing.T) {
	a := ast.NewArena()
	rule := a.NewRule("s", []*ast.Prod{a.NonTerminal("missing")})
	file := ast.NewFile([]*ast.Rule{rule})

	g := New(file, DefaultWeights(), rand.New(rand.NewSource(1)))
	_, err := g.Generate()
	if err == nil {
		t.Fatalf("Generate() error = nil, want UndefinedNonTerminalError")
	}
	if _, ok := err.(*UndefinedNonTerminalError); !ok {
		t.Fatalf("Generate() error = %T, want *UndefinedNonTerminalError", err)
	}
}

func TestGenerateOptionalNeverContinuesAtZeroProbability(t *testing.T) {
	a := ast.NewArena()
	rule := a.NewRule("s", []*ast.Prod{a.Optional(a.Terminal("'x'"))})
	file := ast.NewFile([]*ast.Rule{rule})

	weights := Weights{Continuation: 0, MaxLevel: DefaultMaxLevel}
	g := New(file, weights, rand.New(rand.NewSource(1)))
	out, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if out != "" {
		t.Fatalf("Generate() = %q, want empty string (continuation probability 0)", out)
	}
}

func TestGenerateStarBoundedByMaxLevel(t *testing.T) {
	a := ast.NewArena()
	rule := a.NewRule("s", []*ast.Prod{a.Star(a.Terminal("'x'"))})
	file := ast.NewFile([]*ast.Rule{rule})

	weights := Weights{Continuation: 1, MaxLevel: 3}
	g := New(file, weights, rand.New(rand.NewSource(1)))
	out, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if n := len(strings.Fields(out)); n > weights.MaxLevel {
		t.Fatalf("generated %d occurrences, want at most max_level=%d", n, weights.MaxLevel)
	}
}

func TestLoadWeightsDefaultsWithoutFile(t *testing.T) {
	w, err := LoadWeights("")
	if err != nil {
		t.Fatalf("LoadWeights(\"\") error = %v", err)
	}
	if w != DefaultWeights() {
		t.Fatalf("LoadWeights(\"\") = %+v, want defaults %+v", w, DefaultWeights())
	}
}
