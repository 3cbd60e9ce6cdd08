package grammar

import (
	"reflect"
	"sort"
	"testing"
)

// expr -> expr '+' term | term
// term -> term '*' factor | factor
// factor -> '(' expr ')' | id
func exprGrammar() *RuleSet {
	return NewRuleSet([]*FlatRule{
		{Name: "expr", Symbols: []FlatSymbol{NonTerminal("expr"), Terminal("+"), NonTerminal("term")}},
		{Name: "expr", Symbols: []FlatSymbol{NonTerminal("term")}},
		{Name: "term", Symbols: []FlatSymbol{NonTerminal("term"), Terminal("*"), NonTerminal("factor")}},
		{Name: "term", Symbols: []FlatSymbol{NonTerminal("factor")}},
		{Name: "factor", Symbols: []FlatSymbol{Terminal("("), NonTerminal("expr"), Terminal(")")}},
		{Name: "factor", Symbols: []FlatSymbol{Terminal("id")}},
	})
}

func TestComputeFirst(t *testing.T) {
	rs := exprGrammar()
	syms := Classify(rs)
	first := ComputeFirst(rs, syms)

	tests := []struct {
		caption  string
		nt       string
		expected []string
	}{
		{caption: "expr", nt: "expr", expected: []string{"(", "id"}},
		{caption: "term", nt: "term", expected: []string{"(", "id"}},
		{caption: "factor", nt: "factor", expected: []string{"(", "id"}},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			got := first.Of(tt.nt).Terminals()
			sort.Strings(got)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Fatalf("FIRST(%s) = %v, want %v", tt.nt, got, tt.expected)
			}
			if first.Of(tt.nt).Nullable {
				t.Fatalf("FIRST(%s).Nullable = true, want false", tt.nt)
			}
		})
	}
}

func TestComputeFirstNullable(t *testing.T) {
	rs := NewRuleSet([]*FlatRule{
		{Name: "s", Symbols: []FlatSymbol{NonTerminal("a"), Terminal("x")}},
		{Name: "a", Symbols: []FlatSymbol{Terminal("y")}},
		{Name: "a", Symbols: []FlatSymbol{Eps()}},
	})
	syms := Classify(rs)
	first := ComputeFirst(rs, syms)

	a := first.Of("a")
	if !a.Nullable {
		t.Fatalf("FIRST(a).Nullable = false, want true")
	}
	if !a.Contains("y") {
		t.Fatalf("FIRST(a) missing y")
	}

	s := first.Of("s")
	if s.Nullable {
		t.Fatalf("FIRST(s).Nullable = true, want false")
	}
	want := []string{"x", "y"}
	got := s.Terminals()
	sort.Strings(got)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FIRST(s) = %v, want %v", got, want)
	}
}

func TestFirstOfSequenceEmpty(t *testing.T) {
	fs := &FirstSet{entries: map[string]*FirstEntry{}}
	e := fs.OfSequence(nil)
	if !e.Nullable {
		t.Fatalf("OfSequence(nil).Nullable = false, want true")
	}
	if len(e.Terminals()) != 0 {
		t.Fatalf("OfSequence(nil) terminals = %v, want empty", e.Terminals())
	}
}
