package grammar

import (
	"reflect"
	"sort"
	"testing"
)

func TestComputeFollow(t *testing.T) {
	rs := exprGrammar()
	syms := Classify(rs)
	first := ComputeFirst(rs, syms)
	follow := ComputeFollow(rs, syms, first)

	tests := []struct {
		caption  string
		nt       string
		expected []string
	}{
		{caption: "expr", nt: "expr", expected: []string{")", "+", EOFSymbol}},
		{caption: "term", nt: "term", expected: []string{")", "*", "+", EOFSymbol}},
		{caption: "factor", nt: "factor", expected: []string{")", "*", "+", EOFSymbol}},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			got := follow.Of(tt.nt).Terminals()
			sort.Strings(got)
			want := append([]string{}, tt.expected...)
			sort.Strings(want)
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("FOLLOW(%s) = %v, want %v", tt.nt, got, want)
			}
		})
	}
}

func TestComputeFollowNullableTail(t *testing.T) {
	// s -> a b ; a -> 'x' ; b -> 'y' | eps
	rs := NewRuleSet([]*FlatRule{
		{Name: "s", Symbols: []FlatSymbol{NonTerminal("a"), NonTerminal("b")}},
		{Name: "a", Symbols: []FlatSymbol{Terminal("x")}},
		{Name: "b", Symbols: []FlatSymbol{Terminal("y")}},
		{Name: "b", Symbols: []FlatSymbol{Eps()}},
	})
	syms := Classify(rs)
	first := ComputeFirst(rs, syms)
	follow := ComputeFollow(rs, syms, first)

	got := follow.Of("a").Terminals()
	sort.Strings(got)
	want := []string{EOFSymbol, "y"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FOLLOW(a) = %v, want %v (b is nullable, so FOLLOW(s) must also flow into FOLLOW(a))", got, want)
	}
}
