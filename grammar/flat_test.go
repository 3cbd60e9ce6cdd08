package grammar

import "testing"

func TestClassify(t *testing.T) {
	rs := exprGrammar()
	syms := Classify(rs)

	if syms.Start != "expr" {
		t.Fatalf("Start = %q, want expr", syms.Start)
	}
	for _, nt := range []string{"expr", "term", "factor"} {
		if !syms.IsNonTerminal(nt) {
			t.Fatalf("%q should be classified as a nonterminal", nt)
		}
	}
	for _, term := range []string{"+", "*", "(", ")", "id", EOFSymbol} {
		if !syms.IsTerminal(term) {
			t.Fatalf("%q should be classified as a terminal", term)
		}
	}
	if syms.IsTerminal("expr") {
		t.Fatalf("expr misclassified as a terminal")
	}
}

func TestDedupRemovesDuplicateRules(t *testing.T) {
	rules := []*FlatRule{
		{Name: "s", Symbols: []FlatSymbol{Terminal("a")}},
		{Name: "s", Symbols: []FlatSymbol{Terminal("b")}},
		{Name: "s", Symbols: []FlatSymbol{Terminal("a")}},
	}
	out := Dedup(rules)
	if len(out) != 2 {
		t.Fatalf("got %d rules after Dedup, want 2: %v", len(out), out)
	}
}

func TestFlatRuleIsEmpty(t *testing.T) {
	empty := &FlatRule{Name: "s", Symbols: []FlatSymbol{Eps()}}
	if !empty.IsEmpty() {
		t.Fatalf("IsEmpty() = false, want true")
	}
	nonEmpty := &FlatRule{Name: "s", Symbols: []FlatSymbol{Terminal("a")}}
	if nonEmpty.IsEmpty() {
		t.Fatalf("IsEmpty() = true, want false")
	}
}
