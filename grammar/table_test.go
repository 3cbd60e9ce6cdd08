package grammar

import "testing"

func TestBuildTableSLR(t *testing.T) {
	rules := rightRecursiveGrammar()
	rs := NewRuleSet(rules)
	syms := Classify(rs)
	first := ComputeFirst(rs, syms)
	follow := ComputeFollow(rs, syms, first)

	a := BuildLR0Automaton(rules)
	table := BuildTable(a, syms, follow, true)

	acceptState := -1
	for _, state := range a.States {
		if len(table.ActionsAt(state.Index, EOFSymbol)) == 1 &&
			table.ActionsAt(state.Index, EOFSymbol)[0].Kind == ActionAccept {
			acceptState = state.Index
		}
	}
	if acceptState == -1 {
		t.Fatalf("no accept action found in any state")
	}

	if table.HasConflicts() {
		t.Fatalf("unambiguous grammar produced conflicts:\n%s", table.String())
	}
}

func TestBuildTableConflictPreserved(t *testing.T) {
	// A genuine reduce/reduce conflict: after 'a', both A -> a and
	// B -> a are completed and FOLLOW(A) = FOLLOW(B) = {#}:
	// S' -> S ; S -> A | B ; A -> 'a' ; B -> 'a'
	rules := []*FlatRule{
		{Name: "S'", Symbols: []FlatSymbol{NonTerminal("S")}},
		{Name: "S", Symbols: []FlatSymbol{NonTerminal("A")}},
		{Name: "S", Symbols: []FlatSymbol{NonTerminal("B")}},
		{Name: "A", Symbols: []FlatSymbol{Terminal("a")}},
		{Name: "B", Symbols: []FlatSymbol{Terminal("a")}},
	}
	rs := NewRuleSet(rules)
	syms := Classify(rs)
	first := ComputeFirst(rs, syms)
	follow := ComputeFollow(rs, syms, first)
	a := BuildLR0Automaton(rules)
	table := BuildTable(a, syms, follow, true)

	if !table.HasConflicts() {
		t.Fatalf("expected a reduce/reduce conflict between A -> a and B -> a, got none:\n%s", table.String())
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		caption string
		action  Action
		want    string
	}{
		{caption: "shift", action: Action{Kind: ActionShift, Target: 4}, want: "s4"},
		{caption: "reduce", action: Action{Kind: ActionReduce, Target: 2}, want: "r2"},
		{caption: "accept", action: Action{Kind: ActionAccept}, want: "acc"},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			if got := tt.action.String(); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}
