package ast

import "testing"

func TestTerminalPayload(t *testing.T) {
	tests := []struct {
		caption string
		text    string
		want    string
	}{
		{caption: "simple", text: "'a'", want: "a"},
		{caption: "multi-char", text: "'abc'", want: "abc"},
		{caption: "empty payload", text: "''", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			p := &Prod{Kind: KindTerminal, Text: tt.text}
			if got := p.TerminalPayload(); got != tt.want {
				t.Fatalf("TerminalPayload() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestArenaConstructorsSetKind(t *testing.T) {
	a := NewArena()
	tests := []struct {
		caption string
		prod    *Prod
		want    ProdKind
	}{
		{caption: "concat", prod: a.Concat(a.Eps(), a.Eps()), want: KindConcat},
		{caption: "optional", prod: a.Optional(a.Eps()), want: KindOptional},
		{caption: "star", prod: a.Star(a.Eps()), want: KindStar},
		{caption: "plus", prod: a.Plus(a.Eps()), want: KindPlus},
		{caption: "terminal", prod: a.Terminal("'x'"), want: KindTerminal},
		{caption: "nonterminal", prod: a.NonTerminal("n"), want: KindNonTerminal},
		{caption: "eps", prod: a.Eps(), want: KindEps},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			if tt.prod.Kind != tt.want {
				t.Fatalf("Kind = %v, want %v", tt.prod.Kind, tt.want)
			}
		})
	}
}

func TestFileLookupAndStart(t *testing.T) {
	a := NewArena()
	r1 := a.NewRule("s", []*Prod{a.NonTerminal("t")})
	r2 := a.NewRule("t", []*Prod{a.Terminal("'x'")})
	f := NewFile([]*Rule{r1, r2})

	if f.Start() != r1 {
		t.Fatalf("Start() did not return the first rule")
	}
	got, ok := f.Lookup("t")
	if !ok || got != r2 {
		t.Fatalf("Lookup(\"t\") = (%v, %v), want (%v, true)", got, ok, r2)
	}
	if _, ok := f.Lookup("missing"); ok {
		t.Fatalf("Lookup(\"missing\") found a rule, want none")
	}
}

func TestFileLookupKeepsFirstOnDuplicateName(t *testing.T) {
	a := NewArena()
	r1 := a.NewRule("s", []*Prod{a.Terminal("'a'")})
	r2 := a.NewRule("s", []*Prod{a.Terminal("'b'")})
	f := NewFile([]*Rule{r1, r2})

	got, _ := f.Lookup("s")
	if got != r1 {
		t.Fatalf("Lookup kept the second declaration, want the first")
	}
	if len(f.Rules) != 2 {
		t.Fatalf("NewFile dropped a declaration from Rules, got %d want 2", len(f.Rules))
	}
}
