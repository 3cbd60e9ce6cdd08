// Package grammar implements four tightly coupled analysis stages: the
// flat BNF model, symbol classification, nullable/FIRST/FOLLOW, and the
// LR(0) automaton and tables. It is grounded on nihei9/vartan's own
// grammar package (first.go/follow.go/lr0.go/parsing_table.go),
// generalized from vartan's LALR(1)-oriented pipeline down to an
// LR(0)/SLR(1) scope.
package grammar

import (
	"strings"

	"golang.org/x/exp/slices"
)

// EOFSymbol is the reserved end-of-input terminal, used internally in
// FOLLOW sets and tables; Classify adds it to the terminals and
// ComputeFollow to FOLLOW(start), and it never appears in a FlatRule.
const EOFSymbol = "#"

// FlatSymbolKind is the tag of the flat BNF symbol sum type.
type FlatSymbolKind int

const (
	FlatTerminal FlatSymbolKind = iota
	FlatNonTerminal
	FlatEps
)

// FlatSymbol is a single symbol of a flattened right-hand side.
type FlatSymbol struct {
	Kind FlatSymbolKind
	Text string
}

// Name is the canonical textual form used in printing and item
// labeling: Text for a terminal or nonterminal, "_" for epsilon.
func (s FlatSymbol) Name() string {
	if s.Kind == FlatEps {
		return "_"
	}
	return s.Text
}

func (s FlatSymbol) IsTerminal() bool {
	return s.Kind == FlatTerminal
}

func (s FlatSymbol) IsNonTerminal() bool {
	return s.Kind == FlatNonTerminal
}

func (s FlatSymbol) IsEps() bool {
	return s.Kind == FlatEps
}

func Terminal(text string) FlatSymbol    { return FlatSymbol{Kind: FlatTerminal, Text: text} }
func NonTerminal(text string) FlatSymbol { return FlatSymbol{Kind: FlatNonTerminal, Text: text} }
func Eps() FlatSymbol                    { return FlatSymbol{Kind: FlatEps} }

// FlatRule is one BNF alternative: a name and its flat right-hand
// side. A FlatRule with a single Eps symbol denotes the empty
// production; no FlatRule mixes Eps with other symbols (the
// flattener enforces this: Eps never appears in a multi-symbol
// right-hand side).
type FlatRule struct {
	Name    string
	Symbols []FlatSymbol
}

func (r *FlatRule) IsEmpty() bool {
	return len(r.Symbols) == 1 && r.Symbols[0].IsEps()
}

func (r *FlatRule) String() string {
	var b strings.Builder
	b.WriteString(r.Name)
	b.WriteString(" ->")
	for _, s := range r.Symbols {
		b.WriteByte(' ')
		b.WriteString(s.Name())
	}
	return b.String()
}

// Less gives FlatRule a total order (by name, then by symbol
// sequence) so deduplication is deterministic.
func (r *FlatRule) Less(other *FlatRule) bool {
	if r.Name != other.Name {
		return r.Name < other.Name
	}
	for i := 0; i < len(r.Symbols) && i < len(other.Symbols); i++ {
		a, b := r.Symbols[i].Name(), other.Symbols[i].Name()
		if a != b {
			return a < b
		}
	}
	return len(r.Symbols) < len(other.Symbols)
}

// Dedup returns rules sorted and deduplicated by their total order.
func Dedup(rules []*FlatRule) []*FlatRule {
	sorted := make([]*FlatRule, len(rules))
	copy(sorted, rules)
	slices.SortStableFunc(sorted, func(a, b *FlatRule) bool {
		return a.Less(b)
	})

	out := sorted[:0:0]
	for i, r := range sorted {
		if i > 0 && !sorted[i-1].Less(r) && !r.Less(sorted[i-1]) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// RuleSet indexes a flat rule list for fast lookup by left-hand side.
type RuleSet struct {
	Rules  []*FlatRule
	byName map[string][]*FlatRule
}

func NewRuleSet(rules []*FlatRule) *RuleSet {
	rs := &RuleSet{
		Rules:  rules,
		byName: map[string][]*FlatRule{},
	}
	for _, r := range rules {
		rs.byName[r.Name] = append(rs.byName[r.Name], r)
	}
	return rs
}

func (rs *RuleSet) ByName(name string) []*FlatRule {
	return rs.byName[name]
}

// Symbols classifies every name occurring in rs into terminals and
// nonterminals: a name on the left of any rule is a
// nonterminal; any other name referenced from a right-hand side is a
// terminal (this also accepts bare-identifier terminals alongside
// quoted literals). EOFSymbol is always a terminal.
type Symbols struct {
	Start         string
	Terminals     []string
	NonTerminals  []string
	terminalSet   map[string]bool
	nonterminal   map[string]bool
}

func Classify(rs *RuleSet) *Symbols {
	s := &Symbols{
		terminalSet: map[string]bool{EOFSymbol: true},
		nonterminal: map[string]bool{},
	}
	if len(rs.Rules) > 0 {
		s.Start = rs.Rules[0].Name
	}
	for _, r := range rs.Rules {
		s.nonterminal[r.Name] = true
	}
	termSeen := map[string]bool{EOFSymbol: true}
	for _, r := range rs.Rules {
		for _, sym := range r.Symbols {
			if sym.IsEps() {
				continue
			}
			name := sym.Name()
			if s.nonterminal[name] {
				continue
			}
			if !termSeen[name] {
				termSeen[name] = true
				s.terminalSet[name] = true
			}
		}
	}

	for name := range s.nonterminal {
		s.NonTerminals = append(s.NonTerminals, name)
	}
	slices.Sort(s.NonTerminals)
	for name := range s.terminalSet {
		s.Terminals = append(s.Terminals, name)
	}
	slices.Sort(s.Terminals)

	return s
}

func (s *Symbols) IsTerminal(name string) bool {
	return s.terminalSet[name]
}

func (s *Symbols) IsNonTerminal(name string) bool {
	return s.nonterminal[name]
}
