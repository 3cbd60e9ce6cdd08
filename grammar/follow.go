package grammar

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// FollowEntry is FOLLOW(N): a deterministically ordered set of
// terminal names, which may include EOFSymbol.
type FollowEntry struct {
	terminals *treeset.Set
}

func newFollowEntry() *FollowEntry {
	return &FollowEntry{terminals: treeset.NewWith(utils.StringComparator)}
}

func (e *FollowEntry) Terminals() []string {
	return stringValues(e.terminals)
}

func (e *FollowEntry) Contains(t string) bool {
	return e.terminals.Contains(t)
}

func (e *FollowEntry) add(t string) bool {
	if e.terminals.Contains(t) {
		return false
	}
	e.terminals.Add(t)
	return true
}

func (e *FollowEntry) merge(other *FollowEntry) bool {
	changed := false
	for _, t := range other.Terminals() {
		if e.add(t) {
			changed = true
		}
	}
	return changed
}

// FollowSet maps every nonterminal to its FollowEntry.
type FollowSet struct {
	entries map[string]*FollowEntry
}

func (fs *FollowSet) Of(nonterminal string) *FollowEntry {
	e, ok := fs.entries[nonterminal]
	if !ok {
		return newFollowEntry()
	}
	return e
}

// ComputeFollow computes FOLLOW for every nonterminal as a monotone
// fixed point. FOLLOW(start) always contains #, and
// for every rule A -> alpha N beta, FIRST(beta)\{Eps} is added to
// FOLLOW(N); if beta is nullable (or empty) FOLLOW(A) is added too.
func ComputeFollow(rs *RuleSet, syms *Symbols, first *FirstSet) *FollowSet {
	fw := &FollowSet{entries: map[string]*FollowEntry{}}
	for _, nt := range syms.NonTerminals {
		fw.entries[nt] = newFollowEntry()
	}
	if syms.Start != "" {
		fw.entries[syms.Start].add(EOFSymbol)
	}

	for {
		changed := false
		for _, rule := range rs.Rules {
			for i, sym := range rule.Symbols {
				if !sym.IsNonTerminal() {
					continue
				}
				acc := fw.Of(sym.Name())
				beta := rule.Symbols[i+1:]
				betaFirst := first.OfSequence(beta)
				if acc.merge(&FollowEntry{terminals: stringSetOf(betaFirst.Terminals())}) {
					changed = true
				}
				if betaFirst.Nullable {
					if acc.merge(fw.Of(rule.Name)) {
						changed = true
					}
				}
			}
		}
		if !changed {
			break
		}
	}

	return fw
}

func stringSetOf(values []string) *treeset.Set {
	s := treeset.NewWith(utils.StringComparator)
	for _, v := range values {
		s.Add(v)
	}
	return s
}
