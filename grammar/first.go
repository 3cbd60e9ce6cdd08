package grammar

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// FirstEntry is FIRST(N) for one nonterminal: a deterministically
// ordered set of terminal names, plus whether N is nullable (Eps is a
// member of FIRST only in that sense).
type FirstEntry struct {
	terminals *treeset.Set
	Nullable  bool
}

func newFirstEntry() *FirstEntry {
	return &FirstEntry{terminals: treeset.NewWith(utils.StringComparator)}
}

// Terminals returns the member terminal names in sorted order.
func (e *FirstEntry) Terminals() []string {
	return stringValues(e.terminals)
}

func (e *FirstEntry) Contains(t string) bool {
	return e.terminals.Contains(t)
}

func (e *FirstEntry) add(t string) bool {
	if e.terminals.Contains(t) {
		return false
	}
	e.terminals.Add(t)
	return true
}

func (e *FirstEntry) addNullable() bool {
	if e.Nullable {
		return false
	}
	e.Nullable = true
	return true
}

func (e *FirstEntry) mergeTerminals(other *FirstEntry) bool {
	changed := false
	for _, t := range other.Terminals() {
		if e.add(t) {
			changed = true
		}
	}
	return changed
}

// FirstSet maps every nonterminal to its FirstEntry.
type FirstSet struct {
	entries map[string]*FirstEntry
}

func (fs *FirstSet) Of(nonterminal string) *FirstEntry {
	e, ok := fs.entries[nonterminal]
	if !ok {
		return newFirstEntry()
	}
	return e
}

// OfSequence computes FIRST of a symbol sequence (e.g. the tail of a
// production's RHS), following the usual FIRST(X1...Xk) rule:
// FIRST(X1) minus Eps, and so on while each prefix symbol is
// nullable; the sequence itself is nullable only if every symbol is.
func (fs *FirstSet) OfSequence(syms []FlatSymbol) *FirstEntry {
	out := newFirstEntry()
	for _, sym := range syms {
		if sym.IsEps() {
			continue
		}
		if sym.IsTerminal() {
			out.add(sym.Name())
			return out
		}
		e := fs.Of(sym.Name())
		out.mergeTerminals(e)
		if !e.Nullable {
			return out
		}
	}
	out.addNullable()
	return out
}

// ComputeFirst computes FIRST for every nonterminal in rs as a
// monotone fixed point over the lattice of terminal sets, iterating
// in declared rule order until a full pass makes no change, so the
// result is deterministic regardless of map iteration order.
func ComputeFirst(rs *RuleSet, syms *Symbols) *FirstSet {
	fs := &FirstSet{entries: map[string]*FirstEntry{}}
	for _, nt := range syms.NonTerminals {
		fs.entries[nt] = newFirstEntry()
	}

	for {
		changed := false
		for _, rule := range rs.Rules {
			acc := fs.entries[rule.Name]
			if genRuleFirst(fs, acc, rule) {
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return fs
}

func genRuleFirst(fs *FirstSet, acc *FirstEntry, rule *FlatRule) bool {
	if rule.IsEmpty() {
		return acc.addNullable()
	}

	changed := false
	for _, sym := range rule.Symbols {
		if sym.IsTerminal() {
			if acc.add(sym.Name()) {
				changed = true
			}
			return changed
		}

		e := fs.Of(sym.Name())
		if acc.mergeTerminals(e) {
			changed = true
		}
		if !e.Nullable {
			return changed
		}
	}
	if acc.addNullable() {
		changed = true
	}
	return changed
}

func stringValues(s *treeset.Set) []string {
	vals := s.Values()
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = v.(string)
	}
	return out
}
