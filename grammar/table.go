package grammar

import (
	"fmt"
	"strings"
)

// ActionKind tags one entry of an action-table cell.
type ActionKind int

const (
	ActionShift ActionKind = iota
	ActionReduce
	ActionAccept
)

// Action is a single action-table entry. Target is the destination
// state for a shift, or the rule index for a reduce; it is unused for
// accept.
type Action struct {
	Kind   ActionKind
	Target int
}

func (a Action) String() string {
	switch a.Kind {
	case ActionShift:
		return fmt.Sprintf("s%d", a.Target)
	case ActionReduce:
		return fmt.Sprintf("r%d", a.Target)
	case ActionAccept:
		return "acc"
	default:
		return "?"
	}
}

// Table is the LR(0)/SLR(1) parsing table built from an Automaton.
// A cell may hold more than one action: conflicts
// are preserved as a list, never silently resolved.
type Table struct {
	Automaton *Automaton
	Symbols   *Symbols
	SLR       bool

	// action[state][terminal] -> conflict-preserving action list.
	action []map[string][]Action
	// goTo[state][nonterminal] -> destination state.
	goTo []map[string]int
}

// BuildTable builds the action/goto tables for a. When slr is true,
// reduce actions for rule r are only placed under terminals in
// FOLLOW(lhs(r)) (SLR(1)); otherwise every reduce is placed under
// every terminal (LR(0)).
func BuildTable(a *Automaton, syms *Symbols, follow *FollowSet, slr bool) *Table {
	t := &Table{
		Automaton: a,
		Symbols:   syms,
		SLR:       slr,
		action:    make([]map[string][]Action, len(a.States)),
		goTo:      make([]map[string]int, len(a.States)),
	}

	for _, state := range a.States {
		acts := map[string][]Action{}
		gotos := map[string]int{}

		for _, e := range state.Edges {
			if e.Symbol.IsTerminal() {
				acts[e.Symbol.Name()] = append(acts[e.Symbol.Name()], Action{Kind: ActionShift, Target: e.To})
			} else {
				gotos[e.Symbol.Name()] = e.To
			}
		}

		for _, it := range state.Items.Items() {
			if !it.isCompleted(a.Rules) {
				continue
			}
			rule := it.rule(a.Rules)
			if it.RuleIndex == 0 {
				acts[EOFSymbol] = append(acts[EOFSymbol], Action{Kind: ActionAccept})
				continue
			}
			reduce := Action{Kind: ActionReduce, Target: it.RuleIndex}
			if slr {
				for _, term := range follow.Of(rule.Name).Terminals() {
					acts[term] = append(acts[term], reduce)
				}
			} else {
				for _, term := range syms.Terminals {
					acts[term] = append(acts[term], reduce)
				}
				acts[EOFSymbol] = append(acts[EOFSymbol], reduce)
			}
		}

		for term, list := range acts {
			acts[term] = dedupActions(list)
		}

		t.action[state.Index] = acts
		t.goTo[state.Index] = gotos
	}

	return t
}

func dedupActions(list []Action) []Action {
	out := list[:0:0]
	for _, a := range list {
		dup := false
		for _, o := range out {
			if o == a {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, a)
		}
	}
	return out
}

// ActionsAt returns the (possibly conflicting, possibly empty) action
// list for (state, terminal).
func (t *Table) ActionsAt(state int, terminal string) []Action {
	return t.action[state][terminal]
}

// GotoAt returns the destination state for (state, nonterminal), or
// -1 if there is none.
func (t *Table) GotoAt(state int, nonterminal string) int {
	if s, ok := t.goTo[state][nonterminal]; ok {
		return s
	}
	return -1
}

// HasConflicts reports whether any cell holds more than one action.
func (t *Table) HasConflicts() bool {
	for _, row := range t.action {
		for _, list := range row {
			if len(list) > 1 {
				return true
			}
		}
	}
	return false
}

// String renders the table as a tab-separated grid: header row
// "State" + sorted terminals + sorted nonterminals, one row per
// state, cells joined by "/" for conflicts.
func (t *Table) String() string {
	var b strings.Builder

	cols := append([]string{}, t.Symbols.Terminals...)
	cols = append(cols, t.Symbols.NonTerminals...)

	b.WriteString("State")
	for _, c := range cols {
		b.WriteByte('\t')
		b.WriteString(c)
	}
	b.WriteByte('\n')

	for _, state := range t.Automaton.States {
		fmt.Fprintf(&b, "%d", state.Index)
		for _, term := range t.Symbols.Terminals {
			b.WriteByte('\t')
			b.WriteString(formatActions(t.action[state.Index][term]))
		}
		for _, nt := range t.Symbols.NonTerminals {
			b.WriteByte('\t')
			if s, ok := t.goTo[state.Index][nt]; ok {
				fmt.Fprintf(&b, "%d", s)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// formatActions joins a cell's actions in insertion order (shifts from
// edges, then reduces from completed items), never sorted: the order
// a reader sees a shift/reduce conflict in is the order it arose in.
func formatActions(list []Action) string {
	if len(list) == 0 {
		return ""
	}
	parts := make([]string, len(list))
	for i, a := range list {
		parts[i] = a.String()
	}
	return strings.Join(parts, "/")
}
