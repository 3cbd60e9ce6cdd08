package grammar

import (
	"fmt"
	"strings"
)

// Print renders the automaton in plain-text form: one line per state
// listing its items comma-separated, then an "Edges:" line of its
// outgoing transitions, grounded on original_source/src/lr.rs's
// Display impl for LrGraph.
func (a *Automaton) Print() string {
	var b strings.Builder
	for _, state := range a.States {
		fmt.Fprintf(&b, "%d: ", state.Index)
		for _, it := range state.Items.Items() {
			b.WriteString(it.String(a.Rules))
			b.WriteString(", ")
		}
		b.WriteByte('\n')

		b.WriteString("Edges: ")
		for _, e := range state.Edges {
			fmt.Fprintf(&b, " %s -> %d", e.Symbol.Name(), e.To)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// PrintDOT renders the automaton as Graphviz DOT, grounded on
// original_source/src/lr.rs's print_dot: one boxed node per state
// labeled with its items, one labeled edge per transition.
func (a *Automaton) PrintDOT() string {
	var b strings.Builder
	b.WriteString("digraph {\n")
	for _, state := range a.States {
		fmt.Fprintf(&b, "%d[shape=box, label=\"I%d:", state.Index, state.Index)
		for _, it := range state.Items.Items() {
			b.WriteString(it.String(a.Rules))
			b.WriteString("\\n")
		}
		b.WriteString("\"]\n")
		for _, e := range state.Edges {
			fmt.Fprintf(&b, "%d -> %d [label=\"%s\"]\n", state.Index, e.To, e.Symbol.Name())
		}
	}
	b.WriteString("}\n")
	return b.String()
}
