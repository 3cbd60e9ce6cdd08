package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nihei9/ebnf-tools/grammar"
)

var tableFlags = struct {
	lr0  *bool
	slr1 *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "table <file>",
		Short:   "Print the LR(0)/SLR(1) action/goto table",
		Example: `  ebnfctl table grammar.ebnf --slr1`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    withRecover(runTable),
	}
	tableFlags.lr0 = cmd.Flags().Bool("lr0", false, "build a plain LR(0) table (every reduce in every column)")
	tableFlags.slr1 = cmd.Flags().Bool("slr1", true, "build an SLR(1) table (reduces placed by FOLLOW)")
	rootCmd.AddCommand(cmd)
}

func runTable(cmd *cobra.Command, args []string) error {
	a, err := runAnalysis(argOrEmpty(args))
	if err != nil {
		return err
	}

	slr := *tableFlags.slr1 && !*tableFlags.lr0
	auto := a.Automaton()
	table := grammar.BuildTable(auto, a.Symbols, a.Follow, slr)

	out := cmd.OutOrStdout()
	fmt.Fprint(out, table.String())
	printConflictSummary(out, table)
	return nil
}

// printConflictSummary mirrors cmd/vartan/describe.go's conflict
// report: a count of shift/reduce and reduce/reduce cells.
func printConflictSummary(w io.Writer, table *grammar.Table) {
	sr, rr := 0, 0
	for _, state := range table.Automaton.States {
		for _, term := range table.Symbols.Terminals {
			actions := table.ActionsAt(state.Index, term)
			if len(actions) < 2 {
				continue
			}
			hasShift, reduces := false, 0
			for _, a := range actions {
				switch a.Kind {
				case grammar.ActionShift:
					hasShift = true
				case grammar.ActionReduce:
					reduces++
				}
			}
			if hasShift && reduces > 0 {
				sr++
			}
			if reduces > 1 {
				rr++
			}
		}
	}
	if sr == 0 && rr == 0 {
		fmt.Fprintf(w, "\nno conflicts\n")
		return
	}
	fmt.Fprintf(w, "\n%d shift/reduce conflicts, %d reduce/reduce conflicts\n", sr, rr)
}
