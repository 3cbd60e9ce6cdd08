package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var automatonFlags = struct {
	dot *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "automaton <file>",
		Short:   "Print the LR(0) item-set automaton",
		Example: `  ebnfctl automaton grammar.ebnf --dot`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    withRecover(runAutomaton),
	}
	automatonFlags.dot = cmd.Flags().Bool("dot", false, "render as Graphviz DOT instead of plain text")
	rootCmd.AddCommand(cmd)
}

func runAutomaton(cmd *cobra.Command, args []string) error {
	a, err := runAnalysis(argOrEmpty(args))
	if err != nil {
		return err
	}

	auto := a.Automaton()
	if *automatonFlags.dot {
		fmt.Fprint(cmd.OutOrStdout(), auto.PrintDOT())
	} else {
		fmt.Fprint(cmd.OutOrStdout(), auto.Print())
	}
	return nil
}
