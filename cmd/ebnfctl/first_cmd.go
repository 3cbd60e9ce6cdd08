package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	cmd := &cobra.Command{
		Use:     "first <file>",
		Short:   "Print the FIRST set of every nonterminal",
		Example: `  ebnfctl first grammar.ebnf`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    withRecover(runFirst),
	}
	rootCmd.AddCommand(cmd)
}

func runFirst(cmd *cobra.Command, args []string) error {
	a, err := runAnalysis(argOrEmpty(args))
	if err != nil {
		return err
	}

	nts := append([]string{}, a.Symbols.NonTerminals...)
	slices.Sort(nts)
	out := cmd.OutOrStdout()
	for _, nt := range nts {
		e := a.First.Of(nt)
		terms := e.Terminals()
		if e.Nullable {
			terms = append(terms, "ε")
		}
		fmt.Fprintf(out, "%s\t%s\n", nt, strings.Join(terms, " "))
	}
	return nil
}
