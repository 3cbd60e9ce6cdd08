package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	cmd := &cobra.Command{
		Use:     "follow <file>",
		Short:   "Print the FOLLOW set of every nonterminal",
		Example: `  ebnfctl follow grammar.ebnf`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    withRecover(runFollow),
	}
	rootCmd.AddCommand(cmd)
}

func runFollow(cmd *cobra.Command, args []string) error {
	a, err := runAnalysis(argOrEmpty(args))
	if err != nil {
		return err
	}

	nts := append([]string{}, a.Symbols.NonTerminals...)
	slices.Sort(nts)
	out := cmd.OutOrStdout()
	for _, nt := range nts {
		terms := a.Follow.Of(nt).Terminals()
		fmt.Fprintf(out, "%s\t%s\n", nt, strings.Join(terms, " "))
	}
	return nil
}
