package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "flatten <file>",
		Short:   "Print the grammar flattened into pure BNF",
		Example: `  ebnfctl flatten grammar.ebnf`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    withRecover(runFlatten),
	}
	rootCmd.AddCommand(cmd)
}

func runFlatten(cmd *cobra.Command, args []string) error {
	a, err := runAnalysis(argOrEmpty(args))
	if err != nil {
		return err
	}
	for _, r := range a.Rules.Rules {
		fmt.Fprintln(cmd.OutOrStdout(), r.String())
	}
	return nil
}

func argOrEmpty(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
