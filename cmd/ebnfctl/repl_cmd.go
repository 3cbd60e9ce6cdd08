package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nihei9/ebnf-tools/repl"
)

func init() {
	cmd := &cobra.Command{
		Use:     "repl <file>",
		Short:   "Start an interactive shell over one loaded grammar",
		Example: `  ebnfctl repl grammar.ebnf`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    withRecover(runRepl),
	}
	rootCmd.AddCommand(cmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	a, err := runAnalysis(argOrEmpty(args))
	if err != nil {
		return err
	}
	session, err := repl.New(a.File, a.Rules, a.Symbols, a.First, a.Follow, os.Stdout)
	if err != nil {
		return err
	}
	return session.Run()
}
