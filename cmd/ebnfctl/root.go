package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ebnfctl",
	Short: "Analyze EBNF grammars: flatten, FIRST/FOLLOW, LR(0) automaton and tables",
	Long: `ebnfctl provides a small set of grammar analysis commands:
- Flattens EBNF sugar (optional/star/plus/group) into pure BNF.
- Computes nullable/FIRST/FOLLOW sets.
- Builds the LR(0) item-set automaton and LR(0)/SLR(1) parsing tables.
- Generates random sentences from a grammar.
- Runs an interactive REPL over a loaded grammar.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

// withRecover wraps a cobra RunE func so a panic inside the core
// turns into a reported error instead of crashing the CLI, mirroring
// cmd/vartan's runDescribe/runCompile pattern.
func withRecover(run func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (retErr error) {
		defer func() {
			if v := recover(); v != nil {
				if err, ok := v.(error); ok {
					retErr = err
				} else {
					retErr = fmt.Errorf("an unexpected error occurred: %v", v)
				}
			}
		}()
		return run(cmd, args)
	}
}
