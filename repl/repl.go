// Package repl is a readline-backed interactive shell that re-runs
// ebnfctl's analyses against one loaded grammar without re-invoking
// the binary, grounded on npillmayer-gorgo's
// terex/terexlang/trepl/repl.go REPL loop (Readline/EOF/dispatch
// shape), generalized from TeREx s-expression evaluation to this
// project's first/follow/table/generate commands.
package repl

import (
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/exp/slices"

	"github.com/nihei9/ebnf-tools/ast"
	"github.com/nihei9/ebnf-tools/gen"
	"github.com/nihei9/ebnf-tools/grammar"
)

// Session holds the one grammar loaded at startup plus its derived
// analyses, re-used across every command typed at the prompt.
type Session struct {
	File    *ast.File
	Rules   *grammar.RuleSet
	Symbols *grammar.Symbols
	First   *grammar.FirstSet
	Follow  *grammar.FollowSet

	out     io.Writer
	rl      *readline.Instance
	gen     *gen.Generator
	weights gen.Weights
}

// New builds a Session and its readline instance, auto-completing on
// the loaded grammar's rule names.
func New(file *ast.File, rs *grammar.RuleSet, syms *grammar.Symbols, first *grammar.FirstSet, follow *grammar.FollowSet, out io.Writer) (*Session, error) {
	names := append([]string{}, syms.NonTerminals...)
	slices.Sort(names)

	var completions []readline.PrefixCompleterInterface
	for _, cmd := range []string{"first", "follow", "table", "automaton", "generate", "help", "quit"} {
		var args []readline.PrefixCompleterInterface
		for _, n := range names {
			args = append(args, readline.PcItem(n))
		}
		if cmd == "first" || cmd == "follow" {
			completions = append(completions, readline.PcItem(cmd, args...))
		} else {
			completions = append(completions, readline.PcItem(cmd))
		}
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:       "ebnfctl> ",
		AutoComplete: readline.NewPrefixCompleter(completions...),
	})
	if err != nil {
		return nil, err
	}

	weights := gen.DefaultWeights()
	return &Session{
		File:    file,
		Rules:   rs,
		Symbols: syms,
		First:   first,
		Follow:  follow,
		out:     out,
		rl:      rl,
		gen:     gen.New(file, weights, rand.New(rand.NewSource(1))),
		weights: weights,
	}, nil
}

// Run drives the read-eval-print loop until EOF (ctrl-D) or "quit".
func (s *Session) Run() error {
	defer s.rl.Close()
	fmt.Fprintln(s.out, `ebnfctl repl. Commands: first <nt>, follow <nt>, table [--lr0], automaton [--dot], generate, help, quit`)
	for {
		line, err := s.rl.Readline()
		if err != nil { // io.EOF on ctrl-D
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		quit, err := s.Eval(line)
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			continue
		}
		if quit {
			return nil
		}
	}
}

// Eval dispatches one line to the matching analysis and prints its
// result; it reports quit=true on "quit"/"exit".
func (s *Session) Eval(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	cmd, rest := fields[0], fields[1:]

	switch cmd {
	case "quit", "exit":
		return true, nil

	case "help":
		fmt.Fprintln(s.out, `first <nt>       print FIRST(nt)
follow <nt>      print FOLLOW(nt)
table [--lr0]    print the action/goto table (SLR(1) unless --lr0)
automaton [--dot] print the LR(0) automaton
generate         generate one random sentence
quit             leave the repl`)
		return false, nil

	case "first":
		if len(rest) != 1 {
			return false, fmt.Errorf("usage: first <nonterminal>")
		}
		e := s.First.Of(rest[0])
		terms := e.Terminals()
		if e.Nullable {
			terms = append(terms, "ε")
		}
		fmt.Fprintln(s.out, strings.Join(terms, " "))
		return false, nil

	case "follow":
		if len(rest) != 1 {
			return false, fmt.Errorf("usage: follow <nonterminal>")
		}
		fmt.Fprintln(s.out, strings.Join(s.Follow.Of(rest[0]).Terminals(), " "))
		return false, nil

	case "automaton":
		auto := grammar.BuildLR0Automaton(s.Rules.Rules)
		if len(rest) == 1 && rest[0] == "--dot" {
			fmt.Fprint(s.out, auto.PrintDOT())
		} else {
			fmt.Fprint(s.out, auto.Print())
		}
		return false, nil

	case "table":
		slr := !(len(rest) == 1 && rest[0] == "--lr0")
		auto := grammar.BuildLR0Automaton(s.Rules.Rules)
		table := grammar.BuildTable(auto, s.Symbols, s.Follow, slr)
		fmt.Fprint(s.out, table.String())
		return false, nil

	case "generate":
		sentence, err := s.gen.Generate()
		if err != nil {
			return false, err
		}
		fmt.Fprintln(s.out, sentence)
		return false, nil

	default:
		return false, fmt.Errorf("unknown command %q (try \"help\")", cmd)
	}
}
