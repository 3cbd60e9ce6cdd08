package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/nihei9/ebnf-tools/ast"
	"github.com/nihei9/ebnf-tools/astparser"
	"github.com/nihei9/ebnf-tools/flatten"
	"github.com/nihei9/ebnf-tools/grammar"
)

// analysis bundles the four tightly coupled analysis stages so
// each subcommand runs the same pipeline against a grammar file.
type analysis struct {
	File    *ast.File
	Rules   *grammar.RuleSet
	Symbols *grammar.Symbols
	First   *grammar.FirstSet
	Follow  *grammar.FollowSet
}

func readGrammarFile(path string) (string, error) {
	if path == "" || path == "-" {
		d, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("cannot read stdin: %w", err)
		}
		return string(d), nil
	}
	d, err := ioutil.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot open %s: %w", path, err)
	}
	return string(d), nil
}

func runAnalysis(path string) (*analysis, error) {
	src, err := readGrammarFile(path)
	if err != nil {
		return nil, err
	}

	file, err := astparser.Parse(src)
	if err != nil {
		return nil, err
	}
	if err := file.CheckDefined(); err != nil {
		return nil, err
	}

	// Not deduplicated here: BuildLR0Automaton expects rules[0] to be
	// the augmented start rule and ComputeFirst/ComputeFollow iterate
	// in declared order; grammar.Dedup's total order
	// would disturb both. Duplicate rules simply contribute duplicate,
	// harmless work during the fixed-point passes.
	flatRules := flatten.Flatten(file)
	rs := grammar.NewRuleSet(flatRules)
	syms := grammar.Classify(rs)
	first := grammar.ComputeFirst(rs, syms)
	follow := grammar.ComputeFollow(rs, syms, first)

	return &analysis{
		File:    file,
		Rules:   rs,
		Symbols: syms,
		First:   first,
		Follow:  follow,
	}, nil
}

func (a *analysis) Automaton() *grammar.Automaton {
	return grammar.BuildLR0Automaton(a.Rules.Rules)
}
