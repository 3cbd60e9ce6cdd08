// Package ast defines the grammar AST: a sum-typed production language
// over concatenation, alternation (represented as multiple Rule
// alternatives), the EBNF postfix operators, terminals, nonterminals,
// and epsilon.
//
// Nodes are owned by an Arena and never mutated after construction;
// a Prod subtree may be referenced from more than one parent, so
// callers must treat every node as immutable once built.
package ast

// ProdKind is the tag of the Prod sum type.
type ProdKind int

const (
	KindConcat ProdKind = iota
	KindOptional
	KindStar
	KindPlus
	KindTerminal
	KindNonTerminal
	KindEps
)

func (k ProdKind) String() string {
	switch k {
	case KindConcat:
		return "Concat"
	case KindOptional:
		return "Optional"
	case KindStar:
		return "Star"
	case KindPlus:
		return "Plus"
	case KindTerminal:
		return "Terminal"
	case KindNonTerminal:
		return "NonTerminal"
	case KindEps:
		return "Eps"
	default:
		return "?"
	}
}

// Prod is a node of the production tree. Only the fields relevant to
// Kind are meaningful:
//
//	Concat:      Left, Right
//	Optional:    Inner
//	Star:        Inner
//	Plus:        Inner
//	Terminal:    Text (includes the surrounding quotes)
//	NonTerminal: Name
//	Eps:         (none)
type Prod struct {
	Kind  ProdKind
	Left  *Prod
	Right *Prod
	Inner *Prod
	Text  string
	Name  string
}

// TerminalPayload strips the surrounding quotes from a Terminal's Text.
func (p *Prod) TerminalPayload() string {
	if len(p.Text) < 2 {
		return ""
	}
	return p.Text[1 : len(p.Text)-1]
}

// Rule is a nonterminal definition: a name and its non-empty ordered
// list of alternatives.
type Rule struct {
	Name string
	Prod []*Prod
}

// File is the ordered sequence of rules produced by parsing one
// grammar source. The first entry is the start rule.
type File struct {
	Rules   []*Rule
	byName  map[string]*Rule
}

// NewFile builds a File from rules in declaration order and indexes
// them by name. Duplicate rule names keep only the first declaration
// in the index but all declarations remain in Rules.
func NewFile(rules []*Rule) *File {
	f := &File{
		Rules:  rules,
		byName: make(map[string]*Rule, len(rules)),
	}
	for _, r := range rules {
		if _, ok := f.byName[r.Name]; !ok {
			f.byName[r.Name] = r
		}
	}
	return f
}

// Start returns the start rule, i.e. Rules[0]. It panics if the file
// has no rules; NewFile is never called with an empty grammar by the
// reader, since the grammar syntax requires at least one rule.
func (f *File) Start() *Rule {
	return f.Rules[0]
}

// Lookup resolves a nonterminal name to its Rule.
func (f *File) Lookup(name string) (*Rule, bool) {
	r, ok := f.byName[name]
	return r, ok
}

// Arena owns every Prod and Rule node built while parsing one
// grammar; the File itself is built separately by NewFile. Children are non-owning references with a lifetime bounded
// by the Arena; nothing under an Arena outlives the analysis run that
// created it by convention, though Go's GC does not enforce this.
type Arena struct {
	prods []*Prod
	rules []*Rule
}

func NewArena() *Arena {
	return &Arena{}
}

func (a *Arena) NewProd(p Prod) *Prod {
	n := new(Prod)
	*n = p
	a.prods = append(a.prods, n)
	return n
}

func (a *Arena) NewRule(name string, prod []*Prod) *Rule {
	r := &Rule{Name: name, Prod: prod}
	a.rules = append(a.rules, r)
	return r
}

func (a *Arena) Concat(l, r *Prod) *Prod {
	return a.NewProd(Prod{Kind: KindConcat, Left: l, Right: r})
}

func (a *Arena) Optional(inner *Prod) *Prod {
	return a.NewProd(Prod{Kind: KindOptional, Inner: inner})
}

func (a *Arena) Star(inner *Prod) *Prod {
	return a.NewProd(Prod{Kind: KindStar, Inner: inner})
}

func (a *Arena) Plus(inner *Prod) *Prod {
	return a.NewProd(Prod{Kind: KindPlus, Inner: inner})
}

func (a *Arena) Terminal(text string) *Prod {
	return a.NewProd(Prod{Kind: KindTerminal, Text: text})
}

func (a *Arena) NonTerminal(name string) *Prod {
	return a.NewProd(Prod{Kind: KindNonTerminal, Name: name})
}

func (a *Arena) Eps() *Prod {
	return a.NewProd(Prod{Kind: KindEps})
}
