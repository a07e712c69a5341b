package grammar

import (
	"strings"
	"testing"

	"github.com/gramclass/gramclass/spec"
)

func TestLL1TableBuilder(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		// cells maps "<non-terminal> <terminal>" to the production number
		// expected in that cell.
		cells         map[string]productionNum
		conflictCount int
	}{
		{
			caption: "a conflict-free grammar fills each cell at most once",
			src: `3
S -> A
A -> a A b
A -> e
`,
			cells: map[string]productionNum{
				"S a": 2, // S -> A
				"S $": 2, // S -> A via the empty alternative of A
				"A a": 3, // A -> a A b
				"A b": 4, // A -> e
				"A $": 4,
			},
		},
		{
			caption: "two alternatives with a shared leading terminal collide",
			src: `3
S -> i E t S
S -> i E t S e S
E -> b
`,
			cells: map[string]productionNum{
				"S i": 2, // the production declared first wins the cell
				"E b": 4,
			},
			conflictCount: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			gram, b, tab := genActualLL1Table(t, tt.src)

			if len(b.conflicts) != tt.conflictCount {
				t.Fatalf("unexpected conflict count; want: %v, got: %v", tt.conflictCount, len(b.conflicts))
			}

			for cell, want := range tt.cells {
				texts := strings.Fields(cell)
				nonTerm, ok := gram.symbolTable.toSymbol(texts[0])
				if !ok {
					t.Fatalf("a symbol was not found; symbol: %v", texts[0])
				}
				term, ok := gram.symbolTable.toSymbol(texts[1])
				if !ok {
					t.Fatalf("a symbol was not found; symbol: %v", texts[1])
				}
				got := tab.find(nonTerm.num(), term.num())
				if got != want {
					t.Errorf("unexpected cell value at (%v, %v); want: %v, got: %v", texts[0], texts[1], want, got)
				}
			}
		})
	}
}

func TestDetectLeftRecursion(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		flagged []string
	}{
		{
			caption: "a directly left-recursive non-terminal is flagged",
			src: `3
E -> E + T
E -> T
T -> id
`,
			flagged: []string{"E"},
		},
		{
			caption: "a grammar without left recursion is not flagged",
			src: `3
S -> A
A -> a A b
A -> e
`,
			flagged: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			gram := genGrammar(t, tt.src)
			syms := detectLeftRecursion(gram.productionSet)
			testFlaggedNonTerminals(t, gram, syms, tt.flagged)
		})
	}
}

func TestDetectLeftFactoring(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		flagged []string
	}{
		{
			caption: "alternatives sharing a leading terminal are flagged",
			src: `3
S -> i E t S
S -> i E t S e S
E -> b
`,
			flagged: []string{"S"},
		},
		{
			caption: "alternatives sharing a leading non-terminal are flagged",
			src: `4
S -> A a
S -> A b
A -> c
A -> e
`,
			flagged: []string{"S"},
		},
		{
			caption: "distinct leading symbols are not flagged",
			src: `3
S -> A
A -> a A b
A -> e
`,
			flagged: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			gram := genGrammar(t, tt.src)
			syms := detectLeftFactoring(gram.productionSet)
			testFlaggedNonTerminals(t, gram, syms, tt.flagged)
		})
	}
}

func genGrammar(t *testing.T, src string) *Grammar {
	t.Helper()

	ast, err := spec.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	b := GrammarBuilder{
		AST: ast,
	}
	gram, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	return gram
}

func genActualLL1Table(t *testing.T, src string) (*Grammar, *ll1TableBuilder, *predictiveTable) {
	t.Helper()

	gram := genGrammar(t, src)
	fst, err := genFirstSet(gram.productionSet)
	if err != nil {
		t.Fatal(err)
	}
	flw, err := genFollowSet(gram.productionSet, fst)
	if err != nil {
		t.Fatal(err)
	}
	b := &ll1TableBuilder{
		prods:        gram.productionSet,
		first:        fst,
		follow:       flw,
		termCount:    gram.symbolTable.termNum.Int(),
		nonTermCount: gram.symbolTable.nonTermNum.Int(),
	}
	tab, err := b.build()
	if err != nil {
		t.Fatal(err)
	}
	return gram, b, tab
}

func testFlaggedNonTerminals(t *testing.T, gram *Grammar, syms []symbol, want []string) {
	t.Helper()

	if len(syms) != len(want) {
		t.Fatalf("unexpected flagged non-terminal count; want: %v, got: %v", len(want), len(syms))
	}
	for i, text := range want {
		got, ok := gram.symbolTable.toText(syms[i])
		if !ok {
			t.Fatalf("a symbol text was not found: %v", syms[i])
		}
		if got != text {
			t.Errorf("unexpected flagged non-terminal; want: %v, got: %v", text, got)
		}
	}
}
