package grammar

import (
	"errors"
	"strings"
	"testing"

	verr "github.com/gramclass/gramclass/error"
	"github.com/gramclass/gramclass/spec"
)

func TestGrammarBuilder(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		semErr  *SemanticError
	}{
		{
			caption: "a grammar referencing only defined non-terminals",
			src: `3
S -> A
A -> a A b
A -> e
`,
		},
		{
			caption: "a non-terminal never defined on any LHS is an error",
			src: `1
S -> A
`,
			semErr: semErrUndefinedSym,
		},
		{
			caption: "the same alternative twice is an error",
			src: `2
S -> a
S -> a
`,
			semErr: semErrDuplicateProduction,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			ast, err := spec.Parse(strings.NewReader(tt.src))
			if err != nil {
				t.Fatal(err)
			}
			b := GrammarBuilder{
				AST: ast,
			}
			gram, err := b.Build()
			if tt.semErr != nil {
				if err == nil {
					t.Fatalf("an expected semantic error didn't occur; want: %v", tt.semErr)
				}
				specErrs, ok := err.(verr.SpecErrors)
				if !ok {
					t.Fatalf("unexpected error type; want: %T, got: %T (%v)", verr.SpecErrors{}, err, err)
				}
				found := false
				for _, specErr := range specErrs {
					if errors.Is(specErr, tt.semErr) {
						found = true
						break
					}
				}
				if !found {
					t.Fatalf("an expected semantic error didn't occur; want: %v, got: %v", tt.semErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if gram == nil {
				t.Fatal("Build returned nil without an error")
			}
		})
	}
}

func TestGrammarBuilder_symbols(t *testing.T) {
	src := `3
S -> A
A -> a A b
A -> e
`
	gram := genGrammar(t, src)

	if !gram.augmentedStartSymbol.isStart() {
		t.Fatal("the augmented start symbol must have the start attribute")
	}
	text, ok := gram.symbolTable.toText(gram.augmentedStartSymbol)
	if !ok || text != "S'" {
		t.Fatalf("unexpected augmented start symbol text; want: %v, got: %v", "S'", text)
	}

	// The augmented start production is always production number 1.
	prods, ok := gram.productionSet.findByLHS(gram.augmentedStartSymbol)
	if !ok || len(prods) != 1 {
		t.Fatal("the augmented start production was not found")
	}
	if prods[0].num != productionNumStart {
		t.Fatalf("unexpected production number; want: %v, got: %v", productionNumStart, prods[0].num)
	}

	for _, text := range []string{"a", "b"} {
		sym, ok := gram.symbolTable.toSymbol(text)
		if !ok || !sym.isTerminal() {
			t.Errorf("%v must be a terminal symbol", text)
		}
	}
	for _, text := range []string{"S", "A"} {
		sym, ok := gram.symbolTable.toSymbol(text)
		if !ok || !sym.isNonTerminal() {
			t.Errorf("%v must be a non-terminal symbol", text)
		}
	}
}

func TestGrammarBuilder_lexSpec(t *testing.T) {
	src := `3
S -> A
A -> a A b
A -> e
`
	gram := genGrammar(t, src)

	// maleeni rejects a lexical specification without a name.
	if gram.lexSpec.Name == "" {
		t.Fatal("the lexical specification must carry a name")
	}
	if len(gram.lexSpec.Entries) != 2 {
		t.Fatalf("unexpected lexical entry count; want: %v, got: %v", 2, len(gram.lexSpec.Entries))
	}
	for _, e := range gram.lexSpec.Entries {
		sym, ok := gram.lexKind2Sym[e.Kind]
		if !ok {
			t.Fatalf("a lexical kind has no terminal symbol: %v", e.Kind)
		}
		if !sym.isTerminal() || sym.isEOF() {
			t.Errorf("a lexical kind must map to a user terminal; kind: %v, symbol: %v", e.Kind, sym)
		}
	}
}
