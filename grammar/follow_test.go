package grammar

import (
	"testing"
)

type follow struct {
	nonTerm string
	symbols []string
	eof     bool
}

func TestGenFollowSet(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		follow  []follow
	}{
		{
			caption: "a left-recursive expression grammar",
			src: `5
E -> E + T
E -> T
T -> T * F
T -> F
F -> id
`,
			follow: []follow{
				{nonTerm: "E'", symbols: []string{}, eof: true},
				{nonTerm: "E", symbols: []string{"+"}, eof: true},
				{nonTerm: "T", symbols: []string{"+", "*"}, eof: true},
				{nonTerm: "F", symbols: []string{"+", "*"}, eof: true},
			},
		},
		{
			caption: "an empty alternative propagates the FOLLOW of its LHS",
			src: `3
S -> A
A -> a A b
A -> e
`,
			follow: []follow{
				{nonTerm: "S'", symbols: []string{}, eof: true},
				{nonTerm: "S", symbols: []string{}, eof: true},
				{nonTerm: "A", symbols: []string{"b"}, eof: true},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			fst, gram := genActualFirst(t, tt.src)
			flw, err := genFollowSet(gram.productionSet, fst)
			if err != nil {
				t.Fatal(err)
			}

			for _, ttFollow := range tt.follow {
				sym, ok := gram.symbolTable.toSymbol(ttFollow.nonTerm)
				if !ok {
					t.Fatalf("a symbol was not found; symbol: %v", ttFollow.nonTerm)
				}

				actual, err := flw.find(sym)
				if err != nil {
					t.Fatal(err)
				}

				if actual.eof != ttFollow.eof {
					t.Errorf("unexpected eof attribute; non-terminal: %v, want: %v, got: %v", ttFollow.nonTerm, ttFollow.eof, actual.eof)
				}
				if len(actual.symbols) != len(ttFollow.symbols) {
					t.Fatalf("unexpected symbol count; non-terminal: %v, want: %v, got: %v", ttFollow.nonTerm, len(ttFollow.symbols), len(actual.symbols))
				}
				for _, text := range ttFollow.symbols {
					symID, ok := gram.symbolTable.toSymbol(text)
					if !ok {
						t.Fatalf("a symbol was not found; symbol: %v", text)
					}
					if _, ok := actual.symbols[symID]; !ok {
						t.Fatalf("a symbol was not found in FOLLOW(%v); symbol: %v", ttFollow.nonTerm, text)
					}
				}
			}
		})
	}
}
