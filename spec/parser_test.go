package spec

import (
	"errors"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		prods   []*ProductionNode
		synErr  *SyntaxError
	}{
		{
			caption: "a grammar with terminals, non-terminals, and an empty alternative",
			src: `3
S -> A
A -> a A b
A -> e
`,
			prods: []*ProductionNode{
				{LHS: "S", RHS: []string{"A"}, Row: 2},
				{LHS: "A", RHS: []string{"a", "A", "b"}, Row: 3},
				{LHS: "A", RHS: nil, Row: 4},
			},
		},
		{
			caption: "blank lines are skipped and rows stay 1-based",
			src: `2

S -> a A

A -> b
`,
			prods: []*ProductionNode{
				{LHS: "S", RHS: []string{"a", "A"}, Row: 3},
				{LHS: "A", RHS: []string{"b"}, Row: 5},
			},
		},
		{
			caption: "'e' is an ordinary terminal when it is not alone",
			src: `2
S -> i E t S e S
E -> b
`,
			prods: []*ProductionNode{
				{LHS: "S", RHS: []string{"i", "E", "t", "S", "e", "S"}, Row: 2},
				{LHS: "E", RHS: []string{"b"}, Row: 3},
			},
		},
		{
			caption: "the first line must be a production count",
			src: `S -> a
`,
			synErr: synErrInvalidProductionCount,
		},
		{
			caption: "the production count must be positive",
			src: `0
`,
			synErr: synErrInvalidProductionCount,
		},
		{
			caption: "fewer productions than declared",
			src: `2
S -> a
`,
			synErr: synErrTooFewProductions,
		},
		{
			caption: "a production must contain '->'",
			src: `1
S a
`,
			synErr: synErrMissingArrow,
		},
		{
			caption: "the LHS must be a single uppercase letter",
			src: `1
ab -> a
`,
			synErr: synErrInvalidLHS,
		},
		{
			caption: "the RHS must not be empty",
			src: `1
S ->
`,
			synErr: synErrEmptyRHS,
		},
		{
			caption: "the end marker is reserved",
			src: `1
S -> a $
`,
			synErr: synErrEndMarkerReserved,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			root, err := Parse(strings.NewReader(tt.src))
			if tt.synErr != nil {
				if err == nil {
					t.Fatalf("an expected syntax error didn't occur; want: %v", tt.synErr)
				}
				if !errors.Is(err, tt.synErr) {
					t.Fatalf("unexpected error; want: %v, got: %v", tt.synErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if len(root.Productions) != len(tt.prods) {
				t.Fatalf("unexpected production count; want: %v, got: %v", len(tt.prods), len(root.Productions))
			}
			for i, want := range tt.prods {
				got := root.Productions[i]
				if got.LHS != want.LHS {
					t.Errorf("unexpected LHS; want: %v, got: %v", want.LHS, got.LHS)
				}
				if got.Row != want.Row {
					t.Errorf("unexpected row; want: %v, got: %v", want.Row, got.Row)
				}
				if len(got.RHS) != len(want.RHS) {
					t.Fatalf("unexpected RHS; want: %v, got: %v", want.RHS, got.RHS)
				}
				for j, sym := range want.RHS {
					if got.RHS[j] != sym {
						t.Errorf("unexpected RHS; want: %v, got: %v", want.RHS, got.RHS)
					}
				}
			}
		})
	}
}

func TestIsNonTerminalText(t *testing.T) {
	for _, text := range []string{"S", "A", "Z"} {
		if !IsNonTerminalText(text) {
			t.Errorf("%v must be a non-terminal", text)
		}
	}
	for _, text := range []string{"a", "id", "+", "S'", ""} {
		if IsNonTerminalText(text) {
			t.Errorf("%v must not be a non-terminal", text)
		}
	}
}
