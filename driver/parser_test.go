package driver

import (
	"strings"
	"testing"

	"github.com/gramclass/gramclass/grammar"
	gspec "github.com/gramclass/gramclass/spec"
)

func compileGrammar(t *testing.T, src string) *gspec.CompiledGrammar {
	t.Helper()

	ast, err := gspec.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	b := grammar.GrammarBuilder{
		AST: ast,
	}
	g, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	cg, _, err := grammar.Compile(g)
	if err != nil {
		t.Fatal(err)
	}
	return cg
}

func TestPredictiveParser_Parse(t *testing.T) {
	cg := compileGrammar(t, `3
S -> A
A -> a A b
A -> e
`)

	tests := []struct {
		caption  string
		src      string
		accepted bool
		// badText is the lexeme the syntax error must point at, when the
		// rejection is caused by one specific token.
		badText string
	}{
		{
			caption:  "a balanced input is accepted",
			src:      "aabb",
			accepted: true,
		},
		{
			caption:  "a single pair is accepted",
			src:      "ab",
			accepted: true,
		},
		{
			caption:  "the empty input is accepted via the empty alternative",
			src:      "",
			accepted: true,
		},
		{
			caption:  "an unbalanced input is rejected",
			src:      "aab",
			accepted: false,
		},
		{
			caption:  "an input starting with the closing terminal is rejected",
			src:      "ba",
			accepted: false,
		},
		{
			caption:  "a character outside the alphabet is rejected",
			src:      "ac",
			accepted: false,
			badText:  "c",
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			p, err := NewPredictiveParser(cg, strings.NewReader(tt.src))
			if err != nil {
				t.Fatal(err)
			}
			if err := p.Parse(); err != nil {
				t.Fatal(err)
			}
			if p.Accepted() != tt.accepted {
				t.Fatalf("unexpected verdict; want: %v, got: %v", tt.accepted, p.Accepted())
			}
			if !tt.accepted && p.SyntaxError() == nil {
				t.Fatal("a rejected input must carry a syntax error")
			}
			if tt.accepted && p.SyntaxError() != nil {
				t.Fatalf("an accepted input must not carry a syntax error; got: %v", p.SyntaxError().Message)
			}
			if tt.badText != "" {
				if text := p.SyntaxError().Token.Text; text != tt.badText {
					t.Fatalf("unexpected offending token text; want: %v, got: %v", tt.badText, text)
				}
			}
		})
	}
}

func TestShiftReduceParser_Parse(t *testing.T) {
	cg := compileGrammar(t, `5
E -> E + T
E -> T
T -> T * F
T -> F
F -> id
`)

	tests := []struct {
		caption  string
		src      string
		accepted bool
	}{
		{
			caption:  "a sum is accepted",
			src:      "id+id",
			accepted: true,
		},
		{
			caption:  "precedence levels chain without parentheses",
			src:      "id+id*id",
			accepted: true,
		},
		{
			caption:  "a single operand is accepted",
			src:      "id",
			accepted: true,
		},
		{
			caption:  "a trailing operator is rejected",
			src:      "id+",
			accepted: false,
		},
		{
			caption:  "a leading operator is rejected",
			src:      "+id",
			accepted: false,
		},
		{
			caption:  "the empty input is rejected",
			src:      "",
			accepted: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			p, err := NewShiftReduceParser(cg, strings.NewReader(tt.src))
			if err != nil {
				t.Fatal(err)
			}
			if err := p.Parse(); err != nil {
				t.Fatal(err)
			}
			if p.Accepted() != tt.accepted {
				t.Fatalf("unexpected verdict; want: %v, got: %v", tt.accepted, p.Accepted())
			}
		})
	}
}

func TestParsers_useOnlyTheirOwnTable(t *testing.T) {
	src := `3
S -> A
A -> a A b
A -> e
`

	// Each parser must work from an artifact that carries only its own
	// table, as an artifact loaded from JSON may.
	t.Run("predictive parser without the shift-reduce table", func(t *testing.T) {
		cg := compileGrammar(t, src)
		cg.SLR1Table = nil
		p, err := NewPredictiveParser(cg, strings.NewReader("aabb"))
		if err != nil {
			t.Fatal(err)
		}
		if err := p.Parse(); err != nil {
			t.Fatal(err)
		}
		if !p.Accepted() {
			t.Fatal("the input must be accepted")
		}
	})

	t.Run("shift-reduce parser without the predictive table", func(t *testing.T) {
		cg := compileGrammar(t, src)
		cg.LL1Table = nil
		p, err := NewShiftReduceParser(cg, strings.NewReader("aabb"))
		if err != nil {
			t.Fatal(err)
		}
		if err := p.Parse(); err != nil {
			t.Fatal(err)
		}
		if !p.Accepted() {
			t.Fatal("the input must be accepted")
		}
	})
}

func TestParsers_agreeOnASuitableGrammar(t *testing.T) {
	cg := compileGrammar(t, `3
S -> A
A -> a A b
A -> e
`)

	for _, src := range []string{"", "ab", "aabb", "aaabbb", "abab", "b"} {
		pp, err := NewPredictiveParser(cg, strings.NewReader(src))
		if err != nil {
			t.Fatal(err)
		}
		if err := pp.Parse(); err != nil {
			t.Fatal(err)
		}
		sp, err := NewShiftReduceParser(cg, strings.NewReader(src))
		if err != nil {
			t.Fatal(err)
		}
		if err := sp.Parse(); err != nil {
			t.Fatal(err)
		}
		if pp.Accepted() != sp.Accepted() {
			t.Errorf("the parsers disagree on %#v; predictive: %v, shift-reduce: %v", src, pp.Accepted(), sp.Accepted())
		}
	}
}
