package spec

import mlspec "github.com/nihei9/maleeni/spec"

type CompiledGrammar struct {
	Name                 string                `json:"name"`
	Class                string                `json:"class"`
	Terminals            []string              `json:"terminals"`
	NonTerminals         []string              `json:"non_terminals"`
	Firsts               map[string][]string   `json:"firsts"`
	Follows              map[string][]string   `json:"follows"`
	LexicalSpecification *LexicalSpecification `json:"lexical_specification"`
	LL1Table             *LL1Table             `json:"ll1_table"`
	SLR1Table            *SLR1Table            `json:"slr1_table"`
}

type LexicalSpecification struct {
	Lexer   string   `json:"lexer"`
	Maleeni *Maleeni `json:"maleeni"`
}

type Maleeni struct {
	Spec           *mlspec.CompiledLexSpec `json:"spec"`
	KindToTerminal []int                   `json:"kind_to_terminal"`
}

// LL1Table is a predictive parsing table flattened row-major by
// non-terminal. A cell holds a production number or 0 for error.
// In Productions, a terminal appears as its positive symbol number
// and a non-terminal as its negated symbol number.
type LL1Table struct {
	Cell             []int   `json:"cell"`
	Productions      [][]int `json:"productions"`
	ProductionLHS    []int   `json:"production_lhs"`
	StartSymbol      int     `json:"start_symbol"`
	TerminalCount    int     `json:"terminal_count"`
	NonTerminalCount int     `json:"non_terminal_count"`
	EOFSymbol        int     `json:"eof_symbol"`
	IsLL1            bool    `json:"is_ll1"`
}

// SLR1Table is a shift-reduce parsing table. In Action, a negative
// entry means shift to state -n, a positive entry means reduce by
// production n, and 0 means error. In GoTo, 0 means error.
type SLR1Table struct {
	Action                  []int `json:"action"`
	GoTo                    []int `json:"goto"`
	StateCount              int   `json:"state_count"`
	InitialState            int   `json:"initial_state"`
	StartProduction         int   `json:"start_production"`
	LHSSymbols              []int `json:"lhs_symbols"`
	AlternativeSymbolCounts []int `json:"alternative_symbol_counts"`
	TerminalCount           int   `json:"terminal_count"`
	NonTerminalCount        int   `json:"non_terminal_count"`
	EOFSymbol               int   `json:"eof_symbol"`
	IsSLR1                  bool  `json:"is_slr1"`
}
