package grammar

import "sort"

// ll1Conflict records a predictive-table cell that two different
// productions claim. The production declared first stays in the table.
type ll1Conflict struct {
	nonTerm  symbol
	term     symbol // symbolEOF for the $ column
	prodNum1 productionNum
	prodNum2 productionNum
}

// predictiveTable maps (non-terminal, terminal) to at most one
// production. The table is flat and indexed by non-terminal
// number*terminalCount+terminal number; productionNumNil means the cell
// is a syntax error.
type predictiveTable struct {
	cell             []productionNum
	terminalCount    int
	nonTerminalCount int
}

func (t *predictiveTable) find(nonTerm symbolNum, term symbolNum) productionNum {
	return t.cell[nonTerm.Int()*t.terminalCount+term.Int()]
}

func (t *predictiveTable) write(nonTerm symbolNum, term symbolNum, prod productionNum) {
	t.cell[nonTerm.Int()*t.terminalCount+term.Int()] = prod
}

type ll1TableBuilder struct {
	prods        *productionSet
	first        *firstSet
	follow       *followSet
	termCount    int
	nonTermCount int

	conflicts []*ll1Conflict
}

// build fills the predictive table. For a production A → α, the
// production lands on every terminal in FIRST(α), and when α can derive
// the empty string, additionally on every terminal in FOLLOW(A) and on
// the $ column. Construction walks productions in declaration order, so
// an occupied cell always keeps the production declared first.
func (b *ll1TableBuilder) build() (*predictiveTable, error) {
	ptab := &predictiveTable{
		cell:             make([]productionNum, b.nonTermCount*b.termCount),
		terminalCount:    b.termCount,
		nonTerminalCount: b.nonTermCount,
	}

	for _, prod := range b.prods.all() {
		fst, err := b.first.find(prod, 0)
		if err != nil {
			return nil, err
		}
		for _, sym := range sortedSymbols(fst.symbols) {
			b.writeCell(ptab, prod.lhs, sym, prod.num)
		}
		if fst.empty {
			flw, err := b.follow.find(prod.lhs)
			if err != nil {
				return nil, err
			}
			for _, sym := range sortedSymbols(flw.symbols) {
				b.writeCell(ptab, prod.lhs, sym, prod.num)
			}
			if flw.eof {
				b.writeCell(ptab, prod.lhs, symbolEOF, prod.num)
			}
		}
	}

	return ptab, nil
}

func (b *ll1TableBuilder) writeCell(tab *predictiveTable, nonTerm symbol, term symbol, prod productionNum) {
	cur := tab.find(nonTerm.num(), term.num())
	if cur != productionNumNil {
		if cur == prod {
			return
		}
		b.conflicts = append(b.conflicts, &ll1Conflict{
			nonTerm:  nonTerm,
			term:     term,
			prodNum1: cur,
			prodNum2: prod,
		})
		return
	}
	tab.write(nonTerm.num(), term.num(), prod)
}

func sortedSymbols(set map[symbol]struct{}) []symbol {
	syms := make([]symbol, 0, len(set))
	for sym := range set {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool {
		return syms[i] < syms[j]
	})
	return syms
}

// detectLeftRecursion reports the non-terminals having a directly
// left-recursive production A → A α. Indirect recursion through other
// non-terminals is not detected; it still surfaces as a table conflict.
func detectLeftRecursion(prods *productionSet) []symbol {
	seen := map[symbol]struct{}{}
	var syms []symbol
	for _, prod := range prods.all() {
		if prod.rhsLen == 0 || prod.rhs[0] != prod.lhs {
			continue
		}
		if _, ok := seen[prod.lhs]; ok {
			continue
		}
		seen[prod.lhs] = struct{}{}
		syms = append(syms, prod.lhs)
	}
	return syms
}

// detectLeftFactoring reports the non-terminals having two alternatives
// that start with the same symbol. The check compares leading symbols
// literally, not their FIRST sets.
func detectLeftFactoring(prods *productionSet) []symbol {
	leading := map[symbol]map[symbol]struct{}{}
	flagged := map[symbol]struct{}{}
	var syms []symbol
	for _, prod := range prods.all() {
		if prod.rhsLen == 0 {
			continue
		}
		heads, ok := leading[prod.lhs]
		if !ok {
			heads = map[symbol]struct{}{}
			leading[prod.lhs] = heads
		}
		if _, dup := heads[prod.rhs[0]]; dup {
			if _, ok := flagged[prod.lhs]; !ok {
				flagged[prod.lhs] = struct{}{}
				syms = append(syms, prod.lhs)
			}
			continue
		}
		heads[prod.rhs[0]] = struct{}{}
	}
	return syms
}
