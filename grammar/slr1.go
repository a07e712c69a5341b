package grammar

import (
	"fmt"
	"sort"
)

// slrTableBuilder constructs an SLR(1) parsing table from an LR(0)
// automaton. A reduce action for a production A → α is placed on every
// terminal in FOLLOW(A). Conflicting cells keep the action written first
// and the conflict itself is recorded for reporting; no precedence or
// associativity resolution takes place.
type slrTableBuilder struct {
	automaton    *lr0Automaton
	prods        *productionSet
	follow       *followSet
	termCount    int
	nonTermCount int

	conflicts []conflict
}

func (b *slrTableBuilder) build() (*ParsingTable, error) {
	initialState := b.automaton.states[b.automaton.initialState]
	ptab := &ParsingTable{
		actionTable:      make([]actionEntry, len(b.automaton.states)*b.termCount),
		goToTable:        make([]goToEntry, len(b.automaton.states)*b.nonTermCount),
		stateCount:       len(b.automaton.states),
		terminalCount:    b.termCount,
		nonTerminalCount: b.nonTermCount,
		InitialState:     initialState.num,
	}

	for _, state := range b.sortedStates() {
		for sym, kID := range state.next {
			nextState := b.automaton.states[kID]
			if sym.isTerminal() {
				b.writeShiftAction(ptab, state.num, sym, nextState.num)
			} else {
				ptab.writeGoTo(state.num, sym, nextState.num)
			}
		}

		reducibles, err := b.sortedReducibles(state)
		if err != nil {
			return nil, err
		}
		for _, prod := range reducibles {
			flw, err := b.follow.find(prod.lhs)
			if err != nil {
				return nil, err
			}
			for sym := range flw.symbols {
				b.writeReduceAction(ptab, state.num, sym, prod.num)
			}
			if flw.eof {
				b.writeReduceAction(ptab, state.num, symbolEOF, prod.num)
			}
		}
	}

	return ptab, nil
}

// sortedStates orders states by number so that conflicts are always
// detected and recorded in the same order.
func (b *slrTableBuilder) sortedStates() []*lr0State {
	states := make([]*lr0State, 0, len(b.automaton.states))
	for _, state := range b.automaton.states {
		states = append(states, state)
	}
	sort.Slice(states, func(i, j int) bool {
		return states[i].num < states[j].num
	})
	return states
}

func (b *slrTableBuilder) sortedReducibles(state *lr0State) ([]*production, error) {
	prods := make([]*production, 0, len(state.reducible))
	for prodID := range state.reducible {
		prod, ok := b.prods.findByID(prodID)
		if !ok {
			return nil, fmt.Errorf("reducible production not found; state: %v, production: %v", state.num, prodID)
		}
		prods = append(prods, prod)
	}
	sort.Slice(prods, func(i, j int) bool {
		return prods[i].num < prods[j].num
	})
	return prods, nil
}

func (b *slrTableBuilder) writeShiftAction(tab *ParsingTable, state stateNum, sym symbol, nextState stateNum) {
	act := tab.readAction(state.Int(), sym.num().Int())
	if !act.isEmpty() {
		ty, _, p := act.describe()
		if ty == ActionTypeReduce {
			b.conflicts = append(b.conflicts, &shiftReduceConflict{
				state:     state,
				sym:       sym,
				nextState: nextState,
				prodNum:   p,
			})
			return
		}
	}
	tab.writeAction(state.Int(), sym.num().Int(), newShiftActionEntry(nextState))
}

func (b *slrTableBuilder) writeReduceAction(tab *ParsingTable, state stateNum, sym symbol, prod productionNum) {
	act := tab.readAction(state.Int(), sym.num().Int())
	if !act.isEmpty() {
		ty, s, p := act.describe()
		switch ty {
		case ActionTypeReduce:
			if p == prod {
				return
			}
			b.conflicts = append(b.conflicts, &reduceReduceConflict{
				state:    state,
				sym:      sym,
				prodNum1: p,
				prodNum2: prod,
			})
		case ActionTypeShift:
			b.conflicts = append(b.conflicts, &shiftReduceConflict{
				state:     state,
				sym:       sym,
				nextState: s,
				prodNum:   prod,
			})
		}
		return
	}
	tab.writeAction(state.Int(), sym.num().Int(), newReduceActionEntry(prod))
}
