package driver

import (
	"fmt"
	"io"

	"github.com/gramclass/gramclass/spec"
)

// ShiftReduceParser recognizes an input string bottom-up by running the
// SLR(1) action/goto tables over a state stack.
type ShiftReduceParser struct {
	gram       *spec.CompiledGrammar
	toks       *tokenStream
	stateStack []int
	accepted   bool
	synErr     *SyntaxError
}

func NewShiftReduceParser(gram *spec.CompiledGrammar, src io.Reader) (*ShiftReduceParser, error) {
	if gram.SLR1Table == nil {
		return nil, fmt.Errorf("a compiled grammar has no shift-reduce table")
	}
	toks, err := newTokenStream(gram, gram.SLR1Table.EOFSymbol, src)
	if err != nil {
		return nil, err
	}

	return &ShiftReduceParser{
		gram: gram,
		toks: toks,
	}, nil
}

func (p *ShiftReduceParser) Parse() error {
	tab := p.gram.SLR1Table
	p.stateStack = p.stateStack[:0]
	p.push(tab.InitialState)

	tok, err := p.toks.next()
	if err != nil {
		return err
	}

	for {
		if tok.Invalid {
			p.rejectAt(tok, "invalid token")
			return nil
		}

		act := tab.Action[p.top()*tab.TerminalCount+tok.TerminalID]
		switch {
		case act < 0: // Shift
			p.push(act * -1)
			tok, err = p.toks.next()
			if err != nil {
				return err
			}
		case act > 0: // Reduce
			prodNum := act
			if prodNum == tab.StartProduction {
				p.accepted = true
				return nil
			}
			p.popN(tab.AlternativeSymbolCounts[prodNum])
			lhs := tab.LHSSymbols[prodNum]
			nextState := tab.GoTo[p.top()*tab.NonTerminalCount+lhs]
			if nextState == 0 {
				p.rejectAt(tok, "no goto transition after a reduction")
				return nil
			}
			p.push(nextState)
		default: // Error
			p.rejectAt(tok, "unexpected token")
			return nil
		}
	}
}

// Accepted tells whether the last Parse recognized the input string.
func (p *ShiftReduceParser) Accepted() bool {
	return p.accepted
}

// SyntaxError returns where the last Parse rejected its input, or nil
// when the input was accepted.
func (p *ShiftReduceParser) SyntaxError() *SyntaxError {
	return p.synErr
}

func (p *ShiftReduceParser) rejectAt(tok *Token, message string) {
	p.accepted = false
	p.synErr = &SyntaxError{
		Row:     tok.Row,
		Col:     tok.Col,
		Message: message,
		Token:   tok,
	}
}

func (p *ShiftReduceParser) push(state int) {
	p.stateStack = append(p.stateStack, state)
}

func (p *ShiftReduceParser) popN(n int) {
	p.stateStack = p.stateStack[:len(p.stateStack)-n]
}

func (p *ShiftReduceParser) top() int {
	return p.stateStack[len(p.stateStack)-1]
}
