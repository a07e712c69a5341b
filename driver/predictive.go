package driver

import (
	"fmt"
	"io"

	"github.com/gramclass/gramclass/spec"
)

// PredictiveParser recognizes an input string top-down by expanding
// non-terminals against the predictive table. The stack holds terminal
// symbol numbers as positive values and non-terminal symbol numbers as
// negative values.
type PredictiveParser struct {
	gram     *spec.CompiledGrammar
	toks     *tokenStream
	stack    []int
	accepted bool
	synErr   *SyntaxError
}

func NewPredictiveParser(gram *spec.CompiledGrammar, src io.Reader) (*PredictiveParser, error) {
	if gram.LL1Table == nil {
		return nil, fmt.Errorf("a compiled grammar has no predictive table")
	}
	toks, err := newTokenStream(gram, gram.LL1Table.EOFSymbol, src)
	if err != nil {
		return nil, err
	}

	return &PredictiveParser{
		gram: gram,
		toks: toks,
	}, nil
}

func (p *PredictiveParser) Parse() error {
	tab := p.gram.LL1Table
	p.stack = p.stack[:0]
	p.push(tab.EOFSymbol)
	p.push(tab.StartSymbol * -1)

	tok, err := p.toks.next()
	if err != nil {
		return err
	}

	for {
		if tok.Invalid {
			p.rejectAt(tok, "invalid token")
			return nil
		}

		top := p.top()
		if top > 0 {
			// Terminal on top. The end marker accepts only together with
			// the end of the input.
			if top == tab.EOFSymbol {
				if tok.EOF {
					p.accepted = true
					return nil
				}
				p.rejectAt(tok, "extra input after a complete derivation")
				return nil
			}
			if tok.TerminalID != top {
				p.rejectAt(tok, "unexpected token")
				return nil
			}
			p.pop()
			tok, err = p.toks.next()
			if err != nil {
				return err
			}
			continue
		}

		// Non-terminal on top. Expand it by the predicted production, in
		// reverse so its leftmost symbol lands on top of the stack.
		nonTerm := top * -1
		prodNum := tab.Cell[nonTerm*tab.TerminalCount+tok.TerminalID]
		if prodNum == 0 {
			p.rejectAt(tok, "no production is applicable")
			return nil
		}
		p.pop()
		rhs := tab.Productions[prodNum]
		for i := len(rhs) - 1; i >= 0; i-- {
			p.push(rhs[i])
		}
	}
}

// Accepted tells whether the last Parse recognized the input string.
func (p *PredictiveParser) Accepted() bool {
	return p.accepted
}

// SyntaxError returns where the last Parse rejected its input, or nil
// when the input was accepted.
func (p *PredictiveParser) SyntaxError() *SyntaxError {
	return p.synErr
}

func (p *PredictiveParser) rejectAt(tok *Token, message string) {
	p.accepted = false
	p.synErr = &SyntaxError{
		Row:     tok.Row,
		Col:     tok.Col,
		Message: message,
		Token:   tok,
	}
}

func (p *PredictiveParser) push(sym int) {
	p.stack = append(p.stack, sym)
}

func (p *PredictiveParser) pop() {
	p.stack = p.stack[:len(p.stack)-1]
}

func (p *PredictiveParser) top() int {
	return p.stack[len(p.stack)-1]
}
