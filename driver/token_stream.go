package driver

import (
	"io"

	mldriver "github.com/nihei9/maleeni/driver"

	"github.com/gramclass/gramclass/spec"
)

// Token is one terminal of an input string, or the end-of-input mark.
type Token struct {
	// TerminalID is the terminal symbol number the parsing tables are
	// keyed by. It is meaningless when Invalid is true.
	TerminalID int

	Text string
	Row  int
	Col  int

	EOF     bool
	Invalid bool
}

type tokenStream struct {
	lex            *mldriver.Lexer
	kindToTerminal []int
	eofTerminal    int
}

func newTokenStream(g *spec.CompiledGrammar, eofTerminal int, src io.Reader) (*tokenStream, error) {
	lex, err := mldriver.NewLexer(mldriver.NewLexSpec(g.LexicalSpecification.Maleeni.Spec), src)
	if err != nil {
		return nil, err
	}

	return &tokenStream{
		lex:            lex,
		kindToTerminal: g.LexicalSpecification.Maleeni.KindToTerminal,
		eofTerminal:    eofTerminal,
	}, nil
}

func (s *tokenStream) next() (*Token, error) {
	tok, err := s.lex.Next()
	if err != nil {
		return nil, err
	}
	if tok.EOF {
		return &Token{
			TerminalID: s.eofTerminal,
			Row:        tok.Row,
			Col:        tok.Col,
			EOF:        true,
		}, nil
	}
	if tok.Invalid {
		return &Token{
			Text:    string(tok.Lexeme),
			Row:     tok.Row,
			Col:     tok.Col,
			Invalid: true,
		}, nil
	}
	return &Token{
		TerminalID: s.kindToTerminal[tok.KindID],
		Text:       string(tok.Lexeme),
		Row:        tok.Row,
		Col:        tok.Col,
	}, nil
}
