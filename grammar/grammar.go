package grammar

import (
	"fmt"

	mlspec "github.com/nihei9/maleeni/spec"

	verr "github.com/gramclass/gramclass/error"
	"github.com/gramclass/gramclass/spec"
)

type Grammar struct {
	name                 string
	lexSpec              *mlspec.LexSpec
	lexKind2Sym          map[mlspec.LexKindName]symbol
	productionSet        *productionSet
	augmentedStartSymbol symbol
	startSymbol          symbol
	symbolTable          *symbolTable
}

func (g *Grammar) Name() string {
	return g.name
}

type GrammarBuilder struct {
	AST *spec.RootNode

	// Name labels the grammar in reports and compiled artifacts. When it
	// is empty, Build falls back to "grammar".
	Name string

	errs verr.SpecErrors
}

func (b *GrammarBuilder) Build() (*Grammar, error) {
	name := b.Name
	if name == "" {
		name = "grammar"
	}

	if len(b.AST.Productions) == 0 {
		return nil, verr.SpecErrors{
			&verr.SpecError{
				Cause: semErrNoProduction,
			},
		}
	}

	symTab := newSymbolTable()
	prods := newProductionSet()

	// The augmented start symbol S' wraps the first declared LHS so that
	// the shift-reduce automaton has a single accepting production.
	startProd := b.AST.Productions[0]
	augStartSym, err := symTab.registerStartSymbol(startProd.LHS + "'")
	if err != nil {
		return nil, err
	}
	startSym, err := symTab.registerNonTerminalSymbol(startProd.LHS)
	if err != nil {
		return nil, err
	}
	augProd, err := newProduction(augStartSym, []symbol{
		startSym,
	})
	if err != nil {
		return nil, err
	}
	prods.append(augProd)

	// Pre-register every LHS so that RHS resolution can tell an undefined
	// non-terminal from a not-yet-seen one.
	for _, prod := range b.AST.Productions {
		if _, err := symTab.registerNonTerminalSymbol(prod.LHS); err != nil {
			return nil, err
		}
	}

	for _, prod := range b.AST.Productions {
		lhsSym, ok := symTab.toSymbol(prod.LHS)
		if !ok {
			return nil, fmt.Errorf("symbol '%v' is undefined", prod.LHS)
		}

		rhsSyms := make([]symbol, 0, len(prod.RHS))
		resolved := true
		for _, text := range prod.RHS {
			var sym symbol
			if spec.IsNonTerminalText(text) {
				s, found := symTab.toSymbol(text)
				if !found || !s.isNonTerminal() {
					b.errs = append(b.errs, &verr.SpecError{
						Cause:  semErrUndefinedSym,
						Detail: text,
						Row:    prod.Row,
					})
					resolved = false
					continue
				}
				sym = s
			} else {
				s, err := symTab.registerTerminalSymbol(text)
				if err != nil {
					return nil, err
				}
				sym = s
			}
			rhsSyms = append(rhsSyms, sym)
		}
		if !resolved {
			continue
		}

		p, err := newProduction(lhsSym, rhsSyms)
		if err != nil {
			return nil, err
		}
		if added := prods.append(p); !added {
			b.errs = append(b.errs, &verr.SpecError{
				Cause:  semErrDuplicateProduction,
				Detail: prod.LHS,
				Row:    prod.Row,
			})
		}
	}
	if len(b.errs) > 0 {
		return nil, b.errs
	}

	lexSpec, lexKind2Sym := genLexSpec(symTab)

	return &Grammar{
		name:                 name,
		lexSpec:              lexSpec,
		lexKind2Sym:          lexKind2Sym,
		productionSet:        prods,
		augmentedStartSymbol: augStartSym,
		startSymbol:          startSym,
		symbolTable:          symTab,
	}, nil
}

// genLexSpec derives a lexical specification from the terminal alphabet.
// Terminal texts like '+' are not valid lexical kind names, so each
// terminal gets a generated kind t_<symbol number> and its text becomes
// an escaped literal pattern.
func genLexSpec(symTab *symbolTable) (*mlspec.LexSpec, map[mlspec.LexKindName]symbol) {
	var entries []*mlspec.LexEntry
	kind2Sym := map[mlspec.LexKindName]symbol{}
	for _, sym := range symTab.terminalSymbols() {
		if sym.isEOF() {
			continue
		}
		text, _ := symTab.toText(sym)
		kind := mlspec.LexKindName(fmt.Sprintf("t_%v", sym.num()))
		kind2Sym[kind] = sym
		entries = append(entries, &mlspec.LexEntry{
			Kind:    kind,
			Pattern: mlspec.LexPattern(spec.EscapePattern(text)),
		})
	}
	return &mlspec.LexSpec{
		Name:    "terminals",
		Entries: entries,
	}, kind2Sym
}
