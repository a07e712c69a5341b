package grammar

import (
	"fmt"
	"io"
	"sort"
	"strings"

	mlcompiler "github.com/nihei9/maleeni/compiler"
	mlspec "github.com/nihei9/maleeni/spec"

	"github.com/gramclass/gramclass/spec"
)

// Compile analyzes a grammar and produces both its classification and a
// self-contained artifact holding the derived sets and the two parsing
// tables. The tables are always built, even for a grammar that supports
// neither technique, so that every conflict can be reported.
func Compile(gram *Grammar) (*spec.CompiledGrammar, *Classification, error) {
	terms, err := gram.symbolTable.terminalTexts()
	if err != nil {
		return nil, nil, err
	}
	nonTerms, err := gram.symbolTable.nonTerminalTexts()
	if err != nil {
		return nil, nil, err
	}

	first, err := genFirstSet(gram.productionSet)
	if err != nil {
		return nil, nil, err
	}
	follow, err := genFollowSet(gram.productionSet, first)
	if err != nil {
		return nil, nil, err
	}

	llb := &ll1TableBuilder{
		prods:        gram.productionSet,
		first:        first,
		follow:       follow,
		termCount:    len(terms),
		nonTermCount: len(nonTerms),
	}
	lltab, err := llb.build()
	if err != nil {
		return nil, nil, err
	}
	leftRec := detectLeftRecursion(gram.productionSet)
	leftFact := detectLeftFactoring(gram.productionSet)

	lr0, err := genLR0Automaton(gram.productionSet, gram.augmentedStartSymbol)
	if err != nil {
		return nil, nil, err
	}
	srb := &slrTableBuilder{
		automaton:    lr0,
		prods:        gram.productionSet,
		follow:       follow,
		termCount:    len(terms),
		nonTermCount: len(nonTerms),
	}
	srtab, err := srb.build()
	if err != nil {
		return nil, nil, err
	}

	isLL1 := len(llb.conflicts) == 0 && len(leftRec) == 0 && len(leftFact) == 0
	isSLR1 := len(srb.conflicts) == 0

	class, err := genClassification(gram, classOf(isLL1, isSLR1), llb.conflicts, srb.conflicts, leftRec, leftFact)
	if err != nil {
		return nil, nil, err
	}

	lexSpec, kind2Term, err := compileLexSpec(gram)
	if err != nil {
		return nil, nil, err
	}

	sets, err := renderSymbolSets(gram, first, follow)
	if err != nil {
		return nil, nil, err
	}

	prodCount := gram.productionSet.count()
	prodRHS := make([][]int, prodCount+1)
	prodLHS := make([]int, prodCount+1)
	altSymCounts := make([]int, prodCount+1)
	for _, p := range gram.productionSet.all() {
		rhs := make([]int, p.rhsLen)
		for i, sym := range p.rhs {
			if sym.isTerminal() {
				rhs[i] = sym.num().Int()
			} else {
				rhs[i] = sym.num().Int() * -1
			}
		}
		prodRHS[p.num] = rhs
		prodLHS[p.num] = p.lhs.num().Int()
		altSymCounts[p.num] = p.rhsLen
	}

	cell := make([]int, len(lltab.cell))
	for i, p := range lltab.cell {
		cell[i] = p.Int()
	}
	action := make([]int, len(srtab.actionTable))
	for i, e := range srtab.actionTable {
		action[i] = int(e)
	}
	goTo := make([]int, len(srtab.goToTable))
	for i, e := range srtab.goToTable {
		goTo[i] = int(e)
	}

	return &spec.CompiledGrammar{
		Name:         gram.name,
		Class:        class.Class.String(),
		Terminals:    terms,
		NonTerminals: nonTerms,
		Firsts:       sets.firsts,
		Follows:      sets.follows,
		LexicalSpecification: &spec.LexicalSpecification{
			Lexer: "maleeni",
			Maleeni: &spec.Maleeni{
				Spec:           lexSpec,
				KindToTerminal: kind2Term,
			},
		},
		LL1Table: &spec.LL1Table{
			Cell:             cell,
			Productions:      prodRHS,
			ProductionLHS:    prodLHS,
			StartSymbol:      gram.startSymbol.num().Int(),
			TerminalCount:    len(terms),
			NonTerminalCount: len(nonTerms),
			EOFSymbol:        symbolEOF.num().Int(),
			IsLL1:            isLL1,
		},
		SLR1Table: &spec.SLR1Table{
			Action:                  action,
			GoTo:                    goTo,
			StateCount:              srtab.stateCount,
			InitialState:            srtab.InitialState.Int(),
			StartProduction:         productionNumStart.Int(),
			LHSSymbols:              prodLHS,
			AlternativeSymbolCounts: altSymCounts,
			TerminalCount:           len(terms),
			NonTerminalCount:        len(nonTerms),
			EOFSymbol:               symbolEOF.num().Int(),
			IsSLR1:                  isSLR1,
		},
	}, class, nil
}

func genClassification(gram *Grammar, class Class, llConflicts []*ll1Conflict, srConflicts []conflict, leftRec []symbol, leftFact []symbol) (*Classification, error) {
	c := &Classification{
		Class: class,
	}

	for _, sym := range leftRec {
		text, ok := gram.symbolTable.toText(sym)
		if !ok {
			return nil, fmt.Errorf("a symbol text was not found: %v", sym)
		}
		c.LeftRecursive = append(c.LeftRecursive, text)
	}
	for _, sym := range leftFact {
		text, ok := gram.symbolTable.toText(sym)
		if !ok {
			return nil, fmt.Errorf("a symbol text was not found: %v", sym)
		}
		c.NeedsLeftFactoring = append(c.NeedsLeftFactoring, text)
	}

	for _, conf := range llConflicts {
		ntText, ok := gram.symbolTable.toText(conf.nonTerm)
		if !ok {
			return nil, fmt.Errorf("a symbol text was not found: %v", conf.nonTerm)
		}
		tText, ok := gram.symbolTable.toText(conf.term)
		if !ok {
			return nil, fmt.Errorf("a symbol text was not found: %v", conf.term)
		}
		c.LL1Conflicts = append(c.LL1Conflicts, &TableConflict{
			NonTerminal:         ntText,
			Terminal:            tText,
			KeptProduction:      conf.prodNum1.Int(),
			DiscardedProduction: conf.prodNum2.Int(),
		})
	}

	for _, conf := range srConflicts {
		switch conf := conf.(type) {
		case *shiftReduceConflict:
			text, ok := gram.symbolTable.toText(conf.sym)
			if !ok {
				return nil, fmt.Errorf("a symbol text was not found: %v", conf.sym)
			}
			c.SRConflicts = append(c.SRConflicts, &ShiftReduceConflict{
				State:      conf.state.Int(),
				Terminal:   text,
				NextState:  conf.nextState.Int(),
				Production: conf.prodNum.Int(),
			})
		case *reduceReduceConflict:
			text, ok := gram.symbolTable.toText(conf.sym)
			if !ok {
				return nil, fmt.Errorf("a symbol text was not found: %v", conf.sym)
			}
			c.RRConflicts = append(c.RRConflicts, &ReduceReduceConflict{
				State:       conf.state.Int(),
				Terminal:    text,
				Production1: conf.prodNum1.Int(),
				Production2: conf.prodNum2.Int(),
			})
		}
	}

	return c, nil
}

func compileLexSpec(gram *Grammar) (*mlspec.CompiledLexSpec, []int, error) {
	clexspec, err, cErrs := mlcompiler.Compile(gram.lexSpec, mlcompiler.CompressionLevel(mlcompiler.CompressionLevelMax))
	if err != nil {
		if len(cErrs) > 0 {
			var b strings.Builder
			writeCompileError(&b, cErrs[0])
			for _, cerr := range cErrs[1:] {
				fmt.Fprintf(&b, "\n")
				writeCompileError(&b, cerr)
			}
			return nil, nil, fmt.Errorf(b.String())
		}
		return nil, nil, err
	}

	kind2Term := make([]int, len(clexspec.KindNames))
	for i, k := range clexspec.KindNames {
		if k == mlspec.LexKindNameNil {
			kind2Term[mlspec.LexKindIDNil] = symbolNil.num().Int()
			continue
		}
		sym, ok := gram.lexKind2Sym[k]
		if !ok {
			return nil, nil, fmt.Errorf("terminal symbol '%v' was not found in a symbol table", k)
		}
		kind2Term[i] = sym.num().Int()
	}

	return clexspec, kind2Term, nil
}

func writeCompileError(w io.Writer, cErr *mlcompiler.CompileError) {
	if cErr.Fragment {
		fmt.Fprintf(w, "fragment ")
	}
	fmt.Fprintf(w, "%v: %v", cErr.Kind, cErr.Cause)
	if cErr.Detail != "" {
		fmt.Fprintf(w, ": %v", cErr.Detail)
	}
}

type renderedSets struct {
	firsts  map[string][]string
	follows map[string][]string
}

// renderSymbolSets converts the internal FIRST and FOLLOW sets into
// text keyed by non-terminal. The empty string shows up as 'e' in FIRST
// and the end marker as '$' in FOLLOW, matching the grammar notation.
// The augmented start symbol is an implementation detail and is left
// out.
func renderSymbolSets(gram *Grammar, first *firstSet, follow *followSet) (*renderedSets, error) {
	r := &renderedSets{
		firsts:  map[string][]string{},
		follows: map[string][]string{},
	}
	for _, sym := range gram.symbolTable.nonTerminalSymbols() {
		if sym.isStart() {
			continue
		}
		text, ok := gram.symbolTable.toText(sym)
		if !ok {
			return nil, fmt.Errorf("a symbol text was not found: %v", sym)
		}

		fst := first.findBySymbol(sym)
		if fst == nil {
			return nil, fmt.Errorf("an entry of FIRST was not found; symbol: %v", sym)
		}
		fstTexts, err := symbolTexts(gram, sortedSymbols(fst.symbols))
		if err != nil {
			return nil, err
		}
		if fst.empty {
			fstTexts = append(fstTexts, "e")
		}
		r.firsts[text] = fstTexts

		flw, err := follow.find(sym)
		if err != nil {
			return nil, err
		}
		flwTexts, err := symbolTexts(gram, sortedSymbols(flw.symbols))
		if err != nil {
			return nil, err
		}
		if flw.eof {
			flwTexts = append(flwTexts, symbolTextEOF)
		}
		r.follows[text] = flwTexts
	}
	return r, nil
}

func symbolTexts(gram *Grammar, syms []symbol) ([]string, error) {
	texts := make([]string, 0, len(syms))
	for _, sym := range syms {
		text, ok := gram.symbolTable.toText(sym)
		if !ok {
			return nil, fmt.Errorf("a symbol text was not found: %v", sym)
		}
		texts = append(texts, text)
	}
	sort.Strings(texts)
	return texts, nil
}
