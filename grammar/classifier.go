package grammar

// Class tells which deterministic parsing techniques a grammar admits
// without conflict.
type Class int

const (
	ClassNeither Class = iota
	ClassLL1Only
	ClassSLR1Only
	ClassBoth
)

func (c Class) String() string {
	switch c {
	case ClassLL1Only:
		return "LL(1) only"
	case ClassSLR1Only:
		return "SLR(1) only"
	case ClassBoth:
		return "both"
	default:
		return "neither"
	}
}

func (c Class) IsLL1() bool {
	return c == ClassLL1Only || c == ClassBoth
}

func (c Class) IsSLR1() bool {
	return c == ClassSLR1Only || c == ClassBoth
}

func classOf(isLL1 bool, isSLR1 bool) Class {
	switch {
	case isLL1 && isSLR1:
		return ClassBoth
	case isLL1:
		return ClassLL1Only
	case isSLR1:
		return ClassSLR1Only
	default:
		return ClassNeither
	}
}

// TableConflict is a predictive-table cell that two productions claimed.
// KeptProduction stays in the table and DiscardedProduction does not.
type TableConflict struct {
	NonTerminal         string
	Terminal            string
	KeptProduction      int
	DiscardedProduction int
}

// ShiftReduceConflict is an automaton state where a terminal admits both
// a shift and a reduce. The table keeps the shift because shifts are
// written before reduces.
type ShiftReduceConflict struct {
	State      int
	Terminal   string
	NextState  int
	Production int
}

// ReduceReduceConflict is an automaton state where a terminal admits two
// different reduces. The table keeps the production with the lower
// number, which is the one declared first.
type ReduceReduceConflict struct {
	State       int
	Terminal    string
	Production1 int
	Production2 int
}

// Classification is the analysis verdict for one grammar.
type Classification struct {
	Class Class

	// LeftRecursive lists the non-terminals with a directly
	// left-recursive alternative. Any entry rules out LL(1).
	LeftRecursive []string

	// NeedsLeftFactoring lists the non-terminals with two alternatives
	// sharing a leading symbol. Any entry rules out LL(1).
	NeedsLeftFactoring []string

	LL1Conflicts []*TableConflict
	SRConflicts  []*ShiftReduceConflict
	RRConflicts  []*ReduceReduceConflict
}
