package spec

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	verr "github.com/gramclass/gramclass/error"
)

// The grammar notation is line oriented:
//
//	3
//	S -> A
//	A -> a A b
//	A -> e
//
// The first line declares how many productions follow. Each production has
// a single uppercase letter as its LHS, '->' as the separator, and
// whitespace-separated symbols as its RHS. The literal 'e' alone denotes
// the empty alternative. '$' is reserved as the end-of-input marker and
// must not appear in a grammar.

const (
	emptyText     = "e"
	endMarkerText = "$"
)

type RootNode struct {
	Productions []*ProductionNode
}

type ProductionNode struct {
	LHS string
	// RHS holds the symbols of one alternative in order. An empty slice
	// represents the empty alternative (written 'e' in the notation).
	RHS []string
	Row int
}

func Parse(src io.Reader) (*RootNode, error) {
	scanner := bufio.NewScanner(src)
	row := 0

	line, ok := nextLine(scanner, &row)
	if !ok {
		return nil, &verr.SpecError{
			Cause: synErrInvalidProductionCount,
			Row:   row,
		}
	}
	count, err := strconv.Atoi(line)
	if err != nil || count <= 0 {
		return nil, &verr.SpecError{
			Cause:  synErrInvalidProductionCount,
			Detail: line,
			Row:    row,
		}
	}

	root := &RootNode{}
	for i := 0; i < count; i++ {
		line, ok := nextLine(scanner, &row)
		if !ok {
			return nil, &verr.SpecError{
				Cause:  synErrTooFewProductions,
				Detail: strconv.Itoa(count) + " declared, " + strconv.Itoa(i) + " found",
				Row:    row,
			}
		}
		prod, err := parseProduction(line, row)
		if err != nil {
			return nil, err
		}
		root.Productions = append(root.Productions, prod)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return root, nil
}

// nextLine returns the next non-blank line, keeping the 1-based row count
// in sync with the underlying source.
func nextLine(scanner *bufio.Scanner, row *int) (string, bool) {
	for scanner.Scan() {
		*row++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		return line, true
	}
	return "", false
}

func parseProduction(line string, row int) (*ProductionNode, error) {
	sides := strings.Split(line, "->")
	if len(sides) != 2 {
		return nil, &verr.SpecError{
			Cause:  synErrMissingArrow,
			Detail: line,
			Row:    row,
		}
	}

	lhs := strings.TrimSpace(sides[0])
	if !IsNonTerminalText(lhs) {
		return nil, &verr.SpecError{
			Cause:  synErrInvalidLHS,
			Detail: lhs,
			Row:    row,
		}
	}

	syms := strings.Fields(sides[1])
	if len(syms) == 0 {
		return nil, &verr.SpecError{
			Cause:  synErrEmptyRHS,
			Detail: line,
			Row:    row,
		}
	}
	// A lone 'e' denotes the empty alternative, represented by an empty
	// RHS. Anywhere else 'e' is an ordinary terminal.
	var rhs []string
	if len(syms) != 1 || syms[0] != emptyText {
		for _, sym := range syms {
			if sym == endMarkerText {
				return nil, &verr.SpecError{
					Cause:  synErrEndMarkerReserved,
					Detail: line,
					Row:    row,
				}
			}
			rhs = append(rhs, sym)
		}
	}

	return &ProductionNode{
		LHS: lhs,
		RHS: rhs,
		Row: row,
	}, nil
}
