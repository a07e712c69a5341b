package error

import (
	"fmt"
	"strings"
)

// SpecError is an error occurring while reading or validating a grammar
// definition. Row is 1-based and refers to a line of the grammar source;
// a Row of 0 means the error is not tied to a particular line.
type SpecError struct {
	Cause      error
	Detail     string
	SourceName string
	Row        int
}

func (e *SpecError) Error() string {
	var b strings.Builder
	if e.SourceName != "" {
		fmt.Fprintf(&b, "%v: ", e.SourceName)
	}
	if e.Row != 0 {
		fmt.Fprintf(&b, "line %v: ", e.Row)
	}
	fmt.Fprintf(&b, "error: %v", e.Cause)
	if e.Detail != "" {
		fmt.Fprintf(&b, ": %v", e.Detail)
	}
	return b.String()
}

func (e *SpecError) Unwrap() error {
	return e.Cause
}

// SpecErrors aggregates all errors detected in one pass over a grammar
// definition so that a user sees every problem at once.
type SpecErrors []*SpecError

func (e SpecErrors) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v", e[0])
	for _, err := range e[1:] {
		fmt.Fprintf(&b, "\n%v", err)
	}
	return b.String()
}
