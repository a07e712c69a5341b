package spec

type SyntaxError struct {
	message string
}

func newSyntaxError(message string) *SyntaxError {
	return &SyntaxError{
		message: message,
	}
}

func (e *SyntaxError) Error() string {
	return e.message
}

var (
	synErrInvalidProductionCount = newSyntaxError("the first line must be the number of productions")
	synErrTooFewProductions      = newSyntaxError("fewer productions than declared")
	synErrMissingArrow           = newSyntaxError("a production must contain exactly one '->'")
	synErrInvalidLHS             = newSyntaxError("the LHS of a production must be a single uppercase letter")
	synErrEmptyRHS               = newSyntaxError("the RHS of a production must contain at least one symbol (use 'e' for the empty string)")
	synErrEndMarkerReserved      = newSyntaxError("'$' is reserved as the end-of-input marker")
)
