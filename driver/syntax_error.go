package driver

// SyntaxError tells where an input string stopped matching the grammar.
// A parse that rejects its input produces exactly one SyntaxError; it is
// a result, not a Go error.
type SyntaxError struct {
	Row     int
	Col     int
	Message string
	Token   *Token
}
