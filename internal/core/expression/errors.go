package expression

import "fmt"

// SyntaxError reports a malformed expression.
// Err is domain.ErrFormat or domain.ErrOperator for grammar failures, or
// the literal parser's own error when a scalar or vector is malformed.
type SyntaxError struct {
	// Pos is the byte offset of the offending token.
	Pos int

	// Msg describes what was wrong. Empty when Err already says it.
	Msg string

	// Err is the sentinel the error unwraps to.
	Err error
}

func newSyntaxError(pos int, msg string, err error) *SyntaxError {
	return &SyntaxError{Pos: pos, Msg: msg, Err: err}
}

func (e *SyntaxError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%v at position %d", e.Err, e.Pos+1)
	}
	return fmt.Sprintf("%v at position %d: %s", e.Err, e.Pos+1, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
