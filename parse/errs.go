package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/xcproj/token"
)

var (
	ErrParse    = errors.New("parse error")
	ErrTrailing = fmt.Errorf("%w: trailing data after document", ErrParse)
	ErrEmptyDoc = fmt.Errorf("%w: empty document", ErrParse)
)

// ParseError reports malformed input with its position.
type ParseError struct {
	Err error
	Pos token.Pos
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Offset returns the byte offset of the error.
func (e *ParseError) Offset() int {
	return e.Pos.I
}

// Line returns the zero based line of the error.
func (e *ParseError) Line() int {
	return e.Pos.Line()
}

// Col returns the zero based column of the error.
func (e *ParseError) Col() int {
	return e.Pos.Col()
}

func parseErr(pos *token.Pos, msg string, args ...any) *ParseError {
	return &ParseError{
		Err: fmt.Errorf("%w: %s", ErrParse, fmt.Sprintf(msg, args...)),
		Pos: *pos,
	}
}
