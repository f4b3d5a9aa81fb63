package scan

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrNoMatch signals that a grammar alternative did not match. It is used
// between parser functions only and will be converted to ErrSyntax before
// errors are returned to clients.
var ErrNoMatch = errors.New("no match")

// ErrSyntax is the cause of a parse error where the input does not satisfy
// the grammar.
var ErrSyntax = errors.New("syntax error")

// ErrUnexpectedEOF is the cause of a parse error where the input ended
// before a construct has been completed.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

// ErrEncoding is the cause of a parse error for input which is not valid
// UTF-8.
var ErrEncoding = errors.New("invalid UTF-8 encoding")

// Position is a location within the input text.
// Line and Column are 1-based, Offset is a 0-based rune offset.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (pos Position) String() string {
	return fmt.Sprintf("%d:%d", pos.Line, pos.Column)
}

// ParseError is a structural parse error. It is always terminal for a parse;
// no partial results are handed out together with a ParseError.
type ParseError struct {
	Pos Position // where the error occured
	Msg string   // human readable message
	Err error    // cause, e.g. ErrSyntax
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// Unwrap returns the cause of the error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsNoMatch is a predicate to check if err signals a non-matching
// alternative.
func IsNoMatch(err error) bool {
	return errors.Is(err, ErrNoMatch)
}

// CheckEncoding returns a *ParseError with cause ErrEncoding if text is not
// valid UTF-8. The error is located at the first invalid byte sequence.
func CheckEncoding(text string) error {
	if utf8.ValidString(text) {
		return nil
	}
	c := NewCursor(text)
	n := 0
	for i, r := range text {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(text[i:]); size == 1 {
				return &ParseError{Pos: c.PositionAt(n), Msg: "invalid UTF-8 encoding", Err: ErrEncoding}
			}
		}
		n++
	}
	return nil
}
