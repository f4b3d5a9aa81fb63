package scan

import (
	"errors"
	"fmt"
	"sort"
	"unicode"
)

// Cursor reads runes from an input text. Its read position may be saved
// and restored, which is how grammar alternatives are attempted.
type Cursor struct {
	input    []rune
	pos      int
	lines    []int // offsets of line starts
	farthest *ParseError
}

// NewCursor creates a cursor positioned at the start of text.
//
// The text is read as a sequence of runes. Invalid UTF-8 will be read
// as utf8.RuneError; clients wanting to reject such input call
// CheckEncoding first.
func NewCursor(text string) *Cursor {
	c := &Cursor{input: []rune(text), lines: []int{0}}
	for i, r := range c.input {
		if r == '\n' {
			c.lines = append(c.lines, i+1)
		}
	}
	return c
}

// EOF is true if all of the input has been consumed.
func (c *Cursor) EOF() bool {
	return c.pos >= len(c.input)
}

// Len returns the length of the input in runes.
func (c *Cursor) Len() int {
	return len(c.input)
}

// Offset returns the current read position as a rune offset.
func (c *Cursor) Offset() int {
	return c.pos
}

// Peek returns the next rune without consuming it.
func (c *Cursor) Peek() (rune, bool) {
	if c.EOF() {
		return 0, false
	}
	return c.input[c.pos], true
}

// Next consumes and returns the next rune.
func (c *Cursor) Next() (rune, bool) {
	r, ok := c.Peek()
	if ok {
		c.pos++
	}
	return r, ok
}

// Char consumes r if it is the next rune.
func (c *Cursor) Char(r rune) bool {
	if next, ok := c.Peek(); ok && next == r {
		c.pos++
		return true
	}
	return false
}

// Literal consumes s if the input continues with s. Nothing is consumed
// otherwise.
func (c *Cursor) Literal(s string) bool {
	return c.literal(s, false)
}

// LiteralFold is like Literal, but compares case-insensitively.
func (c *Cursor) LiteralFold(s string) bool {
	return c.literal(s, true)
}

func (c *Cursor) literal(s string, fold bool) bool {
	rs := []rune(s)
	if c.pos+len(rs) > len(c.input) {
		return false
	}
	for i, r := range rs {
		in := c.input[c.pos+i]
		if fold {
			in, r = unicode.ToLower(in), unicode.ToLower(r)
		}
		if in != r {
			return false
		}
	}
	c.pos += len(rs)
	return true
}

// Many consumes zero or more runes satisfying pred.
func (c *Cursor) Many(pred func(rune) bool) string {
	start := c.pos
	for !c.EOF() && pred(c.input[c.pos]) {
		c.pos++
	}
	return string(c.input[start:c.pos])
}

// Many1 consumes one or more runes satisfying pred. If the next rune does
// not satisfy pred, nothing is consumed and false is returned.
func (c *Cursor) Many1(pred func(rune) bool) (string, bool) {
	s := c.Many(pred)
	return s, s != ""
}

// SkipUntil consumes runes up to (not including) the next occurence of s.
// If s does not occur, nothing is consumed and false is returned.
func (c *Cursor) SkipUntil(s string) bool {
	pattern := []rune(s)
	for i := c.pos; i+len(pattern) <= len(c.input); i++ {
		if runesEqual(c.input[i:i+len(pattern)], pattern) {
			c.pos = i
			return true
		}
	}
	return false
}

func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// SkipWhitespace consumes Unicode white space.
func (c *Cursor) SkipWhitespace() {
	c.Many(unicode.IsSpace)
}

// Text returns the input between two offsets.
func (c *Cursor) Text(from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(c.input) {
		to = len(c.input)
	}
	if from >= to {
		return ""
	}
	return string(c.input[from:to])
}

// Attempt calls p. If p fails, the read position is restored to where it
// was before the call, i.e. a failed attempt does not consume input.
func (c *Cursor) Attempt(p func() error) error {
	mark := c.pos
	if err := p(); err != nil {
		c.pos = mark
		return err
	}
	return nil
}

// PositionAt calculates line and column for an offset.
// Offsets past the end of input are located at the end of input.
func (c *Cursor) PositionAt(offset int) Position {
	o := offset
	if o > len(c.input) {
		o = len(c.input)
	}
	if o < 0 {
		o = 0
	}
	line := sort.Search(len(c.lines), func(i int) bool { return c.lines[i] > o })
	return Position{Offset: offset, Line: line, Column: o - c.lines[line-1] + 1}
}

// Position returns the position of the read cursor.
func (c *Cursor) Position() Position {
	return c.PositionAt(c.pos)
}

// Fail creates a parse error at the current read position.
// If the input is exhausted, the cause will be ErrUnexpectedEOF,
// regardless of the cause given.
func (c *Cursor) Fail(cause error, format string, args ...interface{}) *ParseError {
	return c.FailAt(c.pos, cause, format, args...)
}

// FailAt creates a parse error at a given offset.
func (c *Cursor) FailAt(offset int, cause error, format string, args ...interface{}) *ParseError {
	msg := fmt.Sprintf(format, args...)
	if offset >= len(c.input) {
		cause = ErrUnexpectedEOF
		msg = "unexpected end of input, " + msg
	}
	err := &ParseError{Pos: c.PositionAt(offset), Msg: msg, Err: cause}
	if c.farthest == nil || offset >= c.farthest.Pos.Offset {
		c.farthest = err
	}
	return err
}

// Result converts the outcome of a top-level parse into the error to return
// to a client. If err is nil, nil is returned. Otherwise the farthest error
// seen during the parse is returned; a cause of ErrNoMatch will be replaced
// by ErrSyntax.
func (c *Cursor) Result(err error) error {
	if err == nil {
		return nil
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		return err
	}
	if c.farthest != nil && c.farthest.Pos.Offset > perr.Pos.Offset {
		perr = c.farthest
	}
	if errors.Is(perr.Err, ErrNoMatch) || perr.Err == nil {
		perr = &ParseError{Pos: perr.Pos, Msg: perr.Msg, Err: ErrSyntax}
	}
	tracer().Debugf("parse failed at %s: %s", perr.Pos, perr.Msg)
	return perr
}
