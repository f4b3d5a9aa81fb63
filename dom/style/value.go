package style

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
)

// Unit is the unit of a CSS length.
type Unit uint8

// Units for CSS lengths.
const (
	NoUnit  Unit = iota
	Em           // relative to the font size
	Px           // CSS pixel, 1/96 inch
	Percent      // relative to a reference length
)

func (u Unit) String() string {
	switch u {
	case Em:
		return "em"
	case Px:
		return "px"
	case Percent:
		return "%"
	}
	return ""
}

type valueKind uint8

const (
	kindNone valueKind = iota
	kindKeyword
	kindLength
)

// Value is the value of a CSS property. It is an option type:
/*
type Value
	= Keyword string
	| Length Int Unit
*/
// The zero value is the null value, i.e. no value at all.
type Value struct {
	kind      valueKind
	keyword   string
	magnitude int
	unit      Unit
}

// NullValue is an empty property value.
var NullValue = Value{}

// Keyword creates a keyword value, e.g. 'block'.
func Keyword(k string) Value {
	return Value{kind: kindKeyword, keyword: k}
}

// Length creates a length value, e.g. 12px.
func Length(n int, u Unit) Value {
	return Value{kind: kindLength, magnitude: n, unit: u}
}

// IsEmpty checks whether a value is the null value.
func (v Value) IsEmpty() bool {
	return v.kind == kindNone
}

// IsKeyword checks whether v is a keyword. If one or more keywords are
// given, v has to be equal (ignoring case) to one of them.
func (v Value) IsKeyword(keywords ...string) bool {
	if v.kind != kindKeyword {
		return false
	}
	if len(keywords) == 0 {
		return true
	}
	for _, k := range keywords {
		if strings.EqualFold(v.keyword, k) {
			return true
		}
	}
	return false
}

func (v Value) String() string {
	switch v.kind {
	case kindKeyword:
		return v.keyword
	case kindLength:
		return fmt.Sprintf("%d%s", v.magnitude, v.unit)
	}
	return ""
}

// Dimen converts a length into design units. Em lengths are relative to
// fontSize. Percentages and keywords cannot be converted and will return
// false.
func (v Value) Dimen(fontSize dimen.DU) (dimen.DU, bool) {
	if v.kind != kindLength {
		return 0, false
	}
	switch v.unit {
	case Px:
		return dimen.DU(v.magnitude) * dimen.PT * 3 / 4, true
	case Em:
		return dimen.DU(v.magnitude) * fontSize, true
	}
	return 0, false
}

// Color interprets a keyword as a color. Unknown color names and
// non-keywords will return nil.
func (v Value) Color() color.Color {
	if v.kind != kindKeyword {
		return nil
	}
	switch strings.ToLower(v.keyword) {
	case "black":
		return color.Black
	case "white":
		return color.White
	case "red":
		return color.RGBA{0xff, 0, 0, 0xff}
	case "green":
		return color.RGBA{0, 0x80, 0, 0xff}
	case "blue":
		return color.RGBA{0, 0, 0xff, 0xff}
	case "gray", "grey":
		return color.RGBA{0x80, 0x80, 0x80, 0xff}
	}
	return nil
}

// --- Matching --------------------------------------------------------------

// Match returns a matcher for v. Usage:
//
//     var kw string
//     var n int
//     var u style.Unit
//     switch m := v.Match(); m {
//     case m.Keyword(&kw): …
//     case m.Length(&n, &u): …
//     }
//
func (v Value) Match() *Matcher {
	return &Matcher{value: v}
}

// Matcher is part of pattern matching for values.
type Matcher struct {
	value Value
}

// Keyword matches keyword values and extracts the keyword.
func (m *Matcher) Keyword(k *string) *Matcher {
	if m.value.kind == kindKeyword {
		if k != nil {
			*k = m.value.keyword
		}
		return m
	}
	return nil
}

// Length matches length values and extracts magnitude and unit.
func (m *Matcher) Length(n *int, u *Unit) *Matcher {
	if m.value.kind == kindLength {
		if n != nil {
			*n = m.value.magnitude
		}
		if u != nil {
			*u = m.value.unit
		}
		return m
	}
	return nil
}

// Null matches the null value.
func (m *Matcher) Null() *Matcher {
	if m.value.kind == kindNone {
		return m
	}
	return nil
}
