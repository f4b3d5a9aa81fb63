package style

// DisplayMode is the box classification derived from CSS property "display".
type DisplayMode uint16

// Display modes. A resolved node is classified as exactly one of
// DisplayNone, BlockMode or InlineMode.
const (
	NoMode      DisplayMode = iota   // unset or error condition
	DisplayNone DisplayMode = 0x0001 // CSS display = none
	BlockMode   DisplayMode = 0x0002 // CSS block context
	InlineMode  DisplayMode = 0x0004 // CSS inline context
)

func (disp DisplayMode) String() string {
	switch disp {
	case DisplayNone:
		return "None"
	case BlockMode:
		return "Block"
	case InlineMode:
		return "Inline"
	}
	return "NoMode"
}

// Symbol returns a Unicode symbol for a mode.
func (disp DisplayMode) Symbol() string {
	switch disp {
	case BlockMode:
		return "▩"
	case InlineMode:
		return "►"
	case DisplayNone:
		return "∅"
	}
	return "?"
}

// ParseDisplay classifies a value of property "display":
// 'none' is DisplayNone, 'inline' is InlineMode, and anything else,
// including the null value, is BlockMode.
//
// Defaulting to block matches the most common HTML defaults without the
// need for a table of tag names.
func ParseDisplay(v Value) DisplayMode {
	switch {
	case v.IsKeyword("none"):
		return DisplayNone
	case v.IsKeyword("inline"):
		return InlineMode
	case v.IsEmpty():
		return BlockMode
	}
	if !v.IsKeyword("block") {
		tracer().Debugf("display value '%s' will be treated as block", v)
	}
	return BlockMode
}

// DisplayOf returns the display mode for a property map of an element.
func DisplayOf(pmap *PropertyMap) DisplayMode {
	v, _ := pmap.Property("display")
	return ParseDisplay(v)
}
