package style

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/dimen"
)

func TestValueMatch(t *testing.T) {
	var kw string
	var n int
	var u Unit
	v := Length(12, Px)
	switch m := v.Match(); m {
	case m.Keyword(&kw):
		t.Errorf("expected 12px to be a length, is keyword %q", kw)
	case m.Length(&n, &u):
		if n != 12 || u != Px {
			t.Errorf("expected 12px, have %d%s", n, u)
		}
	default:
		t.Errorf("value 12px did not match")
	}
	if Keyword("bold").Match().Keyword(&kw) == nil || kw != "bold" {
		t.Errorf("expected keyword 'bold' to match, have %q", kw)
	}
	if NullValue.Match().Null() == nil || !NullValue.IsEmpty() {
		t.Error("expected null value to match Null()")
	}
}

func TestValueString(t *testing.T) {
	tests := map[string]Value{
		"bold": Keyword("bold"),
		"12px": Length(12, Px),
		"2em":  Length(2, Em),
		"50%":  Length(50, Percent),
		"":     NullValue,
	}
	for want, v := range tests {
		if v.String() != want {
			t.Errorf("expected %q, have %q", want, v.String())
		}
	}
}

func TestValueDimen(t *testing.T) {
	d, ok := Length(8, Px).Dimen(0)
	if !ok || d != 6*dimen.PT {
		t.Errorf("expected 8px to be 6pt, is %v", d)
	}
	d, ok = Length(2, Em).Dimen(10 * dimen.PT)
	if !ok || d != 20*dimen.PT {
		t.Errorf("expected 2em with font size 10pt to be 20pt, is %v", d)
	}
	if _, ok = Length(50, Percent).Dimen(10 * dimen.PT); ok {
		t.Error("percentage must not convert to a fixed dimension")
	}
	if _, ok = Keyword("auto").Dimen(0); ok {
		t.Error("keyword must not convert to a dimension")
	}
}

func TestValueColor(t *testing.T) {
	if Keyword("Grey").Color() == nil {
		t.Error("expected 'Grey' to be a color")
	}
	if Keyword("fancy").Color() != nil || Length(1, Px).Color() != nil {
		t.Error("expected unknown keywords and lengths to not be colors")
	}
}

func TestPropertyMapLastWriteWins(t *testing.T) {
	pmap := NewPropertyMap()
	pmap.Set("font-size", Length(12, Px))
	pmap.Set("margin-top", Length(1, Em))
	pmap.Set("font-size", Length(10, Px))
	v, ok := pmap.Property("font-size")
	if !ok || v != Length(10, Px) {
		t.Errorf("expected font-size = 10px, is %v", v)
	}
	if pmap.Len() != 2 || pmap.Size() != 2 {
		t.Errorf("expected 2 properties in 2 groups, have %d in %d", pmap.Len(), pmap.Size())
	}
	if pmap.Group(PGMargins) == nil || pmap.Group(PGFont) == nil {
		t.Errorf("expected groups Margins and Font, have %v", pmap.Groups())
	}
	props := pmap.Properties()
	if len(props) != 2 || props[0].Key != "font-size" {
		t.Errorf("expected sorted properties, have %v", props)
	}
}

func TestNilPropertyMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxes.style")
	defer teardown()
	//
	var pmap *PropertyMap
	if _, ok := pmap.Property("display"); ok {
		t.Error("nil property map must not contain properties")
	}
	if pmap.Len() != 0 || pmap.Size() != 0 || len(pmap.Properties()) != 0 {
		t.Error("nil property map must be empty")
	}
	pmap.Set("display", Keyword("none")) // must not panic
	if c := pmap.Copy(); c == nil || c.Len() != 0 {
		t.Error("copy of nil map must be an empty map")
	}
}

func TestGroupNames(t *testing.T) {
	tests := map[string]string{
		"margin-top":  PGMargins,
		"padding":     PGPadding,
		"font-weight": PGFont,
		"display":     PGDisplay,
		"width":       PGDimension,
		"flow-into":   PGX,
	}
	for key, group := range tests {
		if g := GroupNameFromPropertyKey(key); g != group {
			t.Errorf("expected %s to be in group %s, is in %s", key, group, g)
		}
	}
}

func TestParseDisplay(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxes.style")
	defer teardown()
	//
	tests := []struct {
		v    Value
		mode DisplayMode
	}{
		{Keyword("none"), DisplayNone},
		{Keyword("NONE"), DisplayNone},
		{Keyword("inline"), InlineMode},
		{Keyword("block"), BlockMode},
		{Keyword("flex"), BlockMode},
		{Length(12, Px), BlockMode},
		{NullValue, BlockMode},
	}
	for _, test := range tests {
		if m := ParseDisplay(test.v); m != test.mode {
			t.Errorf("expected display %q to be %s, is %s", test.v, test.mode, m)
		}
	}
	pmap := NewPropertyMap()
	if DisplayOf(pmap) != BlockMode {
		t.Error("expected absent display property to default to block")
	}
	pmap.Set("display", Keyword("inline"))
	if DisplayOf(pmap) != InlineMode {
		t.Error("expected display:inline to be inline")
	}
}
