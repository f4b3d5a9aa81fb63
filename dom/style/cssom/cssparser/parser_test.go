package cssparser

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/boxes/dom/style"
	"github.com/npillmayer/boxes/dom/style/cssom"
	"github.com/npillmayer/boxes/scan"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpValues = cmp.AllowUnexported(style.Value{})

const sampleCSS = `
.content {
  width: 1024px;
  font-size: 12px;
}

p[id~=hello] {
  font-size: 10px;
  font-weight: bold;
  color: grey;
}
`

func TestParseValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxes.css")
	defer teardown()
	//
	tests := []struct {
		input string
		want  style.Value
	}{
		{"100em", style.Length(100, style.Em)},
		{"100px", style.Length(100, style.Px)},
		{"100%", style.Length(100, style.Percent)},
		{"0px", style.Length(0, style.Px)},
		{"bold", style.Keyword("bold")},
		{"inline-block", style.Keyword("inline-block")},
		{"  grey ", style.Keyword("grey")},
	}
	for _, test := range tests {
		v, err := ParseValue(test.input)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, v, cmpValues); diff != "" {
			t.Errorf("%q: value mismatch (-want +got):\n%s", test.input, diff)
		}
	}
}

func TestParseValueErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxes.css")
	defer teardown()
	//
	for _, input := range []string{"12pt", "12", "-12px", "#fff", "1a2px", "bold 12px"} {
		_, err := ParseValue(input)
		if err == nil {
			t.Errorf("%q: expected parse error", input)
		}
	}
}

func TestParseDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxes.css")
	defer teardown()
	//
	decls, err := ParseDeclarations("width: 1024px; font-size: 12px;")
	require.NoError(t, err)
	require.Len(t, decls, 2)
	assert.Equal(t, "width", decls[0].Property)
	assert.Equal(t, "font-size", decls[1].Property)
	assert.Equal(t, "1024px", decls[0].Value.String())
	assert.Equal(t, "12px", decls[1].Value.String())
	//
	decls, err = ParseDeclarations("foo: bar; piyo: piyopiyo;")
	require.NoError(t, err)
	require.Len(t, decls, 2)
	assert.True(t, decls[0].Value.IsKeyword("bar"))
	assert.True(t, decls[1].Value.IsKeyword("piyopiyo"))
}

func TestParseDeclarationsSeparators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxes.css")
	defer teardown()
	//
	tests := []struct {
		input string
		count int
	}{
		{"", 0},
		{"color: red", 1},
		{"color: red;", 1},
		{"color : red ; width:1px", 2},
		{"COLOR: Red", 1},
		{"color: red; /* note */ width: 1px", 2},
	}
	for _, test := range tests {
		decls, err := ParseDeclarations(test.input)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", test.input, err)
			continue
		}
		if len(decls) != test.count {
			t.Errorf("%q: expected %d declarations, have %d", test.input, test.count, len(decls))
		}
	}
	decls, _ := ParseDeclarations("COLOR: Red")
	assert.Equal(t, "color", decls[0].Property, "property names are case-insensitive")
}

func TestParseStyleSheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxes.css")
	defer teardown()
	//
	sheet, err := Parse(sampleCSS)
	require.NoError(t, err)
	rules := sheet.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, ".content", rules[0].Selector().String())
	assert.Equal(t, "p[id~=hello]", rules[1].Selector().String())
	assert.Equal(t, []string{"width", "font-size"}, rules[0].Properties())
	assert.Equal(t, []string{"font-size", "font-weight", "color"}, rules[1].Properties())
	assert.Equal(t, "10px", rules[1].Value("font-size").String())
	assert.True(t, rules[1].Value("color").IsKeyword("grey"))
}

func TestParseEmptyInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxes.css")
	defer teardown()
	//
	for _, input := range []string{"", "   \n\t", "/* nothing here */"} {
		sheet, err := Parse(input)
		require.NoError(t, err, input)
		assert.True(t, sheet.Empty(), input)
	}
}

func TestParseRuleVariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxes.css")
	defer teardown()
	//
	sheet, err := Parse("p {}  div{display:none}\n/* c */ h1, h2 { color: red; color: blue; }")
	require.NoError(t, err)
	rules := sheet.Rules()
	require.Len(t, rules, 3)
	assert.Empty(t, rules[0].Declarations())
	assert.True(t, rules[1].Value("display").IsKeyword("none"))
	assert.Equal(t, "h1, h2", rules[2].Selector().String())
	assert.Len(t, rules[2].Declarations(), 2, "duplicate declarations are retained")
	assert.True(t, rules[2].Value("color").IsKeyword("blue"))
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxes.css")
	defer teardown()
	//
	tests := []struct {
		input string
		cause error
	}{
		{"p[[ { color: red }", ErrSelector},
		{"p { color: red", scan.ErrUnexpectedEOF},
		{"p { width: 12pt }", scan.ErrSyntax},
		{"p { color red }", scan.ErrSyntax},
		{"{ color: red }", scan.ErrSyntax},
		{"p { color: red } }", scan.ErrSyntax},
		{"p { color: red } /* open", scan.ErrUnexpectedEOF},
	}
	for _, test := range tests {
		_, err := Parse(test.input)
		if err == nil {
			t.Errorf("%q: expected an error", test.input)
			continue
		}
		if !errors.Is(err, test.cause) {
			t.Errorf("%q: expected cause %v, have %v", test.input, test.cause, err)
		}
		var perr *scan.ParseError
		if !errors.As(err, &perr) {
			t.Errorf("%q: expected error to carry a position", test.input)
		}
	}
}

func TestParseErrorPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxes.css")
	defer teardown()
	//
	_, err := Parse("p {\n  color: 12pt;\n}")
	var perr *scan.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Pos.Line)
}

func TestRulesCompose(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxes.css")
	defer teardown()
	//
	a, err := Parse("p { color: red }")
	require.NoError(t, err)
	b, err := Parse("p { color: blue }")
	require.NoError(t, err)
	sheet := cssom.Concat(a, b)
	assert.Len(t, sheet.Rules(), 2)
}

func TestParseUnterminatedComment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxes.css")
	defer teardown()
	//
	for _, input := range []string{
		"p { color: red } /* open",
		"/* open",
		"p { color: red /* open",
		"p { color /* open",
	} {
		_, err := Parse(input)
		var perr *scan.ParseError
		if !errors.As(err, &perr) {
			t.Errorf("%q: expected a parse error, have %v", input, err)
			continue
		}
		assert.True(t, errors.Is(err, scan.ErrUnexpectedEOF), input)
		assert.True(t, strings.Contains(perr.Msg, "unterminated comment"),
			"%q: expected unterminated comment to be reported, have %q", input, perr.Msg)
	}
	_, err := ParseDeclarations("color: red; /* open")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unterminated comment")
}

func TestParseInvalidEncoding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxes.css")
	defer teardown()
	//
	_, err := Parse("p { color: r\xffed }")
	assert.True(t, errors.Is(err, scan.ErrEncoding))
	_, err = ParseValue("\xc3")
	assert.True(t, errors.Is(err, scan.ErrEncoding))
	_, err = ParseDeclarations("width: 1px; \xfe")
	assert.True(t, errors.Is(err, scan.ErrEncoding))
}
