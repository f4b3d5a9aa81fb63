package htmlparser

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/npillmayer/boxes/dom"
	"github.com/npillmayer/boxes/scan"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpDOM = []cmp.Option{
	cmp.AllowUnexported(dom.Element{}, dom.Text{}),
	cmpopts.EquateEmpty(),
}

func el(tag string, attrs dom.AttrMap, children ...dom.Node) *dom.Element {
	return dom.NewElement(tag, attrs, children)
}

func TestParseElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxes.html")
	defer teardown()
	//
	tests := []struct {
		input string
		want  dom.Node
	}{
		{"<p></p>", el("p", nil)},
		{"<p>hello world</p>", el("p", nil, dom.NewText("hello world"))},
		{"<div><p>hello world</p></div>",
			el("div", nil, el("p", nil, dom.NewText("hello world")))},
		{"<p>a<b>b</b>c</p>",
			el("p", nil, dom.NewText("a"), el("b", nil, dom.NewText("b")), dom.NewText("c"))},
	}
	for _, test := range tests {
		root, err := Parse(test.input)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, root, cmpDOM...); diff != "" {
			t.Errorf("%q: DOM mismatch (-want +got):\n%s", test.input, diff)
		}
	}
}

func TestParseRootTagName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxes.html")
	defer teardown()
	//
	for _, tag := range []string{"html", "div", "p", "h1", "my-element", "span"} {
		root, err := Parse("<" + tag + ">content</" + tag + ">")
		require.NoError(t, err, tag)
		assert.Equal(t, tag, root.NodeName())
	}
}

func TestParseTagMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxes.html")
	defer teardown()
	//
	inputs := []string{
		"<p>hello world</div>",
		"<div></span>",
		"<div><p>x</div></p>",
		"<div><p><b>x</i></p></div>",
	}
	for _, input := range inputs {
		root, err := Parse(input)
		if root != nil {
			t.Errorf("%q: expected no DOM for erroneous input", input)
		}
		if !errors.Is(err, ErrTagMismatch) {
			t.Errorf("%q: expected tag mismatch error, have %v", input, err)
		}
		var perr *scan.ParseError
		if !errors.As(err, &perr) {
			t.Errorf("%q: expected a scan.ParseError, have %T", input, err)
		}
	}
}

func TestParseMismatchPosition(t *testing.T) {
	_, err := Parse("<div>\n  <p>x</q>\n</div>")
	var perr *scan.ParseError
	require.True(t, errors.As(err, &perr), "expected parse error, have %v", err)
	if perr.Pos.Line != 2 || perr.Pos.Column != 9 {
		t.Errorf("expected mismatch to be reported at 2:9, is at %s (%s)", perr.Pos, perr.Msg)
	}
}

func TestParseStructuralErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxes.html")
	defer teardown()
	//
	tests := []struct {
		input string
		cause error
	}{
		{"", scan.ErrUnexpectedEOF},
		{"   \n ", scan.ErrUnexpectedEOF},
		{"<div", scan.ErrUnexpectedEOF},
		{"<div>", scan.ErrUnexpectedEOF},
		{"<div>text", scan.ErrUnexpectedEOF},
		{"<div id=\"x>text</div>", scan.ErrUnexpectedEOF},
		{"text only", scan.ErrSyntax},
		{"<p></p>trailing", scan.ErrSyntax},
		{"<p></p><p></p>", scan.ErrSyntax},
		{"<p>a < b</p>", scan.ErrSyntax},
	}
	for _, test := range tests {
		_, err := Parse(test.input)
		if err == nil {
			t.Errorf("%q: expected error, got none", test.input)
			continue
		}
		if !errors.Is(err, test.cause) {
			t.Errorf("%q: expected cause %v, have %v", test.input, test.cause, err)
		}
		if scan.IsNoMatch(err) {
			t.Errorf("%q: internal no-match signal surfaced: %v", test.input, err)
		}
	}
}

func TestParseAttributes(t *testing.T) {
	root, err := Parse(`<div id="main" CLASS='content wide' hidden data-n=1 id="dup"></div>`)
	require.NoError(t, err)
	e := root.(*dom.Element)
	want := dom.AttrMap{
		"id":     "main",
		"class":  "content wide",
		"hidden": "",
		"data-n": "1",
	}
	assert.Equal(t, want, e.Attributes())
}

func TestParseTextIsVerbatim(t *testing.T) {
	root, err := Parse("<p>  two  spaces\n\tand tab </p>")
	require.NoError(t, err)
	assert.Equal(t, "  two  spaces\n\tand tab ", dom.TextContent(root))
	children := root.ChildNodes()
	require.Len(t, children, 1)
}

func TestParseCaseInsensitiveTags(t *testing.T) {
	root, err := Parse("<DIV><P>x</p></Div>")
	require.NoError(t, err)
	assert.Equal(t, "div", root.NodeName())
	assert.Equal(t, "p", root.ChildNodes()[0].NodeName())
}

func TestParseCommentsAndDoctype(t *testing.T) {
	input := "<!DOCTYPE html>\n<!-- head comment -->\n<html><!-- c --><body>x<!-- y -->z</body></html>\n<!-- tail -->"
	root, err := Parse(input)
	require.NoError(t, err)
	want := el("html", nil, el("body", nil, dom.NewText("x"), dom.NewText("z")))
	if diff := cmp.Diff(want, root, cmpDOM...); diff != "" {
		t.Errorf("DOM mismatch (-want +got):\n%s", diff)
	}
	_, err = Parse("<p><!-- never closed </p>")
	assert.ErrorIs(t, err, scan.ErrUnexpectedEOF)
}

func TestParseSampleDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxes.html")
	defer teardown()
	//
	doc := `<html><head><title>my first html parse</title></head>` +
		`<body><div id="main" class="content"><p>hello html parser!!</p></div></body></html>`
	root, err := Parse(doc)
	require.NoError(t, err)
	divs := dom.FindAll(root, "div")
	require.Len(t, divs, 1)
	assert.Equal(t, "main", divs[0].ID())
	assert.Equal(t, []string{"content"}, divs[0].Classes())
	assert.Equal(t, "my first html parsehello html parser!!", dom.TextContent(root))
}

func largeDocument(n int) string {
	return "<div>" + strings.Repeat("<p>x</p><!-- c -->", n) + "</div>"
}

func TestParseLargeDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxes.html")
	defer teardown()
	//
	tracer().SetTraceLevel(tracing.LevelInfo)
	doc := largeDocument(16 * 1024) // about 400KB
	start := time.Now()
	root, err := Parse(doc)
	elapsed := time.Since(start)
	require.NoError(t, err)
	assert.Len(t, root.ChildNodes(), 16*1024)
	t.Logf("parsed %d bytes in %s", len(doc), elapsed)
	if elapsed > 5*time.Second {
		t.Errorf("parsing %d bytes took %s, parse time should grow linearly", len(doc), elapsed)
	}
}

func TestParseInvalidEncoding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxes.html")
	defer teardown()
	//
	_, err := Parse("<p>\n ab\xffcd</p>")
	var perr *scan.ParseError
	require.True(t, errors.As(err, &perr))
	assert.True(t, errors.Is(err, scan.ErrEncoding))
	assert.Equal(t, 2, perr.Pos.Line)
	assert.Equal(t, 4, perr.Pos.Column)
}

func BenchmarkParse(b *testing.B) {
	doc := largeDocument(4096)
	b.SetBytes(int64(len(doc)))
	for i := 0; i < b.N; i++ {
		if _, err := Parse(doc); err != nil {
			b.Fatal(err)
		}
	}
}
