package htmlparser

import (
	"errors"
	"strings"
	"unicode"

	"github.com/npillmayer/boxes/dom"
	"github.com/npillmayer/boxes/scan"
)

// ErrTagMismatch is the cause of a parse error where an end tag does not
// close the element opened by the corresponding start tag.
var ErrTagMismatch = errors.New("tag mismatch")

// Parse parses an HTML document and returns its root element.
// The document must consist of exactly one element, optionally surrounded
// by white space and comments and preceded by a DOCTYPE.
//
// Text has to be valid UTF-8. Text nodes keep their content verbatim.
// If the text is not well-formed, a *scan.ParseError is returned, and
// no DOM at all.
func Parse(text string) (dom.Node, error) {
	if err := scan.CheckEncoding(text); err != nil {
		tracer().Errorf("html: %v", err)
		return nil, err
	}
	p := &parser{c: scan.NewCursor(text)}
	root, err := p.document()
	if err = p.c.Result(err); err != nil {
		tracer().Errorf("html: %v", err)
		return nil, err
	}
	return root, nil
}

type parser struct {
	c *scan.Cursor
}

func (p *parser) document() (dom.Node, error) {
	p.prolog()
	if p.c.EOF() {
		return nil, p.c.Fail(scan.ErrSyntax, "expected root element")
	}
	root, err := p.element()
	if err != nil {
		return nil, err
	}
	p.misc()
	if !p.c.EOF() {
		return nil, p.c.Fail(scan.ErrSyntax, "unexpected content after root element")
	}
	return root, nil
}

// prolog skips white space, comments and a DOCTYPE declaration.
func (p *parser) prolog() {
	p.misc()
	err := p.c.Attempt(func() error {
		if !p.c.LiteralFold("<!doctype") {
			return p.c.Fail(scan.ErrNoMatch, "expected DOCTYPE")
		}
		if !p.c.SkipUntil(">") {
			return p.c.FailAt(p.c.Len(), scan.ErrSyntax, "unterminated DOCTYPE")
		}
		p.c.Char('>')
		return nil
	})
	if err == nil {
		p.misc()
	}
}

// misc skips white space and comments.
func (p *parser) misc() {
	for {
		p.c.SkipWhitespace()
		if p.comment() != nil {
			return
		}
	}
}

func (p *parser) comment() error {
	return p.c.Attempt(func() error {
		if !p.c.Literal("<!--") {
			return p.c.Fail(scan.ErrNoMatch, "expected comment")
		}
		if !p.c.SkipUntil("-->") {
			return p.c.FailAt(p.c.Len(), scan.ErrSyntax, "unterminated comment")
		}
		p.c.Literal("-->")
		return nil
	})
}

// element := start_tag nodes end_tag
func (p *parser) element() (*dom.Element, error) {
	var elem *dom.Element
	err := p.c.Attempt(func() error {
		tag, attrs, err := p.startTag()
		if err != nil {
			return err
		}
		children := p.nodes()
		closing, at, err := p.endTag()
		if err != nil {
			return err
		}
		if closing != tag {
			return p.c.FailAt(at, ErrTagMismatch,
				"tag mismatch: <%s> closed by </%s>", tag, closing)
		}
		elem = dom.NewElement(tag, attrs, children)
		tracer().Debugf("html: element <%s> with %d children", tag, len(children))
		return nil
	})
	return elem, err
}

// nodes := ( element | text )*
//
// Every alternative is attempted without consuming input on failure.
// An empty sequence is fine.
func (p *parser) nodes() []dom.Node {
	var nodes []dom.Node
	for {
		if p.comment() == nil {
			continue
		}
		if elem, err := p.element(); err == nil {
			nodes = append(nodes, elem)
			continue
		}
		if text, err := p.text(); err == nil {
			nodes = append(nodes, text)
			continue
		}
		return nodes
	}
}

func (p *parser) text() (*dom.Text, error) {
	t, ok := p.c.Many1(func(r rune) bool { return r != '<' })
	if !ok {
		return nil, p.c.Fail(scan.ErrNoMatch, "expected text")
	}
	return dom.NewText(t), nil
}

// start_tag := '<' name ( ws attribute )* ws '>'
func (p *parser) startTag() (string, dom.AttrMap, error) {
	if !p.c.Char('<') {
		return "", nil, p.c.Fail(scan.ErrNoMatch, "expected '<'")
	}
	tag, ok := p.name()
	if !ok {
		return "", nil, p.c.Fail(scan.ErrNoMatch, "expected tag name")
	}
	attrs := dom.AttrMap{}
	for {
		p.c.SkipWhitespace()
		if p.c.Char('>') {
			return tag, attrs, nil
		}
		if p.c.EOF() {
			return "", nil, p.c.Fail(scan.ErrSyntax, "unterminated start tag <%s", tag)
		}
		key, value, err := p.attribute()
		if err != nil {
			return "", nil, err
		}
		if _, dup := attrs[key]; !dup { // first one wins
			attrs[key] = value
		}
	}
}

// end_tag := '<' '/' name ws '>'
//
// Returns the tag name and the offset of the name.
func (p *parser) endTag() (string, int, error) {
	if !p.c.Literal("</") {
		return "", 0, p.c.Fail(scan.ErrSyntax, "expected end tag")
	}
	at := p.c.Offset()
	tag, ok := p.name()
	if !ok {
		return "", 0, p.c.Fail(scan.ErrSyntax, "expected tag name in end tag")
	}
	p.c.SkipWhitespace()
	if !p.c.Char('>') {
		return "", 0, p.c.Fail(scan.ErrSyntax, "unterminated end tag </%s", tag)
	}
	return tag, at, nil
}

// attribute := name ws [ '=' ws value ]
func (p *parser) attribute() (string, string, error) {
	key, ok := p.name()
	if !ok {
		return "", "", p.c.Fail(scan.ErrSyntax, "expected attribute name")
	}
	p.c.SkipWhitespace()
	if !p.c.Char('=') {
		return key, "", nil
	}
	p.c.SkipWhitespace()
	for _, quote := range []rune{'"', '\''} {
		if p.c.Char(quote) {
			v := p.c.Many(func(r rune) bool { return r != quote })
			if !p.c.Char(quote) {
				return "", "", p.c.Fail(scan.ErrSyntax, "unterminated value for attribute %s", key)
			}
			return key, v, nil
		}
	}
	v, ok := p.c.Many1(isUnquotedValue)
	if !ok {
		return "", "", p.c.Fail(scan.ErrSyntax, "expected value for attribute %s", key)
	}
	return key, v, nil
}

// name := letter ( letter | digit | '-' )*
func (p *parser) name() (string, bool) {
	r, ok := p.c.Peek()
	if !ok || !unicode.IsLetter(r) {
		return "", false
	}
	n := p.c.Many(func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-'
	})
	return strings.ToLower(n), true
}

func isUnquotedValue(r rune) bool {
	if unicode.IsSpace(r) {
		return false
	}
	switch r {
	case '"', '\'', '=', '<', '>', '`':
		return false
	}
	return true
}
