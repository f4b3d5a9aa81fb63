package cssparser

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"github.com/npillmayer/boxes/dom/style"
	"github.com/npillmayer/boxes/dom/style/cssom"
	"github.com/npillmayer/boxes/scan"
)

// ErrSelector is the cause of a parse error for selectors which cannot be
// compiled.
var ErrSelector = errors.New("invalid selector")

// Parse parses a CSS style sheet.
func Parse(text string) (*cssom.StyleSheet, error) {
	if err := scan.CheckEncoding(text); err != nil {
		tracer().Errorf("css: %v", err)
		return nil, err
	}
	p := newParser(text)
	sheet, err := p.stylesheet()
	if err = p.c.Result(err); err != nil {
		tracer().Errorf("css: %v", err)
		return nil, err
	}
	return sheet, nil
}

// ParseDeclarations parses a list of declarations, as found between the
// braces of a rule or in an HTML style attribute.
func ParseDeclarations(text string) ([]cssom.Declaration, error) {
	if err := scan.CheckEncoding(text); err != nil {
		return nil, err
	}
	p := newParser(text)
	var decls []cssom.Declaration
	err := p.all(func() error {
		decls = p.declarations()
		return nil
	})
	if err = p.c.Result(err); err != nil {
		return nil, err
	}
	return decls, nil
}

// ParseValue parses a single CSS value, e.g. "12px".
func ParseValue(text string) (style.Value, error) {
	if err := scan.CheckEncoding(text); err != nil {
		return style.NullValue, err
	}
	p := newParser(text)
	var v style.Value
	err := p.all(func() (err error) {
		v, err = p.value()
		return
	})
	if err = p.c.Result(err); err != nil {
		return style.NullValue, err
	}
	return v, nil
}

type parser struct {
	c *scan.Cursor
}

func newParser(text string) *parser {
	return &parser{c: scan.NewCursor(text)}
}

// all runs production, surrounded by white space, and requires the input
// to be consumed completely.
func (p *parser) all(production func() error) error {
	if err := p.ws(); err != nil {
		return err
	}
	if err := production(); err != nil {
		return err
	}
	if err := p.ws(); err != nil {
		return err
	}
	if !p.c.EOF() {
		return p.c.Fail(scan.ErrSyntax, "unexpected input")
	}
	return nil
}

// ws skips white space and comments. An unterminated comment is an error;
// the cursor is left in front of it.
func (p *parser) ws() error {
	for {
		p.c.SkipWhitespace()
		err := p.c.Attempt(func() error {
			if !p.c.Literal("/*") {
				return scan.ErrNoMatch
			}
			if !p.c.SkipUntil("*/") {
				return p.c.FailAt(p.c.Len(), scan.ErrSyntax, "unterminated comment")
			}
			p.c.Literal("*/")
			return nil
		})
		if errors.Is(err, scan.ErrNoMatch) {
			return nil
		} else if err != nil {
			return err
		}
	}
}

func (p *parser) stylesheet() (*cssom.StyleSheet, error) {
	var rules []*cssom.Rule
	if err := p.ws(); err != nil {
		return nil, err
	}
	for !p.c.EOF() {
		r, err := p.rule()
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
		if err := p.ws(); err != nil {
			return nil, err
		}
	}
	return cssom.NewStyleSheet(rules...), nil
}

// rule := selector '{' ws declarations? ws '}'
func (p *parser) rule() (*cssom.Rule, error) {
	start := p.c.Offset()
	text := p.c.Many(func(r rune) bool { return r != '{' && r != '}' })
	if !p.c.Char('{') {
		return nil, p.c.Fail(scan.ErrSyntax, "expected '{' after selector")
	}
	if strings.TrimSpace(text) == "" {
		return nil, p.c.FailAt(start, scan.ErrSyntax, "expected selector")
	}
	sel, err := cssom.CompileSelector(text)
	if err != nil {
		return nil, p.c.FailAt(start, ErrSelector, "%v", err)
	}
	decls := p.declarations()
	if err := p.ws(); err != nil {
		return nil, err
	}
	if !p.c.Char('}') {
		return nil, p.c.Fail(scan.ErrSyntax, "expected ';' or '}' in rule for '%s'", sel)
	}
	tracer().Debugf("css: rule %s with %d declarations", sel, len(decls))
	return cssom.NewRule(sel, decls), nil
}

// declarations := declaration ( ';' declaration )* ';'?
//
// An empty list of declarations is legal. Parsing stops in front of the
// first input which does not continue the list; it is up to the caller
// to complain about it.
func (p *parser) declarations() []cssom.Declaration {
	var decls []cssom.Declaration
	for {
		if p.ws() != nil {
			return decls // reported by the caller
		}
		var d cssom.Declaration
		err := p.c.Attempt(func() (err error) {
			d, err = p.declaration()
			return
		})
		if err != nil {
			return decls
		}
		decls = append(decls, d)
		if p.ws() != nil {
			return decls
		}
		if !p.c.Char(';') {
			return decls
		}
	}
}

// declaration := property ws ':' ws value
func (p *parser) declaration() (cssom.Declaration, error) {
	prop, ok := p.c.Many1(func(r rune) bool { return unicode.IsLetter(r) || r == '-' })
	if !ok {
		return cssom.Declaration{}, p.c.Fail(scan.ErrNoMatch, "expected property name")
	}
	if err := p.ws(); err != nil {
		return cssom.Declaration{}, err
	}
	if !p.c.Char(':') {
		return cssom.Declaration{}, p.c.Fail(scan.ErrSyntax, "expected ':' after property %s", prop)
	}
	if err := p.ws(); err != nil {
		return cssom.Declaration{}, err
	}
	v, err := p.value()
	if err != nil {
		return cssom.Declaration{}, err
	}
	return cssom.Declaration{Property: strings.ToLower(prop), Value: v}, nil
}

// value := keyword | length
func (p *parser) value() (style.Value, error) {
	alternatives := []func() (style.Value, error){
		p.keyword,
		p.unitLength("em", style.Em),
		p.unitLength("px", style.Px),
		p.unitLength("%", style.Percent),
	}
	for _, alt := range alternatives {
		var v style.Value
		err := p.c.Attempt(func() (err error) {
			v, err = alt()
			return
		})
		if err == nil {
			return v, nil
		}
	}
	return style.NullValue, p.c.Fail(scan.ErrSyntax, "expected keyword or length")
}

// keyword := letter ( letter | '-' )*
func (p *parser) keyword() (style.Value, error) {
	r, ok := p.c.Peek()
	if !ok || !unicode.IsLetter(r) {
		return style.NullValue, p.c.Fail(scan.ErrNoMatch, "expected keyword")
	}
	k := p.c.Many(func(r rune) bool { return unicode.IsLetter(r) || r == '-' })
	return style.Keyword(k), nil
}

// unitLength creates a parser for length := digits unit.
func (p *parser) unitLength(unit string, u style.Unit) func() (style.Value, error) {
	return func() (style.Value, error) {
		digits, ok := p.c.Many1(func(r rune) bool { return r >= '0' && r <= '9' })
		if !ok {
			return style.NullValue, p.c.Fail(scan.ErrNoMatch, "expected digits")
		}
		if !p.c.LiteralFold(unit) {
			return style.NullValue, p.c.Fail(scan.ErrNoMatch, "expected unit %s", unit)
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			return style.NullValue, p.c.Fail(scan.ErrSyntax, "length out of range: %s", digits)
		}
		return style.Length(n, u), nil
	}
}
