package dom

import (
	"fmt"
	"sort"
	"strings"
)

// Node is a node of the DOM: either an *Element or a *Text.
type Node interface {
	NodeName() string   // tag name for elements, "#text" for text nodes
	ChildNodes() []Node // children in document order; empty for text nodes
	Match() *Matcher    // pattern matching on the node kind
	String() string
	isNode()
}

// AttrMap maps attribute names to attribute values.
type AttrMap map[string]string

// Keys returns the attribute names in lexical order.
func (am AttrMap) Keys() []string {
	keys := make([]string, 0, len(am))
	for k := range am {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Copy returns a shallow copy of am.
func (am AttrMap) Copy() AttrMap {
	c := make(AttrMap, len(am))
	for k, v := range am {
		c[k] = v
	}
	return c
}

// --- Element ---------------------------------------------------------------

// Element is an HTML element node.
type Element struct {
	tag      string
	attrs    AttrMap
	children []Node
}

// NewElement creates an element node. The element takes ownership of
// attrs and children; clients must not modify them afterwards.
func NewElement(tag string, attrs AttrMap, children []Node) *Element {
	if attrs == nil {
		attrs = AttrMap{}
	}
	return &Element{tag: tag, attrs: attrs, children: children}
}

func (e *Element) isNode() {}

// NodeName returns the tag name.
func (e *Element) NodeName() string {
	return e.tag
}

// Tag returns the tag name of an element.
func (e *Element) Tag() string {
	return e.tag
}

// ChildNodes returns a copy of the children of e.
func (e *Element) ChildNodes() []Node {
	ch := make([]Node, len(e.children))
	copy(ch, e.children)
	return ch
}

// Attributes returns a copy of the attributes of e.
func (e *Element) Attributes() AttrMap {
	return e.attrs.Copy()
}

// Attr returns the value of an attribute and whether it is set.
func (e *Element) Attr(key string) (string, bool) {
	v, ok := e.attrs[key]
	return v, ok
}

// ID returns the value of the "id" attribute.
func (e *Element) ID() string {
	return e.attrs["id"]
}

// Classes returns the white-space separated values of the "class" attribute.
func (e *Element) Classes() []string {
	return strings.Fields(e.attrs["class"])
}

func (e *Element) String() string {
	var b strings.Builder
	b.WriteString("<" + e.tag)
	for _, k := range e.attrs.Keys() {
		fmt.Fprintf(&b, " %s=%q", k, e.attrs[k])
	}
	b.WriteString(">")
	return b.String()
}

// Match returns a matcher for e.
func (e *Element) Match() *Matcher {
	return &Matcher{node: e}
}

// --- Text ------------------------------------------------------------------

// Text is a run of character data.
type Text struct {
	data string
}

// NewText creates a text node.
func NewText(data string) *Text {
	return &Text{data: data}
}

func (t *Text) isNode() {}

// NodeName returns "#text".
func (t *Text) NodeName() string {
	return "#text"
}

// Data returns the character content of a text node, verbatim.
func (t *Text) Data() string {
	return t.data
}

// ChildNodes returns nil, as text nodes never have children.
func (t *Text) ChildNodes() []Node {
	return nil
}

func (t *Text) String() string {
	return fmt.Sprintf("%q", t.data)
}

// Match returns a matcher for t.
func (t *Text) Match() *Matcher {
	return &Matcher{node: t}
}

// --- Matching --------------------------------------------------------------

// Matcher is used for pattern matching on the kind of a node,
// see the package documentation.
type Matcher struct {
	node Node
}

// Element matches element nodes. If e is non-nil, it is set to the element.
func (m *Matcher) Element(e **Element) *Matcher {
	if el, ok := m.node.(*Element); ok {
		if e != nil {
			*e = el
		}
		return m
	}
	return nil
}

// Text matches text nodes. If t is non-nil, it is set to the text node.
func (m *Matcher) Text(t **Text) *Matcher {
	if txt, ok := m.node.(*Text); ok {
		if t != nil {
			*t = txt
		}
		return m
	}
	return nil
}

// IsElement is true if n is an element with one of the given tag names.
// If no tag names are given, any element matches.
func IsElement(n Node, tags ...string) bool {
	e, ok := n.(*Element)
	if !ok {
		return false
	}
	if len(tags) == 0 {
		return true
	}
	for _, tag := range tags {
		if e.tag == tag {
			return true
		}
	}
	return false
}

// TextContent returns the text of n and all its descendents, concatenated.
func TextContent(n Node) string {
	var b strings.Builder
	textContent(n, &b)
	return b.String()
}

func textContent(n Node, b *strings.Builder) {
	var e *Element
	var t *Text
	switch m := n.Match(); m {
	case m.Text(&t):
		b.WriteString(t.data)
	case m.Element(&e):
		for _, ch := range e.children {
			textContent(ch, b)
		}
	}
}

// FindAll returns all elements in the tree below (and including) n with a
// given tag name, in document order.
func FindAll(n Node, tag string) []*Element {
	var found []*Element
	var walk func(Node)
	walk = func(n Node) {
		if e, ok := n.(*Element); ok {
			if e.tag == tag {
				found = append(found, e)
			}
			for _, ch := range e.children {
				walk(ch)
			}
		}
	}
	walk(n)
	return found
}
