package dom

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ToHTML creates an x/net/html document tree mirroring a DOM tree.
// The returned node is of type html.DocumentNode, with the HTML node
// corresponding to root as its only child. Children are created in
// document order, so the i-th child of a DOM element corresponds to the
// i-th child of its HTML node.
func ToHTML(root Node) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	if root != nil {
		doc.AppendChild(toHTML(root))
	}
	return doc
}

func toHTML(n Node) *html.Node {
	var e *Element
	var t *Text
	switch m := n.Match(); m {
	case m.Text(&t):
		return &html.Node{Type: html.TextNode, Data: t.data}
	case m.Element(&e):
		h := &html.Node{
			Type:     html.ElementNode,
			Data:     e.tag,
			DataAtom: atom.Lookup([]byte(e.tag)),
		}
		for _, k := range e.attrs.Keys() {
			h.Attr = append(h.Attr, html.Attribute{Key: k, Val: e.attrs[k]})
		}
		for _, ch := range e.children {
			h.AppendChild(toHTML(ch))
		}
		return h
	}
	tracer().Errorf("unknown DOM node type %T", n)
	return nil
}

// Render writes the HTML serialization of a DOM tree to w.
func Render(w io.Writer, root Node) error {
	return html.Render(w, ToHTML(root))
}
