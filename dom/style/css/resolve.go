package css

import (
	"github.com/npillmayer/boxes/dom"
	"github.com/npillmayer/boxes/dom/style"
	"github.com/npillmayer/boxes/dom/style/cssom"
	"github.com/npillmayer/boxes/dom/styledtree"
	"golang.org/x/net/html"
)

// ResolveStyles creates a styled tree for a DOM tree and a style sheet.
// A nil style sheet is treated as an empty one. ResolveStyles returns nil
// for a nil DOM root; otherwise resolution always succeeds.
func ResolveStyles(root dom.Node, sheet *cssom.StyleSheet) *styledtree.StyNode {
	if root == nil {
		return nil
	}
	if sheet == nil {
		sheet = cssom.NewStyleSheet()
	}
	// Selectors match against the x/net/html mirror of the DOM. The mirror
	// has the same shape, so we walk both trees in lock-step.
	doc := dom.ToHTML(root)
	return resolve(root, doc.FirstChild, sheet)
}

func resolve(n dom.Node, h *html.Node, sheet *cssom.StyleSheet) *styledtree.StyNode {
	sn := styledtree.NewNodeForDOMNode(n, SpecifiedValues(h, sheet))
	ch := h.FirstChild
	for _, child := range n.ChildNodes() {
		sn.AddChild(resolve(child, ch, sheet))
		ch = ch.NextSibling
	}
	return sn
}

// SpecifiedValues computes the properties for an HTML node from the rules
// of a style sheet. Only element nodes will be matched; for any other node
// an empty property map is returned.
func SpecifiedValues(h *html.Node, sheet *cssom.StyleSheet) *style.PropertyMap {
	pmap := style.NewPropertyMap()
	if h == nil || h.Type != html.ElementNode {
		return pmap
	}
	for _, rule := range sheet.MatchingRules(h) {
		for _, decl := range rule.Declarations() {
			pmap.Set(decl.Property, decl.Value)
		}
	}
	return pmap
}
