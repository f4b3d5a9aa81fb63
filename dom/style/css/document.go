package css

import (
	"fmt"

	"github.com/npillmayer/boxes/dom"
	"github.com/npillmayer/boxes/dom/style/cssom"
	"github.com/npillmayer/boxes/dom/style/cssom/cssparser"
	"github.com/npillmayer/boxes/dom/styledtree"
)

// ExtractStyleElements searches a DOM tree for embedded <style> elements.
// It returns the text content of every style element, in document order.
func ExtractStyleElements(root dom.Node) []string {
	if root == nil {
		return nil
	}
	var styles []string
	for _, e := range dom.FindAll(root, "style") {
		styles = append(styles, dom.TextContent(e))
	}
	return styles
}

// StyleDocument resolves styles for a DOM tree which may contain embedded
// <style> elements. The style sheets given as arguments come first, in
// order, followed by the embedded style sheets in document order.
//
// An error is returned if an embedded style sheet fails to parse.
func StyleDocument(root dom.Node, sheets ...*cssom.StyleSheet) (*styledtree.StyNode, error) {
	all := cssom.Concat(sheets...)
	for i, text := range ExtractStyleElements(root) {
		embedded, err := cssparser.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("style element #%d: %w", i+1, err)
		}
		all = cssom.Concat(all, embedded)
	}
	tracer().Debugf("style: document styled with %d rules", len(all.Rules()))
	return ResolveStyles(root, all), nil
}
