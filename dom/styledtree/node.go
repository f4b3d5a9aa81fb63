package styledtree

import (
	"fmt"

	"github.com/npillmayer/boxes/dom"
	"github.com/npillmayer/boxes/dom/style"
	"github.com/npillmayer/boxes/tree"
)

// StyNode is a style node, the building block of the styled tree.
type StyNode struct {
	tree.Node[*StyNode] // we build on top of general purpose tree
	domNode             dom.Node
	computedStyles      *style.PropertyMap
}

// NewNodeForDOMNode creates a new styled node linked to a DOM node.
// A nil property map is replaced by an empty one.
func NewNodeForDOMNode(n dom.Node, styles *style.PropertyMap) *StyNode {
	sn := &StyNode{domNode: n, computedStyles: styles}
	sn.Payload = sn // Payload will always reference the node itself
	if sn.computedStyles == nil {
		sn.computedStyles = style.NewPropertyMap()
	}
	return sn
}

// Node gets the styled node from a generic tree node.
func Node(n *tree.Node[*StyNode]) *StyNode {
	if n == nil {
		return nil
	}
	return n.Payload
}

// TreeNode returns the generic tree node of sn, for use with the functions
// of package tree.
func (sn *StyNode) TreeNode() *tree.Node[*StyNode] {
	return &sn.Node
}

// DOMNode gets the DOM node corresponding to this styled node.
func (sn *StyNode) DOMNode() dom.Node {
	return sn.domNode
}

// Styles returns the computed properties of a styled node.
func (sn *StyNode) Styles() *style.PropertyMap {
	return sn.computedStyles
}

// Value returns the computed value for a property key, or style.NullValue.
func (sn *StyNode) Value(key string) style.Value {
	v, ok := sn.computedStyles.Property(key)
	if !ok {
		return style.NullValue
	}
	return v
}

// Display returns the display mode of a styled node. Text nodes always
// display inline.
func (sn *StyNode) Display() style.DisplayMode {
	var t *dom.Text
	switch m := sn.domNode.Match(); m {
	case m.Text(&t):
		return style.InlineMode
	}
	return style.DisplayOf(sn.computedStyles)
}

// AddChild appends a styled child node. It is chainable.
func (sn *StyNode) AddChild(ch *StyNode) *StyNode {
	if ch == nil {
		tracer().Errorf("styledtree: cannot add nil child to %s", sn)
		return sn
	}
	sn.Node.AddChild(&ch.Node)
	return sn
}

// Children returns the styled children of a node.
func (sn *StyNode) Children() []*StyNode {
	children := make([]*StyNode, 0, sn.ChildCount())
	for _, ch := range sn.Node.Children() {
		children = append(children, ch.Payload)
	}
	return children
}

func (sn *StyNode) String() string {
	if sn == nil {
		return "<nil styled node>"
	}
	return fmt.Sprintf("[%s|%s]", sn.domNode, sn.Display().Symbol())
}

// --- Predicates ------------------------------------------------------------

// NodeIsText is a predicate to match text nodes of a styled tree.
func NodeIsText(n *tree.Node[*StyNode]) (*tree.Node[*StyNode], error) {
	var t *dom.Text
	switch m := Node(n).domNode.Match(); m {
	case m.Text(&t):
		return n, nil
	}
	return nil, nil
}

// NodeIsElement creates a predicate to match element nodes of a styled
// tree. If tags are given, only elements with one of the tags will match.
func NodeIsElement(tags ...string) tree.Predicate[*StyNode] {
	return func(n *tree.Node[*StyNode]) (*tree.Node[*StyNode], error) {
		if dom.IsElement(Node(n).domNode, tags...) {
			return n, nil
		}
		return nil, nil
	}
}

// NodeHasDisplay creates a predicate to match styled nodes by display mode.
func NodeHasDisplay(mode style.DisplayMode) tree.Predicate[*StyNode] {
	return func(n *tree.Node[*StyNode]) (*tree.Node[*StyNode], error) {
		if Node(n).Display() == mode {
			return n, nil
		}
		return nil, nil
	}
}
