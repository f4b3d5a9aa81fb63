package layout

import (
	"fmt"

	"github.com/npillmayer/boxes/dom"
	"github.com/npillmayer/boxes/dom/style"
	"github.com/npillmayer/boxes/tree"
)

// BoxType classifies boxes of the layout tree.
type BoxType uint8

// Types of boxes.
const (
	NoneBox      BoxType = iota // root with 'display: none'
	BlockBox                    // block-level box
	InlineBox                   // inline-level box
	AnonymousBox                // wrapper for a run of inline boxes
)

func (bt BoxType) String() string {
	switch bt {
	case NoneBox:
		return "None"
	case BlockBox:
		return "Block"
	case InlineBox:
		return "Inline"
	case AnonymousBox:
		return "Anonymous"
	}
	return "?"
}

// BoxProps links a box to the DOM node it has been created for, and to
// the styles resolved for that node.
type BoxProps struct {
	Node       dom.Node
	Properties *style.PropertyMap
}

// Box is a node of the layout tree.
type Box struct {
	tree.Node[*Box]
	boxType BoxType
	props   *BoxProps // nil for anonymous boxes
}

func newBox(bt BoxType, props *BoxProps) *Box {
	box := &Box{boxType: bt, props: props}
	box.Payload = box
	return box
}

// Type returns the type of a box.
func (box *Box) Type() BoxType {
	return box.boxType
}

// Props returns the DOM node and styles of a box, or nil for anonymous boxes.
func (box *Box) Props() *BoxProps {
	return box.props
}

// TreeNode returns the generic tree node of a box, for use with the
// functions of package tree.
func (box *Box) TreeNode() *tree.Node[*Box] {
	return &box.Node
}

// Children returns the child boxes of a box, in order.
func (box *Box) Children() []*Box {
	children := make([]*Box, 0, box.ChildCount())
	for _, ch := range box.Node.Children() {
		children = append(children, ch.Payload)
	}
	return children
}

func (box *Box) addChild(ch *Box) {
	box.Node.AddChild(&ch.Node)
}

func (box *Box) lastChild() *Box {
	if ch, ok := box.LastChild(); ok {
		return ch.Payload
	}
	return nil
}

func (box *Box) String() string {
	if box == nil {
		return "<nil box>"
	}
	if box.props == nil {
		return fmt.Sprintf("[%s]", box.boxType)
	}
	return fmt.Sprintf("[%s %s]", box.boxType, box.props.Node)
}
