package layout

import (
	"github.com/npillmayer/boxes/dom/style"
	"github.com/npillmayer/boxes/dom/styledtree"
)

// BuildLayout creates the layout tree for a styled tree. Subtrees with
// 'display: none' are pruned. If the root itself has 'display: none', the
// result is a single box of type NoneBox without children.
//
// BuildLayout returns nil for a nil styled tree and never fails otherwise.
func BuildLayout(styled *styledtree.StyNode) *Box {
	if styled == nil {
		return nil
	}
	root := boxFor(styled)
	if root.Type() == NoneBox {
		tracer().Debugf("layout: root %s is not displayed", styled)
		return root
	}
	buildChildren(root, styled)
	return root
}

func boxFor(sn *styledtree.StyNode) *Box {
	props := &BoxProps{Node: sn.DOMNode(), Properties: sn.Styles()}
	switch sn.Display() {
	case style.InlineMode:
		return newBox(InlineBox, props)
	case style.DisplayNone:
		return newBox(NoneBox, props)
	}
	return newBox(BlockBox, props)
}

func buildChildren(parent *Box, styled *styledtree.StyNode) {
	for _, ch := range styled.Children() {
		switch ch.Display() {
		case style.DisplayNone:
			continue // prune the complete subtree
		case style.InlineMode:
			box := boxFor(ch)
			inlineContainer(parent).addChild(box)
			buildChildren(box, ch)
		default:
			box := boxFor(ch)
			parent.addChild(box)
			buildChildren(box, ch)
		}
	}
}

// inlineContainer returns the box to which inline children of parent are
// added. Inline and anonymous boxes hold inline children themselves. For a
// block box it is the anonymous box at the end of its children, which will
// be created if necessary.
func inlineContainer(parent *Box) *Box {
	if parent.Type() != BlockBox {
		return parent
	}
	if last := parent.lastChild(); last != nil && last.Type() == AnonymousBox {
		return last
	}
	anon := newBox(AnonymousBox, nil)
	parent.addChild(anon)
	tracer().Debugf("layout: new anonymous box in %s", parent)
	return anon
}
