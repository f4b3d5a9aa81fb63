package domdbg

import (
	"github.com/npillmayer/boxes/dom/styledtree"
	"github.com/npillmayer/boxes/layout"
	tp "github.com/xlab/treeprint"
)

// PrintStyled returns an indented text rendering of a styled tree.
// Every node shows its DOM node and display mode, followed by its
// properties.
func PrintStyled(root *styledtree.StyNode) string {
	if root == nil {
		return "<empty>\n"
	}
	p := tp.New()
	pst(p, root)
	return p.String()
}

func pst(p tp.Tree, sn *styledtree.StyNode) {
	props := sn.Styles().Properties()
	if len(props) == 0 && sn.ChildCount() == 0 {
		p.AddNode(sn.String())
		return
	}
	branch := p.AddBranch(sn.String())
	for _, kv := range props {
		branch.AddMetaNode("css", kv.String())
	}
	for _, ch := range sn.Children() {
		pst(branch, ch)
	}
}

// PrintLayout returns an indented text rendering of a layout tree.
func PrintLayout(root *layout.Box) string {
	if root == nil {
		return "<empty>\n"
	}
	p := tp.New()
	plt(p, root)
	return p.String()
}

func plt(p tp.Tree, box *layout.Box) {
	if box.ChildCount() == 0 {
		p.AddNode(box.String())
		return
	}
	branch := p.AddBranch(box.String())
	for _, ch := range box.Children() {
		plt(branch, ch)
	}
}
