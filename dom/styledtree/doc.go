/*
Package styledtree implements the styled document tree.

Overview

A styled tree mirrors a DOM tree node for node. Every styled node links
back to its DOM node and carries the properties computed for it by the
style resolver. Text nodes carry an empty property map.

The styled tree builds on the generic tree.Node type. Clients walking the
tree will get at the styled node from a tree node by using Node().

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxes.style'.
func tracer() tracing.Trace {
	return tracing.Select("boxes.style")
}
