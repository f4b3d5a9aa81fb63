/*
Package dom provides the document object model produced by the HTML parser.

Overview

A DOM node is either an element or a run of text. Elements carry a tag
name, a map of attributes and an ordered list of children. Nodes are built
once by the parser (see package htmlparser) and are immutable afterwards:
accessors hand out copies, never the internal slices or maps.

Clients distinguish node kinds either with a type switch or with a matcher:

    var e *dom.Element
    var t *dom.Text
    switch m := node.Match(); m {
    case m.Element(&e):
        …
    case m.Text(&t):
        …
    }

Interoperability

Selector matching and serialization are delegated to golang.org/x/net/html
and its ecosystem. ToHTML creates an x/net/html tree mirroring a DOM tree
node by node.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxes.dom'.
func tracer() tracing.Trace {
	return tracing.Select("boxes.dom")
}
