/*
Package css resolves CSS styles for a DOM tree.

Styles are resolved by matching every element of a DOM tree against the
rules of a style sheet. Declarations of matching rules are merged in style
sheet order, and within a rule in declaration order; the last write wins.
The result is a styled tree (see package styledtree), mirroring the DOM
tree node for node.

There is no notion of specificity, of '!important', or of inheritance.
Text nodes always resolve to an empty set of properties.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxes.style'.
func tracer() tracing.Trace {
	return tracing.Select("boxes.style")
}
