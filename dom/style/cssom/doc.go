/*
Package cssom provides the CSS object model: style sheets, rules,
selectors and declarations.

Status

Selectors are matchers only: we compile them with
https://godoc.org/github.com/andybalholm/cascadia and match them against the
golang.org/x/net/html mirror of a DOM (see dom.ToHTML). Rules are applied in
document order only; there is no specificity ordering and no support for
'!important'.

A CSSOM is created by a CSS parser (see sub-package cssparser, or the
lenient douceur-based loader in douceuradapter) and is immutable afterwards.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'boxes.css'.
func tracer() tracing.Trace {
	return tracing.Select("boxes.css")
}
