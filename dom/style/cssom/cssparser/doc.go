/*
Package cssparser is a recursive-descent parser for CSS style sheets.

Grammar

    stylesheet   := ws ( rule ws )*
    rule         := selector '{' ws declarations? ws '}'
    declarations := declaration ( ';' declaration )* ';'?
    declaration  := property ':' value
    value        := keyword | length
    length       := digits ( 'em' | 'px' | '%' )

White space and comments are skipped between tokens. Selectors are the raw
text up to the opening brace; they are compiled by package cssom.

Every alternative of a value is attempted with full backtracking. In
particular all of the unit suffixes are tried after a numeric prefix, so
that "100%" is recognized as a percentage.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cssparser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxes.css'.
func tracer() tracing.Trace {
	return tracing.Select("boxes.css")
}
