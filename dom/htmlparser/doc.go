/*
Package htmlparser turns HTML text into a DOM tree.

The parser is a strict recursive-descent parser for well-formed markup:

    element := start_tag nodes end_tag
    nodes   := ( element | text )*
    text    := one or more characters other than '<'

There is no error recovery: mismatched end tags, unterminated tags and
missing root elements are reported as *scan.ParseError. Text is captured
verbatim, white space is never trimmed. Comments and a leading DOCTYPE are
skipped and do not appear in the DOM.

Tag names and attribute names are case-insensitive and will be lower-cased.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmlparser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxes.html'.
func tracer() tracing.Trace {
	return tracing.Select("boxes.html")
}
