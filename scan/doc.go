/*
Package scan provides the character-level machinery shared by the HTML and
the CSS parser.

Overview

Both parsers are hand-written recursive-descent parsers. Grammar alternatives
are tried with attempt semantics: an alternative which fails must not consume
any input. Cursor implements this by saving and restoring its read position
(see Cursor.Attempt). Errors are reported as *ParseError, carrying the
position of the failure. ErrNoMatch is the signal for "try the next
alternative" and is never handed out by Cursor.Result.

For better error messages the cursor remembers the farthest failure it has
seen. If a whole parse fails, this is usually the most helpful error for a
user, e.g. a mismatched end tag deep inside an HTML document rather than a
generic complaint about the outermost element.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scan

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxes.scan'.
func tracer() tracing.Trace {
	return tracing.Select("boxes.scan")
}
