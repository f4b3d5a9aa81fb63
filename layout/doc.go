/*
Package layout builds the layout tree (box tree) from a styled tree.

Every styled node which is not hidden with 'display: none' gets a box:
block-level nodes get block boxes, inline-level nodes get inline boxes.
A block box will never contain block and inline boxes side by side;
consecutive inline children of a block are wrapped into an anonymous box
instead.

Boxes do not carry geometry yet. Measuring and positioning boxes is the
job of a later stage.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxes.layout'.
func tracer() tracing.Trace {
	return tracing.Select("boxes.layout")
}
