/*
Package style holds the values of CSS properties and the resolved property
maps attached to styled nodes.

CSS values are a tagged variant: a value is either a keyword or a length
with a unit (em, px or %). Property maps hold the values of a node's
properties, segmented into property groups ("Margins", "Display", …).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'boxes.style'
func tracer() tracing.Trace {
	return tracing.Select("boxes.style")
}
