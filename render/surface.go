/*
Package render draws snapshot trees onto an abstract 2D surface.

The Surface interface is the module's outbound boundary: any
immediate-mode drawing target (a terminal cell canvas, an image
rasterizer, a test recorder) can host the diagram by implementing its
primitive set.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domscope.render'.
func tracer() tracing.Trace {
	return tracing.Select("domscope.render")
}

// Color is a CSS-style color value ("#rrggbb" or a named color).
type Color string

// Point is a position on a surface.
type Point struct {
	X, Y float64
}

// Surface is the capability set a drawing target has to provide.
// Implementations are immediate-mode: every call takes effect at once,
// later draws paint over earlier ones.
type Surface interface {
	Size() (w, h float64)                       // extent of the drawable area
	Clear(x, y, w, h float64)                   // reset a region to blank
	FillRect(x, y, w, h float64, c Color)       // filled axis-aligned rectangle
	Line(x1, y1, x2, y2 float64, c Color)       // stroked line segment
	Circle(cx, cy, r float64, c Color)          // filled circular marker
	Triangle(a, b, tip Point, c Color)          // filled triangle glyph
	Text(x, y float64, s string, c Color)       // text anchored at a position
}
