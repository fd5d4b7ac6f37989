/*
Package termcanvas implements render.Surface on a terminal cell grid.

Coordinates map 1:1 to character cells; drawing rasterizes onto runes
with a foreground color per cell. Render produces the styled text frame
for a terminal UI.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package termcanvas

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/npillmayer/domscope/render"
)

const (
	lineRune   = '·'
	markerRune = '●'
	fillRune   = '█'
)

type cell struct {
	r  rune
	fg render.Color
}

// Canvas is a fixed-size cell grid.
type Canvas struct {
	w, h  int
	cells []cell
}

var _ render.Surface = (*Canvas)(nil)

// New creates a blank canvas of w × h cells.
func New(w, h int) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c := &Canvas{w: w, h: h, cells: make([]cell, w*h)}
	c.Clear(0, 0, float64(w), float64(h))
	return c
}

// Size returns the canvas extent in cells.
func (c *Canvas) Size() (float64, float64) {
	return float64(c.w), float64(c.h)
}

func (c *Canvas) set(x, y int, r rune, fg render.Color) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = cell{r: r, fg: fg}
}

// CellAt returns the rune and color at a cell position.
func (c *Canvas) CellAt(x, y int) (rune, render.Color) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return 0, ""
	}
	cl := c.cells[y*c.w+x]
	return cl.r, cl.fg
}

// Clear blanks a region.
func (c *Canvas) Clear(x, y, w, h float64) {
	c.rect(x, y, w, h, ' ', "")
}

// FillRect fills a region with a solid color.
func (c *Canvas) FillRect(x, y, w, h float64, col render.Color) {
	c.rect(x, y, w, h, fillRune, col)
}

func (c *Canvas) rect(x, y, w, h float64, r rune, col render.Color) {
	x0, y0 := int(math.Floor(x)), int(math.Floor(y))
	x1, y1 := int(math.Ceil(x+w)), int(math.Ceil(y+h))
	for yy := y0; yy < y1; yy++ {
		for xx := x0; xx < x1; xx++ {
			c.set(xx, yy, r, col)
		}
	}
}

// Line rasterizes a line segment (Bresenham).
func (c *Canvas) Line(x1, y1, x2, y2 float64, col render.Color) {
	ax, ay := int(math.Round(x1)), int(math.Round(y1))
	bx, by := int(math.Round(x2)), int(math.Round(y2))
	dx, dy := abs(bx-ax), -abs(by-ay)
	sx, sy := 1, 1
	if ax > bx {
		sx = -1
	}
	if ay > by {
		sy = -1
	}
	err := dx + dy
	for {
		c.set(ax, ay, lineRune, col)
		if ax == bx && ay == by {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			ax += sx
		}
		if e2 <= dx {
			err += dx
			ay += sy
		}
	}
}

// Circle fills a disc of cells around a center.
func (c *Canvas) Circle(cx, cy, r float64, col render.Color) {
	x0, y0 := int(math.Round(cx)), int(math.Round(cy))
	ri := int(math.Round(r))
	// terminal cells are about twice as tall as wide; compress the
	// vertical extent so discs look round
	rv := (ri + 1) / 2
	for yy := -rv; yy <= rv; yy++ {
		for xx := -ri; xx <= ri; xx++ {
			fy := float64(yy) * 2
			if float64(xx)*float64(xx)+fy*fy <= r*r {
				c.set(x0+xx, y0+yy, markerRune, col)
			}
		}
	}
	c.set(x0, y0, markerRune, col)
}

// Triangle fills a triangle using a sign test over its bounding box.
func (c *Canvas) Triangle(a, b, tip render.Point, col render.Color) {
	minX := int(math.Floor(math.Min(a.X, math.Min(b.X, tip.X))))
	maxX := int(math.Ceil(math.Max(a.X, math.Max(b.X, tip.X))))
	minY := int(math.Floor(math.Min(a.Y, math.Min(b.Y, tip.Y))))
	maxY := int(math.Ceil(math.Max(a.Y, math.Max(b.Y, tip.Y))))
	for yy := minY; yy <= maxY; yy++ {
		for xx := minX; xx <= maxX; xx++ {
			p := render.Point{X: float64(xx), Y: float64(yy)}
			d1 := sign(p, a, b)
			d2 := sign(p, b, tip)
			d3 := sign(p, tip, a)
			neg := d1 < 0 || d2 < 0 || d3 < 0
			pos := d1 > 0 || d2 > 0 || d3 > 0
			if !(neg && pos) {
				c.set(xx, yy, fillRune, col)
			}
		}
	}
}

// Text writes a string horizontally, anchored at its left edge.
func (c *Canvas) Text(x, y float64, s string, col render.Color) {
	xx, yy := int(math.Round(x)), int(math.Round(y))
	for i, r := range []rune(s) {
		c.set(xx+i, yy, r, col)
	}
}

// Render returns the canvas as styled terminal text, one line per row.
func (c *Canvas) Render() string {
	var sb strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		var run strings.Builder
		var runColor render.Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runColor == "" {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(lipgloss.NewStyle().
					Foreground(lipgloss.Color(string(runColor))).
					Render(run.String()))
			}
			run.Reset()
		}
		for x := 0; x < c.w; x++ {
			cl := c.cells[y*c.w+x]
			if cl.fg != runColor {
				flush()
				runColor = cl.fg
			}
			if cl.r == 0 {
				run.WriteByte(' ')
			} else {
				run.WriteRune(cl.r)
			}
		}
		flush()
	}
	return sb.String()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(p, a, b render.Point) float64 {
	return (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
}
