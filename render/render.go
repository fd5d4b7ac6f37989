package render

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/domscope/snapshot"
)

// Renderer draws snapshot trees in a fixed theme. A Renderer holds no
// per-frame state and may be shared between views.
type Renderer struct {
	theme Theme
}

// New creates a Renderer with a theme.
func New(theme Theme) *Renderer {
	return &Renderer{theme: theme}
}

// Theme returns the renderer's theme.
func (r *Renderer) Theme() Theme {
	return r.theme
}

// RowHeight computes the height of one depth band so that maxDepth+1
// bands fill a surface of the given height.
func RowHeight(surfaceHeight float64, maxDepth int) float64 {
	return surfaceHeight / float64(maxDepth+1)
}

// Geom returns the hit-test geometry matching this renderer for a given
// row height.
func (r *Renderer) Geom(rowHeight float64) snapshot.Geom {
	return snapshot.Geom{RowHeight: rowHeight, YOffset: r.theme.YOffset, Radius: r.theme.Radius}
}

// Render draws a snapshot tree. It is a pure function of the snapshot
// apart from the drawing calls on the surface.
//
// For every node, connector lines to the children (and the sibling-span
// line between the first and last child) are drawn first, then the
// children themselves, and the node's own marker last, so a marker is
// never occluded by connectors.
func (r *Renderer) Render(s Surface, root *snapshot.Node, rowHeight float64) {
	if root == nil {
		return
	}
	tracer().Debugf("render pass, row height %g", rowHeight)
	r.node(s, root, r.Geom(rowHeight))
}

func (r *Renderer) node(s Surface, n *snapshot.Node, g snapshot.Geom) {
	cx, cy := n.Center(g)
	if first, last := n.FirstChild(), n.LastChild(); first != nil && first != last {
		fx, fy := first.Center(g)
		lx, ly := last.Center(g)
		s.Line(fx, fy, lx, ly, r.theme.Connector)
	}
	for i := 0; i < n.ChildCount(); i++ {
		ch := n.ChildNode(i)
		chx, chy := ch.Center(g)
		s.Line(cx, cy, chx, chy, r.theme.Connector)
		r.node(s, ch, g)
	}
	s.Circle(cx, cy, r.theme.Radius, r.theme.color(n.TagName()))
	if r.theme.Labeled[n.TagName()] {
		s.Text(cx+r.theme.Radius+2, cy, n.TagName(), r.theme.Label)
	}
}

// BackGlyph draws the back-navigation affordance: a small left-pointing
// triangle in the top-left corner region. Views draw it whenever their
// navigation stack is non-empty.
func (r *Renderer) BackGlyph(s Surface) {
	s.Triangle(Point{X: 16, Y: 4}, Point{X: 16, Y: 16}, Point{X: 4, Y: 10}, r.theme.Glyph)
}
