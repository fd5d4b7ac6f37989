package snapshot

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "math"

// Locate maps a surface coordinate to the node whose marker occupies it,
// or nil for a miss.
//
// At each node the marker test is an axis-aligned box of half-width
// g.Radius around the marker center, checked before descending, so a
// node takes priority over its descendants. Descending follows the one
// child whose horizontal interval strictly contains x; the bounds are
// exclusive, so a coordinate exactly on a partition boundary matches
// neither neighbor and the branch reports a miss.
func Locate(n *Node, x, y float64, g Geom) *Node {
	if n == nil {
		return nil
	}
	cx, cy := n.Center(g)
	if math.Abs(x-cx) <= g.Radius && math.Abs(y-cy) <= g.Radius {
		return n
	}
	for i := 0; i < n.ChildCount(); i++ {
		ch := n.ChildNode(i)
		if x > ch.start && x < ch.end {
			// intervals partition without overlap: at most one child
			// can contain x
			return Locate(ch, x, y, g)
		}
	}
	return nil
}
