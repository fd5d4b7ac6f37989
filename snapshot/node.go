package snapshot

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/domscope/dom"
	"github.com/npillmayer/domscope/tree"
)

// Node is one element of a captured tree, the building block of a
// snapshot. We build on top of our general purpose tree type.
type Node struct {
	tree.Node[*Node] // parent link and ordered children
	tag              string
	id               string
	attrs            map[string]string
	depth            int
	start, end       float64
	first, last      *Node    // first/last element child
	prev, next       *Node    // sibling links, wired after children are built
	source           dom.Node // non-owning handle back to the origin
	doc              *Index   // document index, non-nil on the root only
}

var _ dom.Node = (*Node)(nil)

func newNode(tag, id string, depth int, start, end float64) *Node {
	n := &Node{tag: tag, id: id, depth: depth, start: start, end: end}
	n.Payload = n // Payload will always reference the node itself
	return n
}

func (n *Node) String() string {
	if n.id != "" {
		return fmt.Sprintf("<%s#%s>", n.tag, n.id)
	}
	return fmt.Sprintf("<%s>", n.tag)
}

// NodeOf gets the snapshot node from a generic tree node.
func NodeOf(n *tree.Node[*Node]) *Node {
	if n == nil {
		return nil
	}
	return n.Payload
}

// TagName returns the category label copied from the source at build time.
func (n *Node) TagName() string { return n.tag }

// ID returns the copied identifier, or "".
func (n *Node) ID() string { return n.id }

// Depth returns the node's distance from the snapshot root (root = 0).
func (n *Node) Depth() int { return n.depth }

// Interval returns the node's horizontal layout interval [start, end).
func (n *Node) Interval() (start, end float64) { return n.start, n.end }

// AttrMap returns the copied attribute mapping. Callers must not modify
// the returned map; re-snapshotting shares it by reference.
func (n *Node) AttrMap() map[string]string { return n.attrs }

// Attrs materializes the copied attributes (part of interface dom.Node).
func (n *Node) Attrs() []dom.Attr {
	if len(n.attrs) == 0 {
		return nil
	}
	attrs := make([]dom.Attr, 0, len(n.attrs))
	for k, v := range n.attrs {
		attrs = append(attrs, dom.Attr{Key: k, Value: v})
	}
	return attrs
}

// ChildNode returns the i-th child of the snapshot, or nil.
func (n *Node) ChildNode(i int) *Node {
	ch, ok := n.Node.Child(i)
	if !ok {
		return nil
	}
	return ch.Payload
}

// Child makes Node satisfy interface dom.Node, so a snapshot may itself
// be the source of a later Build call.
func (n *Node) Child(i int) dom.Node {
	if ch := n.ChildNode(i); ch != nil {
		return ch
	}
	return nil
}

// ParentNode returns the containing snapshot node, or nil for the root.
func (n *Node) ParentNode() *Node { return NodeOf(n.Node.Parent()) }

// FirstChild returns the first child, or nil for a leaf.
func (n *Node) FirstChild() *Node { return n.first }

// LastChild returns the last child, or nil for a leaf.
func (n *Node) LastChild() *Node { return n.last }

// PrevSibling returns the preceding sibling, or nil for a first child.
func (n *Node) PrevSibling() *Node { return n.prev }

// NextSibling returns the following sibling, or nil for a last child.
func (n *Node) NextSibling() *Node { return n.next }

// Source returns the non-owning handle back to the originating source
// node. For a snapshot built from a prior snapshot this is the handle
// that snapshot referenced, not the snapshot itself.
func (n *Node) Source() dom.Node { return n.source }

// Document returns the document index. It is attached to the snapshot
// root only; for any other node Document returns nil.
func (n *Node) Document() *Index { return n.doc }

// --- Geometry --------------------------------------------------------------

// Geom bundles the geometry configuration shared by rendering and
// hit-testing: the height of one depth band, the fixed vertical offset
// of the first band, and the marker radius.
type Geom struct {
	RowHeight float64
	YOffset   float64
	Radius    float64
}

// Center returns the node's marker center on the render surface.
func (n *Node) Center(g Geom) (x, y float64) {
	x = n.start + (n.end-n.start)/2
	y = float64(n.depth)*g.RowHeight + g.YOffset
	return x, y
}
