package snapshot

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/domscope/dom"
)

// Build captures the tree below src into a new snapshot, partitioning
// the horizontal interval [start, end) across it. src may be a live
// source node or a previously built snapshot; in the latter case the new
// snapshot references whatever the prior snapshot referenced.
//
// Interval bounds may be any finite reals with end >= start. Build does
// not validate that src is document-like; rendering entry points do that
// before calling here.
//
// The returned root carries the document index; Build returns it
// separately as a convenience.
func Build(src dom.Node, start, end float64) (*Node, *Index) {
	idx := newIndex()
	root := build(src, 0, start, end, idx)
	root.doc = idx
	tracer().Debugf("snapshot of <%s>: %d levels, interval [%g, %g)",
		root.tag, idx.MaxDepth+1, start, end)
	return root, idx
}

// build recurses pre-order, wiring sibling links after all children of a
// node have been built.
func build(src dom.Node, depth int, start, end float64, idx *Index) *Node {
	n := newNode(src.TagName(), src.ID(), depth, start, end)
	if prior, ok := src.(*Node); ok {
		// Re-snapshotting a snapshot: the attribute map is already a
		// plain copy and snapshots are immutable, so share it, and keep
		// pointing at the original source.
		n.attrs = prior.attrs
		n.source = prior.source
	} else {
		n.attrs = materialize(src.Attrs())
		n.source = src
	}
	if depth > idx.MaxDepth {
		idx.MaxDepth = depth
	}
	idx.register(n)

	cnt := src.ChildCount()
	if cnt == 0 {
		return n // a leaf never attempts interval division
	}
	width := (end - start) / float64(cnt)
	for i := 0; i < cnt; i++ {
		childStart := start + float64(i)*width
		ch := build(src.Child(i), depth+1, childStart, childStart+width, idx)
		n.AddChild(&ch.Node)
	}
	n.first = n.ChildNode(0)
	n.last = n.ChildNode(cnt - 1)
	var prev *Node
	for i := 0; i < cnt; i++ {
		ch := n.ChildNode(i)
		ch.prev = prev
		if prev != nil {
			prev.next = ch
		}
		prev = ch
	}
	return n
}

func materialize(attrs []dom.Attr) map[string]string {
	if len(attrs) == 0 {
		return nil
	}
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[a.Key] = a.Value
	}
	return m
}
