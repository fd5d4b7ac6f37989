/*
Package dom defines a narrow read-only capability interface for
document-like tree structures.

The snapshot builder of this module walks any tree satisfying interface
Node: a live HTML document (see sub-package htmldom), or a previously
built snapshot which is re-snapshotted during drill-down or after a
structural change. The interface deliberately exposes element children
only; text and comment nodes of a concrete DOM never surface here.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

// Attr is one materialized attribute of a source node.
type Attr struct {
	Key   string
	Value string
}

// Node is the capability set a source tree has to provide.
// Implementations must treat all methods as read-only accessors; the
// only permitted mutation of a source tree is the highlight side channel
// (see Highlightable).
type Node interface {
	TagName() string // tag / category label, lower-case; "#document" for a document root
	ID() string      // identifier, or "" if the node carries none
	ChildCount() int // number of element children
	Child(int) Node  // i-th element child, nil if out of range
	Attrs() []Attr   // materialized attribute list, may be nil
}

// Highlightable is implemented by source nodes supporting the hover
// highlight side channel. ApplyHighlight returns the prior visual state,
// which a later RevertHighlight call restores. Callers hold at most one
// outstanding highlight at a time and revert it before applying the next.
type Highlightable interface {
	ApplyHighlight(color string) (prior string)
	RevertHighlight(prior string)
}

// IsDocument reports whether n is a recognized document-like root.
// Rendering entry points use this check to short-circuit on invalid
// input; the snapshot builder itself does not validate.
func IsDocument(n Node) bool {
	if n == nil {
		return false
	}
	switch n.TagName() {
	case "#document", "html":
		return true
	}
	return false
}
