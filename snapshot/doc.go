/*
Package snapshot captures a live document-like tree into an immutable
tree of layout-annotated nodes.

A snapshot is created in one atomic top-down traversal (see Build). Each
node records its depth and a horizontal interval [Start, End); the
intervals of a node's children partition the parent's interval equally,
in child order. The root node additionally carries a document index with
identifier and category lookups. Snapshots are never mutated after the
building call returns; a rebuild produces a new tree.

Locate maps a surface coordinate back to the node whose marker occupies
it, inverting the layout for interactive use.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package snapshot

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domscope.snapshot'.
func tracer() tracing.Trace {
	return tracing.Select("domscope.snapshot")
}
