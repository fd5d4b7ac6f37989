/*
Package domscope visualizes document-like trees as interactive layered
node diagrams.

A View captures a source document into a layout-annotated snapshot
(package snapshot), draws it onto an abstract surface (package render),
and routes pointer events back through coordinate hit-testing: clicking
a node drills down into its subtree, a reserved corner region navigates
back up a stack of prior snapshots, and hovering highlights the
underlying live node through a single-slot side channel. External
structural changes are handed in through OnStructuralChange, which
rebuilds the current snapshot and every stack entry from their live
source references.

All state lives in the View instance; multiple independent views may
coexist. Apart from the hover debounce timer, all work runs
synchronously within the host's event callbacks.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package domscope

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domscope.view'.
func tracer() tracing.Trace {
	return tracing.Select("domscope.view")
}
