package domscope

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"sync"
	"time"

	"github.com/npillmayer/domscope/dom"
	"github.com/npillmayer/domscope/render"
	"github.com/npillmayer/domscope/snapshot"
)

// ErrNotADocument is returned by SetDocument for roots which do not
// satisfy the document-likeness check; the view is left untouched.
var ErrNotADocument = errors.New("root is not a recognized document")

// backRegion is the square top-left corner area reserved for the
// back-navigation affordance.
const backRegion = 20.0

const defaultHoverDelay = 50 * time.Millisecond
const defaultHighlight = "#fbca04"

// View owns one rendering session: the current snapshot, the navigation
// stack of prior snapshots, and the hover highlight lease. A View is
// constructed per surface and torn down with Close.
type View struct {
	mu         sync.Mutex
	surface    render.Surface
	renderer   *render.Renderer
	theme      render.Theme
	current    *snapshot.Node
	stack      []*snapshot.Node // most recent last
	hl         highlight
	hlColor    string
	hover      *debouncer
	hoverDelay time.Duration
	onUpdate   func()
	onHover    func(*snapshot.Node)
}

// Option configures a View.
type Option func(*View)

// WithTheme sets the rendering theme.
func WithTheme(th render.Theme) Option {
	return func(v *View) { v.theme = th }
}

// WithHighlightColor sets the color applied through the hover highlight
// side channel.
func WithHighlightColor(color string) Option {
	return func(v *View) { v.hlColor = color }
}

// WithHoverDelay sets the quiescence window of the hover debounce.
func WithHoverDelay(d time.Duration) Option {
	return func(v *View) { v.hoverDelay = d }
}

// WithUpdateFunc registers a callback invoked after every repaint, so a
// host can flush the surface to the screen. The callback must not call
// back into the View synchronously.
func WithUpdateFunc(fn func()) Option {
	return func(v *View) { v.onUpdate = fn }
}

// WithHoverFunc registers a callback invoked with the node found by a
// (debounced) hover hit-test. Misses do not trigger the callback.
func WithHoverFunc(fn func(*snapshot.Node)) Option {
	return func(v *View) { v.onHover = fn }
}

// New creates a View drawing onto surface.
func New(surface render.Surface, opts ...Option) *View {
	v := &View{
		surface:    surface,
		theme:      render.DefaultTheme(),
		hlColor:    defaultHighlight,
		hoverDelay: defaultHoverDelay,
	}
	for _, opt := range opts {
		opt(v)
	}
	v.renderer = render.New(v.theme)
	v.hover = newDebouncer(v.hoverDelay, v.hoverAt)
	return v
}

// SetDocument starts a fresh session on a source document: the
// navigation stack is dropped, a new snapshot is built across the full
// surface width and rendered. Roots failing the document-likeness check
// leave the prior view on screen and return ErrNotADocument.
func (v *View) SetDocument(root dom.Node) error {
	if !dom.IsDocument(root) {
		tracer().Infof("view: root is not document-like, keeping prior view")
		return ErrNotADocument
	}
	v.SetRoot(root)
	return nil
}

// SetRoot starts a fresh session on an arbitrary subtree root,
// bypassing the document-likeness check. Hosts use it for
// selector-scoped exploration.
func (v *View) SetRoot(root dom.Node) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.hl.clear()
	v.stack = nil
	w, _ := v.surface.Size()
	v.current, _ = snapshot.Build(root, 0, w)
	v.paint()
}

// Current returns the currently displayed snapshot, or nil.
func (v *View) Current() *snapshot.Node {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current
}

// StackDepth returns the number of snapshots on the navigation stack.
func (v *View) StackDepth() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.stack)
}

// Click dispatches a pointer click at surface coordinates.
//
// A click inside the back-affordance region pops the navigation stack
// (taking precedence over hit-testing). Any other click is hit-tested
// against the current snapshot; a hit pushes the current snapshot and
// drills down into a fresh snapshot of the hit node's source subtree,
// re-partitioned across the full surface width. A miss changes nothing.
func (v *View) Click(x, y float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.current == nil {
		return
	}
	if x < backRegion && y < backRegion && len(v.stack) > 0 {
		v.current = v.stack[len(v.stack)-1]
		v.stack = v.stack[:len(v.stack)-1]
		tracer().Debugf("view: drill-up, stack depth now %d", len(v.stack))
		v.paint()
		return
	}
	hit := snapshot.Locate(v.current, x, y, v.geom())
	if hit == nil || hit.Source() == nil {
		return
	}
	v.stack = append(v.stack, v.current)
	w, _ := v.surface.Size()
	v.current, _ = snapshot.Build(hit.Source(), 0, w)
	tracer().Debugf("view: drill-down into <%s>, stack depth now %d", hit.TagName(), len(v.stack))
	v.paint()
}

// Hover dispatches a pointer movement at surface coordinates. Bursts of
// movements are debounced; only the last position within the quiescence
// window is hit-tested. A hit moves the highlight lease to the node's
// live source; a miss leaves the current highlight in place.
func (v *View) Hover(x, y float64) {
	v.hover.trigger(x, y)
}

func (v *View) hoverAt(x, y float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.current == nil {
		return
	}
	hit := snapshot.Locate(v.current, x, y, v.geom())
	if hit == nil {
		return
	}
	if target, ok := hit.Source().(dom.Highlightable); ok {
		v.hl.move(target, v.hlColor)
	}
	if v.onHover != nil {
		v.onHover(hit)
	}
}

// OnStructuralChange is the mutation boundary: the host calls it when
// the observed source tree changed structurally. The current snapshot
// and every navigation-stack entry are rebuilt from their respective
// live source references — a full rebuild, since interval widths depend
// on child counts that may have changed anywhere — and the current view
// is re-rendered. Stack order is preserved.
func (v *View) OnStructuralChange() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.current == nil {
		return
	}
	tracer().Debugf("view: structural change, rebuilding %d snapshots", len(v.stack)+1)
	for i, snap := range v.stack {
		v.stack[i] = rebuild(snap)
	}
	v.current = rebuild(v.current)
	v.paint()
}

func rebuild(snap *snapshot.Node) *snapshot.Node {
	start, end := snap.Interval()
	fresh, _ := snapshot.Build(snap.Source(), start, end)
	return fresh
}

// Refresh re-renders the current snapshot, e.g. after the host resized
// or invalidated the surface.
func (v *View) Refresh() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.current == nil {
		return
	}
	v.paint()
}

// Close tears the session down: the pending hover timer is stopped and
// an outstanding highlight is reverted.
func (v *View) Close() {
	v.hover.stop()
	v.mu.Lock()
	defer v.mu.Unlock()
	v.hl.clear()
	v.current = nil
	v.stack = nil
}

// paint redraws the whole surface from the current snapshot. Callers
// hold v.mu.
func (v *View) paint() {
	w, h := v.surface.Size()
	v.surface.Clear(0, 0, w, h)
	v.surface.FillRect(0, 0, w, h, v.theme.Background)
	v.renderer.Render(v.surface, v.current, render.RowHeight(h, v.maxDepth()))
	if len(v.stack) > 0 {
		v.renderer.BackGlyph(v.surface)
	}
	if v.onUpdate != nil {
		v.onUpdate()
	}
}

func (v *View) geom() snapshot.Geom {
	_, h := v.surface.Size()
	return v.renderer.Geom(render.RowHeight(h, v.maxDepth()))
}

func (v *View) maxDepth() int {
	if doc := v.current.Document(); doc != nil {
		return doc.MaxDepth
	}
	return 0
}
