package domscope

import "github.com/npillmayer/domscope/dom"

// highlight is the single-slot lease over the hover highlight side
// channel: at most one source node carries a highlight at any time, and
// its prior visual state is restored before the lease moves on.
type highlight struct {
	target dom.Highlightable
	prior  string
}

// move transfers the lease to a new target. Moving to the current
// target is a no-op; moving to nil just clears.
func (h *highlight) move(to dom.Highlightable, color string) {
	if to == h.target {
		return
	}
	h.clear()
	if to != nil {
		h.prior = to.ApplyHighlight(color)
		h.target = to
	}
}

// clear reverts an outstanding highlight and empties the slot.
func (h *highlight) clear() {
	if h.target == nil {
		return
	}
	h.target.RevertHighlight(h.prior)
	h.target = nil
	h.prior = ""
}
