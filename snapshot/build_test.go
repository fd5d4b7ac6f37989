package snapshot

import (
	"math"
	"testing"

	"github.com/npillmayer/domscope/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// stub is a minimal in-memory source tree for building snapshots.
type stub struct {
	tag   string
	id    string
	attrs []dom.Attr
	kids  []*stub
}

func (s *stub) TagName() string { return s.tag }
func (s *stub) ID() string      { return s.id }
func (s *stub) ChildCount() int { return len(s.kids) }
func (s *stub) Attrs() []dom.Attr {
	return s.attrs
}
func (s *stub) Child(i int) dom.Node {
	if i < 0 || i >= len(s.kids) {
		return nil
	}
	return s.kids[i]
}

func el(tag string, kids ...*stub) *stub {
	return &stub{tag: tag, kids: kids}
}

// testDocument builds:
//
//	#document
//	└── html
//	    ├── head
//	    └── body#content
//	        ├── a href=…
//	        ├── a (no target)
//	        ├── img
//	        └── div ── p
func testDocument() *stub {
	link := &stub{tag: "a", attrs: []dom.Attr{{Key: "href", Value: "https://x.example"}}}
	anchor := &stub{tag: "a", attrs: []dom.Attr{{Key: "name", Value: "top"}}}
	img := el("img")
	body := el("body", link, anchor, img, el("div", el("p")))
	body.id = "content"
	return el("#document", el("html", el("head"), body))
}

const epsilon = 1e-9

func checkPartition(t *testing.T, n *Node) {
	t.Helper()
	cnt := n.ChildCount()
	if cnt == 0 {
		return
	}
	prevEnd := n.start
	for i := 0; i < cnt; i++ {
		ch := n.ChildNode(i)
		if math.Abs(ch.start-prevEnd) > epsilon {
			t.Errorf("gap/overlap before child %d of <%s>: start=%g, want %g",
				i, n.tag, ch.start, prevEnd)
		}
		if ch.end-ch.start < 0 {
			t.Errorf("negative interval width for child %d of <%s>", i, n.tag)
		}
		prevEnd = ch.end
		checkPartition(t, ch)
	}
	if math.Abs(prevEnd-n.end) > epsilon {
		t.Errorf("children of <%s> end at %g, parent interval ends at %g", n.tag, prevEnd, n.end)
	}
}

func TestPartitionInvariant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domscope.snapshot")
	defer teardown()
	//
	root, _ := Build(testDocument(), 0, 640)
	checkPartition(t, root)
	if s, e := root.Interval(); s != 0 || e != 640 {
		t.Errorf("expected root interval [0, 640), got [%g, %g)", s, e)
	}
}

func TestSingleChildInheritsInterval(t *testing.T) {
	root, _ := Build(el("#document", el("html")), 10, 74)
	ch := root.ChildNode(0)
	if s, e := ch.Interval(); s != 10 || e != 74 {
		t.Errorf("expected only child to inherit [10, 74), got [%g, %g)", s, e)
	}
}

func TestDepthInvariant(t *testing.T) {
	root, idx := Build(testDocument(), 0, 640)
	var walk func(n *Node)
	maxDepth := 0
	walk = func(n *Node) {
		if n.depth > maxDepth {
			maxDepth = n.depth
		}
		for i := 0; i < n.ChildCount(); i++ {
			ch := n.ChildNode(i)
			if ch.depth != n.depth+1 {
				t.Errorf("child <%s> has depth %d, parent <%s> has %d", ch.tag, ch.depth, n.tag, n.depth)
			}
			if ch.ParentNode() != n {
				t.Errorf("child <%s> has wrong parent back-reference", ch.tag)
			}
			walk(ch)
		}
	}
	if root.Depth() != 0 {
		t.Errorf("expected root depth 0, got %d", root.Depth())
	}
	walk(root)
	if idx.MaxDepth != maxDepth {
		t.Errorf("index MaxDepth = %d, true max depth = %d", idx.MaxDepth, maxDepth)
	}
	if maxDepth != 4 { // #document → html → body → div → p
		t.Errorf("expected max depth 4 for test document, got %d", maxDepth)
	}
}

func TestSiblingLinkage(t *testing.T) {
	root, idx := Build(testDocument(), 0, 640)
	body := idx.Body
	if body == nil {
		t.Fatal("expected body in index, not there")
	}
	if body.FirstChild() == nil || body.LastChild() == nil {
		t.Fatal("expected body to have first/last child links")
	}
	if body.FirstChild().PrevSibling() != nil {
		t.Error("expected first child to have no previous sibling")
	}
	if body.LastChild().NextSibling() != nil {
		t.Error("expected last child to have no next sibling")
	}
	for ch := body.FirstChild(); ch != nil; ch = ch.NextSibling() {
		if ch.NextSibling() != nil && ch.NextSibling().PrevSibling() != ch {
			t.Errorf("forward/backward sibling links of <%s> inconsistent", ch.tag)
		}
	}
	if root.FirstChild() != root.LastChild() {
		t.Error("expected single-child root to have first == last")
	}
}

func TestZeroChildLeaf(t *testing.T) {
	root, _ := Build(el("img"), 0, 100)
	if root.ChildCount() != 0 {
		t.Error("expected no children for leaf source")
	}
	if root.FirstChild() != nil || root.LastChild() != nil {
		t.Error("expected leaf to have no first/last child links")
	}
}

func TestCategoryIndexing(t *testing.T) {
	_, idx := Build(testDocument(), 0, 640)
	if len(idx.Images) != 1 {
		t.Errorf("expected 1 image in index, got %d", len(idx.Images))
	}
	// only the hyperlink with a target attribute is registered
	if len(idx.Links) != 1 {
		t.Errorf("expected 1 link in index, got %d", len(idx.Links))
	}
	if idx.DocElem == nil || idx.DocElem.TagName() != "html" {
		t.Error("expected document element in index")
	}
	if idx.Head == nil || idx.Body == nil {
		t.Error("expected head and body in index")
	}
	if idx.Body.ID() != "content" {
		t.Errorf("expected body id 'content', got %q", idx.Body.ID())
	}
	if n, ok := idx.IDs["content"]; !ok || n != idx.Body {
		t.Error("expected identifier map to resolve 'content' to body")
	}
}

func TestDuplicateIdentifierLastWins(t *testing.T) {
	first := &stub{tag: "div", id: "dup"}
	second := &stub{tag: "span", id: "dup"}
	_, idx := Build(el("#document", el("html", first, second)), 0, 100)
	n, ok := idx.IDs["dup"]
	if !ok {
		t.Fatal("expected 'dup' in identifier map")
	}
	if n.TagName() != "span" {
		t.Errorf("expected last visited node to win, winner is <%s>", n.TagName())
	}
}

func equalTrees(a, b *Node) bool {
	if a.tag != b.tag || a.id != b.id || a.depth != b.depth {
		return false
	}
	if a.start != b.start || a.end != b.end {
		return false
	}
	if a.ChildCount() != b.ChildCount() {
		return false
	}
	for i := 0; i < a.ChildCount(); i++ {
		if !equalTrees(a.ChildNode(i), b.ChildNode(i)) {
			return false
		}
	}
	return true
}

func TestIdempotentRebuild(t *testing.T) {
	src := testDocument()
	a, idxA := Build(src, 0, 640)
	b, idxB := Build(src, 0, 640)
	if !equalTrees(a, b) {
		t.Error("expected two builds from unchanged source to be structurally identical")
	}
	if idxA.MaxDepth != idxB.MaxDepth || len(idxA.Links) != len(idxB.Links) ||
		len(idxA.IDs) != len(idxB.IDs) {
		t.Error("expected rebuild to produce identical index contents")
	}
}

func TestResnapshotOfSnapshot(t *testing.T) {
	src := testDocument()
	first, idx := Build(src, 0, 640)
	body := idx.Body
	// drill-down style rebuild, rooted at a node of the prior snapshot
	second, _ := Build(body, 0, 640)
	if second.TagName() != "body" {
		t.Errorf("expected re-snapshot root to be body, is <%s>", second.TagName())
	}
	if second.Depth() != 0 {
		t.Errorf("expected re-snapshot root depth 0, got %d", second.Depth())
	}
	// attribute maps of prior snapshots are reused by reference
	link := second.ChildNode(0)
	if link.AttrMap() == nil || link.AttrMap()["href"] == "" {
		t.Fatal("expected link attributes in re-snapshot")
	}
	if !sameMap(link.AttrMap(), body.FirstChild().AttrMap()) {
		t.Error("expected attribute map shared by reference on re-snapshot")
	}
	// the source handle must point through to the original source
	if second.Source() != first.ChildNode(0).ChildNode(1).Source() {
		t.Error("expected re-snapshot to reference the original source node")
	}
	checkPartition(t, second)
}

func sameMap(a, b map[string]string) bool {
	if len(a) != len(b) || len(a) == 0 {
		return len(a) == len(b)
	}
	// identity check: mutating one must show up in the other; restore after
	k := ""
	for key := range a {
		k = key
		break
	}
	old := a[k]
	a[k] = old + "·probe"
	same := b[k] == a[k]
	a[k] = old
	return same
}

func TestDegenerateInterval(t *testing.T) {
	root, _ := Build(testDocument(), 50, 50)
	checkPartition(t, root)
	if s, e := root.Interval(); s != e {
		t.Errorf("expected zero-width root interval, got [%g, %g)", s, e)
	}
}
