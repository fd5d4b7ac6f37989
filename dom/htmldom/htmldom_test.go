package htmldom

import (
	"strings"
	"testing"

	"github.com/npillmayer/domscope/dom"
)

const testPage = `<html><head><title>T</title></head>
<body id="main">
  some text
  <a href="https://x.example">link</a>
  <a name="anchor">anchor</a>
  <img src="i.png">
</body></html>`

func parsePage(t *testing.T) *Node {
	doc, err := Parse(strings.NewReader(testPage))
	if err != nil {
		t.Fatalf("cannot parse test page: %v", err)
	}
	return doc
}

func TestParseDocumentRoot(t *testing.T) {
	doc := parsePage(t)
	if doc.TagName() != "#document" {
		t.Errorf("expected tag #document for root, got %q", doc.TagName())
	}
	if !dom.IsDocument(doc) {
		t.Error("expected parsed root to be document-like, isn't")
	}
	if doc.ChildCount() != 1 {
		t.Fatalf("expected 1 element child below root, got %d", doc.ChildCount())
	}
	if html := doc.Child(0); html.TagName() != "html" {
		t.Errorf("expected child html, got %q", html.TagName())
	}
}

func TestElementChildrenOnly(t *testing.T) {
	doc := parsePage(t)
	body, err := Query(doc, "body")
	if err != nil {
		t.Fatalf("query body: %v", err)
	}
	// "some text" must not surface as a child
	if body.ChildCount() != 3 {
		t.Errorf("expected body to have 3 element children, has %d", body.ChildCount())
	}
	if body.ID() != "main" {
		t.Errorf("expected body id 'main', got %q", body.ID())
	}
	if body.Child(3) != nil || body.Child(-1) != nil {
		t.Error("expected out-of-range child access to return nil, doesn't")
	}
}

func TestAttrsMaterialized(t *testing.T) {
	doc := parsePage(t)
	a, err := Query(doc, "a[href]")
	if err != nil {
		t.Fatalf("query a[href]: %v", err)
	}
	attrs := a.Attrs()
	if len(attrs) != 1 || attrs[0].Key != "href" {
		t.Errorf("expected single href attribute, got %v", attrs)
	}
	if a.ParentNode().TagName() != "body" {
		t.Error("expected parent of link to be body, isn't")
	}
}

func TestQueryNoMatch(t *testing.T) {
	doc := parsePage(t)
	if _, err := Query(doc, "table"); err != ErrNoMatch {
		t.Errorf("expected ErrNoMatch for 'table', got %v", err)
	}
	if _, err := Query(doc, "???"); err == nil {
		t.Error("expected error for invalid selector, got none")
	}
}

func TestHighlightRoundTrip(t *testing.T) {
	doc := parsePage(t)
	img, err := Query(doc, "img")
	if err != nil {
		t.Fatalf("query img: %v", err)
	}
	prior := img.ApplyHighlight("#ff0000")
	if prior != "" {
		t.Errorf("expected empty prior style, got %q", prior)
	}
	if s := img.styleAttr(); s != "background: #ff0000" {
		t.Errorf("expected highlight style applied, got %q", s)
	}
	img.RevertHighlight(prior)
	if s := img.styleAttr(); s != "" {
		t.Errorf("expected style attribute removed after revert, got %q", s)
	}
	if len(img.HTMLNode().Attr) != 1 { // src only
		t.Errorf("expected img to end up with its original attribute set, has %v", img.HTMLNode().Attr)
	}
}

func TestHighlightPreservesExistingStyle(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<p style="color: red">x</p>`))
	if err != nil {
		t.Fatal(err)
	}
	p, err := Query(doc, "p")
	if err != nil {
		t.Fatal(err)
	}
	prior := p.ApplyHighlight("#00ff00")
	if prior != "color: red" {
		t.Errorf("expected prior style 'color: red', got %q", prior)
	}
	p.RevertHighlight(prior)
	if s := p.styleAttr(); s != "color: red" {
		t.Errorf("expected original style restored, got %q", s)
	}
}
