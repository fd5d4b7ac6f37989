/*
Package htmldom adapts parsed HTML documents (golang.org/x/net/html) to
the capability interface of package dom.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmldom

import (
	"errors"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/domscope/dom"
	"golang.org/x/net/html"
)

// ErrNoMatch is returned by Query if a selector matches no element.
var ErrNoMatch = errors.New("selector does not match any element")

// Node wraps a live html.Node. The wrapper is stateless; two wrappers
// around the same html.Node are interchangeable.
type Node struct {
	htmlNode *html.Node
}

var _ dom.Node = (*Node)(nil)
var _ dom.Highlightable = (*Node)(nil)

// Parse reads and parses an HTML document, returning the document root.
func Parse(r io.Reader) (*Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Node{htmlNode: doc}, nil
}

// FromHTMLNode wraps an existing html.Node. Returns nil for nil input.
func FromHTMLNode(h *html.Node) *Node {
	if h == nil {
		return nil
	}
	return &Node{htmlNode: h}
}

// HTMLNode returns the underlying html.Node.
func (n *Node) HTMLNode() *html.Node {
	return n.htmlNode
}

// TagName returns the lower-case element tag, or "#document" for the
// document root.
func (n *Node) TagName() string {
	switch n.htmlNode.Type {
	case html.DocumentNode:
		return "#document"
	case html.ElementNode:
		return strings.ToLower(n.htmlNode.Data)
	}
	return ""
}

// ID returns the value of the id attribute, or "".
func (n *Node) ID() string {
	for _, a := range n.htmlNode.Attr {
		if a.Key == "id" {
			return a.Val
		}
	}
	return ""
}

// ChildCount returns the number of element children. Text and comment
// nodes are not counted.
func (n *Node) ChildCount() int {
	count := 0
	for c := n.htmlNode.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			count++
		}
	}
	return count
}

// Child returns the i-th element child, or nil if out of range.
func (n *Node) Child(i int) dom.Node {
	if i < 0 {
		return nil
	}
	for c := n.htmlNode.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if i == 0 {
			return &Node{htmlNode: c}
		}
		i--
	}
	return nil
}

// Attrs materializes the node's attributes into a plain list.
func (n *Node) Attrs() []dom.Attr {
	if len(n.htmlNode.Attr) == 0 {
		return nil
	}
	attrs := make([]dom.Attr, 0, len(n.htmlNode.Attr))
	for _, a := range n.htmlNode.Attr {
		attrs = append(attrs, dom.Attr{Key: a.Key, Value: a.Val})
	}
	return attrs
}

// ParentNode returns the parent element or document node, or nil.
func (n *Node) ParentNode() *Node {
	for p := n.htmlNode.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode || p.Type == html.DocumentNode {
			return &Node{htmlNode: p}
		}
	}
	return nil
}

// --- Highlight side channel ------------------------------------------------

// ApplyHighlight sets an inline background on the live node and returns
// the prior value of the style attribute. This is the single permitted
// mutation of a source tree.
func (n *Node) ApplyHighlight(color string) (prior string) {
	prior = n.styleAttr()
	n.setStyleAttr("background: " + color)
	return prior
}

// RevertHighlight restores a style attribute previously returned by
// ApplyHighlight. An empty prior removes the attribute.
func (n *Node) RevertHighlight(prior string) {
	n.setStyleAttr(prior)
}

func (n *Node) styleAttr() string {
	for _, a := range n.htmlNode.Attr {
		if a.Key == "style" {
			return a.Val
		}
	}
	return ""
}

func (n *Node) setStyleAttr(val string) {
	attrs := n.htmlNode.Attr
	for i := range attrs {
		if attrs[i].Key == "style" {
			if val == "" {
				n.htmlNode.Attr = append(attrs[:i], attrs[i+1:]...)
			} else {
				attrs[i].Val = val
			}
			return
		}
	}
	if val != "" {
		n.htmlNode.Attr = append(attrs, html.Attribute{Key: "style", Val: val})
	}
}

// --- Selector lookup -------------------------------------------------------

// Query returns the first element below n (or n itself) matching a CSS
// selector. It returns ErrNoMatch if the selector matches nothing.
func Query(n *Node, selector string) (*Node, error) {
	sel, err := cascadia.Parse(selector)
	if err != nil {
		return nil, err
	}
	if n.htmlNode.Type == html.ElementNode && sel.Match(n.htmlNode) {
		return n, nil
	}
	if m := cascadia.Query(n.htmlNode, sel); m != nil {
		return &Node{htmlNode: m}, nil
	}
	return nil, ErrNoMatch
}
