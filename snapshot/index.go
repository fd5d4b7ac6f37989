package snapshot

// Index aggregates document-level lookups, produced once per Build call
// and attached to the snapshot root. Buckets hold nodes in visit order.
type Index struct {
	IDs      map[string]*Node // identifier → owning node; on duplicates the last visited wins
	Links    []*Node          // hyperlinks carrying a target (href) attribute
	Images   []*Node          // image nodes
	Scripts  []*Node          // script nodes
	Forms    []*Node          // form nodes
	DocElem  *Node            // the html element, if encountered
	Head     *Node            // the head element, if encountered
	Body     *Node            // the body element, if encountered
	MaxDepth int              // deepest depth observed anywhere in the snapshot
}

func newIndex() *Index {
	return &Index{IDs: make(map[string]*Node)}
}

// register files a node into the identifier map and category buckets.
// Hyperlinks are only registered when a target attribute is present.
func (idx *Index) register(n *Node) {
	if n.id != "" {
		idx.IDs[n.id] = n
	}
	switch n.tag {
	case "html":
		idx.DocElem = n
	case "head":
		idx.Head = n
	case "body":
		idx.Body = n
	case "a":
		if _, ok := n.attrs["href"]; ok {
			idx.Links = append(idx.Links, n)
		}
	case "img":
		idx.Images = append(idx.Images, n)
	case "script":
		idx.Scripts = append(idx.Scripts, n)
	case "form":
		idx.Forms = append(idx.Forms, n)
	}
}
