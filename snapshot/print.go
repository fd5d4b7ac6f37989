package snapshot

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Sprint renders a snapshot as an indented text tree, mainly for
// debugging and for the CLI `tree` command. Each line shows the tag,
// the identifier if present, and the layout annotation.
func Sprint(n *Node) string {
	if n == nil {
		return ""
	}
	pr := tp.New()
	pr.SetValue(label(n))
	addChildren(pr, n)
	return pr.String()
}

func addChildren(branch tp.Tree, n *Node) {
	for i := 0; i < n.ChildCount(); i++ {
		ch := n.ChildNode(i)
		if ch.IsLeaf() {
			branch.AddNode(label(ch))
			continue
		}
		addChildren(branch.AddBranch(label(ch)), ch)
	}
}

func label(n *Node) string {
	name := n.tag
	if n.id != "" {
		name += "#" + n.id
	}
	return fmt.Sprintf("%s  [%.1f, %.1f) depth=%d", name, n.start, n.end, n.depth)
}
