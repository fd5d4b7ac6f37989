package tree

import "testing"

func buildTestTree() (*Node[string], map[string]*Node[string]) {
	nodes := make(map[string]*Node[string])
	mk := func(label string) *Node[string] {
		n := NewNode(label)
		nodes[label] = n
		return n
	}
	root := mk("root")
	a, b := mk("a"), mk("b")
	root.AddChild(a).AddChild(b)
	a.AddChild(mk("a1")).AddChild(mk("a2"))
	b.AddChild(mk("b1"))
	return root, nodes
}

func TestNodeLinking(t *testing.T) {
	root, nodes := buildTestTree()
	if root.ChildCount() != 2 {
		t.Errorf("expected root to have 2 children, has %d", root.ChildCount())
	}
	if nodes["a1"].Parent() != nodes["a"] {
		t.Error("expected parent of a1 to be a, isn't")
	}
	if i := root.IndexOfChild(nodes["b"]); i != 1 {
		t.Errorf("expected b at position 1, is at %d", i)
	}
	if ch, ok := root.Child(1); !ok || ch != nodes["b"] {
		t.Error("expected Child(1) to return b, doesn't")
	}
	if _, ok := root.Child(2); ok {
		t.Error("expected Child(2) to be out of range, isn't")
	}
	if !nodes["b1"].IsLeaf() || nodes["b"].IsLeaf() {
		t.Error("leaf classification broken")
	}
}

func TestTopDownOrder(t *testing.T) {
	root, _ := buildTestTree()
	var visited []string
	err := TopDown(root, func(n, parent *Node[string], position int) error {
		visited = append(visited, n.Payload)
		return nil
	})
	if err != nil {
		t.Fatalf("walk returned error: %v", err)
	}
	want := []string{"root", "a", "a1", "a2", "b", "b1"}
	if len(visited) != len(want) {
		t.Fatalf("expected %d visits, got %d", len(want), len(visited))
	}
	for i, label := range want {
		if visited[i] != label {
			t.Errorf("visit %d: expected %s, got %s", i, label, visited[i])
		}
	}
}

func TestTopDownEmptyTree(t *testing.T) {
	err := TopDown[string](nil, func(n, parent *Node[string], position int) error {
		return nil
	})
	if err != ErrEmptyTree {
		t.Errorf("expected ErrEmptyTree for nil node, got %v", err)
	}
}

func TestFindAllLeafs(t *testing.T) {
	root, _ := buildTestTree()
	leafs := FindAll(root, NodeIsLeaf[string]())
	if len(leafs) != 3 {
		t.Errorf("expected 3 leafs, found %d", len(leafs))
	}
	all := FindAll(root, Whatever[string]())
	if len(all) != 6 {
		t.Errorf("expected 6 nodes, found %d", len(all))
	}
}
