package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "errors"

// ErrEmptyTree is thrown if a walk is started on a nil node.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// Predicate is a function type to match against nodes of a tree.
type Predicate[T comparable] func(n *Node[T]) bool

// Whatever is a predicate to match anything (see type Predicate).
func Whatever[T comparable]() Predicate[T] {
	return func(*Node[T]) bool { return true }
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf[T comparable]() Predicate[T] {
	return func(n *Node[T]) bool { return n.IsLeaf() }
}

// Action is a function type to operate on tree nodes during a walk.
// Returning an error aborts descending below the node it was returned for.
type Action[T comparable] func(n *Node[T], parent *Node[T], position int) error

// TopDown traverses a (sub-)tree starting at (and including) node.
// The traversal guarantees that parents are always processed before
// their children. Children are visited in order.
func TopDown[T comparable](node *Node[T], action Action[T]) error {
	if node == nil {
		return ErrEmptyTree
	}
	return topDown(node, nil, 0, action)
}

func topDown[T comparable](node, parent *Node[T], position int, action Action[T]) error {
	if err := action(node, parent, position); err != nil {
		return err
	}
	for i := 0; i < node.ChildCount(); i++ {
		if ch, ok := node.Child(i); ok {
			if err := topDown(ch, node, i, action); err != nil {
				return err
			}
		}
	}
	return nil
}

// FindAll walks a (sub-)tree top-down and collects all nodes matching a
// predicate, in visit order.
func FindAll[T comparable](node *Node[T], predicate Predicate[T]) []*Node[T] {
	var selection []*Node[T]
	if node == nil || predicate == nil {
		return selection
	}
	_ = TopDown(node, func(n *Node[T], parent *Node[T], position int) error {
		if predicate(n) {
			selection = append(selection, n)
		}
		return nil
	})
	return selection
}
