package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
)

// ErrEmptyTree is returned if a walk is started on an empty tree.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// SkipChildren may be returned by an Action to prevent descending into the
// children of a node. It will not be reported as an error.
var SkipChildren = errors.New("skip children")

// Predicate is a function type to match against nodes of a tree.
// It returns the node if it matches, nil otherwise.
type Predicate[T comparable] func(test *Node[T]) (match *Node[T], err error)

// Whatever is a predicate to match anything.
func Whatever[T comparable]() Predicate[T] {
	return func(test *Node[T]) (*Node[T], error) {
		return test, nil
	}
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf[T comparable]() Predicate[T] {
	return func(test *Node[T]) (match *Node[T], err error) {
		if test.ChildCount() == 0 {
			return test, nil
		}
		return nil, nil
	}
}

// Action is a function type to operate on tree nodes. It receives
// the node, its parent (nil for the start node), the position of node
// within the parent's children and the depth relative to the start node.
type Action[T comparable] func(n *Node[T], parent *Node[T], position int, depth int) error

// TopDown traverses a tree starting at (and including) node.
// The traversal guarantees that parents are always processed before
// their children, and that siblings are processed in order.
//
// If the action function returns an error for a node,
// the walk is aborted and the error is returned. SkipChildren will
// not descend below the node, but continue the walk.
func TopDown[T comparable](node *Node[T], action Action[T]) error {
	if node == nil {
		return ErrEmptyTree
	}
	err := topDown(node, nil, 0, 0, action)
	if errors.Is(err, SkipChildren) {
		return nil
	}
	return err
}

func topDown[T comparable](node, parent *Node[T], position, depth int, action Action[T]) error {
	if err := action(node, parent, position, depth); err != nil {
		return err
	}
	for i, ch := range node.children {
		err := topDown(ch, node, i, depth+1, action)
		if errors.Is(err, SkipChildren) {
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Collect traverses a tree top-down and returns all the nodes matching
// predicate, in document order. The start node is included.
func Collect[T comparable](node *Node[T], predicate Predicate[T]) ([]*Node[T], error) {
	var selection []*Node[T]
	err := TopDown(node, func(n, _ *Node[T], _, _ int) error {
		match, err := predicate(n)
		if err != nil {
			return err
		}
		if match != nil {
			selection = append(selection, match)
		}
		return nil
	})
	return selection, err
}
