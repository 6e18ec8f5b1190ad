package scenegraph

import "github.com/phroun/scenegraph/arena"

// NodeIndex identifies a node in a SceneGraph. The zero value is Root, the
// implicit, always-present root of every graph; every other value is a
// stable branch handle issued by an attach operation. NodeIndex values are
// comparable and usable as map keys.
type NodeIndex struct {
	branch arena.Index
}

// Root is the index of the root node. It is valid for every SceneGraph and
// can never be detached, moved, or removed.
var Root NodeIndex

// IsRoot reports whether idx refers to the root.
func (idx NodeIndex) IsRoot() bool {
	return !idx.branch.Valid()
}

func branchIndex(idx arena.Index) NodeIndex {
	return NodeIndex{branch: idx}
}

// Node wraps a value placed in a SceneGraph together with its links to
// neighboring nodes. The value is exported; the linkage is maintained
// exclusively by the graph.
type Node[T any] struct {
	// Value is the value stored at this node.
	Value T

	parent      NodeIndex
	children    childList
	prevSibling arena.Index
	nextSibling arena.Index
}

func newNode[T any](value T, parent NodeIndex) Node[T] {
	return Node[T]{Value: value, parent: parent}
}

// Parent returns the index of the node's current parent.
func (n *Node[T]) Parent() NodeIndex {
	return n.parent
}

// HasChildren reports whether the node has at least one child.
func (n *Node[T]) HasChildren() bool {
	return !n.children.empty()
}

// childList is the head and tail of a node's doubly linked child list.
// Both handles are zero exactly when the node has no children; a non-empty
// list never holds a stale handle.
type childList struct {
	first arena.Index
	last  arena.Index
}

func (c childList) empty() bool {
	return !c.first.Valid()
}

// take returns the list and leaves the receiver empty.
func (c *childList) take() childList {
	out := *c
	*c = childList{}
	return out
}
