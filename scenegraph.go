package scenegraph

import (
	"iter"

	"github.com/phroun/scenegraph/arena"
)

// SceneGraph is a rose tree of values of type T. Nodes are addressed by
// NodeIndex handles, which stay valid until the node they refer to is
// detached or removed. Child order is insertion order.
//
// A SceneGraph always has a root. The root's value is stored directly on the
// graph, never in the node arena, so the root can never be detached, moved,
// or removed; Clear and New are the only ways to reset it.
//
// SceneGraph is not safe for concurrent use. Traversals walk the graph's
// live linkage without copying it, so the graph must not be mutated while
// any traversal is in progress.
type SceneGraph[T any] struct {
	nodes        *arena.Arena[Node[T]]
	root         T
	rootChildren childList
}

// New creates a SceneGraph containing only the root, holding root as its
// value.
func New[T any](root T) *SceneGraph[T] {
	return &SceneGraph[T]{
		nodes: arena.New[Node[T]](),
		root:  root,
	}
}

// Clear drops every non-root node, leaving the root in place. Node storage
// capacity is retained, so rebuilding a graph of similar size avoids
// reallocation. To replace the root value too, make a new SceneGraph or
// assign through Root.
func (g *SceneGraph[T]) Clear() {
	g.nodes.Clear()
	g.rootChildren = childList{}
}

// Len returns the number of non-root nodes in the graph.
func (g *SceneGraph[T]) Len() int {
	return g.nodes.Len()
}

// IsEmpty reports whether the graph contains only the root.
func (g *SceneGraph[T]) IsEmpty() bool {
	return g.rootChildren.empty()
}

// AttachAtRoot attaches a node holding value as the last child of the root,
// returning a handle to it. This is a convenience wrapper around Attach that
// can never fail.
func (g *SceneGraph[T]) AttachAtRoot(value T) NodeIndex {
	idx, _ := g.Attach(Root, value)
	return idx
}

// Attach attaches a node holding value as the last child of parent,
// returning a handle to it. It returns ErrParentNotFound if parent no longer
// refers to a node in the graph; the Root parent always exists. On failure
// the graph is unchanged.
func (g *SceneGraph[T]) Attach(parent NodeIndex, value T) (NodeIndex, error) {
	idx := g.nodes.Insert(newNode(value, parent))
	if err := g.place(parent, idx); err != nil {
		g.nodes.Remove(idx)
		return NodeIndex{}, err
	}
	return branchIndex(idx), nil
}

// AttachGraph splices an entire other SceneGraph under parent. The other
// graph's root becomes an ordinary node at the returned handle, and its
// whole tree is rebuilt below that, preserving values and order. other is
// consumed: afterwards it is empty and should be discarded.
//
// Handles are not portable between graphs, so every node of other receives a
// fresh handle here.
func (g *SceneGraph[T]) AttachGraph(parent NodeIndex, other *SceneGraph[T]) (NodeIndex, error) {
	newRoot, err := g.Attach(parent, other.root)
	if err != nil {
		return NodeIndex{}, err
	}

	remap := map[NodeIndex]NodeIndex{Root: newRoot}

	it := other.IterDetachFromRoot()
	for {
		d, ok := it.Next()
		if !ok {
			break
		}
		// The parent was yielded before any of its children, so it is
		// already in the remap table.
		idx, _ := g.Attach(remap[d.ParentIndex], d.Value)
		remap[d.NodeIndex] = idx
	}

	return newRoot, nil
}

// Detach removes the subtree rooted at node and returns it as a new
// SceneGraph, with node's value as the new graph's root value. The former
// parent's child list is healed around the gap. It returns ErrNodeNotFound
// if node is the Root or no longer refers to a node.
//
// Handles are not portable between graphs: the subtree is rebuilt in the new
// graph's own arena, so handles into the detached subtree become stale.
func (g *SceneGraph[T]) Detach(node NodeIndex) (*SceneGraph[T], error) {
	if node.IsRoot() {
		return nil, ErrNodeNotFound
	}
	removed, ok := g.nodes.Remove(node.branch)
	if !ok {
		return nil, ErrNodeNotFound
	}

	detached := New(removed.Value)
	remap := map[NodeIndex]NodeIndex{node: Root}

	it := newDetachIter(g, node, removed.children)
	for {
		d, ok := it.Next()
		if !ok {
			break
		}
		idx, _ := detached.Attach(remap[d.ParentIndex], d.Value)
		remap[d.NodeIndex] = idx
	}

	g.healParent(removed.nextSibling, removed.prevSibling, removed.parent, node.branch)

	return detached, nil
}

// Remove removes the subtree rooted at node, discarding its values. This
// skips Detach's rebuilding work. It returns ErrNodeNotFound if node is the
// Root or no longer refers to a node.
func (g *SceneGraph[T]) Remove(node NodeIndex) error {
	if node.IsRoot() {
		return ErrNodeNotFound
	}
	removed, ok := g.nodes.Remove(node.branch)
	if !ok {
		return ErrNodeNotFound
	}

	it := newDetachIter(g, node, removed.children)
	it.Drain()

	g.healParent(removed.nextSibling, removed.prevSibling, removed.parent, node.branch)
	return nil
}

// MoveNode reparents node under newParent, appending it after newParent's
// current children. The node's value and handle are untouched; only linkage
// changes, in O(1). It returns ErrNodeNotFound if node is the Root, if node
// and newParent are the same, or if either handle no longer refers to a
// node; on failure the graph is unchanged.
//
// newParent must not be a descendant of node; reparenting a node into its
// own subtree would create a cycle.
func (g *SceneGraph[T]) MoveNode(node, newParent NodeIndex) error {
	if node.IsRoot() || node == newParent {
		return ErrNodeNotFound
	}
	if !g.nodes.Contains(node.branch) {
		return ErrNodeNotFound
	}
	if !newParent.IsRoot() && !g.nodes.Contains(newParent.branch) {
		return ErrNodeNotFound
	}

	n, _ := g.nodes.Get(node.branch)
	oldParent := n.parent
	n.parent = newParent

	next := n.nextSibling
	prev := n.prevSibling
	n.nextSibling = arena.Index{}
	n.prevSibling = arena.Index{}

	g.healParent(next, prev, oldParent, node.branch)

	// Both handles were checked above, so this cannot fail.
	g.place(newParent, node.branch)

	return nil
}

// Contains reports whether node refers to a node currently in the graph.
// The Root is always contained.
func (g *SceneGraph[T]) Contains(node NodeIndex) bool {
	if node.IsRoot() {
		return true
	}
	return g.nodes.Contains(node.branch)
}

// Get returns the node at the given handle. The Root always yields false:
// it is not a true node. Use Root to reach the root's value and
// IterDirectChildren to enumerate children generically.
//
// The returned pointer is invalidated by the next attach to the graph.
func (g *SceneGraph[T]) Get(node NodeIndex) (*Node[T], bool) {
	if node.IsRoot() {
		return nil, false
	}
	return g.nodes.Get(node.branch)
}

// Root returns a pointer to the root node's value.
func (g *SceneGraph[T]) Root() *T {
	return &g.root
}

// Parent returns the index of node's current parent. It reports false for
// the Root, which has no parent, and for stale handles.
func (g *SceneGraph[T]) Parent(node NodeIndex) (NodeIndex, bool) {
	n, ok := g.Get(node)
	if !ok {
		return NodeIndex{}, false
	}
	return n.parent, true
}

// Iter returns a depth-first traversal over the whole graph. See
// IterFromNode for the traversal contract.
func (g *SceneGraph[T]) Iter() *Iter[T] {
	it, _ := g.IterFromNode(Root)
	return it
}

// IterFromNode returns a depth-first traversal over the subtree below start.
// Each step yields a (parent value, node value) pair in pre-order: a parent
// before its children, siblings in insertion order, a node's subtree
// exhausted before its next sibling. start itself is not yielded. The graph
// must not be mutated while iterating.
func (g *SceneGraph[T]) IterFromNode(start NodeIndex) (*Iter[T], error) {
	var value *T
	var children childList
	if start.IsRoot() {
		value = &g.root
		children = g.rootChildren
	} else {
		n, ok := g.nodes.Get(start.branch)
		if !ok {
			return nil, ErrNodeNotFound
		}
		value = &n.Value
		children = n.children
	}
	return newIter(g, value, children), nil
}

// IterMut returns a mutable depth-first traversal over the whole graph. See
// IterMutFromNode for the traversal contract.
func (g *SceneGraph[T]) IterMut() *IterMut[T] {
	it, _ := g.IterMutFromNode(Root)
	return it
}

// IterMutFromNode is IterFromNode yielding pointers, so values can be
// edited in place. Only the yielded values may be touched during the
// traversal; the graph's structure must not be mutated, and no other
// operation may run on the graph until the iterator is exhausted.
func (g *SceneGraph[T]) IterMutFromNode(start NodeIndex) (*IterMut[T], error) {
	var value *T
	var children childList
	if start.IsRoot() {
		value = &g.root
		children = g.rootChildren
	} else {
		n, ok := g.nodes.Get(start.branch)
		if !ok {
			return nil, ErrNodeNotFound
		}
		value = &n.Value
		children = n.children
	}
	return newIterMut(g, value, children), nil
}

// IterDirectChildren returns an iterator over only the immediate children
// of parent, in insertion order. Grandchildren are not visited; for a deep
// traversal use IterFromNode. It returns ErrNodeNotFound if parent no
// longer refers to a node.
func (g *SceneGraph[T]) IterDirectChildren(parent NodeIndex) (*ChildIter[T], error) {
	list, ok := g.childListOf(parent)
	if !ok {
		return nil, ErrNodeNotFound
	}
	return newChildIter(g, *list), nil
}

// IterDetachFromRoot returns a traversal that detaches every non-root node
// from the graph as it is yielded, in the same pre-order as Iter. The root
// itself is never detached. See DetachIter for the drain contract.
func (g *SceneGraph[T]) IterDetachFromRoot() *DetachIter[T] {
	return newDetachIter(g, Root, g.rootChildren.take())
}

// IterDetach returns a detaching traversal over the subtree below node. The
// node itself is kept; all of its descendants are detached as they are
// yielded. It returns ErrNodeNotFound if node no longer refers to a node.
// See DetachIter for the drain contract.
func (g *SceneGraph[T]) IterDetach(node NodeIndex) (*DetachIter[T], error) {
	list, ok := g.childListOf(node)
	if !ok {
		return nil, ErrNodeNotFound
	}
	return newDetachIter(g, node, list.take()), nil
}

// IterOutOfOrder returns an iterator over every non-root node in arena
// order rather than tree order. This is the fastest way to visit all values
// when hierarchy does not matter. The graph must not be mutated while
// iterating.
func (g *SceneGraph[T]) IterOutOfOrder() iter.Seq2[NodeIndex, T] {
	return func(yield func(NodeIndex, T) bool) {
		for idx, n := range g.nodes.All() {
			if !yield(branchIndex(idx), n.Value) {
				return
			}
		}
	}
}

// childListOf returns a pointer to the child list owned by parent, which is
// either the graph's root list or a branch node's. It reports false when a
// branch handle is stale.
func (g *SceneGraph[T]) childListOf(parent NodeIndex) (*childList, bool) {
	if parent.IsRoot() {
		return &g.rootChildren, true
	}
	n, ok := g.nodes.Get(parent.branch)
	if !ok {
		return nil, false
	}
	return &n.children, true
}

// place links an already-inserted node as the last child of parent. Shared
// by Attach and MoveNode; the node's own sibling pointers must be clear.
func (g *SceneGraph[T]) place(parent NodeIndex, node arena.Index) error {
	list, ok := g.childListOf(parent)
	if !ok {
		return ErrParentNotFound
	}

	if list.empty() {
		*list = childList{first: node, last: node}
		return nil
	}

	oldLast := list.last
	list.last = node

	// The node being placed is never already linked under parent, so the
	// two slots are distinct.
	tail, placed := g.nodes.GetTwo(oldLast, node)
	tail.nextSibling = node
	placed.prevSibling = oldLast
	return nil
}

// healParent splices a removed or moved node out of its former parent's
// child list. next and prev are the sibling pointers the node held at
// removal; removed is its handle. Covers all four boundary cases: only
// child, first of many, last of many, and interior.
func (g *SceneGraph[T]) healParent(next, prev arena.Index, parent NodeIndex, removed arena.Index) {
	list, ok := g.childListOf(parent)
	if !ok {
		// The parent was detached along with the node; nothing to heal.
		return
	}

	if list.first == removed && list.last == removed {
		*list = childList{}
		return
	}

	if list.first == removed {
		list.first = next
	}
	if list.last == removed {
		list.last = prev
	}

	// Cross-link the former neighbors. Either may be absent, but not both:
	// a node with no neighbors was the only child, handled above.
	switch {
	case prev.Valid() && next.Valid():
		before, after := g.nodes.GetTwo(prev, next)
		before.nextSibling = next
		after.prevSibling = prev
	case prev.Valid():
		before, _ := g.nodes.Get(prev)
		before.nextSibling = arena.Index{}
	default:
		after, _ := g.nodes.Get(next)
		after.prevSibling = arena.Index{}
	}
}
