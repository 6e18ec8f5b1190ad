package scenegraph

import "iter"

// DetachedNode is one node yielded by a DetachIter: the handles the node
// and its parent had before detachment, and the node's value. The handles
// are stale by the time they are yielded — the node is already out of the
// graph — but they let a consumer rebuild the hierarchy, as AttachGraph and
// Detach do with a remap table keyed on them.
type DetachedNode[T any] struct {
	ParentIndex NodeIndex
	NodeIndex   NodeIndex
	Value       T
}

// DetachIter consumes a subtree: every step removes the next node from the
// graph and yields it, parents before children, in the same pre-order as
// Iter.
//
// The iterator owns the whole subtree it was created for. A partially
// consumed DetachIter has already unlinked the subtree from the graph, so
// abandoning it early would strand the remaining nodes in the arena; call
// Drain before discarding an unexhausted iterator, or iterate via All,
// which drains on early exit.
type DetachIter[T any] struct {
	g      *SceneGraph[T]
	frames []detachFrame[T]
}

// detachFrame is one pending visit. The node record has already been
// removed from the arena; the frame owns it outright.
type detachFrame[T any] struct {
	parent NodeIndex
	index  NodeIndex
	node   Node[T]
}

func newDetachIter[T any](g *SceneGraph[T], head NodeIndex, children childList) *DetachIter[T] {
	it := &DetachIter[T]{g: g}
	if !children.empty() {
		first, _ := g.nodes.Remove(children.first)
		it.frames = append(it.frames, detachFrame[T]{
			parent: head,
			index:  branchIndex(children.first),
			node:   first,
		})
	}
	return it
}

// Next detaches and returns the next node, or ok == false once the subtree
// is fully consumed.
func (it *DetachIter[T]) Next() (DetachedNode[T], bool) {
	if len(it.frames) == 0 {
		return DetachedNode[T]{}, false
	}
	frame := it.frames[len(it.frames)-1]
	it.frames = it.frames[:len(it.frames)-1]

	// Sibling first, first child on top: children are popped before the
	// remaining siblings, preserving pre-order.
	if frame.node.nextSibling.Valid() {
		sibling, _ := it.g.nodes.Remove(frame.node.nextSibling)
		it.frames = append(it.frames, detachFrame[T]{
			parent: frame.parent,
			index:  branchIndex(frame.node.nextSibling),
			node:   sibling,
		})
	}
	if !frame.node.children.empty() {
		first, _ := it.g.nodes.Remove(frame.node.children.first)
		it.frames = append(it.frames, detachFrame[T]{
			parent: frame.index,
			index:  branchIndex(frame.node.children.first),
			node:   first,
		})
	}

	return DetachedNode[T]{
		ParentIndex: frame.parent,
		NodeIndex:   frame.index,
		Value:       frame.node.Value,
	}, true
}

// Drain consumes the rest of the traversal, discarding the values, so the
// subtree is fully removed from the graph.
func (it *DetachIter[T]) Drain() {
	for {
		if _, ok := it.Next(); !ok {
			return
		}
	}
}

// All returns the remainder of the traversal as a range-over-func sequence.
// Breaking out early drains the iterator first, so the subtree is removed
// in full either way.
func (it *DetachIter[T]) All() iter.Seq[DetachedNode[T]] {
	return func(yield func(DetachedNode[T]) bool) {
		defer it.Drain()
		for {
			d, ok := it.Next()
			if !ok || !yield(d) {
				return
			}
		}
	}
}
