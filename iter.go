package scenegraph

import "iter"

// Iter is a read-only depth-first traversal over a SceneGraph, yielding
// (parent value, node value) pairs in pre-order. It is lazy, finite, and
// not restartable; obtain a fresh one from Iter or IterFromNode. The walk
// keeps an explicit frame stack, so arbitrarily deep graphs never grow the
// call stack.
type Iter[T any] struct {
	g      *SceneGraph[T]
	frames []iterFrame[T]
}

// iterFrame is one pending visit: the value of the parent being descended
// from and the child currently due.
type iterFrame[T any] struct {
	parent *T
	node   *Node[T]
}

func newIter[T any](g *SceneGraph[T], parentValue *T, children childList) *Iter[T] {
	it := &Iter[T]{g: g}
	if !children.empty() {
		first, _ := g.nodes.Get(children.first)
		it.frames = append(it.frames, iterFrame[T]{parent: parentValue, node: first})
	}
	return it
}

// Next returns the next (parent value, node value) pair, or ok == false
// once the traversal is exhausted.
func (it *Iter[T]) Next() (parent, value T, ok bool) {
	if len(it.frames) == 0 {
		var zero T
		return zero, zero, false
	}
	frame := it.frames[len(it.frames)-1]
	it.frames = it.frames[:len(it.frames)-1]

	// The pending sibling goes on the stack below the first child, so the
	// whole subtree is exhausted before the sibling is visited.
	if frame.node.nextSibling.Valid() {
		sibling, _ := it.g.nodes.Get(frame.node.nextSibling)
		it.frames = append(it.frames, iterFrame[T]{parent: frame.parent, node: sibling})
	}
	if !frame.node.children.empty() {
		first, _ := it.g.nodes.Get(frame.node.children.first)
		it.frames = append(it.frames, iterFrame[T]{parent: &frame.node.Value, node: first})
	}

	return *frame.parent, frame.node.Value, true
}

// All returns the remainder of the traversal as a range-over-func sequence
// of (parent value, node value) pairs.
func (it *Iter[T]) All() iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		for {
			parent, value, ok := it.Next()
			if !ok || !yield(parent, value) {
				return
			}
		}
	}
}
