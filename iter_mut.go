package scenegraph

import "iter"

// IterMut is the mutable counterpart of Iter: the same pre-order traversal,
// yielding pointers so values can be edited in place.
//
// The pointers stay valid because no node is ever yielded twice in one
// traversal and the graph's storage cannot move while it runs: the
// no-mutation-during-traversal contract rules out the attaches that would
// grow the arena. Only the yielded values may be touched until the iterator
// is exhausted.
type IterMut[T any] struct {
	g      *SceneGraph[T]
	frames []iterFrame[T]
}

func newIterMut[T any](g *SceneGraph[T], parentValue *T, children childList) *IterMut[T] {
	it := &IterMut[T]{g: g}
	if !children.empty() {
		first, _ := g.nodes.Get(children.first)
		it.frames = append(it.frames, iterFrame[T]{parent: parentValue, node: first})
	}
	return it
}

// Next returns pointers to the next (parent value, node value) pair, or
// ok == false once the traversal is exhausted.
func (it *IterMut[T]) Next() (parent, value *T, ok bool) {
	if len(it.frames) == 0 {
		return nil, nil, false
	}
	frame := it.frames[len(it.frames)-1]
	it.frames = it.frames[:len(it.frames)-1]

	if frame.node.nextSibling.Valid() {
		sibling, _ := it.g.nodes.Get(frame.node.nextSibling)
		it.frames = append(it.frames, iterFrame[T]{parent: frame.parent, node: sibling})
	}
	if !frame.node.children.empty() {
		first, _ := it.g.nodes.Get(frame.node.children.first)
		it.frames = append(it.frames, iterFrame[T]{parent: &frame.node.Value, node: first})
	}

	return frame.parent, &frame.node.Value, true
}

// All returns the remainder of the traversal as a range-over-func sequence
// of (parent value, node value) pointer pairs.
func (it *IterMut[T]) All() iter.Seq2[*T, *T] {
	return func(yield func(*T, *T) bool) {
		for {
			parent, value, ok := it.Next()
			if !ok || !yield(parent, value) {
				return
			}
		}
	}
}
