package scenegraph

import (
	"iter"

	"github.com/phroun/scenegraph/arena"
)

// ChildIter iterates over only the immediate children of one node, in
// insertion order, without descending into grandchildren. It is lazy and
// finite; restart by calling IterDirectChildren again.
type ChildIter[T any] struct {
	g       *SceneGraph[T]
	current arena.Index
}

func newChildIter[T any](g *SceneGraph[T], children childList) *ChildIter[T] {
	return &ChildIter[T]{g: g, current: children.first}
}

// Next returns the next child's value, or ok == false after the last child.
func (it *ChildIter[T]) Next() (T, bool) {
	if !it.current.Valid() {
		var zero T
		return zero, false
	}
	n, _ := it.g.nodes.Get(it.current)
	it.current = n.nextSibling
	return n.Value, true
}

// All returns the remaining children as a range-over-func sequence.
func (it *ChildIter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			value, ok := it.Next()
			if !ok || !yield(value) {
				return
			}
		}
	}
}
