// Package arena provides a generational arena: a slot-based container that
// hands out stable handles which remain valid until the value they refer to
// is explicitly removed. Freed slots are reused, but each reuse bumps the
// slot's generation, so a handle to a removed value can never be mistaken
// for a handle to its replacement.
package arena

import "iter"

// Index is an opaque handle into an Arena. The zero Index is never issued by
// Insert and refers to nothing; it can be used as a "no handle" sentinel.
// Index values are comparable and usable as map keys.
type Index struct {
	slot       uint32
	generation uint32
}

// Valid reports whether idx could have been issued by an Arena. It does not
// check membership in any particular arena; use Arena.Contains for that.
func (idx Index) Valid() bool {
	return idx.generation != 0
}

type entry[T any] struct {
	value T
	// generation of the live value while occupied; once the slot is freed
	// it already holds the generation the next occupant will be issued.
	generation uint32
	nextFree   uint32 // next slot in the free list, when free
	occupied   bool
}

const noFreeSlot = ^uint32(0)

// Arena is a generational arena holding values of type T.
// The zero value is an empty arena ready for use.
type Arena[T any] struct {
	entries   []entry[T]
	firstFree uint32
	length    int
}

// New creates an empty arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{firstFree: noFreeSlot}
}

// Insert places value into the arena and returns a handle to it.
// Amortized O(1); freed slots are reused before the arena grows.
func (a *Arena[T]) Insert(value T) Index {
	if len(a.entries) == 0 && a.firstFree == 0 {
		// Zero-value arena; no free list has been threaded yet.
		a.firstFree = noFreeSlot
	}

	if a.firstFree != noFreeSlot {
		slot := a.firstFree
		e := &a.entries[slot]
		a.firstFree = e.nextFree
		e.value = value
		e.occupied = true
		a.length++
		return Index{slot: slot, generation: e.generation}
	}

	a.entries = append(a.entries, entry[T]{value: value, generation: 1, occupied: true})
	a.length++
	return Index{slot: uint32(len(a.entries) - 1), generation: 1}
}

// Remove takes the value at idx out of the arena, freeing its slot.
// Removing an absent or stale handle is safe and reports false.
func (a *Arena[T]) Remove(idx Index) (T, bool) {
	e := a.lookup(idx)
	if e == nil {
		var zero T
		return zero, false
	}

	value := e.value
	var zero T
	e.value = zero
	e.occupied = false
	// Invalidate every outstanding handle to this slot.
	e.generation = idx.generation + 1
	e.nextFree = a.firstFree
	a.firstFree = idx.slot
	a.length--
	return value, true
}

// Get returns a pointer to the value at idx, or nil and false if the handle
// is stale or was never issued. The pointer stays valid until the slot is
// removed or the arena is cleared, provided no Insert happens in between
// (growth may relocate the backing storage).
func (a *Arena[T]) Get(idx Index) (*T, bool) {
	e := a.lookup(idx)
	if e == nil {
		return nil, false
	}
	return &e.value, true
}

// GetTwo returns pointers to two distinct slots at once. Either pointer is
// nil if its handle is stale or absent. GetTwo panics if a == b: callers
// that need the same slot twice hold one pointer instead.
func (a *Arena[T]) GetTwo(idxA, idxB Index) (*T, *T) {
	if idxA == idxB {
		panic("arena: GetTwo called with equal handles")
	}
	pa, _ := a.Get(idxA)
	pb, _ := a.Get(idxB)
	return pa, pb
}

// Contains reports whether idx refers to a live value in the arena.
func (a *Arena[T]) Contains(idx Index) bool {
	return a.lookup(idx) != nil
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int {
	return a.length
}

// Clear removes every value while keeping the slot storage, so the arena can
// be refilled without reallocating. All outstanding handles become stale.
func (a *Arena[T]) Clear() {
	var zero T
	a.firstFree = noFreeSlot
	for slot := len(a.entries) - 1; slot >= 0; slot-- {
		e := &a.entries[slot]
		if e.occupied {
			e.value = zero
			e.occupied = false
			e.generation++
		}
		e.nextFree = a.firstFree
		a.firstFree = uint32(slot)
	}
	a.length = 0
}

// All returns an iterator over every live value in slot order. The pair is
// the value's handle and a pointer to the value. The arena must not be
// modified while iterating.
func (a *Arena[T]) All() iter.Seq2[Index, *T] {
	return func(yield func(Index, *T) bool) {
		for slot := range a.entries {
			e := &a.entries[slot]
			if !e.occupied {
				continue
			}
			idx := Index{slot: uint32(slot), generation: e.generation}
			if !yield(idx, &e.value) {
				return
			}
		}
	}
}

func (a *Arena[T]) lookup(idx Index) *entry[T] {
	if !idx.Valid() || int(idx.slot) >= len(a.entries) {
		return nil
	}
	e := &a.entries[idx.slot]
	if !e.occupied || e.generation != idx.generation {
		return nil
	}
	return e
}
