package arena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertGet(t *testing.T) {
	a := New[string]()

	first := a.Insert("first")
	second := a.Insert("second")

	require.NotEqual(t, first, second)
	require.Equal(t, 2, a.Len())

	v, ok := a.Get(first)
	require.True(t, ok)
	require.Equal(t, "first", *v)

	v, ok = a.Get(second)
	require.True(t, ok)
	require.Equal(t, "second", *v)
}

func TestZeroIndexIsNeverIssued(t *testing.T) {
	a := New[int]()

	var zero Index
	require.False(t, zero.Valid())
	require.False(t, a.Contains(zero))

	for i := 0; i < 100; i++ {
		require.True(t, a.Insert(i).Valid())
	}
}

func TestRemove(t *testing.T) {
	a := New[string]()
	idx := a.Insert("value")

	v, ok := a.Remove(idx)
	require.True(t, ok)
	require.Equal(t, "value", v)
	require.Equal(t, 0, a.Len())
	require.False(t, a.Contains(idx))

	// Removing again is safe and reports absence.
	_, ok = a.Remove(idx)
	require.False(t, ok)
}

func TestStaleHandleAfterReuse(t *testing.T) {
	a := New[string]()
	old := a.Insert("old")
	_, ok := a.Remove(old)
	require.True(t, ok)

	// The freed slot is reused, but the old handle must stay stale.
	replacement := a.Insert("replacement")
	require.NotEqual(t, old, replacement)
	require.False(t, a.Contains(old))

	_, ok = a.Get(old)
	require.False(t, ok)

	v, ok := a.Get(replacement)
	require.True(t, ok)
	require.Equal(t, "replacement", *v)
}

func TestGetTwo(t *testing.T) {
	a := New[int]()
	x := a.Insert(1)
	y := a.Insert(2)

	px, py := a.GetTwo(x, y)
	require.NotNil(t, px)
	require.NotNil(t, py)
	*px = 10
	*py = 20

	v, _ := a.Get(x)
	require.Equal(t, 10, *v)
	v, _ = a.Get(y)
	require.Equal(t, 20, *v)
}

func TestGetTwoStaleHandle(t *testing.T) {
	a := New[int]()
	x := a.Insert(1)
	y := a.Insert(2)
	a.Remove(y)

	px, py := a.GetTwo(x, y)
	require.NotNil(t, px)
	require.Nil(t, py)
}

func TestGetTwoPanicsOnEqualHandles(t *testing.T) {
	a := New[int]()
	x := a.Insert(1)

	require.Panics(t, func() { a.GetTwo(x, x) })
}

func TestClearKeepsCapacityAndStalesHandles(t *testing.T) {
	a := New[int]()
	var handles []Index
	for i := 0; i < 10; i++ {
		handles = append(handles, a.Insert(i))
	}

	a.Clear()
	require.Equal(t, 0, a.Len())
	for _, h := range handles {
		require.False(t, a.Contains(h))
	}

	// Slots are reused after a clear.
	idx := a.Insert(99)
	v, ok := a.Get(idx)
	require.True(t, ok)
	require.Equal(t, 99, *v)
	require.Equal(t, 1, a.Len())
}

func TestZeroValueArena(t *testing.T) {
	var a Arena[int]

	idx := a.Insert(7)
	v, ok := a.Get(idx)
	require.True(t, ok)
	require.Equal(t, 7, *v)
}

func TestAll(t *testing.T) {
	a := New[int]()
	want := map[Index]int{}
	for i := 0; i < 5; i++ {
		want[a.Insert(i)] = i
	}
	// Punch a hole so iteration has to skip a free slot.
	for idx, v := range want {
		if v == 2 {
			a.Remove(idx)
			delete(want, idx)
			break
		}
	}

	got := map[Index]int{}
	for idx, v := range a.All() {
		got[idx] = *v
	}
	require.Equal(t, want, got)
}

func TestFreeSlotReuseOrder(t *testing.T) {
	a := New[int]()
	first := a.Insert(1)
	second := a.Insert(2)
	a.Insert(3)

	a.Remove(first)
	a.Remove(second)

	// The arena must not grow while free slots remain.
	a.Insert(4)
	a.Insert(5)
	require.Equal(t, 3, a.Len())
	require.Equal(t, 3, len(a.entries))
}
