package scenegraph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIterMutEmptyGraph(t *testing.T) {
	g := New("Root")

	_, _, ok := g.IterMut().Next()
	require.False(t, ok)
}

func TestIterMutEditsInPlace(t *testing.T) {
	g := New("root")
	a := g.AttachAtRoot("a")
	g.Attach(a, "a1")
	g.AttachAtRoot("b")

	it := g.IterMut()
	for {
		_, value, ok := it.Next()
		if !ok {
			break
		}
		*value = strings.ToUpper(*value)
	}

	require.Equal(t, []string{"A", "A1", "B"}, collectValues(g))
}

func TestIterMutParentPointers(t *testing.T) {
	type counter struct {
		name string
		hits int
	}

	g := New(&counter{name: "root"})
	a := g.AttachAtRoot(&counter{name: "a"})
	g.Attach(a, &counter{name: "a1"})
	g.AttachAtRoot(&counter{name: "b"})

	// Bump every yielded parent; "root" is the parent of two pairs and
	// "a" of one, counting how often each shows up as a parent.
	for parent := range g.IterMut().All() {
		(*parent).hits++
	}

	require.Equal(t, 2, (*g.Root()).hits)
	an, _ := g.Get(a)
	require.Equal(t, 1, an.Value.hits)
}

func TestIterMutNeverRepeatsANode(t *testing.T) {
	g := New("root")
	a := g.AttachAtRoot("a")
	g.Attach(a, "a1")
	g.Attach(a, "a2")
	g.AttachAtRoot("b")

	seen := make(map[*string]bool)
	it := g.IterMut()
	for {
		_, value, ok := it.Next()
		if !ok {
			break
		}
		require.False(t, seen[value], "value %q yielded twice", *value)
		seen[value] = true
	}
	require.Len(t, seen, 4)
}

func TestIterMutFromNode(t *testing.T) {
	g := New(1)
	a := g.AttachAtRoot(10)
	g.Attach(a, 100)
	g.AttachAtRoot(20)

	it, err := g.IterMutFromNode(a)
	require.NoError(t, err)
	for {
		_, value, ok := it.Next()
		if !ok {
			break
		}
		*value *= 2
	}

	// Only A's subtree was doubled; A itself and B are untouched.
	require.Equal(t, []int{10, 200, 20}, collectValues(g))
}

func TestIterMutFromStaleNode(t *testing.T) {
	g := New("root")
	a := g.AttachAtRoot("a")
	require.NoError(t, g.Remove(a))

	_, err := g.IterMutFromNode(a)
	require.ErrorIs(t, err, ErrNodeNotFound)
}
