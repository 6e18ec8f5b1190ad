package scenegraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChildIterEmptyGraph(t *testing.T) {
	g := New("Root")

	it, err := g.IterDirectChildren(Root)
	require.NoError(t, err)
	_, ok := it.Next()
	require.False(t, ok)
}

func TestChildIterDoesNotDescend(t *testing.T) {
	g := New("Root")
	a := g.AttachAtRoot("A")
	g.Attach(a, "First Grandchild")
	g.Attach(a, "Second Grandchild")
	third, _ := g.Attach(a, "Third Grandchild")
	g.Attach(third, "Greatgrandchild")

	// Only A's immediate children; the great-grandchild stays hidden.
	require.Equal(t,
		[]string{"First Grandchild", "Second Grandchild", "Third Grandchild"},
		collectChildren(t, g, a))
}

func TestChildIterOfLeaf(t *testing.T) {
	g := New("Root")
	leaf := g.AttachAtRoot("Leaf")

	require.Empty(t, collectChildren(t, g, leaf))
}

func TestChildIterStaleParent(t *testing.T) {
	g := New("Root")
	gone := g.AttachAtRoot("Gone")
	require.NoError(t, g.Remove(gone))

	_, err := g.IterDirectChildren(gone)
	require.ErrorIs(t, err, ErrNodeNotFound)
}

func TestChildIterRestartsByRecreation(t *testing.T) {
	g := New("Root")
	g.AttachAtRoot("A")
	g.AttachAtRoot("B")

	first := collectChildren(t, g, Root)
	second := collectChildren(t, g, Root)
	require.Equal(t, first, second)
}
