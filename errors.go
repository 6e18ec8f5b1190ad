// Package scenegraph provides a generic rose tree ("scene graph"): a single
// root with ordered children, each of which may have ordered children of its
// own. Subtrees can be attached, detached, and moved in O(1) amortized time,
// node handles stay stable across mutation, and the graph can be traversed
// depth-first (read-only or mutably), over direct children only, or
// destructively, detaching nodes as they are yielded.
package scenegraph

import "errors"

var (
	// ErrParentNotFound indicates that the parent handle passed to an
	// attach operation no longer refers to a node in the graph.
	ErrParentNotFound = errors.New("parent node not found")

	// ErrNodeNotFound indicates that a handle does not refer to a node in
	// the graph, or that the root was passed where a branch is required.
	ErrNodeNotFound = errors.New("node does not exist")
)
