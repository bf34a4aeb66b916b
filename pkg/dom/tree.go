package dom

import (
	"errors"
	"fmt"
	"iter"
)

// NodeID addresses a node inside its Tree.
type NodeID int

const (
	// RootID is the Document node of every Tree.
	RootID NodeID = 0
	// InvalidID is returned where no node exists (the parent of the root).
	InvalidID NodeID = -1
)

var (
	// ErrNotContainer is returned when appending under a Text node.
	ErrNotContainer = errors.New("node cannot hold children")
	// ErrSecondDocument is returned when appending a Document node.
	ErrSecondDocument = errors.New("tree already has a document node")
	// ErrUnknownNode is returned for a NodeID that does not belong to the tree.
	ErrUnknownNode = errors.New("unknown node id")
)

type slot struct {
	node     Node
	parent   NodeID
	children []NodeID
}

// Tree owns a document and all of its descendants.
type Tree struct {
	slots []slot
}

// NewTree returns a tree holding only the Document root.
func NewTree() *Tree {
	return &Tree{
		slots: []slot{{node: Document{}, parent: InvalidID}},
	}
}

// Root returns the ID of the Document node.
func (t *Tree) Root() NodeID { return RootID }

// Len returns the number of nodes, the root included.
func (t *Tree) Len() int { return len(t.slots) }

// Contains reports whether id addresses a node of this tree.
func (t *Tree) Contains(id NodeID) bool {
	return id >= 0 && int(id) < len(t.slots)
}

// Node returns the node stored at id. It panics on an unknown id.
func (t *Tree) Node(id NodeID) Node {
	return t.slots[id].node
}

// Parent returns the parent of id, or InvalidID and false for the root.
func (t *Tree) Parent(id NodeID) (NodeID, bool) {
	p := t.slots[id].parent
	return p, p != InvalidID
}

// NumChildren returns how many children id has.
func (t *Tree) NumChildren(id NodeID) int {
	return len(t.slots[id].children)
}

// Append creates n as the last child of parent and returns its ID.
func (t *Tree) Append(parent NodeID, n Node) (NodeID, error) {
	if !t.Contains(parent) {
		return InvalidID, fmt.Errorf("append under %d: %w", parent, ErrUnknownNode)
	}
	if !t.slots[parent].node.Kind().IsContainer() {
		return InvalidID, fmt.Errorf("append under %d (%s): %w", parent, t.slots[parent].node.Kind(), ErrNotContainer)
	}
	if n.Kind().IsDocument() {
		return InvalidID, ErrSecondDocument
	}

	id := NodeID(len(t.slots))
	t.slots = append(t.slots, slot{node: n, parent: parent})
	t.slots[parent].children = append(t.slots[parent].children, id)
	return id, nil
}

// Children enumerates the children of id in insertion order.
// The sequence can be ranged over any number of times.
func (t *Tree) Children(id NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for _, c := range t.slots[id].children {
			if !yield(c) {
				return
			}
		}
	}
}

// Walk visits id and its descendants depth-first in pre-order.
// depth is relative to id (id itself is visited at depth 0). Returning false
// from fn skips the children of the node just visited.
func (t *Tree) Walk(id NodeID, fn func(id NodeID, depth int) bool) {
	t.walk(id, 0, fn)
}

func (t *Tree) walk(id NodeID, depth int, fn func(NodeID, int) bool) {
	if !fn(id, depth) {
		return
	}
	for _, c := range t.slots[id].children {
		t.walk(c, depth+1, fn)
	}
}

// Depth returns the maximum element nesting depth of the tree. A tree holding
// only the root (or only text) has depth 0; a single element under the root has
// depth 1. Text leaves do not add a level.
func (t *Tree) Depth() int {
	max := 0
	t.Walk(RootID, func(id NodeID, depth int) bool {
		if t.slots[id].node.Kind().IsElement() && depth > max {
			max = depth
		}
		return true
	})
	return max
}

// Elements returns the IDs of all elements in document order.
func (t *Tree) Elements() []NodeID {
	var ids []NodeID
	t.Walk(RootID, func(id NodeID, _ int) bool {
		if t.slots[id].node.Kind().IsElement() {
			ids = append(ids, id)
		}
		return true
	})
	return ids
}

// Clone returns a deep copy of the tree. Node IDs are preserved.
func (t *Tree) Clone() *Tree {
	c := &Tree{slots: make([]slot, len(t.slots))}
	for i, s := range t.slots {
		if el, ok := s.node.(*Element); ok {
			s.node = &Element{TagName: el.TagName, Attributes: append([]Attribute(nil), el.Attributes...)}
		}
		s.children = append([]NodeID(nil), s.children...)
		c.slots[i] = s
	}
	return c
}
