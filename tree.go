package tui

import (
	"fmt"
	"slices"
)

// Kind identifies how a node arranges its children.
type Kind uint8

const (
	// VerticalStack lays children out top to bottom; height is the primary axis.
	VerticalStack Kind = iota
	// HorizontalStack lays children out left to right; width is the primary axis.
	HorizontalStack
	// OverlayStack layers every child over the same rectangle.
	OverlayStack
	// Leaf has no children and paints widget content.
	Leaf
)

// String returns the kind name used in layout description files.
func (k Kind) String() string {
	switch k {
	case VerticalStack:
		return "vertical"
	case HorizontalStack:
		return "horizontal"
	case OverlayStack:
		return "overlay"
	case Leaf:
		return "leaf"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// NodeID is a handle to a node in a Tree.
// The zero value refers to no node. Handles of freed nodes stay invalid even
// after their slot is reused.
type NodeID struct {
	index int32
	gen   uint32
}

// NoNode is the zero NodeID.
var NoNode NodeID

// IsZero returns true for the zero NodeID.
func (id NodeID) IsZero() bool {
	return id.gen == 0
}

// String returns a short debug form of the handle.
func (id NodeID) String() string {
	if id.IsZero() {
		return "node(none)"
	}
	return fmt.Sprintf("node(%d.%d)", id.index, id.gen)
}

type node struct {
	gen      uint32
	live     bool
	kind     Kind
	width    Constraint
	height   Constraint
	content  Widget
	parent   NodeID
	children []NodeID
	rect     Rect
}

// Tree is an arena of widget nodes. Nodes are addressed by NodeID and own
// their children exclusively; a node has at most one parent and can never be
// its own ancestor.
//
// A Tree is not safe for concurrent use. The frame driver owns it.
type Tree struct {
	nodes []node
	free  []int32
	live  int
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	return &Tree{}
}

// Len returns the number of live nodes.
func (t *Tree) Len() int {
	return t.live
}

// Create allocates a detached node. Content may only be attached to Leaf
// nodes; containers paint nothing themselves.
func (t *Tree) Create(kind Kind, width, height Constraint, content Widget) (NodeID, error) {
	if kind > Leaf {
		return NoNode, fmt.Errorf("create %s: %w", kind, ErrInvalidKind)
	}
	for _, c := range [...]Constraint{width, height} {
		if c.IsFlex() && c.Value > MaxFlexWeight {
			return NoNode, fmt.Errorf("create %s with %s: %w", kind, c, ErrInvalidWeight)
		}
	}
	if content != nil && kind != Leaf {
		return NoNode, fmt.Errorf("create %s: %w", kind, ErrContainerContent)
	}

	n := node{
		live:    true,
		kind:    kind,
		width:   width,
		height:  height,
		content: content,
	}

	var idx int32
	if len(t.free) > 0 {
		idx = t.free[len(t.free)-1]
		t.free = t.free[:len(t.free)-1]
		n.gen = t.nodes[idx].gen + 1
		t.nodes[idx] = n
	} else {
		idx = int32(len(t.nodes))
		n.gen = 1
		t.nodes = append(t.nodes, n)
	}
	t.live++

	return NodeID{index: idx, gen: n.gen}, nil
}

// MustCreate is like Create but panics on error.
// Use it for trees built from literals in code.
func (t *Tree) MustCreate(kind Kind, width, height Constraint, content Widget) NodeID {
	id, err := t.Create(kind, width, height, content)
	if err != nil {
		panic(err)
	}
	return id
}

// AddChild appends child to parent's children. The parent takes ownership.
//
// A directional stack rejects a child whose primary-axis constraint is
// Absolute, since Absolute only has meaning inside an overlay.
func (t *Tree) AddChild(parent, child NodeID) error {
	p, err := t.lookup(parent)
	if err != nil {
		return fmt.Errorf("add child to %s: %w", parent, err)
	}
	c, err := t.lookup(child)
	if err != nil {
		return fmt.Errorf("add %s: %w", child, err)
	}

	if p.kind == Leaf {
		return fmt.Errorf("add %s to %s: %w", child, parent, ErrLeafChildren)
	}
	if !c.parent.IsZero() {
		return fmt.Errorf("add %s to %s: %w", child, parent, ErrAlreadyAttached)
	}
	for cur := parent; !cur.IsZero(); cur = t.nodes[cur.index].parent {
		if cur == child {
			return fmt.Errorf("add %s to %s: %w", child, parent, ErrCycle)
		}
	}

	switch p.kind {
	case VerticalStack:
		if c.height.IsAbsolute() {
			return fmt.Errorf("add %s to %s: height %s: %w", child, p.kind, c.height, ErrUnsupportedConstraint)
		}
	case HorizontalStack:
		if c.width.IsAbsolute() {
			return fmt.Errorf("add %s to %s: width %s: %w", child, p.kind, c.width, ErrUnsupportedConstraint)
		}
	}

	c.parent = parent
	p.children = append(p.children, child)
	return nil
}

// Free releases the node and its whole subtree, detaching it from its parent.
func (t *Tree) Free(id NodeID) error {
	n, err := t.lookup(id)
	if err != nil {
		return fmt.Errorf("free %s: %w", id, err)
	}

	if !n.parent.IsZero() {
		p := &t.nodes[n.parent.index]
		p.children = slices.DeleteFunc(p.children, func(c NodeID) bool { return c == id })
	}
	t.freeSubtree(id)
	return nil
}

func (t *Tree) freeSubtree(id NodeID) {
	n := &t.nodes[id.index]
	for _, child := range n.children {
		t.freeSubtree(child)
	}
	*n = node{gen: n.gen}
	t.free = append(t.free, id.index)
	t.live--
}

// Contains returns true if id refers to a live node.
func (t *Tree) Contains(id NodeID) bool {
	_, err := t.lookup(id)
	return err == nil
}

// Kind returns the node's container kind.
func (t *Tree) Kind(id NodeID) (Kind, error) {
	n, err := t.lookup(id)
	if err != nil {
		return 0, err
	}
	return n.kind, nil
}

// Constraints returns the node's width and height constraints.
func (t *Tree) Constraints(id NodeID) (width, height Constraint, err error) {
	n, err := t.lookup(id)
	if err != nil {
		return Constraint{}, Constraint{}, err
	}
	return n.width, n.height, nil
}

// Children returns a copy of the node's ordered children.
func (t *Tree) Children(id NodeID) []NodeID {
	n, err := t.lookup(id)
	if err != nil {
		return nil
	}
	return slices.Clone(n.children)
}

// Parent returns the node's parent, or NoNode for a root or unknown node.
func (t *Tree) Parent(id NodeID) NodeID {
	n, err := t.lookup(id)
	if err != nil {
		return NoNode
	}
	return n.parent
}

// Widget returns the node's content, or nil.
func (t *Tree) Widget(id NodeID) Widget {
	n, err := t.lookup(id)
	if err != nil {
		return nil
	}
	return n.content
}

// Rect returns the rectangle assigned by the last layout pass.
// It is the zero Rect before the first pass.
func (t *Tree) Rect(id NodeID) Rect {
	n, err := t.lookup(id)
	if err != nil {
		return Rect{}
	}
	return n.rect
}

// Walk visits id and its descendants in pre-order (paint order).
// Returning false from fn skips the node's children.
func (t *Tree) Walk(id NodeID, fn func(id NodeID, depth int) bool) {
	if _, err := t.lookup(id); err != nil {
		return
	}
	t.walk(id, 0, fn)
}

func (t *Tree) walk(id NodeID, depth int, fn func(NodeID, int) bool) {
	if !fn(id, depth) {
		return
	}
	for _, child := range t.nodes[id.index].children {
		t.walk(child, depth+1, fn)
	}
}

// HandleInput delivers b to every InputHandler in the subtree, in paint order.
func (t *Tree) HandleInput(root NodeID, b byte) {
	t.Walk(root, func(id NodeID, _ int) bool {
		if h, ok := t.nodes[id.index].content.(InputHandler); ok {
			h.HandleInput(b)
		}
		return true
	})
}

func (t *Tree) lookup(id NodeID) (*node, error) {
	if id.IsZero() || id.index < 0 || int(id.index) >= len(t.nodes) {
		return nil, ErrInvalidNode
	}
	n := &t.nodes[id.index]
	if !n.live || n.gen != id.gen {
		return nil, ErrInvalidNode
	}
	return n, nil
}
