// layout.go re-exports layout types from internal/layout and resolves a
// Tree's geometry with them.
package tui

import (
	"fmt"

	"github.com/grindlemire/minitui/internal/layout"
)

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Constraint describes how one axis of a node's size is determined.
type Constraint = layout.Constraint

// Share specifies how a Constraint is interpreted.
type Share = layout.Share

const (
	ShareFixed    = layout.ShareFixed
	ShareFlex     = layout.ShareFlex
	ShareAbsolute = layout.ShareAbsolute
)

// MaxFlexWeight is the largest legal Flex weight.
const MaxFlexWeight = layout.MaxFlexWeight

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// Fixed creates a Constraint of exactly n cells.
func Fixed(n uint32) Constraint {
	return layout.Fixed(n)
}

// Flex creates a Constraint taking weight percent of the space left after
// Fixed siblings. The last Flex child of a stack takes all of what remains.
func Flex(weight uint32) Constraint {
	return layout.Flex(weight)
}

// Absolute creates a Constraint of exactly n cells. An overlay centers a
// child whose width and height are both Absolute.
func Absolute(n uint32) Constraint {
	return layout.Absolute(n)
}

// Layout assigns r to the node and recursively resolves the rectangles of its
// subtree according to each container's kind. Calling it again with the same
// tree and rect produces the same rectangles.
func (t *Tree) Layout(id NodeID, r Rect) error {
	if _, err := t.lookup(id); err != nil {
		return fmt.Errorf("layout %s: %w", id, err)
	}
	t.layout(id, r)
	return nil
}

func (t *Tree) layout(id NodeID, r Rect) {
	n := &t.nodes[id.index]
	n.rect = r

	if len(n.children) == 0 {
		return
	}

	switch n.kind {
	case VerticalStack:
		sizes := layout.Distribute(r.Height, t.childConstraints(n, func(c *node) Constraint { return c.height }))
		y := r.Y
		for i, child := range n.children {
			t.layout(child, Rect{X: r.X, Y: y, Width: r.Width, Height: sizes[i]})
			y += sizes[i]
		}

	case HorizontalStack:
		sizes := layout.Distribute(r.Width, t.childConstraints(n, func(c *node) Constraint { return c.width }))
		x := r.X
		for i, child := range n.children {
			t.layout(child, Rect{X: x, Y: r.Y, Width: sizes[i], Height: r.Height})
			x += sizes[i]
		}

	case OverlayStack:
		for _, child := range n.children {
			c := &t.nodes[child.index]
			if c.width.IsAbsolute() && c.height.IsAbsolute() {
				t.layout(child, layout.Center(r, int(c.width.Value), int(c.height.Value)))
			} else {
				t.layout(child, r)
			}
		}
	}
}

func (t *Tree) childConstraints(n *node, axis func(*node) Constraint) []Constraint {
	cs := make([]Constraint, len(n.children))
	for i, child := range n.children {
		cs[i] = axis(&t.nodes[child.index])
	}
	return cs
}
