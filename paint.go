package tui

import "fmt"

// Paint draws the subtree rooted at root into buf's back buffer using the
// rectangles from the last Layout pass.
//
// Nodes are painted in pre-order: a node's content first, then its children
// in order, so later siblings draw over earlier ones. Each node paints through
// a canvas clipped to its rectangle intersected with its parent's clip. A node
// sized Absolute on both axes (a centered overlay such as a dialog) blanks its
// rectangle before painting so it hides the layers beneath it.
func (t *Tree) Paint(root NodeID, buf *Buffer) error {
	if _, err := t.lookup(root); err != nil {
		return fmt.Errorf("paint %s: %w", root, err)
	}
	t.paint(root, NewCanvas(buf, buf.Rect()))
	return nil
}

func (t *Tree) paint(id NodeID, parent *Canvas) {
	n := &t.nodes[id.index]
	c := parent.Sub(n.rect)

	if n.width.IsAbsolute() && n.height.IsAbsolute() {
		c.Clear(n.rect)
	}
	if n.content != nil {
		n.content.Paint(c)
	}
	for _, child := range n.children {
		t.paint(child, c)
	}
}
