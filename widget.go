package tui

// Widget is implemented by leaf content: labels, boxes, forms.
// Paint writes cells through the canvas, which is already clipped to the
// leaf's resolved rectangle.
type Widget interface {
	Paint(c *Canvas)
}

// InputHandler is implemented by widgets that react to raw input bytes.
// Widgets that don't implement it ignore input.
type InputHandler interface {
	HandleInput(b byte)
}

// WidgetFunc adapts a plain function to the Widget interface.
type WidgetFunc func(c *Canvas)

// Paint calls f(c).
func (f WidgetFunc) Paint(c *Canvas) {
	f(c)
}
