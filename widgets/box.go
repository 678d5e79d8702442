package widgets

import tui "github.com/grindlemire/minitui"

// Box draws a border around its rectangle with an optional bold title on
// the first inner row.
type Box struct {
	Title  string
	Border BorderStyle
}

var _ tui.Widget = (*Box)(nil)

// NewBox creates a double-bordered box.
func NewBox(title string) *Box {
	return &Box{Title: sanitize(title)}
}

// Paint draws the border and title.
func (b *Box) Paint(c *tui.Canvas) {
	r := c.Bounds()
	drawBorder(c, r, b.Border, tui.StyleRegular)
	if b.Title != "" {
		c.SetString(r.X+2, r.Y+1, b.Title, tui.StyleBold)
	}
}
