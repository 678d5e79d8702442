package widgets

import tui "github.com/grindlemire/minitui"

// Fill paints every cell of its rectangle with one rune.
type Fill struct {
	Rune  rune
	Style tui.Style
}

var _ tui.Widget = (*Fill)(nil)

// NewFill creates a fill of r. A zero rune fills with spaces.
func NewFill(r rune) *Fill {
	if r == 0 {
		r = ' '
	}
	return &Fill{Rune: r}
}

// Paint fills the clip.
func (f *Fill) Paint(c *tui.Canvas) {
	c.Fill(c.Clip(), f.Rune, f.Style)
}
