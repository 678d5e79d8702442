package widgets

import (
	"strings"

	tui "github.com/grindlemire/minitui"
)

// Label draws text at the top-left of its rectangle. Newlines start a new
// row; text past the right edge is clipped, not wrapped.
type Label struct {
	Text  string
	Style tui.Style
}

var _ tui.Widget = (*Label)(nil)

// NewLabel creates a regular-style label.
func NewLabel(text string) *Label {
	return &Label{Text: sanitize(text)}
}

// Paint draws the label's lines.
func (l *Label) Paint(c *tui.Canvas) {
	r := c.Bounds()
	for i, line := range strings.Split(l.Text, "\n") {
		if i >= r.Height {
			return
		}
		c.SetString(r.X, r.Y+i, line, l.Style)
	}
}
