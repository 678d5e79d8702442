package widgets

import (
	"fmt"

	tui "github.com/grindlemire/minitui"
)

// BorderStyle represents different styles of box borders.
type BorderStyle int

const (
	// BorderDouble uses double-line box-drawing characters (═, ║, ╔, etc.)
	BorderDouble BorderStyle = iota
	// BorderSingle uses single-line box-drawing characters (─, │, ┌, etc.)
	BorderSingle
	// BorderRounded uses rounded corner characters (─, │, ╭, ╮, ╰, ╯)
	BorderRounded
	// BorderThick uses thick/heavy box-drawing characters (━, ┃, ┏, etc.)
	BorderThick
	// BorderNone draws nothing.
	BorderNone
)

var borderNames = map[string]BorderStyle{
	"double":  BorderDouble,
	"single":  BorderSingle,
	"rounded": BorderRounded,
	"thick":   BorderThick,
	"none":    BorderNone,
}

// ParseBorderStyle converts a border name used in layout files.
// The empty string selects BorderDouble.
func ParseBorderStyle(name string) (BorderStyle, error) {
	if name == "" {
		return BorderDouble, nil
	}
	b, ok := borderNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown border style %q", name)
	}
	return b, nil
}

// BorderChars holds the characters used to draw a box border.
type BorderChars struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
}

func uniform(h, v, tl, tr, bl, br rune) BorderChars {
	return BorderChars{TopLeft: tl, Top: h, TopRight: tr, Left: v, Right: v, BottomLeft: bl, Bottom: h, BottomRight: br}
}

// Chars returns the box-drawing characters for this border style.
func (b BorderStyle) Chars() BorderChars {
	switch b {
	case BorderDouble:
		return uniform('═', '║', '╔', '╗', '╚', '╝')
	case BorderSingle:
		return uniform('─', '│', '┌', '┐', '└', '┘')
	case BorderRounded:
		return uniform('─', '│', '╭', '╮', '╰', '╯')
	case BorderThick:
		return uniform('━', '┃', '┏', '┓', '┗', '┛')
	default:
		return uniform(' ', ' ', ' ', ' ', ' ', ' ')
	}
}

// drawBorder outlines r on c. Corners are drawn first, then the sides
// between them; a one-cell-wide or -high rect collapses to its corners.
func drawBorder(c *tui.Canvas, r tui.Rect, b BorderStyle, style tui.Style) {
	if b == BorderNone || r.IsEmpty() {
		return
	}
	ch := b.Chars()
	x2, y2 := r.Right()-1, r.Bottom()-1

	c.SetCell(r.X, r.Y, ch.TopLeft, style)
	c.SetCell(x2, r.Y, ch.TopRight, style)
	c.SetCell(r.X, y2, ch.BottomLeft, style)
	c.SetCell(x2, y2, ch.BottomRight, style)

	for y := r.Y + 1; y < y2; y++ {
		c.SetCell(r.X, y, ch.Left, style)
		c.SetCell(x2, y, ch.Right, style)
	}
	for x := r.X + 1; x < x2; x++ {
		c.SetCell(x, r.Y, ch.Top, style)
		c.SetCell(x, y2, ch.Bottom, style)
	}
}
