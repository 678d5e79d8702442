package tui

import "github.com/mattn/go-runewidth"

// ReplacementGlyph is painted in place of runes that don't occupy exactly
// one terminal column (control characters, combining marks, wide CJK and
// emoji). The renderer advances its cursor one column per cell, so every
// painted glyph must be one column wide.
const ReplacementGlyph = '?'

// widthCondition measures runes with ambiguous-width characters (box drawing
// among them) treated as narrow, independent of the user's locale.
var widthCondition = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Canvas is the paint context handed to widgets. It writes into a Buffer
// through a clip rectangle: writes outside the clip, or outside the buffer,
// are dropped silently.
type Canvas struct {
	buf    *Buffer
	bounds Rect
	clip   Rect
}

// NewCanvas creates a canvas over buf restricted to clip.
func NewCanvas(buf *Buffer, clip Rect) *Canvas {
	return &Canvas{buf: buf, bounds: clip, clip: clip.Intersect(buf.Rect())}
}

// Bounds returns the rectangle the canvas was created for, before clipping.
// Widgets position their content relative to it; a bordered box draws its
// border along it even when part of it falls outside the clip.
func (c *Canvas) Bounds() Rect {
	return c.bounds
}

// Clip returns the active clip rectangle.
func (c *Canvas) Clip() Rect {
	return c.clip
}

// Sub returns a canvas over the same buffer whose clip is the intersection
// of r and this canvas's clip.
func (c *Canvas) Sub(r Rect) *Canvas {
	return &Canvas{buf: c.buf, bounds: r, clip: c.clip.Intersect(r)}
}

// SetCell writes r with style at (x, y) if the position is inside the clip.
func (c *Canvas) SetCell(x, y int, r rune, style Style) {
	if !c.clip.Contains(x, y) {
		return
	}
	c.buf.SetCell(x, y, NewCell(glyph(r), style))
}

// SetString writes s starting at (x, y), one rune per column, without
// wrapping. Runes falling outside the clip are dropped. Returns the number of
// columns the string spans.
func (c *Canvas) SetString(x, y int, s string, style Style) int {
	n := 0
	for _, r := range s {
		c.SetCell(x+n, y, r, style)
		n++
	}
	return n
}

// Fill fills the part of rect inside the clip with r.
func (c *Canvas) Fill(rect Rect, r rune, style Style) {
	rect = rect.Intersect(c.clip)
	g := glyph(r)
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			c.buf.SetCell(x, y, NewCell(g, style))
		}
	}
}

// Clear blanks the part of rect inside the clip.
func (c *Canvas) Clear(rect Rect) {
	c.buf.ClearRect(rect.Intersect(c.clip))
}

// glyph returns r if it occupies exactly one terminal column.
func glyph(r rune) rune {
	if r >= 0x20 && r < 0x7f {
		return r
	}
	if widthCondition.RuneWidth(r) != 1 {
		return ReplacementGlyph
	}
	return r
}
