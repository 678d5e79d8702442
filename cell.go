package tui

// Cell represents a single character cell in the frame buffer.
// Cells are compared structurally with ==; any difference in rune, style or
// color makes the renderer rewrite the cell.
type Cell struct {
	Rune  rune  // The character (' ' for blank)
	Style Style // Text attribute
	Fg    Color // Foreground color
	Bg    Color // Background color
}

// blankCell is what a cleared buffer is filled with.
var blankCell = Cell{Rune: ' '}

// NewCell creates a new Cell with default colors.
func NewCell(r rune, style Style) Cell {
	return Cell{Rune: r, Style: style}
}

// BlankCell returns a space with regular style and default colors.
func BlankCell() Cell {
	return blankCell
}

// IsBlank returns true if the cell is a space (or zero rune) with regular style.
func (c Cell) IsBlank() bool {
	return (c.Rune == ' ' || c.Rune == 0) && c.Style == StyleRegular
}
