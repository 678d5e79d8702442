package tui

import "strings"

// unknownCell marks a front-buffer cell whose on-screen content is unknown.
// It never equals a painted cell, so the next render rewrites it.
var unknownCell = Cell{Rune: -1}

// Buffer is a double-buffered 2D grid of cells.
// Writes go to the back buffer; Render computes the diff against the front
// buffer (what the terminal shows) and promotes back to front.
type Buffer struct {
	front  []Cell // Currently displayed state
	back   []Cell // State being built
	width  int
	height int
}

// CellChange represents a single cell that differs between front and back buffers.
type CellChange struct {
	X, Y int
	Cell Cell
}

// NewBuffer creates a new double-buffered grid of the specified dimensions.
// Both buffers are initialized with blank cells, matching a freshly cleared screen.
func NewBuffer(width, height int) *Buffer {
	width = max(width, 0)
	height = max(height, 0)

	size := width * height
	front := make([]Cell, size)
	back := make([]Cell, size)
	for i := range front {
		front[i] = blankCell
		back[i] = blankCell
	}

	return &Buffer{
		front:  front,
		back:   back,
		width:  width,
		height: height,
	}
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in rows.
func (b *Buffer) Height() int {
	return b.height
}

// Size returns the buffer dimensions (width, height).
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// Rect returns the buffer bounds as a Rect starting at (0, 0).
func (b *Buffer) Rect() Rect {
	return NewRect(0, 0, b.width, b.height)
}

// idx converts (x, y) coordinates to a flat index.
// Returns -1 if out of bounds.
func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the cell at position (x, y) from the back buffer.
// Returns an empty Cell if the position is out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	idx := b.idx(x, y)
	if idx < 0 {
		return Cell{}
	}
	return b.back[idx]
}

// FrontCell returns the cell at (x, y) as last committed to the terminal.
func (b *Buffer) FrontCell(x, y int) Cell {
	idx := b.idx(x, y)
	if idx < 0 {
		return Cell{}
	}
	return b.front[idx]
}

// SetCell sets the cell at position (x, y) in the back buffer.
// Does nothing if the position is out of bounds.
func (b *Buffer) SetCell(x, y int, c Cell) {
	idx := b.idx(x, y)
	if idx < 0 {
		return
	}
	b.back[idx] = c
}

// Clear clears the entire back buffer to blank cells.
func (b *Buffer) Clear() {
	for i := range b.back {
		b.back[i] = blankCell
	}
}

// ClearRect clears a rectangular region of the back buffer to blank cells.
func (b *Buffer) ClearRect(rect Rect) {
	rect = rect.Intersect(b.Rect())
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			b.back[y*b.width+x] = blankCell
		}
	}
}

// Diff returns all cells that changed between front and back buffers.
// Cells are returned in row-major order (top-to-bottom, left-to-right).
func (b *Buffer) Diff() []CellChange {
	var changes []CellChange
	for i := range b.back {
		if b.back[i] != b.front[i] {
			changes = append(changes, CellChange{X: i % b.width, Y: i / b.width, Cell: b.back[i]})
		}
	}
	return changes
}

// Swap copies the back buffer to the front buffer.
// Call this after flushing changes to the terminal.
func (b *Buffer) Swap() {
	copy(b.front, b.back)
}

// Invalidate marks every front cell as unknown so the next render rewrites
// the whole screen. Use it after anything outside the renderer touched the
// terminal (a clear, a resize).
func (b *Buffer) Invalidate() {
	for i := range b.front {
		b.front[i] = unknownCell
	}
}

// Resize reallocates both buffers for the new dimensions. The back buffer is
// cleared and the front buffer invalidated, so every cell counts as changed
// once on the next render.
func (b *Buffer) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)

	if width == b.width && height == b.height {
		return
	}

	size := width * height
	b.front = make([]Cell, size)
	b.back = make([]Cell, size)
	b.width = width
	b.height = height

	b.Clear()
	b.Invalidate()
}

// String renders the back buffer to a string for debugging.
// Each row is separated by a newline.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			cell := b.back[y*b.width+x]
			if cell.Rune <= 0 {
				sb.WriteRune(' ')
			} else {
				sb.WriteRune(cell.Rune)
			}
		}
		if y < b.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// StringTrimmed returns the back buffer content with trailing spaces removed from each line.
func (b *Buffer) StringTrimmed() string {
	lines := strings.Split(b.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}
