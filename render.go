package tui

import "fmt"

// Op is the kind of a terminal write instruction.
type Op uint8

const (
	// OpMove positions the cursor at (X, Y).
	OpMove Op = iota
	// OpStyle switches the active text attribute to Style.
	OpStyle
	// OpGlyph writes Rune at the cursor, advancing it one column.
	OpGlyph
)

// String returns the op name.
func (o Op) String() string {
	switch o {
	case OpMove:
		return "move"
	case OpStyle:
		return "style"
	case OpGlyph:
		return "glyph"
	default:
		return fmt.Sprintf("op(%d)", uint8(o))
	}
}

// Instruction is a single terminal write produced by the diff.
type Instruction struct {
	Op    Op
	X, Y  int   // OpMove target (0-indexed)
	Style Style // OpStyle attribute
	Rune  rune  // OpGlyph character
}

// Plan compares back (the frame just painted) against front (what the
// terminal shows) in row-major order and returns the writes that bring the
// terminal up to date. pen is the attribute the terminal currently has active.
//
// For each differing cell a move is emitted only when the cursor is not
// already there from writing the previous cell, and a style change only when
// the attribute differs from the last one emitted. Identical buffers produce
// no instructions.
func Plan(front, back []Cell, width int, pen Style) []Instruction {
	if width <= 0 || len(front) != len(back) {
		return nil
	}

	var out []Instruction
	curX, curY := -1, -1

	for i := range back {
		if back[i] == front[i] {
			continue
		}
		x, y := i%width, i/width
		cell := back[i]

		if curX != x || curY != y {
			out = append(out, Instruction{Op: OpMove, X: x, Y: y})
		}
		if cell.Style != pen {
			out = append(out, Instruction{Op: OpStyle, Style: cell.Style})
			pen = cell.Style
		}
		r := cell.Rune
		if r <= 0 {
			r = ' '
		}
		out = append(out, Instruction{Op: OpGlyph, Rune: r})

		// Writing a glyph advances the terminal cursor one column.
		curX, curY = x+1, y
	}

	return out
}

// encode appends the escape sequences for instrs to e.
func encode(e *escBuilder, instrs []Instruction) {
	for _, in := range instrs {
		switch in.Op {
		case OpMove:
			e.MoveTo(in.X, in.Y)
		case OpStyle:
			e.SetStyle(in.Style)
		case OpGlyph:
			e.WriteRune(in.Rune)
		}
	}
}

// EncodeInstructions returns the terminal byte stream for instrs.
func EncodeInstructions(instrs []Instruction) []byte {
	e := newEscBuilder(len(instrs) * 4)
	encode(e, instrs)
	return e.Bytes()
}

// Renderer turns buffer diffs into terminal writes. It remembers which text
// attribute the terminal has active between frames.
type Renderer struct {
	pen  Style
	esc  *escBuilder
	last []Instruction
}

// NewRenderer creates a renderer for a terminal whose attributes were just reset.
func NewRenderer() *Renderer {
	return &Renderer{esc: newEscBuilder(4096)}
}

// Reset records that the terminal's attributes were reset outside the renderer.
func (r *Renderer) Reset() {
	r.pen = StyleRegular
}

// LastInstructions returns the instructions written by the most recent Render.
// The slice is empty after a frame with no changes.
func (r *Renderer) LastInstructions() []Instruction {
	return r.last
}

// Render writes the difference between buf's back and front buffers to term
// in a single write and returns the number of cells rewritten.
//
// The back buffer is promoted to front only when at least one cell changed;
// an identical frame performs no I/O and leaves the front buffer untouched.
func (r *Renderer) Render(term Terminal, buf *Buffer) (int, error) {
	instrs := Plan(buf.front, buf.back, buf.width, r.pen)
	r.last = instrs
	if len(instrs) == 0 {
		return 0, nil
	}

	r.esc.Reset()
	encode(r.esc, instrs)
	if _, err := term.Write(r.esc.Bytes()); err != nil {
		return 0, fmt.Errorf("write frame: %w", err)
	}

	changed := 0
	for _, in := range instrs {
		switch in.Op {
		case OpStyle:
			r.pen = in.Style
		case OpGlyph:
			changed++
		}
	}

	buf.Swap()
	return changed, nil
}

// RenderFull forces a complete redraw: the terminal is cleared and every
// cell of the back buffer is written.
//
// Use this after:
//   - Initial application startup
//   - Terminal resize
//   - Recovering from external terminal corruption
func (r *Renderer) RenderFull(term Terminal, buf *Buffer) (int, error) {
	if err := term.Clear(); err != nil {
		return 0, fmt.Errorf("clear screen: %w", err)
	}
	r.Reset()
	buf.Invalidate()
	return r.Render(term, buf)
}
