package tui

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

// MockTerminal is an in-memory Terminal for tests and headless snapshots.
// It interprets the escape sequences the renderer emits (cursor moves,
// clears, attribute changes, cursor and alt-screen toggles) and keeps the
// resulting screen so tests can assert on what a real terminal would show.
type MockTerminal struct {
	width, height int
	cells         []Cell
	cursorX       int
	cursorY       int
	pen           Style
	cursorHidden  bool
	inRawMode     bool
	inAltScreen   bool

	pending []byte // incomplete sequence from the previous Write

	writes     int
	bytes      int
	clearCount int
	output     []byte
	sizeErr    error
	writeErr   error

	altScreenEnterCount int
	altScreenExitCount  int
}

// Ensure MockTerminal implements Terminal.
var _ Terminal = (*MockTerminal)(nil)

// NewMockTerminal creates a new mock terminal with the given dimensions.
func NewMockTerminal(width, height int) *MockTerminal {
	m := &MockTerminal{}
	m.Resize(width, height)
	return m
}

// Size returns the terminal dimensions.
func (m *MockTerminal) Size() (width, height int, err error) {
	if m.sizeErr != nil {
		return 0, 0, m.sizeErr
	}
	return m.width, m.height, nil
}

// Write interprets p as terminal output.
func (m *MockTerminal) Write(p []byte) (int, error) {
	if m.writeErr != nil {
		return 0, m.writeErr
	}
	m.writes++
	m.bytes += len(p)
	m.output = append(m.output, p...)

	data := append(m.pending, p...)
	m.pending = nil
	for len(data) > 0 {
		n := m.consume(data)
		if n == 0 {
			m.pending = append([]byte(nil), data...)
			break
		}
		data = data[n:]
	}
	return len(p), nil
}

// consume interprets one sequence or glyph from the front of data and returns
// how many bytes it used, or 0 if data holds only an incomplete prefix.
func (m *MockTerminal) consume(data []byte) int {
	if data[0] != '\x1b' {
		if !utf8.FullRune(data) {
			return 0
		}
		r, n := utf8.DecodeRune(data)
		m.put(r)
		return n
	}
	if len(data) < 2 {
		return 0
	}
	if data[1] != '[' {
		return 2
	}
	for i := 2; i < len(data); i++ {
		if c := data[i]; c >= 0x40 && c <= 0x7e {
			m.csi(string(data[2:i]), c)
			return i + 1
		}
	}
	return 0
}

func (m *MockTerminal) csi(params string, final byte) {
	switch final {
	case 'H':
		row, col := 1, 1
		if params != "" {
			r, c, _ := strings.Cut(params, ";")
			row = atoiDefault(r, 1)
			col = atoiDefault(c, 1)
		}
		m.cursorX, m.cursorY = col-1, row-1
	case 'J':
		if params == "2" {
			m.clearCells()
			m.clearCount++
		}
	case 'm':
		switch params {
		case "", "0":
			m.pen = StyleRegular
		case "1":
			m.pen = StyleBold
		case "4":
			m.pen = StyleUnderline
		}
	case 'h', 'l':
		on := final == 'h'
		switch params {
		case "?25":
			m.cursorHidden = !on
		case "?1049":
			if on {
				m.inAltScreen = true
				m.altScreenEnterCount++
			} else {
				m.inAltScreen = false
				m.altScreenExitCount++
			}
		}
	}
}

func (m *MockTerminal) put(r rune) {
	if m.cursorX >= 0 && m.cursorX < m.width && m.cursorY >= 0 && m.cursorY < m.height {
		m.cells[m.cursorY*m.width+m.cursorX] = NewCell(r, m.pen)
	}
	m.cursorX++
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}

func (m *MockTerminal) clearCells() {
	for i := range m.cells {
		m.cells[i] = blankCell
	}
}

// Clear clears the screen and homes the cursor.
func (m *MockTerminal) Clear() error {
	_, err := m.Write([]byte("\x1b[0m\x1b[2J\x1b[H"))
	return err
}

// HideCursor makes the cursor invisible.
func (m *MockTerminal) HideCursor() error {
	_, err := m.Write([]byte("\x1b[?25l"))
	return err
}

// ShowCursor makes the cursor visible.
func (m *MockTerminal) ShowCursor() error {
	_, err := m.Write([]byte("\x1b[?25h"))
	return err
}

// EnterRawMode simulates entering raw mode.
func (m *MockTerminal) EnterRawMode() error {
	m.inRawMode = true
	return nil
}

// ExitRawMode simulates exiting raw mode.
func (m *MockTerminal) ExitRawMode() error {
	m.inRawMode = false
	return nil
}

// EnterAltScreen simulates entering the alternate screen buffer.
func (m *MockTerminal) EnterAltScreen() error {
	_, err := m.Write([]byte("\x1b[?1049h"))
	return err
}

// ExitAltScreen simulates exiting the alternate screen buffer.
func (m *MockTerminal) ExitAltScreen() error {
	_, err := m.Write([]byte("\x1b[0m\x1b[?1049l"))
	return err
}

// --- Test helper methods ---

// CellAt returns the cell at the given position.
// Returns an empty Cell if out of bounds.
func (m *MockTerminal) CellAt(x, y int) Cell {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return Cell{}
	}
	return m.cells[y*m.width+x]
}

// String renders the screen to a string for snapshot testing.
// Each row is separated by a newline.
func (m *MockTerminal) String() string {
	var sb strings.Builder
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			cell := m.cells[y*m.width+x]
			if cell.Rune <= 0 {
				sb.WriteRune(' ')
			} else {
				sb.WriteRune(cell.Rune)
			}
		}
		if y < m.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// StringTrimmed returns the screen content with trailing spaces removed from each line.
func (m *MockTerminal) StringTrimmed() string {
	lines := strings.Split(m.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}

// Cursor returns the current cursor position.
func (m *MockTerminal) Cursor() (x, y int) {
	return m.cursorX, m.cursorY
}

// Pen returns the attribute the terminal currently applies to new glyphs.
func (m *MockTerminal) Pen() Style {
	return m.pen
}

// IsCursorHidden returns whether the cursor is hidden.
func (m *MockTerminal) IsCursorHidden() bool {
	return m.cursorHidden
}

// IsInRawMode returns whether the terminal is in raw mode.
func (m *MockTerminal) IsInRawMode() bool {
	return m.inRawMode
}

// IsInAltScreen returns whether the terminal is using the alternate screen buffer.
func (m *MockTerminal) IsInAltScreen() bool {
	return m.inAltScreen
}

// AltScreenEnterCount returns the number of times the alternate screen was entered.
func (m *MockTerminal) AltScreenEnterCount() int {
	return m.altScreenEnterCount
}

// AltScreenExitCount returns the number of times the alternate screen was left.
func (m *MockTerminal) AltScreenExitCount() int {
	return m.altScreenExitCount
}

// Writes returns the number of Write calls, including those made by
// Clear, HideCursor and the other control methods.
func (m *MockTerminal) Writes() int {
	return m.writes
}

// BytesWritten returns the total number of bytes written.
func (m *MockTerminal) BytesWritten() int {
	return m.bytes
}

// ClearCount returns how many times the screen was erased.
func (m *MockTerminal) ClearCount() int {
	return m.clearCount
}

// Output returns every byte written so far.
func (m *MockTerminal) Output() []byte {
	return m.output
}

// ResetOutput discards the recorded output and write counters while keeping
// the screen contents.
func (m *MockTerminal) ResetOutput() {
	m.output = nil
	m.writes = 0
	m.bytes = 0
}

// FailSize makes Size return err until called with nil.
func (m *MockTerminal) FailSize(err error) {
	m.sizeErr = err
}

// FailWrites makes every Write return err until called with nil.
func (m *MockTerminal) FailWrites(err error) {
	m.writeErr = err
}

// Resize changes the terminal dimensions. Like a real terminal resize the
// screen content is undefined afterwards; the mock blanks it.
func (m *MockTerminal) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	m.width = width
	m.height = height
	m.cells = make([]Cell, width*height)
	m.clearCells()
}

// errMockClosed is a convenience error for tests that simulate a dead terminal.
var errMockClosed = errors.New("mock terminal closed")
