package tui

import (
	"errors"
	"testing"
)

func TestMockTerminal_InterpretsOutput(t *testing.T) {
	m := NewMockTerminal(6, 3)

	m.Write([]byte("\x1b[2;3Hab\x1b[0m\x1b[1mC\x1b[Hz"))

	if got, want := m.StringTrimmed(), "z\n  abC\n"; got != want {
		t.Errorf("StringTrimmed() = %q, want %q", got, want)
	}
	if got := m.CellAt(4, 1).Style; got != StyleBold {
		t.Errorf("CellAt(4, 1).Style = %v, want %v", got, StyleBold)
	}
	if x, y := m.Cursor(); x != 1 || y != 0 {
		t.Errorf("Cursor() = (%d, %d), want (1, 0)", x, y)
	}
}

func TestMockTerminal_SplitSequences(t *testing.T) {
	m := NewMockTerminal(5, 2)
	seq := []byte("\x1b[2;4H═")

	// Feed one byte at a time, splitting the escape and the UTF-8 rune.
	for i := range seq {
		m.Write(seq[i : i+1])
	}

	if got := m.CellAt(3, 1).Rune; got != '═' {
		t.Errorf("CellAt(3, 1) = %q, want '═'", got)
	}
}

func TestMockTerminal_ModeTracking(t *testing.T) {
	m := NewMockTerminal(4, 2)

	m.EnterRawMode()
	m.EnterAltScreen()
	m.HideCursor()
	if !m.IsInRawMode() || !m.IsInAltScreen() || !m.IsCursorHidden() {
		t.Errorf("modes = raw %v, alt %v, hidden %v; want all true", m.IsInRawMode(), m.IsInAltScreen(), m.IsCursorHidden())
	}

	m.ShowCursor()
	m.ExitAltScreen()
	m.ExitRawMode()
	if m.IsInRawMode() || m.IsInAltScreen() || m.IsCursorHidden() {
		t.Errorf("modes = raw %v, alt %v, hidden %v; want all false", m.IsInRawMode(), m.IsInAltScreen(), m.IsCursorHidden())
	}
	if m.AltScreenEnterCount() != 1 || m.AltScreenExitCount() != 1 {
		t.Errorf("alt screen enter/exit = %d/%d, want 1/1", m.AltScreenEnterCount(), m.AltScreenExitCount())
	}
}

func TestMockTerminal_Clear(t *testing.T) {
	m := NewMockTerminal(3, 1)
	m.Write([]byte("\x1b[1mabc"))

	if err := m.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if got := m.StringTrimmed(); got != "" {
		t.Errorf("StringTrimmed() after Clear = %q, want empty", got)
	}
	if m.Pen() != StyleRegular {
		t.Errorf("Pen() after Clear = %v, want %v", m.Pen(), StyleRegular)
	}
	if x, y := m.Cursor(); x != 0 || y != 0 {
		t.Errorf("Cursor() after Clear = (%d, %d), want (0, 0)", x, y)
	}
}

func TestMockTerminal_Failures(t *testing.T) {
	m := NewMockTerminal(3, 1)
	boom := errors.New("boom")

	m.FailSize(boom)
	if _, _, err := m.Size(); !errors.Is(err, boom) {
		t.Errorf("Size() error = %v, want %v", err, boom)
	}
	m.FailSize(nil)
	if w, h, err := m.Size(); err != nil || w != 3 || h != 1 {
		t.Errorf("Size() = %d, %d, %v; want 3, 1, nil", w, h, err)
	}

	m.FailWrites(boom)
	if _, err := m.Write([]byte("x")); !errors.Is(err, boom) {
		t.Errorf("Write() error = %v, want %v", err, boom)
	}
	if m.BytesWritten() != 0 {
		t.Errorf("BytesWritten() = %d after failed write, want 0", m.BytesWritten())
	}
}
