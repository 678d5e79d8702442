package tui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ANSITerminal implements Terminal using ANSI escape sequences.
// It works with any terminal emulator that supports ANSI codes.
type ANSITerminal struct {
	out      io.Writer     // Output destination (usually os.Stdout)
	esc      *escBuilder   // Escape sequence builder
	inFd     int           // File descriptor for input (needed for raw mode), -1 if none
	outFd    int           // File descriptor for output (needed for size query), -1 if none
	rawState *rawModeState // Platform-specific raw mode state
}

// Ensure ANSITerminal implements Terminal.
var _ Terminal = (*ANSITerminal)(nil)

// NewANSITerminal creates a new ANSI terminal.
// The output writer is typically os.Stdout and the input reader is os.Stdin.
// Raw mode and size queries need both to be *os.File.
func NewANSITerminal(out io.Writer, in io.Reader) *ANSITerminal {
	t := &ANSITerminal{
		out:   out,
		esc:   newEscBuilder(64),
		inFd:  -1,
		outFd: -1,
	}

	if f, ok := out.(*os.File); ok {
		t.outFd = int(f.Fd())
	}
	if f, ok := in.(*os.File); ok {
		t.inFd = int(f.Fd())
	}

	return t
}

// IsTerminal returns true if both input and output are connected to a terminal.
func (t *ANSITerminal) IsTerminal() bool {
	return t.inFd >= 0 && t.outFd >= 0 && term.IsTerminal(t.inFd) && term.IsTerminal(t.outFd)
}

// Size returns the terminal dimensions.
func (t *ANSITerminal) Size() (width, height int, err error) {
	if t.outFd < 0 {
		return 0, 0, fmt.Errorf("query terminal size: output: %w", ErrNotTerminal)
	}
	w, h, err := getTerminalSize(t.outFd)
	if err != nil {
		// Some platforms only answer the query on the input side.
		if t.inFd >= 0 {
			if w, h, err2 := term.GetSize(t.inFd); err2 == nil {
				return w, h, nil
			}
		}
		return 0, 0, fmt.Errorf("query terminal size: %w", err)
	}
	return w, h, nil
}

// Write writes raw bytes to the terminal output.
func (t *ANSITerminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// Clear clears the entire terminal screen.
func (t *ANSITerminal) Clear() error {
	t.esc.Reset()
	t.esc.ResetStyle()
	t.esc.ClearScreen()
	t.esc.Home()
	return t.flush()
}

// HideCursor makes the cursor invisible.
func (t *ANSITerminal) HideCursor() error {
	t.esc.Reset()
	t.esc.HideCursor()
	return t.flush()
}

// ShowCursor makes the cursor visible.
func (t *ANSITerminal) ShowCursor() error {
	t.esc.Reset()
	t.esc.ShowCursor()
	return t.flush()
}

// EnterRawMode puts the terminal into raw mode.
// This is implemented in platform-specific files.
func (t *ANSITerminal) EnterRawMode() error {
	if t.inFd < 0 {
		return fmt.Errorf("enter raw mode: input: %w", ErrNotTerminal)
	}
	if t.rawState != nil {
		return nil
	}
	state, err := enableRawMode(t.inFd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	t.rawState = state
	return nil
}

// ExitRawMode restores the terminal to its previous mode.
// Calling it when raw mode is not active is a no-op.
func (t *ANSITerminal) ExitRawMode() error {
	if t.rawState == nil {
		return nil
	}
	err := disableRawMode(t.inFd, t.rawState)
	t.rawState = nil
	if err != nil {
		return fmt.Errorf("exit raw mode: %w", err)
	}
	return nil
}

// EnterAltScreen switches to the alternate screen buffer.
func (t *ANSITerminal) EnterAltScreen() error {
	t.esc.Reset()
	t.esc.EnterAltScreen()
	return t.flush()
}

// ExitAltScreen switches back to the main screen buffer.
// Attributes are reset first so the shell doesn't inherit them.
func (t *ANSITerminal) ExitAltScreen() error {
	t.esc.Reset()
	t.esc.ResetStyle()
	t.esc.ExitAltScreen()
	return t.flush()
}

func (t *ANSITerminal) flush() error {
	_, err := t.out.Write(t.esc.Bytes())
	return err
}
