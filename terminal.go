package tui

// Terminal abstracts the terminal the renderer draws on.
// Implementations handle real ANSI terminals or mock terminals for testing.
type Terminal interface {
	// Size returns the terminal dimensions (width, height) in cells.
	Size() (width, height int, err error)

	// Write sends raw bytes (glyphs and escape sequences) to the terminal.
	Write(p []byte) (int, error)

	// Clear clears the entire screen, homes the cursor and resets attributes.
	Clear() error

	// HideCursor makes the cursor invisible.
	HideCursor() error

	// ShowCursor makes the cursor visible.
	ShowCursor() error

	// EnterRawMode puts the terminal into raw, non-blocking mode.
	// Returns an error if raw mode cannot be enabled.
	EnterRawMode() error

	// ExitRawMode restores the terminal to its previous mode.
	// Returns an error if the previous mode cannot be restored.
	ExitRawMode() error

	// EnterAltScreen switches to the alternate screen buffer.
	// This preserves the original terminal content.
	EnterAltScreen() error

	// ExitAltScreen switches back to the main screen buffer.
	ExitAltScreen() error
}
