package tui

// Color identifies a terminal color. Only the terminal's default color is
// supported; the type exists so cells carry foreground and background slots
// that compare structurally.
type Color uint8

const (
	// ColorDefault uses the terminal's configured color.
	ColorDefault Color = iota
)

// IsDefault returns true if the color is the terminal default.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}
