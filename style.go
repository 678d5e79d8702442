package tui

// Style is the text attribute applied to a cell.
// Exactly one attribute is active at a time.
type Style uint8

const (
	// StyleRegular renders text without attributes.
	StyleRegular Style = iota
	// StyleBold renders bold/bright text.
	StyleBold
	// StyleUnderline underlines the text.
	StyleUnderline
)

// String returns the name of the style.
func (s Style) String() string {
	switch s {
	case StyleRegular:
		return "regular"
	case StyleBold:
		return "bold"
	case StyleUnderline:
		return "underline"
	default:
		return "unknown"
	}
}

// sgr returns the SGR parameter that selects this style after a reset.
// StyleRegular has no parameter beyond the reset itself.
func (s Style) sgr() byte {
	switch s {
	case StyleBold:
		return '1'
	case StyleUnderline:
		return '4'
	default:
		return '0'
	}
}
