package widgets

import "github.com/charmbracelet/x/ansi"

// sanitize removes ANSI escape sequences from s.
func sanitize(s string) string {
	return ansi.Strip(s)
}
