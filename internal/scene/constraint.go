package scene

import (
	"fmt"
	"strconv"
	"strings"

	tui "github.com/grindlemire/minitui"
)

// ParseConstraint parses "fixed(N)", "flex(N)" or "absolute(N)".
// Whitespace and case are ignored. The empty string is flex(100).
func ParseConstraint(s string) (tui.Constraint, error) {
	s = strings.ToLower(strings.ReplaceAll(s, " ", ""))
	if s == "" {
		return tui.Flex(tui.MaxFlexWeight), nil
	}

	name, rest, ok := strings.Cut(s, "(")
	if !ok || !strings.HasSuffix(rest, ")") {
		return tui.Constraint{}, fmt.Errorf("constraint %q: want kind(N)", s)
	}
	n, err := strconv.ParseUint(strings.TrimSuffix(rest, ")"), 10, 32)
	if err != nil {
		return tui.Constraint{}, fmt.Errorf("constraint %q: %w", s, err)
	}

	switch name {
	case "fixed":
		return tui.Fixed(uint32(n)), nil
	case "flex":
		if n > tui.MaxFlexWeight {
			return tui.Constraint{}, fmt.Errorf("constraint %q: %w", s, tui.ErrInvalidWeight)
		}
		return tui.Flex(uint32(n)), nil
	case "absolute":
		return tui.Absolute(uint32(n)), nil
	default:
		return tui.Constraint{}, fmt.Errorf("constraint %q: unknown kind %q", s, name)
	}
}

// ParseKind parses a container kind name.
func ParseKind(s string) (tui.Kind, error) {
	switch strings.ToLower(s) {
	case "vertical", "vrect":
		return tui.VerticalStack, nil
	case "horizontal", "hrect":
		return tui.HorizontalStack, nil
	case "overlay", "stack":
		return tui.OverlayStack, nil
	case "leaf", "":
		return tui.Leaf, nil
	default:
		return 0, fmt.Errorf("kind %q: %w", s, tui.ErrInvalidKind)
	}
}
