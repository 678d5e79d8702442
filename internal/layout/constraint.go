package layout

import "fmt"

// Share specifies how a Constraint is interpreted.
type Share uint8

const (
	ShareFixed    Share = iota // Exact cell count
	ShareFlex                  // Percentage of the space left after Fixed siblings
	ShareAbsolute              // Exact cell count, centered inside an overlay
)

// MaxFlexWeight is the largest legal Flex weight (a percentage).
const MaxFlexWeight = 100

// Constraint describes how one axis of a node's size is determined.
type Constraint struct {
	Share Share
	Value uint32
}

// Fixed returns a Constraint of exactly n cells.
func Fixed(n uint32) Constraint {
	return Constraint{Share: ShareFixed, Value: n}
}

// Flex returns a Constraint taking weight percent of the remaining space.
// The weight is on a 0-100 scale.
func Flex(weight uint32) Constraint {
	return Constraint{Share: ShareFlex, Value: weight}
}

// Absolute returns a Constraint of exactly n cells that an overlay centers.
func Absolute(n uint32) Constraint {
	return Constraint{Share: ShareAbsolute, Value: n}
}

// IsFixed returns true for Fixed constraints.
func (c Constraint) IsFixed() bool { return c.Share == ShareFixed }

// IsFlex returns true for Flex constraints.
func (c Constraint) IsFlex() bool { return c.Share == ShareFlex }

// IsAbsolute returns true for Absolute constraints.
func (c Constraint) IsAbsolute() bool { return c.Share == ShareAbsolute }

// String formats the constraint the way layout description files spell it,
// e.g. "flex(20)".
func (c Constraint) String() string {
	switch c.Share {
	case ShareFixed:
		return fmt.Sprintf("fixed(%d)", c.Value)
	case ShareFlex:
		return fmt.Sprintf("flex(%d)", c.Value)
	case ShareAbsolute:
		return fmt.Sprintf("absolute(%d)", c.Value)
	default:
		return fmt.Sprintf("share%d(%d)", c.Share, c.Value)
	}
}
