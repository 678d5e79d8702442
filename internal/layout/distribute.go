package layout

// Distribute splits extent cells along a stack's primary axis among children
// with the given constraints and returns each child's size, in order.
//
// Fixed children get their declared size. Flex children share what is left
// after all Fixed sizes are subtracted: every Flex child but the last takes
// weight percent of the space still remaining (truncating), and the last Flex
// child takes whatever remains, so integer truncation never leaves a gap.
// Sizes never exceed the space left on the axis, so when the Fixed sizes
// overflow the extent the trailing children are clipped.
//
// Absolute constraints have no meaning on a primary axis and receive 0.
func Distribute(extent int, constraints []Constraint) []int {
	if extent < 0 {
		extent = 0
	}
	sizes := make([]int, len(constraints))

	fixedSum := 0
	lastFlex := -1
	for i, c := range constraints {
		switch c.Share {
		case ShareFixed:
			fixedSum += int(c.Value)
		case ShareFlex:
			lastFlex = i
		}
	}

	remaining := max(extent-fixedSum, 0)
	spaceLeft := extent

	for i, c := range constraints {
		size := 0
		switch c.Share {
		case ShareFixed:
			size = int(c.Value)
		case ShareFlex:
			if i == lastFlex {
				size = remaining
			} else {
				size = remaining * int(min(c.Value, MaxFlexWeight)) / 100
			}
			remaining -= size
		}

		size = min(size, spaceLeft)
		sizes[i] = size
		spaceLeft -= size
	}

	return sizes
}

// Center returns a width x height rect centered inside parent.
// When the child is larger than the parent on an axis, the offset on that
// axis is clamped to zero so the child starts at the parent's origin.
func Center(parent Rect, width, height int) Rect {
	dx := max((parent.Width-width)/2, 0)
	dy := max((parent.Height-height)/2, 0)
	return Rect{X: parent.X + dx, Y: parent.Y + dy, Width: width, Height: height}
}
