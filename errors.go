package tui

import "errors"

var (
	// ErrInvalidNode is returned for a NodeID that was never created or was freed.
	ErrInvalidNode = errors.New("invalid node")

	// ErrLeafChildren is returned when a child is added to a Leaf node.
	ErrLeafChildren = errors.New("leaf nodes cannot have children")

	// ErrAlreadyAttached is returned when a node that already has a parent is added again.
	ErrAlreadyAttached = errors.New("node already has a parent")

	// ErrCycle is returned when adding a child would make a node its own ancestor.
	ErrCycle = errors.New("node would become its own ancestor")

	// ErrUnsupportedConstraint is returned when a container cannot interpret a child's constraint.
	ErrUnsupportedConstraint = errors.New("constraint not supported by container")

	// ErrInvalidWeight is returned for a Flex weight above 100.
	ErrInvalidWeight = errors.New("flex weight must be between 0 and 100")

	// ErrInvalidKind is returned for an unknown container kind.
	ErrInvalidKind = errors.New("invalid node kind")

	// ErrContainerContent is returned when widget content is attached to a container node.
	ErrContainerContent = errors.New("only leaf nodes can carry widget content")

	// ErrNotTerminal is returned when the input or output is not a terminal.
	ErrNotTerminal = errors.New("not a terminal")
)

// ErrClosed is returned by Tick after the app has been closed.
var ErrClosed = errors.New("app closed")
