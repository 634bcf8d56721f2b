package structure

import (
	"errors"
	"fmt"

	"github.com/matzehuels/brickstack/pkg/core/brick"
	bserrors "github.com/matzehuels/brickstack/pkg/errors"
)

var (
	// ErrLayerCollision is matched by placements whose footprint overlaps a
	// brick already on the target layer.
	ErrLayerCollision = errors.New("layer collision")

	// ErrOutOfBounds is matched by placements that cannot be accommodated by
	// shifting the structure, including z growth while height adjustments
	// are disabled.
	ErrOutOfBounds = errors.New("out of bounds after shift")

	// ErrCorrupt is returned by [Structure.Validate] when an invariant no
	// longer holds.
	ErrCorrupt = errors.New("structure invariant violated")
)

// Kind classifies a placement failure.
type Kind int

const (
	LayerCollision Kind = iota
	OutOfBoundsAfterShift
)

func (k Kind) String() string {
	switch k {
	case LayerCollision:
		return "layer collision"
	case OutOfBoundsAfterShift:
		return "out of bounds after shift"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// PlacementError describes a rejected [Structure.AddBrick] call.
type PlacementError struct {
	Kind     Kind
	Brick    brick.ID
	Position brick.Point
	Facing   brick.Facing
	Reason   string
}

func (e *PlacementError) Error() string {
	msg := fmt.Sprintf("place brick %d at %s %s: %s", e.Brick, e.Position, e.Facing, e.Kind)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Unwrap exposes the sentinel for errors.Is.
func (e *PlacementError) Unwrap() error {
	if e.Kind == LayerCollision {
		return ErrLayerCollision
	}
	return ErrOutOfBounds
}

// Code returns the machine-readable error code.
func (e *PlacementError) Code() bserrors.Code {
	if e.Kind == LayerCollision {
		return bserrors.ErrCodeLayerCollision
	}
	return bserrors.ErrCodeOutOfBounds
}

type spanError struct {
	axis       string
	span, size int
}

func (e spanError) Error() string {
	return fmt.Sprintf("footprint spans %d cells along %s, structure has %d", e.span, e.axis, e.size)
}

type shiftError struct {
	dx, dy int
	victim brick.ID
}

func (e shiftError) Error() string {
	return fmt.Sprintf("shifting by (%d,%d) pushes brick %d out of bounds", e.dx, e.dy, e.victim)
}

type layerError struct {
	z, height int
}

func (e layerError) Error() string {
	return fmt.Sprintf("layer %d outside [0,%d) and height adjustments are disabled", e.z, e.height)
}
