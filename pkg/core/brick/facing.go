package brick

import (
	"fmt"
	"strings"
)

// Facing orients a brick footprint around its anchor.
//
// The numeric order matters: generators draw a facing uniformly from [0, 4).
type Facing int

const (
	North Facing = iota
	West
	South
	East
)

// Facings lists all orientations in numeric order.
var Facings = []Facing{North, West, South, East}

var facingNames = [...]string{"north", "west", "south", "east"}

// String returns the lowercase name of f.
func (f Facing) String() string {
	if f.Valid() {
		return facingNames[f]
	}
	return fmt.Sprintf("facing(%d)", int(f))
}

// Valid reports whether f is one of the four orientations.
func (f Facing) Valid() bool {
	return f >= North && f <= East
}

// Rotated reports whether the footprint's width runs along the y axis.
func (f Facing) Rotated() bool {
	return f == West || f == East
}

// ParseFacing parses a facing name (case-insensitive) or its single-letter form.
func ParseFacing(s string) (Facing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n":
		return North, nil
	case "west", "w":
		return West, nil
	case "south", "s":
		return South, nil
	case "east", "e":
		return East, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFacing, s)
}

// MarshalText implements encoding.TextMarshaler.
func (f Facing) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFacing, int(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Facing) UnmarshalText(b []byte) error {
	v, err := ParseFacing(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
