package projection

import (
	"fmt"
	"strings"

	"github.com/matzehuels/brickstack/pkg/core/grid"
)

// Face selects the side a solution is viewed from.
type Face int

const (
	Top Face = iota
	Bottom
)

func (f Face) String() string {
	if f == Bottom {
		return "bottom"
	}
	return "top"
}

// ParseFace parses "top" or "bottom".
func ParseFace(s string) (Face, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top", "":
		return Top, nil
	case "bottom":
		return Bottom, nil
	}
	return Top, fmt.Errorf("invalid face %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (f Face) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Face) UnmarshalText(b []byte) error {
	v, err := ParseFace(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// OrientSolution turns a solution display by r. Seen from below, east and
// west trade places, so quarter turns run the other way.
func OrientSolution(g grid.Grid, face Face, r grid.Rotation) grid.Grid {
	r = r.Normalize()
	if face == Bottom && (r == grid.Rot90 || r == grid.Rot270) {
		r = (r + 2).Normalize()
	}
	return grid.Rotate(g, r)
}
