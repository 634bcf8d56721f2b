package brick

import (
	"errors"
	"fmt"
	"sync/atomic"

	bserrors "github.com/matzehuels/brickstack/pkg/errors"
)

var (
	// ErrInvalidFacing is returned when a facing value or name is not one of
	// North, West, South or East.
	ErrInvalidFacing = errors.New("invalid facing")

	// ErrInvalidSize is returned by [New] when width or depth is not positive.
	ErrInvalidSize = errors.New("brick width and depth must be positive")
)

// ID identifies a brick for its whole lifetime.
type ID int

// Sequence hands out increasing brick IDs starting at zero. It is safe for
// concurrent use. The zero value is ready to use.
type Sequence struct {
	next atomic.Int64
}

// New creates an unplaced brick with the next ID from s.
func (s *Sequence) New(width, depth, color int) (*Brick, error) {
	if width <= 0 || depth <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, depth)
	}
	id := ID(s.next.Add(1) - 1)
	return &Brick{id: id, width: width, depth: depth, color: color}, nil
}

var defaultSequence Sequence

// New creates an unplaced brick with an ID from the process-wide sequence.
func New(width, depth, color int) (*Brick, error) {
	return defaultSequence.New(width, depth, color)
}

// Brick is a rectangular piece. Size, color and ID never change; the
// placement is set by a structure when the brick is added to it.
type Brick struct {
	id     ID
	width  int
	depth  int
	color  int
	pos    Point
	facing Facing
	placed bool
	bounds Rect
}

// ID returns the brick's stable identifier.
func (b *Brick) ID() ID { return b.id }

// Width returns the number of studs along the brick's long side.
func (b *Brick) Width() int { return b.width }

// Depth returns the number of studs along the brick's short side.
func (b *Brick) Depth() int { return b.depth }

// Color returns the palette index of the brick.
func (b *Brick) Color() int { return b.color }

// Position returns the anchor coordinate. Meaningless while unplaced.
func (b *Brick) Position() Point { return b.pos }

// Facing returns the orientation. Meaningless while unplaced.
func (b *Brick) Facing() Facing { return b.facing }

// IsPlaced reports whether the brick has a position.
func (b *Brick) IsPlaced() bool { return b.placed }

// Studs returns the number of studs on the top face.
func (b *Brick) Studs() int { return b.width * b.depth }

// Bounds returns the cells covered by the placed brick.
func (b *Brick) Bounds() (Rect, error) {
	if !b.placed {
		return Rect{}, bserrors.New(bserrors.ErrCodeNotPlaced, "brick %d has no position", b.id)
	}
	return b.bounds, nil
}

// Footprint is like Bounds but returns the zero Rect for unplaced bricks.
func (b *Brick) Footprint() Rect {
	return b.bounds
}

// Place sets the anchor and facing and recomputes the footprint.
func (b *Brick) Place(pos Point, f Facing) {
	b.pos = pos
	b.facing = f
	b.placed = true
	b.bounds = ComputeBounds(pos, b.width, b.depth, f)
}

// Translate moves a placed brick by (dx, dy, dz).
func (b *Brick) Translate(dx, dy, dz int) {
	if !b.placed {
		return
	}
	b.pos = b.pos.Add(dx, dy, dz)
	b.bounds = b.bounds.Translate(dx, dy)
}

// Unplace clears the placement.
func (b *Brick) Unplace() {
	b.pos = Point{}
	b.facing = North
	b.placed = false
	b.bounds = Rect{}
}

func (b *Brick) String() string {
	if !b.placed {
		return fmt.Sprintf("brick#%d %dx%d color=%d (unplaced)", b.id, b.width, b.depth, b.color)
	}
	return fmt.Sprintf("brick#%d %dx%d color=%d at %s %s", b.id, b.width, b.depth, b.color, b.pos, b.facing)
}
