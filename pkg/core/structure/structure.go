package structure

import (
	"fmt"
	"slices"

	"github.com/matzehuels/brickstack/pkg/core/brick"
	bserrors "github.com/matzehuels/brickstack/pkg/errors"
)

// Dimensions is the size of the lattice in cells.
type Dimensions struct {
	Width  int `json:"width"`
	Depth  int `json:"depth"`
	Height int `json:"height"`
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%dx%d", d.Width, d.Depth, d.Height)
}

// Connection records that Top rests on Bottom: they sit on adjacent layers
// and their footprints overlap.
type Connection struct {
	Top    brick.ID `json:"top"`
	Bottom brick.ID `json:"bottom"`
}

// Option configures a [Structure].
type Option func(*Structure)

// WithHeightAdjustments controls whether placements below layer 0 or above
// the top layer may lift the structure or add layers. Enabled by default.
func WithHeightAdjustments(allowed bool) Option {
	return func(s *Structure) { s.heightAdjustments = allowed }
}

// Structure is a layered volume of bricks. It is not safe for concurrent use.
type Structure struct {
	dims              Dimensions
	heightAdjustments bool

	pieces      []*brick.Brick
	index       map[brick.ID]*brick.Brick
	layers      [][]*brick.Brick
	connections []Connection
}

// New creates an empty structure.
func New(width, depth, height int, opts ...Option) (*Structure, error) {
	if err := bserrors.ValidateDimensions(width, depth, height); err != nil {
		return nil, err
	}
	s := &Structure{
		dims:              Dimensions{Width: width, Depth: depth, Height: height},
		heightAdjustments: true,
		index:             make(map[brick.ID]*brick.Brick),
		layers:            make([][]*brick.Brick, height),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Dimensions returns the current lattice size. Height may have grown since New.
func (s *Structure) Dimensions() Dimensions { return s.dims }

// HeightAdjustments reports whether z growth is permitted.
func (s *Structure) HeightAdjustments() bool { return s.heightAdjustments }

// Len returns the number of placed bricks.
func (s *Structure) Len() int { return len(s.pieces) }

// Pieces returns the placed bricks in insertion order.
func (s *Structure) Pieces() []*brick.Brick { return slices.Clone(s.pieces) }

// Piece returns the placed brick with the given ID.
func (s *Structure) Piece(id brick.ID) (*brick.Brick, bool) {
	b, ok := s.index[id]
	return b, ok
}

// Layer returns the bricks on layer z, or nil when z is out of range.
func (s *Structure) Layer(z int) []*brick.Brick {
	if z < 0 || z >= len(s.layers) {
		return nil
	}
	return slices.Clone(s.layers[z])
}

// Connections returns the connections in discovery order.
func (s *Structure) Connections() []Connection { return slices.Clone(s.connections) }

// AddBrick places b with its anchor at pos and the given facing.
//
// If the footprint leaves the lattice, every placed brick and pos are
// translated together so that the newcomer fits. The call fails with a
// [*PlacementError] when b collides with a brick on layer pos.Z, or when no
// translation can make room. On failure nothing changes.
func (s *Structure) AddBrick(b *brick.Brick, pos brick.Point, f brick.Facing) error {
	if b == nil {
		return bserrors.New(bserrors.ErrCodeInvalidInput, "nil brick")
	}
	if !f.Valid() {
		return bserrors.Wrap(bserrors.ErrCodeInvalidInput, brick.ErrInvalidFacing, "place brick %d", b.ID())
	}
	if _, dup := s.index[b.ID()]; dup || b.IsPlaced() {
		return bserrors.New(bserrors.ErrCodeAlreadyPlaced, "brick %d is already placed", b.ID())
	}

	r := brick.ComputeBounds(pos, b.Width(), b.Depth(), f)
	fail := func(kind Kind, format string, args ...any) error {
		return &PlacementError{Kind: kind, Brick: b.ID(), Position: pos, Facing: f, Reason: fmt.Sprintf(format, args...)}
	}

	if pos.Z >= 0 && pos.Z < s.dims.Height {
		for _, other := range s.layers[pos.Z] {
			if other.Footprint().Overlaps(r) {
				return fail(LayerCollision, "overlaps brick %d", other.ID())
			}
		}
	}

	mv, err := s.plan(r, pos.Z)
	if err != nil {
		return fail(OutOfBoundsAfterShift, "%v", err)
	}

	if mv.dx != 0 || mv.dy != 0 || mv.dz != 0 {
		s.translate(mv.dx, mv.dy, mv.dz)
	}
	b.Place(pos.Add(mv.dx, mv.dy, mv.dz), f)
	s.pieces = append(s.pieces, b)
	s.index[b.ID()] = b

	if mv.dz != 0 || mv.height != s.dims.Height {
		s.dims.Height = mv.height
		s.rebuildLayers()
	} else {
		z := b.Position().Z
		s.layers[z] = append(s.layers[z], b)
	}

	s.connect(b)
	return nil
}

// connect records connections between b and the layers directly below and above.
func (s *Structure) connect(b *brick.Brick) {
	z := b.Position().Z
	r := b.Footprint()
	if z > 0 {
		for _, other := range s.layers[z-1] {
			if other.Footprint().Overlaps(r) {
				s.connections = append(s.connections, Connection{Top: b.ID(), Bottom: other.ID()})
			}
		}
	}
	if z+1 < len(s.layers) {
		for _, other := range s.layers[z+1] {
			if other.Footprint().Overlaps(r) {
				s.connections = append(s.connections, Connection{Top: other.ID(), Bottom: b.ID()})
			}
		}
	}
}

// rebuildLayers reassigns every piece to its layer bucket.
func (s *Structure) rebuildLayers() {
	s.layers = make([][]*brick.Brick, s.dims.Height)
	for _, p := range s.pieces {
		z := p.Position().Z
		s.layers[z] = append(s.layers[z], p)
	}
}

// Validate checks the structural invariants: every piece inside the lattice,
// no same-layer overlaps, and every connection joining overlapping bricks on
// adjacent layers.
func (s *Structure) Validate() error {
	for _, p := range s.pieces {
		r, err := p.Bounds()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		if !r.Within(s.dims.Width, s.dims.Depth) {
			return fmt.Errorf("%w: brick %d footprint %s outside %s", ErrCorrupt, p.ID(), r, s.dims)
		}
		if z := p.Position().Z; z < 0 || z >= s.dims.Height {
			return fmt.Errorf("%w: brick %d on layer %d outside %s", ErrCorrupt, p.ID(), z, s.dims)
		}
	}
	for z, layer := range s.layers {
		for i, a := range layer {
			if a.Position().Z != z {
				return fmt.Errorf("%w: brick %d filed under layer %d", ErrCorrupt, a.ID(), z)
			}
			for _, b := range layer[i+1:] {
				if a.Footprint().Overlaps(b.Footprint()) {
					return fmt.Errorf("%w: bricks %d and %d overlap on layer %d", ErrCorrupt, a.ID(), b.ID(), z)
				}
			}
		}
	}
	for _, c := range s.connections {
		top, ok1 := s.index[c.Top]
		bottom, ok2 := s.index[c.Bottom]
		if !ok1 || !ok2 {
			return fmt.Errorf("%w: connection %d/%d references unknown brick", ErrCorrupt, c.Top, c.Bottom)
		}
		if top.Position().Z != bottom.Position().Z+1 || !top.Footprint().Overlaps(bottom.Footprint()) {
			return fmt.Errorf("%w: bricks %d and %d are not stacked", ErrCorrupt, c.Top, c.Bottom)
		}
	}
	return nil
}
