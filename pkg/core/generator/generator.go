package generator

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/brickstack/pkg/core/brick"
	"github.com/matzehuels/brickstack/pkg/core/grid"
	"github.com/matzehuels/brickstack/pkg/core/projection"
	"github.com/matzehuels/brickstack/pkg/core/structure"
	bserrors "github.com/matzehuels/brickstack/pkg/errors"
)

const (
	// DefaultPalette is the number of distinct brick colors.
	DefaultPalette = 10

	// DefaultPieces is the piece count used when none is given.
	DefaultPieces = 10

	// DefaultSize is the default width, depth and height.
	DefaultSize = 8
)

// Stats summarizes one Generate call.
type Stats struct {
	Attempts int // AddBrick calls made, including the first piece
	Placed   int
	Unplaced int
}

// Option configures a [Generator].
type Option func(*Generator)

// WithCatalog replaces [DefaultCatalog].
func WithCatalog(c Catalog) Option {
	return func(g *Generator) { g.catalog = c }
}

// WithPalette sets the number of colors. It bounds the piece count.
func WithPalette(n int) Option {
	return func(g *Generator) { g.palette = n }
}

// WithAllowPartial makes Generate skip pieces that cannot be attached
// instead of failing.
func WithAllowPartial(allow bool) Option {
	return func(g *Generator) { g.allowPartial = allow }
}

// WithHeightAdjustments is passed through to the structure.
func WithHeightAdjustments(allow bool) Option {
	return func(g *Generator) { g.heightAdjustments = allow }
}

// WithLogger sets the logger used for per-piece debug output.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// Generator produces a structure and answers projection queries about it.
// It is not safe for concurrent use.
type Generator struct {
	src               Source
	catalog           Catalog
	palette           int
	allowPartial      bool
	heightAdjustments bool
	logger            *log.Logger

	facings  []brick.Facing
	s        *structure.Structure
	pieces   []*brick.Brick
	unplaced []*brick.Brick
	stats    Stats
}

// New creates a generator drawing from src.
func New(src Source, opts ...Option) *Generator {
	g := &Generator{
		src:               src,
		catalog:           DefaultCatalog,
		palette:           DefaultPalette,
		heightAdjustments: true,
		logger:            log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds a new structure of pieceCount bricks inside dims. Any
// previous result is discarded.
func (g *Generator) Generate(pieceCount int, dims structure.Dimensions) (*structure.Structure, error) {
	g.s, g.pieces, g.unplaced, g.stats = nil, nil, nil, Stats{}

	if err := g.catalog.Validate(); err != nil {
		return nil, err
	}
	if err := bserrors.ValidatePieceCount(pieceCount, g.palette); err != nil {
		return nil, err
	}
	s, err := structure.New(dims.Width, dims.Depth, dims.Height, structure.WithHeightAdjustments(g.heightAdjustments))
	if err != nil {
		return nil, err
	}

	colors := perm(g.src, g.palette)
	pool := g.catalog.pool()
	var seq brick.Sequence
	pieces := make([]*brick.Brick, pieceCount)
	for i := range pieces {
		shape := pool[g.src.IntN(len(pool))]
		if pieces[i], err = seq.New(shape.Width, shape.Depth, colors[i]); err != nil {
			return nil, err
		}
	}
	shuffle(g.src, pieces)

	g.facings = slices.Clone(brick.Facings)
	first := pieces[0]
	g.stats.Attempts++
	if err := s.AddBrick(first, brick.Point{}, brick.Facing(g.src.IntN(4))); err != nil {
		return nil, bserrors.Wrap(bserrors.ErrCodeGenerationIncomplete, err, "first piece %s does not fit %s", shapeOf(first), dims)
	}
	g.logPiece(first)

	placed := []*brick.Brick{first}
	for _, p := range pieces[1:] {
		ok, err := g.attach(s, placed, p)
		if err != nil {
			return nil, err
		}
		if ok {
			placed = append(placed, p)
			g.logPiece(p)
			continue
		}
		if !g.allowPartial {
			return nil, bserrors.New(bserrors.ErrCodeGenerationIncomplete,
				"no legal attachment for piece %d (%s) among %d placed pieces", p.ID(), shapeOf(p), len(placed))
		}
		g.logger.Warn("skipping unplaceable piece", "piece", p.ID(), "shape", shapeOf(p))
		g.unplaced = append(g.unplaced, p)
	}

	if err := s.Validate(); err != nil {
		return nil, bserrors.Wrap(bserrors.ErrCodeInternal, err, "generated structure")
	}

	g.s, g.pieces = s, pieces
	g.stats.Placed = len(placed)
	g.stats.Unplaced = len(g.unplaced)
	g.logger.Debug("generated structure", "pieces", len(placed), "connections", len(s.Connections()),
		"size", s.Dimensions(), "attempts", g.stats.Attempts)
	return s, nil
}

// attach runs the candidate search for p. Placement rejections move the
// search on; any other error aborts it.
func (g *Generator) attach(s *structure.Structure, placed []*brick.Brick, p *brick.Brick) (bool, error) {
	for c := range g.candidates(placed) {
		g.stats.Attempts++
		err := s.AddBrick(p, c.pos, c.facing)
		if err == nil {
			return true, nil
		}
		if !errors.Is(err, structure.ErrLayerCollision) && !errors.Is(err, structure.ErrOutOfBounds) {
			return false, fmt.Errorf("attach piece %d to %d: %w", p.ID(), c.host, err)
		}
	}
	return false, nil
}

func (g *Generator) logPiece(b *brick.Brick) {
	g.logger.Debug("placed piece", "piece", b.ID(), "shape", shapeOf(b), "pos", b.Position(),
		"facing", b.Facing(), "color", b.Color())
}

func shapeOf(b *brick.Brick) string {
	return fmt.Sprintf("%dx%d", b.Width(), b.Depth())
}

func (g *Generator) ready() error {
	if g.s == nil {
		return bserrors.New(bserrors.ErrCodeNotGenerated, "no structure has been generated")
	}
	return nil
}

// Structure returns the last generated structure.
func (g *Generator) Structure() (*structure.Structure, error) {
	if err := g.ready(); err != nil {
		return nil, err
	}
	return g.s, nil
}

// Pieces returns every drawn piece in placement order, unplaced ones included.
func (g *Generator) Pieces() []*brick.Brick { return slices.Clone(g.pieces) }

// Unplaced returns the pieces skipped under [WithAllowPartial].
func (g *Generator) Unplaced() []*brick.Brick { return slices.Clone(g.unplaced) }

// Stats returns counters from the last Generate call.
func (g *Generator) Stats() Stats { return g.stats }

// ManualPages returns one assembly page per connection.
func (g *Generator) ManualPages(showTop bool) ([]grid.Grid, error) {
	if err := g.ready(); err != nil {
		return nil, err
	}
	return projection.ManualPages(g.s, showTop)
}

// PieceDisplays returns one silhouette per piece ordered by ID. Random
// rotations are drawn from the generator's source.
func (g *Generator) PieceDisplays(randomRotations bool) ([]grid.Grid, error) {
	if err := g.ready(); err != nil {
		return nil, err
	}
	var src projection.Source
	if randomRotations {
		src = g.src
	}
	return projection.PieceDisplays(g.s, src), nil
}

// SolutionDisplay returns the structure outline seen from face.
func (g *Generator) SolutionDisplay(face projection.Face) (grid.Grid, error) {
	if err := g.ready(); err != nil {
		return grid.Grid{}, err
	}
	return projection.SolutionDisplay(g.s, face), nil
}
