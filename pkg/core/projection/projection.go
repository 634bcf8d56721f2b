package projection

import (
	"cmp"
	"slices"

	"github.com/matzehuels/brickstack/pkg/core/brick"
	"github.com/matzehuels/brickstack/pkg/core/grid"
	"github.com/matzehuels/brickstack/pkg/core/structure"
	bserrors "github.com/matzehuels/brickstack/pkg/errors"
)

// Source draws uniform integers in [0, n).
type Source interface {
	IntN(n int) int
}

// ManualPages returns one grid per connection, in discovery order. Each page
// paints the bottom brick and, when showTop is set, the top brick over it.
func ManualPages(s *structure.Structure, showTop bool) ([]grid.Grid, error) {
	dims := s.Dimensions()
	conns := s.Connections()
	pages := make([]grid.Grid, 0, len(conns))
	for _, c := range conns {
		top, ok := s.Piece(c.Top)
		if !ok {
			return nil, bserrors.New(bserrors.ErrCodeInternal, "connection references unknown brick %d", c.Top)
		}
		bottom, ok := s.Piece(c.Bottom)
		if !ok {
			return nil, bserrors.New(bserrors.ErrCodeInternal, "connection references unknown brick %d", c.Bottom)
		}

		box := toBox(top.Footprint()).Union(toBox(bottom.Footprint()))
		dx, dy := grid.Offset(box, dims.Width, dims.Depth)

		g := grid.New(dims.Width, dims.Depth)
		paint(g, bottom, dx, dy)
		if showTop {
			paint(g, top, dx, dy)
		}
		pages = append(pages, g)
	}
	return pages, nil
}

// PieceDisplays returns one centered silhouette per brick, ordered by ID.
// When src is non-nil each silhouette is rotated by src.IntN(4) quarter turns.
func PieceDisplays(s *structure.Structure, src Source) []grid.Grid {
	dims := s.Dimensions()
	pieces := byID(s.Pieces())
	out := make([]grid.Grid, 0, len(pieces))
	for _, p := range pieces {
		dx, dy := grid.Offset(toBox(p.Footprint()), dims.Width, dims.Depth)
		g := grid.New(dims.Width, dims.Depth)
		paint(g, p, dx, dy)
		if src != nil {
			g = grid.Rotate(g, grid.Rotation(src.IntN(4)))
		}
		out = append(out, g)
	}
	return out
}

// SolutionDisplay returns the outline of the whole structure, centered.
//
// From the top, lower layers are painted first so higher bricks win. From the
// bottom, the order is reversed and the result is mirrored along x.
func SolutionDisplay(s *structure.Structure, face Face) grid.Grid {
	dims := s.Dimensions()
	g := grid.New(dims.Width, dims.Depth)
	pieces := s.Pieces()
	if len(pieces) == 0 {
		return g
	}

	box := toBox(pieces[0].Footprint())
	for _, p := range pieces[1:] {
		box = box.Union(toBox(p.Footprint()))
	}
	dx, dy := grid.Offset(box, dims.Width, dims.Depth)

	slices.SortStableFunc(pieces, func(a, b *brick.Brick) int {
		if face == Bottom {
			return cmp.Compare(b.Position().Z, a.Position().Z)
		}
		return cmp.Compare(a.Position().Z, b.Position().Z)
	})
	for _, p := range pieces {
		paint(g, p, dx, dy)
	}

	if face == Bottom {
		return grid.MirrorX(g)
	}
	return g
}

func paint(g grid.Grid, b *brick.Brick, dx, dy int) {
	r := b.Footprint().Translate(dx, dy)
	g.Fill(r.MinX, r.MinY, r.MaxX, r.MaxY, b.Color()+1)
}

func toBox(r brick.Rect) grid.Box {
	return grid.Box{MinX: r.MinX, MinY: r.MinY, MaxX: r.MaxX, MaxY: r.MaxY}
}

func byID(pieces []*brick.Brick) []*brick.Brick {
	slices.SortFunc(pieces, func(a, b *brick.Brick) int { return cmp.Compare(a.ID(), b.ID()) })
	return pieces
}
