package puzzle

import (
	"cmp"
	"encoding/json"
	"slices"

	"github.com/google/uuid"

	"github.com/matzehuels/brickstack/pkg/core/brick"
	"github.com/matzehuels/brickstack/pkg/core/generator"
	"github.com/matzehuels/brickstack/pkg/core/grid"
	"github.com/matzehuels/brickstack/pkg/core/projection"
	"github.com/matzehuels/brickstack/pkg/core/structure"
	bserrors "github.com/matzehuels/brickstack/pkg/errors"
)

// idNamespace scopes document IDs derived with uuid.NewSHA1.
var idNamespace = uuid.MustParse("6f1c1d5e-3b7a-4f4e-9b1e-b51c4c0a7e21")

// Options controls how a generated structure is projected into a document.
type Options struct {
	Seed             uint64
	RandomRotations  bool            // rotate each piece silhouette randomly
	PageRotations    []grid.Rotation // page i uses PageRotations[i%len]
	Face             projection.Face
	SolutionRotation grid.Rotation
}

// Build projects the generator's last structure into a document. The
// document ID is derived from its content, so identical puzzles share an ID.
func Build(g *generator.Generator, opts Options) (*Document, error) {
	s, err := g.Structure()
	if err != nil {
		return nil, err
	}
	full, err := g.ManualPages(true)
	if err != nil {
		return nil, err
	}
	base, err := g.ManualPages(false)
	if err != nil {
		return nil, err
	}
	displays, err := g.PieceDisplays(opts.RandomRotations)
	if err != nil {
		return nil, err
	}
	sol, err := g.SolutionDisplay(opts.Face)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Version:     FormatVersion,
		Seed:        opts.Seed,
		Dimensions:  s.Dimensions(),
		Pieces:      piecesOf(s.Pieces()),
		Unplaced:    piecesOf(g.Unplaced()),
		Connections: append([]structure.Connection{}, s.Connections()...),
		Displays:    displays,
		Solution: Solution{
			Face:     opts.Face,
			Rotation: opts.SolutionRotation.Normalize(),
			Grid:     projection.OrientSolution(sol, opts.Face, opts.SolutionRotation),
		},
	}

	doc.Pages = make([]Page, len(doc.Connections))
	for i, c := range doc.Connections {
		r := grid.Rot0
		if len(opts.PageRotations) > 0 {
			r = opts.PageRotations[i%len(opts.PageRotations)].Normalize()
		}
		doc.Pages[i] = Page{
			Index:    i + 1,
			Top:      c.Top,
			Bottom:   c.Bottom,
			Rotation: r,
			Grid:     grid.Rotate(full[i], r),
			Base:     grid.Rotate(base[i], r),
		}
	}

	content, err := json.Marshal(doc)
	if err != nil {
		return nil, bserrors.Wrap(bserrors.ErrCodeInternal, err, "encode document")
	}
	doc.ID = uuid.NewSHA1(idNamespace, content).String()
	return doc, nil
}

func piecesOf(bricks []*brick.Brick) []Piece {
	if len(bricks) == 0 {
		return nil
	}
	out := make([]Piece, 0, len(bricks))
	for _, b := range bricks {
		p := Piece{ID: b.ID(), Width: b.Width(), Depth: b.Depth(), Color: b.Color(), Facing: b.Facing()}
		if b.IsPlaced() {
			pos := b.Position()
			p.Position = &pos
		}
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b Piece) int { return cmp.Compare(a.ID, b.ID) })
	return out
}
