package sink

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/brickstack/pkg/core/grid"
	"github.com/matzehuels/brickstack/pkg/puzzle"
	"github.com/matzehuels/brickstack/pkg/render/styles"
)

// FormatGrid prints g with one palette symbol per cell, highest row first.
func FormatGrid(g grid.Grid) string {
	var sb strings.Builder
	for y := g.Height - 1; y >= 0; y-- {
		for x := 0; x < g.Width; x++ {
			sb.WriteString(styles.Cell(g.At(x, y)).Symbol)
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// RenderText prints a summary of the document followed by every panel.
func RenderText(doc *puzzle.Document, opts ...Option) []byte {
	o := newOptions(opts)

	var buf bytes.Buffer
	d := doc.Dimensions
	fmt.Fprintf(&buf, "puzzle %s\n", doc.ID)
	fmt.Fprintf(&buf, "seed %d, size %dx%dx%d, %d pieces, %d pages\n",
		doc.Seed, d.Width, d.Depth, d.Height, len(doc.Pieces), len(doc.Pages))

	if o.sections&SectionPieces != 0 {
		buf.WriteByte('\n')
		for _, p := range doc.Pieces {
			fmt.Fprintf(&buf, "%s\n", pieceLine(p))
		}
		for _, p := range doc.Unplaced {
			fmt.Fprintf(&buf, "%s\n", pieceLine(p))
		}
	}

	for _, p := range panels(doc, o) {
		fmt.Fprintf(&buf, "\n%s\n%s\n", p.title, FormatGrid(p.g))
	}
	return buf.Bytes()
}

func pieceLine(p puzzle.Piece) string {
	c := styles.Brick(p.Color)
	if p.Position == nil {
		return fmt.Sprintf("%s %-3d %dx%d %-8s unplaced", c.Symbol, p.ID, p.Width, p.Depth, c.Name)
	}
	return fmt.Sprintf("%s %-3d %dx%d %-8s at %s facing %s", c.Symbol, p.ID, p.Width, p.Depth, c.Name, p.Position, p.Facing)
}
