package sink

import (
	"bytes"

	"github.com/fogleman/gg"

	"github.com/matzehuels/brickstack/pkg/core/grid"
	"github.com/matzehuels/brickstack/pkg/puzzle"
	"github.com/matzehuels/brickstack/pkg/render/styles"
)

// RenderPNG rasterizes the same sheet as [RenderSVG]. Unlike the PDF sink
// it needs no external tools.
func RenderPNG(doc *puzzle.Document, opts ...Option) ([]byte, error) {
	o := newOptions(opts)
	ps := panels(doc, o)
	l := newLayout(ps, o)

	dc := gg.NewContext(int(l.width), int(l.height))
	dc.SetHexColor("#ffffff")
	dc.Clear()

	for i, p := range ps {
		ox, oy := l.origin(i)
		dc.SetHexColor("#333333")
		dc.DrawString(p.title, ox, oy+labelHeight-6)
		for y := 0; y < p.g.Height; y++ {
			for x := 0; x < p.g.Width; x++ {
				drawCell(dc, l, p.g, ox, oy, x, y)
			}
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawCell(dc *gg.Context, l layout, g grid.Grid, ox, oy float64, x, y int) {
	v := g.At(x, y)
	cx, cy := l.cellAt(g, ox, oy, x, y)
	dc.DrawRectangle(cx, cy, l.cell, l.cell)
	dc.SetHexColor(styles.Cell(v).Hex)
	dc.FillPreserve()
	if v == grid.Empty {
		dc.SetHexColor("#d8d2c4")
	} else {
		dc.SetHexColor("#ffffff")
	}
	dc.SetLineWidth(1)
	dc.Stroke()
}
