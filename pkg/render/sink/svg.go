package sink

import (
	"bytes"
	"fmt"
	"html"

	"github.com/matzehuels/brickstack/pkg/core/grid"
	"github.com/matzehuels/brickstack/pkg/puzzle"
	"github.com/matzehuels/brickstack/pkg/render/styles"
)

const sheetCSS = `
    .panel-title { font-family: sans-serif; font-size: 12px; fill: #333; }
    .cell { stroke: #fff; stroke-width: 1; }
    .cell.empty { stroke: #d8d2c4; }`

// RenderSVG lays out the document's panels as an SVG sheet.
func RenderSVG(doc *puzzle.Document, opts ...Option) []byte {
	o := newOptions(opts)
	ps := panels(doc, o)
	l := newLayout(ps, o)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.width, l.height, l.width, l.height)
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", sheetCSS)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="#ffffff"/>`+"\n")

	for i, p := range ps {
		ox, oy := l.origin(i)
		renderPanel(&buf, l, p, ox, oy)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderPanel(buf *bytes.Buffer, l layout, p panel, ox, oy float64) {
	fmt.Fprintf(buf, `  <g class="panel">`+"\n")
	fmt.Fprintf(buf, `    <text class="panel-title" x="%.1f" y="%.1f">%s</text>`+"\n",
		ox, oy+labelHeight-6, html.EscapeString(p.title))
	for y := 0; y < p.g.Height; y++ {
		for x := 0; x < p.g.Width; x++ {
			renderCell(buf, l, p.g, ox, oy, x, y)
		}
	}
	buf.WriteString("  </g>\n")
}

func renderCell(buf *bytes.Buffer, l layout, g grid.Grid, ox, oy float64, x, y int) {
	v := g.At(x, y)
	cx, cy := l.cellAt(g, ox, oy, x, y)
	class := "cell"
	if v == grid.Empty {
		class = "cell empty"
	}
	fmt.Fprintf(buf, `    <rect class="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		class, cx, cy, l.cell, l.cell, styles.Cell(v).Hex)
}
