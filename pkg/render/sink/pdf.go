package sink

import (
	"github.com/matzehuels/brickstack/pkg/puzzle"
	"github.com/matzehuels/brickstack/pkg/render"
)

// RenderPDF renders the sheet as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(doc *puzzle.Document, opts ...Option) ([]byte, error) {
	return render.ToPDF(RenderSVG(doc, opts...))
}
