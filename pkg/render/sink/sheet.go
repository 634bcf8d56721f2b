package sink

import (
	"fmt"

	"github.com/matzehuels/brickstack/pkg/core/grid"
	"github.com/matzehuels/brickstack/pkg/puzzle"
	"github.com/matzehuels/brickstack/pkg/render/styles"
)

const (
	defaultCellSize = 24.0
	defaultColumns  = 4
	padding         = 16.0
	labelHeight     = 20.0
)

// Section selects which panels a sheet contains.
type Section uint8

const (
	SectionPieces Section = 1 << iota
	SectionPages
	SectionSolution

	SectionAll = SectionPieces | SectionPages | SectionSolution
)

// Option configures sheet rendering.
type Option func(*sheetOptions)

type sheetOptions struct {
	cell     float64
	columns  int
	sections Section
	hideTop  bool
}

// WithCellSize sets the edge length of one cell in pixels.
func WithCellSize(px float64) Option {
	return func(o *sheetOptions) {
		if px > 0 {
			o.cell = px
		}
	}
}

// WithColumns sets how many panels share a row.
func WithColumns(n int) Option {
	return func(o *sheetOptions) {
		if n > 0 {
			o.columns = n
		}
	}
}

// WithSections limits the sheet to the given sections.
func WithSections(s Section) Option {
	return func(o *sheetOptions) {
		if s != 0 {
			o.sections = s
		}
	}
}

// WithoutTop draws manual pages with only the bottom brick.
func WithoutTop() Option { return func(o *sheetOptions) { o.hideTop = true } }

func newOptions(opts []Option) sheetOptions {
	o := sheetOptions{cell: defaultCellSize, columns: defaultColumns, sections: SectionAll}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type panel struct {
	title string
	g     grid.Grid
}

func panels(doc *puzzle.Document, o sheetOptions) []panel {
	var out []panel
	if o.sections&SectionPieces != 0 {
		for i, g := range doc.Displays {
			title := fmt.Sprintf("piece %d", i+1)
			if i < len(doc.Pieces) {
				p := doc.Pieces[i]
				title = fmt.Sprintf("piece %d %dx%d %s", p.ID, p.Width, p.Depth, styles.Brick(p.Color).Name)
			}
			out = append(out, panel{title: title, g: g})
		}
	}
	if o.sections&SectionPages != 0 {
		for _, p := range doc.Pages {
			g := p.Grid
			if o.hideTop {
				g = p.Base
			}
			out = append(out, panel{title: fmt.Sprintf("page %d", p.Index), g: g})
		}
	}
	if o.sections&SectionSolution != 0 {
		title := fmt.Sprintf("solution (%s)", doc.Solution.Face)
		out = append(out, panel{title: title, g: doc.Solution.Grid})
	}
	return out
}

// layout places panels on a uniform tile grid.
type layout struct {
	cell         float64
	columns      int
	tileW, tileH float64
	width        float64
	height       float64
}

func newLayout(ps []panel, o sheetOptions) layout {
	l := layout{cell: o.cell, columns: min(o.columns, max(len(ps), 1))}
	for _, p := range ps {
		l.tileW = max(l.tileW, float64(p.g.Width)*o.cell)
		l.tileH = max(l.tileH, float64(p.g.Height)*o.cell)
	}
	l.tileH += labelHeight
	rows := (len(ps) + l.columns - 1) / l.columns
	l.width = padding + float64(l.columns)*(l.tileW+padding)
	l.height = padding + float64(rows)*(l.tileH+padding)
	return l
}

// origin returns the top-left corner of panel i.
func (l layout) origin(i int) (x, y float64) {
	col, row := i%l.columns, i/l.columns
	return padding + float64(col)*(l.tileW+padding), padding + float64(row)*(l.tileH+padding)
}

// cellAt returns the top-left corner of grid cell (x, y) inside a panel
// whose origin is (ox, oy). Row y = Height-1 is drawn first.
func (l layout) cellAt(g grid.Grid, ox, oy float64, x, y int) (float64, float64) {
	return ox + float64(x)*l.cell, oy + labelHeight + float64(g.Height-1-y)*l.cell
}
