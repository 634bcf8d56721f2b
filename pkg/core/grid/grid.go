package grid

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrSize is returned when cell data does not match the declared dimensions.
var ErrSize = errors.New("grid size mismatch")

// Empty is the value of an unpainted cell.
const Empty = 0

// Grid is a row-major rectangle of cell values.
type Grid struct {
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Cells  []int `json:"cells"`
}

// New returns an empty width×height grid.
func New(width, height int) Grid {
	return Grid{Width: width, Height: height, Cells: make([]int, width*height)}
}

// FromCells wraps existing cell data. The slice is not copied.
func FromCells(width, height int, cells []int) (Grid, error) {
	if width <= 0 || height <= 0 || len(cells) != width*height {
		return Grid{}, fmt.Errorf("%w: %d cells for %dx%d", ErrSize, len(cells), width, height)
	}
	return Grid{Width: width, Height: height, Cells: cells}, nil
}

// In reports whether (x, y) is inside the grid.
func (g Grid) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// At returns the value at (x, y), or Empty outside the grid.
func (g Grid) At(x, y int) int {
	if !g.In(x, y) {
		return Empty
	}
	return g.Cells[y*g.Width+x]
}

// Set writes v at (x, y). Coordinates outside the grid are ignored.
func (g Grid) Set(x, y, v int) {
	if g.In(x, y) {
		g.Cells[y*g.Width+x] = v
	}
}

// Fill paints the inclusive rectangle [minX..maxX]×[minY..maxY] with v,
// clipped to the grid.
func (g Grid) Fill(minX, minY, maxX, maxY, v int) {
	for y := max(minY, 0); y <= min(maxY, g.Height-1); y++ {
		for x := max(minX, 0); x <= min(maxX, g.Width-1); x++ {
			g.Cells[y*g.Width+x] = v
		}
	}
}

// Clone returns a deep copy of g.
func (g Grid) Clone() Grid {
	return Grid{Width: g.Width, Height: g.Height, Cells: slices.Clone(g.Cells)}
}

// IsEmpty reports whether no cell is painted.
func (g Grid) IsEmpty() bool {
	return !slices.ContainsFunc(g.Cells, func(v int) bool { return v != Empty })
}

// Count returns the number of painted cells.
func (g Grid) Count() int {
	n := 0
	for _, v := range g.Cells {
		if v != Empty {
			n++
		}
	}
	return n
}

// Rows returns the cells split into rows, y = 0 first.
func (g Grid) Rows() [][]int {
	rows := make([][]int, g.Height)
	for y := range rows {
		rows[y] = g.Cells[y*g.Width : (y+1)*g.Width]
	}
	return rows
}

// String renders one row per line with y = 0 first.
func (g Grid) String() string {
	var sb strings.Builder
	for y, row := range g.Rows() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, v := range row {
			if x > 0 {
				sb.WriteByte(',')
			}
			fmt.Fprintf(&sb, "%d", v)
		}
	}
	return sb.String()
}

// Equal reports whether a and b have the same size and cells.
func Equal(a, b Grid) bool {
	return a.Width == b.Width && a.Height == b.Height && slices.Equal(a.Cells, b.Cells)
}
