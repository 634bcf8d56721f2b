package grid

// Box is an inclusive cell rectangle.
type Box struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Width returns the number of columns covered.
func (b Box) Width() int { return b.MaxX - b.MinX + 1 }

// Height returns the number of rows covered.
func (b Box) Height() int { return b.MaxY - b.MinY + 1 }

// Union returns the smallest box covering both.
func (b Box) Union(o Box) Box {
	return Box{
		MinX: min(b.MinX, o.MinX),
		MinY: min(b.MinY, o.MinY),
		MaxX: max(b.MaxX, o.MaxX),
		MaxY: max(b.MaxY, o.MaxY),
	}
}

// BoundingBox returns the box around all painted cells. ok is false when the
// grid is empty.
func BoundingBox(g Grid) (box Box, ok bool) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Cells[y*g.Width+x] == Empty {
				continue
			}
			if !ok {
				box = Box{MinX: x, MinY: y, MaxX: x, MaxY: y}
				ok = true
				continue
			}
			box.MinX = min(box.MinX, x)
			box.MinY = min(box.MinY, y)
			box.MaxX = max(box.MaxX, x)
			box.MaxY = max(box.MaxY, y)
		}
	}
	return box, ok
}

// CenterShift returns the offset that moves the span [lo, hi] to the middle
// of [0, size). Odd slack leaves the extra cell on the high side.
func CenterShift(size, lo, hi int) int {
	return (size-(hi-lo+1))/2 - lo
}

// Offset returns the (dx, dy) that centers box b in a width×height grid.
func Offset(b Box, width, height int) (dx, dy int) {
	return CenterShift(width, b.MinX, b.MaxX), CenterShift(height, b.MinY, b.MaxY)
}

// Center returns g with its painted cells moved to the middle. Empty grids
// are returned unchanged.
func Center(g Grid) Grid {
	box, ok := BoundingBox(g)
	if !ok {
		return g.Clone()
	}
	dx, dy := Offset(box, g.Width, g.Height)
	return Translate(g, dx, dy)
}

// Matches reports whether a submission equals the solution once both are
// centered. Sizes must agree.
func Matches(submission, solution Grid) bool {
	if submission.Width != solution.Width || submission.Height != solution.Height {
		return false
	}
	return Equal(Center(submission), Center(solution))
}
