package brick

import "fmt"

// Point is an integer lattice coordinate. Z selects the layer.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Add returns p translated by (dx, dy, dz).
func (p Point) Add(dx, dy, dz int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy, Z: p.Z + dz}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// Rect is an inclusive rectangle of cells on one layer.
type Rect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Width returns the number of columns covered.
func (r Rect) Width() int { return r.MaxX - r.MinX + 1 }

// Height returns the number of rows covered.
func (r Rect) Height() int { return r.MaxY - r.MinY + 1 }

// Area returns the number of cells covered.
func (r Rect) Area() int { return r.Width() * r.Height() }

// Overlaps reports whether r and o share at least one cell.
func (r Rect) Overlaps(o Rect) bool {
	return r.MinX <= o.MaxX && o.MinX <= r.MaxX &&
		r.MinY <= o.MaxY && o.MinY <= r.MaxY
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// Union returns the smallest rectangle covering both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		MinX: min(r.MinX, o.MinX),
		MinY: min(r.MinY, o.MinY),
		MaxX: max(r.MaxX, o.MaxX),
		MaxY: max(r.MaxY, o.MaxY),
	}
}

// Translate returns r shifted by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{MinX: r.MinX + dx, MinY: r.MinY + dy, MaxX: r.MaxX + dx, MaxY: r.MaxY + dy}
}

// Within reports whether r fits inside [0, width) × [0, depth).
func (r Rect) Within(width, depth int) bool {
	return r.MinX >= 0 && r.MinY >= 0 && r.MaxX < width && r.MaxY < depth
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d..%d,%d]", r.MinX, r.MinY, r.MaxX, r.MaxY)
}

// ComputeBounds returns the footprint of a width×depth brick anchored at pos
// with the given facing. The z coordinate is ignored.
func ComputeBounds(pos Point, width, depth int, f Facing) Rect {
	x, y := pos.X, pos.Y
	switch f {
	case South:
		return Rect{MinX: x - width + 1, MinY: y - depth + 1, MaxX: x, MaxY: y}
	case West:
		return Rect{MinX: x - depth + 1, MinY: y, MaxX: x, MaxY: y + width - 1}
	case East:
		return Rect{MinX: x, MinY: y - width + 1, MaxX: x + depth - 1, MaxY: y}
	default:
		return Rect{MinX: x, MinY: y, MaxX: x + width - 1, MaxY: y + depth - 1}
	}
}
