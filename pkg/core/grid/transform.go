package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Rotation is a clockwise quarter-turn count in [0, 4).
type Rotation int

const (
	Rot0 Rotation = iota
	Rot90
	Rot180
	Rot270
)

// Normalize folds r into [0, 4).
func (r Rotation) Normalize() Rotation {
	return ((r % 4) + 4) % 4
}

// Degrees returns the clockwise angle.
func (r Rotation) Degrees() int { return int(r.Normalize()) * 90 }

func (r Rotation) String() string { return strconv.Itoa(r.Degrees()) }

// ParseRotation accepts degrees ("0", "90", "180", "270") or a compass
// name, which counts quarter turns in facing order: north, west, south, east.
func ParseRotation(s string) (Rotation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0", "north", "n":
		return Rot0, nil
	case "90", "west", "w":
		return Rot90, nil
	case "180", "south", "s":
		return Rot180, nil
	case "270", "east", "e":
		return Rot270, nil
	}
	return 0, fmt.Errorf("invalid rotation %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (r Rotation) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rotation) UnmarshalText(b []byte) error {
	v, err := ParseRotation(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Rotate turns g clockwise by r quarter turns. Odd turns swap Width and
// Height; on square grids
//
//	90°:  out(x, y) = in(W-1-y, x)
//	180°: out(x, y) = in(W-1-x, H-1-y)
//	270°: out(x, y) = in(y, W-1-x)
func Rotate(g Grid, r Rotation) Grid {
	w, h := g.Width, g.Height
	switch r.Normalize() {
	case Rot90:
		out := New(h, w)
		for y := 0; y < w; y++ {
			for x := 0; x < h; x++ {
				out.Cells[y*h+x] = g.Cells[x*w+(w-1-y)]
			}
		}
		return out
	case Rot180:
		out := New(w, h)
		for i, v := range g.Cells {
			out.Cells[len(out.Cells)-1-i] = v
		}
		return out
	case Rot270:
		out := New(h, w)
		for y := 0; y < w; y++ {
			for x := 0; x < h; x++ {
				out.Cells[y*h+x] = g.Cells[(h-1-x)*w+y]
			}
		}
		return out
	}
	return g.Clone()
}

// MirrorX reflects g horizontally: column x becomes Width-1-x.
func MirrorX(g Grid) Grid {
	out := New(g.Width, g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			out.Cells[y*g.Width+(g.Width-1-x)] = g.Cells[y*g.Width+x]
		}
	}
	return out
}

// Translate moves every cell by (dx, dy). Cells pushed off the grid are lost.
func Translate(g Grid, dx, dy int) Grid {
	out := New(g.Width, g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if v := g.Cells[y*g.Width+x]; v != Empty {
				out.Set(x+dx, y+dy, v)
			}
		}
	}
	return out
}
