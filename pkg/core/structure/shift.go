package structure

import "github.com/matzehuels/brickstack/pkg/core/brick"

// move is a planned whole-structure translation plus the resulting height.
type move struct {
	dx, dy, dz int
	height     int
}

// plan computes the translation that brings footprint r on layer z inside
// the lattice. Axes are handled in a fixed order: x, y, then z.
func (s *Structure) plan(r brick.Rect, z int) (move, error) {
	mv := move{height: s.dims.Height}

	var err error
	if mv.dx, err = axisShift("x", r.MinX, r.MaxX, s.dims.Width); err != nil {
		return mv, err
	}
	if mv.dy, err = axisShift("y", r.MinY, r.MaxY, s.dims.Depth); err != nil {
		return mv, err
	}
	if mv.dx != 0 || mv.dy != 0 {
		for _, p := range s.pieces {
			if !p.Footprint().Translate(mv.dx, mv.dy).Within(s.dims.Width, s.dims.Depth) {
				return mv, shiftError{dx: mv.dx, dy: mv.dy, victim: p.ID()}
			}
		}
	}

	switch {
	case z < 0:
		if !s.heightAdjustments {
			return mv, layerError{z: z, height: s.dims.Height}
		}
		mv.dz = -z
		mv.height = max(s.dims.Height, s.topLayer()+mv.dz+1)
	case z >= s.dims.Height:
		if !s.heightAdjustments {
			return mv, layerError{z: z, height: s.dims.Height}
		}
		mv.height = z + 1
	}
	return mv, nil
}

// axisShift returns the delta that moves [lo, hi] inside [0, size).
// A negative low edge shifts toward +; an overflowing high edge shifts toward -.
func axisShift(axis string, lo, hi, size int) (int, error) {
	d := 0
	switch {
	case lo < 0:
		d = -lo
	case hi >= size:
		d = size - 1 - hi
	}
	if lo+d < 0 || hi+d >= size {
		return 0, spanError{axis: axis, span: hi - lo + 1, size: size}
	}
	return d, nil
}

// topLayer returns the highest occupied z, or -1 when empty.
func (s *Structure) topLayer() int {
	top := -1
	for _, p := range s.pieces {
		top = max(top, p.Position().Z)
	}
	return top
}

// translate moves every placed brick by the same delta.
func (s *Structure) translate(dx, dy, dz int) {
	for _, p := range s.pieces {
		p.Translate(dx, dy, dz)
	}
}
