package generator

import (
	"iter"

	"github.com/matzehuels/brickstack/pkg/core/brick"
)

// candidate is one attachment attempt.
type candidate struct {
	host   brick.ID
	pos    brick.Point
	facing brick.Facing
}

// candidates enumerates attachment attempts for one piece. Random draws are
// made as the sequence advances, so stopping early consumes fewer draws.
// hosts is shuffled in place.
func (g *Generator) candidates(hosts []*brick.Brick) iter.Seq[candidate] {
	return func(yield func(candidate) bool) {
		shuffle(g.src, hosts)
		for _, h := range hosts {
			parity := g.src.IntN(2)
			for c := range 2 {
				side := (c + parity) % 2
				z := h.Position().Z + 2*side - 1
				for _, stud := range perm(g.src, h.Studs()) {
					x, y := studCell(h, stud)
					shuffle(g.src, g.facings)
					for _, f := range g.facings {
						if !yield(candidate{host: h.ID(), pos: brick.Point{X: x, Y: y, Z: z}, facing: f}) {
							return
						}
					}
				}
			}
		}
	}
}

// studCell maps a stud index to a lattice cell of the host's footprint.
// Studs are numbered row-major along the footprint's x extent.
func studCell(h *brick.Brick, stud int) (x, y int) {
	r := h.Footprint()
	fast := h.Width()
	if h.Facing().Rotated() {
		fast = h.Depth()
	}
	return r.MinX + stud%fast, r.MinY + stud/fast
}
