// Package brick models rectangular studded bricks on an integer lattice.
//
// # Overview
//
// A [Brick] is a width×depth footprint that occupies exactly one layer of a
// structure. Once placed it has an integer anchor [Point] and a [Facing]
// that rotates the footprint around the anchor in 90° steps.
//
// # Footprints
//
// [ComputeBounds] derives the covered cells as an inclusive [Rect]:
//
//	North: (x, y)         .. (x+w-1, y+d-1)
//	South: (x-w+1, y-d+1) .. (x, y)
//	West:  (x-d+1, y)     .. (x, y+w-1)
//	East:  (x, y-w+1)     .. (x+d-1, y)
//
// Two footprints collide only when they share at least one cell; bricks that
// touch along an edge do not overlap.
//
// # Identity
//
// Every brick receives a stable integer [ID] at construction from a
// [Sequence]. [New] draws from a process-wide sequence; generators that need
// reproducible IDs own their own sequence.
package brick
