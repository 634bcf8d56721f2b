// Package structure places bricks into a bounded layered volume.
//
// # Overview
//
// A [Structure] owns a width×depth×height lattice split into layers (one per
// z). [Structure.AddBrick] places a brick with overlap and bounds checking.
// When a brick would land outside the lattice, the whole structure is
// translated so the newcomer fits, provided no existing brick is pushed out
// of the opposite side. Layers grow along z when height adjustments are
// enabled.
//
// # Connections
//
// After every successful placement the bricks on the layers directly below
// and above are scanned. Each footprint overlap becomes a [Connection]
// recording which brick sits on top. Connections are the assembly steps of
// the puzzle: every one of them is a place where two bricks click together.
//
// # Errors
//
// Placement failures are returned as [*PlacementError] values. They match
// [ErrLayerCollision] or [ErrOutOfBounds] with errors.Is and carry the
// LAYER_COLLISION / OUT_OF_BOUNDS codes from pkg/errors. A failed placement
// leaves both the structure and the brick untouched.
package structure
