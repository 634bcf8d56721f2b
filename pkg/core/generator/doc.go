// Package generator builds random brick puzzles.
//
// # Algorithm
//
// [Generator.Generate] draws pieces from a weighted [Catalog], gives each a
// distinct color from a shuffled palette, shuffles the placement order, and
// drops the first piece at the origin with a random facing. Every following
// piece is attached to the structure by a randomized search:
//
//	for each placed host (shuffled):
//	    for below/above (random starting side):
//	        for each stud of the host (shuffled):
//	            for each facing (shuffled):
//	                try to place the piece anchored on that stud
//
// The first candidate the placement engine accepts wins. Because the anchor
// cell always lies inside the host's footprint on an adjacent layer, every
// placed piece is connected to its host, and the connection graph of a
// generated structure is connected.
//
// # Determinism
//
// All randomness comes from a [Source]. Two generators fed identical sources
// produce identical structures, brick IDs included.
//
// # Failure
//
// The search visits every candidate, so a piece that finds no attachment has
// none. Generate then fails with GENERATION_INCOMPLETE, unless
// [WithAllowPartial] is set, in which case the piece is skipped and reported
// by [Generator.Unplaced].
package generator
