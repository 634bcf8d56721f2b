// Package grid provides flattened 2D color grids and the transforms used to
// display and compare them.
//
// A [Grid] stores Width×Height cells row-major: cell (x, y) lives at index
// y*Width + x. A zero cell is empty; any other value is a palette index plus
// one.
//
// # Transforms
//
//   - [Rotate]: clockwise quarter turns; four turns are the identity
//   - [MirrorX]: reflect columns, x → Width-1-x
//   - [Center]: move the non-empty cells to the middle of the grid
//
// # Centering
//
// Every display centers its content with the same integer rule, per axis:
//
//	shift = (size - extent)/2 - min
//
// where min and extent describe the non-empty bounding box. Submissions are
// compared after centering both sides, so [Matches] does not care where on
// the grid a player drew the solution.
package grid
