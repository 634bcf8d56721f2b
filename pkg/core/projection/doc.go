// Package projection flattens a [structure.Structure] into the 2D grids a
// player sees.
//
// Three views exist:
//
//   - [ManualPages]: one page per connection, showing the two bricks that
//     click together, centered on their combined footprint
//   - [PieceDisplays]: one silhouette per brick in ID order, optionally turned
//     by a random quarter rotation
//   - [SolutionDisplay]: the outline of the whole build seen from above or
//     below
//
// All grids have the structure's width and depth, and cells hold the
// brick's color plus one.
package projection
