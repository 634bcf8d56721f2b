// Package sink renders puzzle documents as printable sheets.
//
// A sheet is a list of titled panels, one grid each: every piece
// silhouette, every manual page, then the solution outline. [RenderText]
// prints them with the palette symbols; [RenderSVG], [RenderPNG] and
// [RenderPDF] lay them out in a fixed number of columns.
//
// Grids are drawn with the highest row on top, so a sheet reads the same
// way as the text format.
//
//	svg := sink.RenderSVG(doc, sink.WithCellSize(16), sink.WithColumns(5))
//	png, err := sink.RenderPNG(doc)
//
// Pages show both bricks by default; [WithoutTop] switches to the variant
// with only the bottom brick.
package sink
