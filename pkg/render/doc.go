// Package render turns puzzle documents into printable output.
//
// # Overview
//
// Rendering is split by audience:
//
//   - [sink] lays out pieces, manual pages and the solution as a sheet
//     (text, SVG, PNG, PDF)
//   - [nodelink] draws the assembly graph: which brick rests on which
//   - [styles] holds the brick palette every renderer shares
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG using the external rsvg-convert tool
// (from librsvg). Without it they fail with an UNSUPPORTED error; check
// [Available] first to degrade gracefully.
//
//	svg := sink.RenderSVG(doc)
//	pdf, err := render.ToPDF(svg)
//
// [sink]: github.com/matzehuels/brickstack/pkg/render/sink
// [nodelink]: github.com/matzehuels/brickstack/pkg/render/nodelink
// [styles]: github.com/matzehuels/brickstack/pkg/render/styles
package render
