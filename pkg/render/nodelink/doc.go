// Package nodelink renders a puzzle's assembly graph as a node-link diagram.
//
// # Overview
//
// Every placed brick becomes a box filled with its palette color. Every
// connection becomes an arrow from the upper brick to the brick it rests
// on, labeled with the manual page that shows it. Bricks on the same layer
// share a rank, so the diagram reads top layer first.
//
// # Usage
//
//	dot := nodelink.ToDOT(doc, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF conversion requires librsvg (rsvg-convert).
package nodelink
