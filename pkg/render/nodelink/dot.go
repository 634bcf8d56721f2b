package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/brickstack/pkg/puzzle"
	"github.com/matzehuels/brickstack/pkg/render"
	"github.com/matzehuels/brickstack/pkg/render/styles"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds layer, position and facing to node labels.
	// When false, only the brick ID and color are shown.
	Detailed bool
}

// ToDOT converts a puzzle's assembly graph to Graphviz DOT. Each placed
// brick is a node filled with its color; each connection is an edge from
// the top brick to the brick it rests on, labeled with its manual page.
// Bricks on the same layer share a rank.
func ToDOT(doc *puzzle.Document, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=20, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=14];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, p := range doc.Pieces {
		if p.Position == nil {
			continue
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(p), strings.Join(fmtAttrs(p, fmtLabel(p, opts.Detailed)), ", "))
	}

	layers := doc.Layers()
	if len(layers) > 1 {
		buf.WriteString("\n")
		for _, z := range slices.Backward(slices.Sorted(maps.Keys(layers))) {
			ids := slices.Clone(layers[z])
			slices.Sort(ids)
			names := make([]string, len(ids))
			for i, id := range ids {
				names[i] = strconv.Quote(strconv.Itoa(int(id)))
			}
			fmt.Fprintf(&buf, "  { rank=same; %s; }\n", strings.Join(names, "; "))
		}
	}

	buf.WriteString("\n")
	for _, p := range doc.Pages {
		fmt.Fprintf(&buf, "  %q -> %q [label=\"p%d\"];\n", strconv.Itoa(int(p.Top)), strconv.Itoa(int(p.Bottom)), p.Index)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(p puzzle.Piece) string { return strconv.Itoa(int(p.ID)) }

func fmtLabel(p puzzle.Piece, detailed bool) string {
	label := fmt.Sprintf("%d %s", p.ID, styles.Brick(p.Color).Name)
	if !detailed {
		return label
	}
	parts := []string{
		fmt.Sprintf("size: %dx%d", p.Width, p.Depth),
		fmt.Sprintf("layer: %d", p.Position.Z),
		fmt.Sprintf("at: %d,%d", p.Position.X, p.Position.Y),
		fmt.Sprintf("facing: %s", p.Facing),
	}
	return label + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(p puzzle.Piece, label string) []string {
	c := styles.Brick(p.Color)
	attrs := []string{fmt.Sprintf("label=%q", label), fmt.Sprintf("fillcolor=%q", c.Hex)}
	if dark(c.Hex) {
		attrs = append(attrs, "fontcolor=white")
	}
	return attrs
}

// dark reports whether a #rrggbb color needs light text.
func dark(hex string) bool {
	v, err := strconv.ParseUint(strings.TrimPrefix(hex, "#"), 16, 32)
	if err != nil {
		return false
	}
	r, g, b := float64(v>>16&0xff), float64(v>>8&0xff), float64(v&0xff)
	return 0.299*r+0.587*g+0.114*b < 140
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg header with one
// whose width and height match the viewBox.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}
