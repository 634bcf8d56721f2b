package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/brickstack/pkg/observability"
	"github.com/matzehuels/brickstack/pkg/puzzle"
	"github.com/matzehuels/brickstack/pkg/render/nodelink"
	"github.com/matzehuels/brickstack/pkg/render/sink"
)

// Render generates output artifacts in the requested formats.
// opts must already carry render defaults.
func Render(ctx context.Context, doc *puzzle.Document, opts Options) (artifacts map[string][]byte, err error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	defer func() {
		hooks.OnRenderComplete(ctx, opts.Formats, time.Now().Sub(start), err)
	}()

	sheetOpts := buildSheetOptions(opts)
	artifacts = make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var data []byte
		var err error

		switch format {
		case FormatText:
			data = sink.RenderText(doc, sheetOpts...)
		case FormatJSON:
			data, err = puzzle.Marshal(doc)
		case FormatSVG:
			data = sink.RenderSVG(doc, sheetOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(doc, sheetOpts...)
		case FormatPDF:
			data, err = sink.RenderPDF(doc, sheetOpts...)
		case FormatDOT:
			data = []byte(nodelink.ToDOT(doc, nodelink.Options{Detailed: opts.Detailed}))
		case FormatGraph:
			data, err = nodelink.RenderSVG(ctx, nodelink.ToDOT(doc, nodelink.Options{Detailed: opts.Detailed}))
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// buildSheetOptions builds the instruction sheet options.
func buildSheetOptions(opts Options) []sink.Option {
	sheetOpts := []sink.Option{
		sink.WithCellSize(opts.CellSize),
		sink.WithColumns(opts.Columns),
	}
	if opts.HideTop {
		sheetOpts = append(sheetOpts, sink.WithoutTop())
	}
	return sheetOpts
}
