// Package pkg provides the core libraries for brickstack puzzle generation.
//
// # Overview
//
// Brickstack stacks rectangular studded bricks into a random structure and
// turns it into a puzzle: the loose pieces, an assembly manual with one page
// per brick-on-brick connection, and the outline of the finished build seen
// from the top or the bottom. The pkg directory is organized into these areas:
//
//  1. [core] - Domain logic (brick geometry, placement, generation, projection)
//  2. [puzzle] - The serialized puzzle document and submission checking
//  3. [render] - Instruction sheets (text, SVG, PNG, PDF) and assembly graphs
//  4. [pipeline] - Orchestration (generate → project → render) with caching
//  5. [cache], [config], [observability], [errors] - Supporting infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	seed + shape catalog
//	         ↓
//	    [core/generator] (randomized attachment search)
//	         ↓
//	    [core/structure] (placement, shifting, connections)
//	         ↓
//	    [core/projection] (pages, piece displays, solution)
//	         ↓
//	    [puzzle] (document with content-derived ID)
//	         ↓
//	    txt/json/svg/png/pdf/dot output
//
// # Quick Start
//
// Generate a puzzle and render its instruction sheet:
//
//	import (
//	    "github.com/matzehuels/brickstack/pkg/core/generator"
//	    "github.com/matzehuels/brickstack/pkg/core/structure"
//	    "github.com/matzehuels/brickstack/pkg/puzzle"
//	    "github.com/matzehuels/brickstack/pkg/render/sink"
//	)
//
//	g := generator.New(generator.NewSource(7))
//	if _, err := g.Generate(8, structure.Dimensions{Width: 8, Depth: 8, Height: 8}); err != nil {
//	    return err
//	}
//	doc, _ := puzzle.Build(g, puzzle.Options{Seed: 7})
//	svg := sink.RenderSVG(doc)
//
// # Main Packages
//
// ## Core Domain Logic
//
// [core/brick] - Brick geometry: size, position, facing, footprint and studs.
//
// [core/structure] - The placement engine. AddBrick rejects overlaps, grows
// or shifts the whole structure when a brick lands outside it, and records
// the connections a new brick makes with the layers above and below.
//
// [core/generator] - Weighted shape draws, shuffled colors and the
// randomized search for a stud to attach each new piece to.
//
// [core/grid] - Row-major color grids with rotation, mirroring, centering
// and placement-invariant matching.
//
// [core/projection] - Manual pages, piece displays and the solution outline.
//
// ## Output
//
// [render/sink] - Instruction sheets laid out as panels (text, SVG, PNG, PDF).
//
// [render/nodelink] - Assembly graphs in DOT, rendered with Graphviz.
//
// [render] - Format conversion helpers (SVG to PDF/PNG).
//
// ## Infrastructure
//
// [pipeline] - Complete generate → render pipeline used by the CLI. Ensures
// consistent defaults, validation and caching across entry points.
//
// [cache] - File (zstd), Redis, MongoDB and null cache backends with
// hashed keys.
//
// [config] - TOML and YAML configuration files.
//
// [observability] - Pipeline and cache hooks with a Prometheus
// implementation.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/core/structure/...     # Specific package
//	go test -run Example                 # Examples only
//	go test -tags integration ./pkg/...  # Include Redis and MongoDB tests
//
// [core]: https://pkg.go.dev/github.com/matzehuels/brickstack/pkg/core
// [core/brick]: https://pkg.go.dev/github.com/matzehuels/brickstack/pkg/core/brick
// [core/structure]: https://pkg.go.dev/github.com/matzehuels/brickstack/pkg/core/structure
// [core/generator]: https://pkg.go.dev/github.com/matzehuels/brickstack/pkg/core/generator
// [core/grid]: https://pkg.go.dev/github.com/matzehuels/brickstack/pkg/core/grid
// [core/projection]: https://pkg.go.dev/github.com/matzehuels/brickstack/pkg/core/projection
// [puzzle]: https://pkg.go.dev/github.com/matzehuels/brickstack/pkg/puzzle
// [render]: https://pkg.go.dev/github.com/matzehuels/brickstack/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/brickstack/pkg/render/sink
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/brickstack/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/brickstack/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/brickstack/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/brickstack/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/brickstack/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/brickstack/pkg/errors
package pkg
