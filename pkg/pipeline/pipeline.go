// Package pipeline runs the generate → project → render pipeline.
//
// The CLI and any other entry point go through the same [Runner], so
// defaults, validation and caching behave identically everywhere.
//
// # Stages
//
//  1. Generate: build a structure with the randomized attachment search and
//     project it into a [puzzle.Document] (pages, piece displays, solution)
//  2. Render: turn the document into artifacts (txt, json, svg, png, pdf,
//     dot, graph)
//
// Both stages are cached. The document key hashes every generation input;
// artifact keys combine the document ID with the render settings.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Seed:    7,
//	    Pieces:  8,
//	    Formats: []string{"txt", "svg"},
//	})
//	svg := result.Artifacts["svg"]
//
// [puzzle.Document]: github.com/matzehuels/brickstack/pkg/puzzle
package pipeline

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/brickstack/pkg/cache"
	"github.com/matzehuels/brickstack/pkg/core/generator"
	"github.com/matzehuels/brickstack/pkg/core/grid"
	"github.com/matzehuels/brickstack/pkg/core/projection"
	bserrors "github.com/matzehuels/brickstack/pkg/errors"
	"github.com/matzehuels/brickstack/pkg/puzzle"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultSeed is used when no seed is given.
	DefaultSeed = uint64(42)

	// DefaultCellSize is the sheet cell edge in pixels.
	DefaultCellSize = 24.0

	// DefaultColumns is the number of sheet panels per row.
	DefaultColumns = 4
)

// Format constants for output formats.
const (
	FormatText  = "txt"
	FormatJSON  = "json"
	FormatSVG   = "svg"
	FormatPNG   = "png"
	FormatPDF   = "pdf"
	FormatDOT   = "dot"
	FormatGraph = "graph"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText:  true,
	FormatJSON:  true,
	FormatSVG:   true,
	FormatPNG:   true,
	FormatPDF:   true,
	FormatDOT:   true,
	FormatGraph: true,
}

// Extension returns the file suffix for a format's artifact.
func Extension(format string) string {
	if format == FormatGraph {
		return ".graph.svg"
	}
	return "." + format
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Generation options
	Seed         uint64            `json:"seed,omitempty"`
	Pieces       int               `json:"pieces,omitempty"`
	Width        int               `json:"width,omitempty"`
	Depth        int               `json:"depth,omitempty"`
	Height       int               `json:"height,omitempty"`
	Palette      int               `json:"palette,omitempty"`
	Catalog      generator.Catalog `json:"catalog,omitempty"`
	AllowPartial bool              `json:"allow_partial,omitempty"`
	FixedHeight  bool              `json:"fixed_height,omitempty"` // disable height growth
	Refresh      bool              `json:"refresh,omitempty"`      // bypass the puzzle cache

	// Projection options
	RandomRotations  bool            `json:"random_rotations,omitempty"`
	PageRotations    []grid.Rotation `json:"page_rotations,omitempty"`
	Face             projection.Face `json:"face"`
	SolutionRotation grid.Rotation   `json:"solution_rotation"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	CellSize float64  `json:"cell_size,omitempty"`
	Columns  int      `json:"columns,omitempty"`
	HideTop  bool     `json:"hide_top,omitempty"` // pages without the top brick
	Detailed bool     `json:"detailed,omitempty"` // detailed assembly graph labels

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Document is the generated puzzle.
	Document *puzzle.Document

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Placed       int
	Unplaced     int
	Connections  int
	Attempts     int // zero when the puzzle came from the cache
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	PuzzleHit bool // Whether the document came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return bserrors.New(bserrors.ErrCodeInvalidInput,
			"invalid format: %q (must be one of: txt, json, svg, png, pdf, dot, graph)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks every field and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForGenerate(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForGenerate applies generation defaults and checks the result.
func (o *Options) ValidateForGenerate() error {
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Pieces == 0 {
		o.Pieces = generator.DefaultPieces
	}
	if o.Width == 0 {
		o.Width = generator.DefaultSize
	}
	if o.Depth == 0 {
		o.Depth = generator.DefaultSize
	}
	if o.Height == 0 {
		o.Height = generator.DefaultSize
	}
	if o.Palette == 0 {
		o.Palette = generator.DefaultPalette
	}
	if len(o.Catalog) == 0 {
		o.Catalog = generator.DefaultCatalog
	}
	o.setLoggerDefault()

	if err := bserrors.ValidateDimensions(o.Width, o.Depth, o.Height); err != nil {
		return err
	}
	if o.Palette > generator.DefaultPalette {
		return bserrors.New(bserrors.ErrCodeInvalidInput, "palette %d exceeds the %d available colors", o.Palette, generator.DefaultPalette)
	}
	if err := bserrors.ValidatePieceCount(o.Pieces, o.Palette); err != nil {
		return err
	}
	return o.Catalog.Validate()
}

// ValidateForRender applies render defaults and checks the formats.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatText}
	}
	if o.CellSize <= 0 {
		o.CellSize = DefaultCellSize
	}
	if o.Columns <= 0 {
		o.Columns = DefaultColumns
	}
	o.setLoggerDefault()
	return ValidateFormats(o.Formats)
}

func (o *Options) setLoggerDefault() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// PuzzleKeyOpts returns cache key options for the generated document.
func (o *Options) PuzzleKeyOpts() cache.PuzzleKeyOpts {
	shapes := make([]string, len(o.Catalog))
	for i, s := range o.Catalog {
		shapes[i] = fmt.Sprintf("%s*%d", s, s.Weight)
	}
	rots := make([]int, len(o.PageRotations))
	for i, r := range o.PageRotations {
		rots[i] = r.Degrees()
	}
	return cache.PuzzleKeyOpts{
		Seed:             o.Seed,
		Pieces:           o.Pieces,
		Width:            o.Width,
		Depth:            o.Depth,
		Height:           o.Height,
		Palette:          o.Palette,
		Shapes:           shapes,
		AllowPartial:     o.AllowPartial,
		FixedHeight:      o.FixedHeight,
		RandomRotations:  o.RandomRotations,
		PageRotations:    rots,
		Face:             o.Face.String(),
		SolutionRotation: o.SolutionRotation.Degrees(),
	}
}

// ArtifactKeyOpts returns cache key options for one rendered format.
// Settings that do not affect the format are left zero so they do not
// split the cache.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	if slices.Contains([]string{FormatText, FormatSVG, FormatPNG, FormatPDF}, format) {
		k.HideTop = o.HideTop
	}
	if slices.Contains([]string{FormatSVG, FormatPNG, FormatPDF}, format) {
		k.CellSize = o.CellSize
		k.Columns = o.Columns
	}
	if format == FormatDOT || format == FormatGraph {
		k.Detailed = o.Detailed
	}
	return k
}
