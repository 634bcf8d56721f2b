package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/brickstack/pkg/cache"
	"github.com/matzehuels/brickstack/pkg/core/generator"
	"github.com/matzehuels/brickstack/pkg/core/structure"
	"github.com/matzehuels/brickstack/pkg/observability"
	"github.com/matzehuels/brickstack/pkg/puzzle"
)

// Cache key types reported to observability hooks.
const (
	keyTypePuzzle   = "puzzle"
	keyTypeArtifact = "artifact"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// PuzzleTTL overrides cache.TTLPuzzle when positive.
	PuzzleTTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete generate → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Generate
	genStart := time.Now()
	doc, stats, hit, err := r.GenerateWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	result.Document = doc
	result.Stats.GenerateTime = time.Since(genStart)
	result.Stats.Placed = len(doc.Pieces)
	result.Stats.Unplaced = len(doc.Unplaced)
	result.Stats.Connections = len(doc.Connections)
	result.Stats.Attempts = stats.Attempts
	result.CacheInfo.PuzzleHit = hit

	r.Logger.Info("generated puzzle",
		"id", doc.ID,
		"placed", result.Stats.Placed,
		"pages", len(doc.Pages),
		"cached", hit,
		"duration", result.Stats.GenerateTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, doc, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// GenerateWithCacheInfo builds a puzzle document with caching and returns
// the generator statistics and cache hit info. Statistics are zero on a hit.
func (r *Runner) GenerateWithCacheInfo(ctx context.Context, opts Options) (*puzzle.Document, generator.Stats, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForGenerate(); err != nil {
		return nil, generator.Stats{}, false, err
	}

	cacheKey := r.Keyer.PuzzleKey(opts.PuzzleKeyOpts())
	hooks := observability.Cache()

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if doc, err := puzzle.Unmarshal(data); err == nil {
				hooks.OnCacheHit(ctx, keyTypePuzzle)
				return doc, generator.Stats{}, true, nil
			}
			// Stale or corrupt entry: regenerate below
		}
		hooks.OnCacheMiss(ctx, keyTypePuzzle)
	}

	doc, stats, err := Generate(ctx, opts)
	if err != nil {
		return nil, stats, false, err
	}

	if data, err := puzzle.Marshal(doc); err == nil {
		ttl := cache.TTLPuzzle
		if r.PuzzleTTL > 0 {
			ttl = r.PuzzleTTL
		}
		if err := r.Cache.Set(ctx, cacheKey, data, ttl); err == nil {
			hooks.OnCacheSet(ctx, keyTypePuzzle, len(data))
		} else {
			r.Logger.Debug("cache write failed", "key", cacheKey, "error", err)
		}
	}

	return doc, stats, false, nil
}

// Generate is a convenience wrapper that calls GenerateWithCacheInfo and discards the cache hit info.
func (r *Runner) Generate(ctx context.Context, opts Options) (*puzzle.Document, error) {
	doc, _, _, err := r.GenerateWithCacheInfo(ctx, opts)
	return doc, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, doc *puzzle.Document, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	hooks := observability.Cache()

	// Try to get all formats from cache
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(doc.ID, opts.ArtifactKeyOpts(format))
		data, hit, err := r.Cache.Get(ctx, cacheKey)
		if err != nil || !hit {
			hooks.OnCacheMiss(ctx, keyTypeArtifact)
			break
		}
		hooks.OnCacheHit(ctx, keyTypeArtifact)
		artifacts[format] = data
	}
	if len(artifacts) == len(opts.Formats) {
		return artifacts, true, nil
	}

	rendered, err := Render(ctx, doc, opts)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(doc.ID, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact); err == nil {
			hooks.OnCacheSet(ctx, keyTypeArtifact, len(data))
		}
	}

	return rendered, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, doc *puzzle.Document, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, doc, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// Generate runs the generator and projects its structure into a document
// without touching any cache. opts must already carry generation defaults.
func Generate(ctx context.Context, opts Options) (*puzzle.Document, generator.Stats, error) {
	hooks := observability.Pipeline()
	hooks.OnGenerateStart(ctx, opts.Pieces)
	start := time.Now()

	g := generator.New(generator.NewSource(opts.Seed),
		generator.WithCatalog(opts.Catalog),
		generator.WithPalette(opts.Palette),
		generator.WithAllowPartial(opts.AllowPartial),
		generator.WithHeightAdjustments(!opts.FixedHeight),
		generator.WithLogger(opts.Logger),
	)

	doc, err := generate(g, opts)
	stats := g.Stats()
	hooks.OnGenerateComplete(ctx, stats.Placed, stats.Attempts, time.Since(start), err)
	if err != nil {
		return nil, stats, err
	}
	return doc, stats, nil
}

func generate(g *generator.Generator, opts Options) (*puzzle.Document, error) {
	dims := structure.Dimensions{Width: opts.Width, Depth: opts.Depth, Height: opts.Height}
	if _, err := g.Generate(opts.Pieces, dims); err != nil {
		return nil, err
	}
	return puzzle.Build(g, puzzle.Options{
		Seed:             opts.Seed,
		RandomRotations:  opts.RandomRotations,
		PageRotations:    opts.PageRotations,
		Face:             opts.Face,
		SolutionRotation: opts.SolutionRotation,
	})
}
