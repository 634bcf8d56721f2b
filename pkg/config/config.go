// Package config loads brickstack settings from a TOML or YAML file.
//
// The format follows the file extension:
//
//	[puzzle]
//	pieces = 10
//	width = 8
//	depth = 8
//	height = 8
//
//	[[puzzle.shapes]]
//	weight = 5
//	width = 3
//	depth = 2
//
//	[solution]
//	face = "bottom"
//	rotation = "90"
//
// Missing fields keep their [Default] values. Command-line flags override
// whatever the file sets.
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/brickstack/pkg/core/generator"
	"github.com/matzehuels/brickstack/pkg/core/grid"
	"github.com/matzehuels/brickstack/pkg/core/projection"
	bserrors "github.com/matzehuels/brickstack/pkg/errors"
)

// Config is the root of a configuration file.
type Config struct {
	Puzzle   Puzzle   `toml:"puzzle" yaml:"puzzle"`
	Pages    Pages    `toml:"pages" yaml:"pages"`
	Solution Solution `toml:"solution" yaml:"solution"`
	Render   Render   `toml:"render" yaml:"render"`
	Cache    Cache    `toml:"cache" yaml:"cache"`
}

// Puzzle controls generation.
type Puzzle struct {
	Pieces       int               `toml:"pieces" yaml:"pieces"`
	Width        int               `toml:"width" yaml:"width"`
	Depth        int               `toml:"depth" yaml:"depth"`
	Height       int               `toml:"height" yaml:"height"`
	Palette      int               `toml:"palette" yaml:"palette"`
	Seed         uint64            `toml:"seed" yaml:"seed"`
	AllowPartial bool              `toml:"allow_partial" yaml:"allow_partial"`
	FixedHeight  bool              `toml:"fixed_height" yaml:"fixed_height"`
	Shapes       generator.Catalog `toml:"shapes,omitempty" yaml:"shapes,omitempty"`
}

// Pages controls manual page orientation.
type Pages struct {
	Rotations       []string `toml:"rotations,omitempty" yaml:"rotations,omitempty"`
	RandomRotations bool     `toml:"random_rotations" yaml:"random_rotations"`
}

// Solution controls which outline the player reproduces.
type Solution struct {
	Face     string `toml:"face" yaml:"face"`
	Rotation string `toml:"rotation" yaml:"rotation"`
}

// Render controls output artifacts.
type Render struct {
	Formats  []string `toml:"formats" yaml:"formats"`
	CellSize float64  `toml:"cell_size" yaml:"cell_size"`
	Columns  int      `toml:"columns" yaml:"columns"`
	HideTop  bool     `toml:"hide_top" yaml:"hide_top"`
	Detailed bool     `toml:"detailed" yaml:"detailed"`
}

// Cache selects the cache backend.
type Cache struct {
	Backend         string        `toml:"backend" yaml:"backend"`
	Dir             string        `toml:"dir,omitempty" yaml:"dir,omitempty"`
	TTL             time.Duration `toml:"ttl,omitempty" yaml:"ttl,omitempty"`
	RedisAddr       string        `toml:"redis_addr,omitempty" yaml:"redis_addr,omitempty"`
	RedisPassword   string        `toml:"redis_password,omitempty" yaml:"redis_password,omitempty"`
	RedisDB         int           `toml:"redis_db,omitempty" yaml:"redis_db,omitempty"`
	MongoURI        string        `toml:"mongo_uri,omitempty" yaml:"mongo_uri,omitempty"`
	MongoDatabase   string        `toml:"mongo_database,omitempty" yaml:"mongo_database,omitempty"`
	MongoCollection string        `toml:"mongo_collection,omitempty" yaml:"mongo_collection,omitempty"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Puzzle: Puzzle{
			Pieces:  generator.DefaultPieces,
			Width:   generator.DefaultSize,
			Depth:   generator.DefaultSize,
			Height:  generator.DefaultSize,
			Palette: generator.DefaultPalette,
		},
		Solution: Solution{Face: projection.Top.String(), Rotation: grid.Rot0.String()},
		Render:   Render{Formats: []string{"txt"}, CellSize: 24, Columns: 4},
		Cache:    Cache{Backend: "file"},
	}
}

// Load reads path over the defaults and validates the result. An empty
// path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, bserrors.Wrap(bserrors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return cfg, bserrors.Wrap(bserrors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, bserrors.Wrap(bserrors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, bserrors.Wrap(bserrors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
	default:
		return cfg, bserrors.New(bserrors.ErrCodeInvalidConfig, "unsupported config format %q (use .toml, .yaml or .yml)", ext)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, bserrors.Wrap(bserrors.ErrCodeInvalidConfig, err, "%s", path)
	}
	return cfg, nil
}

// WriteFile stores cfg at path in the format its extension names.
func WriteFile(cfg Config, path string) error {
	var buf bytes.Buffer
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return bserrors.Wrap(bserrors.ErrCodeInternal, err, "encode toml")
		}
	case ".yaml", ".yml":
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return bserrors.Wrap(bserrors.ErrCodeInternal, err, "encode yaml")
		}
		if err := enc.Close(); err != nil {
			return bserrors.Wrap(bserrors.ErrCodeInternal, err, "encode yaml")
		}
	default:
		return bserrors.New(bserrors.ErrCodeInvalidConfig, "unsupported config format %q (use .toml, .yaml or .yml)", ext)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// Validate checks values that would otherwise fail deep inside generation.
func (c Config) Validate() error {
	p := c.Puzzle
	if err := bserrors.ValidateDimensions(p.Width, p.Depth, p.Height); err != nil {
		return err
	}
	if err := bserrors.ValidatePieceCount(p.Pieces, p.Palette); err != nil {
		return err
	}
	if p.Palette > generator.DefaultPalette {
		return bserrors.New(bserrors.ErrCodeInvalidInput, "palette %d exceeds the %d available colors", p.Palette, generator.DefaultPalette)
	}
	if len(p.Shapes) > 0 {
		if err := p.Shapes.Validate(); err != nil {
			return err
		}
	}
	if _, err := c.PageRotations(); err != nil {
		return err
	}
	if _, err := c.SolutionFace(); err != nil {
		return err
	}
	if _, err := c.SolutionRotation(); err != nil {
		return err
	}
	return nil
}

// Catalog returns the configured shapes, or the default catalog.
func (c Config) Catalog() generator.Catalog {
	if len(c.Puzzle.Shapes) == 0 {
		return generator.DefaultCatalog
	}
	return c.Puzzle.Shapes
}

// PageRotations parses [pages] rotations.
func (c Config) PageRotations() ([]grid.Rotation, error) {
	out := make([]grid.Rotation, 0, len(c.Pages.Rotations))
	for _, s := range c.Pages.Rotations {
		r, err := grid.ParseRotation(s)
		if err != nil {
			return nil, bserrors.Wrap(bserrors.ErrCodeInvalidInput, err, "pages.rotations")
		}
		out = append(out, r)
	}
	return out, nil
}

// SolutionFace parses [solution] face. Empty means top.
func (c Config) SolutionFace() (projection.Face, error) {
	if c.Solution.Face == "" {
		return projection.Top, nil
	}
	f, err := projection.ParseFace(c.Solution.Face)
	if err != nil {
		return 0, bserrors.Wrap(bserrors.ErrCodeInvalidInput, err, "solution.face")
	}
	return f, nil
}

// SolutionRotation parses [solution] rotation. Empty means none.
func (c Config) SolutionRotation() (grid.Rotation, error) {
	if c.Solution.Rotation == "" {
		return grid.Rot0, nil
	}
	r, err := grid.ParseRotation(c.Solution.Rotation)
	if err != nil {
		return 0, bserrors.Wrap(bserrors.ErrCodeInvalidInput, err, "solution.rotation")
	}
	return r, nil
}
