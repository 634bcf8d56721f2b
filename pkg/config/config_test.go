package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/matzehuels/brickstack/pkg/core/generator"
	"github.com/matzehuels/brickstack/pkg/core/grid"
	"github.com/matzehuels/brickstack/pkg/core/projection"
	bserrors "github.com/matzehuels/brickstack/pkg/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.Puzzle.Pieces != generator.DefaultPieces {
		t.Errorf("Pieces = %d, want %d", cfg.Puzzle.Pieces, generator.DefaultPieces)
	}
	if !reflect.DeepEqual(cfg.Catalog(), generator.DefaultCatalog) {
		t.Error("empty shapes should fall back to the default catalog")
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") = %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Error("Load(\"\") should return defaults")
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "brickstack.toml", `
[puzzle]
pieces = 6
seed = 99
fixed_height = true

[[puzzle.shapes]]
weight = 1
width = 2
depth = 2

[pages]
rotations = ["0", "east"]

[solution]
face = "bottom"
rotation = "180"

[cache]
backend = "redis"
ttl = "2h"
redis_addr = "cache:6379"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Puzzle.Pieces != 6 || cfg.Puzzle.Seed != 99 || !cfg.Puzzle.FixedHeight {
		t.Errorf("Puzzle = %+v", cfg.Puzzle)
	}
	if cfg.Puzzle.Width != generator.DefaultSize {
		t.Errorf("Width = %d, want default %d", cfg.Puzzle.Width, generator.DefaultSize)
	}
	if want := (generator.Catalog{{Weight: 1, Width: 2, Depth: 2}}); !reflect.DeepEqual(cfg.Catalog(), want) {
		t.Errorf("Catalog = %v, want %v", cfg.Catalog(), want)
	}
	rots, _ := cfg.PageRotations()
	if want := []grid.Rotation{grid.Rot0, grid.Rot270}; !reflect.DeepEqual(rots, want) {
		t.Errorf("PageRotations = %v, want %v", rots, want)
	}
	if f, _ := cfg.SolutionFace(); f != projection.Bottom {
		t.Errorf("SolutionFace = %v, want bottom", f)
	}
	if r, _ := cfg.SolutionRotation(); r != grid.Rot180 {
		t.Errorf("SolutionRotation = %v, want 180", r)
	}
	if cfg.Cache.Backend != "redis" || cfg.Cache.RedisAddr != "cache:6379" || cfg.Cache.TTL != 2*time.Hour {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "brickstack.yml", `
puzzle:
  pieces: 4
  width: 6
  depth: 5
render:
  formats: [svg, png]
  columns: 3
cache:
  backend: mongo
  ttl: 30m
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Puzzle.Pieces != 4 || cfg.Puzzle.Width != 6 || cfg.Puzzle.Depth != 5 {
		t.Errorf("Puzzle = %+v", cfg.Puzzle)
	}
	if !reflect.DeepEqual(cfg.Render.Formats, []string{"svg", "png"}) || cfg.Render.Columns != 3 {
		t.Errorf("Render = %+v", cfg.Render)
	}
	if cfg.Render.CellSize != 24 {
		t.Errorf("CellSize = %v, want default 24", cfg.Render.CellSize)
	}
	if cfg.Cache.TTL != 30*time.Minute {
		t.Errorf("TTL = %v, want 30m", cfg.Cache.TTL)
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Puzzle.Seed = 12345
	cfg.Puzzle.Shapes = generator.Catalog{{Weight: 2, Width: 3, Depth: 1}}
	cfg.Pages.Rotations = []string{"90", "180"}
	cfg.Solution.Face = "bottom"
	cfg.Cache.TTL = 90 * time.Minute

	for _, name := range []string{"out.toml", "out.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := WriteFile(cfg, path); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if !reflect.DeepEqual(got, cfg) {
				t.Errorf("round trip = %+v, want %+v", got, cfg)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		code    bserrors.Code
	}{
		{"unknown extension", "c.json", `{}`, bserrors.ErrCodeInvalidConfig},
		{"bad toml", "c.toml", `[puzzle`, bserrors.ErrCodeInvalidConfig},
		{"bad yaml", "c.yaml", "puzzle: [", bserrors.ErrCodeInvalidConfig},
		{"too many pieces", "c.toml", "[puzzle]\npieces = 11", bserrors.ErrCodeInvalidConfig},
		{"zero width", "c.toml", "[puzzle]\nwidth = 0", bserrors.ErrCodeInvalidConfig},
		{"bad face", "c.yaml", "solution:\n  face: side", bserrors.ErrCodeInvalidConfig},
		{"bad rotation", "c.toml", "[pages]\nrotations = [\"45\"]", bserrors.ErrCodeInvalidConfig},
		{"bad shape", "c.toml", "[[puzzle.shapes]]\nweight = 0\nwidth = 1\ndepth = 1", bserrors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			if !bserrors.Is(err, tt.code) {
				t.Errorf("Load error = %v, want %s", err, tt.code)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !bserrors.Is(err, bserrors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v", err)
	}
}
