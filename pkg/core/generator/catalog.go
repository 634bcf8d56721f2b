package generator

import (
	"fmt"

	bserrors "github.com/matzehuels/brickstack/pkg/errors"
)

// Shape is a brick size with a relative draw weight.
type Shape struct {
	Weight int `json:"weight" toml:"weight" yaml:"weight"`
	Width  int `json:"width" toml:"width" yaml:"width"`
	Depth  int `json:"depth" toml:"depth" yaml:"depth"`
}

func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Depth)
}

// Catalog lists the shapes pieces are drawn from.
type Catalog []Shape

// DefaultCatalog favors 3x2 bricks.
var DefaultCatalog = Catalog{
	{Weight: 5, Width: 3, Depth: 2},
	{Weight: 2, Width: 4, Depth: 2},
	{Weight: 3, Width: 3, Depth: 1},
	{Weight: 3, Width: 4, Depth: 1},
	{Weight: 2, Width: 2, Depth: 2},
}

// Validate checks that the catalog can produce at least one shape.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return bserrors.New(bserrors.ErrCodeInvalidInput, "catalog is empty")
	}
	for i, s := range c {
		if s.Weight <= 0 {
			return bserrors.New(bserrors.ErrCodeInvalidInput, "shape %d (%s): weight must be positive", i, s)
		}
		if s.Width <= 0 || s.Depth <= 0 {
			return bserrors.New(bserrors.ErrCodeInvalidInput, "shape %d (%s): size must be positive", i, s)
		}
	}
	return nil
}

// pool expands the catalog so that a uniform draw over the result honors
// the weights.
func (c Catalog) pool() []Shape {
	var out []Shape
	for _, s := range c {
		for range s.Weight {
			out = append(out, s)
		}
	}
	return out
}
