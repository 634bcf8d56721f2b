package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// MaxGridSide bounds each structure dimension. Projections allocate
// width*depth cells per page, so unbounded sizes are rejected early.
const MaxGridSide = 64

// ValidateDimensions checks that a structure size is usable.
func ValidateDimensions(width, depth, height int) error {
	for _, d := range []struct {
		name string
		v    int
	}{{"width", width}, {"depth", depth}, {"height", height}} {
		if d.v <= 0 {
			return New(ErrCodeInvalidInput, "%s must be positive, got %d", d.name, d.v)
		}
		if d.v > MaxGridSide {
			return New(ErrCodeInvalidInput, "%s too large (max %d), got %d", d.name, MaxGridSide, d.v)
		}
	}
	return nil
}

// ValidatePieceCount checks that every piece can receive a distinct color.
func ValidatePieceCount(pieces, palette int) error {
	if pieces < 1 {
		return New(ErrCodeInvalidInput, "piece count must be at least 1, got %d", pieces)
	}
	if palette < 1 {
		return New(ErrCodeInvalidInput, "palette must have at least 1 color, got %d", palette)
	}
	if pieces > palette {
		return New(ErrCodeInvalidInput, "piece count %d exceeds palette size %d", pieces, palette)
	}
	return nil
}

// ValidateFilename validates an output base name for safety.
// It must be a plain name without directory components.
func ValidateFilename(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "filename cannot be empty")
	}
	if len(name) > 255 {
		return New(ErrCodeInvalidPath, "filename too long (max 255 characters)")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "filename contains invalid control characters")
		}
	}
	if filepath.Base(name) != name || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return New(ErrCodeInvalidPath, "filename must not contain path components: %q", name)
	}
	return nil
}
