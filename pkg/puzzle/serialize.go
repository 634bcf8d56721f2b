package puzzle

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/brickstack/pkg/core/grid"
	bserrors "github.com/matzehuels/brickstack/pkg/errors"
)

// =============================================================================
// Document Serialization API
// =============================================================================

// Marshal converts a document to indented JSON bytes.
func Marshal(d *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTo(d, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes a document as JSON to w.
func Write(d *Document, w io.Writer) error {
	return writeTo(d, w)
}

// WriteFile writes a document to a JSON file.
// The file is created with 0644 permissions.
func WriteFile(d *Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeTo(d, f)
}

// Unmarshal decodes and validates a JSON document.
func Unmarshal(data []byte) (*Document, error) {
	return decode(data)
}

// Read decodes a JSON document from r.
func Read(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return decode(data)
}

// ReadFile reads and validates a JSON document file.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, bserrors.Wrap(bserrors.ErrCodeFileNotFound, err, "puzzle file %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return decode(data)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeTo(d *Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func decode(data []byte) (*Document, error) {
	s, err := loadSchemas()
	if err != nil {
		return nil, bserrors.Wrap(bserrors.ErrCodeInternal, err, "compile schema")
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, bserrors.Wrap(bserrors.ErrCodeInvalidFormat, err, "decode puzzle")
	}
	if err := s.document.Validate(raw); err != nil {
		return nil, bserrors.Wrap(bserrors.ErrCodeInvalidFormat, err, "puzzle does not match schema")
	}

	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, bserrors.Wrap(bserrors.ErrCodeInvalidFormat, err, "decode puzzle")
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// validate checks what the schema cannot: cell counts and grid sizes
// against the structure footprint. Quarter turns may swap the two sides.
func (d *Document) validate() error {
	w, h := d.Dimensions.Width, d.Dimensions.Depth
	check := func(name string, g grid.Grid) error {
		if _, err := grid.FromCells(g.Width, g.Height, g.Cells); err != nil {
			return bserrors.Wrap(bserrors.ErrCodeInvalidFormat, err, "%s", name)
		}
		if (g.Width != w || g.Height != h) && (g.Width != h || g.Height != w) {
			return bserrors.New(bserrors.ErrCodeInvalidFormat, "%s: size %dx%d does not fit %dx%d", name, g.Width, g.Height, w, h)
		}
		return nil
	}
	for _, p := range d.Pages {
		if err := check(fmt.Sprintf("page %d", p.Index), p.Grid); err != nil {
			return err
		}
		if err := check(fmt.Sprintf("page %d base", p.Index), p.Base); err != nil {
			return err
		}
	}
	for i, g := range d.Displays {
		if err := check(fmt.Sprintf("display %d", i+1), g); err != nil {
			return err
		}
	}
	if len(d.Pages) != len(d.Connections) {
		return bserrors.New(bserrors.ErrCodeInvalidFormat, "%d pages for %d connections", len(d.Pages), len(d.Connections))
	}
	return check("solution", d.Solution.Grid)
}
