package puzzle

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"unicode"

	"github.com/matzehuels/brickstack/pkg/core/grid"
	bserrors "github.com/matzehuels/brickstack/pkg/errors"
	"github.com/matzehuels/brickstack/pkg/render/styles"
)

// ReadSubmission parses a player's answer. JSON input must match the grid
// schema; anything else is read as text rows. When width or height is
// positive the submission must have exactly that size.
func ReadSubmission(r io.Reader, width, height int) (grid.Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return grid.Grid{}, bserrors.Wrap(bserrors.ErrCodeInvalidSubmission, err, "read submission")
	}

	var g grid.Grid
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		g, err = parseJSONSubmission(trimmed)
	} else {
		g, err = parseTextSubmission(data)
	}
	if err != nil {
		return grid.Grid{}, err
	}

	if (width > 0 && g.Width != width) || (height > 0 && g.Height != height) {
		return grid.Grid{}, bserrors.New(bserrors.ErrCodeInvalidSubmission,
			"submission is %dx%d, want %dx%d", g.Width, g.Height, width, height)
	}
	return g, nil
}

// Verify reports whether sub reproduces the document's solution outline.
// Position does not matter: both grids are centered before comparing.
func Verify(d *Document, sub grid.Grid) (bool, error) {
	want := d.Solution.Grid
	if sub.Width != want.Width || sub.Height != want.Height {
		return false, bserrors.New(bserrors.ErrCodeInvalidSubmission,
			"submission is %dx%d, solution is %dx%d", sub.Width, sub.Height, want.Width, want.Height)
	}
	return grid.Matches(sub, want), nil
}

func parseJSONSubmission(data []byte) (grid.Grid, error) {
	s, err := loadSchemas()
	if err != nil {
		return grid.Grid{}, bserrors.Wrap(bserrors.ErrCodeInternal, err, "compile schema")
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return grid.Grid{}, bserrors.Wrap(bserrors.ErrCodeInvalidSubmission, err, "decode submission")
	}
	if err := s.grid.Validate(raw); err != nil {
		return grid.Grid{}, bserrors.Wrap(bserrors.ErrCodeInvalidSubmission, err, "submission does not match schema")
	}
	var g grid.Grid
	if err := json.Unmarshal(data, &g); err != nil {
		return grid.Grid{}, bserrors.Wrap(bserrors.ErrCodeInvalidSubmission, err, "decode submission")
	}
	if _, err := grid.FromCells(g.Width, g.Height, g.Cells); err != nil {
		return grid.Grid{}, bserrors.Wrap(bserrors.ErrCodeInvalidSubmission, err, "submission")
	}
	return g, nil
}

// parseTextSubmission reads one row per line, top row first. Blank lines
// and lines starting with '#' are skipped; spaces inside a row are ignored.
func parseTextSubmission(data []byte) (grid.Grid, error) {
	var rows [][]int
	sc := bufio.NewScanner(bytes.NewReader(data))
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		var row []int
		for _, r := range text {
			if unicode.IsSpace(r) {
				continue
			}
			v, ok := styles.ParseSymbol(r)
			if !ok {
				return grid.Grid{}, bserrors.New(bserrors.ErrCodeInvalidSubmission, "line %d: unknown symbol %q", line, r)
			}
			row = append(row, v)
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return grid.Grid{}, bserrors.New(bserrors.ErrCodeInvalidSubmission,
				"line %d: %d cells, want %d", line, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return grid.Grid{}, bserrors.Wrap(bserrors.ErrCodeInvalidSubmission, err, "read submission")
	}
	if len(rows) == 0 {
		return grid.Grid{}, bserrors.New(bserrors.ErrCodeInvalidSubmission, "submission is empty")
	}

	w, h := len(rows[0]), len(rows)
	g := grid.New(w, h)
	for i, row := range rows {
		copy(g.Cells[(h-1-i)*w:], row)
	}
	return g, nil
}
