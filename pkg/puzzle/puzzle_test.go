package puzzle

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/brickstack/pkg/core/generator"
	"github.com/matzehuels/brickstack/pkg/core/grid"
	"github.com/matzehuels/brickstack/pkg/core/projection"
	"github.com/matzehuels/brickstack/pkg/core/structure"
	bserrors "github.com/matzehuels/brickstack/pkg/errors"
)

func build(t *testing.T, seed uint64, opts Options) *Document {
	t.Helper()
	g := generator.New(generator.NewSource(seed))
	if _, err := g.Generate(10, structure.Dimensions{Width: 8, Depth: 8, Height: 8}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	opts.Seed = seed
	doc, err := Build(g, opts)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return doc
}

func TestBuild(t *testing.T) {
	doc := build(t, 7, Options{PageRotations: []grid.Rotation{grid.Rot0, grid.Rot90}})

	if doc.Version != FormatVersion {
		t.Errorf("Version = %d, want %d", doc.Version, FormatVersion)
	}
	if len(doc.Pieces) != 10 {
		t.Errorf("len(Pieces) = %d, want 10", len(doc.Pieces))
	}
	if len(doc.Displays) != len(doc.Pieces) {
		t.Errorf("len(Displays) = %d, want %d", len(doc.Displays), len(doc.Pieces))
	}
	if len(doc.Pages) != len(doc.Connections) {
		t.Fatalf("len(Pages) = %d, want %d", len(doc.Pages), len(doc.Connections))
	}
	for i, p := range doc.Pages {
		if p.Index != i+1 {
			t.Errorf("page %d: Index = %d", i, p.Index)
		}
		if want := grid.Rotation(i % 2); p.Rotation != want {
			t.Errorf("page %d: Rotation = %v, want %v", i, p.Rotation, want)
		}
		if grid.Equal(p.Grid, p.Base) {
			t.Errorf("page %d: top brick not painted", i)
		}
		if p.Base.IsEmpty() {
			t.Errorf("page %d: base is empty", i)
		}
	}
	for i := 1; i < len(doc.Pieces); i++ {
		if doc.Pieces[i-1].ID >= doc.Pieces[i].ID {
			t.Errorf("pieces not sorted by ID at %d", i)
		}
	}
	if doc.Solution.Grid.IsEmpty() {
		t.Error("solution is empty")
	}
}

func TestBuildIDIsContentHash(t *testing.T) {
	a := build(t, 42, Options{})
	b := build(t, 42, Options{})
	c := build(t, 43, Options{})
	if a.ID == "" {
		t.Fatal("ID is empty")
	}
	if a.ID != b.ID {
		t.Errorf("same seed: ID %s != %s", a.ID, b.ID)
	}
	if a.ID == c.ID {
		t.Errorf("different seeds share ID %s", a.ID)
	}
}

func TestBuildBottomSolution(t *testing.T) {
	top := build(t, 3, Options{})
	bottom := build(t, 3, Options{Face: projection.Bottom})
	if bottom.Solution.Face != projection.Bottom {
		t.Errorf("Face = %v, want bottom", bottom.Solution.Face)
	}
	if top.Solution.Grid.Count() != bottom.Solution.Grid.Count() {
		t.Errorf("outline sizes differ: top %d, bottom %d", top.Solution.Grid.Count(), bottom.Solution.Grid.Count())
	}
}

func TestRoundTrip(t *testing.T) {
	doc := build(t, 11, Options{RandomRotations: true})
	data, err := Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	again, err := Marshal(got)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.Equal(data, again) {
		t.Error("document changed across a round trip")
	}

	path := filepath.Join(t.TempDir(), "puzzle.json")
	if err := WriteFile(doc, path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	fromFile, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if fromFile.ID != doc.ID {
		t.Errorf("ReadFile ID = %s, want %s", fromFile.ID, doc.ID)
	}
}

func TestUnmarshalRejects(t *testing.T) {
	doc := build(t, 5, Options{})

	tests := []struct {
		name   string
		mutate func(d *Document)
	}{
		{"wrong version", func(d *Document) { d.Version = 9 }},
		{"bad color", func(d *Document) { d.Pieces[0].Color = 12 }},
		{"short solution", func(d *Document) { d.Solution.Grid.Cells = d.Solution.Grid.Cells[1:] }},
		{"wrong display size", func(d *Document) { d.Displays[0] = grid.New(3, 3) }},
		{"missing page", func(d *Document) { d.Pages = d.Pages[1:] }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, _ := Marshal(doc)
			d, _ := Unmarshal(data)
			tt.mutate(d)
			bad, err := Marshal(d)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			_, err = Unmarshal(bad)
			if !bserrors.Is(err, bserrors.ErrCodeInvalidFormat) {
				t.Errorf("Unmarshal error = %v, want %s", err, bserrors.ErrCodeInvalidFormat)
			}
		})
	}

	if _, err := Unmarshal([]byte("{")); !bserrors.Is(err, bserrors.ErrCodeInvalidFormat) {
		t.Errorf("truncated JSON error = %v", err)
	}
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.json")); !bserrors.Is(err, bserrors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v", err)
	}
}

func TestReadSubmissionText(t *testing.T) {
	in := "# top row first\n" +
		"..\n" +
		"R.\n" +
		"\n" +
		"r b\n"
	g, err := ReadSubmission(strings.NewReader(in), 2, 3)
	if err != nil {
		t.Fatalf("ReadSubmission: %v", err)
	}
	want := []int{1, 3, 1, 0, 0, 0}
	if !grid.Equal(g, grid.Grid{Width: 2, Height: 3, Cells: want}) {
		t.Errorf("cells = %v, want %v", g.Cells, want)
	}
}

func TestReadSubmissionJSON(t *testing.T) {
	in := `{"width": 2, "height": 2, "cells": [0, 1, 0, 1]}`
	g, err := ReadSubmission(strings.NewReader(in), 0, 0)
	if err != nil {
		t.Fatalf("ReadSubmission: %v", err)
	}
	if g.Width != 2 || g.Height != 2 || g.Count() != 2 {
		t.Errorf("got %dx%d with %d cells", g.Width, g.Height, g.Count())
	}
}

func TestReadSubmissionErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		w, h int
	}{
		{"empty", "\n\n", 0, 0},
		{"unknown symbol", "RX\n", 0, 0},
		{"ragged rows", "RR\nR\n", 0, 0},
		{"wrong size", "RR\nRR\n", 3, 2},
		{"json schema", `{"width": 1, "height": 1, "cells": [42]}`, 0, 0},
		{"json cell count", `{"width": 2, "height": 2, "cells": [1]}`, 0, 0},
		{"json syntax", `{"width": 2`, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadSubmission(strings.NewReader(tt.in), tt.w, tt.h)
			if !bserrors.Is(err, bserrors.ErrCodeInvalidSubmission) {
				t.Errorf("error = %v, want %s", err, bserrors.ErrCodeInvalidSubmission)
			}
		})
	}
}

func TestVerify(t *testing.T) {
	doc := build(t, 21, Options{})
	sol := doc.Solution.Grid

	ok, err := Verify(doc, sol)
	if err != nil || !ok {
		t.Errorf("Verify(solution) = %v, %v; want true, nil", ok, err)
	}

	box, _ := grid.BoundingBox(sol)
	shifted := grid.Translate(sol, -box.MinX, -box.MinY)
	if ok, _ := Verify(doc, shifted); !ok {
		t.Error("Verify rejects a translated solution")
	}

	wrong := sol.Clone()
	for i, v := range wrong.Cells {
		if v != grid.Empty {
			wrong.Cells[i] = grid.Empty
			break
		}
	}
	if ok, _ := Verify(doc, wrong); ok {
		t.Error("Verify accepts an altered outline")
	}

	if _, err := Verify(doc, grid.New(3, 3)); !bserrors.Is(err, bserrors.ErrCodeInvalidSubmission) {
		t.Errorf("size mismatch error = %v", err)
	}
}
