package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/brickstack/pkg/core/brick"
	"github.com/matzehuels/brickstack/pkg/puzzle"
)

func testDoc() *puzzle.Document {
	return &puzzle.Document{
		Pieces: []puzzle.Piece{
			{ID: 0, Width: 3, Depth: 2, Color: 0, Position: &brick.Point{}, Facing: brick.North},
			{ID: 1, Width: 2, Depth: 2, Color: 9, Position: &brick.Point{X: 1, Y: 1, Z: 1}, Facing: brick.East},
			{ID: 2, Width: 1, Depth: 1, Color: 5, Position: &brick.Point{X: 2, Z: 1}, Facing: brick.North},
		},
		Unplaced: []puzzle.Piece{{ID: 3, Width: 1, Depth: 1, Color: 6}},
		Pages: []puzzle.Page{
			{Index: 1, Top: 1, Bottom: 0},
			{Index: 2, Top: 2, Bottom: 0},
		},
	}
}

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(testDoc(), Options{})

	for _, want := range []string{
		"digraph G",
		`"0" [label="0 red", fillcolor="#c91a09", fontcolor=white]`,
		`"1" [label="1 black"`,
		`"1" -> "0" [label="p1"]`,
		`"2" -> "0" [label="p2"]`,
		`{ rank=same; "1"; "2"; }`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q in:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, `"3"`) {
		t.Error("ToDOT() includes an unplaced brick")
	}
	if strings.Index(dot, `rank=same; "1"`) > strings.Index(dot, `rank=same; "0"`) {
		t.Error("ToDOT() ranks lower layers first")
	}
}

func TestToDOT_Detailed(t *testing.T) {
	dot := ToDOT(testDoc(), Options{Detailed: true})
	for _, want := range []string{"size: 2x2", "layer: 1", "at: 1,1", "facing: east"} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() detailed output missing %q", want)
		}
	}
}

func TestFmtLabel_Simple(t *testing.T) {
	p := testDoc().Pieces[2]
	if got, want := fmtLabel(p, false), "2 yellow"; got != want {
		t.Errorf("fmtLabel() simple mode = %q, want %q", got, want)
	}
}

func TestDark(t *testing.T) {
	tests := []struct {
		hex  string
		want bool
	}{
		{"#1b2a34", true},
		{"#f2cd37", false},
		{"#ffffff", false},
		{"bogus", false},
	}
	for _, tt := range tests {
		if got := dark(tt.hex); got != tt.want {
			t.Errorf("dark(%q) = %v, want %v", tt.hex, got, tt.want)
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="62pt" height="116pt" viewBox="0.00 0.00 62.00 116.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 62.00 116.00" width="62" height="116">`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}
	if got := normalizeViewBox([]byte("<svg>")); string(got) != "<svg>" {
		t.Errorf("normalizeViewBox() without viewBox = %s", got)
	}
}
