package puzzle

import (
	"github.com/matzehuels/brickstack/pkg/core/brick"
	"github.com/matzehuels/brickstack/pkg/core/grid"
	"github.com/matzehuels/brickstack/pkg/core/projection"
	"github.com/matzehuels/brickstack/pkg/core/structure"
)

// FormatVersion is written to every document.
const FormatVersion = 1

// Document is the canonical serialization of a generated puzzle.
type Document struct {
	Version     int                    `json:"version"`
	ID          string                 `json:"id"`
	Seed        uint64                 `json:"seed"`
	Dimensions  structure.Dimensions   `json:"dimensions"`
	Pieces      []Piece                `json:"pieces"`
	Unplaced    []Piece                `json:"unplaced,omitempty"`
	Connections []structure.Connection `json:"connections"`
	Pages       []Page                 `json:"pages"`
	Displays    []grid.Grid            `json:"displays"`
	Solution    Solution               `json:"solution"`
}

// Piece is a brick as stored in a document. Position is nil for pieces the
// generator could not place.
type Piece struct {
	ID       brick.ID     `json:"id"`
	Width    int          `json:"width"`
	Depth    int          `json:"depth"`
	Color    int          `json:"color"`
	Position *brick.Point `json:"position,omitempty"`
	Facing   brick.Facing `json:"facing"`
}

// Page is one assembly step: Bottom with Top resting on it. Grid shows both
// bricks, Base only the bottom one. Both are already rotated by Rotation.
type Page struct {
	Index    int           `json:"index"`
	Top      brick.ID      `json:"top"`
	Bottom   brick.ID      `json:"bottom"`
	Rotation grid.Rotation `json:"rotation"`
	Grid     grid.Grid     `json:"grid"`
	Base     grid.Grid     `json:"base"`
}

// Solution is the oriented outline the player has to reproduce.
type Solution struct {
	Face     projection.Face `json:"face"`
	Rotation grid.Rotation   `json:"rotation"`
	Grid     grid.Grid       `json:"grid"`
}

// Piece returns the placed or unplaced piece with the given ID.
func (d *Document) Piece(id brick.ID) (Piece, bool) {
	for _, p := range d.Pieces {
		if p.ID == id {
			return p, true
		}
	}
	for _, p := range d.Unplaced {
		if p.ID == id {
			return p, true
		}
	}
	return Piece{}, false
}

// Layers groups placed piece IDs by z.
func (d *Document) Layers() map[int][]brick.ID {
	out := make(map[int][]brick.ID)
	for _, p := range d.Pieces {
		if p.Position != nil {
			out[p.Position.Z] = append(out[p.Position.Z], p.ID)
		}
	}
	return out
}
