package structure_test

import (
	"fmt"

	"github.com/matzehuels/brickstack/pkg/core/brick"
	"github.com/matzehuels/brickstack/pkg/core/structure"
)

func ExampleStructure_AddBrick() {
	var seq brick.Sequence
	s, _ := structure.New(6, 6, 4)

	base, _ := seq.New(3, 2, 0)
	top, _ := seq.New(2, 2, 1)

	_ = s.AddBrick(base, brick.Point{X: 0, Y: 0, Z: 0}, brick.South)
	_ = s.AddBrick(top, brick.Point{X: 1, Y: 1, Z: 1}, brick.North)

	for _, p := range s.Pieces() {
		fmt.Println(p.ID(), p.Position(), p.Footprint())
	}
	for _, c := range s.Connections() {
		fmt.Printf("%d rests on %d\n", c.Top, c.Bottom)
	}
	// Output:
	// 0 (2,1,0) [0,0..2,1]
	// 1 (1,1,1) [1,1..2,2]
	// 1 rests on 0
}
