package structure

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/matzehuels/brickstack/pkg/core/brick"
	bserrors "github.com/matzehuels/brickstack/pkg/errors"
)

func newBrick(t *testing.T, seq *brick.Sequence, w, d, color int) *brick.Brick {
	t.Helper()
	b, err := seq.New(w, d, color)
	if err != nil {
		t.Fatalf("brick.New(%d, %d) error = %v", w, d, err)
	}
	return b
}

func newStructure(t *testing.T, w, d, h int, opts ...Option) *Structure {
	t.Helper()
	s, err := New(w, d, h, opts...)
	if err != nil {
		t.Fatalf("New(%d, %d, %d) error = %v", w, d, h, err)
	}
	return s
}

func mustAdd(t *testing.T, s *Structure, b *brick.Brick, pos brick.Point, f brick.Facing) {
	t.Helper()
	if err := s.AddBrick(b, pos, f); err != nil {
		t.Fatalf("AddBrick(%v, %v) error = %v", pos, f, err)
	}
}

func TestAddBrickNoShift(t *testing.T) {
	var seq brick.Sequence
	s := newStructure(t, 4, 4, 4)
	a := newBrick(t, &seq, 3, 2, 0)
	b := newBrick(t, &seq, 2, 2, 1)

	mustAdd(t, s, a, brick.Point{X: 1, Y: 2, Z: 0}, brick.North)
	mustAdd(t, s, b, brick.Point{X: 0, Y: 0, Z: 0}, brick.North)

	if got := a.Position(); got != (brick.Point{X: 1, Y: 2, Z: 0}) {
		t.Errorf("a.Position() = %v, want (1,2,0)", got)
	}
	if got := b.Footprint(); got != (brick.Rect{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}) {
		t.Errorf("b.Footprint() = %v, want [0,0..1,1]", got)
	}
	if n := len(s.Connections()); n != 0 {
		t.Errorf("len(Connections()) = %d, want 0", n)
	}
	if n := len(s.Layer(0)); n != 2 {
		t.Errorf("len(Layer(0)) = %d, want 2", n)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestAddBrickSharedCellCollides(t *testing.T) {
	var seq brick.Sequence
	s := newStructure(t, 4, 4, 4)
	a := newBrick(t, &seq, 3, 2, 0)
	b := newBrick(t, &seq, 2, 2, 1)

	mustAdd(t, s, a, brick.Point{X: 1, Y: 1, Z: 0}, brick.North)
	err := s.AddBrick(b, brick.Point{X: 0, Y: 0, Z: 0}, brick.North)

	var perr *PlacementError
	if !errors.As(err, &perr) || perr.Kind != LayerCollision {
		t.Fatalf("AddBrick() error = %v, want LayerCollision", err)
	}
	if !errors.Is(err, ErrLayerCollision) {
		t.Error("errors.Is(err, ErrLayerCollision) = false")
	}
	if !bserrors.Is(err, bserrors.ErrCodeLayerCollision) {
		t.Errorf("code = %v, want %v", bserrors.GetCode(err), bserrors.ErrCodeLayerCollision)
	}
	if b.IsPlaced() {
		t.Error("rejected brick IsPlaced() = true")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestAddBrickShiftsRight(t *testing.T) {
	var seq brick.Sequence
	s := newStructure(t, 8, 8, 8)
	b := newBrick(t, &seq, 3, 2, 0)

	mustAdd(t, s, b, brick.Point{X: 0, Y: 5, Z: 0}, brick.South)

	if got := b.Position().X; got != 2 {
		t.Errorf("Position().X = %d, want 2", got)
	}
	want := brick.Rect{MinX: 0, MinY: 4, MaxX: 2, MaxY: 5}
	if got := b.Footprint(); got != want {
		t.Errorf("Footprint() = %v, want %v", got, want)
	}
}

func TestAddBrickShiftsWholeStructure(t *testing.T) {
	var seq brick.Sequence
	s := newStructure(t, 8, 8, 8)
	a := newBrick(t, &seq, 2, 2, 0)
	b := newBrick(t, &seq, 3, 2, 1)

	mustAdd(t, s, a, brick.Point{X: 3, Y: 3, Z: 0}, brick.North)
	// Footprint [-2,-1..0,0] needs +2 along x and +1 along y.
	mustAdd(t, s, b, brick.Point{X: 0, Y: 0, Z: 1}, brick.South)

	if got := a.Position(); got != (brick.Point{X: 5, Y: 4, Z: 0}) {
		t.Errorf("a.Position() = %v, want (5,4,0)", got)
	}
	if got := b.Position(); got != (brick.Point{X: 2, Y: 1, Z: 1}) {
		t.Errorf("b.Position() = %v, want (2,1,1)", got)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestAddBrickShiftsDown(t *testing.T) {
	var seq brick.Sequence
	s := newStructure(t, 6, 6, 2)
	a := newBrick(t, &seq, 2, 2, 0)
	b := newBrick(t, &seq, 3, 1, 1)

	mustAdd(t, s, a, brick.Point{X: 2, Y: 2, Z: 0}, brick.North)
	// East footprint [5,5..5,7] overflows depth by 2.
	mustAdd(t, s, b, brick.Point{X: 5, Y: 7, Z: 1}, brick.East)

	if got := a.Position(); got != (brick.Point{X: 2, Y: 0, Z: 0}) {
		t.Errorf("a.Position() = %v, want (2,0,0)", got)
	}
	if got := b.Footprint(); got != (brick.Rect{MinX: 5, MinY: 3, MaxX: 5, MaxY: 5}) {
		t.Errorf("b.Footprint() = %v, want [5,3..5,5]", got)
	}
}

func TestAddBrickShiftBlocked(t *testing.T) {
	var seq brick.Sequence
	s := newStructure(t, 4, 4, 4)
	a := newBrick(t, &seq, 2, 2, 0)
	b := newBrick(t, &seq, 3, 1, 1)

	mustAdd(t, s, a, brick.Point{X: 2, Y: 0, Z: 0}, brick.North)
	err := s.AddBrick(b, brick.Point{X: 0, Y: 3, Z: 0}, brick.South)

	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("AddBrick() error = %v, want ErrOutOfBounds", err)
	}
	if !bserrors.Is(err, bserrors.ErrCodeOutOfBounds) {
		t.Errorf("code = %v, want %v", bserrors.GetCode(err), bserrors.ErrCodeOutOfBounds)
	}
	if got := a.Position(); got != (brick.Point{X: 2, Y: 0, Z: 0}) {
		t.Errorf("a moved to %v after failed placement", got)
	}
	if b.IsPlaced() {
		t.Error("rejected brick IsPlaced() = true")
	}
}

func TestAddBrickTooWide(t *testing.T) {
	var seq brick.Sequence
	s := newStructure(t, 4, 4, 4)
	b := newBrick(t, &seq, 5, 1, 0)

	if err := s.AddBrick(b, brick.Point{}, brick.North); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("AddBrick() error = %v, want ErrOutOfBounds", err)
	}
}

func TestAddBrickHeight(t *testing.T) {
	var seq brick.Sequence
	s := newStructure(t, 4, 4, 2)
	a := newBrick(t, &seq, 2, 2, 0)
	b := newBrick(t, &seq, 2, 2, 1)
	c := newBrick(t, &seq, 2, 2, 2)

	mustAdd(t, s, a, brick.Point{}, brick.North)

	mustAdd(t, s, b, brick.Point{X: 1, Y: 1, Z: -1}, brick.North)
	if got := a.Position().Z; got != 1 {
		t.Errorf("a.Position().Z = %d, want 1", got)
	}
	if got := b.Position().Z; got != 0 {
		t.Errorf("b.Position().Z = %d, want 0", got)
	}
	if got := s.Dimensions().Height; got != 2 {
		t.Errorf("Height = %d, want 2", got)
	}

	mustAdd(t, s, c, brick.Point{X: 0, Y: 0, Z: 2}, brick.North)
	if got := s.Dimensions().Height; got != 3 {
		t.Errorf("Height = %d, want 3", got)
	}
	if n := len(s.Layer(2)); n != 1 {
		t.Errorf("len(Layer(2)) = %d, want 1", n)
	}

	want := []Connection{
		{Top: a.ID(), Bottom: b.ID()},
		{Top: c.ID(), Bottom: a.ID()},
	}
	got := s.Connections()
	if len(got) != len(want) {
		t.Fatalf("Connections() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Connections()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestAddBrickHeightDisabled(t *testing.T) {
	var seq brick.Sequence
	s := newStructure(t, 4, 4, 2, WithHeightAdjustments(false))
	mustAdd(t, s, newBrick(t, &seq, 2, 2, 0), brick.Point{}, brick.North)

	for _, z := range []int{-1, 2} {
		b := newBrick(t, &seq, 2, 2, 1)
		err := s.AddBrick(b, brick.Point{Z: z}, brick.North)
		if !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("AddBrick(z=%d) error = %v, want ErrOutOfBounds", z, err)
		}
	}
	if got := s.Dimensions().Height; got != 2 {
		t.Errorf("Height = %d, want 2", got)
	}
}

func TestAddBrickAlreadyPlaced(t *testing.T) {
	var seq brick.Sequence
	s := newStructure(t, 4, 4, 4)
	b := newBrick(t, &seq, 2, 2, 0)
	mustAdd(t, s, b, brick.Point{}, brick.North)

	err := s.AddBrick(b, brick.Point{X: 2, Y: 2}, brick.North)
	if !bserrors.Is(err, bserrors.ErrCodeAlreadyPlaced) {
		t.Errorf("AddBrick() error = %v, want ALREADY_PLACED", err)
	}
}

func TestConnectionsBothDirections(t *testing.T) {
	var seq brick.Sequence
	s := newStructure(t, 6, 6, 3)
	a := newBrick(t, &seq, 2, 2, 0)
	b := newBrick(t, &seq, 2, 2, 1)
	c := newBrick(t, &seq, 2, 2, 2)

	mustAdd(t, s, a, brick.Point{X: 0, Y: 0, Z: 0}, brick.North)
	mustAdd(t, s, b, brick.Point{X: 1, Y: 1, Z: 1}, brick.North)
	mustAdd(t, s, c, brick.Point{X: 2, Y: 2, Z: 0}, brick.North)

	want := []Connection{
		{Top: b.ID(), Bottom: a.ID()},
		{Top: b.ID(), Bottom: c.ID()},
	}
	got := s.Connections()
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Connections() = %v, want %v", got, want)
	}
}

func TestRandomPlacementsKeepInvariants(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
		var seq brick.Sequence
		s := newStructure(t, 8, 8, 8)

		for i := 0; i < 60; i++ {
			b := newBrick(t, &seq, 1+rng.IntN(4), 1+rng.IntN(2), i%10)
			pos := brick.Point{X: rng.IntN(12) - 2, Y: rng.IntN(12) - 2, Z: rng.IntN(10) - 1}
			err := s.AddBrick(b, pos, brick.Facing(rng.IntN(4)))
			if err != nil && !errors.Is(err, ErrLayerCollision) && !errors.Is(err, ErrOutOfBounds) {
				t.Fatalf("seed %d: AddBrick() unexpected error = %v", seed, err)
			}
		}

		if err := s.Validate(); err != nil {
			t.Errorf("seed %d: Validate() error = %v", seed, err)
		}
	}
}
