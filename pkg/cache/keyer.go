package cache

// Keyer derives cache keys.
type Keyer interface {
	PuzzleKey(opts PuzzleKeyOpts) string
	ArtifactKey(puzzleID string, opts ArtifactKeyOpts) string
}

// PuzzleKeyOpts lists every input that changes a generated puzzle.
type PuzzleKeyOpts struct {
	Seed             uint64   `json:"seed"`
	Pieces           int      `json:"pieces"`
	Width            int      `json:"width"`
	Depth            int      `json:"depth"`
	Height           int      `json:"height"`
	Palette          int      `json:"palette"`
	Shapes           []string `json:"shapes"`
	AllowPartial     bool     `json:"allow_partial"`
	FixedHeight      bool     `json:"fixed_height"`
	RandomRotations  bool     `json:"random_rotations"`
	PageRotations    []int    `json:"page_rotations"`
	Face             string   `json:"face"`
	SolutionRotation int      `json:"solution_rotation"`
}

// ArtifactKeyOpts lists every render setting that changes an artifact.
type ArtifactKeyOpts struct {
	Format   string  `json:"format"`
	CellSize float64 `json:"cell_size"`
	Columns  int     `json:"columns"`
	HideTop  bool    `json:"hide_top"`
	Detailed bool    `json:"detailed"`
}

// DefaultKeyer hashes key options into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// PuzzleKey returns "puzzle:<sha256>".
func (DefaultKeyer) PuzzleKey(opts PuzzleKeyOpts) string {
	return hashKey("puzzle", opts)
}

// ArtifactKey returns "artifact:<sha256>" for one format of one puzzle.
func (DefaultKeyer) ArtifactKey(puzzleID string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", puzzleID, opts)
}
