package cache

// ScopedKeyer wraps a Keyer with a prefix so several puzzle collections
// can share one backend.
//
// Example usage:
//
//	daily := NewScopedKeyer(NewDefaultKeyer(), "daily:2026-10-16:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// PuzzleKey generates a prefixed key for puzzle documents.
func (k *ScopedKeyer) PuzzleKey(opts PuzzleKeyOpts) string {
	return k.prefix + k.inner.PuzzleKey(opts)
}

// ArtifactKey generates a prefixed key for rendered artifacts.
func (k *ScopedKeyer) ArtifactKey(puzzleID string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(puzzleID, opts)
}
