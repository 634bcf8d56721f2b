package generator

import "math/rand/v2"

// Source draws uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a PCG-backed source seeded from seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// shuffle permutes s in place, walking forward and swapping each slot with a
// uniformly chosen slot at or after it.
func shuffle[T any](src Source, s []T) {
	for i := 0; i < len(s)-1; i++ {
		j := i + src.IntN(len(s)-i)
		s[i], s[j] = s[j], s[i]
	}
}

// perm returns a shuffled 0..n-1.
func perm(src Source, n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	shuffle(src, p)
	return p
}
