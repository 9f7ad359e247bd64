package game

import (
	"golang.org/x/exp/rand"
)

// RNG is the seeded generator carried inside GameState. Every draw the engine
// makes (shuffles, dice, steal targets) goes through it, so replaying the
// same action sequence from the same seed reproduces the game bit for bit.
//
// Clone gives speculative branches an independent generator so simulated
// lines never advance the real game's randomness.
type RNG struct {
	src *rand.PCGSource
	r   *rand.Rand
}

// NewRNG returns a generator seeded with seed.
func NewRNG(seed uint64) *RNG {
	src := &rand.PCGSource{}
	src.Seed(seed)
	return &RNG{src: src, r: rand.New(src)}
}

// Clone returns an independent copy at the same generator position.
func (g *RNG) Clone() *RNG {
	data, err := g.src.MarshalBinary()
	if err != nil {
		// PCGSource marshaling cannot fail; stay loud if that ever changes.
		panic(err)
	}
	src := &rand.PCGSource{}
	if err := src.UnmarshalBinary(data); err != nil {
		panic(err)
	}
	return &RNG{src: src, r: rand.New(src)}
}

// MarshalBinary exposes the generator position for serialization.
func (g *RNG) MarshalBinary() ([]byte, error) {
	return g.src.MarshalBinary()
}

// UnmarshalBinary restores a serialized generator position.
func (g *RNG) UnmarshalBinary(data []byte) error {
	src := &rand.PCGSource{}
	if err := src.UnmarshalBinary(data); err != nil {
		return err
	}
	g.src = src
	g.r = rand.New(src)
	return nil
}

// Intn returns a uniform int in [0, n).
func (g *RNG) Intn(n int) int {
	return g.r.Intn(n)
}

// Die returns a uniform die face in [1, 6].
func (g *RNG) Die() int {
	return g.r.Intn(6) + 1
}

// Shuffle pseudo-randomizes the order of n elements.
func (g *RNG) Shuffle(n int, swap func(i, j int)) {
	g.r.Shuffle(n, swap)
}
