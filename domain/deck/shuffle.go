// Package deck provides the deterministic randomness behind card
// shuffling: a string-seeded generator and a Fisher-Yates shuffle
// driven by it. Two processes holding the same seed string reproduce
// the same permutation without exchanging any deck state, so the
// generator's arithmetic is frozen: the seed hash wraps at 32 bits
// and the generator state at 2^31, on every platform.
//
// The generator is not cryptographically secure. Seeds that need
// unpredictability are produced by GenerateRoundSeed.
package deck

// hashSeed reduces an arbitrary seed string to a 32-bit state with a
// rolling polynomial hash: h = h*31 + byte, wrapping at 32 bits.
func hashSeed(seed string) uint32 {
	var h uint32
	for i := 0; i < len(seed); i++ {
		h = h*31 + uint32(seed[i])
	}
	return h
}

// Source is a linear congruential generator seeded from a string.
// The multiplier, increment and 2^31 modulus must not change, or
// previously persisted seeds stop reproducing their shuffles.
type Source struct {
	state uint32
}

// NewSource seeds a generator from the given string.
func NewSource(seed string) *Source {
	return &Source{state: hashSeed(seed)}
}

// Float64 advances the generator and returns a value in [0, 1).
func (s *Source) Float64() float64 {
	s.state = uint32((uint64(s.state)*1103515245 + 12345) % (1 << 31))
	return float64(s.state) / (1 << 31)
}

// Shuffle permutes n elements through the caller-supplied swap
// function, mirroring the signature of rand.Shuffle. It walks from
// the last index down to 1; the swap partner at index i is
// floor(r*(i+1)) for the next generator value r, so the result is a
// permutation of the input with no element duplicated or lost.
func Shuffle(n int, seed string, swap func(i, j int)) {
	src := NewSource(seed)
	for i := n - 1; i > 0; i-- {
		j := int(src.Float64() * float64(i+1))
		swap(i, j)
	}
}
