package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The helper centralises how we derive the two 64-bit seeds required by rand/v2
// so that all call sites get reproducible sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// LCG constants (glibc TYPE_0 generator), state kept to 31 bits.
const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
	lcgMask       = 0x7fffffff
)

// DefaultLCGSeed seeds the benchmark hand stream unless configured otherwise.
const DefaultLCGSeed = 12345

// LCG is a small linear congruential generator. It is not suitable for
// anything but reproducible benchmark input.
type LCG struct {
	state uint64
}

// NewLCG returns a generator starting from seed.
func NewLCG(seed uint64) *LCG {
	return &LCG{state: seed}
}

// Next advances the generator and returns the new 31-bit state.
func (g *LCG) Next() uint64 {
	g.state = (g.state*lcgMultiplier + lcgIncrement) & lcgMask
	return g.state
}

// IntN returns a value in [0, n). n must be positive.
func (g *LCG) IntN(n int) int {
	return int(g.Next() % uint64(n))
}

// Bump nudges the state forward by one without producing a value. The hand
// generator uses it to step past a duplicate card.
func (g *LCG) Bump() {
	g.state++
}
