package mathutil

import "math/rand/v2"

// Source yields uniform draws in [0, 1). *rand.Rand satisfies it.
// A Source is not safe for concurrent use; give each goroutine its own.
type Source interface {
	Float32() float32
}

// NewSource returns a PCG-backed generator for the given seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomInUnitSphere rejection-samples a point strictly inside the unit ball.
func RandomInUnitSphere(src Source) Vec3 {
	for {
		p := Vec3{src.Float32(), src.Float32(), src.Float32()}.Scale(2).Sub(Splat(1))
		if p.LenSq() < 1 {
			return p
		}
	}
}
