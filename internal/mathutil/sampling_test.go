package mathutil

import "testing"

type seqSource struct {
	vals []float32
	i    int
}

func (s *seqSource) Float32() float32 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func TestRandomInUnitSphere(t *testing.T) {
	src := NewSource(1)
	for i := 0; i < 10000; i++ {
		if p := RandomInUnitSphere(src); p.LenSq() >= 1 {
			t.Fatalf("sample %d = %v outside unit sphere", i, p)
		}
	}
}

func TestRandomInUnitSphereRejects(t *testing.T) {
	// First candidate maps to (0.98, 0.98, 0.98) and is rejected.
	src := &seqSource{vals: []float32{0.99, 0.99, 0.99, 0.75, 0.5, 0.25}}
	got := RandomInUnitSphere(src)
	if got != (Vec3{0.5, 0, -0.5}) {
		t.Fatalf("sample = %v, want (0.5, 0, -0.5)", got)
	}
	if src.i != 6 {
		t.Fatalf("consumed %d draws, want 6", src.i)
	}
}

func TestRandomInUnitSphereDeterministic(t *testing.T) {
	a, b := NewSource(42), NewSource(42)
	for i := 0; i < 100; i++ {
		if pa, pb := RandomInUnitSphere(a), RandomInUnitSphere(b); pa != pb {
			t.Fatalf("draw %d differs: %v vs %v", i, pa, pb)
		}
	}
}
