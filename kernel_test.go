package secular

import "testing"

func TestIterateFloatDegreeZero(t *testing.T) {
	s := &State{n: 0}
	if got := iterateFloat(s, 10); got != 0 {
		t.Fatalf("iterateFloat on n=0 returned %d, want 0", got)
	}
}

func TestIterateFloatRadiusMonotonicNonDecreasing(t *testing.T) {
	a := []complex128{1, 1}
	b := []complex128{0, 2}
	s, err := NewState(a, b, 40)
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}
	s.lastPhase = Float
	startFloat(s)
	setRadiiFloat(s)
	before := append([]float64(nil), s.frad...)
	iterateFloat(s, 10)
	for i, r := range s.frad {
		if r < before[i] {
			t.Fatalf("frad[%d] decreased across a packet: %v -> %v", i, before[i], r)
		}
	}
}

func TestIterateFloatActivityConverges(t *testing.T) {
	// Degree-one equation a/(x-b) - 1 = 0 has the exact root x = a + b.
	a := []complex128{3}
	b := []complex128{5}
	s, err := NewState(a, b, 40)
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}
	s.lastPhase = Float
	startFloat(s)
	setRadiiFloat(s)
	computed := iterateFloat(s, 50)
	if computed != 1 {
		t.Fatalf("expected the single root to become inactive, computed=%d", computed)
	}
	got := s.froot[0]
	want := complex(8, 0)
	if abs := got - want; realAbs(abs) > 1e-6 {
		t.Fatalf("root = %v, want ~%v", got, want)
	}
}

func realAbs(z complex128) float64 {
	re, im := real(z), imag(z)
	if re < 0 {
		re = -re
	}
	if im < 0 {
		im = -im
	}
	if im > re {
		return im
	}
	return re
}

func TestIterateDispatchesOnPhase(t *testing.T) {
	a := []complex128{1, 1}
	b := []complex128{0, 2}
	s, err := NewState(a, b, 40)
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}
	s.lastPhase = Float
	startFloat(s)
	setRadiiFloat(s)
	if got := iterate(s, 10); got < 0 {
		t.Fatalf("iterate returned negative computed count: %d", got)
	}
}
