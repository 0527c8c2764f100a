package secular

import "testing"

func TestRegenerateFloatRebasesB(t *testing.T) {
	a := []complex128{1, 1}
	b := []complex128{0, 2}
	s, err := NewState(a, b, 40)
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}
	s.lastPhase = Float
	s.froot[0] = complex(10, 0)
	s.froot[1] = complex(-10, 0)

	roots := append([]complex128(nil), s.froot...)
	regenerateFloat(s)

	for i, want := range roots {
		if s.coef.bfpc[i] != want {
			t.Fatalf("bfpc[%d] = %v, want root %v after regeneration", i, s.coef.bfpc[i], want)
		}
	}
}

func TestRegenerateFloatSingularityRollsBack(t *testing.T) {
	a := []complex128{1, 1}
	b := []complex128{0, 2}
	s, err := NewState(a, b, 40)
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}
	s.lastPhase = Float
	// Force the new b_0 to coincide exactly with the old b_1: a singular
	// configuration that regenerateFloat must detect and fully roll back.
	s.froot[0] = complex(2, 0)
	s.froot[1] = complex(-10, 0)

	origA := append([]complex128(nil), s.coef.afpc...)
	origB := append([]complex128(nil), s.coef.bfpc...)

	regenerateFloat(s)

	for i := range origA {
		if s.coef.afpc[i] != origA[i] {
			t.Fatalf("afpc[%d] changed on abort: got %v, want %v", i, s.coef.afpc[i], origA[i])
		}
		if s.coef.bfpc[i] != origB[i] {
			t.Fatalf("bfpc[%d] changed on abort: got %v, want %v", i, s.coef.bfpc[i], origB[i])
		}
	}
}

func TestRegenerateDpeRebasesB(t *testing.T) {
	a := []*cd{cdFromComplex128(1), cdFromComplex128(1)}
	b := []*cd{cdFromComplex128(0), cdFromComplex128(2)}
	s, err := NewStateDpe(a, b, 53)
	if err != nil {
		t.Fatalf("NewStateDpe failed: %v", err)
	}
	s.lastPhase = Dpe
	s.droot[0] = cdFromComplex128(complex(7, 0))
	s.droot[1] = cdFromComplex128(complex(-7, 0))

	regenerateDpe(s)

	re0, _ := s.coef.bdpc[0].re.Float64()
	if re0 != 7 {
		t.Fatalf("bdpc[0].re = %v, want 7", re0)
	}
	re1, _ := s.coef.bdpc[1].re.Float64()
	if re1 != -7 {
		t.Fatalf("bdpc[1].re = %v, want -7", re1)
	}
}
