package secular

import "testing"

func TestNewStateValidation(t *testing.T) {
	if _, err := NewState(nil, nil, 53); err == nil {
		t.Fatalf("expected error for degree 0")
	}
	a := []complex128{1, 1}
	b := []complex128{0, 2}
	if _, err := NewState(a, []complex128{0}, 53); err == nil {
		t.Fatalf("expected error for mismatched a/b lengths")
	}
	if _, err := NewState(a, b, 0); err == nil {
		t.Fatalf("expected error for zero prec_out")
	}
	s, err := NewState(a, b, 53)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.N() != 2 {
		t.Fatalf("N() = %d, want 2", s.N())
	}
	if s.LastPhase() != Float {
		t.Fatalf("zero-value LastPhase() = %v, want Float before Solve runs", s.LastPhase())
	}
}

func TestNewStateDpeValidation(t *testing.T) {
	a := []*cd{cdFromComplex128(1), cdFromComplex128(1)}
	b := []*cd{cdFromComplex128(0), cdFromComplex128(2)}
	s, err := NewStateDpe(a, b, 53)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.N() != 2 {
		t.Fatalf("N() = %d, want 2", s.N())
	}
	if _, err := NewStateDpe(a, []*cd{b[0]}, 53); err == nil {
		t.Fatalf("expected error for mismatched a/b lengths")
	}
}

func TestPhaseString(t *testing.T) {
	cases := map[Phase]string{Float: "float", Dpe: "dpe", Mp: "mp"}
	for p, want := range cases {
		if got := p.String(); got != want {
			t.Fatalf("Phase(%d).String() = %q, want %q", p, got, want)
		}
	}
	if got := Phase(99).String(); got != "unknown" {
		t.Fatalf("Phase(99).String() = %q, want \"unknown\"", got)
	}
}
