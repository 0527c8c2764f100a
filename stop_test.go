package secular

import "testing"

func TestShouldStopFloatUnderflow(t *testing.T) {
	s := &State{n: 1, lastPhase: Float, frad: []float64{0}, precOut: 400}
	// 10^-400 underflows to 0 in float64: Float phase must never claim
	// success at a target it structurally cannot represent.
	if shouldStop(s) {
		t.Fatalf("expected shouldStop to refuse to succeed on underflowed target")
	}
}

func TestShouldStopFloatSatisfied(t *testing.T) {
	s := &State{n: 2, lastPhase: Float, frad: []float64{1e-20, 1e-21}, precOut: 10}
	if !shouldStop(s) {
		t.Fatalf("expected shouldStop to succeed: radii well under 10^-10")
	}
}

func TestShouldStopFloatNotYet(t *testing.T) {
	s := &State{n: 2, lastPhase: Float, frad: []float64{1e-2, 1e-21}, precOut: 10}
	if shouldStop(s) {
		t.Fatalf("expected shouldStop to fail: one radius still above target")
	}
}

func TestShouldStopDpeMp(t *testing.T) {
	small := rdFromFloat64(1e-30, dpeMantissaBits)
	big := rdFromFloat64(1e-2, dpeMantissaBits)
	sDpe := &State{n: 2, lastPhase: Dpe, drad: []rd{small, small}, precOut: 53}
	if !shouldStop(sDpe) {
		t.Fatalf("expected Dpe shouldStop to succeed with both radii tiny")
	}
	sMp := &State{n: 2, lastPhase: Mp, drad: []rd{small, big}, precOut: 53}
	if shouldStop(sMp) {
		t.Fatalf("expected Mp shouldStop to fail with one radius still large")
	}
}
