package secular

import "fmt"

// State is the solver's state (spec.md's SolverState, ≈7% of core): degree
// n, current phase, per-root approximations and radii in all kinds, per-root
// activity flags, requested output precision, and current Mp working
// precision. State is owned exclusively by the driver: iterate and
// regenerate receive mutable access but never retain it beyond their call
// (spec.md §3 Ownership).
type State struct {
	n int

	coef *coefficientSet

	froot []complex128
	frad  []float64

	droot []*cd
	drad  []rd

	mroot []*mpComplex
	// Mp-kind radii reuse rd exactly like the Dpe kind (spec.md's
	// SolverState lists a single "drad" shared by Dpe and Mp).

	again []bool

	precOut  uint
	mpwp     uint
	lastPhase Phase
}

// initialMPWP is the starting Mp working precision before any raise,
// generous enough to make headway past the Float/Dpe escalation point.
func initialMPWP(precOut uint) uint {
	wp := precOut + 64
	if wp < 128 {
		wp = 128
	}
	return wp
}

// NewState constructs a solver state for a secular equation of degree n
// with Float-kind coefficients a, b, targeting precOut bits of output
// precision (spec.md §6 Configuration inputs).
func NewState(a, b []complex128, precOut uint) (*State, error) {
	n := len(a)
	if n <= 0 {
		return nil, fmt.Errorf("secular: degree n must be positive, got %d", n)
	}
	if len(b) != n {
		return nil, fmt.Errorf("secular: len(a)=%d != len(b)=%d", n, len(b))
	}
	if precOut == 0 {
		return nil, fmt.Errorf("secular: prec_out must be positive")
	}

	cs := newCoefficientSet(n)
	cs.seedFloat(a, b)

	s := &State{
		n:        n,
		coef:     cs,
		froot:    make([]complex128, n),
		frad:     make([]float64, n),
		droot:    make([]*cd, n),
		drad:     make([]rd, n),
		mroot:    make([]*mpComplex, n),
		again:    make([]bool, n),
		precOut:  precOut,
		mpwp:     initialMPWP(precOut),
	}
	for i := 0; i < n; i++ {
		s.droot[i] = cdNew()
		s.drad[i] = rdNew(dpeMantissaBits)
	}
	return s, nil
}

// NewStateDpe constructs a solver state seeded directly with Dpe-kind
// coefficients, for callers whose coefficients exceed double range
// (spec.md §6: initial coefficient arrays "in the kind matching
// initial_phase").
func NewStateDpe(a, b []*cd, precOut uint) (*State, error) {
	n := len(a)
	if n <= 0 {
		return nil, fmt.Errorf("secular: degree n must be positive, got %d", n)
	}
	if len(b) != n {
		return nil, fmt.Errorf("secular: len(a)=%d != len(b)=%d", n, len(b))
	}
	if precOut == 0 {
		return nil, fmt.Errorf("secular: prec_out must be positive")
	}

	cs := newCoefficientSet(n)
	cs.seedDpe(a, b)

	s := &State{
		n:       n,
		coef:    cs,
		froot:   make([]complex128, n),
		frad:    make([]float64, n),
		droot:   make([]*cd, n),
		drad:    make([]rd, n),
		mroot:   make([]*mpComplex, n),
		again:   make([]bool, n),
		precOut: precOut,
		mpwp:    initialMPWP(precOut),
	}
	for i := 0; i < n; i++ {
		s.droot[i] = cdNew()
		s.drad[i] = rdNew(dpeMantissaBits)
	}
	return s, nil
}

// N returns the solver's degree.
func (s *State) N() int { return s.n }

// LastPhase returns the currently authoritative numeric kind.
func (s *State) LastPhase() Phase { return s.lastPhase }

// Roots returns the final approximations as complex128, converting down
// from whichever kind is authoritative. Called after Solve returns.
func (s *State) Roots() []complex128 {
	out := make([]complex128, s.n)
	switch s.lastPhase {
	case Float:
		copy(out, s.froot)
	case Dpe:
		for i := range out {
			re, _ := s.droot[i].re.Float64()
			im, _ := s.droot[i].im.Float64()
			out[i] = complex(re, im)
		}
	case Mp:
		for i := range out {
			re := parseFloatOrZero(s.mroot[i].RealStringFixed(40))
			im := parseFloatOrZero(s.mroot[i].ImagStringFixed(40))
			out[i] = complex(re, im)
		}
	}
	return out
}

// Radii returns the final inclusion radii as float64, one per root.
func (s *State) Radii() []float64 {
	out := make([]float64, s.n)
	switch s.lastPhase {
	case Float:
		copy(out, s.frad)
	case Dpe, Mp:
		for i := range out {
			out[i] = s.drad[i].Float64()
		}
	}
	return out
}

// RootStrings returns each root in scientific notation with digits digits
// after the decimal point (Mp values via the teacher's StringScientific),
// for CLI output.
func (s *State) RootStrings(digits int) []string {
	out := make([]string, s.n)
	switch s.lastPhase {
	case Mp:
		for i := range out {
			out[i] = s.mroot[i].StringScientific(digits)
		}
	case Dpe:
		for i := range out {
			out[i] = fmt.Sprintf("%.*e%+.*ei", digits, s.droot[i].re, digits, s.droot[i].im)
		}
	default:
		for i := range out {
			out[i] = fmt.Sprintf("%.*e%+.*ei", digits, real(s.froot[i]), digits, imag(s.froot[i]))
		}
	}
	return out
}
