package secular

import (
	"math"
	"math/cmplx"

	"github.com/sirupsen/logrus"
)

// The routines in this file implement spec.md §6's external collaborators
// that a runnable end-to-end solver still needs: initial approximation
// seeding (secular_Xstart), radius (re)initialization (secular_set_radii),
// phase promotion (secular_switch_phase), precision escalation
// (secular_raise_precision), and cluster bookkeeping (cluster_reset).
// spec.md names these "external, not specified"; the implementations below
// are concrete, reasonable choices for making the contract runnable, not a
// claim about the spec's unspecified subject matter (see DESIGN.md).

// seedingRadius returns a circle radius large enough to generically enclose
// the roots of a secular equation with the given coefficients: the largest
// pole magnitude plus the largest sqrt(|a_i|), plus a margin of 1.
func seedingRadius(a, b []complex128) float64 {
	var maxB, maxSqrtA float64
	for i := range a {
		if m := cmplx.Abs(b[i]); m > maxB {
			maxB = m
		}
		if m := math.Sqrt(cmplx.Abs(a[i])); m > maxSqrtA {
			maxSqrtA = m
		}
	}
	return maxB + maxSqrtA + 1
}

// startFloat seeds s.froot on a circle of radius seedingRadius, evenly
// spaced with a half-step phase offset (a standard generic Aberth starting
// configuration).
func startFloat(s *State) {
	r := seedingRadius(s.coef.afpc, s.coef.bfpc)
	n := s.n
	for i := 0; i < n; i++ {
		theta := 2*math.Pi*float64(i)/float64(n) + math.Pi/float64(2*n)
		s.froot[i] = complex(r*math.Cos(theta), r*math.Sin(theta))
	}
}

// startDpe is the Dpe-kind analogue of startFloat.
func startDpe(s *State) {
	af := make([]complex128, s.n)
	bf := make([]complex128, s.n)
	for i := 0; i < s.n; i++ {
		re, _ := s.coef.adpc[i].re.Float64()
		im, _ := s.coef.adpc[i].im.Float64()
		af[i] = complex(re, im)
		re, _ = s.coef.bdpc[i].re.Float64()
		im, _ = s.coef.bdpc[i].im.Float64()
		bf[i] = complex(re, im)
	}
	r := seedingRadius(af, bf)
	n := s.n
	for i := 0; i < n; i++ {
		theta := 2*math.Pi*float64(i)/float64(n) + math.Pi/float64(2*n)
		s.droot[i] = cdFromComplex128(complex(r*math.Cos(theta), r*math.Sin(theta)))
	}
}

// startMP is the Mp-kind analogue, used by secularStart when Solve begins in
// the Mp phase and by regenerateMP after every successful Mp regeneration
// (spec.md §4.2's "invoke the kind-appropriate secular_Xstart to reset
// initial radii").
func startMP(s *State) {
	af := make([]complex128, s.n)
	bf := make([]complex128, s.n)
	for i := 0; i < s.n; i++ {
		re := parseFloatOrZero(s.coef.ampc[i].RealStringFixed(30))
		im := parseFloatOrZero(s.coef.ampc[i].ImagStringFixed(30))
		af[i] = complex(re, im)
		re = parseFloatOrZero(s.coef.bmpc[i].RealStringFixed(30))
		im = parseFloatOrZero(s.coef.bmpc[i].ImagStringFixed(30))
		bf[i] = complex(re, im)
	}
	r := seedingRadius(af, bf)
	n := s.n
	for i := 0; i < n; i++ {
		theta := 2*math.Pi*float64(i)/float64(n) + math.Pi/float64(2*n)
		z := complex(r*math.Cos(theta), r*math.Sin(theta))
		s.mroot[i] = newMP(s.mpwp).setComplex128(z)
	}
}

// setRadiiFloat sets every root's radius to sum|a_i| (1 if that sum is
// zero). This is a coarse starting radius, not a proven inclusion bound for
// the seeded approximations.
func setRadiiFloat(s *State) {
	var bound float64
	for _, a := range s.coef.afpc {
		bound += cmplx.Abs(a)
	}
	if bound == 0 {
		bound = 1
	}
	for i := range s.frad {
		s.frad[i] = bound
	}
}

func setRadiiDpe(s *State) {
	bound := rdNew(dpeMantissaBits)
	for _, a := range s.coef.adpc {
		bound = bound.Add(a.Abs())
	}
	if bound.IsZero() {
		bound = rdFromFloat64(1, dpeMantissaBits)
	}
	for i := range s.drad {
		s.drad[i] = bound
	}
}

func setRadiiMP(s *State) {
	bound := rdNew(dpeMantissaBits)
	for _, a := range s.coef.ampc {
		bound = bound.Add(a.Abs(dpeMantissaBits))
	}
	if bound.IsZero() {
		bound = rdFromFloat64(1, dpeMantissaBits)
	}
	for i := range s.drad {
		s.drad[i] = bound
	}
}

// secularSetRadii dispatches setRadii{Float,Dpe,MP} on s.lastPhase.
func secularSetRadii(s *State) {
	switch s.lastPhase {
	case Float:
		setRadiiFloat(s)
	case Dpe:
		setRadiiDpe(s)
	case Mp:
		setRadiiMP(s)
	}
}

// secularStart dispatches start{Float,Dpe,MP} on s.lastPhase.
func secularStart(s *State) {
	switch s.lastPhase {
	case Float:
		startFloat(s)
	case Dpe:
		startDpe(s)
	case Mp:
		startMP(s)
	}
}

// clusterReset resets cluster bookkeeping to "one cluster of size n". Full
// cluster-aware restart is out of scope (spec.md §1); this is a true no-op,
// since nothing downstream consults cluster structure in this reduced core.
func clusterReset(s *State) {}

// switchPhase promotes approximations and coefficients from the current
// kind to newPhase (spec.md §6 secular_switch_phase). The only transition
// the driver ever performs is Float/Dpe -> Mp (spec.md's Data Model Phase
// invariant: "Transitions only Float->Mp or Dpe->Mp or Mp->Mp").
func switchPhase(s *State, newPhase Phase) {
	if newPhase != Mp {
		panic("secular: switchPhase only supports promoting to Mp")
	}
	from := s.lastPhase
	s.coef.ensureMP(from, s.mpwp)

	for i := 0; i < s.n; i++ {
		s.mroot[i] = newMP(s.mpwp)
		switch from {
		case Float:
			s.mroot[i].setComplex128(s.froot[i])
			s.drad[i] = rdFromFloat64(s.frad[i], dpeMantissaBits)
		case Dpe:
			s.mroot[i].SetBase(s.droot[i].re.Text('e', 40), s.droot[i].im.Text('e', 40), 10)
			// drad already carries the Dpe-kind radius; keep as-is.
		}
	}
	logrus.Debugf("secular: switching phase %s -> %s", from, newPhase)
	s.lastPhase = newPhase
}

// raisePrecision increases mpwp and reinitializes every live Mp value
// (spec.md §6 secular_raise_precision). Precision doubles each call up to
// a generous cap; beyond the cap the exhaustion policy gives up by zeroing
// the radii so StopPredicate succeeds (spec.md §7, §9: "no upper bound is
// specified... must eventually saturate").
func raisePrecision(s *State) {
	const maxMultiplier = 64
	wpCap := maxMultiplier * (s.precOut + 64)
	newWP := s.mpwp * 2
	if newWP > wpCap {
		logrus.Warnf("secular: precision-raise exhausted at mpwp=%d (cap=%d), giving up with best-effort radii", s.mpwp, wpCap)
		for i := range s.drad {
			s.drad[i] = rdFromFloat64(0, dpeMantissaBits)
		}
		return
	}
	s.mpwp = newWP
	s.coef.reprecisionMP(s.mpwp)
	for i := 0; i < s.n; i++ {
		s.mroot[i].SetPrec(s.mpwp)
	}
	logrus.Debugf("secular: raised mp working precision to %d bits", s.mpwp)
}
