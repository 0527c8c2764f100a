package secular

import "math/cmplx"

// iterateFloat executes one packet of bounded Aberth iterations in the
// Float kind (spec.md §4.1). Returns the number of roots that became
// inactive (converged or frozen) during the packet.
func iterateFloat(s *State, maxit int) int {
	if s.n == 0 {
		return 0
	}
	for i := range s.again {
		s.again[i] = true
	}
	computed := 0
	iterations := 0
	for computed < s.n && iterations < maxit-1 {
		iterations++
		for i := 0; i < s.n; i++ {
			if !s.again[i] {
				continue
			}
			corr, again := newtonFloat(s.coef, s.froot[i], s.frad[i])
			s.again[i] = again

			sum := aberthFloat(s.froot, i)
			abcorr := corr / (1 - sum*corr)
			s.froot[i] -= abcorr
			s.frad[i] += cmplx.Abs(abcorr)

			if !s.again[i] {
				computed++
			}
		}
	}
	return computed
}

// iterateDpe is the Dpe-kind analogue of iterateFloat.
func iterateDpe(s *State, maxit int) int {
	if s.n == 0 {
		return 0
	}
	for i := range s.again {
		s.again[i] = true
	}
	computed := 0
	iterations := 0
	one := cdFromComplex128(1)
	for computed < s.n && iterations < maxit-1 {
		iterations++
		for i := 0; i < s.n; i++ {
			if !s.again[i] {
				continue
			}
			corr, again := newtonDpe(s.coef, s.droot[i], s.drad[i])
			s.again[i] = again

			sum := aberthDpe(s.droot, i)
			denom := cdNew().Sub(one, cdNew().Mul(sum, corr))
			abcorr := cdNew().Div(corr, denom)
			s.droot[i] = cdNew().Sub(s.droot[i], abcorr)
			s.drad[i] = s.drad[i].Add(abcorr.Abs())

			if !s.again[i] {
				computed++
			}
		}
	}
	return computed
}

// iterateMP is the Mp-kind analogue of iterateFloat. Per spec.md §4.1,
// again is pre-seeded from the existing radii (roots already within target
// precision start inactive), and the packet runs maxit iterations rather
// than maxit-1 — the reference's deliberate off-by-one, since each Mp
// iteration is far more expensive than a Float/Dpe one.
func iterateMP(s *State, maxit int) int {
	if s.n == 0 {
		return 0
	}
	target := rdTarget2Exp(-int(s.precOut), dpeMantissaBits)
	computed := 0
	for i := 0; i < s.n; i++ {
		if s.drad[i].Gt(target) {
			s.again[i] = true
		} else {
			s.again[i] = false
			computed++
		}
	}
	iterations := 0
	one := newMP(s.mpwp)
	one.SetString("1")
	for computed < s.n && iterations < maxit {
		iterations++
		for i := 0; i < s.n; i++ {
			if !s.again[i] {
				continue
			}
			corr, again := newtonMP(s.coef, s.mroot[i], s.drad[i], s.mpwp)
			s.again[i] = again

			sum := aberthMP(s.mroot, i, s.mpwp)
			denom := newMP(s.mpwp).Sub(one, newMP(s.mpwp).Mul(sum, corr))
			abcorr := newMP(s.mpwp).Div(corr, denom)
			s.mroot[i] = newMP(s.mpwp).Sub(s.mroot[i], abcorr)
			s.drad[i] = s.drad[i].Add(abcorr.Abs(dpeMantissaBits))

			if !s.again[i] {
				computed++
			}
		}
	}
	return computed
}

// iterate dispatches iterate{Float,Dpe,MP} on s.lastPhase.
func iterate(s *State, maxit int) int {
	switch s.lastPhase {
	case Float:
		return iterateFloat(s, maxit)
	case Dpe:
		return iterateDpe(s, maxit)
	case Mp:
		return iterateMP(s, maxit)
	default:
		return 0
	}
}
