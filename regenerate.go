package secular

import (
	"github.com/sirupsen/logrus"
)

// regenerate implements spec.md §4.2's RegenerationEngine: rebuild (a, b)
// so that the new b_i equals the current root approximation z_i, recomputing
// a_i to preserve the secular equation's value at the chosen interpolation
// points. On a singular configuration (some new b_i exactly equals an old
// B_j), the whole operation is aborted and coefficient state is rolled back
// to be byte-identical to pre-call (spec.md's mandatory singularity
// handling, and DESIGN.md decision 3: both a and b are restored on an Mp
// abort, hardening the reference's b-only rollback).
func regenerate(s *State) {
	switch s.lastPhase {
	case Float:
		regenerateFloat(s)
	case Dpe:
		regenerateDpe(s)
	case Mp:
		regenerateMP(s)
	}
}

func regenerateFloat(s *State) {
	n := s.n
	c := s.coef
	oldA := make([]complex128, n)
	oldB := make([]complex128, n)
	copy(oldA, c.afpc)
	copy(oldB, c.bfpc)

	for i := 0; i < n; i++ {
		c.bfpc[i] = s.froot[i]
	}

	newA := make([]complex128, n)
	for i := 0; i < n; i++ {
		var prodB complex128 = 1
		var secEv complex128
		for j := 0; j < n; j++ {
			btmp := c.bfpc[i] - oldB[j]
			if btmp == 0 {
				logrus.Debug("secular: cannot regenerate coefficients, reusing old ones")
				copy(c.afpc, oldA)
				copy(c.bfpc, oldB)
				return
			}
			secEv += oldA[j] / btmp
			prodB *= btmp
			if i != j {
				prodB /= c.bfpc[i] - c.bfpc[j]
			}
		}
		secEv -= 1
		newA[i] = secEv * prodB
	}
	copy(c.afpc, newA)
	startFloat(s)
	setRadiiFloat(s)
}

func regenerateDpe(s *State) {
	n := s.n
	c := s.coef
	oldA := make([]*cd, n)
	oldB := make([]*cd, n)
	for i := range oldA {
		oldA[i] = c.adpc[i].Clone()
		oldB[i] = c.bdpc[i].Clone()
	}

	for i := 0; i < n; i++ {
		c.bdpc[i] = s.droot[i].Clone()
	}

	newA := make([]*cd, n)
	btmp := cdNew()
	term := cdNew()
	for i := 0; i < n; i++ {
		prodB := cdFromComplex128(1)
		secEv := cdNew()
		for j := 0; j < n; j++ {
			btmp.Sub(c.bdpc[i], oldB[j])
			if btmp.IsZero() {
				logrus.Debug("secular: cannot regenerate coefficients, reusing old ones")
				for k := 0; k < n; k++ {
					c.adpc[k] = oldA[k]
					c.bdpc[k] = oldB[k]
				}
				return
			}
			term.Div(oldA[j], btmp)
			secEv.Add(secEv, term)
			prodB.Mul(prodB, btmp)
			if i != j {
				diff := cdNew().Sub(c.bdpc[i], c.bdpc[j])
				prodB.Div(prodB, diff)
			}
		}
		secEv.Sub(secEv, cdFromComplex128(1))
		newA[i] = cdNew().Mul(secEv, prodB)
	}
	copy(c.adpc, newA)
	startDpe(s)
	setRadiiDpe(s)
}

func regenerateMP(s *State) {
	n := s.n
	c := s.coef
	wp := s.mpwp
	oldA := make([]*mpComplex, n)
	oldB := make([]*mpComplex, n)
	for i := range oldA {
		oldA[i] = c.ampc[i].Clone()
		oldB[i] = c.bmpc[i].Clone()
	}

	for i := 0; i < n; i++ {
		c.bmpc[i].Set(s.mroot[i])
	}

	one := newMP(wp)
	one.SetString("1")

	newA := make([]*mpComplex, n)
	prodB := newMP(wp)
	secEv := newMP(wp)
	btmp := newMP(wp)
	term := newMP(wp)
	diff := newMP(wp)
	for i := 0; i < n; i++ {
		prodB.Set(one)
		secEv.SetString("0")
		for j := 0; j < n; j++ {
			btmp.Sub(c.bmpc[i], oldB[j])
			if btmp.IsZero() {
				logrus.Debug("secular: cannot regenerate coefficients, reusing old ones")
				for k := 0; k < n; k++ {
					c.ampc[k].Set(oldA[k])
					c.bmpc[k].Set(oldB[k])
				}
				return
			}
			term.Div(oldA[j], btmp)
			secEv.Add(secEv, term)
			prodB.Mul(prodB, btmp)
			if i != j {
				diff.Sub(c.bmpc[i], c.bmpc[j])
				prodB.Div(prodB, diff)
			}
		}
		secEv.Sub(secEv, one)
		newA[i] = newMP(wp).Mul(secEv, prodB)
	}
	for i := 0; i < n; i++ {
		c.ampc[i].Set(newA[i])
	}
	startMP(s)
	setRadiiMP(s)
}
