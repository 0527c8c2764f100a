package secular

import (
	"math/big"
	"math/cmplx"
)

// The Newton evaluator and Aberth accumulator are named in spec.md §6 as
// external collaborators ("contract in §6") whose algorithms are not part
// of the specified core. A concrete, standard implementation is supplied
// here so the driver is runnable end-to-end: Newton's method directly on
// the secular function S(x) = sum a_i/(x-b_i) - 1, and the classical Aberth
// deflation sum over the other current approximations.

// newtonFloat computes the Newton correction for the Float kind at
// approximation z, and reports whether further iteration can still help.
func newtonFloat(coef *coefficientSet, z complex128, r float64) (corr complex128, again bool) {
	var sx, dsx complex128
	for j := range coef.afpc {
		d := z - coef.bfpc[j]
		if d == 0 {
			// On a pole: cannot evaluate, freeze.
			return 0, false
		}
		t := coef.afpc[j] / d
		sx += t
		dsx -= t / d
	}
	sx -= 1
	if dsx == 0 {
		return 0, false
	}
	corr = sx / dsx
	if cmplx.IsInf(corr) || cmplx.IsNaN(corr) {
		return 0, false
	}
	// Stop refining once the correction is noise relative to the current
	// radius or to machine precision.
	if cmplx.Abs(corr) < r*1e-2 && r < 1e-2 {
		return corr, false
	}
	if cmplx.Abs(corr) < 1e-15*(1+cmplx.Abs(z)) {
		return corr, false
	}
	return corr, true
}

// aberthFloat computes sum_{j!=i} 1/(z_i - z_j) over the current Float-kind
// approximations (Gauss-Seidel: callers already hold updated earlier roots).
func aberthFloat(roots []complex128, i int) complex128 {
	var sum complex128
	zi := roots[i]
	for j, zj := range roots {
		if j == i {
			continue
		}
		d := zi - zj
		if d == 0 {
			continue
		}
		sum += 1 / d
	}
	return sum
}

// newtonDpe is the Dpe-kind analogue of newtonFloat.
func newtonDpe(coef *coefficientSet, z *cd, r rd) (corr *cd, again bool) {
	sx := cdNew()
	dsx := cdNew()
	t := cdNew()
	dt := cdNew()
	d := cdNew()
	for j := range coef.adpc {
		d.Sub(z, coef.bdpc[j])
		if d.IsZero() {
			return cdNew(), false
		}
		t.Div(coef.adpc[j], d)
		sx.Add(sx, t)
		dt.Div(t, d)
		dt.Neg(dt)
		dsx.Add(dsx, dt)
	}
	one := cdFromComplex128(1)
	sx.Sub(sx, one)
	if dsx.IsZero() {
		return cdNew(), false
	}
	corr = cdNew().Div(sx, dsx)
	mod := corr.Abs()
	if !mod.v.IsInf() && mod.v.Sign() >= 0 {
		// stop once r < 1e-2 and |corr| < r*1e-2 (newtonFloat's radius test)
		small := r.v.Cmp(big.NewFloat(1e-2)) < 0
		modSmall := mod.v.Cmp(new(big.Float).Mul(r.v, big.NewFloat(1e-2))) < 0
		if small && modSmall {
			return corr, false
		}
	}
	return corr, true
}

// aberthDpe is the Dpe-kind analogue of aberthFloat.
func aberthDpe(roots []*cd, i int) *cd {
	sum := cdNew()
	d := cdNew()
	inv := cdNew()
	zi := roots[i]
	for j, zj := range roots {
		if j == i {
			continue
		}
		d.Sub(zi, zj)
		if d.IsZero() {
			continue
		}
		inv.Inv(d)
		sum.Add(sum, inv)
	}
	return sum
}

// newtonMP is the Mp-kind analogue of newtonFloat.
func newtonMP(coef *coefficientSet, z *mpComplex, r rd, mpwp uint) (corr *mpComplex, again bool) {
	sx := newMP(mpwp)
	dsx := newMP(mpwp)
	t := newMP(mpwp)
	dt := newMP(mpwp)
	d := newMP(mpwp)
	for j := range coef.ampc {
		d.Sub(z, coef.bmpc[j])
		if d.IsZero() {
			return newMP(mpwp), false
		}
		t.Div(coef.ampc[j], d)
		sx.Add(sx, t)
		dt.Div(t, d)
		dt.Neg(dt)
		dsx.Add(dsx, dt)
	}
	one := newMP(mpwp)
	one.SetString("1")
	sx.Sub(sx, one)
	if dsx.IsZero() {
		return newMP(mpwp), false
	}
	corr = newMP(mpwp).Div(sx, dsx)
	mod := corr.Abs(dpeMantissaBits)
	small := r.v.Cmp(big.NewFloat(1e-2)) < 0
	modSmall := mod.v.Cmp(new(big.Float).Mul(r.v, big.NewFloat(1e-2))) < 0
	if small && modSmall {
		return corr, false
	}
	return corr, true
}

// aberthMP is the Mp-kind analogue of aberthFloat.
func aberthMP(roots []*mpComplex, i int, mpwp uint) *mpComplex {
	sum := newMP(mpwp)
	d := newMP(mpwp)
	inv := newMP(mpwp)
	zi := roots[i]
	for j, zj := range roots {
		if j == i {
			continue
		}
		d.Sub(zi, zj)
		if d.IsZero() {
			continue
		}
		inv.Inv(d)
		sum.Add(sum, inv)
	}
	return sum
}
