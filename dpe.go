package secular

import (
	"math/big"

	"github.com/ALTree/bigfloat"
)

// dpeMantissaBits is the working mantissa precision for the Dpe numeric
// kind. math/big.Float already separates mantissa from a (very large) int
// exponent, which is exactly the "dynamic-exponent double" the glossary
// describes, so the Dpe kind needs no hand-rolled exponent bookkeeping: it
// is simply a big.Float pinned at a small, fixed mantissa precision.
const dpeMantissaBits = 64

// rd is the Dpe/Mp shared radius type (RD in spec.md's NumericKinds),
// a non-negative dynamic-exponent real.
type rd struct {
	v *big.Float
}

func rdNew(prec uint) rd {
	return rd{v: new(big.Float).SetPrec(prec)}
}

func rdFromFloat64(x float64, prec uint) rd {
	return rd{v: new(big.Float).SetPrec(prec).SetFloat64(x)}
}

// rdFromString parses a decimal/scientific string into an RD value.
func rdFromString(s string, prec uint) (rd, bool) {
	f, _, err := big.ParseFloat(s, 10, prec, big.ToNearestEven)
	if err != nil {
		return rd{}, false
	}
	return rd{v: f}, true
}

// rdMax returns the dynamic-exponent analogue of DBL_MAX, used to seed
// "very large" initial radii (spec.md §4.4 step 1).
func rdMax(prec uint) rd {
	r := rdNew(prec)
	r.v.SetMantExp(big.NewFloat(1), 1<<30)
	return r
}

// rdTarget2Exp builds 2^exp as an RD value (mirrors rdpe_set_2dl(drad, 1.0, -prec_out)).
func rdTarget2Exp(exp int, prec uint) rd {
	r := rdNew(prec)
	r.v.SetMantExp(big.NewFloat(1), exp)
	return r
}

func (a rd) Add(b rd) rd {
	r := rdNew(maxUint(a.v.Prec(), b.v.Prec()))
	r.v.Add(a.v, b.v)
	return r
}

func (a rd) Gt(b rd) bool { return a.v.Cmp(b.v) > 0 }

func (a rd) IsZero() bool { return a.v.Sign() == 0 }

func (a rd) Float64() float64 { f, _ := a.v.Float64(); return f }

func (a rd) String() string { return a.v.Text('e', 6) }

// cd is the Dpe numeric kind (CD in spec.md's NumericKinds): a dynamic
// exponent complex value, represented as a pair of big.Float mantissas
// pinned at dpeMantissaBits.
type cd struct {
	re, im *big.Float
}

func cdNew() *cd {
	return &cd{
		re: new(big.Float).SetPrec(dpeMantissaBits),
		im: new(big.Float).SetPrec(dpeMantissaBits),
	}
}

func cdFromComplex128(v complex128) *cd {
	c := cdNew()
	c.re.SetFloat64(real(v))
	c.im.SetFloat64(imag(v))
	return c
}

func (c *cd) Clone() *cd {
	out := cdNew()
	out.re.Set(c.re)
	out.im.Set(c.im)
	return out
}

func (c *cd) Set(a *cd) *cd { c.re.Set(a.re); c.im.Set(a.im); return c }

func (c *cd) Add(a, b *cd) *cd {
	c.re.Add(a.re, b.re)
	c.im.Add(a.im, b.im)
	return c
}

func (c *cd) Sub(a, b *cd) *cd {
	c.re.Sub(a.re, b.re)
	c.im.Sub(a.im, b.im)
	return c
}

func (c *cd) Mul(a, b *cd) *cd {
	// (a.re+i a.im)(b.re+i b.im) = (a.re*b.re - a.im*b.im) + i(a.re*b.im + a.im*b.re)
	p := new(big.Float).SetPrec(dpeMantissaBits)
	q := new(big.Float).SetPrec(dpeMantissaBits)
	re := new(big.Float).SetPrec(dpeMantissaBits).Sub(p.Mul(a.re, b.re), q.Mul(a.im, b.im))
	im := new(big.Float).SetPrec(dpeMantissaBits).Add(p.Mul(a.re, b.im), q.Mul(a.im, b.re))
	c.re.Set(re)
	c.im.Set(im)
	return c
}

func (c *cd) Div(a, b *cd) *cd {
	// a/b = a * conj(b) / |b|^2
	denom := new(big.Float).SetPrec(dpeMantissaBits)
	bb := new(big.Float).SetPrec(dpeMantissaBits)
	denom.Mul(b.re, b.re)
	denom.Add(denom, bb.Mul(b.im, b.im))

	num := cdNew()
	num.re.Set(a.re)
	num.im.Set(a.im)
	conjB := &cd{re: new(big.Float).SetPrec(dpeMantissaBits).Set(b.re), im: new(big.Float).SetPrec(dpeMantissaBits).Neg(b.im)}
	num.Mul(num, conjB)

	c.re.Quo(num.re, denom)
	c.im.Quo(num.im, denom)
	return c
}

func (c *cd) Inv(a *cd) *cd {
	one := cdFromComplex128(1)
	return c.Div(one, a)
}

func (c *cd) Neg(a *cd) *cd {
	c.re.Neg(a.re)
	c.im.Neg(a.im)
	return c
}

func (c *cd) IsZero() bool { return c.re.Sign() == 0 && c.im.Sign() == 0 }

// Abs returns the modulus as an RD value, via ALTree/bigfloat's Sqrt on
// math/big.Float (the same dependency tuneinsight/lattigo in the example
// pack uses for big.Float transcendentals).
func (c *cd) Abs() rd {
	sq := new(big.Float).SetPrec(dpeMantissaBits)
	t := new(big.Float).SetPrec(dpeMantissaBits)
	sq.Mul(c.re, c.re)
	sq.Add(sq, t.Mul(c.im, c.im))
	out := rdNew(dpeMantissaBits)
	out.v = bigfloat.Sqrt(sq)
	return out
}

func (c *cd) String() string {
	return c.re.Text('e', 10) + "+" + c.im.Text('e', 10) + "i"
}

func maxUint(a, b uint) uint {
	if a > b {
		return a
	}
	return b
}
