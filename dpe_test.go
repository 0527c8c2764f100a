package secular

import (
	"math"
	"testing"
)

func TestRdArithmetic(t *testing.T) {
	a := rdFromFloat64(3, dpeMantissaBits)
	b := rdFromFloat64(4, dpeMantissaBits)
	sum := a.Add(b)
	if math.Abs(sum.Float64()-7) > 1e-9 {
		t.Fatalf("3+4 = %v, want 7", sum.Float64())
	}
	if !b.Gt(a) {
		t.Fatalf("expected 4 > 3")
	}
	if a.Gt(b) {
		t.Fatalf("expected 3 not > 4")
	}
	zero := rdFromFloat64(0, dpeMantissaBits)
	if !zero.IsZero() {
		t.Fatalf("expected 0 to report IsZero")
	}
	if a.IsZero() {
		t.Fatalf("expected 3 to not report IsZero")
	}
}

func TestRdTarget2Exp(t *testing.T) {
	r := rdTarget2Exp(-10, dpeMantissaBits)
	want := math.Pow(2, -10)
	if math.Abs(r.Float64()-want) > want*1e-12 {
		t.Fatalf("rdTarget2Exp(-10) = %v, want %v", r.Float64(), want)
	}
}

func TestRdFromString(t *testing.T) {
	r, ok := rdFromString("1.5e10", dpeMantissaBits)
	if !ok {
		t.Fatalf("rdFromString failed to parse valid input")
	}
	if math.Abs(r.Float64()-1.5e10) > 1 {
		t.Fatalf("rdFromString mismatch: got %v", r.Float64())
	}
	if _, ok := rdFromString("not-a-number", dpeMantissaBits); ok {
		t.Fatalf("expected rdFromString to reject invalid input")
	}
}

func TestCdArithmetic(t *testing.T) {
	a := cdFromComplex128(complex(1, 2))
	b := cdFromComplex128(complex(3, -1))

	sum := cdNew().Add(a, b)
	if !approxEq(sum, complex(4, 1)) {
		t.Fatalf("Add mismatch: got %s", sum.String())
	}

	diff := cdNew().Sub(a, b)
	if !approxEq(diff, complex(-2, 3)) {
		t.Fatalf("Sub mismatch: got %s", diff.String())
	}

	prod := cdNew().Mul(a, b)
	if !approxEq(prod, complex(1, 2)*complex(3, -1)) {
		t.Fatalf("Mul mismatch: got %s", prod.String())
	}

	quot := cdNew().Div(a, b)
	want := complex(1, 2) / complex(3, -1)
	if !approxEq(quot, want) {
		t.Fatalf("Div mismatch: got %s, want %v", quot.String(), want)
	}

	inv := cdNew().Inv(a)
	wantInv := 1 / complex(1, 2)
	if !approxEq(inv, wantInv) {
		t.Fatalf("Inv mismatch: got %s, want %v", inv.String(), wantInv)
	}
}

func TestCdAbs(t *testing.T) {
	z := cdFromComplex128(complex(3, 4))
	got := z.Abs().Float64()
	if math.Abs(got-5) > 1e-9 {
		t.Fatalf("|3+4i| = %v, want 5", got)
	}
}

func TestCdIsZero(t *testing.T) {
	z := cdFromComplex128(0)
	if !z.IsZero() {
		t.Fatalf("expected 0 to report IsZero")
	}
	nz := cdFromComplex128(complex(0, 1e-20))
	if nz.IsZero() {
		t.Fatalf("expected nonzero imaginary part to not report IsZero")
	}
}

func approxEq(c *cd, want complex128) bool {
	re, _ := c.re.Float64()
	im, _ := c.im.Float64()
	return math.Abs(re-real(want)) < 1e-9 && math.Abs(im-imag(want)) < 1e-9
}
