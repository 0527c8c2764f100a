// Package secular implements the core root-finding engine of a
// secular-equation solver based on Gemignani's reformulation combined with
// the Ehrlich-Aberth simultaneous-iteration method.
//
// Given a secular equation
//
//	S(x) = sum_{i=0..n-1} a_i/(x-b_i) - 1 = 0
//
// with complex coefficients (a_i, b_i), Solve computes all n roots to a
// user-requested output precision, escalating numeric precision through
// three regimes (native double, dynamic-exponent double, and arbitrary
// precision) as needed.
//
// The arbitrary-precision regime is backed by GNU MPC/MPFR/GMP via cgo.
//
// Build requirements:
//   - libmpc, libmpfr, libgmp (headers + libs)
//     Debian/Ubuntu: sudo apt-get install -y libmpc-dev libmpfr-dev libgmp-dev build-essential
//     macOS/Homebrew: brew install mpc mpfr gmp
//
// SPDX-License-Identifier: MIT
package secular

/*
#cgo CFLAGS: -O2
#cgo LDFLAGS: -lmpc -lmpfr -lgmp
#include <stdlib.h>
#include <string.h>
#include <mpc.h>
#include <mpfr.h>

static char* sec_mpfr_to_str_fixed(mpfr_srcptr x, int digits) {
    if (digits < 0) digits = 0;
    int n = mpfr_snprintf(NULL, 0, "%.*Rf", digits, x);
    if (n < 0) return NULL;
    char *buf = (char*)malloc((size_t)n + 1);
    if (!buf) return NULL;
    if (mpfr_snprintf(buf, (size_t)n + 1, "%.*Rf", digits, x) < 0) {
        free(buf);
        return NULL;
    }
    return buf;
}

static char* sec_mpfr_to_str_sci(mpfr_srcptr x, int digits) {
    if (digits < 1) digits = 1;
    int n = mpfr_snprintf(NULL, 0, "%.*Re", digits, x);
    if (n < 0) return NULL;
    char *buf = (char*)malloc((size_t)n + 1);
    if (!buf) return NULL;
    if (mpfr_snprintf(buf, (size_t)n + 1, "%.*Re", digits, x) < 0) {
        free(buf);
        return NULL;
    }
    return buf;
}

static char* sec_mpc_to_a_plus_bi(mpc_srcptr z, int digits, int scientific) {
    mpfr_srcptr re = mpc_realref(z);
    mpfr_srcptr im = mpc_imagref(z);
    char *rs = scientific ? sec_mpfr_to_str_sci(re, digits) : sec_mpfr_to_str_fixed(re, digits);
    char *is = scientific ? sec_mpfr_to_str_sci(im, digits) : sec_mpfr_to_str_fixed(im, digits);
    if (!rs || !is) { if (rs) free(rs); if (is) free(is); return NULL; }
    int neg = (is[0] == '-') ? 1 : 0;
    size_t rn = strlen(rs);
    size_t in = strlen(is);
    size_t total = rn + 1 + (neg ? (in - 1) : in) + 1 + 1; // re + sign + im + 'i' + NUL
    char *out = (char*)malloc(total);
    if (!out) { free(rs); free(is); return NULL; }
    char *p = out;
    memcpy(p, rs, rn); p += rn;
    *p++ = neg ? '-' : '+';
    if (neg) { memcpy(p, is + 1, in - 1); p += in - 1; }
    else { memcpy(p, is, in); p += in; }
    *p++ = 'i';
    *p = '\0';
    free(rs); free(is);
    return out;
}

static char* sec_mpc_real_fixed(mpc_srcptr z, int digits) {
    return sec_mpfr_to_str_fixed(mpc_realref(z), digits);
}
static char* sec_mpc_imag_fixed(mpc_srcptr z, int digits) {
    return sec_mpfr_to_str_fixed(mpc_imagref(z), digits);
}
*/
import "C"

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"unsafe"
)

// default rounding mode (nearest, nearest)
var defaultRnd = C.mpc_rnd_t(C.MPC_RNDNN)

// mpComplex is an arbitrary-precision complex value, the Mp numeric kind
// (CM in spec.md's NumericKinds). Use newMP/parseMP; the zero value is not
// usable.
type mpComplex struct {
	z    C.mpc_t
	prec uint
	init bool
}

// newMP allocates a value with the given precision in bits. If bits==0, 53 is used.
func newMP(bits uint) *mpComplex {
	if bits == 0 {
		bits = 53
	}
	c := &mpComplex{prec: bits}
	C.mpc_init2(&c.z[0], C.mpfr_prec_t(bits))
	c.init = true
	runtime.SetFinalizer(c, func(cc *mpComplex) {
		if cc.init {
			C.mpc_clear(&cc.z[0])
			cc.init = false
		}
	})
	return c
}

// Close frees C resources.
func (c *mpComplex) Close() {
	if c != nil && c.init {
		C.mpc_clear(&c.z[0])
		c.init = false
	}
}

// Prec returns precision in bits.
func (c *mpComplex) Prec() uint { return c.prec }

// SetPrec changes precision (rounding the current value to the new precision).
func (c *mpComplex) SetPrec(bits uint) *mpComplex {
	if !c.init {
		panic("secular: mpComplex not initialized")
	}
	if bits == 0 {
		bits = 53
	}
	if bits == c.prec {
		return c
	}
	var tmp C.mpc_t
	C.mpc_init2(&tmp[0], C.mpfr_prec_t(bits))
	C.mpc_set(&tmp[0], &c.z[0], defaultRnd)
	C.mpc_swap(&tmp[0], &c.z[0])
	C.mpc_clear(&tmp[0])
	c.prec = bits
	return c
}

// Clone returns a deep copy.
func (c *mpComplex) Clone() *mpComplex {
	out := newMP(c.prec)
	C.mpc_set(&out.z[0], &c.z[0], defaultRnd)
	return out
}

// parseMP parses a complex literal at the given precision. Accepts:
//
//	"a+bi", "a-bi", "i", "-i", plain real "a", or MPC form "(a b)" / "(a, b)".
func parseMP(s string, prec uint) (*mpComplex, error) {
	z := newMP(prec)
	if err := z.SetString(s); err != nil {
		z.Close()
		return nil, err
	}
	return z, nil
}

// mustParseMP panics on error; used only in tests.
func mustParseMP(s string, prec uint) *mpComplex {
	z, err := parseMP(s, prec)
	if err != nil {
		panic(err)
	}
	return z
}

// SetString sets c from a complex string (see parseMP).
func (c *mpComplex) SetString(s string) error {
	if !c.init {
		return errors.New("secular: mpComplex not initialized")
	}
	re, im, ok := normalizeToPair(s)
	if !ok {
		return fmt.Errorf("secular: invalid complex literal %q", s)
	}
	return c.SetBase(re, im, 10)
}

// SetBase sets c = re + i*im, parsing both parts using the given base (<=0 defaults to 10).
func (c *mpComplex) SetBase(re, im string, base int) error {
	if !c.init {
		return errors.New("secular: mpComplex not initialized")
	}
	var r, i C.mpfr_t
	C.mpfr_init2(&r[0], C.mpfr_prec_t(c.prec))
	C.mpfr_init2(&i[0], C.mpfr_prec_t(c.prec))
	defer C.mpfr_clear(&r[0])
	defer C.mpfr_clear(&i[0])

	cr := C.CString(strings.TrimSpace(re))
	ci := C.CString(strings.TrimSpace(im))
	defer C.free(unsafe.Pointer(cr))
	defer C.free(unsafe.Pointer(ci))

	b := C.int(base)
	if base <= 0 {
		b = 10
	}
	if C.mpfr_set_str(&r[0], cr, b, C.MPFR_RNDN) != 0 {
		return fmt.Errorf("secular: invalid real part %q", re)
	}
	if C.mpfr_set_str(&i[0], ci, b, C.MPFR_RNDN) != 0 {
		return fmt.Errorf("secular: invalid imaginary part %q", im)
	}
	C.mpc_set_fr_fr(&c.z[0], &r[0], &i[0], defaultRnd)
	return nil
}

// setComplex128 sets c = re + i*im from native doubles, used when handing a
// Float-kind approximation to the Mp kind on phase switch.
func (c *mpComplex) setComplex128(v complex128) *mpComplex {
	C.mpc_set_d_d(&c.z[0], C.double(real(v)), C.double(imag(v)), defaultRnd)
	return c
}

// normalizeToPair converts common forms into separate real/imag strings.
func normalizeToPair(in string) (string, string, bool) {
	s := strings.TrimSpace(in)
	if s == "" {
		return "0", "0", true
	}
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		mid := strings.TrimSpace(s[1 : len(s)-1])
		mid = strings.ReplaceAll(mid, ",", " ")
		f := strings.Fields(mid)
		if len(f) == 1 {
			return f[0], "0", true
		}
		if len(f) >= 2 {
			return f[0], f[1], true
		}
		return "", "", false
	}
	s = strings.ReplaceAll(s, "I", "i")
	if s == "i" || s == "+i" {
		return "0", "1", true
	}
	if s == "-i" {
		return "0", "-1", true
	}
	if strings.HasSuffix(s, "i") {
		core := strings.TrimSpace(s[:len(s)-1])
		idx := lastSignNotInExponent(core)
		if idx > 0 {
			re := strings.TrimSpace(core[:idx])
			im := strings.TrimSpace(core[idx:])
			if im == "+" || im == "-" {
				return re, "0", true
			}
			return re, im, true
		}
		return "0", core, true
	}
	return s, "0", true
}

// lastSignNotInExponent finds last '+'/'-' not part of an exponent and not at position 0.
func lastSignNotInExponent(s string) int {
	for i := len(s) - 1; i > 0; i-- {
		if s[i] == '+' || s[i] == '-' {
			if s[i-1] != 'e' && s[i-1] != 'E' {
				return i
			}
		}
	}
	return -1
}

// Formatting
func (c *mpComplex) StringFixed(digits int) string {
	if digits < 0 {
		digits = 0
	}
	if !c.init {
		return "(invalid)"
	}
	p := C.sec_mpc_to_a_plus_bi(&c.z[0], C.int(digits), C.int(0))
	if p == nil {
		return "<oom>"
	}
	defer C.free(unsafe.Pointer(p))
	return C.GoString(p)
}

func (c *mpComplex) StringScientific(digits int) string {
	if digits < 1 {
		digits = 1
	}
	if !c.init {
		return "(invalid)"
	}
	p := C.sec_mpc_to_a_plus_bi(&c.z[0], C.int(digits), C.int(1))
	if p == nil {
		return "<oom>"
	}
	defer C.free(unsafe.Pointer(p))
	return C.GoString(p)
}

func (c *mpComplex) RealStringFixed(digits int) string {
	if digits < 0 {
		digits = 0
	}
	if !c.init {
		return "(invalid)"
	}
	p := C.sec_mpc_real_fixed(&c.z[0], C.int(digits))
	if p == nil {
		return "<oom>"
	}
	defer C.free(unsafe.Pointer(p))
	return C.GoString(p)
}

func (c *mpComplex) ImagStringFixed(digits int) string {
	if digits < 0 {
		digits = 0
	}
	if !c.init {
		return "(invalid)"
	}
	p := C.sec_mpc_imag_fixed(&c.z[0], C.int(digits))
	if p == nil {
		return "<oom>"
	}
	defer C.free(unsafe.Pointer(p))
	return C.GoString(p)
}

// Algebraic ops (mutating; return receiver for chaining)
func (c *mpComplex) Set(a *mpComplex) *mpComplex { C.mpc_set(&c.z[0], &a.z[0], defaultRnd); return c }
func (c *mpComplex) Add(a, b *mpComplex) *mpComplex {
	C.mpc_add(&c.z[0], &a.z[0], &b.z[0], defaultRnd)
	return c
}
func (c *mpComplex) Sub(a, b *mpComplex) *mpComplex {
	C.mpc_sub(&c.z[0], &a.z[0], &b.z[0], defaultRnd)
	return c
}
func (c *mpComplex) Mul(a, b *mpComplex) *mpComplex {
	C.mpc_mul(&c.z[0], &a.z[0], &b.z[0], defaultRnd)
	return c
}
func (c *mpComplex) Div(a, b *mpComplex) *mpComplex {
	C.mpc_div(&c.z[0], &a.z[0], &b.z[0], defaultRnd)
	return c
}
func (c *mpComplex) Neg(a *mpComplex) *mpComplex  { C.mpc_neg(&c.z[0], &a.z[0], defaultRnd); return c }
func (c *mpComplex) Conj(a *mpComplex) *mpComplex { C.mpc_conj(&c.z[0], &a.z[0], defaultRnd); return c }
func (c *mpComplex) Inv(a *mpComplex) *mpComplex {
	// c = 1 / a
	C.mpc_set_ui_ui(&c.z[0], 1, 0, defaultRnd)
	C.mpc_div(&c.z[0], &c.z[0], &a.z[0], defaultRnd)
	return c
}

// IsZero reports whether c is exactly zero (real and imaginary parts both
// zero). Used by RegenerationEngine's singularity check (spec.md §4.2).
func (c *mpComplex) IsZero() bool {
	return C.mpfr_zero_p(C.mpc_realref(&c.z[0])) != 0 && C.mpfr_zero_p(C.mpc_imagref(&c.z[0])) != 0
}

// Abs returns the modulus of c as a dynamic-exponent real (RD), the radius
// type the Mp kind shares with the Dpe kind (spec.md's SolverState uses
// "drad" for both).
func (c *mpComplex) Abs(rdPrec uint) rd {
	var r C.mpfr_t
	C.mpfr_init2(&r[0], C.mpfr_prec_t(c.prec))
	defer C.mpfr_clear(&r[0])
	C.mpc_abs(&r[0], &c.z[0], C.MPFR_RNDN)
	p := C.sec_mpfr_to_str_sci(&r[0], C.int(30))
	if p == nil {
		return rdFromFloat64(0, rdPrec)
	}
	defer C.free(unsafe.Pointer(p))
	v, ok := rdFromString(C.GoString(p), rdPrec)
	if !ok {
		return rdFromFloat64(0, rdPrec)
	}
	return v
}

// Non-mutating convenience wrappers
func mpAdd(a, b *mpComplex) *mpComplex { return newMP(a.prec).Add(a, b) }
func mpSub(a, b *mpComplex) *mpComplex { return newMP(a.prec).Sub(a, b) }
func mpMul(a, b *mpComplex) *mpComplex { return newMP(a.prec).Mul(a, b) }
func mpDiv(a, b *mpComplex) *mpComplex { return newMP(a.prec).Div(a, b) }
func mpInv(a *mpComplex) *mpComplex    { return newMP(a.prec).Inv(a) }
