package secular

// coefficientSet holds the secular equation's (a, b) tuple in all three
// numeric kinds simultaneously (spec.md's SecularCoefficients, ≈8% of
// core). Only the kind matching the current Phase is "live"; the others
// are populated on demand by phase switches.
type coefficientSet struct {
	n int

	// Float kind
	afpc, bfpc []complex128

	// Dpe kind
	adpc, bdpc []*cd

	// Mp kind
	ampc, bmpc []*mpComplex
}

func newCoefficientSet(n int) *coefficientSet {
	return &coefficientSet{
		n:    n,
		afpc: make([]complex128, n),
		bfpc: make([]complex128, n),
		adpc: make([]*cd, n),
		bdpc: make([]*cd, n),
		ampc: make([]*mpComplex, n),
		bmpc: make([]*mpComplex, n),
	}
}

// seedFloat installs a, b as the Float-kind coefficients and derives the
// Dpe-kind ones from them (cheap, exact-enough for the seeding step; Mp-kind
// coefficients are derived lazily on first use of the Mp phase via
// switchPhase).
func (cs *coefficientSet) seedFloat(a, b []complex128) {
	copy(cs.afpc, a)
	copy(cs.bfpc, b)
	for i := 0; i < cs.n; i++ {
		cs.adpc[i] = cdFromComplex128(a[i])
		cs.bdpc[i] = cdFromComplex128(b[i])
	}
}

// seedDpe installs a, b as the Dpe-kind coefficients directly.
func (cs *coefficientSet) seedDpe(a, b []*cd) {
	for i := 0; i < cs.n; i++ {
		cs.adpc[i] = a[i].Clone()
		cs.bdpc[i] = b[i].Clone()
	}
	// Float-kind mirror, best-effort (only used if the driver is ever asked
	// to report Float-kind values while seeded from Dpe; not exercised by
	// the phase DAG, which never goes Dpe->Float).
	for i := 0; i < cs.n; i++ {
		re, _ := cs.adpc[i].re.Float64()
		im, _ := cs.adpc[i].im.Float64()
		cs.afpc[i] = complex(re, im)
		re, _ = cs.bdpc[i].re.Float64()
		im, _ = cs.bdpc[i].im.Float64()
		cs.bfpc[i] = complex(re, im)
	}
}

// ensureMP populates the Mp-kind coefficients at the given working
// precision from whichever kind is currently authoritative.
func (cs *coefficientSet) ensureMP(from Phase, mpwp uint) {
	for i := 0; i < cs.n; i++ {
		switch from {
		case Float:
			cs.ampc[i] = newMP(mpwp)
			cs.bmpc[i] = newMP(mpwp)
			cs.ampc[i].setComplex128(cs.afpc[i])
			cs.bmpc[i].setComplex128(cs.bfpc[i])
		case Dpe:
			cs.ampc[i] = newMP(mpwp)
			cs.bmpc[i] = newMP(mpwp)
			cs.ampc[i].SetBase(cs.adpc[i].re.Text('e', 40), cs.adpc[i].im.Text('e', 40), 10)
			cs.bmpc[i].SetBase(cs.bdpc[i].re.Text('e', 40), cs.bdpc[i].im.Text('e', 40), 10)
		case Mp:
			// already Mp; reprecision in place rather than discarding the value
			cs.ampc[i].SetPrec(mpwp)
			cs.bmpc[i].SetPrec(mpwp)
		}
	}
}

// reprecisionMP re-initializes every Mp-kind coefficient at the new working
// precision (spec.md §5: "every live MP value must be reinitialized before
// any arithmetic uses it").
func (cs *coefficientSet) reprecisionMP(mpwp uint) {
	for i := 0; i < cs.n; i++ {
		cs.ampc[i].SetPrec(mpwp)
		cs.bmpc[i].SetPrec(mpwp)
	}
}
