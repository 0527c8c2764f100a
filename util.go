package secular

import "strconv"

// parseFloatOrZero parses a signed decimal string (as produced by
// mpComplex's RealStringFixed/ImagStringFixed, which may carry a leading
// '+') into a float64, returning 0 on failure rather than propagating an
// error — used only for best-effort complex128 projections of Mp-kind
// values (State.Roots, and startMP's seeding radius), never in a
// precision-critical path.
func parseFloatOrZero(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
