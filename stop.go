package secular

import "math"

// shouldStop implements spec.md §4.3's StopPredicate, with the reference's
// ambiguous fallthrough resolved as the corrected, separated version (see
// DESIGN.md open question 1): Float phase checks frad against
// 10^(-prec_out); Dpe and Mp phases check drad against 2^(-prec_out).
func shouldStop(s *State) bool {
	switch s.lastPhase {
	case Float:
		fradT := math.Pow(10, -float64(s.precOut))
		if fradT == 0 {
			// Underflow: double precision cannot represent the target
			// radius at all, so Float phase can never claim success.
			return false
		}
		for _, r := range s.frad {
			if r > fradT {
				return false
			}
		}
		return true
	case Dpe, Mp:
		dradT := rdTarget2Exp(-int(s.precOut), dpeMantissaBits)
		for _, r := range s.drad {
			if r.Gt(dradT) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
