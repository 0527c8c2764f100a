package secular

import (
	"math"

	"github.com/sirupsen/logrus"
)

// Solve is the module's single public entry point (spec.md §6:
// "Exposed to consumers: one entry point secular_solve(state,
// initial_phase)"). It drives the packet/phase-escalation loop described in
// spec.md §4.4, mirroring the reference's mps_secular_ga_mpsolve: iterate in
// bounded packets; a non-escalating Float/Dpe packet just loops back into
// another packet, regeneration only happens on escalation to Mp or, once in
// Mp, after every precision raise that does not end the solve.
func Solve(s *State, initialPhase Phase) {
	for i := range s.frad {
		s.frad[i] = math.MaxFloat64
	}
	for i := range s.drad {
		s.drad[i] = rdMax(dpeMantissaBits)
	}

	clusterReset(s)
	s.lastPhase = initialPhase
	secularStart(s)
	secularSetRadii(s)

	packet := 0
	for {
		computed := iterate(s, 10)
		if s.lastPhase != Mp {
			packet++
		}

		if shouldStop(s) {
			logrus.Debugf("secular: stop predicate satisfied in phase %s after packet %d", s.lastPhase, packet)
			return
		}

		if s.lastPhase != Mp {
			if computed == s.n || packet > 3 {
				logrus.Debugf("secular: escalating phase %s -> mp after packet %d (computed=%d/%d)", s.lastPhase, packet, computed, s.n)
				switchPhase(s, Mp)
				regenerate(s)
			}
			continue
		}

		raisePrecision(s)
		if shouldStop(s) {
			logrus.Debugf("secular: stop predicate satisfied after precision-raise exhaustion")
			return
		}
		regenerate(s)
	}
}
