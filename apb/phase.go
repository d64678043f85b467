package apb

import (
	"fmt"
	"slices"
)

// Phase is the per-tick operating state of the bus, derived from PSEL,
// PENABLE and PREADY.
type Phase int

const (
	PHASE_IDLE        = Phase(0) // No transfer selected.
	PHASE_SETUP       = Phase(1) // First cycle of a transfer.
	PHASE_ACCESS_WAIT = Phase(2) // Access cycle held by wait states.
	PHASE_ACCESS_LAST = Phase(3) // Final access cycle, PREADY high.
)

func (ph Phase) String() (out string) {
	switch ph {
	case PHASE_IDLE:
		out = "idle"
	case PHASE_SETUP:
		out = "setup"
	case PHASE_ACCESS_WAIT:
		out = "access.wait"
	case PHASE_ACCESS_LAST:
		out = "access.last"
	default:
		out = fmt.Sprintf("phase(%d)", int(ph))
	}

	return
}

// Classify derives the bus phase from the current sample. The phase is
// undefined (ok false) whenever PSEL, PENABLE or PREADY is unknown; an
// unknown driving signal is reported separately by the validity check.
func Classify(sample BusSample) (phase Phase, ok bool) {
	sel, selKnown := sample.Sel.Get()
	enable, enableKnown := sample.Enable.Get()
	ready, readyKnown := sample.Ready.Get()

	ok = selKnown && enableKnown && readyKnown
	if !ok {
		return
	}

	switch {
	case !sel:
		phase = PHASE_IDLE
	case !enable:
		phase = PHASE_SETUP
	case !ready:
		phase = PHASE_ACCESS_WAIT
	default:
		phase = PHASE_ACCESS_LAST
	}

	return
}

// legalNext is the APB phase transition table. There is no mandatory
// start state; the machine runs from the first well-defined phase
// after reset deassertion.
var legalNext = map[Phase][]Phase{
	PHASE_IDLE:        {PHASE_IDLE, PHASE_SETUP},
	PHASE_SETUP:       {PHASE_ACCESS_WAIT, PHASE_ACCESS_LAST},
	PHASE_ACCESS_WAIT: {PHASE_ACCESS_WAIT, PHASE_ACCESS_LAST},
	PHASE_ACCESS_LAST: {PHASE_IDLE, PHASE_SETUP},
}

// LegalTransition reports whether from -> to appears in the phase table.
func LegalTransition(from Phase, to Phase) bool {
	return slices.Contains(legalNext[from], to)
}
