package apb

import (
	"iter"
)

// checkHandshake enforces the PENABLE and PSEL deassertion rules.
// These two signals help define the bus phase, so they are checked
// against raw signal history rather than through the classifier.
func (mon *Monitor) checkHandshake(tick uint64, sample BusSample) iter.Seq[Violation] {
	return func(yield func(Violation) bool) {
		if !mon.history.hasPrevious {
			return
		}

		prev := mon.history.previous
		accessDone := prev.Enable.Is(true) && prev.Ready.Is(true)

		// PENABLE may fall only into idle (PSEL low) or right after a
		// completed access. An unknown-to-low transition is not a fall.
		if prev.Enable.Is(true) && sample.Enable.Is(false) &&
			!sample.Sel.Is(false) && !accessDone {
			violation := Violation{
				Tick:    tick,
				Kind:    KIND_ILLEGAL_ENABLE_FALL,
				Rule:    "penable_fall",
				Message: f("penable deasserted before the access completed"),
			}
			if !yield(violation) {
				return
			}
		}

		// PSEL may fall only right after a completed access. Unlike
		// PENABLE, an unknown-to-low transition must satisfy the same
		// condition.
		if sample.Sel.Is(false) && !prev.Sel.Is(false) && !accessDone {
			yield(Violation{
				Tick:    tick,
				Kind:    KIND_ILLEGAL_SELECT_FALL,
				Rule:    "psel_fall",
				Message: f("psel deasserted before the access completed"),
			})
		}
	}
}

// checkPhase flags phase pairs absent from the transition table,
// evaluated one tick in arrears. Suspended whenever either endpoint
// phase is undefined or the source tick was under reset.
func (mon *Monitor) checkPhase(tick uint64, phase Phase, phaseOk bool) iter.Seq[Violation] {
	return func(yield func(Violation) bool) {
		if !phaseOk || !mon.history.hasPreviousPhase {
			return
		}

		from := mon.history.previousPhase
		if LegalTransition(from, phase) {
			return
		}

		yield(Violation{
			Tick:    tick,
			Kind:    KIND_ILLEGAL_PHASE_TRANSITION,
			Rule:    "phase_transition",
			Message: f("illegal phase transition %v to %v", from, phase),
		})
	}
}
