package apb

import (
	"iter"
)

// stableSignals are held to the generic transfer-boundary rule: their
// value may only change on a tick whose phase is idle or setup.
var stableSignals = []struct {
	name    string
	changed func(prev BusSample, cur BusSample) bool
}{
	{"paddr", func(p, c BusSample) bool { return !c.Addr.Eq(p.Addr) }},
	{"pprot", func(p, c BusSample) bool { return !c.Prot.Eq(p.Prot) }},
	{"pstrb", func(p, c BusSample) bool { return !c.Strb.Eq(p.Strb) }},
	{"pslverr", func(p, c BusSample) bool { return !c.SlvErr.Eq(p.SlvErr) }},
}

// checkStability flags signals that change value outside a transfer
// boundary, plus PWDATA changes during an active write transfer.
// Suspended when there is no previous sample (start of run, or the
// previous tick was under reset) or the current phase is undefined.
func (mon *Monitor) checkStability(tick uint64, sample BusSample, phase Phase, phaseOk bool) iter.Seq[Violation] {
	return func(yield func(Violation) bool) {
		if !mon.history.hasPrevious {
			return
		}
		if !phaseOk || phase == PHASE_IDLE || phase == PHASE_SETUP {
			return
		}

		prev := mon.history.previous

		for _, sig := range stableSignals {
			if !sig.changed(prev, sample) {
				continue
			}

			violation := Violation{
				Tick:    tick,
				Kind:    KIND_STABILITY,
				Rule:    sig.name + "_stable",
				Message: f("%v changed during the access phase", sig.name),
			}
			if !yield(violation) {
				return
			}
		}

		// PWDATA is exempt whenever the current transfer is a read.
		if sample.Write.Is(true) && !sample.WData.Eq(prev.WData) {
			yield(Violation{
				Tick:    tick,
				Kind:    KIND_WRITE_DATA_STABILITY,
				Rule:    "pwdata_stable",
				Message: f("pwdata changed during an active write transfer"),
			})
		}
	}
}

// checkStrobe enforces that PSTRB is all-zero whenever a selected
// transfer is a read. Purely combinational: no history involved.
func (mon *Monitor) checkStrobe(tick uint64, sample BusSample) iter.Seq[Violation] {
	return func(yield func(Violation) bool) {
		if !sample.Sel.Is(true) || !sample.Write.Is(false) {
			return
		}

		strb, known := sample.Strb.Get()
		if !known || strb == 0 {
			return
		}

		yield(Violation{
			Tick:    tick,
			Kind:    KIND_STROBE_NONZERO_ON_READ,
			Rule:    "pstrb_read_zero",
			Message: f("pstrb %#02x nonzero on a read transfer", strb),
		})
	}
}
