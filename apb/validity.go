package apb

import (
	"iter"
)

// signalProbes enumerates every monitored signal with an unknown-state
// probe. Reporting order follows the APB signal list.
var signalProbes = []struct {
	name    string
	unknown func(sample BusSample) bool
}{
	{"paddr", func(s BusSample) bool { return s.Addr.IsUnknown() }},
	{"pprot", func(s BusSample) bool { return s.Prot.IsUnknown() }},
	{"psel", func(s BusSample) bool { return s.Sel.IsUnknown() }},
	{"penable", func(s BusSample) bool { return s.Enable.IsUnknown() }},
	{"pwrite", func(s BusSample) bool { return s.Write.IsUnknown() }},
	{"pwdata", func(s BusSample) bool { return s.WData.IsUnknown() }},
	{"pstrb", func(s BusSample) bool { return s.Strb.IsUnknown() }},
	{"pready", func(s BusSample) bool { return s.Ready.IsUnknown() }},
	{"prdata", func(s BusSample) bool { return s.RData.IsUnknown() }},
	{"pslverr", func(s BusSample) bool { return s.SlvErr.IsUnknown() }},
}

// checkValidity flags every signal sampled in the unknown state. One
// violation per unknown signal per tick; a signal stuck unknown for N
// ticks produces N violations.
func (mon *Monitor) checkValidity(tick uint64, sample BusSample) iter.Seq[Violation] {
	return func(yield func(Violation) bool) {
		for _, probe := range signalProbes {
			if !probe.unknown(sample) {
				continue
			}

			violation := Violation{
				Tick:    tick,
				Kind:    KIND_UNKNOWN_SIGNAL,
				Rule:    probe.name + "_never_unknown",
				Message: f("%v sampled unknown", probe.name),
			}
			if !yield(violation) {
				return
			}
		}
	}
}
