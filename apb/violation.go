package apb

// Kind is the violation taxonomy.
type Kind int

const (
	KIND_UNKNOWN_SIGNAL           = Kind(0) // Signal sampled unknown outside reset.
	KIND_STABILITY                = Kind(1) // Signal changed outside a transfer boundary.
	KIND_WRITE_DATA_STABILITY     = Kind(2) // PWDATA changed during an active write transfer.
	KIND_STROBE_NONZERO_ON_READ   = Kind(3) // PSTRB nonzero on a selected read.
	KIND_ILLEGAL_ENABLE_FALL      = Kind(4) // PENABLE deasserted outside its legal conditions.
	KIND_ILLEGAL_SELECT_FALL      = Kind(5) // PSEL deasserted outside its legal conditions.
	KIND_ILLEGAL_PHASE_TRANSITION = Kind(6) // Phase pair absent from the transition table.
)

func (kind Kind) String() (out string) {
	switch kind {
	case KIND_UNKNOWN_SIGNAL:
		out = "unknown-signal"
	case KIND_STABILITY:
		out = "stability"
	case KIND_WRITE_DATA_STABILITY:
		out = "write-data-stability"
	case KIND_STROBE_NONZERO_ON_READ:
		out = "strobe-nonzero-on-read"
	case KIND_ILLEGAL_ENABLE_FALL:
		out = "illegal-enable-fall"
	case KIND_ILLEGAL_SELECT_FALL:
		out = "illegal-select-fall"
	case KIND_ILLEGAL_PHASE_TRANSITION:
		out = "illegal-phase-transition"
	default:
		out = "violation"
	}

	return
}

// Violation is one observed protocol breach. Produced once, never
// mutated; reporting a violation never alters subsequent monitoring.
type Violation struct {
	Tick    uint64 // Clock tick the violation was observed on.
	Kind    Kind   // Taxonomy kind.
	Rule    string // Stable rule identifier, e.g. "paddr_stable".
	Message string // Localized description.
}

func (v Violation) String() string {
	return f("tick %d: %s: %s", v.Tick, v.Rule, v.Message)
}

// Reporter receives violation events as they occur.
type Reporter interface {
	Report(violation Violation)
}

// ReporterFunc adapts a plain function to the Reporter interface.
type ReporterFunc func(violation Violation)

func (fn ReporterFunc) Report(violation Violation) {
	fn(violation)
}
