// Package apb implements a passive protocol-compliance monitor for the
// AMBA APB point-to-point bus.
//
// The monitor consumes one BusSample per rising clock edge and reports
// every breach of the APB signal-validity, signal-stability and
// phase-sequencing rules it observes. It never drives the bus: the
// requester and completer under observation belong to some other
// component (a live simulation, a recorded trace, or a test generator).
//
// Every signal is sampled as a TriState value so that the electrical
// unknown (X/Z) condition is explicit, and all comparisons are total.
// The monitor keeps a single tick of history; no unbounded state grows
// over a run, and a violation never halts or alters later monitoring.
package apb
