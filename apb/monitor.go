// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package apb

import (
	"log"

	"github.com/ezrec/apbmon/internal"
)

// history is the one-tick lookback window. The previous sample and
// phase are valid only when their flags are set; both are dropped
// whenever reset is observed, so "previous exists" also implies the
// previous tick was not under reset.
type history struct {
	tick uint64

	previous    BusSample
	hasPrevious bool

	previousPhase    Phase
	hasPreviousPhase bool
}

func (hist *history) clear() {
	hist.hasPrevious = false
	hist.hasPreviousPhase = false
}

// Monitor is a passive APB protocol observer. Feed it one BusSample
// per rising clock edge via Tick; it reports every signal-validity,
// stability and phase-sequencing breach it sees. Violations are data,
// not errors: monitoring always continues.
type Monitor struct {
	Config   Config
	Verbose  bool     // If set, logs the classified phase each tick.
	Reporter Reporter // Optional sink, called for each violation as it occurs.

	history history
}

// NewMonitor validates the bus geometry and creates a monitor.
func NewMonitor(config Config) (mon *Monitor, err error) {
	err = config.Validate()
	if err != nil {
		return
	}

	mon = &Monitor{Config: config}

	return
}

// Ticks returns the number of samples consumed so far.
func (mon *Monitor) Ticks() uint64 {
	return mon.history.tick
}

// Tick advances the monitor by one clock sample and returns the
// violations observed on that tick, in reporting order. While reset is
// asserted every check is suspended and the history window is dropped.
func (mon *Monitor) Tick(sample BusSample) (violations []Violation) {
	tick := mon.history.tick
	mon.history.tick++

	if sample.ResetAsserted {
		mon.history.clear()
		return
	}

	phase, phaseOk := Classify(sample)
	if mon.Verbose && phaseOk {
		log.Printf("tick %v: %v", tick, phase)
	}

	// The checkers are independent: each is a pure function of the
	// sample and the history window, evaluated in a fixed reporting
	// order within the tick.
	checks := internal.IterSeqConcat(
		mon.checkValidity(tick, sample),
		mon.checkStability(tick, sample, phase, phaseOk),
		mon.checkStrobe(tick, sample),
		mon.checkHandshake(tick, sample),
		mon.checkPhase(tick, phase, phaseOk),
	)

	for violation := range checks {
		if mon.Reporter != nil {
			mon.Reporter.Report(violation)
		}
		violations = append(violations, violation)
	}

	mon.history.previous = sample
	mon.history.hasPrevious = true
	mon.history.previousPhase = phase
	mon.history.hasPreviousPhase = phaseOk

	return
}
