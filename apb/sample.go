package apb

import (
	"fmt"
)

// TriState is one sampled signal value: either a driven (known) T, or
// the electrical unknown condition (X/Z). The zero value is unknown.
type TriState[T comparable] struct {
	value T
	known bool
}

// Known wraps a driven value.
func Known[T comparable](value T) TriState[T] {
	return TriState[T]{value: value, known: true}
}

// Unknown returns an undriven (X/Z) sample.
func Unknown[T comparable]() TriState[T] {
	return TriState[T]{}
}

// IsUnknown reports whether the sample was undriven.
func (ts TriState[T]) IsUnknown() bool {
	return !ts.known
}

// Get returns the sampled value and whether it was driven.
func (ts TriState[T]) Get() (value T, known bool) {
	return ts.value, ts.known
}

// Is reports whether the sample is driven and equal to value.
func (ts TriState[T]) Is(value T) bool {
	return ts.known && ts.value == value
}

// Eq compares two samples with 4-state (===) semantics: driven values
// compare by value, and two unknowns compare equal. A transition from
// unknown to a driven value is therefore a change.
func (ts TriState[T]) Eq(other TriState[T]) bool {
	if ts.known != other.known {
		return false
	}

	return !ts.known || ts.value == other.value
}

// String renders the value, or "x" when undriven.
func (ts TriState[T]) String() (text string) {
	if !ts.known {
		text = "x"
	} else {
		text = fmt.Sprintf("%v", ts.value)
	}

	return
}

// BusSample is one clock tick's snapshot of every APB signal between
// the requester and the completer. Samples are passed by value; the
// monitor retains at most the previous tick's sample.
type BusSample struct {
	ResetAsserted bool // PRESETn observed low; suspends every check.

	Addr   TriState[uint64] // PADDR, Config.AddrWidth bits.
	Prot   TriState[uint8]  // PPROT, 3 bits.
	Sel    TriState[bool]   // PSEL
	Enable TriState[bool]   // PENABLE
	Write  TriState[bool]   // PWRITE
	WData  TriState[uint64] // PWDATA, Config.DataWidth bits.
	Strb   TriState[uint8]  // PSTRB, one bit per data byte.
	Ready  TriState[bool]   // PREADY
	RData  TriState[uint64] // PRDATA, Config.DataWidth bits.
	SlvErr TriState[bool]   // PSLVERR
}
