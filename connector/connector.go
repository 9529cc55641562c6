// Package connector wires process blocks together as a single-valued,
// pull-based dataflow graph, generalised from gofem's ele.Connector
// interface (element.go: "Connector defines connector elements; elements
// that depend upon others") from FEM-element graph wiring to a DAG of
// psychrometric blocks.
package connector

import "github.com/pjazdzyk/hvac-engine-sub005/xerrors"

// Output owns a value of type T and hands it out to any Input connected to
// it. There is no push propagation: a connected Input re-reads Get() on
// every call.
type Output[T any] struct {
	value T
	set   bool
}

// Set stores v as the current value of this output.
func (o *Output[T]) Set(v T) {
	o.value = v
	o.set = true
}

// Get returns the current value of this output.
func (o *Output[T]) Get() T { return o.value }

// HasValue reports whether Set has been called at least once.
func (o *Output[T]) HasValue() bool { return o.set }

// Input is bound to exactly one Output and pulls its value on demand.
type Input[T any] struct {
	source *Output[T]
}

// ConnectAndConsumeDataFrom binds this input to the given output.
func (in *Input[T]) ConnectAndConsumeDataFrom(source *Output[T]) {
	in.source = source
}

// IsConnected reports whether this input is bound to an output.
func (in *Input[T]) IsConnected() bool { return in.source != nil }

// Get re-reads the bound output's current value.
func (in *Input[T]) Get() (T, error) {
	var zero T
	if in.source == nil {
		return zero, xerrors.IncompatibleState("input is not connected to any output")
	}
	return in.source.Get(), nil
}

// State models a block's lifecycle: a freshly constructed block is
// Uninitialized, becomes Ready once its air-flow source is connected, and
// transitions to LastRunValid after a successful Run(). ResetProcess
// returns a block to Ready.
type State int

const (
	Uninitialized State = iota
	Ready
	LastRunValid
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "UNINITIALIZED"
	case Ready:
		return "READY"
	case LastRunValid:
		return "LAST_RUN_VALID"
	default:
		return "UNKNOWN"
	}
}
