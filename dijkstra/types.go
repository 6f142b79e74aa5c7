// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Phase and Transition enums, functional options, sentinel errors.

package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the dijkstra package.
var (
	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero, a
	// negative value or NaN, which would wall off every edge.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrStateEncoding indicates a snapshot could not be encoded or decoded.
	ErrStateEncoding = errors.New("dijkstra: state encoding failed")
)

// Phase is the live phase of the state machine, derived from the snapshot's
// discriminants (IsDone, CurrentEdge, CurrentVertex).
type Phase int

const (
	// PhaseSelectFrontier: no current vertex; the next call picks one.
	PhaseSelectFrontier Phase = iota

	// PhaseExpanding: a current vertex is set and no edge is under examination.
	PhaseExpanding

	// PhaseRelaxEdge: a candidate edge is under examination.
	PhaseRelaxEdge

	// PhaseTerminated: the search is over.
	PhaseTerminated
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSelectFrontier:
		return "select-frontier"
	case PhaseExpanding:
		return "expanding"
	case PhaseRelaxEdge:
		return "relax-edge"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Transition reports which micro-step a call to Engine.Step performed.
type Transition int

const (
	// TransitionNone: the engine was already terminated; nothing changed.
	TransitionNone Transition = iota

	// TransitionTerminate: the search finished on this call.
	TransitionTerminate

	// TransitionSelect: a frontier vertex was finalized and its edges queued.
	TransitionSelect

	// TransitionComplete: the current vertex had no edges left and was released.
	TransitionComplete

	// TransitionDequeue: the next candidate edge became the current edge.
	TransitionDequeue

	// TransitionRelax: the current edge was checked (and possibly improved a distance).
	TransitionRelax
)

// String returns the transition name.
func (t Transition) String() string {
	switch t {
	case TransitionNone:
		return "none"
	case TransitionTerminate:
		return "terminate"
	case TransitionSelect:
		return "select"
	case TransitionComplete:
		return "complete"
	case TransitionDequeue:
		return "dequeue"
	case TransitionRelax:
		return "relax"
	default:
		return "unknown"
	}
}

// Options configures the behavior of the Engine.
//
// InfEdgeThreshold – treat edges with cost ≥ this threshold as impassable.
//
//	Must be > 0. Default is +Inf (no walls).
type Options struct {
	InfEdgeThreshold float64 // cost threshold at or above which edges are walls
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// WithInfEdgeThreshold defines a cost threshold above which edges are
// considered non-traversable. Impassable edges are dropped when the incident
// edges of a frontier vertex are normalized, so they are never dequeued.
// Panics with ErrBadInfThreshold if threshold <= 0 or NaN.
func WithInfEdgeThreshold(threshold float64) Option {
	if !(threshold > 0) {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns the Options used when no Option is given.
func DefaultOptions() Options {
	return Options{
		InfEdgeThreshold: math.Inf(1),
	}
}
