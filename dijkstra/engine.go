// SPDX-License-Identifier: MIT
//
// File: engine.go
// Role: The step engine: one micro-step of Dijkstra per Next()/Step() call.

package dijkstra

import (
	"math"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/pathstep/core"
)

// Engine advances a single State by one micro-step per call.
//
// An Engine is not safe for concurrent use; it is driven by one caller at a
// time and read between steps.
type Engine struct {
	g       *core.Graph // private copy of the input graph, taken at construction
	start   string      // source vertex ID
	end     string      // target vertex ID
	options Options     // resolved options
	state   State       // current snapshot
}

// NewEngine constructs an Engine positioned at the initial snapshot for the
// (g, start, end) triple.
//
// Implementation:
//   - Stage 1: Resolve options over DefaultOptions().
//   - Stage 2: Clone the graph once so later mutations of g cannot leak into
//     this run.
//   - Stage 3: Build the initial State via Initialize.
//
// A nil g is treated as an empty graph. Missing start or end vertices are
// not errors: the search simply terminates with end unreachable.
//
// Complexity: O(V log V + E).
func NewEngine(g *core.Graph, start, end string, opts ...Option) *Engine {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		g = core.NewGraph()
	}

	return &Engine{
		g:       g.Clone(),
		start:   start,
		end:     end,
		options: cfg,
		state:   Initialize(g, start),
	}
}

// Next advances the machine by exactly one micro-step and reports whether the
// search is now terminated. Once terminated, further calls are no-ops that
// keep returning true.
func (e *Engine) Next() bool {
	e.Step()

	return e.state.IsDone
}

// Step advances the machine by exactly one micro-step and reports which
// transition was taken. See the package documentation for the order.
func (e *Engine) Step() Transition {
	s := &e.state

	// 1) Terminated is absorbing.
	if s.IsDone {
		return TransitionNone
	}

	// 2) Termination check. end leaves Unvisited only by being selected as a
	//    frontier vertex, at which point its distance is final. An empty
	//    Unvisited never contains end, so exhaustion is covered too.
	if !slices.Contains(s.Unvisited, e.end) {
		e.terminate()
		return TransitionTerminate
	}

	// 3) Relax the edge under examination.
	if s.CurrentEdge != nil {
		e.relax()
		return TransitionRelax
	}

	if s.CurrentVertex != "" {
		// 4) Dequeue the next candidate edge.
		if len(s.EdgesLeft) > 0 {
			edge := s.EdgesLeft[0]
			s.CurrentEdge = &edge
			s.EdgesLeft = s.EdgesLeft[1:]
			if len(s.EdgesLeft) == 0 {
				s.EdgesLeft = nil
			}
			return TransitionDequeue
		}

		// 5) Expansion complete; back to frontier selection.
		s.CurrentVertex = ""
		return TransitionComplete
	}

	// 6) Frontier selection. No finite candidate means every vertex reachable
	//    from start is already finalized and end is not among them.
	v, ok := e.frontier()
	if !ok {
		e.terminate()
		return TransitionTerminate
	}
	e.expand(v)

	return TransitionSelect
}

// frontier returns the first vertex in Unvisited order with minimal finite
// distance. Strict comparison keeps the earliest vertex on ties.
func (e *Engine) frontier() (string, bool) {
	var (
		best  string
		bestD = math.Inf(1)
		found bool
	)
	for _, v := range e.state.Unvisited {
		if d := e.state.Distance(v); d < bestD {
			best, bestD, found = v, d, true
		}
	}

	return best, found
}

// expand finalizes v and queues its normalized candidate edges.
//
// Implementation:
//   - Stage 1: Remove v from Unvisited (order of the rest is preserved) and
//     append it to Finalized.
//   - Stage 2: Normalize the edges incident to v in the run's graph.
//   - Stage 3: Keep edges whose far endpoint is still unvisited and whose cost
//     is below InfEdgeThreshold. Self-loops drop out because v was removed first.
func (e *Engine) expand(v string) {
	s := &e.state

	idx := slices.Index(s.Unvisited, v)
	s.Unvisited = slices.Delete(s.Unvisited, idx, idx+1)
	if len(s.Unvisited) == 0 {
		s.Unvisited = nil
	}
	s.Finalized = append(s.Finalized, v)

	var queue []core.Edge
	for _, edge := range NormalizeEdges(e.g.Incident(v), v) {
		if edge.Cost >= e.options.InfEdgeThreshold {
			continue
		}
		if !slices.Contains(s.Unvisited, edge.To) {
			continue
		}
		queue = append(queue, edge)
	}

	s.CurrentVertex = v
	s.EdgesLeft = queue
}

// relax checks the current edge and consumes it.
// Missing distance entries count as +Inf on both ends.
func (e *Engine) relax() {
	s := &e.state
	edge := *s.CurrentEdge

	if c := s.Distance(edge.From) + edge.Cost; c < s.Distance(edge.To) {
		s.Distances[edge.To] = c
		s.Previous[edge.To] = edge.From
	}
	s.CurrentEdge = nil
}

// terminate moves the machine into PhaseTerminated and clears the expansion
// fields so the snapshot invariants hold.
func (e *Engine) terminate() {
	s := &e.state
	s.IsDone = true
	s.CurrentVertex = ""
	s.CurrentEdge = nil
	s.EdgesLeft = nil
}

// Done reports whether the search has terminated.
func (e *Engine) Done() bool { return e.state.IsDone }

// Phase returns the live phase of the current snapshot.
func (e *Engine) Phase() Phase { return e.state.Phase() }

// State returns a deep copy of the current snapshot.
func (e *Engine) State() State { return e.state.Clone() }

// Restore replaces the current snapshot with a deep copy of s.
// The caller is responsible for s belonging to this engine's run.
func (e *Engine) Restore(s State) { e.state = s.Clone() }

// Start returns the source vertex ID.
func (e *Engine) Start() string { return e.start }

// End returns the target vertex ID.
func (e *Engine) End() string { return e.end }

// Graph returns a copy of the graph this run operates on, as it was when the
// engine was constructed.
func (e *Engine) Graph() *core.Graph { return e.g.Clone() }

// Options returns the resolved options.
func (e *Engine) Options() Options { return e.options }
