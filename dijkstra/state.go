// SPDX-License-Identifier: MIT
//
// File: state.go
// Role: State snapshot, deep copy, derived queries and initialization.

package dijkstra

import (
	"math"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/pathstep/core"
)

// State is one snapshot of the search.
//
// Invariants:
//   - CurrentEdge != nil only while CurrentVertex != "".
//   - len(EdgesLeft) > 0 only while CurrentVertex != "".
//   - Distances[start] == 0; distances never increase over a run.
//   - Previous[start] == "" (the none-sentinel) for the whole run.
//   - A vertex that left Unvisited never re-enters it.
//   - Finalized lists selected vertices in selection order; a vertex appears
//     there exactly when it left Unvisited.
//
// Empty Unvisited, Finalized and EdgesLeft are kept nil so that snapshots
// compare equal after an encode/decode round-trip.
type State struct {
	Unvisited     []string           // vertices not yet finalized, canonical order
	Finalized     []string           // selected vertices, selection order
	Distances     map[string]float64 // tentative distances; +Inf when unknown
	Previous      map[string]string  // tree parent; "" for start
	CurrentVertex string             // frontier vertex being expanded; "" for none
	CurrentEdge   *core.Edge         // candidate edge under examination; nil for none
	EdgesLeft     []core.Edge        // normalized candidate edges still queued
	IsDone        bool               // search terminated
}

// Initialize builds the initial snapshot for a search from start over g.
//
// Implementation:
//   - Stage 1: Unvisited = g.Vertices() (sorted ascending).
//   - Stage 2: Distances = +Inf for every vertex, then start = 0.
//   - Stage 3: Previous = {start: ""}.
//
// A start missing from g still gets distance 0, but it is never selected, so
// nothing becomes reachable and the first frontier selection terminates.
// A nil g is treated as an empty graph.
//
// Complexity: O(V log V).
func Initialize(g *core.Graph, start string) State {
	var ids []string
	if g != nil {
		ids = g.Vertices()
	}

	dist := make(map[string]float64, len(ids)+1)
	for _, id := range ids {
		dist[id] = math.Inf(1)
	}
	dist[start] = 0

	if len(ids) == 0 {
		ids = nil
	}

	return State{
		Unvisited: ids,
		Distances: dist,
		Previous:  map[string]string{start: ""},
	}
}

// Clone returns a deep copy of s sharing no mutable storage with it.
// Complexity: O(V + E).
func (s State) Clone() State {
	out := State{
		Unvisited:     slices.Clone(s.Unvisited),
		Finalized:     slices.Clone(s.Finalized),
		Distances:     maps.Clone(s.Distances),
		Previous:      maps.Clone(s.Previous),
		CurrentVertex: s.CurrentVertex,
		EdgesLeft:     slices.Clone(s.EdgesLeft),
		IsDone:        s.IsDone,
	}
	if s.CurrentEdge != nil {
		e := *s.CurrentEdge
		out.CurrentEdge = &e
	}

	return out
}

// Phase derives the live phase from the discriminants.
func (s State) Phase() Phase {
	switch {
	case s.IsDone:
		return PhaseTerminated
	case s.CurrentEdge != nil:
		return PhaseRelaxEdge
	case s.CurrentVertex != "":
		return PhaseExpanding
	default:
		return PhaseSelectFrontier
	}
}

// Distance returns the tentative distance of v, +Inf when v has no entry.
func (s State) Distance(v string) float64 {
	d, ok := s.Distances[v]
	if !ok {
		return math.Inf(1)
	}

	return d
}

// Visited reports whether v has been selected as a frontier vertex, which
// finalizes its distance. A start vertex missing from the graph is never
// visited even though it carries distance 0.
func (s State) Visited(v string) bool {
	return slices.Contains(s.Finalized, v)
}

// PathTo reconstructs the predecessor chain from the start vertex to v.
//
// Returns (nil, false) if v has no finite distance or the chain is broken.
// Before termination the path is the best one known so far.
//
// Complexity: O(len(path)).
func (s State) PathTo(v string) ([]string, bool) {
	if math.IsInf(s.Distance(v), 1) {
		return nil, false
	}

	var path []string
	cur := v
	// A well-formed tree has at most len(Previous) links; the bound guards
	// against cycles in hand-built snapshots.
	for i := 0; i <= len(s.Previous); i++ {
		path = append(path, cur)
		parent, ok := s.Previous[cur]
		if !ok {
			return nil, false
		}
		if parent == "" {
			for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
				path[l], path[r] = path[r], path[l]
			}
			return path, true
		}
		cur = parent
	}

	return nil, false
}
