// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Determinism:
//   - Edges() and Incident() preserve insertion order.

package core

import "fmt"

// AddEdge appends the edge from→to with the given cost.
//
// Implementation:
//   - Stage 1: Validate both endpoint IDs are non-empty.
//   - Stage 2: Unless WithDanglingEdges was set, register missing endpoints.
//   - Stage 3: Append the edge to the ordered edge list.
//
// Behavior highlights:
//   - Parallel edges, self-loops and negative costs are accepted as-is.
//
// Errors:
//   - ErrEmptyVertexID (wrapped with the offending side) if from or to is "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddEdge(from, to string, cost float64) error {
	if from == "" {
		return fmt.Errorf("core: AddEdge from: %w", ErrEmptyVertexID)
	}
	if to == "" {
		return fmt.Errorf("core: AddEdge to: %w", ErrEmptyVertexID)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.dangling {
		g.addVertexLocked(from)
		g.addVertexLocked(to)
	}
	g.edges = append(g.edges, Edge{From: from, To: to, Cost: cost})

	return nil
}

// Edges returns a copy of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Incident returns the edges that touch id on either side, in insertion order.
// A self-loop appears once.
// Complexity: O(E).
func (g *Graph) Incident(id string) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Edge
	for _, e := range g.edges {
		if e.From == id || e.To == id {
			out = append(out, e)
		}
	}

	return out
}

// EdgeCount returns the number of stored edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
