// SPDX-License-Identifier: MIT
//
// File: normalize.go
// Role: Pure edge normalization used by frontier expansion.

package dijkstra

import "github.com/katalvlaran/pathstep/core"

// NormalizeEdges returns the edges of the list that touch v, each oriented
// away from v, in list order.
//
// Implementation:
//   - Stage 1: Keep an edge with From == v unchanged (self-loops included once).
//   - Stage 2: Reverse an edge with To == v into {From: v, To: original.From},
//     preserving Cost.
//   - Stage 3: Drop every other edge.
//
// The input slice is never modified, which keeps the graph model immutable
// for the whole run.
//
// Complexity: O(E) time, O(deg(v)) space.
func NormalizeEdges(edges []core.Edge, v string) []core.Edge {
	var out []core.Edge
	for _, e := range edges {
		switch {
		case e.From == v:
			out = append(out, e)
		case e.To == v:
			out = append(out, e.Reversed())
		}
	}

	return out
}
