// SPDX-License-Identifier: MIT

// Package pathstep is an in-memory, step-by-step shortest-path engine built
// for visualization: every call advances Dijkstra's algorithm by exactly one
// micro-step and exposes the full intermediate state.
//
// Packages:
//
//	core/      Graph, Vertex, Edge and thread-safe primitives
//	builder/   deterministic graph constructors (path, cycle, star, grid, complete, sample)
//	dijkstra/  State snapshot, Initialize and the one-micro-step Engine
//	history/   compressed snapshot log and the undoable Session
//	graphdoc/  JSON (schema-validated) and TOML graph documents
//	cmd/pathstep  terminal player and HTTP/JSON server
//
// One step of the engine is one of:
//
//	select    pick the unvisited vertex with the smallest finite distance
//	dequeue   take the next incident edge of the current vertex
//	relax     shorten the far endpoint's distance through the current edge
//	complete  the current vertex has no edges left
//	terminate the end vertex is visited or nothing finite remains
//
// Quick example:
//
//	    A──2──B
//	    │     │
//	    1     2
//	    │     │
//	    C──8──D
//
//	g := core.NewGraph()
//	_ = g.AddEdge("A", "B", 2)
//	_ = g.AddEdge("A", "C", 1)
//	_ = g.AddEdge("B", "D", 2)
//	_ = g.AddEdge("C", "D", 8)
//
//	s, _ := history.NewSession(g, "A", "D")
//	for done := false; !done; {
//		done, _ = s.Next()
//	}
//	path, _ := s.State().PathTo("D") // [A B D]
//	_ = s.Prev()                     // undo the last micro-step
package pathstep
