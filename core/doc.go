// SPDX-License-Identifier: MIT

// Package core provides the in-memory Graph model consumed by the step engine:
// a catalog of uniquely named vertices plus an ordered list of weighted edges.
//
// The Graph G = (V,E):
//
//   - Vertices are opaque, non-empty string identifiers (Vertex.ID).
//   - Edges are stored directed (From→To) in insertion order with a float64 Cost.
//   - Nothing is rejected on policy grounds: self-loops, parallel edges and
//     negative costs are the caller's responsibility.
//   - By default AddEdge registers missing endpoints. WithDanglingEdges() keeps
//     them absent so that loaded documents may reference unknown vertices.
//
// Determinism:
//
//   - Vertices() returns IDs sorted lexicographically ascending. This is the
//     canonical vertex order used for frontier tie-breaking.
//   - Edges() returns edges in insertion order.
//
// Concurrency:
//
//   - A single sync.RWMutex guards both catalogs. Every read method returns a
//     copy, so callers may hold results across later mutations.
//
// Core Methods:
//
//	AddVertex(id string) error                   // O(1), idempotent
//	AddEdge(from, to string, cost float64) error // O(1) amortized
//	HasVertex(id string) bool                    // O(1)
//	Vertices() []string                          // O(V log V)
//	Edges() []Edge                               // O(E)
//	Incident(id string) []Edge                   // O(E)
//	VertexCount() int / EdgeCount() int          // O(1)
//	Clone() *Graph                               // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID – zero-length vertex ID
package core
