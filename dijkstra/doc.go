// SPDX-License-Identifier: MIT

// Package dijkstra implements Dijkstra's shortest-path algorithm as a resumable,
// externally driven state machine.
//
// A conventional Dijkstra runs to completion in one call. Engine instead owns a
// single State snapshot and advances it by exactly one micro-step per Next():
//
//	SelectFrontier ──pick min── Expanding ──dequeue── RelaxEdge
//	      ▲                        │   ▲                  │
//	      └──────complete──────────┘   └──────relax───────┘
//
//	any phase ──(end finalized | no reachable frontier)──► Terminated
//
// Transition order per call (exactly one applies):
//
//  1. Terminated: no-op, Next() keeps returning true.
//  2. Termination check: end is no longer unvisited → Terminated.
//  3. Relax: the current edge is checked and consumed.
//  4. Dequeue: the first queued candidate edge becomes current.
//  5. Complete: no edges left, the current vertex is released.
//  6. Select: the unvisited vertex with minimal finite distance is finalized
//     and its normalized incident edges are queued. When no unvisited vertex
//     has a finite distance the search is exhausted → Terminated.
//
// Determinism:
//
//   - Unvisited is seeded from core.Graph.Vertices() (sorted ascending) and keeps
//     that order as vertices are removed. Frontier ties go to the first vertex in
//     that sequence.
//   - Candidate edges follow the graph's edge insertion order.
//
// Edges are consumed as if undirected: NormalizeEdges reverses every edge whose
// To matches the expanded vertex, keeping its cost. The graph itself is never
// mutated; the engine clones it once at construction and reads incident edges
// from that copy.
//
// Complexity per Next():
//
//   - Select:   O(V + E) (linear frontier scan, linear edge normalization).
//   - Dequeue, Relax, Complete: O(1) amortized.
//   - Termination check: O(V).
//
// Negative costs are not rejected; correctness is only guaranteed for
// non-negative costs.
package dijkstra
