// SPDX-License-Identifier: MIT

// Package builder provides deterministic, functional-options graph fixtures
// for driving and testing the step engine.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Constructor: a closure that mutates a fresh core.Graph.
//     – BuildGraph:  creates the graph, resolves options, applies constructors in order.
//   - Topologies:
//     – Path(n), Cycle(n), Star(n), Grid(rows, cols), Complete(n).
//     – Sample(): the fixed five-vertex reference scenario (A..E).
//   - Vertex-ID schemes (IDFn):
//     – DefaultIDFn:      decimal strings ("0","1",…).
//     – SymbolIDFn:       single letters ("A".."Z").
//     – ExcelColumnIDFn:  Excel-style columns ("A","Z","AA",…).
//   - Edge costs (CostFn), indexed by edge emission order:
//     – ConstantCost(c):  every edge costs c.
//     – CycleCosts(c…):   costs repeat the given sequence.
//
// Guarantees:
//
//   - Determinism: same constructors, options and order ⇒ identical graphs,
//     including edge order (which is the order the engine examines edges in).
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime parameter errors are sentinels wrapped with the constructor name.
package builder
