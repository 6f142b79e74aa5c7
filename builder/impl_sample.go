// SPDX-License-Identifier: MIT
//
// impl_sample.go - the fixed reference scenario.
//
//	A→B(2), A→C(1), B→C(3), B→D(2), C→D(8), C→E(3)
//
// From A the shortest distances are A=0, B=2, C=1, D=4 (A→B→D), E=4 (A→C→E).
// IDs and costs are fixed: cfg.idFn and cfg.costFn are ignored.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathstep/core"
)

const methodSample = "Sample"

// sampleEdges is the edge list of the reference scenario, in emission order.
var sampleEdges = []core.Edge{
	{From: "A", To: "B", Cost: 2},
	{From: "A", To: "C", Cost: 1},
	{From: "B", To: "C", Cost: 3},
	{From: "B", To: "D", Cost: 2},
	{From: "C", To: "D", Cost: 8},
	{From: "C", To: "E", Cost: 3},
}

// Sample returns a Constructor that adds the five-vertex reference scenario.
func Sample() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, e := range sampleEdges {
			if err := g.AddEdge(e.From, e.To, e.Cost); err != nil {
				return fmt.Errorf("%s: AddEdge(%s): %w", methodSample, e, err)
			}
		}

		return nil
	}
}
