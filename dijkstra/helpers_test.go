// SPDX-License-Identifier: MIT
package dijkstra_test

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathstep/core"
	"github.com/katalvlaran/pathstep/dijkstra"
)

// maxSteps bounds every drive loop so a regression shows up as a failure
// instead of a hanging test.
const maxSteps = 100000

// sampleGraph builds the reference scenario:
//
//	A→B(2), A→C(1), B→C(3), B→D(2), C→D(8), C→E(3)
func sampleGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range []core.Edge{
		{From: "A", To: "B", Cost: 2},
		{From: "A", To: "C", Cost: 1},
		{From: "B", To: "C", Cost: 3},
		{From: "B", To: "D", Cost: 2},
		{From: "C", To: "D", Cost: 8},
		{From: "C", To: "E", Cost: 3},
	} {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Cost))
	}

	return g
}

// randomGraph builds a reproducible graph with n vertices "v0".."v(n-1)" and
// m random edges with integer costs in [0, 9].
func randomGraph(t *testing.T, seed int64, n, m int) *core.Graph {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex("v"+strconv.Itoa(i)))
	}
	for i := 0; i < m; i++ {
		u := "v" + strconv.Itoa(r.Intn(n))
		v := "v" + strconv.Itoa(r.Intn(n))
		require.NoError(t, g.AddEdge(u, v, float64(r.Intn(10))))
	}

	return g
}

// drive steps e to termination and returns every transition taken.
func drive(t *testing.T, e *dijkstra.Engine) []dijkstra.Transition {
	t.Helper()
	var out []dijkstra.Transition
	for i := 0; i < maxSteps; i++ {
		tr := e.Step()
		out = append(out, tr)
		if e.Done() {
			return out
		}
	}
	t.Fatalf("engine did not terminate within %d steps", maxSteps)

	return nil
}

// referenceDistances computes undirected shortest distances from start with a
// plain Bellman-Ford sweep. Unreachable vertices are absent.
func referenceDistances(g *core.Graph, start string) map[string]float64 {
	dist := map[string]float64{}
	if !g.HasVertex(start) {
		return dist
	}
	dist[start] = 0
	edges := g.Edges()
	for i := 0; i < g.VertexCount(); i++ {
		for _, e := range edges {
			for _, d := range []core.Edge{e, e.Reversed()} {
				du, ok := dist[d.From]
				if !ok {
					continue
				}
				if dv, ok := dist[d.To]; !ok || du+d.Cost < dv {
					dist[d.To] = du + d.Cost
				}
			}
		}
	}

	return dist
}

// checkInvariants asserts the structural snapshot invariants.
func checkInvariants(t *testing.T, s dijkstra.State, start string) {
	t.Helper()
	if s.CurrentVertex == "" {
		require.Nil(t, s.CurrentEdge, "current edge without current vertex")
		require.Empty(t, s.EdgesLeft, "queued edges without current vertex")
	}
	require.Equal(t, 0.0, s.Distances[start], "start distance")
	parent, ok := s.Previous[start]
	require.True(t, ok, "start predecessor entry")
	require.Equal(t, "", parent, "start predecessor sentinel")
	if s.IsDone {
		require.Equal(t, dijkstra.PhaseTerminated, s.Phase())
	}
	for _, d := range s.Distances {
		require.False(t, math.IsNaN(d))
		require.GreaterOrEqual(t, d, 0.0)
	}
}
