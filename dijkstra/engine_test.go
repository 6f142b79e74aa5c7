// SPDX-License-Identifier: MIT
// Package dijkstra_test verifies the step engine transition contract, the
// testable properties of a run and degenerate-input policy.

package dijkstra_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathstep/builder"
	"github.com/katalvlaran/pathstep/core"
	"github.com/katalvlaran/pathstep/dijkstra"
)

// ------------------------------------------------------------------------
// 1. Reference scenario: exact transition trace and final tables.
// ------------------------------------------------------------------------

func TestEngine_SampleScenario(t *testing.T) {
	e := dijkstra.NewEngine(sampleGraph(t), "A", "D")

	const (
		S = dijkstra.TransitionSelect
		D = dijkstra.TransitionDequeue
		R = dijkstra.TransitionRelax
		C = dijkstra.TransitionComplete
		T = dijkstra.TransitionTerminate
	)
	want := []dijkstra.Transition{
		S, D, R, D, R, C, // A: relax B=2, C=1
		S, D, R, D, R, D, R, C, // C: B unchanged, D=9, E=4
		S, D, R, C, // B: D=4
		S, T, // D selected (ties with E, first in order), then terminate
	}
	assert.Equal(t, want, drive(t, e))

	s := e.State()
	assert.True(t, s.IsDone)
	assert.Equal(t, map[string]float64{"A": 0, "B": 2, "C": 1, "D": 4, "E": 4}, s.Distances)
	assert.Equal(t, map[string]string{"A": "", "B": "A", "C": "A", "D": "B", "E": "C"}, s.Previous)
	assert.Equal(t, []string{"E"}, s.Unvisited)
	assert.Equal(t, []string{"A", "C", "B", "D"}, s.Finalized)

	path, ok := s.PathTo("D")
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B", "D"}, path)
}

func TestEngine_FrontierSelectionNormalizesEdges(t *testing.T) {
	e := dijkstra.NewEngine(sampleGraph(t), "A", "D")
	// Run A's expansion (6 steps) and select C.
	for i := 0; i < 7; i++ {
		e.Next()
	}

	s := e.State()
	assert.Equal(t, "C", s.CurrentVertex)
	assert.Equal(t, dijkstra.PhaseExpanding, s.Phase())
	// A→C is reversed to C→A and dropped (A is finalized); B→C is reversed.
	assert.Equal(t, []core.Edge{
		{From: "C", To: "B", Cost: 3},
		{From: "C", To: "D", Cost: 8},
		{From: "C", To: "E", Cost: 3},
	}, s.EdgesLeft)
	assert.Equal(t, []string{"B", "D", "E"}, s.Unvisited)

	// Dequeue puts the first edge under examination.
	e.Next()
	s = e.State()
	require.NotNil(t, s.CurrentEdge)
	assert.Equal(t, core.Edge{From: "C", To: "B", Cost: 3}, *s.CurrentEdge)
	assert.Equal(t, dijkstra.PhaseRelaxEdge, s.Phase())

	// Relax does not worsen B (1+3 >= 2) and consumes the edge.
	e.Next()
	s = e.State()
	assert.Nil(t, s.CurrentEdge)
	assert.Equal(t, 2.0, s.Distances["B"])
	assert.Equal(t, "A", s.Previous["B"])
}

// ------------------------------------------------------------------------
// 2. Termination and degenerate inputs.
// ------------------------------------------------------------------------

func TestEngine_NextAfterDoneIsNoop(t *testing.T) {
	e := dijkstra.NewEngine(sampleGraph(t), "A", "D")
	drive(t, e)
	before := e.State()

	for i := 0; i < 3; i++ {
		assert.True(t, e.Next())
		assert.Equal(t, dijkstra.TransitionNone, e.Step())
	}
	if diff := cmp.Diff(before, e.State()); diff != "" {
		t.Errorf("state changed after termination (-before +after):\n%s", diff)
	}
}

func TestEngine_DisconnectedEndTerminates(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))

	e := dijkstra.NewEngine(g, "A", "D")
	trace := drive(t, e)
	assert.Equal(t, dijkstra.TransitionTerminate, trace[len(trace)-1])

	s := e.State()
	assert.True(t, math.IsInf(s.Distances["D"], 1))
	_, ok := s.Previous["D"]
	assert.False(t, ok, "unreachable end must have no predecessor")
	_, ok = s.PathTo("D")
	assert.False(t, ok)
	// The unreachable component is never finalized.
	assert.Equal(t, []string{"C", "D"}, s.Unvisited)
}

func TestEngine_DegenerateInputs(t *testing.T) {
	withVertices := func() *core.Graph {
		g := core.NewGraph()
		require.NoError(t, g.AddEdge("A", "B", 1))
		return g
	}

	cases := []struct {
		name       string
		g          *core.Graph
		start, end string
	}{
		{name: "nil graph", g: nil, start: "A", end: "B"},
		{name: "empty graph", g: core.NewGraph(), start: "A", end: "B"},
		{name: "missing start", g: withVertices(), start: "Z", end: "B"},
		{name: "missing end", g: withVertices(), start: "A", end: "Z"},
		{name: "empty start", g: withVertices(), start: "", end: "B"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := dijkstra.NewEngine(tc.g, tc.start, tc.end)
			// Nothing is reachable: the first call terminates.
			assert.Equal(t, dijkstra.TransitionTerminate, e.Step())
			assert.True(t, e.Done())

			s := e.State()
			assert.True(t, math.IsInf(s.Distance(tc.end), 1))
			assert.Equal(t, 0.0, s.Distances[tc.start])
			assert.False(t, s.Visited(tc.start), "start was never selected")
			assert.Nil(t, s.Finalized)
		})
	}
}

func TestEngine_MissingStartNeverVisited(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))

	e := dijkstra.NewEngine(g, "Z", "B")
	drive(t, e)

	s := e.State()
	assert.Equal(t, []string{"A", "B"}, s.Unvisited)
	for _, v := range []string{"Z", "A", "B"} {
		assert.False(t, s.Visited(v), v)
	}
}

func TestEngine_StartEqualsEnd(t *testing.T) {
	e := dijkstra.NewEngine(sampleGraph(t), "A", "A")
	assert.Equal(t, []dijkstra.Transition{
		dijkstra.TransitionSelect,
		dijkstra.TransitionTerminate,
	}, drive(t, e))
	assert.Equal(t, 0.0, e.State().Distances["A"])
}

func TestEngine_IsolatedStartCompletesImmediately(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))

	e := dijkstra.NewEngine(g, "A", "B")
	assert.Equal(t, []dijkstra.Transition{
		dijkstra.TransitionSelect,    // A, no edges
		dijkstra.TransitionComplete,  // empty queue falls through
		dijkstra.TransitionTerminate, // B is unreachable
	}, drive(t, e))
}

func TestEngine_DanglingEdgesTolerated(t *testing.T) {
	g := core.NewGraph(core.WithDanglingEdges())
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))
	require.NoError(t, g.AddEdge("A", "X", 1)) // X is not a vertex
	require.NoError(t, g.AddEdge("A", "B", 4))

	e := dijkstra.NewEngine(g, "A", "B")
	drive(t, e)

	s := e.State()
	assert.Equal(t, 4.0, s.Distances["B"])
	_, ok := s.Distances["X"]
	assert.False(t, ok, "dangling endpoint never enters the tables")
}

func TestEngine_NegativeCostsAccepted(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 5))
	require.NoError(t, g.AddEdge("B", "C", -2))

	e := dijkstra.NewEngine(g, "A", "C")
	drive(t, e)
	assert.Equal(t, 3.0, e.State().Distances["C"])
}

// ------------------------------------------------------------------------
// 3. Options.
// ------------------------------------------------------------------------

func TestEngine_InfEdgeThreshold(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 100))
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("C", "B", 200))
	require.NoError(t, g.AddEdge("C", "D", 1))
	require.NoError(t, g.AddEdge("D", "B", 1))

	e := dijkstra.NewEngine(g, "A", "B", dijkstra.WithInfEdgeThreshold(100))
	drive(t, e)

	s := e.State()
	assert.Equal(t, 3.0, s.Distances["B"])
	path, ok := s.PathTo("B")
	require.True(t, ok)
	assert.Equal(t, []string{"A", "C", "D", "B"}, path)

	// Everything walled off: B is unreachable.
	e = dijkstra.NewEngine(g, "A", "B", dijkstra.WithInfEdgeThreshold(0.5))
	drive(t, e)
	assert.True(t, math.IsInf(e.State().Distances["B"], 1))
}

func TestEngine_InfEdgeThresholdPanics(t *testing.T) {
	for _, bad := range []float64{0, -1, math.NaN()} {
		assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() {
			dijkstra.WithInfEdgeThreshold(bad)
		}, "threshold %v", bad)
	}
}

// ------------------------------------------------------------------------
// 4. Run properties over reproducible random graphs.
// ------------------------------------------------------------------------

func TestEngine_RunProperties(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		g := randomGraph(t, seed, 8, 12)
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			assertRunProperties(t, g, "v0", "v7")
		})
	}
}

func TestEngine_RunPropertiesOnTopologies(t *testing.T) {
	cases := []struct {
		name       string
		bopts      []builder.BuilderOption
		cons       builder.Constructor
		start, end string
	}{
		{"path5", nil, builder.Path(5), "0", "4"},
		{"cycle7", []builder.BuilderOption{builder.WithExcelColumnIDs(), builder.WithCost(builder.CycleCosts(2, 7))},
			builder.Cycle(7), "A", "D"},
		{"star5", []builder.BuilderOption{builder.WithCost(builder.CycleCosts(4, 1, 3))}, builder.Star(5), "1", "4"},
		{"grid4x4", []builder.BuilderOption{builder.WithCost(builder.ConstantCost(1))}, builder.Grid(4, 4), "0,0", "3,3"},
		{"complete6", []builder.BuilderOption{builder.WithSymbolIDs(), builder.WithCost(builder.CycleCosts(3, 1, 4, 1, 5, 9))},
			builder.Complete(6), "A", "F"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.bopts, tc.cons)
			require.NoError(t, err)
			assertRunProperties(t, g, tc.start, tc.end)
		})
	}
}

// assertRunProperties drives a fresh engine over g and checks monotonicity,
// finalize-once and that finalized distances match the reference.
func assertRunProperties(t *testing.T, g *core.Graph, start, end string) {
	t.Helper()
	e := dijkstra.NewEngine(g, start, end)
	prev := e.State()
	finalized := map[string]bool{}
	checkInvariants(t, prev, start)

	for i := 0; !e.Done(); i++ {
		require.Less(t, i, maxSteps)
		e.Next()
		cur := e.State()
		checkInvariants(t, cur, start)

		// Monotonicity: distances never worsen.
		for v, d := range prev.Distances {
			require.LessOrEqual(t, cur.Distances[v], d, "distance of %s worsened", v)
		}
		// Finalize-once: a vertex that left Unvisited never re-enters it.
		for _, v := range cur.Unvisited {
			require.False(t, finalized[v], "%s re-entered unvisited", v)
		}
		for _, v := range prev.Unvisited {
			if !cur.Visited(v) {
				continue
			}
			finalized[v] = true
		}
		prev = cur
	}

	// Termination: finalized distances are true shortest distances.
	ref := referenceDistances(g, start)
	s := e.State()
	require.Len(t, s.Finalized, len(finalized))
	for v := range finalized {
		require.Equal(t, ref[v], s.Distances[v], "finalized %s", v)
	}
	if want, ok := ref[end]; ok {
		assert.Equal(t, want, s.Distances[end])
		path, ok := s.PathTo(end)
		require.True(t, ok)
		assert.Equal(t, start, path[0])
		assert.Equal(t, end, path[len(path)-1])
	} else {
		assert.True(t, math.IsInf(s.Distances[end], 1))
	}
}

func TestEngine_StepDeterminism(t *testing.T) {
	g := randomGraph(t, 42, 10, 20)
	a := dijkstra.NewEngine(g, "v0", "v9")
	b := dijkstra.NewEngine(g, "v0", "v9")

	for i := 0; i < maxSteps && !(a.Done() && b.Done()); i++ {
		require.Equal(t, a.Step(), b.Step())
		if diff := cmp.Diff(a.State(), b.State()); diff != "" {
			t.Fatalf("step %d diverged (-a +b):\n%s", i, diff)
		}
	}
}

func TestEngine_TieBreakStability(t *testing.T) {
	// Vertices are inserted in reverse; canonical order is still A, B, C, D.
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("C", "D", 5))
	require.NoError(t, g.AddEdge("B", "D", 5))
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("A", "B", 1))

	for run := 0; run < 5; run++ {
		e := dijkstra.NewEngine(g, "A", "D")
		var selected []string
		for !e.Done() {
			if e.Step() == dijkstra.TransitionSelect {
				selected = append(selected, e.State().CurrentVertex)
			}
		}
		// B and C tie at distance 1; B comes first in canonical order.
		assert.Equal(t, []string{"A", "B", "C", "D"}, selected)
		assert.Equal(t, "B", e.State().Previous["D"])
	}
}

func TestEngine_TieBreakOnUnitTopologies(t *testing.T) {
	unit := []builder.BuilderOption{builder.WithCost(builder.ConstantCost(1))}
	cases := []struct {
		name       string
		bopts      []builder.BuilderOption
		cons       builder.Constructor
		start, end string
	}{
		{"grid4x4", unit, builder.Grid(4, 4), "0,0", "3,3"},
		{"complete6", append([]builder.BuilderOption{builder.WithSymbolIDs()}, unit...), builder.Complete(6), "A", "F"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.bopts, tc.cons)
			require.NoError(t, err)

			var first []string
			for run := 0; run < 3; run++ {
				e := dijkstra.NewEngine(g, tc.start, tc.end)
				drive(t, e)
				s := e.State()

				// Equal distances are finalized in canonical vertex order.
				for i := 1; i < len(s.Finalized); i++ {
					a, b := s.Finalized[i-1], s.Finalized[i]
					require.LessOrEqual(t, s.Distances[a], s.Distances[b])
					if s.Distances[a] == s.Distances[b] {
						require.Less(t, a, b, "tie between %s and %s", a, b)
					}
				}
				if run == 0 {
					first = s.Finalized
					continue
				}
				assert.Equal(t, first, s.Finalized, "run %d", run)
			}
		})
	}

	g, err := builder.BuildGraph(nil, append([]builder.BuilderOption{builder.WithSymbolIDs()}, unit...), builder.Complete(6))
	require.NoError(t, err)
	e := dijkstra.NewEngine(g, "A", "F")
	drive(t, e)
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, e.State().Finalized)
	assert.Equal(t, "A", e.State().Previous["F"])
}

func TestEngine_GraphMutationAfterConstruction(t *testing.T) {
	g := sampleGraph(t)
	e := dijkstra.NewEngine(g, "A", "D")
	require.NoError(t, g.AddEdge("A", "D", 1))

	drive(t, e)
	assert.Equal(t, 4.0, e.State().Distances["D"], "run sees the graph as of construction")
}

func TestEngine_RestoreIsolation(t *testing.T) {
	e := dijkstra.NewEngine(sampleGraph(t), "A", "D")
	e.Next()
	saved := e.State()

	drive(t, e)
	e.Restore(saved)
	if diff := cmp.Diff(saved, e.State()); diff != "" {
		t.Fatalf("restore mismatch (-want +got):\n%s", diff)
	}

	// Stepping after Restore must not write through to the caller's copy.
	e.Next()
	e.Next()
	assert.True(t, math.IsInf(saved.Distances["B"], 1))
	assert.Equal(t, 2.0, e.State().Distances["B"])
}

func TestEngine_Accessors(t *testing.T) {
	g := sampleGraph(t)
	e := dijkstra.NewEngine(g, "A", "D")
	assert.Equal(t, "A", e.Start())
	assert.Equal(t, "D", e.End())
	assert.NotSame(t, g, e.Graph())
	assert.Equal(t, g.Edges(), e.Graph().Edges())
	assert.Equal(t, g.Vertices(), e.Graph().Vertices())

	// The returned graph is a copy; mutating it does not change the run.
	require.NoError(t, e.Graph().AddEdge("A", "D", 1))
	drive(t, e)
	assert.Equal(t, 4.0, e.State().Distances["D"])
	assert.Equal(t, dijkstra.PhaseSelectFrontier, e.Phase())
	assert.True(t, math.IsInf(e.Options().InfEdgeThreshold, 1))
}
