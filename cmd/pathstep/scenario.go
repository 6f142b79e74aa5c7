// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathstep/builder"
	"github.com/katalvlaran/pathstep/core"
	"github.com/katalvlaran/pathstep/graphdoc"
)

// Defaults for the built-in sample scenario.
const (
	sampleStart = "A"
	sampleEnd   = "D"
)

// errBadTopology is returned for -topology values outside the accepted forms.
var errBadTopology = errors.New("bad topology")

// topologyUsage documents the accepted -topology values.
const topologyUsage = "generated graph: sample, path:N, cycle:N, star:N, complete:N or grid:RxC"

// scenario is one (graph, start, end) triple ready for a session.
type scenario struct {
	graph  *core.Graph
	start  string
	end    string
	source string
}

// scenarioSource selects where the graph of a scenario comes from.
type scenarioSource struct {
	path     string // graph document; exclusive with topology
	topology string // generated topology, see topologyUsage
	costs    string // comma-separated edge costs cycled over generated edges
}

// loadScenario resolves the graph from src (the sample when src is empty).
// Non-empty start and end override the scenario's own pair.
func loadScenario(src scenarioSource, start, end string) (scenario, error) {
	var (
		sc  scenario
		err error
	)

	switch {
	case src.path != "" && src.topology != "":
		return scenario{}, errors.New("-graph and -topology are mutually exclusive")
	case src.path != "":
		sc, err = loadDocument(src.path)
	default:
		topology := src.topology
		if topology == "" {
			topology = "sample"
		}
		sc, err = generate(topology, src.costs)
	}
	if err != nil {
		return scenario{}, err
	}

	if start != "" {
		sc.start = start
	}
	if end != "" {
		sc.end = end
	}

	return sc, nil
}

func loadDocument(path string) (scenario, error) {
	doc, err := graphdoc.Load(path)
	if err != nil {
		return scenario{}, err
	}
	g, err := doc.Graph()
	if err != nil {
		return scenario{}, fmt.Errorf("%s: %w", path, err)
	}

	return scenario{graph: g, start: doc.Start, end: doc.End, source: path}, nil
}

// generate builds a topology with letter IDs (grid cells are "r,c") and
// picks a start/end pair that makes the search walk the whole shape.
//
// Implementation:
//   - Stage 1: Split "kind:size" and parse the size.
//   - Stage 2: Resolve the cost sequence (unit costs when empty).
//   - Stage 3: Build via builder.BuildGraph and derive the default endpoints.
func generate(topology, costs string) (scenario, error) {
	kind, size, _ := strings.Cut(topology, ":")
	if kind == "sample" {
		if size != "" || costs != "" {
			return scenario{}, fmt.Errorf("%w: sample takes no size or costs", errBadTopology)
		}
		g, err := builder.BuildGraph(nil, nil, builder.Sample())
		if err != nil {
			return scenario{}, fmt.Errorf("sample scenario: %w", err)
		}
		return scenario{graph: g, start: sampleStart, end: sampleEnd, source: "sample"}, nil
	}

	costFn, err := parseCosts(costs)
	if err != nil {
		return scenario{}, err
	}
	id := builder.ExcelColumnIDFn
	bopts := []builder.BuilderOption{builder.WithExcelColumnIDs(), builder.WithCost(costFn)}

	var (
		cons       builder.Constructor
		start, end string
	)
	if kind == "grid" {
		rs, cs, ok := strings.Cut(size, "x")
		rows, rerr := strconv.Atoi(rs)
		cols, cerr := strconv.Atoi(cs)
		if !ok || rerr != nil || cerr != nil || rows < 1 || cols < 1 {
			return scenario{}, fmt.Errorf("%w: %q, want grid:RxC", errBadTopology, topology)
		}
		cons = builder.Grid(rows, cols)
		start, end = "0,0", fmt.Sprintf("%d,%d", rows-1, cols-1)
	} else {
		n, err := strconv.Atoi(size)
		if err != nil || n < 1 {
			return scenario{}, fmt.Errorf("%w: %q, want %s:N", errBadTopology, topology, kind)
		}
		switch kind {
		case "path":
			cons, start, end = builder.Path(n), id(0), id(n-1)
		case "cycle":
			cons, start, end = builder.Cycle(n), id(0), id(n/2)
		case "star":
			cons, start, end = builder.Star(n), id(n-1), id(1)
		case "complete":
			cons, start, end = builder.Complete(n), id(0), id(n-1)
		default:
			return scenario{}, fmt.Errorf("%w: %q (%s)", errBadTopology, topology, topologyUsage)
		}
	}

	g, err := builder.BuildGraph(nil, bopts, cons)
	if err != nil {
		return scenario{}, fmt.Errorf("topology %s: %w", topology, err)
	}

	return scenario{graph: g, start: start, end: end, source: topology}, nil
}

// parseCosts turns "2,7,1" into a cycling CostFn; empty means unit costs.
func parseCosts(s string) (builder.CostFn, error) {
	if strings.TrimSpace(s) == "" {
		return builder.ConstantCost(1), nil
	}

	parts := strings.Split(s, ",")
	costs := make([]float64, len(parts))
	for i, p := range parts {
		c, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad cost %q: %w", p, err)
		}
		costs[i] = c
	}

	return builder.CycleCosts(costs...), nil
}
