// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, GraphOption, sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")
)

// Vertex represents a node in the graph.
// ID uniquely identifies this Vertex within its Graph.
type Vertex struct {
	ID string `json:"id"`
}

// Edge is a weighted connection From→To.
//
// Edges are values: copying an Edge never aliases graph storage.
type Edge struct {
	// From is the source vertex ID.
	From string `json:"from"`

	// To is the destination vertex ID.
	To string `json:"to"`

	// Cost is the traversal cost. Expected non-negative; not validated.
	Cost float64 `json:"cost"`
}

// Reversed returns the edge oriented To→From with the same Cost.
func (e Edge) Reversed() Edge {
	return Edge{From: e.To, To: e.From, Cost: e.Cost}
}

// String renders the edge as "A→B(2)".
func (e Edge) String() string {
	return fmt.Sprintf("%s→%s(%g)", e.From, e.To, e.Cost)
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDanglingEdges stops AddEdge from registering missing endpoints.
// Edges may then reference vertices the graph does not contain.
func WithDanglingEdges() GraphOption {
	return func(g *Graph) { g.dangling = true }
}

// Graph is the in-memory graph data structure.
//
// mu guards vertices and edges. edges keeps insertion order, which is the
// order the step engine examines candidate edges in.
type Graph struct {
	mu sync.RWMutex

	dangling bool // AddEdge leaves missing endpoints unregistered

	vertices map[string]*Vertex // vertex ID → Vertex
	edges    []Edge             // insertion-ordered edge list
}

// NewGraph creates an empty Graph and applies opts in order.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
