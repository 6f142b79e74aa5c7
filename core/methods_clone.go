// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning graph instances.

package core

// Clone returns a deep copy of g: same options, vertices and edge order.
// Mutating the clone never affects g.
//
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		dangling: g.dangling,
		vertices: make(map[string]*Vertex, len(g.vertices)),
		edges:    make([]Edge, len(g.edges)),
	}
	for id := range g.vertices {
		c.vertices[id] = &Vertex{ID: id}
	}
	copy(c.edges, g.edges)

	return c
}
