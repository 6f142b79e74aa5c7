// SPDX-License-Identifier: MIT

// Package graphdoc reads and writes graph documents: a vertex list, a directed
// edge list with costs, and an optional start/end pair.
//
// Two encodings are accepted:
//
//	JSON  validated against an embedded JSON Schema before decoding
//	TOML  decoded strictly; unknown keys are rejected
//
// JSON example:
//
//	{"vertices": ["A","B","C"],
//	 "edges": [{"from":"A","to":"B","cost":2}, {"from":"B","to":"C","cost":1}],
//	 "start": "A", "end": "C"}
//
// TOML example:
//
//	vertices = ["A", "B", "C"]
//	start = "A"
//	end = "C"
//
//	[[edges]]
//	from = "A"
//	to = "B"
//	cost = 2.0
//
// Document.Graph keeps edges whose endpoints are not listed in vertices
// (dangling edges); the step engine treats such endpoints as unreachable.
// When vertices is empty, the vertex set is derived from edge endpoints.
package graphdoc
