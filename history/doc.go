// SPDX-License-Identifier: MIT

// Package history wraps a dijkstra.Engine with an append-only snapshot log so
// that every forward micro-step can be undone exactly.
//
// A Session archives the initial snapshot as the bottom of its Log and one
// more snapshot after every step that changed the state:
//
//	log: [s0, s1, …, sk]   current state == sk
//	Next  → engine steps, sk+1 is pushed
//	Prev  → sk is dropped, sk-1 is restored (no-op when only s0 is left)
//	Reset → engine and log are rebuilt for a new (graph, start, end); not undoable
//
// Entries are encoded to JSON and compressed with snappy. An archived entry is
// an immutable byte slice, so a later step can never mutate a state that undo
// will return to. Unreachable distances are stored as null and come back as
// +Inf when an entry is decoded.
//
// Run is the "run to completion" convenience: repeated Next calls separated by
// a caller-chosen delay, stoppable through its context between any two steps.
//
// A Session is not safe for concurrent use.
package history
