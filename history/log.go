// SPDX-License-Identifier: MIT
//
// File: log.go
// Role: Append-only stack of encoded snapshots.

package history

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang/snappy"

	"github.com/katalvlaran/pathstep/dijkstra"
)

// Sentinel errors for history operations.
var (
	// ErrEmptyLog indicates a read or pop on a log with no entries.
	ErrEmptyLog = errors.New("history: log is empty")

	// ErrIndexOutOfRange indicates At was called with an index outside the log.
	ErrIndexOutOfRange = errors.New("history: index out of range")

	// ErrCorruptEntry indicates an archived entry could not be decoded.
	ErrCorruptEntry = errors.New("history: corrupt snapshot entry")
)

// Log is an append-only stack of snapshots. Each entry holds the snappy
// compressed JSON encoding of one dijkstra.State.
type Log struct {
	entries [][]byte
	size    int // total compressed bytes held
}

// NewLog returns an empty Log.
func NewLog() *Log {
	return &Log{}
}

// Push encodes s and appends it as the newest entry.
// Complexity: O(V + E) for the encoding.
func (l *Log) Push(s dijkstra.State) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("history: push: %w", err)
	}
	entry := snappy.Encode(nil, raw)
	l.entries = append(l.entries, entry)
	l.size += len(entry)

	return nil
}

// Pop removes the newest entry without decoding it.
func (l *Log) Pop() error {
	n := len(l.entries)
	if n == 0 {
		return ErrEmptyLog
	}
	l.size -= len(l.entries[n-1])
	l.entries[n-1] = nil
	l.entries = l.entries[:n-1]

	return nil
}

// Peek decodes the newest entry without removing it.
func (l *Log) Peek() (dijkstra.State, error) {
	if len(l.entries) == 0 {
		return dijkstra.State{}, ErrEmptyLog
	}

	return decode(l.entries[len(l.entries)-1])
}

// At decodes entry i, where 0 is the oldest.
func (l *Log) At(i int) (dijkstra.State, error) {
	if i < 0 || i >= len(l.entries) {
		return dijkstra.State{}, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(l.entries))
	}

	return decode(l.entries[i])
}

// Len returns the number of archived entries.
func (l *Log) Len() int { return len(l.entries) }

// Bytes returns the total compressed size of all entries.
func (l *Log) Bytes() int { return l.size }

// decode reverses Push. dijkstra.State.UnmarshalJSON turns null distances
// back into +Inf.
func decode(entry []byte) (dijkstra.State, error) {
	raw, err := snappy.Decode(nil, entry)
	if err != nil {
		return dijkstra.State{}, fmt.Errorf("%w: %v", ErrCorruptEntry, err)
	}
	var s dijkstra.State
	if err = json.Unmarshal(raw, &s); err != nil {
		return dijkstra.State{}, fmt.Errorf("%w: %v", ErrCorruptEntry, err)
	}

	return s, nil
}
