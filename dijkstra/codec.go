// SPDX-License-Identifier: MIT
//
// File: codec.go
// Role: JSON form of State.
//
// JSON has no representation for infinity. Distances and edge costs use:
//
//	+Inf  null
//	-Inf  "-Inf"
//	NaN   not encodable (ErrStateEncoding)
//
// Decoding therefore restores the Distances invariant after any round-trip.

package dijkstra

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/pathstep/core"
)

const negInfLiteral = `"-Inf"`

var errNaN = errors.New("NaN is not encodable")

// wireFloat is a float64 whose JSON form covers both infinities.
type wireFloat float64

// MarshalJSON implements json.Marshaler.
func (f wireFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return nil, errNaN
	case math.IsInf(v, 1):
		return []byte("null"), nil
	case math.IsInf(v, -1):
		return []byte(negInfLiteral), nil
	}

	return json.Marshal(v)
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *wireFloat) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "null":
		*f = wireFloat(math.Inf(1))
		return nil
	case negInfLiteral:
		*f = wireFloat(math.Inf(-1))
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = wireFloat(v)

	return nil
}

// edgeJSON is the wire layout of core.Edge inside a State.
type edgeJSON struct {
	From string    `json:"from"`
	To   string    `json:"to"`
	Cost wireFloat `json:"cost"`
}

// stateJSON is the wire layout of State.
type stateJSON struct {
	Unvisited     []string             `json:"unvisited"`
	Finalized     []string             `json:"finalized"`
	Distances     map[string]wireFloat `json:"distances"`
	Previous      map[string]string    `json:"previous"`
	CurrentVertex string               `json:"currentVertex"`
	CurrentEdge   *edgeJSON            `json:"currentEdge"`
	EdgesLeft     []edgeJSON           `json:"edgesLeft"`
	IsDone        bool                 `json:"isDone"`
}

func toEdgeJSON(e core.Edge) edgeJSON {
	return edgeJSON{From: e.From, To: e.To, Cost: wireFloat(e.Cost)}
}

func (w edgeJSON) edge() core.Edge {
	return core.Edge{From: w.From, To: w.To, Cost: float64(w.Cost)}
}

// MarshalJSON encodes s. It fails with ErrStateEncoding on NaN distances or costs.
func (s State) MarshalJSON() ([]byte, error) {
	w := stateJSON{
		Unvisited:     s.Unvisited,
		Finalized:     s.Finalized,
		Previous:      s.Previous,
		CurrentVertex: s.CurrentVertex,
		IsDone:        s.IsDone,
	}
	if s.Distances != nil {
		w.Distances = make(map[string]wireFloat, len(s.Distances))
		for v, d := range s.Distances {
			w.Distances[v] = wireFloat(d)
		}
	}
	if s.CurrentEdge != nil {
		e := toEdgeJSON(*s.CurrentEdge)
		w.CurrentEdge = &e
	}
	if s.EdgesLeft != nil {
		w.EdgesLeft = make([]edgeJSON, len(s.EdgesLeft))
		for i, e := range s.EdgesLeft {
			w.EdgesLeft[i] = toEdgeJSON(e)
		}
	}

	data, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStateEncoding, err)
	}

	return data, nil
}

// UnmarshalJSON decodes data into s; null distances become +Inf.
func (s *State) UnmarshalJSON(data []byte) error {
	var w stateJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: %v", ErrStateEncoding, err)
	}

	*s = State{
		Unvisited:     w.Unvisited,
		Finalized:     w.Finalized,
		Previous:      w.Previous,
		CurrentVertex: w.CurrentVertex,
		IsDone:        w.IsDone,
	}
	if w.Distances != nil {
		s.Distances = make(map[string]float64, len(w.Distances))
		for v, d := range w.Distances {
			s.Distances[v] = float64(d)
		}
	}
	if w.CurrentEdge != nil {
		e := w.CurrentEdge.edge()
		s.CurrentEdge = &e
	}
	if w.EdgesLeft != nil {
		s.EdgesLeft = make([]core.Edge, len(w.EdgesLeft))
		for i, e := range w.EdgesLeft {
			s.EdgesLeft[i] = e.edge()
		}
	}

	return nil
}
