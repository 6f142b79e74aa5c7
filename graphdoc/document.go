// SPDX-License-Identifier: MIT

package graphdoc

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/katalvlaran/pathstep/core"
)

var (
	// ErrInvalidDocument indicates the document failed schema or structural checks.
	ErrInvalidDocument = errors.New("graphdoc: invalid document")

	// ErrUnknownFormat indicates Load could not infer an encoding from the file extension.
	ErrUnknownFormat = errors.New("graphdoc: unknown document format")
)

//go:embed schema.json
var schemaSource string

// schema is compiled once at init; a broken embedded schema is a build defect.
var schema = jsonschema.MustCompileString("schema.json", schemaSource)

// EdgeDoc is one directed edge of a Document.
type EdgeDoc struct {
	From string  `json:"from" toml:"from"`
	To   string  `json:"to" toml:"to"`
	Cost float64 `json:"cost" toml:"cost"`
}

// Document is the serialized form of a graph plus an optional query.
type Document struct {
	Vertices []string  `json:"vertices,omitempty" toml:"vertices"`
	Edges    []EdgeDoc `json:"edges" toml:"edges"`
	Start    string    `json:"start,omitempty" toml:"start"`
	End      string    `json:"end,omitempty" toml:"end"`
}

// ParseJSON validates data against the embedded schema and decodes it.
func ParseJSON(data []byte) (*Document, error) {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	return &doc, nil
}

// ParseTOML decodes data as TOML. Keys outside the Document layout are rejected.
func ParseTOML(data []byte) (*Document, error) {
	var doc Document
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown keys %v", ErrInvalidDocument, undecoded)
	}
	if err = doc.validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Load reads path and parses it according to its extension (.json or .toml).
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphdoc: read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSON(data)
	case ".toml":
		return ParseTOML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// validate mirrors the schema's structural rules for decoders that bypass it.
func (d *Document) validate() error {
	for i, v := range d.Vertices {
		if v == "" {
			return fmt.Errorf("%w: vertices[%d] is empty", ErrInvalidDocument, i)
		}
	}
	for i, e := range d.Edges {
		if e.From == "" || e.To == "" {
			return fmt.Errorf("%w: edges[%d] has an empty endpoint", ErrInvalidDocument, i)
		}
	}

	return nil
}

// Graph builds a core.Graph from the document.
//
// With a non-empty vertex list the graph is built with core.WithDanglingEdges,
// so edges may point at vertices that are not part of the graph. With an empty
// list every edge endpoint becomes a vertex.
func (d *Document) Graph() (*core.Graph, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}

	var g *core.Graph
	if len(d.Vertices) == 0 {
		g = core.NewGraph()
	} else {
		g = core.NewGraph(core.WithDanglingEdges())
	}

	for _, v := range d.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("graphdoc: vertex %q: %w", v, err)
		}
	}
	for i, e := range d.Edges {
		if err := g.AddEdge(e.From, e.To, e.Cost); err != nil {
			return nil, fmt.Errorf("graphdoc: edges[%d]: %w", i, err)
		}
	}

	return g, nil
}

// FromGraph captures g (vertices and edges) together with a start/end pair.
func FromGraph(g *core.Graph, start, end string) *Document {
	doc := &Document{Start: start, End: end}
	if g == nil {
		return doc
	}

	doc.Vertices = g.Vertices()
	edges := g.Edges()
	doc.Edges = make([]EdgeDoc, len(edges))
	for i, e := range edges {
		doc.Edges[i] = EdgeDoc{From: e.From, To: e.To, Cost: e.Cost}
	}

	return doc
}
