package graphio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lviso/core"
)

// ErrEmptyDocument is returned when the input holds no YAML document.
var ErrEmptyDocument = errors.New("graphio: empty document")

// Document is the on-disk YAML shape of a graph.
type Document struct {
	Directed bool         `yaml:"directed"`
	Loops    bool         `yaml:"loops"`
	Weighted bool         `yaml:"weighted"`
	Vertices []VertexSpec `yaml:"vertices,omitempty"`
	Edges    []EdgeSpec   `yaml:"edges,omitempty"`
}

// VertexSpec describes one vertex.
type VertexSpec struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label,omitempty"`
}

// EdgeSpec describes one edge.
type EdgeSpec struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight int64  `yaml:"weight,omitempty"`
}

// Decode reads the first YAML document from r and builds the graph it describes.
func Decode(r io.Reader) (*core.Graph, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("graphio: decode: %w", err)
	}

	return doc.Graph()
}

// Load opens path and decodes it.
func Load(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Graph builds a core.Graph from the document.
func (d Document) Graph() (*core.Graph, error) {
	opts := []core.GraphOption{core.WithDirected(d.Directed)}
	if d.Loops {
		opts = append(opts, core.WithLoops())
	}
	if d.Weighted {
		opts = append(opts, core.WithWeighted())
	}
	g := core.NewGraph(opts...)

	for i, v := range d.Vertices {
		if err := g.AddVertex(v.ID); err != nil {
			return nil, fmt.Errorf("graphio: vertices[%d] (%q): %w", i, v.ID, err)
		}
		if v.Label == "" {
			continue
		}
		if err := g.SetVertexLabel(v.ID, v.Label); err != nil {
			return nil, fmt.Errorf("graphio: vertices[%d] (%q): %w", i, v.ID, err)
		}
	}
	for i, e := range d.Edges {
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("graphio: edges[%d] (%s→%s): %w", i, e.From, e.To, err)
		}
	}

	return g, nil
}

// FromGraph captures g as a Document: vertices in ID order, edges in ID order.
func FromGraph(g *core.Graph) Document {
	doc := Document{Directed: g.Directed(), Loops: g.Looped(), Weighted: g.Weighted()}
	for _, id := range g.Vertices() {
		vs := VertexSpec{ID: id}
		if v, err := g.Vertex(id); err == nil {
			vs.Label = v.Label
		}
		doc.Vertices = append(doc.Vertices, vs)
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, EdgeSpec{From: e.From, To: e.To, Weight: e.Weight})
	}

	return doc
}

// Encode writes g to w as a YAML document that Decode reads back.
func Encode(w io.Writer, g *core.Graph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("graphio: encode: %w", err)
	}

	return enc.Close()
}
