// Package graphfile reads *core.Graph values from YAML documents:
//
//	directed: true
//	weighted: true
//	multi: false
//	loops: false
//	vertices: [a, b, c]
//	edges:
//	  - {from: a, to: b, weight: 4}
//	  - {from: b, to: c}
//
// Vertices listed explicitly are added first (isolated vertices need this);
// edge endpoints are added implicitly.
package graphfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/clrs/core"
)

// ErrInvalidDocument indicates a structurally invalid graph document.
var ErrInvalidDocument = errors.New("graphfile: invalid document")

// Document is the YAML shape of a graph.
type Document struct {
	Directed bool     `yaml:"directed"`
	Weighted bool     `yaml:"weighted"`
	Multi    bool     `yaml:"multi"`
	Loops    bool     `yaml:"loops"`
	Vertices []string `yaml:"vertices"`
	Edges    []Edge   `yaml:"edges"`
}

// Edge is one YAML edge entry.
type Edge struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight int64  `yaml:"weight"`
}

// Decode parses a document from r.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	return &doc, nil
}

// Build converts the document into a graph.
func (d *Document) Build() (*core.Graph, error) {
	opts := []core.GraphOption{core.WithDirected(d.Directed)}
	if d.Weighted {
		opts = append(opts, core.WithWeighted())
	}
	if d.Multi {
		opts = append(opts, core.WithMultiEdges())
	}
	if d.Loops {
		opts = append(opts, core.WithLoops())
	}
	g := core.NewGraph(opts...)

	for _, v := range d.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("%w: vertex %q: %v", ErrInvalidDocument, v, err)
		}
	}
	for i, e := range d.Edges {
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("%w: edge #%d %q→%q: %w", ErrInvalidDocument, i+1, e.From, e.To, err)
		}
	}

	return g, nil
}

// Read decodes and builds a graph from r.
func Read(r io.Reader) (*core.Graph, error) {
	doc, err := Decode(r)
	if err != nil {
		return nil, err
	}

	return doc.Build()
}

// Load reads the graph stored at path.
func Load(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Encode writes g as a YAML document. Edges appear in creation order.
func Encode(w io.Writer, g *core.Graph) error {
	doc := Document{
		Directed: g.Directed(),
		Weighted: g.Weighted(),
		Multi:    g.Multigraph(),
		Loops:    g.Looped(),
		Vertices: g.Vertices(),
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, Edge{From: e.From, To: e.To, Weight: e.Weight})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("graphfile: %w", err)
	}

	return enc.Close()
}
