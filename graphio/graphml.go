// GraphML export: standard graphml root, one key per declared
// attribute, payloads under the "label" key and weights under
// "weight". encoding/xml handles escaping.

package graphio

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/graphina/graphina/core"
)

const graphmlNamespace = "http://graphml.graphdrawing.org/xmlns"

type graphmlDoc struct {
	XMLName xml.Name      `xml:"graphml"`
	Xmlns   string        `xml:"xmlns,attr"`
	Keys    []graphmlKey  `xml:"key"`
	Graph   graphmlGraph  `xml:"graph"`
}

type graphmlKey struct {
	ID       string `xml:"id,attr"`
	For      string `xml:"for,attr"`
	AttrName string `xml:"attr.name,attr"`
	AttrType string `xml:"attr.type,attr"`
}

type graphmlGraph struct {
	ID          string         `xml:"id,attr"`
	EdgeDefault string         `xml:"edgedefault,attr"`
	Nodes       []graphmlNode  `xml:"node"`
	Edges       []graphmlEdge  `xml:"edge"`
}

type graphmlNode struct {
	ID   string        `xml:"id,attr"`
	Data []graphmlData `xml:"data"`
}

type graphmlEdge struct {
	Source string        `xml:"source,attr"`
	Target string        `xml:"target,attr"`
	Data   []graphmlData `xml:"data"`
}

type graphmlData struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

// ExportGraphML renders the graph as GraphML. Node payloads are
// written under the "label" key via their default formatting; edge
// weights under the "weight" key.
func ExportGraphML[A any, W core.Numeric](w io.Writer, g *core.Graph[A, W]) error {
	if g == nil {
		return ErrNilGraph
	}

	ix := core.NewIndex(g)
	doc := graphmlDoc{
		Xmlns: graphmlNamespace,
		Keys: []graphmlKey{
			{ID: "label", For: "node", AttrName: "label", AttrType: "string"},
			{ID: "weight", For: "edge", AttrName: "weight", AttrType: "double"},
		},
		Graph: graphmlGraph{ID: "G", EdgeDefault: "undirected"},
	}
	if g.Directed() {
		doc.Graph.EdgeDefault = "directed"
	}

	for i, id := range ix.IDs() {
		attr, _ := g.NodeAttr(id)
		doc.Graph.Nodes = append(doc.Graph.Nodes, graphmlNode{
			ID:   fmt.Sprintf("n%d", i),
			Data: []graphmlData{{Key: "label", Value: fmt.Sprint(attr)}},
		})
	}
	for _, e := range g.Edges() {
		si, _ := ix.Of(e.From)
		ti, _ := ix.Of(e.To)
		doc.Graph.Edges = append(doc.Graph.Edges, graphmlEdge{
			Source: fmt.Sprintf("n%d", si),
			Target: fmt.Sprintf("n%d", ti),
			Data:   []graphmlData{{Key: "weight", Value: fmt.Sprint(e.Weight)}},
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("graphio: graphml write: %v: %w", err, core.ErrIO)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("graphio: graphml encode: %v: %w", err, core.ErrSerialization)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("graphio: graphml encode: %v: %w", err, core.ErrSerialization)
	}
	return nil
}

// SaveGraphML writes a GraphML file.
func SaveGraphML[A any, W core.Numeric](path string, g *core.Graph[A, W]) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: create %s: %v: %w", path, err, core.ErrIO)
	}
	defer f.Close()
	return ExportGraphML(f, g)
}
