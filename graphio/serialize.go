// The serializable envelope shared by the JSON and binary codecs:
// node payloads in index order plus (source, target, weight) triples
// addressing those indices. Rebuilt graphs get fresh handles.

package graphio

import (
	"fmt"

	"github.com/graphina/graphina/core"
)

// EdgeTriple is one serialized edge: endpoint positions in the node
// array plus the weight.
type EdgeTriple[W core.Numeric] struct {
	Source int `json:"source" msgpack:"source"`
	Target int `json:"target" msgpack:"target"`
	Weight W   `json:"weight" msgpack:"weight"`
}

// SerializableGraph is the portable view of a graph: directedness,
// payloads by index, and index-addressed edges.
type SerializableGraph[A any, W core.Numeric] struct {
	Directed bool            `json:"directed" msgpack:"directed"`
	Nodes    []A             `json:"nodes" msgpack:"nodes"`
	Edges    []EdgeTriple[W] `json:"edges" msgpack:"edges"`
}

// ToSerializable snapshots g into the portable envelope.
func ToSerializable[A any, W core.Numeric](g *core.Graph[A, W]) (SerializableGraph[A, W], error) {
	var s SerializableGraph[A, W]
	if g == nil {
		return s, ErrNilGraph
	}
	ix := core.NewIndex(g)
	s.Directed = g.Directed()
	s.Nodes = make([]A, 0, ix.Len())
	for _, id := range ix.IDs() {
		attr, _ := g.NodeAttr(id)
		s.Nodes = append(s.Nodes, attr)
	}
	s.Edges = make([]EdgeTriple[W], 0, g.EdgeCount())
	for _, e := range g.Edges() {
		si, _ := ix.Of(e.From)
		ti, _ := ix.Of(e.To)
		s.Edges = append(s.Edges, EdgeTriple[W]{Source: si, Target: ti, Weight: e.Weight})
	}
	return s, nil
}

// Graph rebuilds a fresh graph from the envelope. Edges referencing
// indices outside the node array are skipped when strict is false and
// fail the rebuild with core.ErrEndpointMissing when strict is true.
func (s SerializableGraph[A, W]) Graph(strict bool) (*core.Graph[A, W], error) {
	var g *core.Graph[A, W]
	if s.Directed {
		g = core.NewGraph[A, W](core.WithDirected())
	} else {
		g = core.NewGraph[A, W]()
	}
	ids := make([]core.NodeID, len(s.Nodes))
	for i, attr := range s.Nodes {
		ids[i] = g.AddNode(attr)
	}
	for _, e := range s.Edges {
		if e.Source < 0 || e.Source >= len(ids) || e.Target < 0 || e.Target >= len(ids) {
			if strict {
				return nil, fmt.Errorf("graphio: edge (%d, %d) outside %d nodes: %w",
					e.Source, e.Target, len(ids), core.ErrEndpointMissing)
			}
			continue
		}
		g.AddEdge(ids[e.Source], ids[e.Target], e.Weight)
	}
	return g, nil
}
