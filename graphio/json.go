// JSON codec over the serializable envelope.

package graphio

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"

	"github.com/graphina/graphina/core"
)

// WriteJSON encodes the graph's envelope as JSON.
func WriteJSON[A any, W core.Numeric](w io.Writer, g *core.Graph[A, W]) error {
	s, err := ToSerializable(g)
	if err != nil {
		return err
	}
	if err := json.NewEncoder(w).Encode(s); err != nil {
		return fmt.Errorf("graphio: json encode: %v: %w", err, core.ErrSerialization)
	}
	return nil
}

// ReadJSON decodes a JSON envelope and rebuilds the graph with fresh
// handles. WithStrict fails on edges referencing absent nodes;
// otherwise they are skipped.
func ReadJSON[A any, W core.Numeric](r io.Reader, opts ...Option) (*core.Graph[A, W], error) {
	o := buildOptions(opts)
	var s SerializableGraph[A, W]
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("graphio: json decode: %v: %w", err, core.ErrSerialization)
	}
	return s.Graph(o.Strict)
}

// SaveJSON writes the graph to a JSON file.
func SaveJSON[A any, W core.Numeric](path string, g *core.Graph[A, W]) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: create %s: %v: %w", path, err, core.ErrIO)
	}
	defer f.Close()
	return WriteJSON(f, g)
}

// LoadJSON reads a graph from a JSON file.
func LoadJSON[A any, W core.Numeric](path string, opts ...Option) (*core.Graph[A, W], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %v: %w", path, err, core.ErrIO)
	}
	defer f.Close()
	return ReadJSON[A, W](f, opts...)
}
