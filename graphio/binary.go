// Binary codec over the serializable envelope, encoded with msgpack.

package graphio

import (
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/graphina/graphina/core"
)

// WriteBinary encodes the graph's envelope as msgpack.
func WriteBinary[A any, W core.Numeric](w io.Writer, g *core.Graph[A, W]) error {
	s, err := ToSerializable(g)
	if err != nil {
		return err
	}
	if err := msgpack.NewEncoder(w).Encode(s); err != nil {
		return fmt.Errorf("graphio: binary encode: %v: %w", err, core.ErrSerialization)
	}
	return nil
}

// ReadBinary decodes a msgpack envelope and rebuilds the graph with
// fresh handles. WithStrict fails on edges referencing absent nodes.
func ReadBinary[A any, W core.Numeric](r io.Reader, opts ...Option) (*core.Graph[A, W], error) {
	o := buildOptions(opts)
	var s SerializableGraph[A, W]
	if err := msgpack.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("graphio: binary decode: %v: %w", err, core.ErrSerialization)
	}
	return s.Graph(o.Strict)
}

// SaveBinary writes the graph to a msgpack file.
func SaveBinary[A any, W core.Numeric](path string, g *core.Graph[A, W]) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: create %s: %v: %w", path, err, core.ErrIO)
	}
	defer f.Close()
	return WriteBinary(f, g)
}

// LoadBinary reads a graph from a msgpack file.
func LoadBinary[A any, W core.Numeric](path string, opts ...Option) (*core.Graph[A, W], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %v: %w", path, err, core.ErrIO)
	}
	defer f.Close()
	return ReadBinary[A, W](f, opts...)
}
