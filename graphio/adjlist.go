// Adjacency-list text format: `src<sep>n1[<sep>w1]<sep>n2[<sep>w2]...`
// With WithWeights, neighbor and weight tokens alternate; a trailing
// unpaired neighbor defaults to weight 1 unless WithStrict rejects
// the row.

package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/graphina/graphina/core"
)

// ReadAdjacencyList parses adjacency-list text into a fresh graph. A
// line with only a source token declares an isolated node.
func ReadAdjacencyList(r io.Reader, opts ...Option) (*core.Graph[int64, float64], error) {
	o := buildOptions(opts)
	g := newTextGraph(o)
	seen := make(map[int64]core.NodeID)

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		tokens, ok := splitRecord(sc.Text(), o.Separator)
		if !ok {
			continue
		}
		src, err := strconv.ParseInt(tokens[0], 10, 64)
		if err != nil {
			if o.Strict {
				return nil, fmt.Errorf("graphio: line %d: source %q: %w", lineNo, tokens[0], core.ErrIO)
			}
			continue
		}
		srcID := internNode(g, seen, src)
		rest := tokens[1:]
		if o.Weighted {
			if err := addWeightedRow(g, seen, srcID, rest, lineNo, o.Strict); err != nil {
				return nil, err
			}
			continue
		}
		for _, tok := range rest {
			nbr, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				if o.Strict {
					return nil, fmt.Errorf("graphio: line %d: neighbor %q: %w", lineNo, tok, core.ErrIO)
				}
				continue
			}
			g.AddEdge(srcID, internNode(g, seen, nbr), 1)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read: %v: %w", err, core.ErrIO)
	}
	return g, nil
}

// addWeightedRow consumes neighbor/weight token pairs. A final
// unpaired neighbor gets weight 1; strict mode rejects the row
// instead.
func addWeightedRow(g *core.Graph[int64, float64], seen map[int64]core.NodeID,
	srcID core.NodeID, tokens []string, lineNo int, strict bool) error {
	if strict && len(tokens)%2 != 0 {
		return fmt.Errorf("graphio: line %d: unpaired trailing neighbor: %w", lineNo, core.ErrIO)
	}
	for i := 0; i < len(tokens); i += 2 {
		nbr, err := strconv.ParseInt(tokens[i], 10, 64)
		if err != nil {
			if strict {
				return fmt.Errorf("graphio: line %d: neighbor %q: %w", lineNo, tokens[i], core.ErrIO)
			}
			continue
		}
		w := 1.0
		if i+1 < len(tokens) {
			w, err = strconv.ParseFloat(tokens[i+1], 64)
			if err != nil {
				if strict {
					return fmt.Errorf("graphio: line %d: weight %q: %w", lineNo, tokens[i+1], core.ErrIO)
				}
				continue
			}
		}
		g.AddEdge(srcID, internNode(g, seen, nbr), w)
	}
	return nil
}

// WriteAdjacencyList renders one line per node: the source payload
// followed by alternating neighbor and weight tokens, so the output
// reads back with WithWeights.
func WriteAdjacencyList(w io.Writer, g *core.Graph[int64, float64], opts ...Option) error {
	if g == nil {
		return ErrNilGraph
	}
	o := buildOptions(opts)
	bw := bufio.NewWriter(w)
	for _, id := range g.NodeIDs() {
		attr, _ := g.NodeAttr(id)
		if _, err := fmt.Fprintf(bw, "%d", attr); err != nil {
			return fmt.Errorf("graphio: write: %v: %w", err, core.ErrIO)
		}
		for _, e := range g.OutEdges(id) {
			if e.From != id {
				continue // undirected mirror; the stored source row owns it
			}
			nbr, _ := g.NodeAttr(e.To)
			if _, err := fmt.Fprintf(bw, "%c%d%c%v", o.Separator, nbr, o.Separator, e.Weight); err != nil {
				return fmt.Errorf("graphio: write: %v: %w", err, core.ErrIO)
			}
		}
		if _, err := fmt.Fprintln(bw); err != nil {
			return fmt.Errorf("graphio: write: %v: %w", err, core.ErrIO)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("graphio: write: %v: %w", err, core.ErrIO)
	}
	return nil
}

// LoadAdjacencyList reads an adjacency-list file.
func LoadAdjacencyList(path string, opts ...Option) (*core.Graph[int64, float64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %v: %w", path, err, core.ErrIO)
	}
	defer f.Close()
	return ReadAdjacencyList(f, opts...)
}

// SaveAdjacencyList writes an adjacency-list file.
func SaveAdjacencyList(path string, g *core.Graph[int64, float64], opts ...Option) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: create %s: %v: %w", path, err, core.ErrIO)
	}
	defer f.Close()
	return WriteAdjacencyList(f, g, opts...)
}
