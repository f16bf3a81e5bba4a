// Edge-list text format: one edge per line, `src<sep>dst` or
// `src<sep>dst<sep>weight`. Node payloads are integers, deduplicated
// across lines; `#` starts a comment.

package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/graphina/graphina/core"
)

// ReadEdgeList parses edge-list text into a fresh graph. Repeated
// payloads map onto one node. Weightless records default to 1.
// Malformed lines are skipped unless WithStrict is set.
func ReadEdgeList(r io.Reader, opts ...Option) (*core.Graph[int64, float64], error) {
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
		if len(tokens) < 2 {
			if o.Strict {
				return nil, fmt.Errorf("graphio: line %d: want 2 or 3 fields, got %d: %w",
					lineNo, len(tokens), core.ErrIO)
			}
			continue
		}
		src, err := strconv.ParseInt(tokens[0], 10, 64)
		if err != nil {
			if o.Strict {
				return nil, fmt.Errorf("graphio: line %d: source %q: %w", lineNo, tokens[0], core.ErrIO)
			}
			continue
		}
		dst, err := strconv.ParseInt(tokens[1], 10, 64)
		if err != nil {
			if o.Strict {
				return nil, fmt.Errorf("graphio: line %d: target %q: %w", lineNo, tokens[1], core.ErrIO)
			}
			continue
		}
		w := 1.0
		if len(tokens) >= 3 {
			w, err = strconv.ParseFloat(tokens[2], 64)
			if err != nil {
				if o.Strict {
					return nil, fmt.Errorf("graphio: line %d: weight %q: %w", lineNo, tokens[2], core.ErrIO)
				}
				continue
			}
		}
		g.AddEdge(internNode(g, seen, src), internNode(g, seen, dst), w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read: %v: %w", err, core.ErrIO)
	}
	return g, nil
}

// WriteEdgeList renders every edge as `src<sep>dst<sep>weight`.
func WriteEdgeList(w io.Writer, g *core.Graph[int64, float64], opts ...Option) error {
	if g == nil {
		return ErrNilGraph
	}
	o := buildOptions(opts)
	bw := bufio.NewWriter(w)
	for _, e := range g.Edges() {
		src, _ := g.NodeAttr(e.From)
		dst, _ := g.NodeAttr(e.To)
		if _, err := fmt.Fprintf(bw, "%d%c%d%c%v\n", src, o.Separator, dst, o.Separator, e.Weight); err != nil {
			return fmt.Errorf("graphio: write: %v: %w", err, core.ErrIO)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("graphio: write: %v: %w", err, core.ErrIO)
	}
	return nil
}

// LoadEdgeList reads an edge-list file.
func LoadEdgeList(path string, opts ...Option) (*core.Graph[int64, float64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %v: %w", path, err, core.ErrIO)
	}
	defer f.Close()
	return ReadEdgeList(f, opts...)
}

// SaveEdgeList writes an edge-list file.
func SaveEdgeList(path string, g *core.Graph[int64, float64], opts ...Option) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: create %s: %v: %w", path, err, core.ErrIO)
	}
	defer f.Close()
	return WriteEdgeList(f, g, opts...)
}

// splitRecord strips comments and whitespace and splits one line into
// trimmed tokens. Reports false for blank lines.
func splitRecord(line string, sep rune) ([]string, bool) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, false
	}
	raw := strings.Split(line, string(sep))
	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		t = strings.TrimSpace(t)
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	if len(tokens) == 0 {
		return nil, false
	}
	return tokens, true
}

func newTextGraph(o Options) *core.Graph[int64, float64] {
	if o.Directed {
		return core.NewGraph[int64, float64](core.WithDirected())
	}
	return core.NewGraph[int64, float64]()
}

func internNode(g *core.Graph[int64, float64], seen map[int64]core.NodeID, payload int64) core.NodeID {
	if id, ok := seen[payload]; ok {
		return id
	}
	id := g.AddNode(payload)
	seen[payload] = id
	return id
}
