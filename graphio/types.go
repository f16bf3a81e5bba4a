// Package graphio reads and writes graphs across the supported
// boundary formats: edge-list text, adjacency-list text, GraphML
// export, JSON, and a msgpack binary codec.
//
// Text formats parse integer node payloads and float64 weights, the
// shapes the text loaders are defined for. The JSON and binary codecs
// are generic over the stored attribute and weight types.
//
// Options:
//   - WithSeparator sets the token separator for the text formats
//     (default ',').
//   - WithDirected makes the loaders build directed graphs.
//   - WithWeights tells the adjacency reader that neighbor tokens
//     alternate with weight tokens.
//   - WithStrict makes malformed input fail the load instead of being
//     skipped.
//
// Errors:
//   - File and line-level failures wrap core.ErrIO.
//   - Codec failures wrap core.ErrSerialization.
//   - Strict loads of records referencing absent nodes wrap
//     core.ErrEndpointMissing.
package graphio

import "errors"

// ErrNilGraph reports a nil *core.Graph argument.
var ErrNilGraph = errors.New("graphio: nil graph")

// Options carries the knobs shared by the loaders and writers.
type Options struct {
	// Separator splits tokens in the text formats.
	Separator rune

	// Directed makes loaded graphs directed.
	Directed bool

	// Weighted tells the adjacency-list reader that weights alternate
	// with neighbor tokens.
	Weighted bool

	// Strict fails on malformed lines and dangling references instead
	// of skipping them.
	Strict bool
}

// Option mutates Options.
type Option func(*Options)

// WithSeparator sets the text-format token separator. Panics on the
// zero rune.
func WithSeparator(sep rune) Option {
	if sep == 0 {
		panic("graphio: zero separator")
	}
	return func(o *Options) { o.Separator = sep }
}

// WithDirected makes loaders construct directed graphs.
func WithDirected() Option {
	return func(o *Options) { o.Directed = true }
}

// WithWeights marks adjacency-list input as carrying alternating
// neighbor and weight tokens.
func WithWeights() Option {
	return func(o *Options) { o.Weighted = true }
}

// WithStrict rejects malformed lines and dangling references.
func WithStrict() Option {
	return func(o *Options) { o.Strict = true }
}

func buildOptions(opts []Option) Options {
	o := Options{Separator: ','}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
