// Package parallel provides concurrent variants of the hot
// whole-graph computations: multi-source traversal and shortest
// paths, per-node statistics, PageRank sweeps, and component
// labeling.
//
// Every entry point fans work out over an errgroup bounded by
// WithWorkers (default GOMAXPROCS), reads the graph without mutating
// it, and merges per-chunk results in a fixed order, so outputs are
// identical to the sequential counterparts run on the same input.
//
// Complexity matches the sequential algorithms; wall-clock scales
// with the worker budget for graphs large enough to amortize the
// fan-out.
//
// Errors:
//   - ErrNilGraph for a nil graph value.
//   - ErrNoSources for an empty source set.
//   - context errors when the attached context is cancelled.
//   - *core.ConvergenceError when PageRank exhausts its iteration
//     budget.
package parallel

import (
	"context"
	"errors"
	"runtime"

	"github.com/rs/zerolog"
)

// ErrNilGraph reports a nil *core.Graph argument.
var ErrNilGraph = errors.New("parallel: nil graph")

// ErrNoSources reports an empty source list where at least one start
// node is required.
var ErrNoSources = errors.New("parallel: no source nodes")

// ErrBadWorkers reports a non-positive worker budget.
var ErrBadWorkers = errors.New("parallel: worker count must be positive")

// Options carries the shared knobs for the package entry points.
type Options struct {
	// Ctx cancels in-flight work; workers observe it between units.
	Ctx context.Context

	// Workers bounds concurrent goroutines. Defaults to GOMAXPROCS.
	Workers int

	// Damping is the PageRank damping factor.
	Damping float64

	// Tol is the PageRank L1 convergence threshold.
	Tol float64

	// MaxIter caps PageRank sweeps.
	MaxIter int

	// Logger receives per-sweep convergence traces.
	Logger zerolog.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithContext attaches ctx for cancellation. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("parallel: nil context")
	}
	return func(o *Options) { o.Ctx = ctx }
}

// WithWorkers sets the concurrent worker budget. Panics on n <= 0.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(ErrBadWorkers.Error())
	}
	return func(o *Options) { o.Workers = n }
}

// WithDamping sets the PageRank damping factor. Panics outside (0, 1).
func WithDamping(d float64) Option {
	if d <= 0 || d >= 1 {
		panic("parallel: damping must be in (0, 1)")
	}
	return func(o *Options) { o.Damping = d }
}

// WithTolerance sets the PageRank convergence threshold. Panics on
// non-positive values.
func WithTolerance(tol float64) Option {
	if tol <= 0 {
		panic("parallel: tolerance must be positive")
	}
	return func(o *Options) { o.Tol = tol }
}

// WithMaxIterations caps PageRank sweeps. Panics on n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic("parallel: max iterations must be positive")
	}
	return func(o *Options) { o.MaxIter = n }
}

// WithLogger attaches a progress logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func buildOptions(opts []Option) Options {
	o := Options{
		Ctx:     context.Background(),
		Workers: runtime.GOMAXPROCS(0),
		Damping: 0.85,
		Tol:     1e-6,
		MaxIter: 100,
		Logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// chunks splits [0, n) into at most workers contiguous ranges.
func chunks(n, workers int) [][2]int {
	if n == 0 {
		return nil
	}
	if workers > n {
		workers = n
	}
	size := (n + workers - 1) / workers
	var out [][2]int
	for lo := 0; lo < n; lo += size {
		hi := lo + size
		if hi > n {
			hi = n
		}
		out = append(out, [2]int{lo, hi})
	}
	return out
}
