// Sentinel errors for the builder package. Constructors attach
// parameter context with %w wrapping; callers branch with errors.Is.

package builder

import "errors"

var (
	// ErrTooFewNodes indicates a size parameter below the constructor's
	// minimum.
	ErrTooFewNodes = errors.New("builder: too few nodes")

	// ErrInvalidProbability indicates a probability outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrInvalidDegree indicates a degree parameter that cannot produce
	// the requested topology (odd k, k >= n, m = 0, m > n).
	ErrInvalidDegree = errors.New("builder: invalid degree parameter")

	// ErrNilWeightFn is the panic payload for WithWeightFn(nil).
	ErrNilWeightFn = errors.New("builder: weight function is nil")
)
