package pathengine

import (
	"context"
	"errors"
	"math"

	"github.com/katalvlaran/reindeer/stategraph"
)

// Sentinel errors returned by the pathengine package.
var (
	// ErrNilGraph indicates that a nil *stategraph.Graph was passed in.
	ErrNilGraph = errors.New("pathengine: graph is nil")

	// ErrBadSource indicates a source state outside the graph.
	ErrBadSource = errors.New("pathengine: source state out of bounds")

	// ErrNoPath indicates the end cannot be reached from the start.
	ErrNoPath = errors.New("pathengine: no path from start to end")
)

// Infinity marks unreached states in a Table. Routes whose cost would reach
// it are treated as absent.
const Infinity int64 = math.MaxInt64

// Options configures Solve.
//
// StartFacing – facing of the walker at the start position (default Right).
// Concurrent  – run forward and backward searches in parallel.
// Ctx         – cancellation for both searches (default Background).
type Options struct {
	StartFacing stategraph.Facing
	Concurrent  bool
	Ctx         context.Context
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithStartFacing sets the initial facing. Invalid facings panic with
// stategraph.ErrInvalidFacing.
func WithStartFacing(f stategraph.Facing) Option {
	return func(o *Options) {
		if !f.Valid() {
			panic(stategraph.ErrInvalidFacing.Error())
		}
		o.StartFacing = f
	}
}

// WithConcurrentSearch runs the two search phases on separate goroutines.
func WithConcurrentSearch() Option {
	return func(o *Options) {
		o.Concurrent = true
	}
}

// WithContext sets the context used for cancellation.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// DefaultOptions returns StartFacing=Right, sequential search and a
// background context.
func DefaultOptions() Options {
	return Options{
		StartFacing: stategraph.Right,
		Concurrent:  false,
		Ctx:         context.Background(),
	}
}
