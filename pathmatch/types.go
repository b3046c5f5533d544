// Package pathmatch: options and error definitions for pattern matching.
package pathmatch

import (
	"context"
	"errors"
	"fmt"
)

// DefaultMergeLabel is the attribute placed on every merged edge of the
// result graph unless WithMergeLabel overrides it.
const DefaultMergeLabel = "mergedEdge"

// Sentinel errors for pattern matching.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("pathmatch: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathmatch: invalid option supplied")

	// ErrIncompleteMatch is the panic value of Path and StartID when the
	// partial match still has pattern steps to satisfy.
	ErrIncompleteMatch = errors.New("pathmatch: match is incomplete")

	// ErrZeroLengthMatch is the panic value of StartID when the match holds
	// no matched edges; a zero-length path starts at whichever vertex holds
	// it, which the match itself cannot know.
	ErrZeroLengthMatch = errors.New("pathmatch: zero-length match has no start edge")
)

// Option configures pattern matching via functional arguments.
// Invalid options are recorded internally and surfaced as
// ErrOptionViolation when Match or Paths is invoked.
type Option func(*Options)

// Options holds configurable parameters for Match and Paths.
type Options struct {
	// Ctx allows cancellation and deadlines, honored between supersteps.
	Ctx context.Context

	// MergeLabel is the attribute of every merged edge in the result graph.
	MergeLabel string

	// Workers is forwarded to pregel.WithWorkers. 1 (the default) is fully
	// deterministic; 0 means runtime.NumCPU().
	Workers int

	// MaxSupersteps is forwarded to pregel.WithMaxSupersteps as a safety
	// bound. 0 (the default) disables the limit; the computation quiesces
	// within len(pattern) supersteps on its own.
	MaxSupersteps int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - MergeLabel == DefaultMergeLabel
//   - sequential execution, no superstep limit.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MergeLabel:    DefaultMergeLabel,
		Workers:       1,
		MaxSupersteps: 0,
		err:           nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMergeLabel sets the attribute of merged edges in the result graph.
// An empty label is invalid → ErrOptionViolation.
func WithMergeLabel(label string) Option {
	return func(o *Options) {
		if label == "" {
			o.err = fmt.Errorf("%w: merge label cannot be empty", ErrOptionViolation)
			return
		}
		o.MergeLabel = label
	}
}

// WithWorkers sets the number of goroutines for the superstep engine.
//
//	n > 0: use n workers
//	n == 0: use runtime.NumCPU()
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithMaxSupersteps bounds the superstep loop (0 = no limit).
// Negative values are invalid → ErrOptionViolation.
func WithMaxSupersteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSupersteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSupersteps = n
	}
}
