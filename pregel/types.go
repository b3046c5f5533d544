// Package pregel: program types, options, and error definitions for the
// superstep engine.
package pregel

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for superstep execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed to RunGraph.
	ErrGraphNil = errors.New("pregel: graph is nil")

	// ErrNilProgram is returned when merge, send, or combine is nil.
	ErrNilProgram = errors.New("pregel: vertex program callback is nil")

	// ErrDanglingEdge is returned when an edge endpoint is absent from the
	// vertex map.
	ErrDanglingEdge = errors.New("pregel: edge endpoint not found")

	// ErrUnknownVertex is returned when send addresses a message to a vertex
	// ID that does not exist.
	ErrUnknownVertex = errors.New("pregel: message destination not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pregel: invalid option supplied")

	// ErrMaxSupersteps is returned when the superstep limit is reached
	// before quiescence.
	ErrMaxSupersteps = errors.New("pregel: max supersteps exceeded")
)

// Edge is one directed, attributed edge of the topology handed to Run.
type Edge[E any] struct {
	// ID uniquely identifies the edge.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Attr is the edge attribute.
	Attr E
}

// Triplet is the read-only edge view handed to the send callback:
// the edge plus both endpoints' current states.
type Triplet[V, E any] struct {
	EdgeID string
	SrcID  string
	DstID  string

	// SrcAttr and DstAttr are the endpoint states as of the previous
	// superstep barrier.
	SrcAttr V
	DstAttr V

	EdgeAttr E
}

// Message is one value addressed to a vertex.
type Message[M any] struct {
	// To is the destination vertex ID; it must exist in the vertex map.
	To string

	// Value is the message payload.
	Value M
}

// MergeFunc folds the combined incoming message into a vertex state,
// returning the state for the next superstep. It is the only writer of
// vertex state and runs once per vertex per superstep.
type MergeFunc[V, M any] func(id string, state V, msg M) V

// SendFunc inspects one edge triplet and returns messages for the next
// superstep. It must be pure: safe to invoke concurrently for disjoint
// edges, no shared mutable state.
type SendFunc[V, E, M any] func(t Triplet[V, E]) []Message[M]

// CombineFunc reduces two messages addressed to the same vertex within one
// superstep. It must be commutative, associative, and idempotent, because
// message arrival order is unspecified.
type CombineFunc[M any] func(a, b M) M

// Option configures superstep execution via functional arguments.
// Invalid options are recorded internally and surfaced as
// ErrOptionViolation when Run is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize execution.
type Options struct {
	// Ctx allows cancellation and deadlines, checked between supersteps.
	Ctx context.Context

	// MaxSupersteps, if > 0, aborts with ErrMaxSupersteps after that many
	// message-producing supersteps. 0 explicitly disables the limit.
	MaxSupersteps int

	// Workers is the number of goroutines used for the edge scan and the
	// merge fold. 1 (the default) executes fully sequentially;
	// 0 means runtime.NumCPU().
	Workers int

	// OnSuperstep is called after each superstep's edge scan with the
	// superstep index and the number of vertices that received a message.
	OnSuperstep func(step, messages int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no superstep limit (MaxSupersteps == 0)
//   - sequential execution (Workers == 1)
//   - no-op OnSuperstep hook.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxSupersteps: 0,
		Workers:       1,
		OnSuperstep:   func(int, int) {},
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

// WithMaxSupersteps aborts the run after n message-producing supersteps.
//
//	n > 0: limit to n supersteps
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSupersteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSupersteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSupersteps = n
	}
}

// WithWorkers sets the number of goroutines for the edge scan and merge fold.
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

// WithOnSuperstep registers a callback observing each superstep.
func WithOnSuperstep(fn func(step, messages int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSuperstep = fn
		}
	}
}
