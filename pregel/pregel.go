// Package pregel implements the synchronous superstep engine: scan edges,
// combine messages per destination, merge uniformly, repeat to quiescence.
package pregel

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/katalvlaran/lvlpath/core"
)

// engine encapsulates one run's immutable program and mutable state.
type engine[V, E, M any] struct {
	opts    Options
	workers int
	edges   []Edge[E]
	states  map[string]V // snapshot of the previous barrier; never mutated in place
	merge   MergeFunc[V, M]
	send    SendFunc[V, E, M]
	combine CombineFunc[M]
}

// Run executes the vertex program over the given topology until quiescence.
//
// vertices maps every vertex ID to its initial state; edges lists the fixed
// directed topology. The initial message is delivered to every vertex at
// superstep 0 through merge. Afterwards each superstep scans every edge
// with send, folds messages per destination with combine, and — while any
// message exists — applies merge to every vertex, handing the zero value of
// M to vertices that received nothing. The input map is not mutated.
//
// Returns ErrNilProgram, ErrDanglingEdge, ErrUnknownVertex,
// ErrOptionViolation, ErrMaxSupersteps, or a context error.
// Complexity: O(S·(V+E)) for S supersteps, plus callback costs.
func Run[V, E, M any](
	vertices map[string]V,
	edges []Edge[E],
	initial M,
	merge MergeFunc[V, M],
	send SendFunc[V, E, M],
	combine CombineFunc[M],
	opts ...Option,
) (map[string]V, error) {
	if merge == nil || send == nil || combine == nil {
		return nil, ErrNilProgram
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	workers := o.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	// Validate the topology up front: dangling edges fail loudly.
	for _, e := range edges {
		if _, ok := vertices[e.From]; !ok {
			return nil, fmt.Errorf("%w: edge %q references source %q", ErrDanglingEdge, e.ID, e.From)
		}
		if _, ok := vertices[e.To]; !ok {
			return nil, fmt.Errorf("%w: edge %q references destination %q", ErrDanglingEdge, e.ID, e.To)
		}
	}

	// Copy the caller's state map; every barrier produces a fresh snapshot.
	states := make(map[string]V, len(vertices))
	for id, st := range vertices {
		states[id] = st
	}

	en := &engine[V, E, M]{
		opts:    o,
		workers: workers,
		edges:   edges,
		states:  states,
		merge:   merge,
		send:    send,
		combine: combine,
	}

	return en.loop(initial)
}

// RunGraph adapts a core.Graph whose vertex attribute doubles as the vertex
// program state, then delegates to Run.
// Returns ErrGraphNil for a nil graph.
func RunGraph[V, E, M any](
	g *core.Graph[V, E],
	initial M,
	merge MergeFunc[V, M],
	send SendFunc[V, E, M],
	combine CombineFunc[M],
	opts ...Option,
) (map[string]V, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	src := g.Edges()
	edges := make([]Edge[E], len(src))
	for i, e := range src {
		edges[i] = Edge[E]{ID: e.ID, From: e.From, To: e.To, Attr: e.Attr}
	}

	return Run(g.VertexAttrs(), edges, initial, merge, send, combine, opts...)
}

// loop drives supersteps until quiescence, cancellation, or the limit.
func (en *engine[V, E, M]) loop(initial M) (map[string]V, error) {
	// Superstep 0: the initial message reaches every vertex.
	en.states = en.apply(nil, initial)

	var zero M
	for step := 0; ; step++ {
		// cancellation check (once per superstep)
		select {
		case <-en.opts.Ctx.Done():
			return nil, en.opts.Ctx.Err()
		default:
		}

		inbox, err := en.scan()
		if err != nil {
			return nil, err
		}
		en.opts.OnSuperstep(step, len(inbox))
		if len(inbox) == 0 {
			// quiescence: no vertex received a message
			return en.states, nil
		}
		if en.opts.MaxSupersteps > 0 && step+1 > en.opts.MaxSupersteps {
			return nil, fmt.Errorf("%w: limit %d", ErrMaxSupersteps, en.opts.MaxSupersteps)
		}
		en.states = en.apply(inbox, zero)
	}
}

// scan runs send over every edge against the current snapshot and folds the
// resulting messages per destination with combine.
func (en *engine[V, E, M]) scan() (map[string]M, error) {
	if en.workers <= 1 || len(en.edges) < en.workers {
		inbox := make(map[string]M)
		for _, e := range en.edges {
			if err := en.scanEdge(e, inbox); err != nil {
				return nil, err
			}
		}
		return inbox, nil
	}

	// Shard edges across workers; each builds a local inbox, then the local
	// inboxes are folded with combine (safe: combine is commutative and
	// associative by contract).
	bounds := chunk(len(en.edges), en.workers)
	locals := make([]map[string]M, len(bounds))
	errs := make([]error, len(bounds))
	var wg sync.WaitGroup
	for w, b := range bounds {
		wg.Add(1)
		go func(w int, lo, hi int) {
			defer wg.Done()
			local := make(map[string]M)
			for _, e := range en.edges[lo:hi] {
				if err := en.scanEdge(e, local); err != nil {
					errs[w] = err
					return
				}
			}
			locals[w] = local
		}(w, b[0], b[1])
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	inbox := locals[0]
	for _, local := range locals[1:] {
		for id, msg := range local {
			if cur, ok := inbox[id]; ok {
				inbox[id] = en.combine(cur, msg)
			} else {
				inbox[id] = msg
			}
		}
	}

	return inbox, nil
}

// scanEdge evaluates send for one edge and folds its messages into inbox.
func (en *engine[V, E, M]) scanEdge(e Edge[E], inbox map[string]M) error {
	t := Triplet[V, E]{
		EdgeID:   e.ID,
		SrcID:    e.From,
		DstID:    e.To,
		SrcAttr:  en.states[e.From],
		DstAttr:  en.states[e.To],
		EdgeAttr: e.Attr,
	}
	for _, m := range en.send(t) {
		if _, ok := en.states[m.To]; !ok {
			return fmt.Errorf("%w: %q (sent along edge %q)", ErrUnknownVertex, m.To, e.ID)
		}
		if cur, ok := inbox[m.To]; ok {
			inbox[m.To] = en.combine(cur, m.Value)
		} else {
			inbox[m.To] = m.Value
		}
	}

	return nil
}

// apply builds the next snapshot by merging each vertex's inbox entry
// (fallback for absentees) into its previous state.
func (en *engine[V, E, M]) apply(inbox map[string]M, fallback M) map[string]V {
	next := make(map[string]V, len(en.states))
	if en.workers <= 1 || len(en.states) < en.workers {
		for id, st := range en.states {
			msg, ok := inbox[id]
			if !ok {
				msg = fallback
			}
			next[id] = en.merge(id, st, msg)
		}
		return next
	}

	ids := make([]string, 0, len(en.states))
	for id := range en.states {
		ids = append(ids, id)
	}
	bounds := chunk(len(ids), en.workers)
	locals := make([]map[string]V, len(bounds))
	var wg sync.WaitGroup
	for w, b := range bounds {
		wg.Add(1)
		go func(w int, lo, hi int) {
			defer wg.Done()
			local := make(map[string]V, hi-lo)
			for _, id := range ids[lo:hi] {
				msg, ok := inbox[id]
				if !ok {
					msg = fallback
				}
				local[id] = en.merge(id, en.states[id], msg)
			}
			locals[w] = local
		}(w, b[0], b[1])
	}
	wg.Wait()
	for _, local := range locals {
		for id, st := range local {
			next[id] = st
		}
	}

	return next
}

// chunk splits n items into at most parts contiguous [lo, hi) ranges.
func chunk(n, parts int) [][2]int {
	if parts > n {
		parts = n
	}
	out := make([][2]int, 0, parts)
	size := n / parts
	rem := n % parts
	lo := 0
	for i := 0; i < parts; i++ {
		hi := lo + size
		if i < rem {
			hi++
		}
		out = append(out, [2]int{lo, hi})
		lo = hi
	}

	return out
}
