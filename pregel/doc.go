// Package pregel provides a synchronous bulk-synchronous-parallel (BSP)
// substrate for vertex programs: iterate supersteps over a fixed topology
// until no vertex receives a message.
//
// What
//
//   - Run executes a vertex program given as three callbacks:
//   - merge  — folds the combined incoming message into a vertex state
//   - send   — inspects one edge triplet and emits messages to vertex IDs
//   - combine — reduces two messages addressed to the same vertex
//   - Superstep 0 delivers the initial message to every vertex through
//     merge. Each later superstep scans all edges with send, combines the
//     messages per destination, and — if any message was produced — applies
//     merge uniformly to every vertex. Vertices that received nothing are
//     handed the zero value of the message type M.
//   - Messages sent during superstep i are visible only at superstep i+1:
//     each superstep builds a fresh state snapshot, never mutating the one
//     send is reading.
//   - The run halts when a superstep produces no messages (quiescence), the
//     context is cancelled, or WithMaxSupersteps is exceeded.
//
// Why
//
//   - Fixed-point graph computations (label propagation, reachability,
//     path-pattern matching) are naturally expressed as vertex programs.
//   - The barrier between supersteps makes them correct under arbitrary
//     processing order — provided combine is commutative, associative, and
//     idempotent, which this package requires.
//
// Determinism
//
//	With WithWorkers(1) (the default) edges are scanned in slice order and
//	messages are combined in emission order, so a deterministic program sees
//	fully reproducible supersteps. With more workers, messages may be
//	combined in a different order between runs; programs whose combine is
//	commutative/associative/idempotent observe identical final states.
//
// Complexity (V = |Vertices|, E = |Edges|, S = supersteps to quiescence)
//
//   - Time:   O(S · (V + E)) plus the cost of the callbacks
//   - Memory: O(V) per superstep for the fresh state snapshot and inbox
//
// Usage
//
//	final, err := pregel.Run(vertices, edges, initialMsg,
//	    mergeFn, sendFn, combineFn,
//	    pregel.WithContext(ctx),
//	    pregel.WithMaxSupersteps(50),
//	    pregel.WithOnSuperstep(func(step, messages int) { /* ... */ }),
//	)
//
// RunGraph adapts a core.Graph[V, E] whose vertex attribute doubles as the
// program state.
//
// Errors
//
//   - ErrGraphNil        if RunGraph receives a nil graph.
//   - ErrNilProgram      if merge, send, or combine is nil.
//   - ErrDanglingEdge    if an edge references a vertex absent from the map.
//   - ErrUnknownVertex   if send addresses a message to a non-existent ID.
//   - ErrOptionViolation if an invalid Option is supplied.
//   - ErrMaxSupersteps   if the limit is hit before quiescence.
//   - Context errors when cancelled between supersteps.
package pregel
