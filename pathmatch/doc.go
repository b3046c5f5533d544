// Package pathmatch discovers every directed path in an attributed graph
// that satisfies an ordered sequence of edge constraints (a "path pattern"),
// and materializes each discovery as a single merged edge of a result graph.
//
// What
//
//   - A pattern is a fixed-length []TripletPattern: per step, an edge
//     predicate over (source attribute, destination attribute, edge
//     attribute) plus a direction flag. With MatchDstFirst false the step
//     is evaluated standing at the edge's source and the match moves to the
//     destination; with true it is evaluated standing at the destination
//     and moves to the source.
//   - Match runs the pattern to a fixed point on the pregel substrate and
//     returns a result graph: one vertex per path endpoint (original
//     attribute preserved) and one edge per discovered path, oriented
//     end→start and labeled with the merge label ("mergedEdge" by default).
//   - Paths returns the discoveries as full PathMatch values keyed by end
//     vertex instead of collapsing them into merged edges.
//
// How
//
//	Every vertex holds a set of partial matches "standing at" it, keyed by
//	their matched-edge history. Each superstep tries to extend every partial
//	across every incident edge; a successful extension travels to the
//	opposite endpoint. A candidate already held by its destination is
//	dropped, which both suppresses redundant traffic and guarantees
//	termination: the computation quiesces within len(pattern) supersteps.
//	Extension against a non-matching edge is a normal negative result, not
//	an error.
//
// Edge cases
//
//   - Empty pattern: every vertex is a zero-length match with itself as
//     both endpoints; the result graph carries every vertex and one
//     self-loop per vertex.
//   - Empty graph: empty result graph.
//   - Never-matching predicate: result graph has no vertices and no edges —
//     vertices of incomplete in-progress matches are dropped.
//   - Two distinct paths may share endpoints; the result graph is built
//     with multi-edges and loops enabled to hold one edge per path.
//
// Determinism
//
//	Extraction walks vertices and match histories in sorted order, so the
//	result graph's edge IDs are reproducible run to run (with the default
//	sequential execution; see pregel.WithWorkers).
//
// Complexity (V = |Vertices|, E = |Edges|, N = pattern length)
//
//   - Supersteps: at most N message-producing rounds.
//   - Per superstep: O(E · P) extension attempts, where P bounds the
//     partials held per vertex (itself bounded by the number of distinct
//     walks of length ≤ N).
//
// Usage
//
//	labeled := func(want string) pathmatch.Predicate[string, string] {
//	    return func(_, _ string, edge string) bool { return edge == want }
//	}
//	pattern := []pathmatch.TripletPattern[string, string]{
//	    {Predicate: labeled("follows")},
//	    {Predicate: labeled("follows")},
//	}
//	out, err := pathmatch.Match(g, pattern,
//	    pathmatch.WithMergeLabel("follows2"),
//	    pathmatch.WithContext(ctx),
//	)
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrOptionViolation  if an invalid Option is supplied (empty merge
//     label, negative workers or superstep limit).
//   - pregel errors (cancellation, pregel.ErrMaxSupersteps) pass through.
//   - PartialMatch.Path and PartialMatch.StartID panic with
//     ErrIncompleteMatch on an incomplete match — asking for the result of
//     an unfinished match is a programming error, never a silent wrong
//     value.
package pathmatch
