// Package pathmatch: the pattern model — per-step edge predicates with a
// direction requirement, evaluated against edge triplets.
package pathmatch

// Predicate decides whether one edge satisfies one pattern step, given the
// original (input-graph) attributes of both endpoints and of the edge.
// Predicates must be pure: they may run concurrently for disjoint edges.
type Predicate[V, E any] func(src, dst V, edge E) bool

// TripletPattern is one step of a path pattern: an edge predicate plus the
// side of the edge the step must be evaluated from. The zero value accepts
// every edge, evaluated standing at the source.
//
// TripletPattern values are shared immutably by every partial match derived
// from the same pattern; never mutate a pattern mid-run.
type TripletPattern[V, E any] struct {
	// Predicate constrains the edge; nil accepts every edge.
	Predicate Predicate[V, E]

	// MatchDstFirst selects the vertex the step is evaluated from:
	// false — the match must be standing at the edge's source and moves to
	// the destination; true — standing at the destination, moving to the
	// source.
	MatchDstFirst bool
}

// Triplet is the read-only edge view patterns are evaluated against:
// endpoint IDs and original attributes plus the edge's own ID and attribute.
type Triplet[V, E any] struct {
	SrcID  string
	DstID  string
	EdgeID string

	SrcAttr V
	DstAttr V

	EdgeAttr E
}

// Matches reports whether this pattern step accepts the edge when evaluated
// standing at currentID: currentID must be the triplet's source
// (MatchDstFirst false) or destination (MatchDstFirst true), and the
// predicate must hold. No side effects.
func (p TripletPattern[V, E]) Matches(currentID string, t Triplet[V, E]) bool {
	if p.MatchDstFirst {
		if currentID != t.DstID {
			return false
		}
	} else if currentID != t.SrcID {
		return false
	}
	if p.Predicate == nil {
		return true
	}

	return p.Predicate(t.SrcAttr, t.DstAttr, t.EdgeAttr)
}
