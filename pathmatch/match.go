// Package pathmatch: match representation — one matched edge, a completed
// path, and the partial (in-progress) match extended superstep by superstep.
package pathmatch

import "strings"

// keySep separates edge IDs inside a matched-history key.
const keySep = '\x1f'

// TripletMatch is an immutable record of one matched edge.
type TripletMatch[E any] struct {
	// SrcID and DstID are the matched edge's endpoints in the input graph.
	SrcID string
	DstID string

	// EdgeID identifies the matched edge in the input graph.
	EdgeID string

	// Attr is the matched edge's attribute.
	Attr E
}

// PathMatch is a completed path: matched edges in traversal (chronological)
// order. A zero-length PathMatch arises only from the empty pattern.
type PathMatch[E any] []TripletMatch[E]

// Len returns the number of matched edges.
func (m PathMatch[E]) Len() int { return len(m) }

// StartID returns the path's start vertex: the first edge's source.
// Panics with ErrZeroLengthMatch on a zero-length path.
func (m PathMatch[E]) StartID() string {
	if len(m) == 0 {
		panic(ErrZeroLengthMatch)
	}

	return m[0].SrcID
}

// EndID returns the path's end vertex: the last edge's destination.
// Panics with ErrZeroLengthMatch on a zero-length path.
func (m PathMatch[E]) EndID() string {
	if len(m) == 0 {
		panic(ErrZeroLengthMatch)
	}

	return m[len(m)-1].DstID
}

// PartialMatch is an in-progress match: the edges matched so far plus the
// pattern suffix still to satisfy. Values are immutable; extension returns
// a new PartialMatch.
//
// matched is stored in reverse traversal order (most recently matched edge
// first) so that extension is a cheap prepend; remaining always aliases a
// suffix of the original pattern slice, so
// len(matched) + len(remaining) == len(pattern) holds throughout.
type PartialMatch[V, E any] struct {
	matched   []TripletMatch[E]
	remaining []TripletPattern[V, E]
}

// newPartialMatch returns the empty "still-at-start" seed for a pattern.
func newPartialMatch[V, E any](pattern []TripletPattern[V, E]) PartialMatch[V, E] {
	return PartialMatch[V, E]{remaining: pattern}
}

// Complete reports whether every pattern step has been satisfied.
func (p PartialMatch[V, E]) Complete() bool { return len(p.remaining) == 0 }

// MatchedLen returns the number of edges matched so far.
func (p PartialMatch[V, E]) MatchedLen() int { return len(p.matched) }

// RemainingLen returns the number of pattern steps still to satisfy.
func (p PartialMatch[V, E]) RemainingLen() int { return len(p.remaining) }

// StartID returns the start vertex of the completed path: the source of the
// chronologically first matched edge.
// Panics with ErrIncompleteMatch if the match is incomplete, and with
// ErrZeroLengthMatch if no edge was matched (the zero-length start is the
// holding vertex, which the match itself cannot know).
func (p PartialMatch[V, E]) StartID() string {
	if !p.Complete() {
		panic(ErrIncompleteMatch)
	}
	if len(p.matched) == 0 {
		panic(ErrZeroLengthMatch)
	}
	// matched is reversed, so its last element is the first edge traversed.
	return p.matched[len(p.matched)-1].SrcID
}

// Path returns the completed path in traversal order.
// Panics with ErrIncompleteMatch if the match is incomplete.
func (p PartialMatch[V, E]) Path() PathMatch[E] {
	if !p.Complete() {
		panic(ErrIncompleteMatch)
	}
	out := make(PathMatch[E], len(p.matched))
	for i, tm := range p.matched {
		out[len(p.matched)-1-i] = tm
	}

	return out
}

// tryMatch attempts to extend the match across one edge while standing at
// currentID. Only the head of remaining is consulted. On success it returns
// the extended match; otherwise ok is false — a non-matching edge is a
// normal negative result, not an error. A complete match never extends.
func (p PartialMatch[V, E]) tryMatch(currentID string, t Triplet[V, E]) (next PartialMatch[V, E], ok bool) {
	if p.Complete() {
		return next, false
	}
	if !p.remaining[0].Matches(currentID, t) {
		return next, false
	}
	matched := make([]TripletMatch[E], 0, len(p.matched)+1)
	matched = append(matched, TripletMatch[E]{
		SrcID:  t.SrcID,
		DstID:  t.DstID,
		EdgeID: t.EdgeID,
		Attr:   t.EdgeAttr,
	})
	matched = append(matched, p.matched...)

	return PartialMatch[V, E]{matched: matched, remaining: p.remaining[1:]}, true
}

// key returns the dedup key of the matched history: the ordered sequence of
// matched edge IDs. Within one input graph an edge ID determines its
// endpoints and attribute, so key equality is exactly matched-sequence
// equality. The empty seed has the empty key.
func (p PartialMatch[V, E]) key() string {
	var b strings.Builder
	for i, tm := range p.matched {
		if i > 0 {
			b.WriteByte(keySep)
		}
		b.WriteString(tm.EdgeID)
	}

	return b.String()
}
