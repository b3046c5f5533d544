// Package pathmatch: the fixed-point driver — vertex run state, the three
// superstep callbacks handed to pregel, and extraction of the result graph.
package pathmatch

import (
	"sort"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/pregel"
)

// vstate is the per-vertex run state: the vertex's original attribute plus
// the set of partial matches currently standing at the vertex, keyed by
// matched history so that identical histories collapse to one entry.
type vstate[V, E any] struct {
	attr     V
	partials map[string]PartialMatch[V, E]
}

// matchSet is the message type: a set of partial matches keyed by history.
// The zero value (nil map) is the empty message.
type matchSet[V, E any] map[string]PartialMatch[V, E]

// Match discovers every path of g satisfying pattern and returns the result
// graph: one vertex per path endpoint carrying its original attribute, and
// one edge per discovered path, oriented end→start and labeled with the
// merge label. Vertices touched only by incomplete matches are dropped.
//
// An empty pattern is the documented degenerate case: every vertex is a
// zero-length match, so the result carries every vertex with one self-loop.
//
// Returns ErrGraphNil, ErrOptionViolation, or a pregel/context error.
// Complexity: at most len(pattern) supersteps over O(E) edges each.
func Match[V, E any](g *core.Graph[V, E], pattern []TripletPattern[V, E], opts ...Option) (*core.Graph[V, string], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	out := core.NewGraph[V, string](core.WithLoops(), core.WithMultiEdges())

	if len(pattern) == 0 {
		// Zero-length path at every vertex: self-referential merged edges.
		for _, id := range g.Vertices() {
			attr, err := g.VertexAttr(id)
			if err != nil {
				return nil, err
			}
			if err = out.AddVertex(id, attr); err != nil {
				return nil, err
			}
			if _, err = out.AddEdge(id, id, o.MergeLabel); err != nil {
				return nil, err
			}
		}
		return out, nil
	}

	final, err := run(g, pattern, o)
	if err != nil {
		return nil, err
	}

	// Extraction: one merged edge per completed partial, end→start.
	// Sorted iteration keeps the result graph's edge IDs reproducible.
	for _, end := range sortedKeys(final) {
		st := final[end]
		for _, k := range sortedKeys(st.partials) {
			p := st.partials[k]
			if !p.Complete() {
				continue
			}
			start := p.StartID()
			if err = out.AddVertex(end, st.attr); err != nil {
				return nil, err
			}
			if err = out.AddVertex(start, final[start].attr); err != nil {
				return nil, err
			}
			if _, err = out.AddEdge(end, start, o.MergeLabel); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// Paths discovers every path of g satisfying pattern and returns the full
// matches, keyed by end vertex, each in traversal order. End vertices with
// no completed match are absent from the map. The empty pattern yields one
// zero-length PathMatch per vertex.
//
// Returns ErrGraphNil, ErrOptionViolation, or a pregel/context error.
func Paths[V, E any](g *core.Graph[V, E], pattern []TripletPattern[V, E], opts ...Option) (map[string][]PathMatch[E], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if len(pattern) == 0 {
		out := make(map[string][]PathMatch[E], g.VertexCount())
		for _, id := range g.Vertices() {
			out[id] = []PathMatch[E]{{}}
		}
		return out, nil
	}

	final, err := run(g, pattern, o)
	if err != nil {
		return nil, err
	}

	out := make(map[string][]PathMatch[E])
	for id, st := range final {
		var paths []PathMatch[E]
		for _, k := range sortedKeys(st.partials) {
			if p := st.partials[k]; p.Complete() {
				paths = append(paths, p.Path())
			}
		}
		if len(paths) > 0 {
			out[id] = paths
		}
	}

	return out, nil
}

// run executes the pattern to quiescence on the pregel substrate and
// returns the final per-vertex state.
//
// Vertices start with no partials; the initial message broadcasts the empty
// "still-at-start" seed to every vertex, so superstep 0's merge plants it
// everywhere. Every later merge drops zero-length partials from the
// previous state (the seed must not re-seed each superstep, or the
// computation never converges) and unions the incoming extensions.
func run[V, E any](g *core.Graph[V, E], pattern []TripletPattern[V, E], o Options) (map[string]vstate[V, E], error) {
	vertices := make(map[string]vstate[V, E], g.VertexCount())
	for id, attr := range g.VertexAttrs() {
		vertices[id] = vstate[V, E]{attr: attr, partials: nil}
	}

	src := g.Edges()
	edges := make([]pregel.Edge[E], len(src))
	for i, e := range src {
		edges[i] = pregel.Edge[E]{ID: e.ID, From: e.From, To: e.To, Attr: e.Attr}
	}

	seed := newPartialMatch(pattern)
	initial := matchSet[V, E]{seed.key(): seed}

	return pregel.Run(vertices, edges, initial,
		mergeState[V, E], sendExtensions[V, E], unionSets[V, E],
		pregel.WithContext(o.Ctx),
		pregel.WithWorkers(o.Workers),
		pregel.WithMaxSupersteps(o.MaxSupersteps),
	)
}

// mergeState is the vertex-merge callback: retain previous partials that
// matched at least one edge, union the incoming set. It is the only writer
// of vertex state and runs once per vertex per superstep.
func mergeState[V, E any](_ string, st vstate[V, E], msg matchSet[V, E]) vstate[V, E] {
	next := vstate[V, E]{
		attr:     st.attr,
		partials: make(map[string]PartialMatch[V, E], len(st.partials)+len(msg)),
	}
	for k, p := range st.partials {
		if p.MatchedLen() > 0 {
			next.partials[k] = p
		}
	}
	for k, p := range msg {
		next.partials[k] = p
	}

	return next
}

// sendExtensions is the message-generation callback, run per edge per
// superstep: extend every partial standing at the source (evaluated
// standing-at-source, candidates travel to the destination) and every
// partial standing at the destination (evaluated standing-at-destination,
// candidates travel to the source). Candidates whose history the receiving
// side already holds are dropped. At most one message per side per edge.
func sendExtensions[V, E any](t pregel.Triplet[vstate[V, E], E]) []pregel.Message[matchSet[V, E]] {
	view := Triplet[V, E]{
		SrcID:    t.SrcID,
		DstID:    t.DstID,
		EdgeID:   t.EdgeID,
		SrcAttr:  t.SrcAttr.attr,
		DstAttr:  t.DstAttr.attr,
		EdgeAttr: t.EdgeAttr,
	}

	var msgs []pregel.Message[matchSet[V, E]]
	if ext := extendSide(t.SrcAttr.partials, t.SrcID, view, t.DstAttr.partials); len(ext) > 0 {
		msgs = append(msgs, pregel.Message[matchSet[V, E]]{To: t.DstID, Value: ext})
	}
	if ext := extendSide(t.DstAttr.partials, t.DstID, view, t.SrcAttr.partials); len(ext) > 0 {
		msgs = append(msgs, pregel.Message[matchSet[V, E]]{To: t.SrcID, Value: ext})
	}

	return msgs
}

// extendSide extends every partial held on one side of the edge, dropping
// candidates the receiving side already holds.
func extendSide[V, E any](held map[string]PartialMatch[V, E], standingAt string, view Triplet[V, E], receiverHeld map[string]PartialMatch[V, E]) matchSet[V, E] {
	var out matchSet[V, E]
	for _, p := range held {
		ext, ok := p.tryMatch(standingAt, view)
		if !ok {
			continue
		}
		k := ext.key()
		if _, dup := receiverHeld[k]; dup {
			continue
		}
		if out == nil {
			out = make(matchSet[V, E])
		}
		out[k] = ext
	}

	return out
}

// unionSets is the message-reduction callback: set union, which is
// commutative, associative, and idempotent as the substrate requires.
func unionSets[V, E any](a, b matchSet[V, E]) matchSet[V, E] {
	if a == nil {
		return b
	}
	for k, p := range b {
		a[k] = p
	}

	return a
}

// sortedKeys returns the map's keys in sorted order.
func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
