// Package core: thread-safe Graph method implementations.
//
// Operations on vertices and edges are O(1) amortized thanks to the nested
// adjacency map adjacencyList[from][to][edgeID] = struct{}{}. Separate
// RWMutex locks for vertices (muVert) and edges+adjacency (muEdgeAdj)
// minimize contention.

package core

import (
	"fmt"
	"sort"
	"sync/atomic"
)

const edgeIDPrefix = "e"

// AddVertex inserts a new vertex with the given ID and attribute.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists this is a no-op and the original attribute
// is kept (idempotent).
// Complexity: O(1) amortized.
func (g *Graph[V, E]) AddVertex(id string, attr V) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil // no-op for existing vertex
	}
	g.vertices[id] = &Vertex[V]{ID: id, Attr: attr}

	// Initialize adjacencyList entry for this vertex (lazy map-of-maps)
	g.muEdgeAdj.Lock()
	g.ensureAdjID(id)
	g.muEdgeAdj.Unlock()

	return nil
}

// SetVertexAttr replaces the attribute of an existing vertex.
// Returns ErrEmptyVertexID or ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph[V, E]) SetVertexAttr(id string, attr V) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, exists := g.vertices[id]
	if !exists {
		return ErrVertexNotFound
	}
	v.Attr = attr

	return nil
}

// VertexAttr returns the attribute of the vertex with the given ID.
// Returns ErrEmptyVertexID or ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph[V, E]) VertexAttr(id string) (V, error) {
	var zero V
	if id == "" {
		return zero, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, exists := g.vertices[id]
	if !exists {
		return zero, ErrVertexNotFound
	}

	return v.Attr, nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph[V, E]) HasVertex(id string) bool {
	if id == "" {
		return false // empty ID considered absent
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// RemoveVertex deletes the vertex and all incident edges from the graph.
// Returns ErrEmptyVertexID if id is empty, ErrVertexNotFound otherwise.
// Complexity: O(E) worst case (scan of incident edges).
func (g *Graph[V, E]) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}
	for eid, e := range g.edges {
		if e.From == id || e.To == id {
			g.removeEdgeFromAdj(eid, e)
			delete(g.edges, eid)
		}
	}
	delete(g.vertices, id)
	delete(g.adjacencyList, id)

	return nil
}

// AddEdge creates a new directed edge From→To with the given attribute and
// returns its unique Edge.ID. Missing endpoints are created with the zero
// vertex attribute. Loop and multi-edge policy is enforced per the
// construction options.
//
// Returns ErrEmptyVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph[V, E]) AddEdge(from, to string, attr E) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	// Ensure both endpoints exist (idempotent)
	var zero V
	if err := g.AddVertex(from, zero); err != nil {
		return "", err
	}
	if err := g.AddVertex(to, zero); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti {
		if inner, ok := g.adjacencyList[from][to]; ok && len(inner) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	eid := fmt.Sprintf("%s%d", edgeIDPrefix, atomic.AddUint64(&g.nextEdgeID, 1))
	g.edges[eid] = &Edge[E]{ID: eid, From: from, To: to, Attr: attr}

	g.ensureAdjMap(from, to)
	g.adjacencyList[from][to][eid] = struct{}{}

	return eid, nil
}

// RemoveEdge deletes the edge with the given ID from the graph.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph[V, E]) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	g.removeEdgeFromAdj(eid, e)

	return nil
}

// EdgeByID returns the edge with the given ID.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph[V, E]) EdgeByID(eid string) (*Edge[E], error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// HasEdge reports true if at least one edge from 'from' to 'to' exists.
// Complexity: O(1).
func (g *Graph[V, E]) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if inner, ok := g.adjacencyList[from][to]; ok && len(inner) > 0 {
		return true
	}

	return false
}

// OutEdges returns all outgoing edges of vertex 'id',
// sorted by Edge.ID for determinism.
// Complexity: O(d log d), where d is the out-degree.
func (g *Graph[V, E]) OutEdges(id string) ([]*Edge[E], error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.muVert.RUnlock()
		return nil, ErrVertexNotFound
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var out []*Edge[E]
	for _, edgeSet := range g.adjacencyList[id] {
		for eid := range edgeSet {
			out = append(out, g.edges[eid])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the IDs of all direct successors of id, sorted.
// Complexity: O(d log d)
func (g *Graph[V, E]) NeighborIDs(id string) ([]string, error) {
	edges, err := g.OutEdges(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		seen[e.To] = struct{}{}
	}
	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// Edges returns all edges sorted by their ID.
// Complexity: O(E log E)
func (g *Graph[V, E]) Edges() []*Edge[E] {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge[E], 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V log V)
func (g *Graph[V, E]) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexAttrs returns a snapshot map from vertex ID to attribute.
// Complexity: O(V)
func (g *Graph[V, E]) VertexAttrs() map[string]V {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make(map[string]V, len(g.vertices))
	for id, v := range g.vertices {
		out[id] = v.Attr
	}

	return out
}

// Degree returns the in- and out-degree of id.
// Complexity: O(E)
func (g *Graph[V, E]) Degree(id string) (in, out int, err error) {
	if !g.HasVertex(id) {
		if id == "" {
			return 0, 0, ErrEmptyVertexID
		}
		return 0, 0, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for _, e := range g.edges {
		if e.From == id {
			out++
		}
		if e.To == id {
			in++
		}
	}

	return in, out, nil
}

// EdgeCount returns total number of edges. O(1).
func (g *Graph[V, E]) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// VertexCount returns total number of vertices. O(1).
func (g *Graph[V, E]) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Looped reports whether self-loops are permitted by policy.
func (g *Graph[V, E]) Looped() bool {
	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted by policy.
func (g *Graph[V, E]) Multigraph() bool {
	return g.allowMulti
}

// CloneEmpty returns a new Graph with identical configuration and vertices,
// but no edges. Attributes are shallow-copied.
// Complexity: O(V)
func (g *Graph[V, E]) CloneEmpty() *Graph[V, E] {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	var opts []Option
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	clone := NewGraph[V, E](opts...)
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex[V]{ID: v.ID, Attr: v.Attr}
		clone.adjacencyList[id] = make(map[string]map[string]struct{})
	}

	return clone
}

// Clone returns a deep copy of the Graph structure: configuration, vertices,
// edges, and adjacency. Attribute values are shallow-copied.
// Complexity: O(V + E)
func (g *Graph[V, E]) Clone() *Graph[V, E] {
	clone := g.CloneEmpty()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for eid, e := range g.edges {
		clone.edges[eid] = &Edge[E]{ID: eid, From: e.From, To: e.To, Attr: e.Attr}
		clone.ensureAdjMap(e.From, e.To)
		clone.adjacencyList[e.From][e.To][eid] = struct{}{}
	}
	clone.nextEdgeID = atomic.LoadUint64(&g.nextEdgeID)

	return clone
}

// Clear resets the graph to the empty state but preserves policy flags.
func (g *Graph[V, E]) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	g.vertices = make(map[string]*Vertex[V])
	g.edges = make(map[string]*Edge[E])
	g.adjacencyList = make(map[string]map[string]map[string]struct{})
	atomic.StoreUint64(&g.nextEdgeID, 0)
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()
}

// Internal helper methods:
////////////////////

// ensureAdjID makes adjacencyList[id] non-nil.
func (g *Graph[V, E]) ensureAdjID(id string) {
	if _, ok := g.adjacencyList[id]; !ok {
		g.adjacencyList[id] = make(map[string]map[string]struct{})
	}
}

// ensureAdjMap ensures adjacencyList[from][to] is initialized.
func (g *Graph[V, E]) ensureAdjMap(from, to string) {
	g.ensureAdjID(from)
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// removeEdgeFromAdj deletes eid from the adjacency bucket, pruning empty maps.
func (g *Graph[V, E]) removeEdgeFromAdj(eid string, e *Edge[E]) {
	if m := g.adjacencyList[e.From][e.To]; m != nil {
		delete(m, eid)
		if len(m) == 0 {
			delete(g.adjacencyList[e.From], e.To)
		}
	}
}
