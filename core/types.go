// This file declares Vertex, Edge, Graph, the construction Options,
// sentinel errors, and the NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph; Attr is the
// caller-supplied attribute payload.
type Vertex[V any] struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Attr is the vertex attribute. Not deep-copied by Clone.
	Attr V
}

// Edge represents a directed connection From→To between two vertices.
type Edge[E any] struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Attr is the edge attribute. Not deep-copied by Clone.
	Attr E
}

// Option configures behavior of a Graph before creation.
// Options are non-generic so they can be shared across instantiations.
type Option func(*config)

// config collects construction-time policy flags.
type config struct {
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() Option {
	return func(c *config) { c.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() Option {
	return func(c *config) { c.allowLoops = true }
}

// Graph is the core in-memory attributed directed graph.
//
// All edges are directed From→To. Parallel edges and self-loops are
// rejected unless enabled at construction time.
// muVert protects vertices; muEdgeAdj protects edges and adjacency.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph[V, E any] struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration flags, immutable after construction.
	allowMulti bool
	allowLoops bool

	// Storage
	nextEdgeID uint64                // atomic edge ID generator
	vertices   map[string]*Vertex[V] // vertex ID → Vertex
	edges      map[string]*Edge[E]   // edge ID → Edge

	// adjacencyList[(from)Vertex.ID][(to)Vertex.ID][Edge.ID] = struct{}{}
	adjacencyList map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph rejects self-loops and parallel edges.
// Complexity: O(1)
func NewGraph[V, E any](opts ...Option) *Graph[V, E] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[V, E]{
		allowMulti:    cfg.allowMulti,
		allowLoops:    cfg.allowLoops,
		vertices:      make(map[string]*Vertex[V]),
		edges:         make(map[string]*Edge[E]),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
}
