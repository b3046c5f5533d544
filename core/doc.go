// Package core provides a generic, attributed, directed multigraph:
// vertices carry an attribute of type V, edges an attribute of type E.
//
// What
//
//   - Graph[V, E] — thread-safe directed graph with attributed vertices
//     and edges, optional self-loops (WithLoops) and parallel edges
//     (WithMultiEdges).
//   - Edge IDs are generated atomically ("e1", "e2", …) and returned by
//     AddEdge; all bulk accessors (Edges, Vertices, OutEdges, NeighborIDs)
//     return results in sorted order for reproducibility.
//   - AddVertex is idempotent: re-adding an existing ID is a no-op and the
//     original attribute is kept. AddEdge creates missing endpoints with the
//     zero attribute.
//
// Why
//
//   - Algorithms over attributed graphs (pattern matching, vertex programs)
//     need per-vertex and per-edge payloads, not just weights.
//   - Deterministic iteration keeps downstream computations reproducible.
//
// Concurrency
//
//	Two sync.RWMutex locks guard the graph internally (muVert for vertices,
//	muEdgeAdj for edges and adjacency), so concurrent readers and writers
//	are safe with minimal contention. Attribute values themselves are
//	treated as immutable payloads; mutate them only through SetVertexAttr.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - AddVertex / AddEdge / HasVertex / HasEdge: O(1) amortized
//   - OutEdges(id): O(d log d) for out-degree d
//   - Edges / Vertices: O(E log E) / O(V log V)
//
// Errors
//
//   - ErrEmptyVertexID     — vertex ID is the empty string.
//   - ErrVertexNotFound    — requested vertex does not exist.
//   - ErrEdgeNotFound      — requested edge does not exist.
//   - ErrLoopNotAllowed    — self-loop when loops are disabled.
//   - ErrMultiEdgeNotAllowed — parallel edge when multi-edges are disabled.
package core
