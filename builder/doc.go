// Package builder generates common attributed topologies over core.Graph:
// chains, cycles, complete digraphs, and stars.
//
// What
//
//   - Chain(n): N0→N1→…→N(n-1)
//   - Cycle(n): a directed ring over n vertices
//   - Complete(n): every ordered pair (u, v), u ≠ v
//   - Star(n): center N0 with edges N0→N1 … N0→Nn
//
// Attributes are supplied through callbacks (nil callbacks produce zero
// attributes), so the same shape can carry any payload:
//
//	g, err := builder.Chain(5,
//	    func(i int, id string) string { return "v" + id },
//	    func(from, to string) int { return 1 },
//	)
//
// Vertex IDs are "N0", "N1", … in construction order, so edge IDs are
// deterministic ("e1", "e2", …).
//
// Errors
//
//   - ErrTooFewVertices if n is below the shape's minimum
//     (Chain ≥ 1, Cycle ≥ 3, Complete ≥ 2, Star ≥ 1 leaf).
package builder
