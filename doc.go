// Package lvlpath discovers directed paths in attributed graphs that match
// an ordered sequence of edge constraints, and collapses every discovery
// into a single synthetic edge of a result graph.
//
// 🚀 What is lvlpath?
//
//	A thread-safe, zero-dependency library built from three small pieces:
//		• core/      — generic attributed directed multigraph (Graph[V, E])
//		• pregel/    — a synchronous bulk-synchronous-parallel (BSP) substrate:
//		               supersteps, message combining, quiescence detection
//		• pathmatch/ — the path-pattern matcher: triplet patterns, partial
//		               matches, and extraction of the merged-edge result graph
//	plus builder/ — generators (Chain, Cycle, Complete, Star) for quickly
//	assembling attributed test topologies.
//
// ✨ Why choose lvlpath?
//
//   - Declarative path queries — describe a walk as a list of edge
//     predicates with per-step direction, get back every matching path
//   - Deterministic — sorted iteration everywhere; reproducible results
//   - Pure Go — no cgo, no hidden deps
//   - Extensible — functional options, superstep hooks, pluggable vertex
//     programs on the pregel substrate
//
// Quick ASCII example:
//
//	A ──▶ B ──▶ C        pattern of two accept-all steps
//
// yields a result graph with vertices {A, C} (original attributes kept) and
// one edge C→A labeled "mergedEdge" — one synthetic edge per discovered
// path, oriented end→start.
//
//	g := core.NewGraph[string, int]()
//	g.AddEdge("A", "B", 1)
//	g.AddEdge("B", "C", 2)
//	any := pathmatch.TripletPattern[string, int]{} // nil predicate = accept all
//	out, err := pathmatch.Match(g, []pathmatch.TripletPattern[string, int]{any, any})
//
// Start with pathmatch.Match, drop down to pregel.Run when you need your own
// vertex program, and reach for builder when wiring up topologies by hand
// gets tedious.
//
//	go get github.com/katalvlaran/lvlpath
package lvlpath
