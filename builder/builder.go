// Package builder: shape constructors for attributed directed graphs.
package builder

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvlpath/core"
)

// ErrTooFewVertices indicates a shape was requested below its minimum size.
var ErrTooFewVertices = errors.New("builder: too few vertices for shape")

// vertexIDPrefix is prepended to the running index to form vertex IDs.
const vertexIDPrefix = "N"

// VertexAttrFunc produces the attribute of the i-th vertex (ID id).
type VertexAttrFunc[V any] func(i int, id string) V

// EdgeAttrFunc produces the attribute of the edge from→to.
type EdgeAttrFunc[E any] func(from, to string) E

// vertexID formats the i-th vertex ID.
func vertexID(i int) string {
	return vertexIDPrefix + strconv.Itoa(i)
}

// addVertices inserts n vertices N0…N(n-1) with attributes from vattr.
func addVertices[V, E any](g *core.Graph[V, E], n int, vattr VertexAttrFunc[V]) error {
	var zero V
	for i := 0; i < n; i++ {
		id := vertexID(i)
		attr := zero
		if vattr != nil {
			attr = vattr(i, id)
		}
		if err := g.AddVertex(id, attr); err != nil {
			return err
		}
	}

	return nil
}

// addEdge inserts one edge with an attribute from eattr.
func addEdge[V, E any](g *core.Graph[V, E], from, to string, eattr EdgeAttrFunc[E]) error {
	var attr E
	if eattr != nil {
		attr = eattr(from, to)
	}
	_, err := g.AddEdge(from, to, attr)

	return err
}

// Chain builds the directed path N0→N1→…→N(n-1).
// Requires n ≥ 1; n == 1 yields a single isolated vertex.
// Complexity: O(n)
func Chain[V, E any](n int, vattr VertexAttrFunc[V], eattr EdgeAttrFunc[E], opts ...core.Option) (*core.Graph[V, E], error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: Chain needs n ≥ 1, got %d", ErrTooFewVertices, n)
	}
	g := core.NewGraph[V, E](opts...)
	if err := addVertices(g, n, vattr); err != nil {
		return nil, err
	}
	for i := 0; i < n-1; i++ {
		if err := addEdge(g, vertexID(i), vertexID(i+1), eattr); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Cycle builds the directed ring N0→N1→…→N(n-1)→N0.
// Requires n ≥ 3 (smaller rings degenerate into loops or parallel edges).
// Complexity: O(n)
func Cycle[V, E any](n int, vattr VertexAttrFunc[V], eattr EdgeAttrFunc[E], opts ...core.Option) (*core.Graph[V, E], error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: Cycle needs n ≥ 3, got %d", ErrTooFewVertices, n)
	}
	g := core.NewGraph[V, E](opts...)
	if err := addVertices(g, n, vattr); err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err := addEdge(g, vertexID(i), vertexID((i+1)%n), eattr); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Complete builds the complete digraph on n vertices: one edge per ordered
// pair (u, v) with u ≠ v.
// Requires n ≥ 2.
// Complexity: O(n²)
func Complete[V, E any](n int, vattr VertexAttrFunc[V], eattr EdgeAttrFunc[E], opts ...core.Option) (*core.Graph[V, E], error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: Complete needs n ≥ 2, got %d", ErrTooFewVertices, n)
	}
	g := core.NewGraph[V, E](opts...)
	if err := addVertices(g, n, vattr); err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if err := addEdge(g, vertexID(i), vertexID(j), eattr); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// Star builds a center N0 with n leaves and edges N0→N1 … N0→Nn.
// Requires n ≥ 1 leaf.
// Complexity: O(n)
func Star[V, E any](n int, vattr VertexAttrFunc[V], eattr EdgeAttrFunc[E], opts ...core.Option) (*core.Graph[V, E], error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: Star needs n ≥ 1 leaves, got %d", ErrTooFewVertices, n)
	}
	g := core.NewGraph[V, E](opts...)
	if err := addVertices(g, n+1, vattr); err != nil {
		return nil, err
	}
	for i := 1; i <= n; i++ {
		if err := addEdge(g, vertexID(0), vertexID(i), eattr); err != nil {
			return nil, err
		}
	}

	return g, nil
}
