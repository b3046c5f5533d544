package pregel_test

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/pregel"
)

// ExampleRunGraph propagates the maximum vertex value through a small
// triangle until every vertex agrees.
//
//	A(1) ──▶ B(5) ──▶ C(3) ──▶ A
func ExampleRunGraph() {
	g := core.NewGraph[int, struct{}]()
	g.AddVertex("A", 1)
	g.AddVertex("B", 5)
	g.AddVertex("C", 3)
	g.AddEdge("A", "B", struct{}{})
	g.AddEdge("B", "C", struct{}{})
	g.AddEdge("C", "A", struct{}{})

	merge := func(_ string, state, msg int) int {
		if msg > state {
			return msg
		}
		return state
	}
	send := func(t pregel.Triplet[int, struct{}]) []pregel.Message[int] {
		if t.SrcAttr > t.DstAttr {
			return []pregel.Message[int]{{To: t.DstID, Value: t.SrcAttr}}
		}
		return nil
	}
	combine := func(a, b int) int {
		if a > b {
			return a
		}
		return b
	}

	final, _ := pregel.RunGraph(g, 0, merge, send, combine)
	for _, id := range []string{"A", "B", "C"} {
		fmt.Println(id, final[id])
	}
	// Output:
	// A 5
	// B 5
	// C 5
}
