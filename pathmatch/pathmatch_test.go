package pathmatch_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/builder"
	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/pathmatch"
	"github.com/katalvlaran/lvlpath/pregel"
)

// anyStep is a pattern step accepting every edge, evaluated at the source.
func anyStep() pathmatch.TripletPattern[string, string] {
	return pathmatch.TripletPattern[string, string]{}
}

// labelStep accepts edges with the given attribute, evaluated at the source
// (dstFirst false) or at the destination (dstFirst true).
func labelStep(label string, dstFirst bool) pathmatch.TripletPattern[string, string] {
	return pathmatch.TripletPattern[string, string]{
		Predicate:     func(_, _, edge string) bool { return edge == label },
		MatchDstFirst: dstFirst,
	}
}

// chainABC builds A→B→C with distinct vertex and edge attributes.
func chainABC(t *testing.T) *core.Graph[string, string] {
	t.Helper()
	g := core.NewGraph[string, string]()
	require.NoError(t, g.AddVertex("A", "attrA"))
	require.NoError(t, g.AddVertex("B", "attrB"))
	require.NoError(t, g.AddVertex("C", "attrC"))
	_, err := g.AddEdge("A", "B", "x")
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", "y")
	require.NoError(t, err)

	return g
}

// diamond builds A→B, A→C, B→D, C→D.
func diamond(t *testing.T) *core.Graph[string, string] {
	t.Helper()
	g := core.NewGraph[string, string]()
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}} {
		_, err := g.AddEdge(e[0], e[1], e[0]+e[1])
		require.NoError(t, err)
	}

	return g
}

func TestMatch_NilGraph(t *testing.T) {
	_, err := pathmatch.Match[string, string](nil, []pathmatch.TripletPattern[string, string]{anyStep()})
	assert.ErrorIs(t, err, pathmatch.ErrGraphNil)

	_, err = pathmatch.Paths[string, string](nil, nil)
	assert.ErrorIs(t, err, pathmatch.ErrGraphNil)
}

func TestMatch_OptionViolations(t *testing.T) {
	g := chainABC(t)
	pattern := []pathmatch.TripletPattern[string, string]{anyStep()}

	for name, opt := range map[string]pathmatch.Option{
		"empty merge label":       pathmatch.WithMergeLabel(""),
		"negative workers":        pathmatch.WithWorkers(-1),
		"negative max supersteps": pathmatch.WithMaxSupersteps(-3),
	} {
		_, err := pathmatch.Match(g, pattern, opt)
		assert.ErrorIs(t, err, pathmatch.ErrOptionViolation, name)
		_, err = pathmatch.Paths(g, pattern, opt)
		assert.ErrorIs(t, err, pathmatch.ErrOptionViolation, name)
	}
}

// Two unconstrained source-first steps over A→B→C: the single match is
// A→B→C, surfaced as one merged edge C→A. The midpoint B is not part of
// the result.
func TestMatch_ChainLengthTwo(t *testing.T) {
	g := chainABC(t)
	pattern := []pathmatch.TripletPattern[string, string]{anyStep(), anyStep()}

	out, err := pathmatch.Match(g, pattern)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"A", "C"}, out.Vertices())
	assert.Equal(t, 1, out.EdgeCount())
	assert.True(t, out.HasEdge("C", "A"), "merged edge runs end→start")

	edges := out.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, pathmatch.DefaultMergeLabel, edges[0].Attr)

	attrA, err := out.VertexAttr("A")
	require.NoError(t, err)
	assert.Equal(t, "attrA", attrA, "endpoints keep their original attributes")
	attrC, err := out.VertexAttr("C")
	require.NoError(t, err)
	assert.Equal(t, "attrC", attrC)
}

func TestMatch_EmptyGraph(t *testing.T) {
	g := core.NewGraph[string, string]()
	out, err := pathmatch.Match(g, []pathmatch.TripletPattern[string, string]{anyStep()})
	require.NoError(t, err)
	assert.Equal(t, 0, out.VertexCount())
	assert.Equal(t, 0, out.EdgeCount())
}

func TestMatch_NeverMatchingPredicate(t *testing.T) {
	g := chainABC(t)
	deny := pathmatch.TripletPattern[string, string]{
		Predicate: func(_, _, _ string) bool { return false },
	}

	out, err := pathmatch.Match(g, []pathmatch.TripletPattern[string, string]{deny})
	require.NoError(t, err)
	assert.Equal(t, 0, out.VertexCount(), "vertices without a completed match are dropped")
	assert.Equal(t, 0, out.EdgeCount())
}

// The empty pattern matches the zero-length path at every vertex: the
// result carries every vertex and one merged self-loop each.
func TestMatch_EmptyPattern(t *testing.T) {
	g := chainABC(t)

	out, err := pathmatch.Match(g, nil)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"A", "B", "C"}, out.Vertices())
	assert.Equal(t, 3, out.EdgeCount())
	for _, id := range []string{"A", "B", "C"} {
		assert.True(t, out.HasEdge(id, id))
	}
	attrB, err := out.VertexAttr("B")
	require.NoError(t, err)
	assert.Equal(t, "attrB", attrB)
}

// A dst-first step walks an edge against its direction. With A→B labeled
// "x" and C→B labeled "y", the pattern ["x" at src, "y" at dst] matches
// exactly A→B, then B back along C→B: the path ends at C and starts at A.
func TestMatch_DstFirst(t *testing.T) {
	g := core.NewGraph[string, string]()
	_, err := g.AddEdge("A", "B", "x")
	require.NoError(t, err)
	_, err = g.AddEdge("C", "B", "y")
	require.NoError(t, err)

	pattern := []pathmatch.TripletPattern[string, string]{
		labelStep("x", false),
		labelStep("y", true),
	}
	out, err := pathmatch.Match(g, pattern)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"A", "C"}, out.Vertices())
	assert.Equal(t, 1, out.EdgeCount())
	assert.True(t, out.HasEdge("C", "A"))
}

// Two parallel paths A→B→D and A→C→D produce two merged edges D→A; the
// result graph is a multigraph, so both survive.
func TestMatch_ParallelPaths(t *testing.T) {
	g := diamond(t)
	pattern := []pathmatch.TripletPattern[string, string]{anyStep(), anyStep()}

	out, err := pathmatch.Match(g, pattern)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"A", "D"}, out.Vertices())
	assert.Equal(t, 2, out.EdgeCount())
	assert.True(t, out.HasEdge("D", "A"))
}

func TestMatch_AttributePredicate(t *testing.T) {
	chain, err := builder.Chain(3,
		func(i int, _ string) int { return i * 10 },
		func(_, _ string) int { return 1 },
	)
	require.NoError(t, err)

	ascending := pathmatch.TripletPattern[int, int]{
		Predicate: func(src, dst, _ int) bool { return src < dst },
	}
	out, err := pathmatch.Match(chain, []pathmatch.TripletPattern[int, int]{ascending, ascending})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"N0", "N2"}, out.Vertices())
	assert.True(t, out.HasEdge("N2", "N0"))

	attr, err := out.VertexAttr("N2")
	require.NoError(t, err)
	assert.Equal(t, 20, attr, "result carries input-graph attributes")
}

func TestMatch_MergeLabel(t *testing.T) {
	g := chainABC(t)
	pattern := []pathmatch.TripletPattern[string, string]{anyStep(), anyStep()}

	out, err := pathmatch.Match(g, pattern, pathmatch.WithMergeLabel("follows"))
	require.NoError(t, err)

	edges := out.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, "follows", edges[0].Attr)
}

// A self-loop satisfies a length-2 pattern by traversing itself twice;
// identical histories reached from both edge sides collapse to one match.
func TestMatch_SelfLoop(t *testing.T) {
	g := core.NewGraph[string, string](core.WithLoops())
	require.NoError(t, g.AddVertex("A", "attrA"))
	_, err := g.AddEdge("A", "A", "loop")
	require.NoError(t, err)

	out, err := pathmatch.Match(g, []pathmatch.TripletPattern[string, string]{anyStep(), anyStep()})
	require.NoError(t, err)

	assert.Equal(t, []string{"A"}, out.Vertices())
	assert.Equal(t, 1, out.EdgeCount(), "one history, one merged edge")
	assert.True(t, out.HasEdge("A", "A"))
}

// The computation quiesces within len(pattern) message-producing
// supersteps; a limit one below that aborts.
func TestMatch_Termination(t *testing.T) {
	g := chainABC(t)
	pattern := []pathmatch.TripletPattern[string, string]{anyStep(), anyStep()}

	_, err := pathmatch.Match(g, pattern, pathmatch.WithMaxSupersteps(len(pattern)))
	assert.NoError(t, err)

	_, err = pathmatch.Match(g, pattern, pathmatch.WithMaxSupersteps(len(pattern)-1))
	assert.ErrorIs(t, err, pregel.ErrMaxSupersteps)
}

func TestMatch_Cancellation(t *testing.T) {
	g := chainABC(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pathmatch.Match(g,
		[]pathmatch.TripletPattern[string, string]{anyStep()},
		pathmatch.WithContext(ctx),
	)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMatch_WorkersEquivalence(t *testing.T) {
	g := diamond(t)
	pattern := []pathmatch.TripletPattern[string, string]{anyStep(), anyStep()}

	seq, err := pathmatch.Match(g, pattern, pathmatch.WithWorkers(1))
	require.NoError(t, err)
	par, err := pathmatch.Match(g, pattern, pathmatch.WithWorkers(8))
	require.NoError(t, err)

	assert.Equal(t, seq.Vertices(), par.Vertices())
	assert.Equal(t, seq.Edges(), par.Edges())
}

func TestPaths_ChainOrdering(t *testing.T) {
	g := chainABC(t)
	pattern := []pathmatch.TripletPattern[string, string]{anyStep(), anyStep()}

	got, err := pathmatch.Paths(g, pattern)
	require.NoError(t, err)

	require.Len(t, got, 1, "only the end vertex C holds a completed match")
	paths := got["C"]
	require.Len(t, paths, 1)

	p := paths[0]
	require.Equal(t, 2, p.Len())
	assert.Equal(t, "A", p.StartID())
	assert.Equal(t, "C", p.EndID())
	assert.Equal(t, "e1", p[0].EdgeID, "chronological order")
	assert.Equal(t, "e2", p[1].EdgeID)
	assert.Equal(t, "x", p[0].Attr)
	assert.Equal(t, "B", p[0].DstID)
	assert.Equal(t, p[0].DstID, p[1].SrcID, "consecutive edges share a vertex")
}

// Every length-2 walk of the complete digraph on 3 vertices is found:
// 6 ordered pairs × 2 continuations = 12 walks, 4 ending at each vertex.
func TestPaths_Completeness(t *testing.T) {
	g, err := builder.Complete[struct{}, struct{}](3, nil, nil)
	require.NoError(t, err)

	pattern := make([]pathmatch.TripletPattern[struct{}, struct{}], 2)
	got, err := pathmatch.Paths(g, pattern)
	require.NoError(t, err)

	total := 0
	for end, paths := range got {
		assert.Len(t, paths, 4, "end %s", end)
		for _, p := range paths {
			require.Equal(t, 2, p.Len())
			assert.Equal(t, end, p.EndID())
			assert.Equal(t, p[0].DstID, p[1].SrcID)
			assert.True(t, g.HasEdge(p[0].SrcID, p[0].DstID))
			assert.True(t, g.HasEdge(p[1].SrcID, p[1].DstID))
		}
		total += len(paths)
	}
	assert.Equal(t, 12, total)
}

func TestPaths_EmptyPattern(t *testing.T) {
	g := chainABC(t)

	got, err := pathmatch.Paths[string, string](g, nil)
	require.NoError(t, err)

	require.Len(t, got, 3)
	for _, id := range []string{"A", "B", "C"} {
		require.Len(t, got[id], 1)
		assert.Equal(t, 0, got[id][0].Len())
	}
}
