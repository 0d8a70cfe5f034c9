package isomorphism_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lviso/builder"
	"github.com/katalvlaran/lviso/core"
	"github.com/katalvlaran/lviso/isomorphism"
)

func TestNewInspector_Errors(t *testing.T) {
	t.Parallel()

	g := mustBuild(t, nil, builder.Path(2))
	var typedNil *core.Graph

	_, err := isomorphism.NewInspector(nil, g)
	assert.ErrorIs(t, err, isomorphism.ErrGraphNil)
	_, err = isomorphism.NewInspector(g, typedNil)
	assert.ErrorIs(t, err, isomorphism.ErrGraphNil)

	d := core.NewGraph(core.WithDirected(true))
	_, err = isomorphism.NewInspector(g, d)
	assert.ErrorIs(t, err, isomorphism.ErrDirectionMismatch)

	_, err = isomorphism.NewInspector(g, g, isomorphism.WithMode(isomorphism.Mode(7)))
	assert.ErrorIs(t, err, isomorphism.ErrOptionViolation)
	_, err = isomorphism.NewInspector(g, g, isomorphism.WithOrdering(isomorphism.Ordering(-1)))
	assert.ErrorIs(t, err, isomorphism.ErrOptionViolation)
}

func TestEmptyGraphs_SingleEmptyMapping(t *testing.T) {
	t.Parallel()

	in, err := isomorphism.NewInspector(core.NewGraph(), core.NewGraph())
	require.NoError(t, err)

	ok, err := in.IsomorphismExists()
	require.NoError(t, err)
	assert.True(t, ok)

	c := in.Mappings()
	require.True(t, c.HasNext())
	gm, err := c.Next()
	require.NoError(t, err)
	assert.Equal(t, 0, gm.Len())
	assert.Equal(t, "{}", gm.String())

	assert.False(t, c.HasNext())
	_, err = c.Next()
	assert.ErrorIs(t, err, isomorphism.ErrNoMoreMappings)
	assert.NoError(t, c.Err())
}

func TestSizeMismatch(t *testing.T) {
	t.Parallel()

	g3 := mustBuild(t, nil, builder.Path(3))
	g4 := mustBuild(t, nil, builder.Path(4))

	in, err := isomorphism.NewInspector(g3, g4)
	require.NoError(t, err)
	ok, err := in.IsomorphismExists()
	require.NoError(t, err)
	assert.False(t, ok)
	n, err := in.Count(0)
	require.NoError(t, err)
	assert.Zero(t, n)

	c := in.Mappings()
	assert.False(t, c.HasNext())
	_, err = c.Next()
	assert.ErrorIs(t, err, isomorphism.ErrNoMoreMappings)

	_, err = isomorphism.NewInspector(g3, g4, isomorphism.WithStrictSizes())
	assert.ErrorIs(t, err, isomorphism.ErrSizeMismatch)

	// the pattern fits into the larger target as a subgraph
	_, err = isomorphism.NewInspector(g3, g4, isomorphism.WithStrictSizes(),
		isomorphism.WithMode(isomorphism.ModeSubgraph))
	assert.NoError(t, err)
	_, err = isomorphism.NewInspector(g4, g3, isomorphism.WithStrictSizes(),
		isomorphism.WithMode(isomorphism.ModeSubgraph))
	assert.ErrorIs(t, err, isomorphism.ErrSizeMismatch)

	// same vertex count, different edge count
	c4 := mustBuild(t, nil, builder.Cycle(4))
	assert.Zero(t, count(t, g4, c4))
}

func TestTriangle_SixValidDistinctMappings(t *testing.T) {
	t.Parallel()

	k3 := mustBuild(t, nil, builder.Complete(3))
	in, err := isomorphism.NewInspector(k3, k3)
	require.NoError(t, err)

	seen := make(map[uint64]*isomorphism.GraphMapping)
	for gm := range in.All() {
		requireValid(t, k3, k3, gm, isomorphism.ModeIsomorphism)
		prev, dup := seen[gm.Fingerprint()]
		if dup {
			assert.False(t, prev.Equal(gm), "duplicate mapping %s", gm)
		}
		seen[gm.Fingerprint()] = gm
	}
	assert.Len(t, seen, 6)
}

func TestAutomorphismCounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		want int
	}{
		{"K1", builder.Complete(1), 1},
		{"K4", builder.Complete(4), 24},
		{"K5", builder.Complete(5), 120},
		{"C5", builder.Cycle(5), 10},
		{"C8", builder.Cycle(8), 16},
		{"P2", builder.Path(2), 2},
		{"P6", builder.Path(6), 2},
		{"Star5", builder.Star(5), 24},
		{"Wheel6", builder.Wheel(6), 10},
		{"K2,3", builder.CompleteBipartite(2, 3), 12},
		{"K3,3", builder.CompleteBipartite(3, 3), 72},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := mustBuild(t, nil, tc.ctor)
			for _, ord := range []isomorphism.Ordering{
				isomorphism.OrderDegree, isomorphism.OrderConnectivity, isomorphism.OrderNatural,
			} {
				assert.Equal(t, tc.want, count(t, g, g, isomorphism.WithOrdering(ord)), ord.String())
			}
		})
	}
}

func TestNonIsomorphic_SameDegreeSequence(t *testing.T) {
	t.Parallel()

	c6 := mustBuild(t, nil, builder.Cycle(6))
	twoTriangles := edges(t, false,
		[2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "a"},
		[2]string{"x", "y"}, [2]string{"y", "z"}, [2]string{"z", "x"},
	)

	in, err := isomorphism.NewInspector(c6, twoTriangles)
	require.NoError(t, err)
	ok, err := in.IsomorphismExists()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRelabelledRandomGraphs(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 5; seed++ {
		n := 9
		base := mustBuild(t, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(n, 0.4))
		perm := builder.RandomPermutation(n, seed*31)
		moved := mustBuild(t, []builder.BuilderOption{builder.WithSeed(seed), builder.WithRelabel(perm)},
			builder.RandomSparse(n, 0.4))

		auto := count(t, base, base)
		require.Positive(t, auto)
		for _, ord := range []isomorphism.Ordering{
			isomorphism.OrderDegree, isomorphism.OrderConnectivity, isomorphism.OrderNatural,
		} {
			assert.Equal(t, auto, count(t, base, moved, isomorphism.WithOrdering(ord)),
				"seed %d ordering %s", seed, ord)
		}

		in, err := isomorphism.NewInspector(base, moved)
		require.NoError(t, err)
		for gm := range in.All() {
			requireValid(t, base, moved, gm, isomorphism.ModeIsomorphism)
		}
	}
}

func TestExistsAgreesWithEnumeration(t *testing.T) {
	t.Parallel()

	graphs := map[string]*core.Graph{
		"P4":    mustBuild(t, nil, builder.Path(4)),
		"C4":    mustBuild(t, nil, builder.Cycle(4)),
		"Star4": mustBuild(t, nil, builder.Star(4)),
		"K4":    mustBuild(t, nil, builder.Complete(4)),
		"K1,3":  mustBuild(t, nil, builder.CompleteBipartite(1, 3)),
	}
	for n1, g1 := range graphs {
		for n2, g2 := range graphs {
			in, err := isomorphism.NewInspector(g1, g2)
			require.NoError(t, err)
			ok, err := in.IsomorphismExists()
			require.NoError(t, err)
			n, err := in.Count(0)
			require.NoError(t, err)
			assert.Equal(t, n > 0, ok, "%s vs %s", n1, n2)
		}
	}
}

func TestReproducibleOrder(t *testing.T) {
	t.Parallel()

	g := mustBuild(t, nil, builder.Wheel(5))
	in, err := isomorphism.NewInspector(g, g)
	require.NoError(t, err)

	var first, second []string
	for gm := range in.All() {
		first = append(first, gm.String())
	}
	for gm := range in.All() {
		second = append(second, gm.String())
	}
	assert.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestSubgraphModes(t *testing.T) {
	t.Parallel()

	p3 := mustBuild(t, nil, builder.Path(3))
	k3 := mustBuild(t, nil, builder.Complete(3))
	c4 := mustBuild(t, nil, builder.Cycle(4))
	k2 := mustBuild(t, nil, builder.Path(2))

	sub := isomorphism.WithMode(isomorphism.ModeSubgraph)
	ind := isomorphism.WithMode(isomorphism.ModeInducedSubgraph)

	assert.Equal(t, 6, count(t, p3, k3, sub))
	assert.Zero(t, count(t, p3, k3, ind))
	assert.Equal(t, 8, count(t, p3, c4, sub))
	assert.Equal(t, 8, count(t, p3, c4, ind))
	assert.Equal(t, 8, count(t, k2, c4, sub))

	isolated := core.NewGraph()
	require.NoError(t, isolated.AddVertex("u"))
	require.NoError(t, isolated.AddVertex("v"))
	assert.Equal(t, 6, count(t, isolated, k3, sub))
	assert.Zero(t, count(t, isolated, k3, ind))

	in, err := isomorphism.NewInspector(p3, c4, ind)
	require.NoError(t, err)
	assert.Equal(t, isomorphism.ModeInducedSubgraph, in.Mode())
	for gm := range in.All() {
		requireValid(t, p3, c4, gm, isomorphism.ModeInducedSubgraph)
		keep := make(map[string]bool)
		for _, c := range gm.Image() {
			keep[c] = true
		}
		assert.Len(t, keep, 3)
		assert.Equal(t, 2, count(t, p3, core.InducedSubgraph(c4, keep)), "image %v", gm.Image())
	}
	in, err = isomorphism.NewInspector(p3, k3, sub)
	require.NoError(t, err)
	for gm := range in.All() {
		requireValid(t, p3, k3, gm, isomorphism.ModeSubgraph)
	}
}

func TestDirectedGraphs(t *testing.T) {
	t.Parallel()

	c3 := mustBuild(t, nil, builder.Cycle(3))
	dc3, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil, builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, 6, count(t, c3, c3))
	assert.Equal(t, 3, count(t, dc3, dc3))

	forward := edges(t, true, [2]string{"a", "b"}, [2]string{"b", "c"})
	backward := edges(t, true, [2]string{"z", "y"}, [2]string{"y", "x"})
	in, err := isomorphism.NewInspector(forward, backward)
	require.NoError(t, err)
	c := in.Mappings()
	gm, err := c.Next()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "z", "b": "y", "c": "x"}, gm.Map())
	assert.False(t, c.HasNext())

	// a→b, a→c is not isomorphic to b→a, c→a (out-star vs in-star)
	out := edges(t, true, [2]string{"a", "b"}, [2]string{"a", "c"})
	inStar := edges(t, true, [2]string{"b", "a"}, [2]string{"c", "a"})
	assert.Zero(t, count(t, out, inStar))
}

func TestLoops(t *testing.T) {
	t.Parallel()

	mk := func(loopAt string) *core.Graph {
		g := core.NewGraph(core.WithLoops())
		_, err := g.AddEdge("a", "b", 0)
		require.NoError(t, err)
		_, err = g.AddEdge("b", "c", 0)
		require.NoError(t, err)
		_, err = g.AddEdge(loopAt, loopAt, 0)
		require.NoError(t, err)
		return g
	}
	assert.Equal(t, 2, count(t, mk("b"), mk("b")))
	assert.Equal(t, 1, count(t, mk("a"), mk("c")))
	assert.Zero(t, count(t, mk("a"), mk("b")))
}

func TestVertexLabels(t *testing.T) {
	t.Parallel()

	label := func(g *core.Graph, labels map[string]string) {
		for id, l := range labels {
			require.NoError(t, g.SetVertexLabel(id, l))
		}
	}
	g1 := mustBuild(t, nil, builder.Path(3))
	g2 := mustBuild(t, nil, builder.Path(3))

	label(g1, map[string]string{"0": "x", "1": "y", "2": "x"})
	label(g2, map[string]string{"0": "x", "1": "y", "2": "x"})
	assert.Equal(t, 2, count(t, g1, g2, isomorphism.WithVertexCompatibility(isomorphism.SameVertexLabel(g1, g2))))

	label(g2, map[string]string{"0": "z"})
	label(g1, map[string]string{"2": "z"})
	in, err := isomorphism.NewInspector(g1, g2,
		isomorphism.WithVertexCompatibility(isomorphism.SameVertexLabel(g1, g2)))
	require.NoError(t, err)
	c := in.Mappings()
	gm, err := c.Next()
	require.NoError(t, err)
	assert.Equal(t, "{0→2, 1→1, 2→0}", gm.String())
	assert.False(t, c.HasNext())
}

func TestEdgeWeights(t *testing.T) {
	t.Parallel()

	tri := func(w1, w2, w3 int64) *core.Graph {
		g := core.NewGraph(core.WithWeighted())
		for _, e := range []struct {
			u, v string
			w    int64
		}{{"a", "b", w1}, {"b", "c", w2}, {"c", "a", w3}} {
			_, err := g.AddEdge(e.u, e.v, e.w)
			require.NoError(t, err)
		}
		return g
	}
	byWeight := isomorphism.WithEdgeCompatibility(isomorphism.SameEdgeWeight)

	assert.Equal(t, 6, count(t, tri(1, 2, 3), tri(1, 2, 3)))
	assert.Equal(t, 1, count(t, tri(1, 2, 3), tri(1, 2, 3), byWeight))
	assert.Equal(t, 2, count(t, tri(5, 5, 9), tri(5, 5, 9), byWeight))
	assert.Zero(t, count(t, tri(1, 2, 3), tri(1, 2, 4), byWeight))
}

func TestLazyEnumeration(t *testing.T) {
	t.Parallel()

	g := mustBuild(t, nil, builder.Complete(6))
	calls := 0
	counting := isomorphism.WithVertexCompatibility(func(u, c string) bool {
		calls++
		return true
	})

	in, err := isomorphism.NewInspector(g, g, counting)
	require.NoError(t, err)
	assert.Zero(t, calls, "construction must not search")

	c := in.Mappings()
	require.True(t, c.HasNext())
	assert.Equal(t, 6, calls, "first mapping of K6 needs one accepted candidate per level")
	c.HasNext()
	assert.Equal(t, 6, calls, "HasNext without Next does no further work")
	_, err = c.Next()
	require.NoError(t, err)
	afterFirst := calls
	assert.Equal(t, 1, c.Stats().Mappings)

	// abandon the cursor: nothing runs behind it
	c = nil
	assert.Equal(t, afterFirst, calls)

	total, err := in.Count(0)
	require.NoError(t, err)
	assert.Equal(t, 720, total)
	assert.Greater(t, calls, 10*afterFirst)
}

func TestCountLimit(t *testing.T) {
	t.Parallel()

	g := mustBuild(t, nil, builder.Complete(5))
	in, err := isomorphism.NewInspector(g, g)
	require.NoError(t, err)
	n, err := in.Count(7)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestContextCancellation(t *testing.T) {
	t.Parallel()

	g := mustBuild(t, nil, builder.Complete(8))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in, err := isomorphism.NewInspector(g, g, isomorphism.WithContext(ctx))
	require.NoError(t, err)
	n, err := in.Count(0)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, n, 40320)

	c := in.Mappings()
	for c.HasNext() {
		_, err = c.Next()
		require.NoError(t, err)
	}
	assert.ErrorIs(t, c.Err(), context.Canceled)
	_, err = c.Next()
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStats(t *testing.T) {
	t.Parallel()

	g := mustBuild(t, nil, builder.Cycle(5))
	in, err := isomorphism.NewInspector(g, g)
	require.NoError(t, err)
	c := in.Mappings()
	for c.HasNext() {
		_, err = c.Next()
		require.NoError(t, err)
	}
	s := c.Stats()
	assert.Equal(t, 10, s.Mappings)
	assert.Equal(t, s.Commits, s.Backtracks, "every commitment is undone by exhaustion")
	assert.GreaterOrEqual(t, s.Steps, s.Commits)
}

func TestWithLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	g := mustBuild(t, nil, builder.Path(3))
	in, err := isomorphism.NewInspector(g, g, isomorphism.WithLogger(logger))
	require.NoError(t, err)
	_, err = in.Count(0)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "search started")
	assert.Contains(t, out, "first mapping found")
	assert.Contains(t, out, "search exhausted")
}

func TestModeAndOrderingNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "isomorphism", isomorphism.ModeIsomorphism.String())
	assert.Equal(t, "subgraph", isomorphism.ModeSubgraph.String())
	assert.Equal(t, "induced", isomorphism.ModeInducedSubgraph.String())
	assert.Equal(t, "Mode(9)", isomorphism.Mode(9).String())
	assert.Equal(t, "connectivity", isomorphism.OrderConnectivity.String())
}
