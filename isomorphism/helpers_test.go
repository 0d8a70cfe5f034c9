package isomorphism_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lviso/builder"
	"github.com/katalvlaran/lviso/core"
	"github.com/katalvlaran/lviso/isomorphism"
)

// mustBuild runs builder constructors on an undirected graph.
func mustBuild(t testing.TB, bopts []builder.BuilderOption, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, bopts, cons...)
	require.NoError(t, err)

	return g
}

// edges builds a graph from "u-v" pairs.
func edges(t testing.TB, directed bool, pairs ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed))
	for _, p := range pairs {
		_, err := g.AddEdge(p[0], p[1], 0)
		require.NoError(t, err)
	}

	return g
}

func count(t testing.TB, g1, g2 *core.Graph, opts ...isomorphism.Option) int {
	t.Helper()
	in, err := isomorphism.NewInspector(g1, g2, opts...)
	require.NoError(t, err)
	n, err := in.Count(0)
	require.NoError(t, err)

	return n
}

// requireValid checks that gm is injective, total and structure-preserving for mode.
func requireValid(t testing.TB, g1, g2 *core.Graph, gm *isomorphism.GraphMapping, mode isomorphism.Mode) {
	t.Helper()
	ids := g1.Vertices()
	require.Equal(t, len(ids), gm.Len())
	seen := make(map[string]bool, len(ids))
	for _, u := range ids {
		c, ok := gm.Forward(u)
		require.True(t, ok, "vertex %s unmapped", u)
		require.False(t, seen[c], "image %s used twice", c)
		seen[c] = true
		back, ok := gm.Backward(c)
		require.True(t, ok)
		require.Equal(t, u, back)
	}
	for _, u := range ids {
		for _, v := range ids {
			fu, _ := gm.Forward(u)
			fv, _ := gm.Forward(v)
			d, img := g1.HasEdge(u, v), g2.HasEdge(fu, fv)
			if mode == isomorphism.ModeSubgraph {
				require.True(t, !d || img, "edge %s→%s lost", u, v)
			} else {
				require.Equal(t, d, img, "pair %s,%s", u, v)
			}
		}
	}
}
