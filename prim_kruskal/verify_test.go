package prim_kruskal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/constellation/core"
	"github.com/katalvlaran/constellation/prim_kruskal"
)

func TestVerify_AcceptsBothStrategies(t *testing.T) {
	for _, g := range []*core.Graph{buildDiamond(t), buildTwoIslands(t)} {
		for _, m := range []prim_kruskal.Method{prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal} {
			res, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(m))
			require.NoError(t, err)
			assert.NoError(t, prim_kruskal.Verify(g, res), m)
		}
	}
}

func TestVerify_Rejects(t *testing.T) {
	g := buildDiamond(t)
	good, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)

	clone := func() *prim_kruskal.Result {
		c := *good
		c.Edges = append([]core.Edge(nil), good.Edges...)
		c.Visited = append([]string(nil), good.Visited...)
		return &c
	}

	cyclic := clone()
	cyclic.Edges = append(cyclic.Edges, core.NewEdge("A", "D", 3))
	cyclic.TotalWeight += 3
	assert.ErrorIs(t, prim_kruskal.Verify(g, cyclic), prim_kruskal.ErrInvalidForest)

	foreign := clone()
	foreign.Edges[0] = core.NewEdge("A", "Z", 1)
	assert.ErrorIs(t, prim_kruskal.Verify(g, foreign), prim_kruskal.ErrInvalidForest)

	reweighted := clone()
	reweighted.Edges[0].Weight = 42
	assert.ErrorIs(t, prim_kruskal.Verify(g, reweighted), prim_kruskal.ErrInvalidForest)

	total := clone()
	total.TotalWeight = 1
	assert.ErrorIs(t, prim_kruskal.Verify(g, total), prim_kruskal.ErrInvalidForest)

	trees := clone()
	trees.Trees = 2
	assert.ErrorIs(t, prim_kruskal.Verify(g, trees), prim_kruskal.ErrInvalidForest)

	assert.ErrorIs(t, prim_kruskal.Verify(nil, good), prim_kruskal.ErrNilGraph)
	assert.ErrorIs(t, prim_kruskal.Verify(g, nil), prim_kruskal.ErrInvalidForest)
}

func TestResult_Forest(t *testing.T) {
	res, err := prim_kruskal.Kruskal(buildTwoIslands(t))
	require.NoError(t, err)

	forest, err := res.Forest()
	require.NoError(t, err)
	assert.Equal(t, 4, forest.Len())
	assert.Equal(t, 2, forest.EdgeCount())
}
