package prim_kruskal_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/constellation/prim_kruskal"
	"github.com/stretchr/testify/assert"
)

// TestUnionFind_Basics covers union, find, sizes and set counting.
func TestUnionFind_Basics(t *testing.T) {
	uf := prim_kruskal.NewUnionFind([]string{"a", "b", "c", "d", "a"})
	assert.Equal(t, 4, uf.Sets())

	assert.True(t, uf.Union("a", "b"))
	assert.True(t, uf.Union("c", "d"))
	assert.False(t, uf.Union("b", "a"), "already joined")
	assert.Equal(t, 2, uf.Sets())
	assert.True(t, uf.Connected("a", "b"))
	assert.False(t, uf.Connected("a", "c"))

	assert.True(t, uf.Union("b", "d"))
	assert.Equal(t, 1, uf.Sets())
	assert.Equal(t, 4, uf.Size("c"))
	assert.Equal(t, 4, uf.Largest())
}

// TestUnionFind_LongChain exercises the iterative find on a deep chain.
func TestUnionFind_LongChain(t *testing.T) {
	const n = 100000
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("n%d", i)
	}
	uf := prim_kruskal.NewUnionFind(ids)
	for i := 1; i < n; i++ {
		uf.Union(ids[i-1], ids[i])
	}

	root := uf.Find(ids[n-1])
	for _, id := range ids {
		assert.Equal(t, root, uf.Find(id))
	}
	assert.Equal(t, n, uf.Size(ids[0]))
}

// TestUnionFind_LazyAdd verifies unknown IDs become singletons on Find.
func TestUnionFind_LazyAdd(t *testing.T) {
	uf := prim_kruskal.NewUnionFind(nil)
	assert.False(t, uf.Has("x"))
	assert.Equal(t, "x", uf.Find("x"))
	assert.True(t, uf.Has("x"))
	assert.Equal(t, 1, uf.Sets())
}
