package dfs_test

import (
	"testing"

	"github.com/katalvlaran/constellation/dfs"
)

// BenchmarkDFS_Chain10000 measures DFS on a 10,000-node path N0-N1-…-N9999.
// The graph is built once; each iteration is a full O(V + E) traversal.
func BenchmarkDFS_Chain10000(b *testing.B) {
	g := buildChain(b, 10000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, "N0")
	}
}

// BenchmarkDetectCycles_Chain10000 measures cycle detection on the same path.
func BenchmarkDetectCycles_Chain10000(b *testing.B) {
	g := buildChain(b, 10000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _, _ = dfs.DetectCycles(g)
	}
}
