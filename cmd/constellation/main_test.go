package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/constellation/bfs"
	"github.com/katalvlaran/constellation/core"
)

// Scaled 12 × 10: A-C 10, A-B 12, B-C ~15.62 (closes a cycle), C-D 150.
const triangleDataset = `nodes:
  - {id: A, name: Alpha, category: language, x: 0, y: 0, neighbors: [B, C]}
  - {id: B, name: Bravo, category: framework, x: 1, y: 0, neighbors: [C]}
  - {id: C, name: Charlie, category: tool, x: 0, y: 1, neighbors: [D]}
  - {id: D, name: Delta, category: concept, x: 10, y: 10}
`

const fastConfig = `log_level = "error"

[delays.prim]
[delays.kruskal]
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// run executes the CLI with args and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestEdges(t *testing.T) {
	ds := writeFile(t, "triangle.yaml", triangleDataset)
	out, err := run(t, "edges", "--dataset", ds, "-c", writeFile(t, "c.toml", fastConfig))
	require.NoError(t, err)

	assert.Contains(t, out, "4 edges, 4 nodes, 1 components")
	assert.Less(t, bytes.Index([]byte(out), []byte("A-C")), bytes.Index([]byte(out), []byte("A-B")))
	assert.Less(t, bytes.Index([]byte(out), []byte("A-B")), bytes.Index([]byte(out), []byte("B-C")))

	out, err = run(t, "edges", "--dataset", ds, "--node", "C")
	require.NoError(t, err)
	assert.Contains(t, out, "3 edges")

	_, err = run(t, "edges", "--dataset", ds, "--node", "Z")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestEdges_WithinHops(t *testing.T) {
	ds := writeFile(t, "triangle.yaml", triangleDataset)

	out, err := run(t, "edges", "--dataset", ds, "--node", "A", "--depth", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "B-C")
	assert.NotContains(t, out, "C-D")
	assert.Contains(t, out, "hop 0: A")
	assert.Contains(t, out, "hop 1: B C")
	assert.Contains(t, out, "3 edges")

	out, err = run(t, "edges", "--dataset", ds, "--node", "A", "--depth", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "hop 2: D")
	assert.Contains(t, out, "4 edges")

	out, err = run(t, "edges", "--dataset", ds, "--node", "D", "--depth", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "0 edges")

	_, err = run(t, "edges", "--dataset", ds, "--node", "A", "--depth", "-2")
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = run(t, "edges", "--dataset", ds, "--depth", "1")
	assert.Error(t, err)

	_, err = run(t, "edges", "--dataset", ds, "--node", "Z", "--depth", "1")
	assert.ErrorIs(t, err, bfs.ErrStartNodeNotFound)
}

func TestPath(t *testing.T) {
	ds := writeFile(t, "triangle.yaml", triangleDataset+"  - {id: E, name: Echo, category: concept, x: 5, y: 5}\n")

	out, err := run(t, "path", "A", "D", "--dataset", ds)
	require.NoError(t, err)
	assert.Contains(t, out, "-> C")
	assert.Contains(t, out, "-> D")
	assert.NotContains(t, out, "-> B")
	assert.Contains(t, out, "2 hops, weight 160.00")

	out, err = run(t, "path", "B", "B", "--dataset", ds)
	require.NoError(t, err)
	assert.Contains(t, out, "0 hops, weight 0.00")

	_, err = run(t, "path", "A", "E", "--dataset", ds)
	assert.ErrorIs(t, err, bfs.ErrUnreachable)

	_, err = run(t, "path", "A", "Z", "--dataset", ds)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	_, err = run(t, "path", "Z", "A", "--dataset", ds)
	assert.ErrorIs(t, err, bfs.ErrStartNodeNotFound)

	_, err = run(t, "path", "A", "--dataset", ds)
	assert.Error(t, err)
}

func TestMST_Tree(t *testing.T) {
	ds := writeFile(t, "triangle.yaml", triangleDataset)

	out, err := run(t, "mst", "--dataset", ds, "--method", "prim", "--root", "A", "--tree")
	require.NoError(t, err)
	assert.Contains(t, out, "\n  B 12.00\n")
	assert.Contains(t, out, "\n  C 10.00\n")
	assert.Contains(t, out, "\n    D 150.00\n")

	out, err = run(t, "mst", "--dataset", ds, "--method", "prim", "--root", "A", "--tree", "--depth", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "\n  C 10.00\n")
	assert.NotContains(t, out, "    D 150.00")
}

func TestMST_TreePerComponent(t *testing.T) {
	ds := writeFile(t, "triangle.yaml", triangleDataset+"  - {id: E, name: Echo, category: concept, x: 5, y: 5}\n")

	out, err := run(t, "mst", "--dataset", ds, "--method", "prim", "--root", "A", "--tree", "--depth", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "MST covers 4 of 5 nodes (2 trees)")
	// D is below the limit but belongs to A's tree, so it never roots one.
	assert.Contains(t, out, "\nA\n")
	assert.Contains(t, out, "\nE\n")
	assert.NotContains(t, out, "\nD\n")
}

func TestMST(t *testing.T) {
	ds := writeFile(t, "triangle.yaml", triangleDataset)
	for _, m := range []string{"prim", "kruskal"} {
		out, err := run(t, "mst", "--dataset", ds, "--method", m, "--steps")
		require.NoError(t, err)
		assert.Contains(t, out, "total weight: 172.00")
		assert.Contains(t, out, "MST covers 4 of 4 nodes")
		assert.Contains(t, out, "consider")
	}

	_, err := run(t, "mst", "--method", "boruvka")
	assert.Error(t, err)
}

func TestMST_Builtin(t *testing.T) {
	out, err := run(t, "mst", "--method", "prim")
	require.NoError(t, err)
	assert.Contains(t, out, "root: ts")
	assert.Contains(t, out, "MST covers 11 of 27 nodes (6 trees)")

	out, err = run(t, "mst", "--method", "prim", "--single-tree")
	require.NoError(t, err)
	assert.Contains(t, out, "MST covers 10 of 27 nodes")
}

func TestPlay(t *testing.T) {
	cfg := writeFile(t, "c.toml", fastConfig)
	ds := writeFile(t, "triangle.yaml", triangleDataset)
	out, err := run(t, "play", "-c", cfg, "--dataset", ds, "--method", "kruskal")
	require.NoError(t, err)
	assert.Contains(t, out, "Kruskal's algorithm")
	assert.Contains(t, out, "Time: O(E log E) | Space: O(V)")
	assert.Contains(t, out, "accepted")
	assert.Contains(t, out, "rejected")
	assert.Contains(t, out, "total weight: 172.00")

	_, err = run(t, "play", "-c", cfg, "--speed", "0")
	assert.Error(t, err)
}

func TestCompare(t *testing.T) {
	out, err := run(t, "compare")
	require.NoError(t, err)
	assert.Contains(t, out, "Prim's algorithm")
	assert.Contains(t, out, "Kruskal's algorithm")
	assert.Contains(t, out, "weights agree")
}

func TestSkills(t *testing.T) {
	out, err := run(t, "skills", "--used-in")
	require.NoError(t, err)
	for _, want := range []string{"LANGUAGE", "FRAMEWORK", "TOOL", "CONCEPT", "TypeScript", "projects:"} {
		assert.Contains(t, out, want)
	}
	lang := bytes.Index([]byte(out), []byte("LANGUAGE"))
	concept := bytes.Index([]byte(out), []byte("CONCEPT"))
	assert.Less(t, lang, concept)
}

func TestBadConfig(t *testing.T) {
	_, err := run(t, "edges", "-c", writeFile(t, "c.toml", `strategy = "boruvka"`))
	assert.Error(t, err)
}

func TestLayout(t *testing.T) {
	out, err := run(t, "mst", "--layout", "path:4+cycle:3", "--method", "kruskal")
	require.NoError(t, err)
	assert.Contains(t, out, "MST covers 4 of 7 nodes (2 trees)")

	out, err = run(t, "edges", "--layout", "grid:2x2")
	require.NoError(t, err)
	assert.Contains(t, out, "4 edges, 4 nodes, 1 components")

	out, err = run(t, "compare", "--layout", "random:15:0.3", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "weights agree")

	_, err = run(t, "mst", "--layout", "torus:3")
	assert.Error(t, err)

	_, err = run(t, "mst", "--layout", "cycle:3", "--dataset", writeFile(t, "t.yaml", triangleDataset))
	assert.Error(t, err)
}
