package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/constellation/dfs"
)

func TestDetectCycles_NilGraph(t *testing.T) {
	has, cycles, err := dfs.DetectCycles(nil)
	assert.NoError(t, err)
	assert.False(t, has)
	assert.Nil(t, cycles)
}

func TestDetectCycles_Tree(t *testing.T) {
	g := buildBinaryTree(t, 4)

	has, cycles, err := dfs.DetectCycles(g)
	assert.NoError(t, err)
	assert.False(t, has)
	assert.Empty(t, cycles)
	assert.NoError(t, dfs.Acyclic(g))
}

func TestDetectCycles_Forest(t *testing.T) {
	g := buildGraph(t, [][2]string{{"A", "B"}, {"C", "D"}, {"D", "E"}}, "F")
	assert.NoError(t, dfs.Acyclic(g))
}

func TestDetectCycles_Triangle(t *testing.T) {
	g := buildGraph(t, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}})

	has, cycles, err := dfs.DetectCycles(g)
	assert.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, [][]string{{"A", "B", "C", "A"}}, cycles)
}

func TestDetectCycles_SquareWithChord(t *testing.T) {
	// A-B-C-D-A plus the chord A-C.
	g := buildGraph(t, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}, {"A", "C"}})

	has, cycles, err := dfs.DetectCycles(g)
	assert.NoError(t, err)
	assert.True(t, has)
	// One cycle per back edge (the cycle rank E − V + 1 = 2).
	assert.Equal(t, [][]string{
		{"A", "B", "C", "A"},
		{"A", "B", "C", "D", "A"},
	}, cycles)

	err = dfs.Acyclic(g)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
	assert.ErrorContains(t, err, "A,B,C,A")
}

func TestDetectCycles_CycleInSecondComponent(t *testing.T) {
	g := buildGraph(t, [][2]string{{"A", "B"}, {"X", "Y"}, {"Y", "Z"}, {"Z", "X"}})

	has, cycles, err := dfs.DetectCycles(g)
	assert.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, [][]string{{"X", "Y", "Z", "X"}}, cycles)
}

func TestMinimalRotation(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "C"}, dfs.MinimalRotation([]string{"B", "C", "A"}))
	assert.Equal(t, []string{"A", "A", "B"}, dfs.MinimalRotation([]string{"A", "B", "A"}))

	in := []string{"C", "A", "B"}
	_ = dfs.MinimalRotation(in)
	assert.Equal(t, []string{"C", "A", "B"}, in, "input must not be modified")
}
