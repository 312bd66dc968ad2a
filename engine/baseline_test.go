package engine

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveBaseline_Trivial(t *testing.T) {
	g := trivialGraph(t)
	dist, pred := newBuffers(1)

	info, err := SolveBaseline(context.Background(), g, 0, dist, pred)
	require.NoError(t, err)

	assert.Equal(t, []float32{0}, dist)
	assert.Equal(t, []int32{Sentinel}, pred)
	assert.EqualValues(t, 1, info.Settled)
}

func TestSolveBaseline_Line(t *testing.T) {
	g := lineGraph(t)
	dist, pred := newBuffers(5)

	info, err := SolveBaseline(context.Background(), g, 0, dist, pred)
	require.NoError(t, err)

	assert.Equal(t, []float32{0, 1, 2, 3, 4}, dist)
	assert.Equal(t, []int32{Sentinel, 0, 1, 2, 3}, pred)
	assert.EqualValues(t, 4, info.Relaxations)
}

func TestSolveBaseline_Diamond(t *testing.T) {
	g := diamondGraph(t)
	dist, pred := newBuffers(4)

	_, err := SolveBaseline(context.Background(), g, 0, dist, pred)
	require.NoError(t, err)

	assert.Equal(t, []float32{0, 1, 3, 4}, dist)
	assert.Equal(t, []int32{Sentinel, 0, 1, 2}, pred)
}

func TestSolveBaseline_Unreachable(t *testing.T) {
	g := unreachableGraph(t)
	dist, pred := newBuffers(3)

	_, err := SolveBaseline(context.Background(), g, 0, dist, pred)
	require.NoError(t, err)

	assert.Equal(t, float32(0), dist[0])
	assert.Equal(t, float32(1), dist[1])
	assert.True(t, math.IsInf(float64(dist[2]), 1))
	assert.Equal(t, Sentinel, pred[2])
}

func TestSolveBaseline_SelfLoopAndMultiEdge(t *testing.T) {
	g := selfLoopMultiEdgeGraph(t)
	dist, pred := newBuffers(2)

	_, err := SolveBaseline(context.Background(), g, 0, dist, pred)
	require.NoError(t, err)

	assert.Equal(t, []float32{0, 2}, dist)
	assert.Equal(t, []int32{Sentinel, 0}, pred)
}

func TestSolveBaseline_SourceOutOfRange(t *testing.T) {
	g := lineGraph(t)
	dist, pred := newBuffers(5)

	_, err := SolveBaseline(context.Background(), g, 10, dist, pred)
	require.Error(t, err)
}

func TestSolveBaseline_RelaxationsBoundedByEdgeCount(t *testing.T) {
	// Property 4: relaxation counters never exceed the attempted edge
	// count and are non-negative.
	g := diamondGraph(t)
	dist, pred := newBuffers(4)

	info, err := SolveBaseline(context.Background(), g, 0, dist, pred)
	require.NoError(t, err)
	assert.LessOrEqual(t, info.Relaxations, uint64(g.M()))
}
