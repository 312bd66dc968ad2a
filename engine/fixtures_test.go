package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// The fixtures below mirror the literal end-to-end scenarios from the
// specification (S1-S6): trivial, line, diamond, unreachable,
// self-loop/multi-edge, and heavy-skewed graphs.

func trivialGraph(t *testing.T) *Graph {
	t.Helper()
	g, err := NewGraph(1, []int32{0, 0}, nil, nil)
	require.NoError(t, err)
	return g
}

func lineGraph(t *testing.T) *Graph {
	t.Helper()
	g, err := NewGraph(5,
		[]int32{0, 1, 2, 3, 4, 4},
		[]int32{1, 2, 3, 4},
		[]float32{1, 1, 1, 1},
	)
	require.NoError(t, err)
	return g
}

func diamondGraph(t *testing.T) *Graph {
	t.Helper()
	g, err := NewGraph(4,
		[]int32{0, 2, 3, 4, 4},
		[]int32{1, 2, 2, 3},
		[]float32{1, 4, 2, 1},
	)
	require.NoError(t, err)
	return g
}

func unreachableGraph(t *testing.T) *Graph {
	t.Helper()
	g, err := NewGraph(3, []int32{0, 1, 1, 1}, []int32{1}, []float32{1})
	require.NoError(t, err)
	return g
}

func selfLoopMultiEdgeGraph(t *testing.T) *Graph {
	t.Helper()
	g, err := NewGraph(2,
		[]int32{0, 3, 3},
		[]int32{0, 1, 1},
		[]float32{5, 3, 2},
	)
	require.NoError(t, err)
	return g
}

// heavySkewedGraph builds a line graph of nHops edges, each weighted inside
// [lo, hi]; with a small delta every edge classifies as heavy (S6).
func heavySkewedGraph(t *testing.T, nHops int, lo, hi float32) *Graph {
	t.Helper()
	n := nHops + 1
	offsets := make([]int32, n+1)
	targets := make([]int32, nHops)
	weights := make([]float32, nHops)
	step := (hi - lo) / float32(nHops)
	for i := 0; i < nHops; i++ {
		offsets[i+1] = int32(i + 1)
		targets[i] = int32(i + 1)
		weights[i] = lo + float32(i)*step
	}
	offsets[n] = offsets[nHops]
	g, err := NewGraph(n, offsets, targets, weights)
	require.NoError(t, err)
	return g
}

// staleBucketGraph is the graph shape where a heavy edge gives an early,
// poor upper bound on a vertex that a later light-edge chain then
// improves: 0->1(0.9,light) 0->4(3.5,heavy) 1->2(0.9,light) 2->3(0.9,light)
// 3->4(0.1,light). With delta=1, vertex 4 is first inserted into bucket 3
// from the heavy edge out of 0, then re-inserted into bucket 2 once the
// chain through 1,2,3 improves it to 2.8.
func staleBucketGraph(t *testing.T) *Graph {
	t.Helper()
	g, err := NewGraph(5,
		[]int32{0, 2, 3, 4, 5, 5},
		[]int32{1, 4, 2, 3, 4},
		[]float32{0.9, 3.5, 0.9, 0.9, 0.1},
	)
	require.NoError(t, err)
	return g
}

func newBuffers(n int) (dist []float32, pred []int32) {
	return make([]float32, n), make([]int32, n)
}
