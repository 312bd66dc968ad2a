package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// randomCSR builds a random directed CSR graph with n vertices and an
// average out-degree of avgDegree, weights drawn uniformly from
// [minW, maxW]. It is test-only scaffolding, mirroring the random-graph
// generator the original benchmark harness used to build its heavy-ratio
// and k-hop parity fixtures; production code never constructs graphs this
// way (graph generation is out of scope per spec §1).
func randomCSR(t *testing.T, seed int64, n, avgDegree int, minW, maxW float32) *Graph {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))

	offsets := make([]int32, n+1)
	var targets []int32
	var weights []float32

	for u := 0; u < n; u++ {
		degree := avgDegree
		if n > 1 {
			degree = rng.Intn(2*avgDegree + 1)
		}
		for i := 0; i < degree; i++ {
			v := rng.Intn(n)
			w := minW + rng.Float32()*(maxW-minW)
			targets = append(targets, int32(v))
			weights = append(weights, w)
		}
		offsets[u+1] = int32(len(targets))
	}

	g, err := NewGraph(n, offsets, targets, weights)
	require.NoError(t, err)
	return g
}
