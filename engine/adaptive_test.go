package engine

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveAdaptive_MatchesBaseline(t *testing.T) {
	g := diamondGraph(t)

	baseDist, basePred := newBuffers(g.N())
	_, err := SolveBaseline(context.Background(), g, 0, baseDist, basePred)
	require.NoError(t, err)

	adDist, adPred := newBuffers(g.N())
	_, err = SolveAdaptive(g, 0, 0, 0, -1, 0, adDist, adPred)
	require.NoError(t, err)

	for v := range baseDist {
		if math.IsInf(float64(baseDist[v]), 1) {
			assert.True(t, math.IsInf(float64(adDist[v]), 1))
			continue
		}
		assert.InDelta(t, baseDist[v], adDist[v], eps)
	}
	assertPredecessorConsistency(t, g, adDist, adPred)
}

// TestSolveAdaptive_RestartsOnHeavySkew covers S6 and property 5: a graph
// whose weights all lie in [5,10) must trigger at least one restart, and
// the final heavy ratio must land inside the target band once restarts <
// the cap. The default delta here equals the minimum weight, so only the
// first edge is light.
func TestSolveAdaptive_RestartsOnHeavySkew(t *testing.T) {
	g := heavySkewedGraph(t, 40, 5, 10)
	dist, pred := newBuffers(g.N())

	// probeWindow=1 so the controller inspects heavy_ratio almost
	// immediately, forcing a restart decision within this small graph.
	_, err := SolveAdaptive(g, 0, 0.05, 0.25, 2, 1, dist, pred)
	require.NoError(t, err)

	_, stats := AdaptiveStats()
	assert.GreaterOrEqual(t, stats.Restarts, uint32(1))
	if stats.Restarts < 2 {
		ratio := float64(stats.HeavyRatioX1000) / 1000
		assert.GreaterOrEqual(t, ratio, 0.05)
		assert.LessOrEqual(t, ratio, 0.25)
	}

	baseDist, basePred := newBuffers(g.N())
	_, err = SolveBaseline(context.Background(), g, 0, baseDist, basePred)
	require.NoError(t, err)
	for v := range baseDist {
		assert.InDelta(t, baseDist[v], dist[v], eps)
	}
	_ = basePred
}

func TestSolveAdaptive_ZeroRestartCapNeverRestarts(t *testing.T) {
	g := heavySkewedGraph(t, 20, 5, 10)
	dist, pred := newBuffers(g.N())

	_, err := SolveAdaptive(g, 0, 0.05, 0.25, 0, 1, dist, pred)
	require.NoError(t, err)

	_, stats := AdaptiveStats()
	assert.EqualValues(t, 0, stats.Restarts)
}

func TestSolveAdaptive_SourceOutOfRange(t *testing.T) {
	g := lineGraph(t)
	dist, pred := newBuffers(5)

	_, err := SolveAdaptive(g, -1, 0, 0, -1, 0, dist, pred)
	require.Error(t, err)
}
