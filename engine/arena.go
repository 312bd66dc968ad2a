package engine

import (
	"math"
	"sync"
)

// Arena holds the per-solve tentative-distance and predecessor buffers.
// It is allocated on entry to a solver and released on return; the engine
// retains no growing caches between solves (§5).
type Arena struct {
	Dist []float32
	Pred []int32
}

var arenaPool = sync.Pool{
	New: func() any { return new(Arena) },
}

// acquireArena obtains an Arena sized for n vertices from the pool,
// initializing dist[v] = +Inf, pred[v] = Sentinel for all v, then dist[source] = 0.
func acquireArena(n int, source int32) *Arena {
	a := arenaPool.Get().(*Arena)
	if cap(a.Dist) < n {
		a.Dist = make([]float32, n)
		a.Pred = make([]int32, n)
	} else {
		a.Dist = a.Dist[:n]
		a.Pred = a.Pred[:n]
	}

	inf := float32(math.Inf(1))
	for i := range a.Dist {
		a.Dist[i] = inf
		a.Pred[i] = Sentinel
	}
	if n > 0 {
		a.Dist[source] = 0
	}
	return a
}

// release returns the Arena to the pool. The caller must not use a after
// calling release.
func (a *Arena) release() {
	arenaPool.Put(a)
}

// writeOut copies the arena's distances and predecessors into caller-owned
// output buffers, per the §6 contract.
func (a *Arena) writeOut(dist []float32, pred []int32) {
	copy(dist, a.Dist)
	copy(pred, a.Pred)
}
