package engine

// khopState reuses the delta-stepping substrate (arena, edge
// classification, bucket array) but bounds the light-phase saturation to
// k BFS-style layers per bucket before relaxing heavy edges, instead of
// draining until the bucket is fully saturated (§4.4).
type khopState struct {
	*deltaState
	k int
}

func newKHopState(g *Graph, source int32, delta float32, k int) *khopState {
	if k <= 0 {
		k = 3
	}
	return &khopState{deltaState: newDeltaState(g, source, delta), k: k}
}

// processBucket overrides the delta-stepping drain with a layer-bounded
// sweep: layer 0 is bucket i's initial contents, each subsequent layer is
// the set of vertices relaxed into bucket i by the previous layer. After k
// layers, or once a layer is empty, heavy edges are relaxed for every
// vertex visited across all layers so far (§4.4). Any vertices still
// arriving in bucket i beyond the layer cap are left in place; the outer
// run loop reprocesses the bucket (a fresh epoch, fresh R set) until it
// is genuinely empty before the cursor advances.
func (ks *khopState) processBucket(i int) uint32 {
	ks.epoch++
	ks.rScratch = ks.rScratch[:0]

	for l := 0; l < ks.k; l++ {
		layer := ks.buckets.take(i, ks.arena.Dist)
		if len(layer) == 0 {
			break
		}
		for _, u := range layer {
			ks.markR(u)
			ks.relaxLight(u, i)
		}
		if l > 0 {
			ks.stats.LightPassRepeats++
		}
	}

	for _, u := range ks.rScratch {
		ks.relaxHeavy(u)
	}

	return uint32(len(ks.rScratch))
}

// run mirrors deltaState.run but dispatches to khopState's own
// processBucket so the layer cap applies, and only advances the cursor
// once a bucket is fully drained (it may take several processBucket calls
// when the layer cap is smaller than the bucket's true depth).
func (ks *khopState) run(bucketLimit, settleLimit int) (completed bool) {
	processedThisCall := 0
	for {
		next, ok := ks.buckets.nextNonEmpty(ks.buckets.cursor)
		if !ok {
			return true
		}
		ks.buckets.cursor = next

		settledHere := ks.processBucket(next)
		ks.info.Settled += settledHere
		ks.stats.BucketsVisited++
		if uint64(next) > ks.stats.MaxBucketIndex {
			ks.stats.MaxBucketIndex = uint64(next)
		}
		processedThisCall++

		if ks.buckets.nonEmpty(next) {
			continue
		}

		if settleLimit > 0 && int(ks.info.Settled) >= settleLimit {
			return false
		}
		if bucketLimit > 0 && processedThisCall >= bucketLimit {
			return false
		}
	}
}

// SolveKHop implements the §4.4 k-hop batch relaxer: the same bucket
// substrate as delta-stepping, but bounded BFS-style layers within each
// bucket before advancing to the heavy phase. k is the layer cap; pass 0
// for the §6 default of 3.
func SolveKHop(g *Graph, source int32, delta float32, k int, dist []float32, pred []int32) (ResultInfo, error) {
	if err := g.checkSource(source); err != nil {
		return errResult(err)
	}
	if delta <= 0 {
		delta = defaultDelta(g)
	}

	ks := newKHopState(g, source, delta, k)
	defer ks.release()

	ks.run(0, 0)

	ks.arena.writeOut(dist, pred)
	globalSnapshots.publishKHop(HeapStats{}, ks.finalizeStats())
	return ks.info, nil
}
