package engine

import "math"

// defaultDelta implements the §4.3 default-selection policy:
// delta = max(mean/2, minPositive), clamped to a small positive floor so a
// graph with uniform tiny weights never yields delta = 0.
func defaultDelta(g *Graph) float32 {
	const floor = 1e-3
	mean, minPositive := g.weightStats()
	d := mean / 2
	if minPositive > d {
		d = minPositive
	}
	if d < floor {
		d = floor
	}
	return float32(d)
}

// deltaState is the full owned record for one delta-stepping run: arena,
// edge classification, and bucket array. A restart (§4.6, §9) never
// mutates a deltaState in place — it constructs a fresh one and discards
// the old.
type deltaState struct {
	g       *Graph
	source  int32
	delta   float32
	arena   *Arena
	ec      *edgeClass
	buckets *bucketArray

	// epoch-stamped marker for the R set (§4.3b): rEpoch[v] == epoch means
	// v is already recorded in rScratch for the bucket currently being
	// processed, avoiding an O(n) clear between buckets.
	rEpoch  []int32
	epoch   int32
	rScratch []int32

	info  ResultInfo
	stats BucketStats
}

func newDeltaState(g *Graph, source int32, delta float32) *deltaState {
	arena := acquireArena(g.n, source)
	ds := &deltaState{
		g:       g,
		source:  source,
		delta:   delta,
		arena:   arena,
		ec:      classify(g, delta),
		buckets: newBucketArray(delta),
		rEpoch:  make([]int32, g.n),
	}
	ds.buckets.insert(0, source, 0)
	return ds
}

func (ds *deltaState) release() {
	ds.arena.release()
}

// markR records v as a member of the current bucket's R set at most once.
func (ds *deltaState) markR(v int32) {
	if ds.rEpoch[v] != ds.epoch {
		ds.rEpoch[v] = ds.epoch
		ds.rScratch = append(ds.rScratch, v)
	}
}

// relaxLight relaxes u's light out-edges, inserting improved targets into
// the bucket their new distance maps to.
func (ds *deltaState) relaxLight(u int32, bucketIdx int) {
	targets, weights := ds.ec.light(u)
	for i, v := range targets {
		w := weights[i]
		nd := ds.arena.Dist[u] + w
		if nd < ds.arena.Dist[v] {
			ds.arena.Dist[v] = nd
			ds.arena.Pred[v] = u
			j := ds.buckets.indexFor(nd)
			ds.buckets.insert(j, v, nd)
			ds.info.Relaxations++
			ds.info.LightRelaxations++
		}
	}
}

// relaxHeavy relaxes u's heavy out-edges. A heavy relaxation always
// targets a strictly higher bucket than the one currently being drained
// (§4.3c), so it never re-populates the bucket under the cursor.
func (ds *deltaState) relaxHeavy(u int32) {
	targets, weights := ds.ec.heavy(u)
	for i, v := range targets {
		w := weights[i]
		nd := ds.arena.Dist[u] + w
		if nd < ds.arena.Dist[v] {
			ds.arena.Dist[v] = nd
			ds.arena.Pred[v] = u
			j := ds.buckets.indexFor(nd)
			ds.buckets.insert(j, v, nd)
			ds.info.Relaxations++
			ds.info.HeavyRelaxations++
		}
	}
}

// processBucket runs the full light-saturation then heavy-relaxation cycle
// for bucket i (§4.3 steps a-c) and returns the number of vertices settled.
func (ds *deltaState) processBucket(i int) uint32 {
	ds.epoch++
	ds.rScratch = ds.rScratch[:0]

	firstPass := true
	for ds.buckets.nonEmpty(i) {
		batch := ds.buckets.take(i, ds.arena.Dist)
		for _, u := range batch {
			ds.markR(u)
			ds.relaxLight(u, i)
		}
		if !firstPass {
			ds.stats.LightPassRepeats++
		}
		firstPass = false
	}

	for _, u := range ds.rScratch {
		ds.relaxHeavy(u)
	}

	return uint32(len(ds.rScratch))
}

// run advances the cursor from its current position, processing buckets
// until either bucketLimit additional buckets have been processed (0 means
// unlimited), settleLimit total settled vertices have been reached (0
// means unlimited), or no non-empty bucket remains. completed reports
// whether the solve reached natural termination.
func (ds *deltaState) run(bucketLimit, settleLimit int) (completed bool) {
	processedThisCall := 0
	for {
		next, ok := ds.buckets.nextNonEmpty(ds.buckets.cursor)
		if !ok {
			return true
		}
		ds.buckets.cursor = next

		settledHere := ds.processBucket(next)
		ds.info.Settled += settledHere
		ds.stats.BucketsVisited++
		if uint64(next) > ds.stats.MaxBucketIndex {
			ds.stats.MaxBucketIndex = uint64(next)
		}
		processedThisCall++

		if settleLimit > 0 && int(ds.info.Settled) >= settleLimit {
			return false
		}
		if bucketLimit > 0 && processedThisCall >= bucketLimit {
			return false
		}
	}
}

// heavyRatio computes heavy_relaxations / max(1, total relaxations classified by weight).
func (ds *deltaState) heavyRatio() float64 {
	total := ds.info.LightRelaxations + ds.info.HeavyRelaxations
	if total == 0 {
		return 0
	}
	return float64(ds.info.HeavyRelaxations) / float64(total)
}

func (ds *deltaState) finalizeStats() BucketStats {
	ds.stats.DeltaX1000 = int64(math.Round(float64(ds.delta) * 1000))
	ds.stats.HeavyRatioX1000 = int64(math.Round(ds.heavyRatio() * 1000))
	return ds.stats
}

// SolveDeltaStep implements the §4.3 bucket-based delta-stepping solver.
// delta selects the bucket width; pass 0 to use the §4.3 default policy.
func SolveDeltaStep(g *Graph, source int32, delta float32, dist []float32, pred []int32) (ResultInfo, error) {
	if err := g.checkSource(source); err != nil {
		return errResult(err)
	}
	if delta <= 0 {
		delta = defaultDelta(g)
	}

	rlog, _ := runLogger("deltastep")
	rlog.Debug("delta-step solve starting", "n", g.N(), "m", g.M(), "source", source, "delta", delta)

	ds := newDeltaState(g, source, delta)
	defer ds.release()

	ds.run(0, 0)

	ds.arena.writeOut(dist, pred)
	stats := ds.finalizeStats()
	globalSnapshots.publishDeltaStep(HeapStats{}, stats)

	rlog.Debug("delta-step solve finished",
		"settled", ds.info.Settled,
		"buckets_visited", stats.BucketsVisited,
		"heavy_ratio_x1000", stats.HeavyRatioX1000,
	)
	return ds.info, nil
}
