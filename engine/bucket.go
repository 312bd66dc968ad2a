package engine

// bucketEntry pairs a vertex with the tentative distance it held at the
// moment it was inserted into a bucket. Keeping that distance alongside
// the vertex is what lets take() recognize and discard stale entries
// (§3, §4.3's stale-entry policy): a vertex may be relaxed into a bucket
// more than once over its lifetime, and only the entry matching its
// current dist[v] is live.
type bucketEntry struct {
	dist   float32
	vertex int32
}

// bucketArray is an indexed sequence of vertex sets addressed by
// floor(dist/delta) (§3, §4.3). Buckets below the cursor are never
// revisited except across an adaptive restart, which discards the whole
// structure and builds a fresh one.
type bucketArray struct {
	delta   float32
	buckets [][]bucketEntry
	cursor  int
}

func newBucketArray(delta float32) *bucketArray {
	return &bucketArray{delta: delta, buckets: make([][]bucketEntry, 0, 64)}
}

// indexFor computes the bucket index for a distance, clamped to be >= the
// current cursor so that floating-point rounding near a bucket boundary
// can never move a vertex backward past an already-finalized bucket (§9).
func (b *bucketArray) indexFor(dist float32) int {
	idx := int(dist / b.delta)
	if idx < b.cursor {
		idx = b.cursor
	}
	return idx
}

func (b *bucketArray) ensure(idx int) {
	for len(b.buckets) <= idx {
		b.buckets = append(b.buckets, nil)
	}
}

// insert places v into bucket idx, stamped with the distance it was
// relaxed to. An older entry for v left behind in a different (or the
// same) bucket is not removed here; it is filtered out lazily when that
// bucket is drained.
func (b *bucketArray) insert(idx int, v int32, dist float32) {
	b.ensure(idx)
	b.buckets[idx] = append(b.buckets[idx], bucketEntry{dist: dist, vertex: v})
}

// take removes bucket idx's contents and returns only the vertices whose
// stamped distance still equals their current entry in arenaDist; any
// entry superseded by a later, better relaxation is discarded (§3, §4.3).
// Used for the repeated light-phase drain, where relaxations may
// re-populate the same bucket mid-pass.
func (b *bucketArray) take(idx int, arenaDist []float32) []int32 {
	if idx >= len(b.buckets) {
		return nil
	}
	entries := b.buckets[idx]
	b.buckets[idx] = nil
	if len(entries) == 0 {
		return nil
	}

	var live []int32
	for _, e := range entries {
		if e.dist == arenaDist[e.vertex] {
			live = append(live, e.vertex)
		}
	}
	return live
}

func (b *bucketArray) nonEmpty(idx int) bool {
	return idx < len(b.buckets) && len(b.buckets[idx]) > 0
}

// nextNonEmpty scans forward from idx (inclusive) for the next bucket
// holding at least one entry (live or stale). ok is false when none
// remain.
func (b *bucketArray) nextNonEmpty(idx int) (next int, ok bool) {
	for i := idx; i < len(b.buckets); i++ {
		if len(b.buckets[i]) > 0 {
			return i, true
		}
	}
	return 0, false
}
