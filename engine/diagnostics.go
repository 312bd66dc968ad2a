package engine

import "sync"

// version identifies the engine build for the §6 diagnostic snapshot. It
// increments whenever the on-disk solver semantics change in a way that
// could affect previously-recorded benchmarks.
const version = 1

// ResultInfo is the per-call result the §6 solve entry points return.
type ResultInfo struct {
	Relaxations      uint64
	LightRelaxations uint64
	HeavyRelaxations uint64
	Settled          uint32
	ErrorCode        int32
}

// BucketStats carries the delta-stepping / k-hop bucket diagnostics.
// Scalar reals are transmitted as fixed-point x1000 integers per §6.
type BucketStats struct {
	BucketsVisited   uint64
	LightPassRepeats uint64
	MaxBucketIndex   uint64
	Restarts         uint32
	DeltaX1000       int64
	HeavyRatioX1000  int64
}

// snapshots holds the process-wide last-run diagnostics (§6, §9): one
// slot per publishing solver, guarded by a mutex since concurrent solves
// may publish from independent goroutines (§5). Readers always observe
// the latest fully-published record; a failing solve never overwrites the
// snapshot from the last successful one (§7).
type snapshots struct {
	mu sync.Mutex

	baselineHeap   HeapStats
	deltaStepHeap  HeapStats
	deltaStepBkt   BucketStats
	khopHeap       HeapStats
	khopBkt        BucketStats
	autotuneBkt    BucketStats
	autotuneSet    []float64
	adaptiveHeap   HeapStats
	adaptiveBkt    BucketStats
}

var globalSnapshots snapshots

func (s *snapshots) publishBaseline(h HeapStats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.baselineHeap = h
}

func (s *snapshots) publishDeltaStep(h HeapStats, b BucketStats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deltaStepHeap = h
	s.deltaStepBkt = b
}

func (s *snapshots) publishKHop(h HeapStats, b BucketStats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.khopHeap = h
	s.khopBkt = b
}

func (s *snapshots) publishAutotune(b BucketStats, candidateSet []float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autotuneBkt = b
	s.autotuneSet = candidateSet
}

func (s *snapshots) publishAdaptive(h HeapStats, b BucketStats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adaptiveHeap = h
	s.adaptiveBkt = b
}

// BaselineHeapStats returns the heap statistics from the last successful
// baseline solve.
func BaselineHeapStats() HeapStats {
	globalSnapshots.mu.Lock()
	defer globalSnapshots.mu.Unlock()
	return globalSnapshots.baselineHeap
}

// DeltaStepStats returns the heap and bucket statistics from the last
// successful delta-stepping solve.
func DeltaStepStats() (HeapStats, BucketStats) {
	globalSnapshots.mu.Lock()
	defer globalSnapshots.mu.Unlock()
	return globalSnapshots.deltaStepHeap, globalSnapshots.deltaStepBkt
}

// KHopStats returns the heap and bucket statistics from the last
// successful k-hop solve.
func KHopStats() (HeapStats, BucketStats) {
	globalSnapshots.mu.Lock()
	defer globalSnapshots.mu.Unlock()
	return globalSnapshots.khopHeap, globalSnapshots.khopBkt
}

// AutotuneStats returns the bucket statistics (including the chosen delta)
// and the candidate multiplier set from the last successful autotune run.
func AutotuneStats() (BucketStats, []float64) {
	globalSnapshots.mu.Lock()
	defer globalSnapshots.mu.Unlock()
	set := make([]float64, len(globalSnapshots.autotuneSet))
	copy(set, globalSnapshots.autotuneSet)
	return globalSnapshots.autotuneBkt, set
}

// AdaptiveStats returns the heap and bucket statistics from the last
// successful adaptive solve.
func AdaptiveStats() (HeapStats, BucketStats) {
	globalSnapshots.mu.Lock()
	defer globalSnapshots.mu.Unlock()
	return globalSnapshots.adaptiveHeap, globalSnapshots.adaptiveBkt
}

// Version returns the monotonically increasing engine build identifier.
func Version() int { return version }
