package metrics

import (
	"time"

	"ssspengine/engine"
)

// SnapshotForVariant builds a Snapshot from a solve's ResultInfo plus the
// heap/bucket diagnostics the engine publishes for that variant (§6, §9),
// ready to hand to (*Metrics).RecordSnapshot. variant should be the
// engine.Variant's String() form.
func SnapshotForVariant(variant string, info engine.ResultInfo, duration time.Duration, succeeded bool) Snapshot {
	s := Snapshot{
		Variant:         variant,
		SettledHeap:     int64(info.Settled),
		Relaxations:     int64(info.Relaxations),
		DurationSeconds: duration.Seconds(),
		Succeeded:       succeeded,
	}

	var heap engine.HeapStats
	var bucket engine.BucketStats

	switch variant {
	case engine.VariantBaseline.String():
		heap = engine.BaselineHeapStats()
	case engine.VariantDeltaStep.String():
		heap, bucket = engine.DeltaStepStats()
	case engine.VariantKHop.String():
		heap, bucket = engine.KHopStats()
	case engine.VariantAutotune.String():
		bucket, _ = engine.AutotuneStats()
	case engine.VariantAdaptive.String():
		heap, bucket = engine.AdaptiveStats()
	}

	s.HeapPushes = int64(heap.Pushes)
	s.HeapPops = int64(heap.Pops)
	s.HeapMaxSize = int64(heap.MaxSize)

	s.BucketsVisited = int64(bucket.BucketsVisited)
	s.LightPassRepeats = int64(bucket.LightPassRepeats)
	s.MaxBucketIndex = int64(bucket.MaxBucketIndex)
	s.Restarts = int64(bucket.Restarts)
	s.DeltaX1000 = bucket.DeltaX1000
	s.HeavyRatioX1000 = bucket.HeavyRatioX1000
	s.LightRelaxations = int64(info.LightRelaxations)
	s.HeavyRelaxations = int64(info.HeavyRelaxations)

	return s
}
