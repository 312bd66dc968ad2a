package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"ssspengine/engine"
)

func TestSnapshotForVariant_DeltaStepRealSolve(t *testing.T) {
	reg := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg
	m := InitMetrics("test", "bridge")

	n := 4
	offsets := []int32{0, 2, 3, 4, 4}
	targets := []int32{1, 2, 2, 3}
	weights := []float32{1, 4, 2, 1}
	dist := make([]float32, n)
	pred := make([]int32, n)

	start := time.Now()
	info, err := engine.Solve(context.Background(), n, offsets, targets, weights, 0,
		engine.VariantDeltaStep, dist, pred, engine.Options{})
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	elapsed := time.Since(start)

	snap := SnapshotForVariant(engine.VariantDeltaStep.String(), info, elapsed, true)
	if snap.Variant != "deltastep" {
		t.Errorf("Variant = %q, want deltastep", snap.Variant)
	}
	if snap.SettledHeap != int64(info.Settled) {
		t.Errorf("SettledHeap = %d, want %d", snap.SettledHeap, info.Settled)
	}
	if snap.BucketsVisited == 0 {
		t.Error("BucketsVisited should be populated from DeltaStepStats")
	}

	m.RecordSnapshot(snap, n, len(targets))
}

func TestSnapshotForVariant_BaselineRealSolve(t *testing.T) {
	reg := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg
	m := InitMetrics("test", "bridge_baseline")

	n := 4
	offsets := []int32{0, 2, 3, 4, 4}
	targets := []int32{1, 2, 2, 3}
	weights := []float32{1, 4, 2, 1}
	dist := make([]float32, n)
	pred := make([]int32, n)

	info, err := engine.Solve(context.Background(), n, offsets, targets, weights, 0,
		engine.VariantBaseline, dist, pred, engine.Options{})
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}

	snap := SnapshotForVariant(engine.VariantBaseline.String(), info, time.Millisecond, true)
	if snap.HeapPushes == 0 {
		t.Error("HeapPushes should be populated from BaselineHeapStats")
	}

	m.RecordSnapshot(snap, n, len(targets))
}
