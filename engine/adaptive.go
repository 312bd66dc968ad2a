package engine

const (
	defaultHeavyBandLo = 0.05
	defaultHeavyBandHi = 0.25
	defaultRestartCap  = 2
	defaultProbeWindow = 16
)

// SolveAdaptive implements the §4.6 adaptive controller: it wraps
// delta-stepping, inspects heavy_ratio after a probe window of buckets,
// and restarts with a rescaled delta when the ratio drifts outside
// [heavyBandLo, heavyBandHi], up to restartCap restarts. A restart always
// discards the in-progress deltaState and builds a fresh one (§9) — never
// a partial mutation of distances, predecessors, or buckets.
func SolveAdaptive(g *Graph, source int32, heavyBandLo, heavyBandHi float64, restartCap, probeWindow int, dist []float32, pred []int32) (ResultInfo, error) {
	if err := g.checkSource(source); err != nil {
		return errResult(err)
	}
	if heavyBandLo <= 0 {
		heavyBandLo = defaultHeavyBandLo
	}
	if heavyBandHi <= 0 {
		heavyBandHi = defaultHeavyBandHi
	}
	if restartCap < 0 {
		restartCap = defaultRestartCap
	}
	if probeWindow <= 0 {
		probeWindow = defaultProbeWindow
	}

	delta := defaultDelta(g)
	restarts := 0
	rlog, _ := runLogger("adaptive")

	for {
		ds := newDeltaState(g, source, delta)

		if completed := ds.run(probeWindow, 0); completed {
			return finishAdaptive(ds, dist, pred, restarts)
		}

		ratio := ds.heavyRatio()
		withinBand := ratio >= heavyBandLo && ratio <= heavyBandHi
		if withinBand || restarts >= restartCap {
			ds.run(0, 0)
			return finishAdaptive(ds, dist, pred, restarts)
		}

		if ratio > heavyBandHi {
			delta *= 2
		} else {
			delta /= 2
		}
		restarts++
		ds.release()

		rlog.Info("adaptive controller restarting",
			"restart", restarts,
			"heavy_ratio", ratio,
			"new_delta", delta,
		)
	}
}

func finishAdaptive(ds *deltaState, dist []float32, pred []int32, restarts int) (ResultInfo, error) {
	defer ds.release()
	ds.stats.Restarts = uint32(restarts)
	ds.arena.writeOut(dist, pred)
	globalSnapshots.publishAdaptive(HeapStats{}, ds.finalizeStats())
	return ds.info, nil
}
