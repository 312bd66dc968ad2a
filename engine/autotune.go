package engine

import (
	"time"

	"ssspengine/pkg/logger"
)

// defaultAutotuneMultipliers is the §6 default candidate set, applied to
// the §4.3 default delta.
var defaultAutotuneMultipliers = []float64{0.5, 1, 2, 4}

// defaultAutotuneLimit is the §6 default probe cap on settled vertices.
const defaultAutotuneLimit = 20000

// SolveAutotune implements the §4.5 autotune wrapper: it probes each
// candidate delta (base delta times each multiplier) on a settled-vertex-
// capped run, times each probe, and re-solves to completion with the
// fastest candidate. The winner is chosen by measured wall time, so two
// runs over the same graph, source, and candidate set may pick different
// deltas; the final distances are shortest-path distances either way
// (§8 property 6).
func SolveAutotune(g *Graph, source int32, multipliers []float64, limit int, dist []float32, pred []int32) (ResultInfo, error) {
	if err := g.checkSource(source); err != nil {
		return errResult(err)
	}
	if len(multipliers) == 0 {
		multipliers = defaultAutotuneMultipliers
	}
	if limit <= 0 {
		limit = defaultAutotuneLimit
	}

	vlog := logger.WithVariant("autotune")

	base := defaultDelta(g)

	bestDelta := float32(base) * float32(multipliers[0])
	bestDuration := time.Duration(-1)

	for _, m := range multipliers {
		candidate := float32(float64(base) * m)
		if candidate <= 0 {
			continue
		}

		probe := newDeltaState(g, source, candidate)
		start := time.Now()
		probe.run(0, limit)
		elapsed := time.Since(start)
		probe.release()

		vlog.Debug("autotune probe",
			"multiplier", m,
			"delta", candidate,
			"settled", probe.info.Settled,
			"elapsed", elapsed,
		)

		if bestDuration < 0 || elapsed < bestDuration {
			bestDuration = elapsed
			bestDelta = candidate
		}
	}

	vlog.Info("autotune selected delta", "delta", bestDelta, "base", base)

	final := newDeltaState(g, source, bestDelta)
	defer final.release()
	final.run(0, 0)

	final.arena.writeOut(dist, pred)
	globalSnapshots.publishAutotune(final.finalizeStats(), multipliers)
	return final.info, nil
}
