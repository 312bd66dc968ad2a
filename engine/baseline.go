package engine

import (
	"context"

	"ssspengine/pkg/apperror"
	"ssspengine/pkg/logger"
)

// SolveBaseline implements the §4.2 labeling-based solver: a textbook
// Dijkstra over a binary min-heap with lazy deletion of stale entries.
// It is the semantic reference the other variants are checked against.
func SolveBaseline(ctx context.Context, g *Graph, source int32, dist []float32, pred []int32) (ResultInfo, error) {
	if err := g.checkSource(source); err != nil {
		return errResult(err)
	}

	vlog := logger.WithVariant("baseline")
	vlog.Debug("baseline solve starting", "n", g.N(), "m", g.M(), "source", source)

	arena := acquireArena(g.n, source)
	defer arena.release()

	pq := newPQueue(g.n)
	pq.push(0, source)

	var info ResultInfo
	var settled uint32

	const checkInterval = 1024
	iterations := 0

	for !pq.empty() {
		if iterations%checkInterval == 0 {
			select {
			case <-ctx.Done():
				return ResultInfo{}, apperror.NewCritical(apperror.CodeInternalInvariant, "solve canceled").WithDetails("cause", ctx.Err())
			default:
			}
		}
		iterations++

		item, _ := pq.pop()
		u := item.vertex

		if item.dist > arena.Dist[u] {
			continue // stale entry (§4.1)
		}
		settled++

		targets, weights := g.Out(u)
		for i, v := range targets {
			w := weights[i]
			nd := arena.Dist[u] + w
			if nd < arena.Dist[v] {
				arena.Dist[v] = nd
				arena.Pred[v] = u
				pq.push(nd, v)
				info.Relaxations++
			}
		}
	}

	info.Settled = settled
	arena.writeOut(dist, pred)
	globalSnapshots.publishBaseline(pq.stats)

	vlog.Debug("baseline solve finished",
		"settled", settled,
		"relaxations", info.Relaxations,
		"heap_pushes", pq.stats.Pushes,
	)
	return info, nil
}
