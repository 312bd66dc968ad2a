// Package engine implements the single-source shortest-path solvers: a
// baseline priority-queue labeling algorithm, a bucket-based delta-stepping
// solver, a k-hop batch relaxer, and the autotune/adaptive wrappers around
// delta-stepping. All solvers share the same read-only graph view and a
// per-solve distance/predecessor arena.
package engine

import (
	"math"

	"ssspengine/pkg/apperror"
)

// Sentinel is the "no predecessor" value written for the source vertex and
// for any vertex that is never reached.
const Sentinel int32 = -1

// Graph is a read-only Compressed Sparse Row view over three caller-owned
// arrays. It performs no allocation beyond the Graph value itself and is
// safe to share across concurrently-running solves.
type Graph struct {
	n       int
	offsets []int32
	targets []int32
	weights []float32
}

// NewGraph validates and wraps a CSR graph. offsets must have length n+1
// with offsets[0] == 0 and offsets[n] == len(targets); targets and weights
// must have equal length; every target must be in [0, n); every weight
// must be finite and non-negative. Self-loops and multi-edges are allowed.
func NewGraph(n int, offsets, targets []int32, weights []float32) (*Graph, error) {
	if n < 0 {
		return nil, apperror.NewWithField(apperror.CodeInvalidShape, "vertex count must be non-negative", "n")
	}
	if len(offsets) != n+1 {
		return nil, apperror.NewWithField(apperror.CodeInvalidShape, "offsets must have length n+1", "offsets").
			WithDetails("got", len(offsets)).WithDetails("want", n+1)
	}
	if len(targets) != len(weights) {
		return nil, apperror.ErrArrayLengthMismatch.WithDetails("targets", len(targets)).WithDetails("weights", len(weights))
	}
	if n > 0 && offsets[0] != 0 {
		return nil, apperror.ErrOffsetsHeadNonZero.WithDetails("offsets[0]", offsets[0])
	}
	if offsets[n] != int32(len(targets)) {
		return nil, apperror.ErrOffsetsTailMismatch.WithDetails("offsets[n]", offsets[n]).WithDetails("len(targets)", len(targets))
	}
	for i := 0; i < n; i++ {
		if offsets[i] > offsets[i+1] {
			return nil, apperror.ErrOffsetsNonMonotonic.WithDetails("index", i)
		}
	}
	for i, t := range targets {
		if t < 0 || int(t) >= n {
			return nil, apperror.ErrTargetOutOfRange.WithDetails("index", i).WithDetails("target", t)
		}
	}
	for i, w := range weights {
		if math.IsNaN(float64(w)) || math.IsInf(float64(w), 0) {
			return nil, apperror.ErrNonFiniteWeight.WithDetails("index", i)
		}
		if w < 0 {
			return nil, apperror.ErrNegativeWeight.WithDetails("index", i).WithDetails("weight", w)
		}
	}

	return &Graph{n: n, offsets: offsets, targets: targets, weights: weights}, nil
}

// N returns the vertex count.
func (g *Graph) N() int { return g.n }

// M returns the edge count.
func (g *Graph) M() int { return len(g.targets) }

// Out returns the target and weight slices for vertex u's out-edges. The
// slices alias the graph's backing arrays and must not be mutated or
// retained past the graph's lifetime.
func (g *Graph) Out(u int32) (targets []int32, weights []float32) {
	lo, hi := g.offsets[u], g.offsets[u+1]
	return g.targets[lo:hi], g.weights[lo:hi]
}

// checkSource validates a source vertex against the graph's vertex range.
func (g *Graph) checkSource(source int32) error {
	if source < 0 || int(source) >= g.n {
		return apperror.ErrSourceOutOfRange.WithDetails("source", source).WithDetails("n", g.n)
	}
	return nil
}

// weightStats returns the arithmetic mean of all edge weights and the smallest
// strictly-positive weight (used for the default delta formula in §4.3). If
// there are no edges, mean is 0 and minPositive is 0.
func (g *Graph) weightStats() (mean, minPositive float64) {
	if len(g.weights) == 0 {
		return 0, 0
	}
	var sum float64
	minPositive = math.Inf(1)
	for _, w := range g.weights {
		sum += float64(w)
		if w > 0 && float64(w) < minPositive {
			minPositive = float64(w)
		}
	}
	mean = sum / float64(len(g.weights))
	if math.IsInf(minPositive, 1) {
		minPositive = 0
	}
	return mean, minPositive
}
