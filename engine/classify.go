package engine

// edgeClass partitions every vertex's out-edges into a light view (weight
// <= delta) and a heavy view (weight > delta), each stored as its own CSR
// triple so that Light/Heavy lookups stay allocation-free. Built once per
// solve (§4.3) and rebuilt whenever the adaptive controller restarts with
// a new delta.
type edgeClass struct {
	lightOffsets []int32
	lightTargets []int32
	lightWeights []float32

	heavyOffsets []int32
	heavyTargets []int32
	heavyWeights []float32
}

// classify builds the light/heavy edge views for g at the given delta.
func classify(g *Graph, delta float32) *edgeClass {
	n := g.n
	m := len(g.targets)

	ec := &edgeClass{
		lightOffsets: make([]int32, n+1),
		lightTargets: make([]int32, 0, m),
		lightWeights: make([]float32, 0, m),
		heavyOffsets: make([]int32, n+1),
		heavyTargets: make([]int32, 0, m),
		heavyWeights: make([]float32, 0, m),
	}

	for u := 0; u < n; u++ {
		targets, weights := g.Out(int32(u))
		for i, w := range weights {
			if w <= delta {
				ec.lightTargets = append(ec.lightTargets, targets[i])
				ec.lightWeights = append(ec.lightWeights, w)
			} else {
				ec.heavyTargets = append(ec.heavyTargets, targets[i])
				ec.heavyWeights = append(ec.heavyWeights, w)
			}
		}
		ec.lightOffsets[u+1] = int32(len(ec.lightTargets))
		ec.heavyOffsets[u+1] = int32(len(ec.heavyTargets))
	}

	return ec
}

// light returns u's light out-edges.
func (ec *edgeClass) light(u int32) (targets []int32, weights []float32) {
	lo, hi := ec.lightOffsets[u], ec.lightOffsets[u+1]
	return ec.lightTargets[lo:hi], ec.lightWeights[lo:hi]
}

// heavy returns u's heavy out-edges.
func (ec *edgeClass) heavy(u int32) (targets []int32, weights []float32) {
	lo, hi := ec.heavyOffsets[u], ec.heavyOffsets[u+1]
	return ec.heavyTargets[lo:hi], ec.heavyWeights[lo:hi]
}
