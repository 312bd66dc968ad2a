package engine

import (
	"context"
	"fmt"

	"ssspengine/pkg/apperror"
)

// Variant enumerates the solver entry points (§9's "dynamic dispatch over
// solver variants" note: modeled as a value of an enumerated set passed to
// a single dispatch function rather than symbol lookup).
type Variant int

const (
	VariantBaseline Variant = iota
	VariantDeltaStep
	VariantKHop
	VariantAutotune
	VariantAdaptive
)

// String returns the variant's lowercase name, used for log/metric labels.
func (v Variant) String() string {
	switch v {
	case VariantBaseline:
		return "baseline"
	case VariantDeltaStep:
		return "deltastep"
	case VariantKHop:
		return "khop"
	case VariantAutotune:
		return "autotune"
	case VariantAdaptive:
		return "adaptive"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// Options carries the §6 configuration surface for the variants that use
// it. Zero values select each variant's documented default, except
// RestartCap, where 0 means no restarts.
type Options struct {
	// Delta overrides the §4.3 bucket width for DeltaStep and KHop. 0
	// selects the default-selection policy.
	Delta float32

	// K is the layer cap for KHop. 0 selects the §6 default (3).
	K int

	// AutotuneMultipliers is the candidate delta-multiplier set for
	// Autotune. nil selects the §6 default {0.5, 1, 2, 4}.
	AutotuneMultipliers []float64
	// AutotuneLimit caps settled vertices during each autotune probe. 0
	// selects the §6 default (20000).
	AutotuneLimit int

	// HeavyBandLo/HeavyBandHi bound the adaptive controller's target
	// heavy-ratio band. 0 selects the §6 defaults (0.05, 0.25).
	HeavyBandLo float64
	HeavyBandHi float64
	// RestartCap limits adaptive restarts. Negative selects the §6
	// default (2).
	RestartCap int
	// ProbeWindow is the number of buckets the adaptive controller
	// processes before its first heavy-ratio check. 0 selects the
	// default (16).
	ProbeWindow int
}

// errResult builds the ResultInfo{ErrorCode: ...} value the §6 contract
// expects alongside a non-nil error.
func errResult(err error) (ResultInfo, error) {
	return ResultInfo{ErrorCode: apperror.ResultCode(apperror.Code(err))}, err
}

// Solve dispatches to the named variant over a CSR graph built from the
// given arrays, writing results into the caller-provided dist/pred
// buffers (§6). n, offsets, targets, and weights are validated by graph
// construction and source by the selected variant; dist and pred must each
// have length n.
func Solve(ctx context.Context, n int, offsets, targets []int32, weights []float32, source int32, variant Variant, dist []float32, pred []int32, opts Options) (ResultInfo, error) {
	g, err := NewGraph(n, offsets, targets, weights)
	if err != nil {
		return errResult(err)
	}
	if len(dist) != n || len(pred) != n {
		err := apperror.New(apperror.CodeInvalidShape, "dist and pred output buffers must have length n").
			WithDetails("len(dist)", len(dist)).WithDetails("len(pred)", len(pred)).WithDetails("n", n)
		return errResult(err)
	}

	switch variant {
	case VariantBaseline:
		return SolveBaseline(ctx, g, source, dist, pred)
	case VariantDeltaStep:
		return SolveDeltaStep(g, source, opts.Delta, dist, pred)
	case VariantKHop:
		return SolveKHop(g, source, opts.Delta, opts.K, dist, pred)
	case VariantAutotune:
		return SolveAutotune(g, source, opts.AutotuneMultipliers, opts.AutotuneLimit, dist, pred)
	case VariantAdaptive:
		return SolveAdaptive(g, source, opts.HeavyBandLo, opts.HeavyBandHi, opts.RestartCap, opts.ProbeWindow, dist, pred)
	default:
		return errResult(apperror.New(apperror.CodeInvalidShape, "unknown solver variant").WithDetails("variant", int(variant)))
	}
}
