package config

import "ssspengine/engine"

// ToEngineOptions translates a loaded Config into the engine.Options value
// the §6 configuration surface describes, so a caller wiring this package
// up only has to call Load() and hand the result straight to engine.Solve.
// Delta itself is left at its zero value: no configuration key controls
// the fixed delta for a direct DeltaStep/KHop call, only the autotune and
// adaptive variants' own search parameters.
func (c *Config) ToEngineOptions() engine.Options {
	return engine.Options{
		K:                   c.KHop.K,
		AutotuneMultipliers: c.Autotune.Multipliers(),
		AutotuneLimit:       c.Autotune.Limit,
		HeavyBandLo:         c.Adaptive.HeavyBandLo,
		HeavyBandHi:         c.Adaptive.HeavyBandHi,
		RestartCap:          c.Adaptive.RestartCap,
		ProbeWindow:         c.Adaptive.ProbeWindow,
	}
}
