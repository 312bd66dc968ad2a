// Package config loads engine-tunable parameters: the §6 configuration
// surface (autotune candidate set and probe limit, adaptive heavy-ratio
// band and restart cap, k-hop hop count) plus the ambient logger settings.
package config

import (
	"fmt"
	"strings"
)

// Config is the root configuration structure.
type Config struct {
	App      AppConfig      `koanf:"app"`
	Log      LogConfig      `koanf:"log"`
	Autotune AutotuneConfig `koanf:"autotune"`
	Adaptive AdaptiveConfig `koanf:"adaptive"`
	KHop     KHopConfig     `koanf:"khop"`
}

// AppConfig holds general identification for the embedding process; useful
// when multiple binaries in the same fleet link this engine and tag their
// logs/metrics by name.
type AppConfig struct {
	Name        string `koanf:"name"`
	Environment string `koanf:"environment"`
}

// LogConfig mirrors pkg/logger.Config field-for-field.
type LogConfig struct {
	Level      string `koanf:"level"`
	Format     string `koanf:"format"`
	Output     string `koanf:"output"`
	FilePath   string `koanf:"file_path"`
	MaxSize    int    `koanf:"max_size"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAge     int    `koanf:"max_age"`
	Compress   bool   `koanf:"compress"`
}

// AutotuneConfig configures the §4.5 autotune wrapper.
type AutotuneConfig struct {
	// Set is the candidate δ-multiplier list, e.g. "0.5,1,2,4".
	Set string `koanf:"set"`
	// Limit caps settled vertices during each probe run.
	Limit int `koanf:"limit"`
}

// Multipliers parses Set into float64 multipliers, skipping malformed
// entries. It never returns an empty slice; an empty or fully-malformed Set
// falls back to the canonical {0.5, 1, 2, 4}.
func (a AutotuneConfig) Multipliers() []float64 {
	var out []float64
	for _, tok := range strings.Split(a.Set, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		var f float64
		if _, err := fmt.Sscanf(tok, "%g", &f); err == nil && f > 0 {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return []float64{0.5, 1, 2, 4}
	}
	return out
}

// AdaptiveConfig configures the §4.6 adaptive controller.
type AdaptiveConfig struct {
	HeavyBandLo float64 `koanf:"heavy_band_lo"`
	HeavyBandHi float64 `koanf:"heavy_band_hi"`
	RestartCap  int     `koanf:"restart_cap"`
	// ProbeWindow is the number of buckets processed before the first
	// heavy-ratio check (§4.6's "W", default 16).
	ProbeWindow int `koanf:"probe_window"`
}

// KHopConfig configures the §4.4 k-hop batch relaxer.
type KHopConfig struct {
	K int `koanf:"k"`
}

// Validate checks the loaded configuration for obviously inconsistent
// values and reports every problem found, not just the first.
func (c *Config) Validate() error {
	var errs []string

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, fmt.Sprintf("log.level must be one of: debug, info, warn, error, got %q", c.Log.Level))
	}

	if c.Autotune.Limit <= 0 {
		errs = append(errs, "autotune.limit must be positive")
	}
	hasMultiplier := false
	for _, tok := range strings.Split(c.Autotune.Set, ",") {
		var f float64
		if _, err := fmt.Sscanf(strings.TrimSpace(tok), "%g", &f); err == nil && f > 0 {
			hasMultiplier = true
			break
		}
	}
	if !hasMultiplier {
		errs = append(errs, "autotune.set must contain at least one positive multiplier")
	}

	if c.Adaptive.HeavyBandLo < 0 || c.Adaptive.HeavyBandHi > 1 || c.Adaptive.HeavyBandLo >= c.Adaptive.HeavyBandHi {
		errs = append(errs, fmt.Sprintf("adaptive heavy band must satisfy 0 <= lo < hi <= 1, got [%g, %g]", c.Adaptive.HeavyBandLo, c.Adaptive.HeavyBandHi))
	}
	if c.Adaptive.RestartCap < 0 {
		errs = append(errs, "adaptive.restart_cap must be non-negative")
	}
	if c.Adaptive.ProbeWindow <= 0 {
		errs = append(errs, "adaptive.probe_window must be positive")
	}

	if c.KHop.K <= 0 {
		errs = append(errs, "khop.k must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
