package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix    = "SSSP_"
	configEnvVar = "SSSP_CONFIG_PATH"
)

// Loader loads Config from layered sources: defaults, then an optional YAML
// file, then environment variables (highest precedence), matching the
// layering the rest of the pack's services use for their own config.
type Loader struct {
	k           *koanf.Koanf
	configPaths []string
	envPrefix   string
}

// NewLoader creates a Loader with sensible default search paths.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k: koanf.New("."),
		configPaths: []string{
			"sssp.yaml",
			"config/sssp.yaml",
			"/etc/sssp-engine/config.yaml",
		},
		envPrefix: envPrefix,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithConfigPaths overrides the list of candidate config file paths.
func WithConfigPaths(paths ...string) LoaderOption {
	return func(l *Loader) {
		l.configPaths = paths
	}
}

// WithEnvPrefix overrides the environment variable prefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// Load resolves a Config with the precedence: defaults < file < env.
func (l *Loader) Load() (*Config, error) {
	if err := l.loadDefaults(); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if err := l.loadConfigFile(); err != nil {
		// The config file is optional; its absence is not fatal.
		fmt.Fprintf(os.Stderr, "sssp config: %v\n", err)
	}

	if err := l.loadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load env: %w", err)
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (l *Loader) loadDefaults() error {
	defaults := map[string]any{
		"app.name":        "sssp-engine",
		"app.environment": "development",

		"log.level":       "info",
		"log.format":      "json",
		"log.output":      "stdout",
		"log.max_size":    100,
		"log.max_backups": 3,
		"log.max_age":     7,
		"log.compress":    true,

		// Autotune candidate δ-multiplier set and probe cap (§4.5 defaults).
		// loadEnv also maps the environment variable names the original
		// benchmark harness drove the native core with onto these two keys.
		"autotune.set":   "0.5,1,2,4",
		"autotune.limit": 20000,

		// Adaptive controller target band and restart cap (§4.6 defaults).
		"adaptive.heavy_band_lo": 0.05,
		"adaptive.heavy_band_hi": 0.25,
		"adaptive.restart_cap":   2,
		"adaptive.probe_window":  16,

		// k-hop batch relaxer default hop count (§4.4 default).
		"khop.k": 3,
	}

	return l.k.Load(confmap.Provider(defaults, "."), nil)
}

func (l *Loader) loadConfigFile() error {
	if configPath := os.Getenv(configEnvVar); configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return l.k.Load(file.Provider(configPath), yaml.Parser())
		}
	}

	for _, path := range l.configPaths {
		absPath, err := filepath.Abs(path)
		if err != nil {
			continue
		}
		if _, err := os.Stat(absPath); err == nil {
			return l.k.Load(file.Provider(absPath), yaml.Parser())
		}
	}

	return fmt.Errorf("config file not found in paths: %v", l.configPaths)
}

func (l *Loader) loadEnv() error {
	return l.k.Load(env.Provider(l.envPrefix, ".", func(s string) string {
		// SSSP_STOC_AUTOTUNE_SET -> stoc_autotune_set; the mapping below
		// special-cases the two env var names the original benchmark
		// harness already used (SSSP_STOC_AUTOTUNE_SET/_LIMIT) so an
		// environment tuned for the original Python/Rust tool still works.
		key := strings.ToLower(strings.TrimPrefix(s, l.envPrefix))
		switch key {
		case "stoc_autotune_set":
			return "autotune.set"
		case "stoc_autotune_limit":
			return "autotune.limit"
		}
		return strings.Replace(key, "_", ".", 1)
	}), nil)
}

// MustLoad loads a Config or panics. Intended for process startup only.
func MustLoad(opts ...LoaderOption) *Config {
	cfg, err := NewLoader(opts...).Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load sssp config: %v", err))
	}
	return cfg
}

// Load is a convenience wrapper around NewLoader().Load().
func Load() (*Config, error) {
	return NewLoader().Load()
}
