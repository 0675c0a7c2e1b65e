// Package config loads planner configuration from a YAML file, layered
// under flag and environment overrides applied by the CLI.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/signalsfoundry/passplan/internal/planner"
)

// Config is the planner's file-based configuration.
type Config struct {
	// Strategy selects the optimization algorithm: heuristic or ml.
	Strategy string `yaml:"strategy"`

	// ConflictBufferSeconds is the station turnaround gap between passes.
	ConflictBufferSeconds int `yaml:"conflict_buffer_seconds"`

	// Scheduling caps; zero means unconstrained.
	MaxPassesPerSatellite int `yaml:"max_passes_per_satellite"`
	MaxTotalPasses        int `yaml:"max_total_passes"`

	// Scenario is the path of the scenario JSON consumed by optimize/run.
	Scenario string `yaml:"scenario"`

	// Interval between re-planning rounds in run mode.
	Interval Duration `yaml:"interval"`

	// MetricsAddr is the listen address for /metrics in run mode;
	// empty disables the endpoint.
	MetricsAddr string `yaml:"metrics_addr"`

	Log LogConfig `yaml:"log"`
}

// LogConfig mirrors logging.Config for the YAML surface.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Duration accepts Go duration strings ("10m", "1h30m") in YAML.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("duration must be a string like \"5m\": %w", err)
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// AsDuration returns the underlying time.Duration.
func (d Duration) AsDuration() time.Duration { return time.Duration(d) }

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Strategy:              planner.StrategyHeuristic,
		ConflictBufferSeconds: int(planner.DefaultConflictBuffer / time.Second),
		Interval:              Duration(5 * time.Minute),
	}
}

// Load reads path and overlays it on the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the planner would refuse anyway, so
// mistakes surface at startup rather than mid-run.
func (c Config) Validate() error {
	switch c.Strategy {
	case "", planner.StrategyHeuristic, planner.StrategyML:
	default:
		return fmt.Errorf("unknown strategy %q", c.Strategy)
	}
	if c.ConflictBufferSeconds < 0 {
		return fmt.Errorf("conflict_buffer_seconds must not be negative")
	}
	if c.MaxPassesPerSatellite < 0 || c.MaxTotalPasses < 0 {
		return fmt.Errorf("pass caps must not be negative")
	}
	if c.Interval < 0 {
		return fmt.Errorf("interval must not be negative")
	}
	return nil
}

// ConflictBuffer returns the buffer as a duration.
func (c Config) ConflictBuffer() time.Duration {
	return time.Duration(c.ConflictBufferSeconds) * time.Second
}
