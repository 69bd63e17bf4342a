// Package config holds the covpath command-line configuration: defaults,
// viper loading and validation. The planner library itself is configured
// with functional options; this package translates a Config into them.
package config

import (
	"github.com/spf13/viper"

	"github.com/katalvlaran/covpath/grid"
	"github.com/katalvlaran/covpath/heuristic"
	"github.com/katalvlaran/covpath/internal/logging"
	"github.com/katalvlaran/covpath/planner"
)

// Config represents the complete covpath configuration
type Config struct {
	Planner PlannerConfig `mapstructure:"planner"`
	Sweep   SweepConfig   `mapstructure:"sweep"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// PlannerConfig controls a single planning run
type PlannerConfig struct {
	// Orientation is the initial heading: up, left, down, right or 0..3
	Orientation string `mapstructure:"orientation"`
	// CoverageHeuristic orders greedy coverage moves
	// Options: "manhattan", "chebyshev", "horizontal", "vertical"
	CoverageHeuristic string `mapstructure:"coverage_heuristic"`
	// RecoveryHeuristic orders nearest-unvisited expansion (same options)
	RecoveryHeuristic string `mapstructure:"recovery_heuristic"`
}

// SweepConfig controls the heuristic x orientation sweep
type SweepConfig struct {
	// Heuristics lists coverage heuristics to try (empty = all)
	Heuristics []string `mapstructure:"heuristics"`
	// Orientations lists initial headings to try (empty = all)
	Orientations []string `mapstructure:"orientations"`
	// Top limits how many ranked rows are printed (0 = all)
	Top int `mapstructure:"top"`
}

// OutputConfig controls what the plan and sweep commands print
type OutputConfig struct {
	// Policy prints the per-cell policy map
	Policy bool `mapstructure:"policy"`
	// Path prints the (x, y) path, x being the column
	Path bool `mapstructure:"path"`
}

// LoggingConfig controls diagnostics written to stderr
type LoggingConfig struct {
	// Level is the minimum level: debug, info, warn or error
	Level string `mapstructure:"level"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Planner: PlannerConfig{
			Orientation:       "up",
			CoverageHeuristic: "vertical",
			RecoveryHeuristic: "manhattan",
		},
		Sweep: SweepConfig{
			Heuristics:   []string{},
			Orientations: []string{},
			Top:          0,
		},
		Output: OutputConfig{
			Policy: true,
			Path:   false,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// SetDefaults registers default values with v
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	// Planner defaults
	v.SetDefault("planner.orientation", defaults.Planner.Orientation)
	v.SetDefault("planner.coverage_heuristic", defaults.Planner.CoverageHeuristic)
	v.SetDefault("planner.recovery_heuristic", defaults.Planner.RecoveryHeuristic)

	// Sweep defaults
	v.SetDefault("sweep.heuristics", defaults.Sweep.Heuristics)
	v.SetDefault("sweep.orientations", defaults.Sweep.Orientations)
	v.SetDefault("sweep.top", defaults.Sweep.Top)

	// Output defaults
	v.SetDefault("output.policy", defaults.Output.Policy)
	v.SetDefault("output.path", defaults.Output.Path)

	// Logging defaults
	v.SetDefault("logging.level", defaults.Logging.Level)
}

// Load reads the configuration from v and validates it
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// PlannerOptions translates the planner section into planner options.
// The config must have passed Validate.
func (c *Config) PlannerOptions(logger *logging.Logger) []planner.Option {
	o, _ := grid.ParseOrientation(c.Planner.Orientation)
	ck, _ := heuristic.ParseKind(c.Planner.CoverageHeuristic)
	rk, _ := heuristic.ParseKind(c.Planner.RecoveryHeuristic)

	return []planner.Option{
		planner.WithLogger(logger),
		planner.WithOrientation(o),
		planner.WithCoverageHeuristic(ck),
		planner.WithRecoveryHeuristic(rk),
	}
}

// SweepAxes returns the heuristic kinds and orientations to sweep.
// Empty lists stay empty, which Sweep reads as "all".
// The config must have passed Validate.
func (c *Config) SweepAxes() ([]heuristic.Kind, []grid.Orientation) {
	kinds := make([]heuristic.Kind, 0, len(c.Sweep.Heuristics))
	for _, s := range c.Sweep.Heuristics {
		k, _ := heuristic.ParseKind(s)
		kinds = append(kinds, k)
	}
	orientations := make([]grid.Orientation, 0, len(c.Sweep.Orientations))
	for _, s := range c.Sweep.Orientations {
		o, _ := grid.ParseOrientation(s)
		orientations = append(orientations, o)
	}
	return kinds, orientations
}
