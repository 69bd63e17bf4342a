package config

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/covpath/grid"
	"github.com/katalvlaran/covpath/heuristic"
	"github.com/katalvlaran/covpath/internal/logging"
	"github.com/katalvlaran/covpath/planner"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Planner.Orientation != "up" {
		t.Errorf("Planner.Orientation = %q, want %q", cfg.Planner.Orientation, "up")
	}
	if cfg.Planner.CoverageHeuristic != "vertical" {
		t.Errorf("Planner.CoverageHeuristic = %q, want %q", cfg.Planner.CoverageHeuristic, "vertical")
	}
	if cfg.Planner.RecoveryHeuristic != "manhattan" {
		t.Errorf("Planner.RecoveryHeuristic = %q, want %q", cfg.Planner.RecoveryHeuristic, "manhattan")
	}
	if !cfg.Output.Policy {
		t.Error("Output.Policy should be true by default")
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "warn")
	}
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("default config is invalid: %v", errs)
	}
}

// loadYAML registers defaults on a fresh viper and reads doc as the config file.
func loadYAML(t *testing.T, doc string) (*Config, error) {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewBufferString(doc)))
	return Load(v)
}

func TestLoad_DefaultsOnly(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	cfg, err := Load(v)
	require.NoError(t, err)

	want := Default()
	assert.Equal(t, want.Planner, cfg.Planner)
	assert.Equal(t, want.Output, cfg.Output)
	assert.Equal(t, want.Logging, cfg.Logging)
	assert.Empty(t, cfg.Sweep.Heuristics)
	assert.Empty(t, cfg.Sweep.Orientations)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := loadYAML(t, `
planner:
  orientation: down
  coverage_heuristic: CHEBYSHEV
sweep:
  heuristics: [manhattan, vertical]
  orientations: ["0", right]
  top: 3
logging:
  level: debug
`)
	require.NoError(t, err)

	assert.Equal(t, "down", cfg.Planner.Orientation)
	assert.Equal(t, "CHEBYSHEV", cfg.Planner.CoverageHeuristic)
	assert.Equal(t, "manhattan", cfg.Planner.RecoveryHeuristic, "default kept")
	assert.Equal(t, []string{"manhattan", "vertical"}, cfg.Sweep.Heuristics)
	assert.Equal(t, 3, cfg.Sweep.Top)
	assert.True(t, cfg.Output.Policy, "default kept")
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := loadYAML(t, `
planner:
  orientation: north
  recovery_heuristic: euclid
`)
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 2)
	assert.Equal(t, "planner.orientation", verrs[0].Field)
	assert.Equal(t, "planner.recovery_heuristic", verrs[1].Field)
	assert.Contains(t, err.Error(), "2 validation errors")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		fields []string
	}{
		{"Valid", func(*Config) {}, nil},
		{"NumericOrientation", func(c *Config) { c.Planner.Orientation = "2" }, nil},
		{"BadOrientation", func(c *Config) { c.Planner.Orientation = "7" }, []string{"planner.orientation"}},
		{"BadCoverage", func(c *Config) { c.Planner.CoverageHeuristic = "" }, []string{"planner.coverage_heuristic"}},
		{"BadSweepEntries", func(c *Config) {
			c.Sweep.Heuristics = []string{"vertical", "diagonal"}
			c.Sweep.Orientations = []string{"sideways"}
		}, []string{"sweep.heuristics[1]", "sweep.orientations[0]"}},
		{"NegativeTop", func(c *Config) { c.Sweep.Top = -1 }, []string{"sweep.top"}},
		{"LogLevelCase", func(c *Config) { c.Logging.Level = "INFO" }, nil},
		{"BadLogLevel", func(c *Config) { c.Logging.Level = "verbose" }, []string{"logging.level"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)

			var got []string
			for _, e := range cfg.Validate() {
				got = append(got, e.Field)
			}
			assert.Equal(t, tc.fields, got)
		})
	}
}

// TestValidate_LogLevelMessage lists the logger's accepted levels.
func TestValidate_LogLevelMessage(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "trace"
	errs := cfg.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "logging.level", errs[0].Field)
	assert.Equal(t, "must be one of: debug, info, warn, error", errs[0].Message)

	for _, level := range logging.ValidLevels() {
		cfg.Logging.Level = level
		assert.Empty(t, cfg.Validate(), level)
	}
}

func TestValidationError_Error(t *testing.T) {
	e := ValidationError{Field: "sweep.top", Value: -1, Message: "must be non-negative"}
	assert.Equal(t, "sweep.top: must be non-negative (got: -1)", e.Error())
	assert.Equal(t, "", ValidationErrors{}.Error())
	assert.Equal(t, e.Error(), ValidationErrors{e}.Error())
}

func TestPlannerOptions(t *testing.T) {
	cfg := Default()
	cfg.Planner.Orientation = "right"
	cfg.Planner.CoverageHeuristic = "horizontal"
	cfg.Planner.RecoveryHeuristic = "chebyshev"

	opts := planner.DefaultOptions()
	logger := logging.NopLogger()
	for _, opt := range cfg.PlannerOptions(logger) {
		opt(&opts)
	}

	assert.Equal(t, grid.Right, opts.Orientation)
	assert.Equal(t, heuristic.Horizontal, opts.CoverageHeuristic)
	assert.Equal(t, heuristic.Chebyshev, opts.RecoveryHeuristic)
	assert.Same(t, logger, opts.Logger)
}

func TestSweepAxes(t *testing.T) {
	cfg := Default()
	kinds, orientations := cfg.SweepAxes()
	assert.Empty(t, kinds)
	assert.Empty(t, orientations)

	cfg.Sweep.Heuristics = []string{"Vertical", "manhattan"}
	cfg.Sweep.Orientations = []string{"left", "3"}
	kinds, orientations = cfg.SweepAxes()
	assert.Equal(t, []heuristic.Kind{heuristic.Vertical, heuristic.Manhattan}, kinds)
	assert.Equal(t, []grid.Orientation{grid.Left, grid.Right}, orientations)
}
