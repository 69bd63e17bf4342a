package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/covpath/grid"
	"github.com/katalvlaran/covpath/heuristic"
	"github.com/katalvlaran/covpath/internal/logging"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "planner.orientation")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidHeuristics returns the accepted heuristic names
func ValidHeuristics() []string {
	out := make([]string, 0, len(heuristic.Kinds()))
	for _, k := range heuristic.Kinds() {
		out = append(out, strings.ToLower(k.String()))
	}
	return out
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validatePlanner()...)
	errors = append(errors, c.validateSweep()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validatePlanner() []ValidationError {
	var errors []ValidationError

	if _, err := grid.ParseOrientation(c.Planner.Orientation); err != nil {
		errors = append(errors, ValidationError{
			Field:   "planner.orientation",
			Value:   c.Planner.Orientation,
			Message: "must be one of: up, left, down, right, 0, 1, 2, 3",
		})
	}
	errors = append(errors, validateHeuristic("planner.coverage_heuristic", c.Planner.CoverageHeuristic)...)
	errors = append(errors, validateHeuristic("planner.recovery_heuristic", c.Planner.RecoveryHeuristic)...)

	return errors
}

func (c *Config) validateSweep() []ValidationError {
	var errors []ValidationError

	for i, h := range c.Sweep.Heuristics {
		errors = append(errors, validateHeuristic(fmt.Sprintf("sweep.heuristics[%d]", i), h)...)
	}
	for i, o := range c.Sweep.Orientations {
		if _, err := grid.ParseOrientation(o); err != nil {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("sweep.orientations[%d]", i),
				Value:   o,
				Message: "must be one of: up, left, down, right, 0, 1, 2, 3",
			})
		}
	}
	if c.Sweep.Top < 0 {
		errors = append(errors, ValidationError{
			Field:   "sweep.top",
			Value:   c.Sweep.Top,
			Message: "must be non-negative",
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(logging.ValidLevels(), strings.ToUpper(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.ToLower(strings.Join(logging.ValidLevels(), ", "))),
		})
	}

	return errors
}

func validateHeuristic(field, value string) []ValidationError {
	if _, err := heuristic.ParseKind(value); err != nil {
		return []ValidationError{{
			Field:   field,
			Value:   value,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidHeuristics(), ", ")),
		}}
	}
	return nil
}
