package triage

import (
	"fmt"

	"github.com/medha-scaler/triage/types"
)

// Config is the configuration for the Engine.
//
// Only the built-in pipeline reads these values: the weights feed the
// default weighted scorer and DefaultCapacity feeds the user catalog.
// Custom components supplied via options carry their own configuration.
type Config struct {
	// SkillWeight is the weight of the skill match component in candidate
	// scoring. Must not be negative.
	SkillWeight float64 `yaml:"skillWeight"`

	// WorkloadWeight is the weight of the free capacity component in
	// candidate scoring. Must not be negative.
	WorkloadWeight float64 `yaml:"workloadWeight"`

	// DefaultCapacity is applied to registrations that carry no positive
	// capacity. Must be positive.
	DefaultCapacity int `yaml:"defaultCapacity"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		SkillWeight:     0.7,
		WorkloadWeight:  0.3,
		DefaultCapacity: 5,
	}
}

// SetDefaults fills in missing configuration values with production defaults.
//
// Both weights at zero is treated as unset and replaced by the defaults;
// a single explicit zero weight is respected so one component can be
// switched off.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.SkillWeight == 0 && cfg.WorkloadWeight == 0 {
		cfg.SkillWeight = defaults.SkillWeight
		cfg.WorkloadWeight = defaults.WorkloadWeight
	}
	if cfg.DefaultCapacity == 0 {
		cfg.DefaultCapacity = defaults.DefaultCapacity
	}
}

// Validate checks configuration constraints and returns error for invalid values.
//
// Hard Validation Rules:
//   - SkillWeight >= 0 and WorkloadWeight >= 0
//   - SkillWeight + WorkloadWeight > 0 (scores must be able to differ)
//   - DefaultCapacity > 0
//
// Returns:
//   - error: Validation error wrapping ErrInvalidConfig, nil if valid
func (cfg *Config) Validate() error {
	// Rule 1: weights must not be negative
	if cfg.SkillWeight < 0 || cfg.WorkloadWeight < 0 {
		return fmt.Errorf(
			"scoring weights must not be negative (skill %v, workload %v): %w",
			cfg.SkillWeight, cfg.WorkloadWeight, types.ErrInvalidConfig,
		)
	}

	// Rule 2: at least one weight must contribute
	if cfg.SkillWeight+cfg.WorkloadWeight <= 0 {
		return fmt.Errorf(
			"scoring weights must not both be zero: %w",
			types.ErrInvalidConfig,
		)
	}

	// Rule 3: DefaultCapacity sanity
	if cfg.DefaultCapacity <= 0 {
		return fmt.Errorf(
			"DefaultCapacity must be > 0, got %d: %w",
			cfg.DefaultCapacity, types.ErrInvalidConfig,
		)
	}

	return nil
}

// ValidateWithWarnings checks configuration and logs warnings for non-recommended values.
//
// This is called after Validate() in New() to provide operator guidance.
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	// Warn if the weights do not sum to 1, scores leave the 0..1 scale
	if sum := cfg.SkillWeight + cfg.WorkloadWeight; sum != 1.0 {
		logger.Warn(
			"scoring weights do not sum to 1, scores will not be on a 0..1 scale",
			"skillWeight", cfg.SkillWeight,
			"workloadWeight", cfg.WorkloadWeight,
			"sum", sum,
		)
	}

	// Warn if DefaultCapacity is large enough to make capacity gating moot
	if cfg.DefaultCapacity > 100 {
		logger.Warn(
			"DefaultCapacity is very large, saturated users will be rare",
			"defaultCapacity", cfg.DefaultCapacity,
			"recommended", "100 or lower",
		)
	}
}
