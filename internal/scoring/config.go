package scoring

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance for scoring configs.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Default tuning values. They reproduce the result behavior the published
// quizzes were calibrated against; override them per engine only when a
// catalog ships its own tuning.
const (
	DefaultSecondaryThreshold     = 0.70
	DefaultHighConfidenceCutoff   = 1.0
	DefaultMediumConfidenceCutoff = 0.6
)

// Config tunes result assembly and confidence classification. Aggregation
// and ranking are not configurable.
type Config struct {
	// SecondaryThreshold is the fraction of the primary total a runner-up
	// must reach to be reported as the secondary archetype.
	SecondaryThreshold float64 `yaml:"secondaryThreshold" json:"secondaryThreshold" validate:"gt=0,lte=1"`

	// HighConfidenceCutoff is the minimum completion factor for a result
	// to qualify as high confidence.
	HighConfidenceCutoff float64 `yaml:"highConfidenceCutoff" json:"highConfidenceCutoff" validate:"gt=0,lte=1"`

	// MediumConfidenceCutoff is the minimum completion factor for a result
	// to qualify as medium confidence. Must not exceed HighConfidenceCutoff.
	MediumConfidenceCutoff float64 `yaml:"mediumConfidenceCutoff" json:"mediumConfidenceCutoff" validate:"gt=0,ltefield=HighConfidenceCutoff"`
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		SecondaryThreshold:     DefaultSecondaryThreshold,
		HighConfidenceCutoff:   DefaultHighConfidenceCutoff,
		MediumConfidenceCutoff: DefaultMediumConfidenceCutoff,
	}
}

// Validate checks that every tuning value is in range.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid scoring config: %w", err)
	}
	return nil
}
