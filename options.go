package statroute

import (
	"go.uber.org/zap"

	"github.com/kailas-cloud/statroute/internal/classify"
)

type classifierConfig struct {
	thresholds classify.Thresholds
	glossary   []string
	logger     *zap.Logger
}

// Option configures a Classifier.
type Option func(*classifierConfig)

// Thresholds holds the tuning constants of the hybrid decision ladder.
type Thresholds = classify.Thresholds

// DefaultThresholds returns the standard ladder constants.
func DefaultThresholds() Thresholds {
	return classify.DefaultThresholds()
}

// WithThresholds overrides the decision ladder constants.
func WithThresholds(t Thresholds) Option {
	return func(c *classifierConfig) {
		c.thresholds = t
	}
}

// WithGlossaryTerms appends deployment-specific terms to the built-in domain
// glossary used by the glossary pre-filter.
func WithGlossaryTerms(terms ...string) Option {
	return func(c *classifierConfig) {
		c.glossary = append(c.glossary, terms...)
	}
}

// WithLogger sets the logger for verdict logging. Logging is fire-and-forget
// and never affects the returned result; the default is a nop logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *classifierConfig) {
		c.logger = logger
	}
}
