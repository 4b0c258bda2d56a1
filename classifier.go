package statroute

import (
	"fmt"

	"github.com/kailas-cloud/statroute/internal/classify"
)

// Classifier routes free-text questions to a retrieval strategy. It is
// immutable after construction and safe for concurrent use without locks:
// Classify is a pure function of its input plus the precompiled pattern table.
type Classifier struct {
	engine *classify.Engine
}

// New creates a Classifier. Misconfigured thresholds fail fast here.
func New(opts ...Option) (*Classifier, error) {
	cfg := &classifierConfig{}
	for _, o := range opts {
		o(cfg)
	}

	engine, err := classify.New(classify.Config{
		Thresholds:    cfg.thresholds,
		ExtraGlossary: cfg.glossary,
		Logger:        cfg.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("statroute: %w", err)
	}

	return &Classifier{engine: engine}, nil
}

// Classify routes a query and derives its retrieval tuning parameters. It is
// total over its input: any UTF-8 string, empty included, yields a Result.
// Pattern-free queries resolve to the default Contextual verdict.
func (c *Classifier) Classify(query string) Result {
	return fromDecision(c.engine.Classify(query))
}
