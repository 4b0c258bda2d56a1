package classify

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/statroute/internal/domain/route"
	"github.com/kailas-cloud/statroute/internal/metrics"
)

// builtinGlossary holds the domain terms that usually signal a definition or
// concept question rather than a stat lookup.
var builtinGlossary = []string{
	"triple-double", "triple double", "double-double", "double double",
	"quadruple-double", "pick and roll", "pick-and-roll", "pick and pop",
	"alley-oop", "alley oop", "box out", "fast break", "full-court press",
	"zone defense", "man-to-man", "post up", "post-up", "shot clock",
	"salary cap", "luxury tax", "load management", "sixth man", "double team",
	"flagrant foul", "technical foul", "euro step", "and-one",
}

// Config configures an Engine.
type Config struct {
	Thresholds Thresholds
	// ExtraGlossary appends deployment-specific terms to the built-in glossary.
	ExtraGlossary []string
	// Logger receives verdict logs; nil means no logging.
	Logger *zap.Logger
}

// Engine is the heuristic query router. It is immutable after construction and
// safe for concurrent use: Classify is a pure function of its input string plus
// the precompiled pattern table.
type Engine struct {
	thresholds Thresholds
	glossary   []string
	logger     *zap.Logger
}

// New creates an Engine. Threshold misconfiguration fails fast here, not per call.
func New(cfg Config) (*Engine, error) {
	t := cfg.Thresholds
	if t == (Thresholds{}) {
		t = DefaultThresholds()
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("classify: invalid thresholds: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	glossary := make([]string, 0, len(builtinGlossary)+len(cfg.ExtraGlossary))
	glossary = append(glossary, builtinGlossary...)
	glossary = append(glossary, cfg.ExtraGlossary...)

	return &Engine{thresholds: t, glossary: glossary, logger: logger}, nil
}

// Classify routes a free-text question to a retrieval strategy and derives the
// retrieval tuning parameters. It is total over its input: any string, empty
// included, yields a decision.
func (e *Engine) Classify(query string) route.Decision {
	start := time.Now()
	norm := normalize(query)

	// Metadata is estimated unconditionally; it never depends on the verdict.
	d := route.Decision{
		Biographical: isBiographical(query, norm),
		Depth:        estimateDepth(norm),
	}
	d.Style = estimateStyle(norm)
	d.MaxExpansions = estimateExpansions(norm, d.Style)

	if verdict, name, ok := e.runPrefilters(query, norm); ok {
		d.Type = verdict
		d.Prefilter = name
		e.record(d, start)
		e.logger.Debug("query classified by pre-filter",
			zap.String("prefilter", name),
			zap.String("query_type", string(d.Type)),
		)
		return d
	}

	stat := scoreFamily(statGroups, norm)
	ctx := scoreFamily(ctxGroups, norm)

	d.StatScore = stat.total
	d.CtxScore = ctx.total
	d.StatGroups = stat.matched
	d.CtxGroups = ctx.matched
	d.Type = decide(e.thresholds, norm, stat, ctx)

	e.record(d, start)
	e.logger.Debug("query classified",
		zap.String("query_type", string(d.Type)),
		zap.Float64("stat_score", stat.total),
		zap.Float64("ctx_score", ctx.total),
		zap.Strings("stat_groups", stat.matched),
		zap.Strings("ctx_groups", ctx.matched),
		zap.String("style", string(d.Style)),
		zap.Int("depth", d.Depth),
		zap.Int("max_expansions", d.MaxExpansions),
	)
	return d
}

func (e *Engine) runPrefilters(raw, norm string) (route.Type, string, bool) {
	for _, pf := range prefilters {
		if verdict, ok := pf.check(e, raw, norm); ok {
			metrics.PrefilterHitsTotal.WithLabelValues(pf.name).Inc()
			return verdict, pf.name, true
		}
	}
	return "", "", false
}

func (e *Engine) hasGlossaryTerm(norm string) bool {
	for _, term := range e.glossary {
		if containsToken(norm, term) || containsToken(norm, term+"s") {
			return true
		}
	}
	return false
}

func (e *Engine) record(d route.Decision, start time.Time) {
	metrics.ClassificationsTotal.WithLabelValues(string(d.Type), string(d.Style)).Inc()
	metrics.ClassificationDuration.Observe(time.Since(start).Seconds())
}
