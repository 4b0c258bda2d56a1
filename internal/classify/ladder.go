package classify

import (
	"fmt"
	"regexp"

	"github.com/kailas-cloud/statroute/internal/domain/route"
)

// Thresholds holds the tuning constants of the hybrid decision ladder. The
// defaults are empirically tuned; they are configuration, not derived values.
type Thresholds struct {
	// RatioMinScore is the per-family floor for the ratio tier.
	RatioMinScore float64
	// Ratio is the min/max score ratio at or above which neither family
	// dominates enough to be ignored.
	Ratio float64
	// AutoPromoteStat and AutoPromoteCtx trigger the auto-promote tier: a very
	// strong statistical signal co-occurring with a non-trivial contextual one.
	AutoPromoteStat float64
	AutoPromoteCtx  float64
}

// DefaultThresholds returns the standard ladder constants.
func DefaultThresholds() Thresholds {
	return Thresholds{
		RatioMinScore:   1.5,
		Ratio:           0.4,
		AutoPromoteStat: 4.0,
		AutoPromoteCtx:  2.0,
	}
}

// Validate checks the thresholds for correctness.
func (t Thresholds) Validate() error {
	if t.Ratio <= 0 || t.Ratio > 1 {
		return fmt.Errorf("ratio must be in (0, 1], got %g", t.Ratio)
	}
	if t.RatioMinScore < 0 {
		return fmt.Errorf("ratio_min_score must be >= 0, got %g", t.RatioMinScore)
	}
	if t.AutoPromoteStat <= 0 || t.AutoPromoteCtx <= 0 {
		return fmt.Errorf("auto-promote thresholds must be > 0, got %g/%g",
			t.AutoPromoteStat, t.AutoPromoteCtx)
	}
	return nil
}

// connector matches structural bridge phrases joining a stat clause to an
// explanation clause. Dashes were normalized to " - " beforehand.
var connector = regexp.MustCompile(
	`\b(and explain|and why|then explain|but why)\b| - (explain|why|how|what makes)\b`)

// decide walks the hybrid ladder (connector, ratio, auto-promote) and falls
// back to winner-take-all. An exact tie, including 0-0, defaults to contextual.
func decide(t Thresholds, norm string, stat, ctx score) route.Type {
	if connector.MatchString(norm) && stat.total > 0 && ctx.total > 0 {
		return route.Hybrid
	}

	if stat.total >= t.RatioMinScore && ctx.total >= t.RatioMinScore {
		lo, hi := stat.total, ctx.total
		if lo > hi {
			lo, hi = hi, lo
		}
		if lo/hi >= t.Ratio {
			return route.Hybrid
		}
	}

	if stat.total >= t.AutoPromoteStat && ctx.total >= t.AutoPromoteCtx {
		return route.Hybrid
	}

	if stat.total > ctx.total {
		return route.Statistical
	}
	return route.Contextual
}
