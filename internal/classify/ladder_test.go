package classify

import (
	"testing"

	"github.com/kailas-cloud/statroute/internal/domain/route"
)

func TestDecideConnectorTier(t *testing.T) {
	th := DefaultThresholds()

	t.Run("connector with both signals", func(t *testing.T) {
		got := decide(th, "top scorers and explain the drop", score{total: 2.5}, score{total: 0.5})
		if got != route.Hybrid {
			t.Errorf("decide = %s, want hybrid", got)
		}
	})

	t.Run("dash connector", func(t *testing.T) {
		got := decide(th, "points per game - why the decline", score{total: 2.0}, score{total: 1.0})
		if got != route.Hybrid {
			t.Errorf("decide = %s, want hybrid", got)
		}
	})

	t.Run("connector without stat signal falls through", func(t *testing.T) {
		got := decide(th, "the rumors and why they spread", score{total: 0}, score{total: 3.0})
		if got != route.Contextual {
			t.Errorf("decide = %s, want contextual", got)
		}
	})
}

func TestDecideRatioTier(t *testing.T) {
	th := DefaultThresholds()

	t.Run("balanced scores promote to hybrid", func(t *testing.T) {
		if got := decide(th, "q", score{total: 4.0}, score{total: 2.5}); got != route.Hybrid {
			t.Errorf("decide = %s, want hybrid (ratio 0.625)", got)
		}
	})

	t.Run("ratio exactly at threshold", func(t *testing.T) {
		if got := decide(th, "q", score{total: 5.0}, score{total: 2.0}); got != route.Hybrid {
			t.Errorf("decide = %s, want hybrid (ratio 0.4)", got)
		}
	})

	t.Run("floor not reached", func(t *testing.T) {
		if got := decide(th, "q", score{total: 1.4}, score{total: 1.4}); got != route.Contextual {
			t.Errorf("decide = %s, want contextual (below floor, tie)", got)
		}
	})
}

func TestDecideAutoPromoteTier(t *testing.T) {
	th := DefaultThresholds()

	t.Run("strong stat with non-trivial ctx", func(t *testing.T) {
		// ratio 2.0/6.0 = 0.33 is below the ratio tier; auto-promote catches it.
		if got := decide(th, "q", score{total: 6.0}, score{total: 2.0}); got != route.Hybrid {
			t.Errorf("decide = %s, want hybrid", got)
		}
	})

	t.Run("ctx below auto-promote floor", func(t *testing.T) {
		if got := decide(th, "q", score{total: 6.0}, score{total: 1.4}); got != route.Statistical {
			t.Errorf("decide = %s, want statistical", got)
		}
	})
}

func TestDecideWinnerTakeAll(t *testing.T) {
	th := DefaultThresholds()

	tests := []struct {
		name string
		stat float64
		ctx  float64
		want route.Type
	}{
		{"stat wins", 3.0, 1.0, route.Statistical},
		{"ctx wins", 1.0, 3.0, route.Contextual},
		{"tie defaults to contextual", 1.0, 1.0, route.Contextual},
		{"zero-zero defaults to contextual", 0, 0, route.Contextual},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decide(th, "q", score{total: tt.stat}, score{total: tt.ctx})
			if got != tt.want {
				t.Errorf("decide(%g, %g) = %s, want %s", tt.stat, tt.ctx, got, tt.want)
			}
		})
	}
}

func TestThresholdsValidate(t *testing.T) {
	if err := DefaultThresholds().Validate(); err != nil {
		t.Fatalf("default thresholds invalid: %v", err)
	}

	bad := []Thresholds{
		{RatioMinScore: 1.5, Ratio: 0, AutoPromoteStat: 4, AutoPromoteCtx: 2},
		{RatioMinScore: 1.5, Ratio: 1.5, AutoPromoteStat: 4, AutoPromoteCtx: 2},
		{RatioMinScore: -1, Ratio: 0.4, AutoPromoteStat: 4, AutoPromoteCtx: 2},
		{RatioMinScore: 1.5, Ratio: 0.4, AutoPromoteStat: 0, AutoPromoteCtx: 2},
	}
	for _, th := range bad {
		if err := th.Validate(); err == nil {
			t.Errorf("Validate(%+v) = nil, want error", th)
		}
	}
}
