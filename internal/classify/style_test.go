package classify

import (
	"testing"

	"github.com/kailas-cloud/statroute/internal/domain/route"
)

func TestEstimateStyle(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  route.Style
	}{
		{"chat slang", "gimme the assist leaders plz", route.Noisy},
		{"repeated punctuation", "who won???", route.Noisy},
		{"off topic", "what's the weather in denver", route.Noisy},
		{"script injection", "<script>alert(1)</script>", route.Noisy},
		{"sql injection", "'; DROP TABLE players; --", route.Noisy},
		{"path traversal", "../../etc/passwd", route.Noisy},
		{"template injection", "{{config}}", route.Noisy},
		{"single non-greeting word", "rebounds", route.Noisy},
		{"keyword stuffing", "lebron lebron lebron stats", route.Noisy},

		{"synthesis vocab", "what trends do you see in scoring", route.Complex},
		{"multi-part connector", "list the leaders and explain the gap", route.Complex},
		{"cross reference", "how do centers differ from guards", route.Complex},
		{"strategic vocab", "the evolution of the three point era", route.Complex},
		{"two conjunctions", "points and assists and rebounds for jokic", route.Complex},
		{"over fifteen words",
			"please list every single regular season game where the home team scored at least one hundred points", route.Complex},

		{"bare pronoun", "he averaged what", route.Conversational},
		{"follow up", "what about last season", route.Conversational},
		{"correction", "actually i meant the playoffs", route.Conversational},
		{"topic switch", "going back to the lakers", route.Conversational},
		{"progressive filter", "only from the 2020 season", route.Conversational},
		{"implicit continuation", "same for utah", route.Conversational},

		{"plain question", "which team won the most games in 2016", route.Simple},
		{"single greeting word is not noisy", "hello", route.Conversational},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := estimateStyle(normalize(tt.query)); got != tt.want {
				t.Errorf("estimateStyle(%q) = %s, want %s", tt.query, got, tt.want)
			}
		})
	}
}

func TestNoisyBeatsComplex(t *testing.T) {
	// Priority: noisy wins even when complex markers are present.
	q := normalize("plz analyze the trends and explain the strategy behind the scheme")
	if got := estimateStyle(q); got != route.Noisy {
		t.Errorf("estimateStyle = %s, want noisy", got)
	}
}

func TestIsKeywordStuffed(t *testing.T) {
	if !isKeywordStuffed([]string{"stats", "stats", "stats"}) {
		t.Error("three repeats should count as stuffing")
	}
	if isKeywordStuffed([]string{"stats", "stats", "points"}) {
		t.Error("two repeats should not count as stuffing")
	}
	if isKeywordStuffed(nil) {
		t.Error("empty input is not stuffed")
	}
}
