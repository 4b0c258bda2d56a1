package classify

import "testing"

func TestIsOpinionQuery(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"who is the best player", true},
		{"most exciting team to watch", true},
		{"why is lebron considered the goat?", true},
		{"that dunk was insane", true},
		// A measurable qualifier turns the superlative into a stat question.
		{"who is the best scorer", false},
		{"best rebounders this season", false},
		{"compare their stats and explain who's better", false},
		// Numeric or time context disarms colloquial intensity.
		{"insane 40 point game", false},
		{"top 5 scorers", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := isOpinionQuery(normalize(tt.query)); got != tt.want {
				t.Errorf("isOpinionQuery(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestIsDebateQuery(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"what do fans debate about the most", true},
		{"is there a consensus among experts on the mvp", true},
		{"what are analysts discussing regarding the trade", true},
		// Missing one of subject, verb or topic connector.
		{"fans love the team", false},
		{"the ongoing debate", false},
		{"discuss the matchup", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := isDebateQuery(normalize(tt.query)); got != tt.want {
				t.Errorf("isDebateQuery(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestIsDefinitional(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"define pace", true},
		{"what is the definition of a screen", true},
		{"what is a triple-double?", true},
		{"what does clutch mean", true},
		{"explain the concept of spacing", true},
		// Definitional phrasing must be present, stat vocabulary alone is not.
		{"top scorers this season", false},
		{"what happened last night", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := isDefinitional(normalize(tt.query)); got != tt.want {
				t.Errorf("isDefinitional(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestHasStatIntent(t *testing.T) {
	for _, q := range []string{
		"how many triple-doubles",
		"top pick and roll scorers",
		"more than 20 points",
		"best at the fast break",
		"5 assists",
	} {
		if !hasStatIntent(normalize(q)) {
			t.Errorf("hasStatIntent(%q) = false, want true", q)
		}
	}
	for _, q := range []string{
		"what happens on a pick and roll",
		"tell me about zone defense",
		"",
	} {
		if hasStatIntent(normalize(q)) {
			t.Errorf("hasStatIntent(%q) = true, want false", q)
		}
	}
}

func TestPrefilterOrder(t *testing.T) {
	want := []string{"opinion", "biographical", "debate", "definitional", "glossary"}
	if len(prefilters) != len(want) {
		t.Fatalf("got %d prefilters, want %d", len(prefilters), len(want))
	}
	for i, name := range want {
		if prefilters[i].name != name {
			t.Errorf("prefilter[%d] = %q, want %q", i, prefilters[i].name, name)
		}
	}
}
