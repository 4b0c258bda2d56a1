package classify

import (
	"regexp"
	"strings"
)

var (
	// Capitalized-name form runs on the raw query; normalization lowercases.
	bioCapitalizedName = regexp.MustCompile(
		`\b(?:[Ww]ho is|[Ww]ho's|[Tt]ell me about)\s+(?:[A-Z][\w'.-]*)(?:\s+[A-Z][\w'.-]*)*`)
	bioNoun = regexp.MustCompile(
		`\b(background|history|biography|career|story) of\b`)
	bioSubject = regexp.MustCompile(
		`\b(players?|athletes?|teams?)\b`)

	// Discussion-about-topics must not be mistaken for discussion-about-a-person.
	bioExclusion = regexp.MustCompile(
		`\bmost discussed\b|\bdiscussed topics?\b|\bhot topics?\b|\btalking points?\b` +
			`|\bwhat do (fans|people|experts|analysts|the community)\b` +
			`|\b(consensus|popular|common) (view|views|opinion|opinions|take|takes)\b`)

	// Fixed list of well-known proper names recognized after a lead-in phrase.
	commonNames = []string{
		"lebron", "lebron james", "michael jordan", "jordan", "kobe", "kobe bryant",
		"curry", "stephen curry", "steph", "durant", "kevin durant", "giannis",
		"antetokounmpo", "jokic", "jokić", "nikola jokic", "embiid", "joel embiid",
		"luka", "doncic", "dončić", "shaq", "shaquille", "magic johnson", "larry bird",
		"tim duncan", "kareem", "wilt", "hakeem", "dirk", "wembanyama", "tatum",
		"lakers", "celtics", "warriors", "bulls", "spurs", "nuggets", "heat", "knicks",
	}

	// A known name must directly follow the lead-in, so "who's better, jokic
	// or embiid" does not read as a biography request.
	bioKnownName = regexp.MustCompile(
		`\b(who is|who's|tell me about|info on|information (on|about)) (the )?(` +
			joinQuoted(commonNames) + `)\b`)
)

func joinQuoted(terms []string) string {
	quoted := make([]string, len(terms))
	for i, t := range terms {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return strings.Join(quoted, "|")
}

// isBiographical detects "who is X" / "tell me about X" / "career of a player"
// questions. The exclusion set is stronger than any inclusion: topic-discussion
// phrasing forces a negative even when a name-like token is present.
func isBiographical(raw, norm string) bool {
	if bioExclusion.MatchString(norm) {
		return false
	}

	if bioKnownName.MatchString(norm) {
		return true
	}

	if bioCapitalizedName.MatchString(strings.TrimSpace(raw)) {
		return true
	}

	return bioNoun.MatchString(norm) && bioSubject.MatchString(norm)
}

// containsToken reports whether name appears in q on word boundaries.
func containsToken(q, name string) bool {
	idx := 0
	for {
		i := strings.Index(q[idx:], name)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(name)
		if (start == 0 || !isWordChar(q[start-1])) && (end == len(q) || !isWordChar(q[end])) {
			return true
		}
		idx = start + 1
	}
}

func isWordChar(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
