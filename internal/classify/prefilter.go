package classify

import (
	"regexp"

	"github.com/kailas-cloud/statroute/internal/domain/route"
)

// prefilter is one semantic check in the priority-ordered chain. It either
// decides the verdict outright or passes (ok=false) to the next check.
type prefilter struct {
	name  string
	check func(e *Engine, raw, norm string) (route.Type, bool)
}

// prefilters run before weighted scoring, first match wins. The order is part
// of the contract: opinion > biographical > debate > definitional > glossary.
var prefilters = []prefilter{
	{"opinion", func(_ *Engine, _, norm string) (route.Type, bool) {
		if isOpinionQuery(norm) {
			return route.Contextual, true
		}
		return "", false
	}},
	{"biographical", func(_ *Engine, raw, norm string) (route.Type, bool) {
		if isBiographical(raw, norm) {
			return route.Hybrid, true
		}
		return "", false
	}},
	{"debate", func(_ *Engine, _, norm string) (route.Type, bool) {
		if isDebateQuery(norm) {
			return route.Hybrid, true
		}
		return "", false
	}},
	{"definitional", func(_ *Engine, _, norm string) (route.Type, bool) {
		if isDefinitional(norm) {
			return route.Contextual, true
		}
		return "", false
	}},
	{"glossary", func(e *Engine, _, norm string) (route.Type, bool) {
		if e.hasGlossaryTerm(norm) && !hasStatIntent(norm) {
			return route.Contextual, true
		}
		return "", false
	}},
}

var (
	subjectiveSuperlative = regexp.MustCompile(
		`\b(most (exciting|entertaining|fun|dominant|impressive|talented)|best|greatest|worst|better)\b`)
	colloquialIntensity = regexp.MustCompile(
		`\b(goat|greatest of all time|insane|crazy|unreal|washed|cold[ -]blooded)\b`)
	// measurable qualifiers that turn a superlative into a stat question
	statQualifier = regexp.MustCompile(
		`\b(scorers?|rebounders?|passers?|shooters?|defenders?|points?|rebounds?|assists?|steals?|blocks?|stats?|numbers|ppg|rpg|apg|percentages?|record)\b`)
	numericTimeContext = regexp.MustCompile(
		`\d|\b(season|career|per game|all[ -]time|playoffs?)\b`)

	debateSubject = regexp.MustCompile(
		`\b(fans?|fanbase|experts?|communit(y|ies)|analysts?|media|people)\b`)
	debateVerb = regexp.MustCompile(
		`\b(debates?|debated|debating|discuss(es|ed|ing|ion|ions)?|consensus|argu(e|es|ed|ing))\b`)
	topicConnector = regexp.MustCompile(
		`\b(about|over|on|around|regarding|whether)\b`)

	definitional = regexp.MustCompile(
		`\b(define|definitions?)\b` +
			`|what (is|does) .{1,60} mean\??$` +
			`|\bwhat (is|are) an? \w` +
			`|explain the (definition|meaning|concept)`)

	statIntent = regexp.MustCompile(
		`\b(most|top|highest|lowest|leaders?|best|how many|how much|more than|less than|at least|average)\b|\d`)
)

// isOpinionQuery detects bare subjective superlatives and colloquial intensity
// phrases that ask for a quality judgement rather than a measurable stat.
func isOpinionQuery(norm string) bool {
	if subjectiveSuperlative.MatchString(norm) && !statQualifier.MatchString(norm) {
		return true
	}
	return colloquialIntensity.MatchString(norm) && !numericTimeContext.MatchString(norm)
}

// isDebateQuery detects discussion/consensus questions: a social subject plus
// a discussion verb plus a topic connector.
func isDebateQuery(norm string) bool {
	return debateSubject.MatchString(norm) &&
		debateVerb.MatchString(norm) &&
		topicConnector.MatchString(norm)
}

// isDefinitional detects explicit definition requests. Definitions win even
// when the query also carries statistical vocabulary.
func isDefinitional(norm string) bool {
	return definitional.MatchString(norm)
}

// hasStatIntent reports clear statistical intent (superlative, threshold,
// "how many", or a numeric literal). A glossary term with stat intent falls
// through to weighted scoring instead of short-circuiting.
func hasStatIntent(norm string) bool {
	return statIntent.MatchString(norm)
}
