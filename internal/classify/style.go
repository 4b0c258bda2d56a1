package classify

import (
	"regexp"
	"strings"

	"github.com/kailas-cloud/statroute/internal/domain/route"
)

var (
	slangMarkers = regexp.MustCompile(
		`\b(gimme|lemme|plz|pls|thx|wanna|gonna|gotta|idk|lol|omg|btw|imo|tbh|u|ur|rn|ngl)\b`)
	typoMarkers = regexp.MustCompile(
		`\b(teh|wich|wat|hw|abt|bcoz|bball|plyr|sttas)\b`)
	repeatedPunct = regexp.MustCompile(`[!?]{2,}|\.{4,}`)
	offTopic      = regexp.MustCompile(
		`\b(weather|recipes?|cooking|politics|elections?|stocks?|crypto|bitcoin|movies?|horoscopes?|lottery)\b`)
	injectionMarkers = regexp.MustCompile(
		`<script|</script|\bdrop table\b|\bunion select\b|\bdelete from\b|'\s*or\s*'?1'?\s*=\s*'?1|;\s*--|\.\./|\{\{|\$\{|<\?php|onerror\s*=`)
	greetingWords = map[string]bool{
		"hi": true, "hello": true, "hey": true, "yo": true, "sup": true,
		"thanks": true, "thx": true, "morning": true, "evening": true,
	}

	synthesisVocab = regexp.MustCompile(
		`\b(synthesi(ze|se|s)|trends?|sentiment|patterns?|insights?|takeaways?)\b`)
	multiPartConnector = regexp.MustCompile(
		`\b(and explain|and why|what does this reveal|as well as|in addition to)\b`)
	crossReference = regexp.MustCompile(
		`\bcompare opinions\b|\bhow do .{1,50} differ from\b|\bdiffer from\b|\brelative to\b`)
	strategicHistorical = regexp.MustCompile(
		`\b(strategy|strategies|tactical|era|historically|evolution|dynasty|decade)\b`)
	conjunctions = regexp.MustCompile(`\b(and|or|but)\b|,`)

	pronounStart = regexp.MustCompile(
		`^(he|she|they|him|her|them|his|hers|their|it|that guy|those)\b`)
	followUp = regexp.MustCompile(
		`\b(what about|how about|tell me more|what else|and also)\b`)
	correction = regexp.MustCompile(
		`\b(actually|i meant|no i|scratch that|wait)\b`)
	topicSwitch = regexp.MustCompile(
		`\b(going back to|back to|switching to|instead)\b`)
	progressiveFilter = regexp.MustCompile(
		`\b(only from|only the|just the|filter|narrow (it )?down)\b`)
	coreStatIntent = regexp.MustCompile(
		`\b(points?|rebounds?|assists?|stats?|ppg|rpg|apg|leaders?|top|averaged?|scorers?|score[ds]?)\b`)
)

// estimateStyle walks the style ladder: noisy > complex > conversational,
// defaulting to simple. First match wins.
func estimateStyle(norm string) route.Style {
	words := strings.Fields(norm)

	if isNoisy(norm, words) {
		return route.Noisy
	}
	if isComplexStyle(norm, len(words)) {
		return route.Complex
	}
	if isConversational(norm, words) {
		return route.Conversational
	}
	return route.Simple
}

func isNoisy(norm string, words []string) bool {
	if slangMarkers.MatchString(norm) || typoMarkers.MatchString(norm) {
		return true
	}
	if repeatedPunct.MatchString(norm) || offTopic.MatchString(norm) {
		return true
	}
	if injectionMarkers.MatchString(norm) {
		return true
	}
	if len(words) == 1 && !greetingWords[strings.Trim(words[0], "!?.,")] {
		return true
	}
	return isKeywordStuffed(words)
}

// isKeywordStuffed reports whether any token repeats 3 or more times.
func isKeywordStuffed(words []string) bool {
	counts := make(map[string]int, len(words))
	for _, w := range words {
		w = strings.Trim(w, "!?.,")
		if w == "" {
			continue
		}
		counts[w]++
		if counts[w] >= 3 {
			return true
		}
	}
	return false
}

func isComplexStyle(norm string, wordCount int) bool {
	if synthesisVocab.MatchString(norm) || multiPartConnector.MatchString(norm) {
		return true
	}
	if crossReference.MatchString(norm) || strategicHistorical.MatchString(norm) {
		return true
	}
	if wordCount > 15 {
		return true
	}
	return len(conjunctions.FindAllString(norm, 3)) >= 2
}

func isConversational(norm string, words []string) bool {
	if pronounStart.MatchString(norm) || followUp.MatchString(norm) {
		return true
	}
	if correction.MatchString(norm) || topicSwitch.MatchString(norm) {
		return true
	}
	if progressiveFilter.MatchString(norm) {
		return true
	}
	// Implicit continuation: too short to stand alone and no stat intent.
	return len(words) > 0 && len(words) < 5 && !coreStatIntent.MatchString(norm)
}
