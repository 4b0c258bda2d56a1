package classify

import (
	"regexp"
	"strings"
)

// Moderate markers add 1 each, complex markers add 2 each. Each marker type
// counts once no matter how often it occurs in the query.
var moderateMarkers = []*regexp.Regexp{
	regexp.MustCompile(`\b(top|rank(ing|ings|ed)?|leaders?|best|highest|lowest)\b`),
	regexp.MustCompile(`\b(compared?|comparing|comparison|versus|vs\.?|than)\b`),
	regexp.MustCompile(`\b(averaged?|averages|avg|per game|mean|median)\b`),
}

var complexMarkers = []*regexp.Regexp{
	regexp.MustCompile(`\b(why|explain(s|ed|ing)?|reason(s|ing)?|what makes|how (did|does|do))\b`),
	regexp.MustCompile(`\b(strategy|strategies|schemes?|tactics?|playstyles?|system)\b`),
	regexp.MustCompile(`\b(analy(ze|sis|tics|tical)|trends?|correlat(e|es|ed|ion)|evaluate|breakdown)\b`),
}

var conjunctionAnd = regexp.MustCompile(`\band\b`)

// estimateDepth maps query complexity to a retrieval depth of 3, 5, 7 or 9.
func estimateDepth(norm string) int {
	words := len(strings.Fields(norm))

	n := 0
	if words < 5 {
		n++
	}
	if words > 15 {
		n += 2
	}
	for _, m := range moderateMarkers {
		if m.MatchString(norm) {
			n++
		}
	}
	for _, m := range complexMarkers {
		if m.MatchString(norm) {
			n += 2
		}
	}
	if conjunctionAnd.MatchString(norm) {
		n++
	}
	if strings.Contains(norm, ",") {
		n++
	}

	switch {
	case n <= 1:
		return 3
	case n <= 3:
		return 5
	case n <= 5:
		return 7
	default:
		return 9
	}
}
