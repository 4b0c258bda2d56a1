package classify

import "regexp"

// group is a named, weighted bundle of related patterns compiled into a single
// alternation, so "did this group match" is one boolean check and a group can
// contribute its weight at most once per query.
type group struct {
	name    string
	weight  float64
	matcher *regexp.Regexp
}

func (g group) fires(query string) bool {
	return g.matcher.MatchString(query)
}

// statGroups is the statistical evidence family. Weights range from 0.5
// (informal stat phrasing) to 3.0 (explicit stat-column vocabulary).
// Compiled once at process start; read-only afterwards.
var statGroups = []group{
	{"stat_columns", 3.0, regexp.MustCompile(
		`\b(points?|rebounds?|assists?|steals?|blocks?|turnovers?|minutes|field goals?|free throws?|three[ -]pointers?|threes|dunks?|fouls?)\b`)},
	{"stat_abbreviations", 3.0, regexp.MustCompile(
		`\b(ppg|rpg|apg|spg|bpg|mpg|topg|efg|usg)\b|\b(fg|3p|ft|ts)%`)},
	{"stat_roles", 2.5, regexp.MustCompile(
		`\b(scorers?|rebounders?|passers?|shooters?|defenders?|playmakers?|shot[ -]blockers?)\b`)},
	{"superlative_rank", 2.5, regexp.MustCompile(
		`\b(top \d+|top[ -]ranked|no\.? ?1|number one|leaders?|leaderboards?|rank(ing|ings|ed)?|standings)\b`)},
	{"how_many", 2.5, regexp.MustCompile(
		`\bhow (many|much)\b|\bnumber of\b|\bcount of\b|\btotal number\b`)},
	{"comparison", 2.0, regexp.MustCompile(
		`\b(compared?|comparing|comparison|vs\.?|versus|head[ -]to[ -]head|matchups?)\b`)},
	{"aggregation", 2.0, regexp.MustCompile(
		`\b(averaged?s?|avg|totals?|per game|per[ -]36|career[ -]high|season[ -]high|cumulative|sum of|combined)\b`)},
	{"percentage", 2.0, regexp.MustCompile(
		`\b(percentages?|percent|efficiency|shooting splits?|accuracy)\b|\d+(\.\d+)?%`)},
	{"stat_nouns", 2.0, regexp.MustCompile(
		`\b(stats?|stat ?lines?|box ?scores?|splits|metrics|numbers|averages)\b`)},
	{"numeric_threshold", 1.5, regexp.MustCompile(
		`\b(more than|less than|fewer than|at least|at most|over|under|above|below|exceed(s|ed)?)\b|\b\d+\b`)},
	{"season_scope", 1.5, regexp.MustCompile(
		`\b(this season|last season|all[ -]time|career|regular season|playoffs?|finals|in (19|20)\d\d)\b`)},
	{"stat_verbs", 1.5, regexp.MustCompile(
		`\b(scored|scoring|averaging|recorded|grabbed|dished|tallied|shot|posted|logged|dropped)\b`)},
	{"stat_slang", 0.5, regexp.MustCompile(
		`\b(gimme|lemme|buckets|dimes|boards|swats|balled out|stuffed the stat sheet|cook(ed|ing))\b`)},
}

// ctxGroups is the contextual evidence family. Weights range from 1.0
// (quoted-reference requests) to 3.0 (why/how/explain constructs). The
// why_explain alternation enumerates the allowed "how ..." continuations
// instead of using lookahead (RE2 has none), which keeps "how many" and
// "how much" out of the contextual family.
var ctxGroups = []group{
	{"why_explain", 3.0, regexp.MustCompile(
		`\bwhy\b|\bexplain(s|ed|ing)?\b|\bwhat makes\b|\bhow (did|does|do|is|was|are|were|can|could|has|have|would)\b|\breason(s|ing)?\b`)},
	{"opinion", 2.5, regexp.MustCompile(
		`\b(think|thinks|feel|feels|opinions?|considered|regarded|believes?|viewed as|perceived)\b`)},
	{"narrative", 2.5, regexp.MustCompile(
		`\b(story|history|historical|background|journey|legacy|biography|career arc|rise of|origin)\b`)},
	{"debate", 2.5, regexp.MustCompile(
		`\b(debates?|debated|debating|discuss(es|ed|ing|ion|ions)?|controvers(y|ial|ies)|consensus|argu(e|es|ed|ing|ment|ments))\b`)},
	{"meaning", 2.5, regexp.MustCompile(
		`\bwhat (is|are|does|do) .{1,60} mean\b|\b(definitions?|meaning of|concept of|terminology)\b`)},
	{"descriptive", 2.0, regexp.MustCompile(
		`\b(describe|tell me about|overview|summar(y|ize|ise)|walk me through|rundown)\b`)},
	{"playstyle", 2.0, regexp.MustCompile(
		`\b(playstyles?|play(ing)? style|strategy|strategies|schemes?|tactics?|coaching|role on|fit with)\b`)},
	{"fan_voice", 2.0, regexp.MustCompile(
		`\b(fans?|fanbase|communit(y|ies)|media|experts?|analysts?|pundits?|people say)\b`)},
	{"qualitative", 1.5, regexp.MustCompile(
		`\b(impact|influence|important|significant|underrated|overrated|clutch|intangibles|greatness)\b`)},
	{"quoted_reference", 1.0, regexp.MustCompile(
		`\b(quotes?|quoted|said about|according to|interviews?|press conference|sound ?bites?)\b`)},
}
