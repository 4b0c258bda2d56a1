package classify

// score accumulates the evidence of one signal family for a single query.
type score struct {
	total   float64
	matched []string
}

// scoreFamily evaluates every group exactly once against the normalized query.
// A group that fires adds its weight once, no matter how many of its internal
// alternatives matched.
func scoreFamily(groups []group, query string) score {
	var s score
	for _, g := range groups {
		if g.fires(query) {
			s.total += g.weight
			s.matched = append(s.matched, g.name)
		}
	}
	return s
}
