package route

// Decision is the routing verdict plus the tuning parameters derived from one query.
// It is created fresh per classification and never mutated afterwards.
type Decision struct {
	Type         Type
	Biographical bool
	// Depth is how many results the unstructured search should retrieve (3, 5, 7 or 9).
	Depth int
	Style Style
	// MaxExpansions is how many paraphrases the expansion step should generate (1..5).
	MaxExpansions int

	// Diagnostics: the per-family scores and matched group names, and the name of the
	// pre-filter that short-circuited the verdict ("" when weighted scoring ran).
	StatScore  float64
	CtxScore   float64
	StatGroups []string
	CtxGroups  []string
	Prefilter  string
}
