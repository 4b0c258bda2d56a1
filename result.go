package statroute

import "github.com/kailas-cloud/statroute/internal/domain/route"

// QueryType is the retrieval strategy a query is routed to.
type QueryType string

// Routing verdicts.
const (
	Statistical QueryType = QueryType(route.Statistical)
	Contextual  QueryType = QueryType(route.Contextual)
	Hybrid      QueryType = QueryType(route.Hybrid)
)

// StyleCategory is the surface category of a query.
type StyleCategory string

// Style categories, in detection priority order.
const (
	Noisy          StyleCategory = StyleCategory(route.Noisy)
	Complex        StyleCategory = StyleCategory(route.Complex)
	Conversational StyleCategory = StyleCategory(route.Conversational)
	Simple         StyleCategory = StyleCategory(route.Simple)
)

// Result is the classification outcome: the routing verdict plus the tuning
// parameters downstream retrieval steps consume. All fields are always
// populated; the value is owned by the caller and never mutated afterwards.
type Result struct {
	QueryType      QueryType     `json:"query_type"`
	IsBiographical bool          `json:"is_biographical"`
	// ComplexityDepth is how many results the unstructured search should
	// retrieve; always one of 3, 5, 7 or 9.
	ComplexityDepth int           `json:"complexity_depth"`
	StyleCategory   StyleCategory `json:"style_category"`
	// MaxExpansions is how many paraphrases the expansion step should
	// generate; always within [1, 5].
	MaxExpansions int `json:"max_expansions"`

	// Diagnostics for logging and tooling.
	StatScore  float64  `json:"stat_score"`
	CtxScore   float64  `json:"ctx_score"`
	StatGroups []string `json:"stat_groups,omitempty"`
	CtxGroups  []string `json:"ctx_groups,omitempty"`
	Prefilter  string   `json:"prefilter,omitempty"`
}

func fromDecision(d route.Decision) Result {
	return Result{
		QueryType:       QueryType(d.Type),
		IsBiographical:  d.Biographical,
		ComplexityDepth: d.Depth,
		StyleCategory:   StyleCategory(d.Style),
		MaxExpansions:   d.MaxExpansions,
		StatScore:       d.StatScore,
		CtxScore:        d.CtxScore,
		StatGroups:      d.StatGroups,
		CtxGroups:       d.CtxGroups,
		Prefilter:       d.Prefilter,
	}
}
