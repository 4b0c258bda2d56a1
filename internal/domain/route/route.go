package route

// Type is the retrieval strategy a query is routed to.
type Type string

// Routing verdict constants.
const (
	// Statistical routes to the structured stat lookup only.
	Statistical Type = "statistical"
	// Contextual routes to the unstructured context search only.
	Contextual Type = "contextual"
	// Hybrid routes to both, merged by a downstream synthesis step.
	Hybrid Type = "hybrid"
)

// IsValid checks if the type is one of the supported values.
func (t Type) IsValid() bool {
	return t == Statistical || t == Contextual || t == Hybrid
}
