package route

// Verdict is the wire-level three-way verdict used by the generative fallback
// classifier. It carries the same information as Type so the heuristic router
// and the fallback are interchangeable at the orchestrator.
type Verdict string

// Fallback verdict tokens.
const (
	SQLOnly    Verdict = "sql_only"
	VectorOnly Verdict = "vector_only"
	Both       Verdict = "hybrid"
)

// IsValid checks if the verdict is one of the supported tokens.
func (v Verdict) IsValid() bool {
	return v == SQLOnly || v == VectorOnly || v == Both
}

// Type converts the verdict to a routing type.
func (v Verdict) Type() Type {
	switch v {
	case VectorOnly:
		return Contextual
	case Both:
		return Hybrid
	default:
		return Statistical
	}
}

// VerdictFromType converts a routing type to the fallback verdict token.
func VerdictFromType(t Type) Verdict {
	switch t {
	case Contextual:
		return VectorOnly
	case Hybrid:
		return Both
	default:
		return SQLOnly
	}
}
