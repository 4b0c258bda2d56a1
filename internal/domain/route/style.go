package route

// Style is the surface category of a query, used to tune query expansion.
type Style string

// Style constants, in priority order (Noisy wins over Complex, etc.).
const (
	Noisy          Style = "noisy"
	Complex        Style = "complex"
	Conversational Style = "conversational"
	Simple         Style = "simple"
)

// IsValid checks if the style is one of the supported values.
func (s Style) IsValid() bool {
	return s == Noisy || s == Complex || s == Conversational || s == Simple
}
