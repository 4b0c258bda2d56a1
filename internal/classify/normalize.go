package classify

import "strings"

var dashReplacer = strings.NewReplacer(
	"—", " - ", // em dash
	"–", " - ", // en dash
)

// normalize lowercases and trims the query, folds the visual dash variants
// (em dash, en dash, spaced hyphen) into a single " - " token, and collapses
// interior whitespace runs to one space. Token order is preserved so the
// connector tier can still see clause boundaries.
func normalize(query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	q = dashReplacer.Replace(q)
	return strings.Join(strings.Fields(q), " ")
}
