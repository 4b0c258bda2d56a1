package classify

import (
	"strings"

	"github.com/kailas-cloud/statroute/internal/domain/route"
)

// expansionBase maps style to the baseline paraphrase count: noisy queries get
// almost no expansion, conversational fragments get the most.
var expansionBase = map[route.Style]int{
	route.Noisy:          1,
	route.Complex:        2,
	route.Simple:         4,
	route.Conversational: 5,
}

// estimateExpansions returns how many paraphrases the expansion step should
// generate, clamped to [1, 5].
func estimateExpansions(norm string, style route.Style) int {
	n := expansionBase[style]

	words := len(strings.Fields(norm))
	switch {
	case words > 15:
		n--
	case words < 5:
		n++
	}

	if n < 1 {
		n = 1
	}
	if n > 5 {
		n = 5
	}
	return n
}
