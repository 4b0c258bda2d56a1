// Package statroute classifies free-text basketball questions into one of
// three retrieval strategies (statistical lookup, contextual search, or both)
// and derives tuning parameters for downstream retrieval: how many results
// the unstructured search should fetch, how aggressively to paraphrase the
// query, and whether the answer should take a biographical shape.
//
// The classifier is purely heuristic: a priority-ordered pre-filter chain, a
// weighted pattern-group scorer over two competing signal families, and a
// hybrid decision ladder. It performs no I/O, never blocks, and is safe for
// concurrent use. A separate generative fallback (Fallback) shares the same
// three-way verdict contract for orchestrators that decline the heuristic
// result.
package statroute
