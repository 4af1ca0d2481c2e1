package catalog

import (
	"sort"

	"github.com/maruel/natural"
)

// Comparator orders version tokens. It reports whether a should sort
// before b in the final listing.
//
// The ordering of generic version listings is pinned by the de-facto
// catalog samples (see the parser tests) rather than by a full collation
// spec, so the comparator is pluggable.
type Comparator func(a, b string) bool

// DescendingNatural is the default comparator: descending alphanumeric
// order, comparing numeric runs by value rather than lexically, so
// "1.10.0" sorts before "1.9.0" and "rc2" before "rc1".
func DescendingNatural(a, b string) bool {
	return natural.Less(b, a)
}

// SortTokens sorts version tokens in place using cmp, defaulting to
// DescendingNatural when cmp is nil. The sort is stable so equal tokens
// keep their listing order.
//
// Parameters:
//   - tokens: The version tokens to sort (modified in place)
//   - cmp: The comparator to order by; nil selects DescendingNatural
func SortTokens(tokens []string, cmp Comparator) {
	if cmp == nil {
		cmp = DescendingNatural
	}
	sort.SliceStable(tokens, func(i, j int) bool {
		return cmp(tokens[i], tokens[j])
	})
}
