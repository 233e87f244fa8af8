package reconcile

import (
	"strings"
)

// Comparator is a binary equivalence predicate over two cell values.
type Comparator func(a, b string) bool

// Normalize trims surrounding whitespace and lowercases a cell value.
// All built-in comparators operate on normalized values.
func Normalize(val string) string {
	return strings.ToLower(strings.TrimSpace(val))
}

// Equal is the default comparator: normalized equality.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// PrefixComparator returns a comparator that strips a case-insensitive
// prefix from whichever side carries it before normalized comparison, so
// for prefix "pmc" the values "PMC123", "pmc123" and "123" all compare
// equal.
func PrefixComparator(prefix string) Comparator {
	prefix = strings.ToLower(prefix)
	return func(a, b string) bool {
		return strings.TrimPrefix(Normalize(a), prefix) == strings.TrimPrefix(Normalize(b), prefix)
	}
}

// PMCIDComparator compares PMCID values, tolerating the "PMC" accession
// prefix on either side.
var PMCIDComparator = PrefixComparator("pmc")

// Registry resolves the comparator for a column position. Columns without
// a registered override use the default normalized comparison. The registry
// is populated once at setup time and read-only afterwards.
type Registry struct {
	overrides map[int]Comparator
}

// NewRegistry creates an empty comparator registry.
func NewRegistry() *Registry {
	return &Registry{overrides: make(map[int]Comparator)}
}

// Register sets the comparator for a column position. Positions are
// resolved from the header once at setup, never re-resolved per row. A
// later registration for the same position replaces the earlier one.
func (r *Registry) Register(pos int, cmp Comparator) {
	r.overrides[pos] = cmp
}

// Comparator returns the comparator for the column position.
func (r *Registry) Comparator(pos int) Comparator {
	if cmp, ok := r.overrides[pos]; ok {
		return cmp
	}
	return Equal
}

// Compare applies the column's comparator to two cell values.
func (r *Registry) Compare(pos int, a, b string) bool {
	return r.Comparator(pos)(a, b)
}
