// Package rewrite renames element references inside the textual parts of a
// model: algebraic expressions, reaction stoichiometry schemes, and event
// triggers. It is a pure string package; callers supply the set of known
// element names through an Index.
package rewrite

// Index is the read-only reference classifier: it answers whether a bare
// identifier denotes a model element (parameter, compartment, species or
// reaction). Built once from the seed model before replication starts.
type Index struct {
	names map[string]struct{}
}

// NewIndex builds an Index from one or more name sets, typically the four
// entity tables of a model. Empty sets are fine; events are deliberately
// not part of the index.
func NewIndex(nameSets ...[]string) *Index {
	idx := &Index{names: make(map[string]struct{})}
	for _, set := range nameSets {
		for _, n := range set {
			idx.names[n] = struct{}{}
		}
	}
	return idx
}

// IsElement reports whether candidate is the verbatim name of a known
// model element.
func (x *Index) IsElement(candidate string) bool {
	_, ok := x.names[candidate]
	return ok
}

// Len returns the number of distinct known names.
func (x *Index) Len() int { return len(x.names) }
