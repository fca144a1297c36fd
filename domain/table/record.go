// Package table defines the schemaless input model for profiling: an ordered
// sequence of heterogeneous key-value records with an open value domain.
package table

import "sort"

// Record is a single row: a mapping from column name to a value of the open
// value domain (number, string, boolean, nil, or opaque object). A value is
// missing when the key is absent or the value is nil; both cases behave
// identically everywhere.
type Record map[string]any

// Table is an immutable, fully materialized sequence of records. Record
// order matters only for sample-row selection and frequency tie-breaking.
type Table []Record

// Present returns the value for col if it counts as present. Absent keys,
// nil values, and non-finite numbers all report ok=false.
func (r Record) Present(col string) (any, bool) {
	v, ok := r[col]
	if !ok {
		return nil, false
	}
	if _, ok := Classify(v); !ok {
		return nil, false
	}
	return v, true
}

// Columns returns the lexicographically sorted union of keys across all
// records. This is the column order used in every output.
func (t Table) Columns() []string {
	seen := make(map[string]struct{})
	for _, rec := range t {
		for k := range rec {
			seen[k] = struct{}{}
		}
	}

	cols := make([]string, 0, len(seen))
	for k := range seen {
		cols = append(cols, k)
	}
	sort.Strings(cols)
	return cols
}
