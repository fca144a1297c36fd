// Package analysis implements the profiling engine: a single-threaded,
// eager pipeline that scans a materialized record collection and computes
// per-column statistics plus optional cross-column relationships.
package analysis

import (
	"sort"

	"github.com/Yadav-Aayansh/data-profile/domain/table"
)

// columnScan is the type & presence scanner's output for one column. The
// filtered present-value list is retained in row order so downstream
// components do not re-filter.
type columnScan struct {
	name    string
	present int
	missing int
	kinds   map[table.Kind]struct{}
	values  []any
}

func scanColumn(tbl table.Table, col string) *columnScan {
	sc := &columnScan{
		name:  col,
		kinds: make(map[table.Kind]struct{}),
	}

	for _, rec := range tbl {
		v, ok := rec.Present(col)
		if !ok {
			sc.missing++
			continue
		}
		kind, _ := table.Classify(v)
		sc.kinds[kind] = struct{}{}
		sc.present++
		sc.values = append(sc.values, v)
	}

	return sc
}

// kindList returns the distinct observed kinds, lexicographically sorted.
func (sc *columnScan) kindList() []string {
	kinds := make([]string, 0, len(sc.kinds))
	for k := range sc.kinds {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	return kinds
}

// numericOnly reports whether every present value is a finite number.
func (sc *columnScan) numericOnly() bool {
	if len(sc.kinds) != 1 {
		return false
	}
	_, ok := sc.kinds[table.KindNumber]
	return ok
}

// categoricalOnly reports whether every present value is a string or
// boolean.
func (sc *columnScan) categoricalOnly() bool {
	if len(sc.kinds) == 0 {
		return false
	}
	for k := range sc.kinds {
		if k != table.KindString && k != table.KindBoolean {
			return false
		}
	}
	return true
}

// floatValues converts the present values of a numeric-only column.
func (sc *columnScan) floatValues() []float64 {
	out := make([]float64, 0, len(sc.values))
	for _, v := range sc.values {
		if f, ok := table.NumberValue(v); ok {
			out = append(out, f)
		}
	}
	return out
}

// stringValues stringifies the present values of a categorical-only column,
// preserving row order for frequency tie-breaking.
func (sc *columnScan) stringValues() []string {
	out := make([]string, 0, len(sc.values))
	for _, v := range sc.values {
		out = append(out, table.CanonicalString(v))
	}
	return out
}
