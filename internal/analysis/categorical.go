package analysis

import (
	"sort"

	"github.com/Yadav-Aayansh/data-profile/domain/profile"
)

// topValueLimit bounds the ranked frequency list in CategoricalStats and
// defines the "tail" for the entropy estimator.
const topValueLimit = 10

// frequencyTable accumulates counts over stringified values while
// preserving first-encounter order. Encounter order breaks ties in the
// ranked top list, which keeps the output stable for a given row order.
type frequencyTable struct {
	order  []string
	counts map[string]int
	total  int
}

func newFrequencyTable(values []string) *frequencyTable {
	ft := &frequencyTable{counts: make(map[string]int)}
	for _, v := range values {
		if _, seen := ft.counts[v]; !seen {
			ft.order = append(ft.order, v)
		}
		ft.counts[v]++
		ft.total++
	}
	return ft
}

// top returns the n most frequent values, descending by count, ties in
// encounter order.
func (ft *frequencyTable) top(n int) []profile.ValueCount {
	ranked := make([]profile.ValueCount, 0, len(ft.order))
	for _, v := range ft.order {
		ranked = append(ranked, profile.ValueCount{Value: v, Count: ft.counts[v]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// hhi computes the Herfindahl-Hirschman concentration index over ALL
// distinct values: sum of squared percentage shares, 0-10,000 scale. A
// single-value column scores exactly 10,000.
func (ft *frequencyTable) hhi() float64 {
	sum := 0.0
	for _, count := range ft.counts {
		share := 100 * float64(count) / float64(ft.total)
		sum += share * share
	}
	return sum
}

// computeCategoricalStats derives frequency statistics for a column whose
// present values are all strings or booleans. Precondition: values is
// non-empty (booleans already stringified by the scanner).
func computeCategoricalStats(values []string) *profile.CategoricalStats {
	ft := newFrequencyTable(values)
	return &profile.CategoricalStats{
		Unique: len(ft.counts),
		Top:    ft.top(topValueLimit),
		HHI:    ft.hhi(),
	}
}
