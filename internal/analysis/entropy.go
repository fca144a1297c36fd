package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/Yadav-Aayansh/data-profile/domain/profile"
)

// computeEntropy derives Shannon entropy (bits) and tail mass per
// categorical column. The frequency distribution is recomputed from the
// scanner's value list because the ranked top-10 in CategoricalStats is
// truncated; the top-10 list is consulted only to define the tail.
func computeEntropy(cols []string, scans map[string]*columnScan, colStats map[string]profile.ColumnStats) *profile.EntropyReport {
	rep := &profile.EntropyReport{Columns: make(map[string]profile.EntropyStats)}

	for _, col := range cols {
		cs := colStats[col].Categorical
		if cs == nil {
			continue
		}

		ft := newFrequencyTable(scans[col].stringValues())

		p := make([]float64, 0, len(ft.order))
		for _, v := range ft.order {
			p = append(p, float64(ft.counts[v])/float64(ft.total))
		}
		bits := stat.Entropy(p) / math.Ln2

		inTop := make(map[string]struct{}, len(cs.Top))
		for _, vc := range cs.Top {
			inTop[vc.Value] = struct{}{}
		}
		tail := 0
		for v, count := range ft.counts {
			if _, ok := inTop[v]; !ok {
				tail += count
			}
		}

		rep.Columns[col] = profile.EntropyStats{
			Bits:      bits,
			TailShare: float64(tail) / float64(ft.total),
		}
	}

	return rep
}
