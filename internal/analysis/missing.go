package analysis

import (
	"sort"

	"github.com/Yadav-Aayansh/data-profile/domain/profile"
	"github.com/Yadav-Aayansh/data-profile/domain/table"
)

// maxMissingnessColumns caps the co-missing pair scan; per-column rates are
// always computed.
const maxMissingnessColumns = 50

// coMissingLimit bounds the reported pair list.
const coMissingLimit = 10

// computeMissingness reports per-column missing fractions and the most
// frequent simultaneously-missing column pairs (count > 0, descending,
// ties in sorted pair order).
func computeMissingness(tbl table.Table, cols []string, scans map[string]*columnScan) *profile.MissingnessPatterns {
	out := profile.NewMissingnessPatterns()

	rowCount := len(tbl)
	if rowCount > 0 {
		for _, col := range cols {
			out.Rates[col] = float64(scans[col].missing) / float64(rowCount)
		}
	}

	if len(cols) > maxMissingnessColumns {
		return out
	}

	for i, c1 := range cols {
		for _, c2 := range cols[i+1:] {
			count := 0
			for _, rec := range tbl {
				if _, ok := rec.Present(c1); ok {
					continue
				}
				if _, ok := rec.Present(c2); ok {
					continue
				}
				count++
			}
			if count > 0 {
				out.CoMissing = append(out.CoMissing, profile.CoMissingPair{
					First:  c1,
					Second: c2,
					Count:  count,
				})
			}
		}
	}

	sort.SliceStable(out.CoMissing, func(i, j int) bool {
		return out.CoMissing[i].Count > out.CoMissing[j].Count
	})
	if len(out.CoMissing) > coMissingLimit {
		out.CoMissing = out.CoMissing[:coMissingLimit]
	}

	return out
}
