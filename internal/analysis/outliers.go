package analysis

import (
	"math"

	"github.com/Yadav-Aayansh/data-profile/domain/profile"
)

// zScoreFence is the absolute z-score beyond which a value counts as an
// outlier.
const zScoreFence = 3.0

// computeOutliers counts Tukey-fence and z-score outliers per numeric
// column, reusing the already-computed quartiles, mean, and stddev. Both
// counts come from one pass over the column's values. A constant column
// (stddev 0) can have no z-score outliers.
func computeOutliers(cols []string, scans map[string]*columnScan, colStats map[string]profile.ColumnStats) *profile.OutlierReport {
	rep := &profile.OutlierReport{Columns: make(map[string]profile.OutlierStats)}

	for _, col := range cols {
		ns := colStats[col].Numeric
		if ns == nil {
			continue
		}

		iqr := ns.IQR()
		lower := ns.Q1 - 1.5*iqr
		upper := ns.Q3 + 1.5*iqr

		var out profile.OutlierStats
		for _, v := range scans[col].floatValues() {
			if v < lower || v > upper {
				out.Tukey++
			}
			if ns.StdDev > 0 && math.Abs(v-ns.Mean)/ns.StdDev > zScoreFence {
				out.ZScore++
			}
		}
		rep.Columns[col] = out
	}

	return rep
}
