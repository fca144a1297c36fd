package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/Yadav-Aayansh/data-profile/domain/profile"
	"github.com/Yadav-Aayansh/data-profile/domain/table"
)

// maxAssociationColumns caps the pairwise association pass. Above the cap
// the matrix is returned deliberately empty rather than spending O(c^2)
// scans; this is a performance guard, not an error.
const maxAssociationColumns = 50

// computeAssociations builds the symmetric association matrix. Each
// unordered column pair is dispatched on its coarse types: Pearson for
// numeric pairs, Cramer's V for categorical pairs, eta-squared for the
// mixed pairing. Undefined statistics are never inserted, so NaN cannot
// leak into the output.
func computeAssociations(tbl table.Table, cols []string, colStats map[string]profile.ColumnStats) *profile.AssociationMatrix {
	m := profile.NewAssociationMatrix()
	if len(cols) > maxAssociationColumns {
		return m
	}

	for i, c1 := range cols {
		for _, c2 := range cols[i+1:] {
			t1 := colStats[c1].CoarseType()
			t2 := colStats[c2].CoarseType()

			var v float64
			var ok bool
			switch {
			case t1 == profile.CoarseNumeric && t2 == profile.CoarseNumeric:
				v, ok = pearson(tbl, c1, c2)
			case t1 == profile.CoarseCategorical && t2 == profile.CoarseCategorical:
				v, ok = cramersV(tbl, c1, c2)
			case t1 == profile.CoarseNumeric && t2 == profile.CoarseCategorical:
				v, ok = etaSquared(tbl, c1, c2)
			case t1 == profile.CoarseCategorical && t2 == profile.CoarseNumeric:
				v, ok = etaSquared(tbl, c2, c1)
			default:
				// Mixed and empty columns do not participate.
				continue
			}

			if ok {
				m.Set(c1, c2, v)
			}
		}
	}

	return m
}

// pairedNumeric collects rows where both columns hold present finite
// numbers.
func pairedNumeric(tbl table.Table, c1, c2 string) (xs, ys []float64) {
	for _, rec := range tbl {
		v1, ok1 := rec.Present(c1)
		v2, ok2 := rec.Present(c2)
		if !ok1 || !ok2 {
			continue
		}
		f1, ok1 := table.NumberValue(v1)
		f2, ok2 := table.NumberValue(v2)
		if !ok1 || !ok2 {
			continue
		}
		xs = append(xs, f1)
		ys = append(ys, f2)
	}
	return xs, ys
}

// pairedStrings collects rows where both columns are present, stringified
// canonically.
func pairedStrings(tbl table.Table, c1, c2 string) (as, bs []string) {
	for _, rec := range tbl {
		v1, ok1 := rec.Present(c1)
		v2, ok2 := rec.Present(c2)
		if !ok1 || !ok2 {
			continue
		}
		as = append(as, table.CanonicalString(v1))
		bs = append(bs, table.CanonicalString(v2))
	}
	return as, bs
}

// pearson computes the correlation coefficient over paired observations.
// Undefined (ok=false) for fewer than 2 pairs or zero variance on either
// side.
func pearson(tbl table.Table, c1, c2 string) (float64, bool) {
	xs, ys := pairedNumeric(tbl, c1, c2)
	if len(xs) < 2 {
		return 0, false
	}
	if stat.Variance(xs, nil) == 0 || stat.Variance(ys, nil) == 0 {
		return 0, false
	}

	r := stat.Correlation(xs, ys, nil)
	if math.IsNaN(r) {
		return 0, false
	}
	return r, true
}

// cramersV measures association between two categorical columns via a
// contingency table: V = sqrt(chi2 / (n * min(rows-1, cols-1))). Cells with
// expected count 0 are excluded from the chi-square sum. Undefined for
// fewer than 2 paired observations or a degenerate table dimension.
func cramersV(tbl table.Table, c1, c2 string) (float64, bool) {
	as, bs := pairedStrings(tbl, c1, c2)
	n := len(as)
	if n < 2 {
		return 0, false
	}

	rowIdx := make(map[string]int)
	colIdx := make(map[string]int)
	for i := 0; i < n; i++ {
		if _, ok := rowIdx[as[i]]; !ok {
			rowIdx[as[i]] = len(rowIdx)
		}
		if _, ok := colIdx[bs[i]]; !ok {
			colIdx[bs[i]] = len(colIdx)
		}
	}

	rows := len(rowIdx)
	columns := len(colIdx)
	minDim := math.Min(float64(rows-1), float64(columns-1))
	if minDim <= 0 {
		return 0, false
	}

	counts := make([][]int, rows)
	for i := range counts {
		counts[i] = make([]int, columns)
	}
	rowTotals := make([]int, rows)
	colTotals := make([]int, columns)
	for i := 0; i < n; i++ {
		r, c := rowIdx[as[i]], colIdx[bs[i]]
		counts[r][c]++
		rowTotals[r]++
		colTotals[c]++
	}

	chi2 := 0.0
	for r := 0; r < rows; r++ {
		for c := 0; c < columns; c++ {
			expected := float64(rowTotals[r]*colTotals[c]) / float64(n)
			if expected > 0 {
				observed := float64(counts[r][c])
				chi2 += (observed - expected) * (observed - expected) / expected
			}
		}
	}

	return math.Sqrt(chi2 / (float64(n) * minDim)), true
}

// etaSquared measures how much of a numeric column's variance is explained
// by grouping on a categorical column: between-group sum of squares over
// total sum of squares around the grand mean. Undefined for fewer than 2
// distinct groups, fewer than 2 paired observations, or zero total sum of
// squares.
func etaSquared(tbl table.Table, numCol, catCol string) (float64, bool) {
	var values []float64
	var groups []string
	for _, rec := range tbl {
		nv, ok1 := rec.Present(numCol)
		cv, ok2 := rec.Present(catCol)
		if !ok1 || !ok2 {
			continue
		}
		f, ok := table.NumberValue(nv)
		if !ok {
			continue
		}
		values = append(values, f)
		groups = append(groups, table.CanonicalString(cv))
	}

	n := len(values)
	if n < 2 {
		return 0, false
	}

	groupSum := make(map[string]float64)
	groupCount := make(map[string]int)
	for i, g := range groups {
		groupSum[g] += values[i]
		groupCount[g]++
	}
	if len(groupCount) < 2 {
		return 0, false
	}

	grand := stat.Mean(values, nil)

	sst := 0.0
	for _, v := range values {
		d := v - grand
		sst += d * d
	}
	if sst == 0 {
		return 0, false
	}

	ssb := 0.0
	for g, count := range groupCount {
		mean := groupSum[g] / float64(count)
		d := mean - grand
		ssb += float64(count) * d * d
	}

	return ssb / sst, true
}
