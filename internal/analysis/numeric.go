package analysis

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/Yadav-Aayansh/data-profile/domain/profile"
)

// computeNumericStats derives descriptive statistics for a numeric-only
// column. Precondition: values is non-empty and all finite.
func computeNumericStats(values []float64) *profile.NumericStats {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	mean, _ := stats.Mean(values)
	min, _ := stats.Min(values)
	max, _ := stats.Max(values)

	// Sample stddev (n-1 denominator), defined as 0 for n<=1 so a
	// single-value column never yields NaN.
	sd := 0.0
	if len(values) > 1 {
		sd, _ = stats.StandardDeviationSample(values)
	}

	return &profile.NumericStats{
		Min:    min,
		Max:    max,
		Mean:   mean,
		Median: percentile(sorted, 50),
		Q1:     percentile(sorted, 25),
		Q3:     percentile(sorted, 75),
		StdDev: sd,
		P10:    percentile(sorted, 10),
		P90:    percentile(sorted, 90),
	}
}

// percentile interpolates linearly between order statistics at fractional
// rank p/100*(n-1): lower + (upper-lower)*frac. For n=1 every percentile is
// the single value. sorted must be ascending and non-empty.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}

	rank := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}

	frac := rank - float64(lower)
	return sorted[lower] + (sorted[upper]-sorted[lower])*frac
}
