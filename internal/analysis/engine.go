package analysis

import (
	"github.com/Yadav-Aayansh/data-profile/domain/profile"
	"github.com/Yadav-Aayansh/data-profile/domain/table"
)

// Engine computes profile summaries. Stateless and reusable; every call is
// a pure function of the input table and options, so profiling the same
// table twice yields structurally identical output.
type Engine struct{}

// NewEngine creates a new profiling engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Profile runs the full pipeline: the scanner first, then the optional
// components, each re-deriving what it needs from the table and the
// scanner's output. The table is never mutated. Provenance fields (ID,
// timestamp) are left zero; the service layer stamps them.
func (e *Engine) Profile(tbl table.Table, opts profile.Options) *profile.Summary {
	cols := tbl.Columns()

	scans := make(map[string]*columnScan, len(cols))
	colStats := make(map[string]profile.ColumnStats, len(cols))
	for _, col := range cols {
		sc := scanColumn(tbl, col)
		scans[col] = sc

		cs := profile.ColumnStats{
			Present: sc.present,
			Missing: sc.missing,
			Kinds:   sc.kindList(),
		}
		// Type-specific stats only for single-kind columns. No coercion
		// across kinds.
		switch {
		case sc.present > 0 && sc.numericOnly():
			cs.Numeric = computeNumericStats(sc.floatValues())
		case sc.present > 0 && sc.categoricalOnly():
			cs.Categorical = computeCategoricalStats(sc.stringValues())
		}
		colStats[col] = cs
	}

	s := &profile.Summary{
		RowCount:    len(tbl),
		Columns:     cols,
		ColumnStats: colStats,
		SampleRows:  sampleRows(tbl, cols),
		Options:     opts,
	}

	if opts.Associations {
		s.Associations = computeAssociations(tbl, cols, colStats)
	}
	if opts.Keys {
		s.Keys = computeKeysAndDependencies(tbl, cols, scans)
	}
	if opts.Missingness {
		s.Missingness = computeMissingness(tbl, cols, scans)
	}
	if opts.Outliers {
		s.Outliers = computeOutliers(cols, scans, colStats)
	}
	if opts.Entropy {
		s.Entropy = computeEntropy(cols, scans, colStats)
	}

	return s
}

// sampleRows re-projects the first min(SampleRowLimit, rows) records onto
// the full column set, filling absent keys with nil.
func sampleRows(tbl table.Table, cols []string) []map[string]any {
	n := profile.SampleRowLimit
	if len(tbl) < n {
		n = len(tbl)
	}

	rows := make([]map[string]any, 0, n)
	for _, rec := range tbl[:n] {
		row := make(map[string]any, len(cols))
		for _, col := range cols {
			v, ok := rec[col]
			if !ok {
				row[col] = nil
				continue
			}
			row[col] = v
		}
		rows = append(rows, row)
	}
	return rows
}
