package analysis

import (
	"github.com/Yadav-Aayansh/data-profile/domain/profile"
	"github.com/Yadav-Aayansh/data-profile/domain/table"
)

// maxKeyColumns caps key and dependency detection; above it both lists are
// returned deliberately empty (performance guard, not an error).
const maxKeyColumns = 20

// computeKeysAndDependencies finds single-column candidate primary keys
// (present in every row, no duplicates) and exact functional dependencies
// A -> B among non-key determinants. Object values are grouped via
// canonical serialization.
func computeKeysAndDependencies(tbl table.Table, cols []string, scans map[string]*columnScan) *profile.KeysAndDependencies {
	out := profile.NewKeysAndDependencies()
	if len(cols) > maxKeyColumns {
		return out
	}

	rowCount := len(tbl)
	isKey := make(map[string]bool, len(cols))
	for _, col := range cols {
		sc := scans[col]
		if sc.present == rowCount && distinctCount(sc) == rowCount {
			out.CandidateKeys = append(out.CandidateKeys, col)
			isKey[col] = true
		}
	}

	for _, det := range cols {
		if isKey[det] {
			// A key determines everything; reporting those adds noise.
			continue
		}
		for _, dep := range cols {
			if dep == det {
				continue
			}
			if holdsDependency(tbl, det, dep) {
				out.FunctionalDependencies = append(out.FunctionalDependencies, profile.Dependency{
					Determinant: det,
					Dependent:   dep,
				})
			}
		}
	}

	return out
}

func distinctCount(sc *columnScan) int {
	seen := make(map[string]struct{}, len(sc.values))
	for _, v := range sc.values {
		seen[table.CanonicalString(v)] = struct{}{}
	}
	return len(seen)
}

// holdsDependency reports whether every distinct non-missing value of det
// maps to at most one distinct non-missing value of dep, with at least two
// distinct determinant groups (guarding against vacuous single-group
// dependencies).
func holdsDependency(tbl table.Table, det, dep string) bool {
	groups := make(map[string]struct{})
	mapped := make(map[string]string)

	for _, rec := range tbl {
		dv, ok := rec.Present(det)
		if !ok {
			continue
		}
		dk := table.CanonicalString(dv)
		groups[dk] = struct{}{}

		bv, ok := rec.Present(dep)
		if !ok {
			continue
		}
		bk := table.CanonicalString(bv)

		if prev, seen := mapped[dk]; seen {
			if prev != bk {
				return false
			}
		} else {
			mapped[dk] = bk
		}
	}

	return len(groups) >= 2
}
