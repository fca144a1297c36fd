package analysis

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Yadav-Aayansh/data-profile/domain/profile"
	"github.com/Yadav-Aayansh/data-profile/domain/table"
)

func scanAll(tbl table.Table, cols []string) map[string]*columnScan {
	scans := make(map[string]*columnScan, len(cols))
	for _, col := range cols {
		scans[col] = scanColumn(tbl, col)
	}
	return scans
}

func TestCandidateKeys(t *testing.T) {
	tbl := table.Table{
		{"id": 1, "dup": "a", "gappy": 1},
		{"id": 2, "dup": "a", "gappy": nil},
		{"id": 3, "dup": "b", "gappy": 3},
	}
	cols := tbl.Columns()

	out := computeKeysAndDependencies(tbl, cols, scanAll(tbl, cols))

	assert.Equal(t, []string{"id"}, out.CandidateKeys,
		"duplicates disqualify dup, a missing value disqualifies gappy")
}

func TestFunctionalDependencyDetected(t *testing.T) {
	// city -> country holds; city is not a key (duplicates).
	tbl := table.Table{
		{"city": "paris", "country": "fr", "pop": 1.0},
		{"city": "paris", "country": "fr", "pop": 2.0},
		{"city": "lyon", "country": "fr", "pop": 3.0},
		{"city": "turin", "country": "it", "pop": 4.0},
	}
	cols := tbl.Columns()

	out := computeKeysAndDependencies(tbl, cols, scanAll(tbl, cols))

	assert.Contains(t, out.FunctionalDependencies, profile.Dependency{Determinant: "city", Dependent: "country"})
	assert.NotContains(t, out.FunctionalDependencies, profile.Dependency{Determinant: "country", Dependent: "city"},
		"fr maps to two cities")
}

func TestFunctionalDependency_KeyDeterminantsExcluded(t *testing.T) {
	tbl := table.Table{
		{"id": 1, "v": "a"},
		{"id": 2, "v": "a"},
		{"id": 3, "v": "b"},
	}
	cols := tbl.Columns()

	out := computeKeysAndDependencies(tbl, cols, scanAll(tbl, cols))

	assert.Equal(t, []string{"id"}, out.CandidateKeys)
	for _, d := range out.FunctionalDependencies {
		assert.NotEqual(t, "id", d.Determinant, "key columns are not tested as determinants")
	}
}

func TestFunctionalDependency_SingleGroupRejected(t *testing.T) {
	// Only one distinct determinant value: vacuous, must not be reported.
	tbl := table.Table{
		{"det": "only", "dep": "x", "other": 1.0},
		{"det": "only", "dep": "x", "other": 2.0},
	}
	cols := tbl.Columns()

	out := computeKeysAndDependencies(tbl, cols, scanAll(tbl, cols))

	for _, d := range out.FunctionalDependencies {
		assert.NotEqual(t, "det", d.Determinant)
	}
}

func TestKeys_ObjectValuesGroupedCanonically(t *testing.T) {
	// Structurally equal objects are the same determinant group.
	tbl := table.Table{
		{"obj": map[string]any{"k": 1}, "dep": "a"},
		{"obj": map[string]any{"k": 1}, "dep": "a"},
		{"obj": map[string]any{"k": 2}, "dep": "b"},
	}
	cols := tbl.Columns()

	out := computeKeysAndDependencies(tbl, cols, scanAll(tbl, cols))

	assert.Contains(t, out.FunctionalDependencies, profile.Dependency{Determinant: "obj", Dependent: "dep"})
	assert.Empty(t, out.CandidateKeys, "duplicated object value is not unique")
}

func TestKeys_ColumnCapReturnsEmptyLists(t *testing.T) {
	rec := table.Record{}
	for i := 0; i < 21; i++ {
		rec[fmt.Sprintf("col%02d", i)] = i
	}
	tbl := table.Table{rec}
	cols := tbl.Columns()

	out := computeKeysAndDependencies(tbl, cols, scanAll(tbl, cols))

	assert.NotNil(t, out)
	assert.Empty(t, out.CandidateKeys)
	assert.Empty(t, out.FunctionalDependencies)
}
