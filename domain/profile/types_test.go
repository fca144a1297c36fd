package profile

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssociationMatrix_SymmetricSet(t *testing.T) {
	m := NewAssociationMatrix()
	m.Set("a", "b", 0.8)

	v, ok := m.Value("a", "b")
	require.True(t, ok)
	assert.Equal(t, 0.8, v)

	v, ok = m.Value("b", "a")
	require.True(t, ok)
	assert.Equal(t, 0.8, v)

	_, ok = m.Value("a", "a")
	assert.False(t, ok, "no self-association cells")
	assert.Equal(t, 2, m.Len())
}

func TestColumnStats_CoarseType(t *testing.T) {
	assert.Equal(t, CoarseNumeric, ColumnStats{Present: 1, Numeric: &NumericStats{}}.CoarseType())
	assert.Equal(t, CoarseCategorical, ColumnStats{Present: 1, Categorical: &CategoricalStats{}}.CoarseType())
	assert.Equal(t, CoarseMixed, ColumnStats{Present: 2, Kinds: []string{"number", "string"}}.CoarseType())
	assert.Equal(t, CoarseEmpty, ColumnStats{}.CoarseType())
}

func TestSummary_JSONOmitsUnrequestedSections(t *testing.T) {
	s := Summary{RowCount: 1, Columns: []string{"a"}}

	b, err := json.Marshal(&s)
	require.NoError(t, err)

	text := string(b)
	assert.NotContains(t, text, `"associations"`)
	assert.NotContains(t, text, `"keys"`)
	assert.NotContains(t, text, `"missingness"`)
	assert.NotContains(t, text, `"outliers"`)
	assert.NotContains(t, text, `"entropy"`)
}

func TestSummary_JSONKeepsCappedEmptySections(t *testing.T) {
	s := Summary{
		Associations: NewAssociationMatrix(),
		Keys:         NewKeysAndDependencies(),
		Missingness:  NewMissingnessPatterns(),
	}

	b, err := json.Marshal(&s)
	require.NoError(t, err)

	text := string(b)
	assert.Contains(t, text, `"associations"`)
	assert.Contains(t, text, `"candidate_keys":[]`)
	assert.Contains(t, text, `"co_missing":[]`)
}

func TestNumericStats_IQR(t *testing.T) {
	ns := NumericStats{Q1: 2, Q3: 9}
	assert.Equal(t, 7.0, ns.IQR())
}

func TestToLLMFormat(t *testing.T) {
	s := Summary{
		RowCount: 3,
		Columns:  []string{"age", "city"},
		ColumnStats: map[string]ColumnStats{
			"age": {
				Present: 3,
				Kinds:   []string{"number"},
				Numeric: &NumericStats{Min: 20, Max: 40, Mean: 30, Median: 30},
			},
			"city": {
				Present: 3,
				Kinds:   []string{"string"},
				Categorical: &CategoricalStats{
					Unique: 2,
					Top:    []ValueCount{{Value: "paris", Count: 2}, {Value: "lyon", Count: 1}},
					HHI:    5556,
				},
			},
		},
	}

	text := s.ToLLMFormat()

	assert.True(t, strings.HasPrefix(text, "Dataset: 3 rows, 2 columns"))
	assert.Contains(t, text, "age")
	assert.Contains(t, text, `mode="paris" (2)`)
}
