// Package profile defines the output model of the profiling engine: a
// structured statistical summary of a schemaless record collection, shaped
// for consumption by language models and analysts.
package profile

import (
	"github.com/Yadav-Aayansh/data-profile/domain/core"
)

// Options enables optional output sections. Each flag is independent; a
// false flag means the corresponding Summary field stays nil and is omitted
// from JSON entirely.
type Options struct {
	Associations bool `json:"associations"`
	Keys         bool `json:"keys"`
	Missingness  bool `json:"missingness"`
	Outliers     bool `json:"outliers"`
	Entropy      bool `json:"entropy"`
}

// CoarseType is the dispatch type of a column as seen by the association
// engine and other consumers.
type CoarseType string

const (
	CoarseNumeric     CoarseType = "numeric"
	CoarseCategorical CoarseType = "categorical"
	// CoarseMixed marks columns with more than one value kind; they are
	// reported but never statistically summarized.
	CoarseMixed CoarseType = "mixed"
	CoarseEmpty CoarseType = "empty"
)

// NumericStats describes a column whose present values are all finite
// numbers. Immutable once computed. StdDev is the sample standard deviation
// (n-1 denominator), defined as 0 for n<=1.
type NumericStats struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Q1     float64 `json:"q1"`
	Q3     float64 `json:"q3"`
	StdDev float64 `json:"std_dev"`
	P10    float64 `json:"p10"`
	P90    float64 `json:"p90"`
}

// IQR returns the interquartile range.
func (s NumericStats) IQR() float64 {
	return s.Q3 - s.Q1
}

// ValueCount is one entry of a ranked frequency list.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// CategoricalStats describes a column whose present values are all strings
// or booleans (booleans stringified to "true"/"false"). HHI is the
// Herfindahl-Hirschman concentration index on the 0-10,000 scale, computed
// over all distinct values, not just the top 10.
type CategoricalStats struct {
	Unique int          `json:"unique"`
	Top    []ValueCount `json:"top"`
	HHI    float64      `json:"hhi"`
}

// ColumnStats holds per-column presence counts, the sorted distinct value
// kinds, and at most one of the type-specific stat blocks. A mixed-kind
// column gets neither block; this is policy, not a limitation.
type ColumnStats struct {
	Present     int               `json:"present"`
	Missing     int               `json:"missing"`
	Kinds       []string          `json:"kinds"`
	Numeric     *NumericStats     `json:"numeric,omitempty"`
	Categorical *CategoricalStats `json:"categorical,omitempty"`
}

// CoarseType reports how the column participates in pairwise analysis.
func (cs ColumnStats) CoarseType() CoarseType {
	switch {
	case cs.Numeric != nil:
		return CoarseNumeric
	case cs.Categorical != nil:
		return CoarseCategorical
	case cs.Present == 0:
		return CoarseEmpty
	default:
		return CoarseMixed
	}
}

// AssociationMatrix is a symmetric column-by-column map of association
// strengths: Pearson in [-1,1] for numeric pairs, Cramer's V or eta-squared
// in [0,1] otherwise. Undefined statistics are absent, not zero, and there
// are no self-association cells.
type AssociationMatrix struct {
	Cells map[string]map[string]float64 `json:"cells"`
}

// NewAssociationMatrix returns an empty, non-nil matrix.
func NewAssociationMatrix() *AssociationMatrix {
	return &AssociationMatrix{Cells: make(map[string]map[string]float64)}
}

// Set writes a value into both orientations of the pair.
func (m *AssociationMatrix) Set(c1, c2 string, v float64) {
	m.set(c1, c2, v)
	m.set(c2, c1, v)
}

func (m *AssociationMatrix) set(a, b string, v float64) {
	row, ok := m.Cells[a]
	if !ok {
		row = make(map[string]float64)
		m.Cells[a] = row
	}
	row[b] = v
}

// Value reads a cell; ok is false for undefined or absent cells.
func (m *AssociationMatrix) Value(c1, c2 string) (float64, bool) {
	row, ok := m.Cells[c1]
	if !ok {
		return 0, false
	}
	v, ok := row[c2]
	return v, ok
}

// Len returns the number of stored directed cells.
func (m *AssociationMatrix) Len() int {
	n := 0
	for _, row := range m.Cells {
		n += len(row)
	}
	return n
}

// Dependency is an exact single-source functional dependency: every distinct
// non-missing value of Determinant maps to at most one distinct value of
// Dependent.
type Dependency struct {
	Determinant string `json:"determinant"`
	Dependent   string `json:"dependent"`
}

// KeysAndDependencies reports single-column candidate primary keys and exact
// functional dependencies among non-key determinants.
type KeysAndDependencies struct {
	CandidateKeys          []string     `json:"candidate_keys"`
	FunctionalDependencies []Dependency `json:"functional_dependencies"`
}

// NewKeysAndDependencies returns an empty, non-nil report.
func NewKeysAndDependencies() *KeysAndDependencies {
	return &KeysAndDependencies{
		CandidateKeys:          []string{},
		FunctionalDependencies: []Dependency{},
	}
}

// CoMissingPair counts rows in which both columns are missing at once.
type CoMissingPair struct {
	First  string `json:"first"`
	Second string `json:"second"`
	Count  int    `json:"count"`
}

// MissingnessPatterns holds per-column missing fractions and the top
// co-missing column pairs (count > 0, descending, at most 10).
type MissingnessPatterns struct {
	Rates     map[string]float64 `json:"rates"`
	CoMissing []CoMissingPair    `json:"co_missing"`
}

// NewMissingnessPatterns returns an empty, non-nil report.
func NewMissingnessPatterns() *MissingnessPatterns {
	return &MissingnessPatterns{
		Rates:     make(map[string]float64),
		CoMissing: []CoMissingPair{},
	}
}

// OutlierStats counts outliers in one numeric column by two fences: the
// Tukey rule (outside [Q1-1.5*IQR, Q3+1.5*IQR]) and |z| > 3. The z count is
// 0 whenever the column's stddev is 0.
type OutlierStats struct {
	Tukey  int `json:"tukey"`
	ZScore int `json:"z_score"`
}

// OutlierReport maps numeric column names to their outlier counts.
type OutlierReport struct {
	Columns map[string]OutlierStats `json:"columns"`
}

// EntropyStats describes the value distribution of one categorical column:
// Shannon entropy in bits over the full empirical distribution, and the
// fraction of occurrences falling outside the column's own top-10 list.
type EntropyStats struct {
	Bits      float64 `json:"bits"`
	TailShare float64 `json:"tail_share"`
}

// EntropyReport maps categorical column names to their entropy stats.
type EntropyReport struct {
	Columns map[string]EntropyStats `json:"columns"`
}

// SampleRowLimit bounds the number of raw rows echoed back in a Summary.
const SampleRowLimit = 5

// Summary is the root profiling output: a pure function of the input table
// and options, stamped with an ID and timestamp for provenance. Optional
// sections are nil unless requested; under a performance cap a requested
// section is present but deliberately empty, signaling "computed but capped"
// rather than "not requested".
type Summary struct {
	ID         core.ProfileID `json:"id"`
	ComputedAt core.Timestamp `json:"computed_at"`

	RowCount    int                    `json:"row_count"`
	Columns     []string               `json:"columns"`
	ColumnStats map[string]ColumnStats `json:"column_stats"`
	SampleRows  []map[string]any       `json:"sample_rows"`

	Options Options `json:"options"`

	Associations *AssociationMatrix   `json:"associations,omitempty"`
	Keys         *KeysAndDependencies `json:"keys,omitempty"`
	Missingness  *MissingnessPatterns `json:"missingness,omitempty"`
	Outliers     *OutlierReport       `json:"outliers,omitempty"`
	Entropy      *EntropyReport       `json:"entropy,omitempty"`
}
