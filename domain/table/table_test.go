package table

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		in   any
		kind Kind
		ok   bool
	}{
		{"int", 42, KindNumber, true},
		{"float", 3.14, KindNumber, true},
		{"uint", uint(7), KindNumber, true},
		{"string", "hello", KindString, true},
		{"empty string", "", KindString, true},
		{"bool", true, KindBoolean, true},
		{"nil", nil, "", false},
		{"nan", math.NaN(), "", false},
		{"pos inf", math.Inf(1), "", false},
		{"neg inf", math.Inf(-1), "", false},
		{"slice", []int{1, 2}, KindObject, true},
		{"map", map[string]int{"a": 1}, KindObject, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := Classify(tt.in)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.kind, kind)
			}
		})
	}
}

func TestColumnsSortedUnion(t *testing.T) {
	tbl := Table{
		{"zeta": 1, "alpha": 2},
		{"mid": 3},
		{"alpha": 4, "beta": 5},
	}

	assert.Equal(t, []string{"alpha", "beta", "mid", "zeta"}, tbl.Columns())
}

func TestPresentTreatsNilAndAbsentAlike(t *testing.T) {
	rec := Record{"a": nil, "b": 1, "c": math.NaN()}

	_, ok := rec.Present("a")
	assert.False(t, ok, "nil value should be missing")
	_, ok = rec.Present("missing")
	assert.False(t, ok, "absent key should be missing")
	_, ok = rec.Present("c")
	assert.False(t, ok, "NaN should be treated as absent")

	v, ok := rec.Present("b")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestCanonicalString(t *testing.T) {
	assert.Equal(t, "plain", CanonicalString("plain"))
	assert.Equal(t, "true", CanonicalString(true))
	assert.Equal(t, "false", CanonicalString(false))
	assert.Equal(t, "42", CanonicalString(42))
	assert.Equal(t, "2.5", CanonicalString(2.5))

	// Structurally equal objects must serialize identically.
	a := map[string]any{"x": 1, "y": "z"}
	b := map[string]any{"y": "z", "x": 1}
	assert.Equal(t, CanonicalString(a), CanonicalString(b))
}
