package table

import "math"

// Kind classifies the runtime type of a single cell value.
type Kind string

const (
	KindNumber  Kind = "number"
	KindString  Kind = "string"
	KindBoolean Kind = "boolean"
	// KindObject covers every non-nil value that is not a finite number,
	// string, or boolean: slices, maps, timestamps, arbitrary structs.
	// Object values are never decomposed, only type-tagged and compared
	// via canonical serialization.
	KindObject Kind = "object"
)

// Classify reports the kind of a value. ok is false when the value does not
// count as present: nil, or a non-finite number (NaN and infinities are
// treated as if absent, for both classification and presence counting).
func Classify(v any) (Kind, bool) {
	switch v.(type) {
	case nil:
		return "", false
	case bool:
		return KindBoolean, true
	case string:
		return KindString, true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		f, _ := NumberValue(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", false
		}
		return KindNumber, true
	default:
		return KindObject, true
	}
}

// NumberValue converts a numeric value to float64. ok is false for
// non-numeric values and for non-finite numbers.
func NumberValue(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case int:
		f = float64(x)
	case int8:
		f = float64(x)
	case int16:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case uint:
		f = float64(x)
	case uint8:
		f = float64(x)
	case uint16:
		f = float64(x)
	case uint32:
		f = float64(x)
	case uint64:
		f = float64(x)
	case float32:
		f = float64(x)
	case float64:
		f = x
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
