package table

import (
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
)

// CanonicalString produces a stable string form of a present value, used for
// frequency counting, distinct-value comparison, and dependency grouping.
// Booleans become "true"/"false", numbers use the shortest round-trip
// decimal form, and object values are serialized as JSON (map keys sorted by
// the encoder, so structurally equal objects compare equal).
func CanonicalString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	}

	if f, ok := NumberValue(v); ok {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}

	b, err := json.Marshal(v)
	if err != nil {
		// Unmarshalable values (channels, funcs) still need an identity.
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
