package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// IsBlank reports whether a form value is missing or only whitespace. Values
// with no string form, such as lists, are not blank; they fail parsing instead.
func IsBlank(v any) bool {
	if v == nil {
		return true
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return false
	}
	return strings.TrimSpace(s) == ""
}

// IsText reports whether v has a non-blank string form.
func IsText(v any) bool {
	s, err := cast.ToStringE(v)
	return err == nil && strings.TrimSpace(s) != ""
}

// numeric reports whether v is a kind a form number can arrive as. cast would
// happily turn a bool into 0 or 1, so anything else is rejected up front.
func numeric(v any) bool {
	switch v.(type) {
	case string, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	default:
		return false
	}
}

// ParseNumber parses a form value as a finite float.
func ParseNumber(v any) (float64, error) {
	if !numeric(v) {
		return 0, fmt.Errorf("%v (%T) is not a number", v, v)
	}
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%v is not a finite number", v)
	}
	return f, nil
}

// ParseInteger parses a form value as a whole number. Fractional values are
// rejected rather than truncated.
func ParseInteger(v any) (int, error) {
	switch n := v.(type) {
	case string:
		return strconv.Atoi(strings.TrimSpace(n))
	case json.Number:
		i, err := n.Int64()
		return int(i), err
	case float32, float64:
		f, err := ParseNumber(n)
		if err != nil {
			return 0, err
		}
		if f != math.Trunc(f) {
			return 0, fmt.Errorf("%v is not a whole number", f)
		}
		return int(f), nil
	default:
		if !numeric(v) {
			return 0, fmt.Errorf("%v (%T) is not a number", v, v)
		}
		return cast.ToIntE(v)
	}
}
