package recast

import (
	"strconv"
	"strings"
)

// ============================================================
// Canonical Scalar Text
// ============================================================

// canonFloat returns the canonical float representation.
// Uses shortest-roundtrip format, E→e, -0→0.
func canonFloat(f float64) string {
	if f == 0 {
		return "0"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	s = strings.ReplaceAll(s, "E", "e")
	if s == "-0" {
		return "0"
	}
	return s
}

// ScalarString returns the textual form of a scalar value. Null renders
// as the empty string; containers render element scalar texts joined
// with commas (mappings have no scalar text and render empty).
func ScalarString(v *Value) string {
	switch v.Kind() {
	case KindNull:
		return ""
	case KindBool:
		return strconv.FormatBool(v.boolVal)
	case KindInt:
		return strconv.FormatInt(v.intVal, 10)
	case KindFloat:
		return canonFloat(v.floatVal)
	case KindStr:
		return v.strVal
	case KindList:
		parts := make([]string, len(v.listVal))
		for i, elem := range v.listVal {
			parts[i] = ScalarString(elem)
		}
		return strings.Join(parts, ",")
	default:
		return ""
	}
}

// coerceScalar turns leaf text into a numeric value when the entire
// trimmed string is numeric, and a string value otherwise.
func coerceScalar(s string) *Value {
	t := strings.TrimSpace(s)
	if t == "" {
		return Str(s)
	}
	if n, err := strconv.ParseInt(t, 10, 64); err == nil {
		return Int(n)
	}
	if f, err := strconv.ParseFloat(t, 64); err == nil {
		return Float(f)
	}
	return Str(s)
}
