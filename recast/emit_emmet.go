package recast

import "strings"

// ============================================================
// Chain Notation Encoder
// ============================================================

// EncodeEmmet renders a Value in chain notation. Mapping entries join
// siblings with '+'; nested structures hang off '>' and are wrapped in
// parentheses whenever their own serialization carries a top-level '+'.
func EncodeEmmet(v *Value) (string, error) {
	switch v.Kind() {
	case KindMap:
		return encodeEmmetMap(v), nil
	case KindList:
		// A root-level list serializes each element independently.
		parts := make([]string, 0, len(v.listVal))
		for _, elem := range v.listVal {
			if elem.Kind() == KindMap {
				parts = append(parts, encodeEmmetMap(elem))
			} else {
				parts = append(parts, ScalarString(elem))
			}
		}
		return strings.Join(parts, "+"), nil
	default:
		return ScalarString(v), nil
	}
}

func encodeEmmetMap(m *Value) string {
	parts := make([]string, 0, len(m.mapVal))
	for _, e := range m.mapVal {
		parts = append(parts, encodeEmmetEntry(e.Key, e.Value))
	}
	return strings.Join(parts, "+")
}

func encodeEmmetEntry(key string, v *Value) string {
	switch v.Kind() {
	case KindNull:
		return key

	case KindMap:
		if v.Len() == 0 {
			return key
		}
		return key + ">" + groupIfChained(encodeEmmetMap(v))

	case KindList:
		if v.Len() == 0 {
			return key + "*0"
		}
		parts := make([]string, 0, len(v.listVal))
		for _, elem := range v.listVal {
			switch {
			case elem.Kind() == KindMap && elem.Len() == 0:
				parts = append(parts, key)
			case elem.Kind() == KindMap:
				parts = append(parts, key+">"+groupIfChained(encodeEmmetMap(elem)))
			case elem.Kind() == KindList:
				parts = append(parts, encodeEmmetEntry(key, elem))
			default:
				parts = append(parts, key+"{"+ScalarString(elem)+"}")
			}
		}
		return strings.Join(parts, "+")

	default:
		return key + "{" + ScalarString(v) + "}"
	}
}

// groupIfChained wraps a serialized child in parentheses when it
// carries a '+' outside any nested group or leaf braces, preserving
// chain/group precedence on re-parse.
func groupIfChained(s string) string {
	if hasTopLevelPlus(s) {
		return "(" + s + ")"
	}
	return s
}

func hasTopLevelPlus(s string) bool {
	depth := 0
	inBraces := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			inBraces = true
		case '}':
			inBraces = false
		case '(':
			if !inBraces {
				depth++
			}
		case ')':
			if !inBraces {
				depth--
			}
		case '+':
			if !inBraces && depth == 0 {
				return true
			}
		}
	}
	return false
}
