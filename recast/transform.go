package recast

import (
	"strings"
	"unicode"
)

// ============================================================
// Key Case Transformer
// ============================================================

// TransformKeys recursively rewrites every mapping key using the
// selected case mode. Values are untouched except by recursing into
// nested containers. Rewrites that collide with an existing key merge
// into a list per the mapping invariant.
func TransformKeys(v *Value, mode CaseMode) {
	if mode == CaseNone {
		return
	}
	rewriteKeys(v, caseFunc(mode))
}

func rewriteKeys(v *Value, fn func(string) string) {
	switch v.Kind() {
	case KindMap:
		entries := v.mapVal
		v.mapVal = nil
		for _, e := range entries {
			rewriteKeys(e.Value, fn)
			v.Merge(fn(e.Key), e.Value)
		}
	case KindList:
		for _, elem := range v.listVal {
			rewriteKeys(elem, fn)
		}
	}
}

func caseFunc(mode CaseMode) func(string) string {
	switch mode {
	case CaseUpper:
		return strings.ToUpper
	case CaseCamel:
		return camelCase
	case CaseSnake:
		return snakeCase
	default:
		return func(s string) string { return s }
	}
}

// camelCase deletes '-' and '_' and capitalizes the character that
// followed each.
func camelCase(s string) string {
	var b strings.Builder
	capitalize := false
	for _, r := range s {
		if r == '-' || r == '_' {
			capitalize = true
			continue
		}
		if capitalize {
			b.WriteRune(unicode.ToUpper(r))
			capitalize = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// snakeCase inserts '_' before each uppercase letter and lowercases it.
func snakeCase(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsUpper(r) {
			b.WriteByte('_')
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ============================================================
// Replacement Engine
// ============================================================

// ApplyReplacements runs the two replacement passes over the tree:
// exact-match key renames first, then exact-match scalar text
// substitution. Replacement values are always textual, even when the
// original scalar was numeric.
func ApplyReplacements(v *Value, tags, vals map[string]string) {
	if len(tags) > 0 {
		replaceTags(v, tags)
	}
	if len(vals) > 0 {
		replaceValues(v, vals)
	}
}

func replaceTags(v *Value, tags map[string]string) {
	switch v.Kind() {
	case KindMap:
		entries := v.mapVal
		v.mapVal = nil
		for _, e := range entries {
			key := e.Key
			if rep, ok := tags[key]; ok {
				key = rep
			}
			replaceTags(e.Value, tags)
			v.Merge(key, e.Value)
		}
	case KindList:
		for _, elem := range v.listVal {
			replaceTags(elem, tags)
		}
	}
}

func replaceValues(v *Value, vals map[string]string) {
	switch v.Kind() {
	case KindMap:
		for _, e := range v.mapVal {
			replaceValues(e.Value, vals)
		}
	case KindList:
		for _, elem := range v.listVal {
			replaceValues(elem, vals)
		}
	case KindNull:
		// Null has no scalar text to match.
	default:
		if rep, ok := vals[ScalarString(v)]; ok {
			*v = Value{kind: KindStr, strVal: rep}
		}
	}
}
