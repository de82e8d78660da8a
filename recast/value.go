package recast

import "fmt"

// Kind represents canonical value kinds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindStr
	KindList
	KindMap
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindStr:
		return "str"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Value is the canonical in-memory tree every codec converts to and from.
// It is a tagged union of scalars (null/bool/int/float/str), ordered
// key-value mappings, and lists.
type Value struct {
	kind Kind

	// Scalar values (only one valid based on kind)
	boolVal  bool
	intVal   int64
	floatVal float64
	strVal   string

	// Container values
	listVal []*Value
	mapVal  []MapEntry
}

// MapEntry represents a key-value pair in a mapping. Entry order is
// preserved for serialization; keys are unique within a mapping.
type MapEntry struct {
	Key   string
	Value *Value
}

// ============================================================
// Constructors
// ============================================================

// Null creates a null value.
func Null() *Value {
	return &Value{kind: KindNull}
}

// Bool creates a boolean value.
func Bool(v bool) *Value {
	return &Value{kind: KindBool, boolVal: v}
}

// Int creates an integer value.
func Int(v int64) *Value {
	return &Value{kind: KindInt, intVal: v}
}

// Float creates a float value.
func Float(v float64) *Value {
	return &Value{kind: KindFloat, floatVal: v}
}

// Str creates a string value.
func Str(v string) *Value {
	return &Value{kind: KindStr, strVal: v}
}

// List creates a list value.
func List(values ...*Value) *Value {
	return &Value{kind: KindList, listVal: values}
}

// Map creates a mapping from key-value pairs.
func Map(entries ...MapEntry) *Value {
	return &Value{kind: KindMap, mapVal: entries}
}

// Entry creates a MapEntry for use in Map construction.
func Entry(key string, value *Value) MapEntry {
	return MapEntry{Key: key, Value: value}
}

// ============================================================
// Accessors
// ============================================================

// Kind returns the value kind.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsNull returns true if this is a null value.
func (v *Value) IsNull() bool {
	return v == nil || v.kind == KindNull
}

// AsBool returns the boolean value.
func (v *Value) AsBool() (bool, error) {
	if v == nil {
		return false, fmt.Errorf("recast: nil value")
	}
	if v.kind != KindBool {
		return false, fmt.Errorf("recast: expected bool, got %s", v.kind)
	}
	return v.boolVal, nil
}

// AsInt returns the integer value.
func (v *Value) AsInt() (int64, error) {
	if v == nil {
		return 0, fmt.Errorf("recast: nil value")
	}
	if v.kind != KindInt {
		return 0, fmt.Errorf("recast: expected int, got %s", v.kind)
	}
	return v.intVal, nil
}

// AsFloat returns the float value.
func (v *Value) AsFloat() (float64, error) {
	if v == nil {
		return 0, fmt.Errorf("recast: nil value")
	}
	if v.kind != KindFloat {
		return 0, fmt.Errorf("recast: expected float, got %s", v.kind)
	}
	return v.floatVal, nil
}

// AsStr returns the string value.
func (v *Value) AsStr() (string, error) {
	if v == nil {
		return "", fmt.Errorf("recast: nil value")
	}
	if v.kind != KindStr {
		return "", fmt.Errorf("recast: expected str, got %s", v.kind)
	}
	return v.strVal, nil
}

// AsList returns the list elements.
func (v *Value) AsList() ([]*Value, error) {
	if v == nil {
		return nil, fmt.Errorf("recast: nil value")
	}
	if v.kind != KindList {
		return nil, fmt.Errorf("recast: expected list, got %s", v.kind)
	}
	return v.listVal, nil
}

// AsMap returns the mapping entries.
func (v *Value) AsMap() ([]MapEntry, error) {
	if v == nil {
		return nil, fmt.Errorf("recast: nil value")
	}
	if v.kind != KindMap {
		return nil, fmt.Errorf("recast: expected map, got %s", v.kind)
	}
	return v.mapVal, nil
}

// Len returns the length of a list or mapping.
func (v *Value) Len() int {
	switch v.Kind() {
	case KindList:
		return len(v.listVal)
	case KindMap:
		return len(v.mapVal)
	default:
		return 0
	}
}

// Get returns a mapping value by key, or nil.
func (v *Value) Get(key string) *Value {
	if v.Kind() != KindMap {
		return nil
	}
	for _, e := range v.mapVal {
		if e.Key == key {
			return e.Value
		}
	}
	return nil
}

// Index returns the i-th element of a list.
func (v *Value) Index(i int) (*Value, error) {
	if v == nil || v.kind != KindList {
		return nil, fmt.Errorf("recast: not a list")
	}
	if i < 0 || i >= len(v.listVal) {
		return nil, fmt.Errorf("recast: index %d out of bounds (len=%d)", i, len(v.listVal))
	}
	return v.listVal[i], nil
}

// IsNumeric returns true if int or float.
func (v *Value) IsNumeric() bool {
	return v.Kind() == KindInt || v.Kind() == KindFloat
}

// Number returns a numeric value as float64 if int or float.
func (v *Value) Number() (float64, bool) {
	switch v.Kind() {
	case KindInt:
		return float64(v.intVal), true
	case KindFloat:
		return v.floatVal, true
	default:
		return 0, false
	}
}

// ============================================================
// Mutators
// ============================================================

// Set sets a mapping value by key, appending a new entry if absent.
func (v *Value) Set(key string, val *Value) {
	if v.kind != KindMap {
		panic("recast: cannot set on non-map")
	}
	for i := range v.mapVal {
		if v.mapVal[i].Key == key {
			v.mapVal[i].Value = val
			return
		}
	}
	v.mapVal = append(v.mapVal, MapEntry{Key: key, Value: val})
}

// Append adds a value to a list.
func (v *Value) Append(val *Value) {
	if v.kind != KindList {
		panic("recast: cannot append to non-list")
	}
	v.listVal = append(v.listVal, val)
}

// Merge inserts a key-value pair into a mapping, upholding the
// duplicate-key invariant: a collision converts the existing entry into
// a list and appends the new value (or appends directly when the
// existing value is already a list born of a previous merge).
func (v *Value) Merge(key string, val *Value) {
	if v.kind != KindMap {
		panic("recast: cannot merge into non-map")
	}
	for i := range v.mapVal {
		if v.mapVal[i].Key != key {
			continue
		}
		prev := v.mapVal[i].Value
		if prev.Kind() == KindList {
			prev.Append(val)
		} else {
			v.mapVal[i].Value = List(prev, val)
		}
		return
	}
	v.mapVal = append(v.mapVal, MapEntry{Key: key, Value: val})
}

// Clone returns a deep copy of the value.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	out := &Value{
		kind:     v.kind,
		boolVal:  v.boolVal,
		intVal:   v.intVal,
		floatVal: v.floatVal,
		strVal:   v.strVal,
	}
	if v.listVal != nil {
		out.listVal = make([]*Value, len(v.listVal))
		for i, elem := range v.listVal {
			out.listVal[i] = elem.Clone()
		}
	}
	if v.mapVal != nil {
		out.mapVal = make([]MapEntry, len(v.mapVal))
		for i, e := range v.mapVal {
			out.mapVal[i] = MapEntry{Key: e.Key, Value: e.Value.Clone()}
		}
	}
	return out
}

// ============================================================
// Equality
// ============================================================

// Equal reports structural equality. Mapping entry order is not
// significant; list order is. Int and float values compare numerically.
func (v *Value) Equal(other *Value) bool {
	if v.IsNull() || other.IsNull() {
		return v.IsNull() && other.IsNull()
	}
	if v.IsNumeric() && other.IsNumeric() {
		a, _ := v.Number()
		b, _ := other.Number()
		return a == b
	}
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.boolVal == other.boolVal
	case KindStr:
		return v.strVal == other.strVal
	case KindList:
		if len(v.listVal) != len(other.listVal) {
			return false
		}
		for i := range v.listVal {
			if !v.listVal[i].Equal(other.listVal[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.mapVal) != len(other.mapVal) {
			return false
		}
		for _, e := range v.mapVal {
			w := other.Get(e.Key)
			if w == nil || !e.Value.Equal(w) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
