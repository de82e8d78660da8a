package recast

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ============================================================
// JSON Bridge
// ============================================================
//
// Converts between JSON text and Value. Decoding walks the token
// stream directly instead of unmarshalling into map[string]interface{}
// so that object key order survives into the mapping.

// DecodeJSON parses JSON text into a Value.
func DecodeJSON(input string) (*Value, error) {
	dec := json.NewDecoder(strings.NewReader(input))
	dec.UseNumber()

	v, err := decodeJSONValue(dec)
	if err != nil {
		return nil, jsonDecodeError(input, err)
	}

	// Anything after the top-level value is an error.
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = fmt.Errorf("trailing data after top-level value")
		}
		return nil, jsonDecodeError(input, err)
	}
	return v, nil
}

func decodeJSONValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			m := Map()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("expected object key, got %v", keyTok)
				}
				val, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				m.Set(key, val)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return m, nil

		case '[':
			l := List()
			for dec.More() {
				elem, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				l.Append(elem)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return l, nil

		default:
			return nil, fmt.Errorf("unexpected delimiter %v", t)
		}

	case bool:
		return Bool(t), nil

	case json.Number:
		if n, err := strconv.ParseInt(t.String(), 10, 64); err == nil {
			return Int(n), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", t.String())
		}
		return Float(f), nil

	case string:
		return Str(t), nil

	case nil:
		return Null(), nil

	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func jsonDecodeError(input string, err error) error {
	de := &DecodeError{Format: FormatJSON, Message: err.Error(), Err: err}
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		de.Pos = positionAt(input, int(syn.Offset))
	}
	return de
}

// EncodeJSON renders a Value as JSON text. With align set, output is
// pretty-printed with two-space indentation; otherwise it is compact.
func EncodeJSON(v *Value, align bool) (string, error) {
	var sb strings.Builder
	if err := writeJSON(&sb, v, align, 0); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func writeJSON(sb *strings.Builder, v *Value, align bool, depth int) error {
	switch v.Kind() {
	case KindNull:
		sb.WriteString("null")

	case KindBool:
		sb.WriteString(strconv.FormatBool(v.boolVal))

	case KindInt:
		sb.WriteString(strconv.FormatInt(v.intVal, 10))

	case KindFloat:
		if math.IsNaN(v.floatVal) || math.IsInf(v.floatVal, 0) {
			return &EncodeError{Format: FormatJSON, Message: "NaN/Infinity not representable"}
		}
		sb.WriteString(strconv.FormatFloat(v.floatVal, 'g', -1, 64))

	case KindStr:
		sb.WriteString(jsonQuote(v.strVal))

	case KindList:
		if len(v.listVal) == 0 {
			sb.WriteString("[]")
			return nil
		}
		sb.WriteByte('[')
		for i, elem := range v.listVal {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeJSONIndent(sb, align, depth+1)
			if err := writeJSON(sb, elem, align, depth+1); err != nil {
				return err
			}
		}
		writeJSONIndent(sb, align, depth)
		sb.WriteByte(']')

	case KindMap:
		if len(v.mapVal) == 0 {
			sb.WriteString("{}")
			return nil
		}
		sb.WriteByte('{')
		for i, e := range v.mapVal {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeJSONIndent(sb, align, depth+1)
			sb.WriteString(jsonQuote(e.Key))
			sb.WriteByte(':')
			if align {
				sb.WriteByte(' ')
			}
			if err := writeJSON(sb, e.Value, align, depth+1); err != nil {
				return err
			}
		}
		writeJSONIndent(sb, align, depth)
		sb.WriteByte('}')

	default:
		return &EncodeError{Format: FormatJSON, Message: fmt.Sprintf("unsupported kind %s", v.Kind())}
	}
	return nil
}

func writeJSONIndent(sb *strings.Builder, align bool, depth int) {
	if !align {
		return
	}
	sb.WriteByte('\n')
	for i := 0; i < depth; i++ {
		sb.WriteString("  ")
	}
}

func jsonQuote(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return strconv.Quote(s)
	}
	return string(b)
}
