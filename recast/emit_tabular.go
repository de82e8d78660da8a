package recast

import "strings"

// ============================================================
// Tabular Encoder
// ============================================================

// EncodeCSV renders a Value as comma-separated rows. A bare mapping is
// treated as a single-row table; a list contributes one row per
// mapping element. Nested mappings flatten into dot-joined column
// paths; list values stay under their own key and render through their
// scalar text. The column set is the first-seen union across rows.
func EncodeCSV(v *Value) (string, error) {
	var rows []*Value
	switch v.Kind() {
	case KindMap:
		rows = []*Value{v}
	case KindList:
		rows = v.listVal
	default:
		return "", &EncodeError{Format: FormatCSV, Message: "tabular encoding requires a mapping or list of mappings"}
	}

	var (
		columns []string
		seen    = map[string]bool{}
		flats   []*Value
	)
	for _, row := range rows {
		if row.Kind() != KindMap {
			// Only mappings carry columns.
			continue
		}
		flat := Map()
		flattenMapping(flat, "", row)
		flats = append(flats, flat)
		for _, e := range flat.mapVal {
			if !seen[e.Key] {
				seen[e.Key] = true
				columns = append(columns, e.Key)
			}
		}
	}
	if len(flats) == 0 {
		return "", &EncodeError{Format: FormatCSV, Message: "no mappings to tabulate"}
	}

	var lines []string
	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = csvCell(col)
	}
	lines = append(lines, strings.Join(header, ","))

	for _, flat := range flats {
		cells := make([]string, len(columns))
		for i, col := range columns {
			if cell := flat.Get(col); cell != nil {
				cells[i] = csvCell(ScalarString(cell))
			}
		}
		lines = append(lines, strings.Join(cells, ","))
	}

	return strings.Join(lines, "\n"), nil
}

func flattenMapping(dst *Value, prefix string, m *Value) {
	for _, e := range m.mapVal {
		key := e.Key
		if prefix != "" {
			key = prefix + "." + e.Key
		}
		if e.Value.Kind() == KindMap {
			flattenMapping(dst, key, e.Value)
		} else {
			dst.Set(key, e.Value)
		}
	}
}

// csvCell quotes a cell containing a comma, quote, or line break,
// doubling embedded quotes.
func csvCell(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
