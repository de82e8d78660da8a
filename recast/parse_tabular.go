package recast

import "strings"

// ============================================================
// Tabular Decoder
// ============================================================

// DecodeCSV parses comma-separated rows into a Value. The first line
// is the header defining column keys; dot-joined column paths rebuild
// nested mappings; leaf cells coerce to numbers when fully numeric.
// A single data row decodes to a bare mapping, multiple rows to a
// list.
//
// Cells are split positionally on commas with no quoted-comma
// un-escaping; a quoted cell holding a comma therefore splits apart.
func DecodeCSV(input string) (*Value, error) {
	var lines []string
	for _, raw := range strings.Split(input, "\n") {
		line := strings.TrimSuffix(raw, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil, &DecodeError{Format: FormatCSV, Message: "empty tabular input"}
	}

	columns := strings.Split(lines[0], ",")
	for i := range columns {
		columns[i] = strings.TrimSpace(columns[i])
		if columns[i] == "" {
			return nil, &DecodeError{Format: FormatCSV, Message: "malformed header: empty column name"}
		}
	}

	var rows []*Value
	for _, line := range lines[1:] {
		cells := strings.Split(line, ",")
		row := Map()
		for i, col := range columns {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			unflattenInto(row, col, cell)
		}
		rows = append(rows, row)
	}

	if len(rows) == 1 {
		return rows[0], nil
	}
	return List(rows...), nil
}

// unflattenInto writes a flat dot-path column into its nested slot.
func unflattenInto(root *Value, col, cell string) {
	parts := strings.Split(col, ".")
	cur := root
	for _, part := range parts[:len(parts)-1] {
		next := cur.Get(part)
		if next.Kind() != KindMap {
			next = Map()
			cur.Set(part, next)
		}
		cur = next
	}
	cur.Set(parts[len(parts)-1], coerceScalar(cell))
}
