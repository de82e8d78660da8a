package recast

import "strings"

// ============================================================
// Markup Encoder
// ============================================================

// EncodeXML renders a Value as markup text. A single-entry root
// mapping is rendered directly under its own tag; a multi-entry root
// mapping or a root scalar is wrapped in a synthetic <root> element; a
// root list becomes <root> with repeated <record> children. With align
// set, nesting indents by two spaces per level.
func EncodeXML(v *Value, align bool) (string, error) {
	var sb strings.Builder
	switch v.Kind() {
	case KindMap:
		if v.Len() == 1 {
			if err := writeElement(&sb, v.mapVal[0].Key, v.mapVal[0].Value, 0, align); err != nil {
				return "", err
			}
			break
		}
		if err := writeElement(&sb, "root", v, 0, align); err != nil {
			return "", err
		}

	case KindList:
		wrapper := Map()
		for _, elem := range v.listVal {
			wrapper.Merge("record", elem)
		}
		if v.Len() == 1 {
			// Merge would have unwrapped a singleton; force the repeat.
			wrapper = Map(Entry("record", v))
		}
		if err := writeElement(&sb, "root", wrapper, 0, align); err != nil {
			return "", err
		}

	default:
		if err := writeElement(&sb, "root", v, 0, align); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

func writeElement(sb *strings.Builder, tag string, v *Value, depth int, align bool) error {
	switch v.Kind() {
	case KindList:
		// Repeated tag, once per element.
		for i, elem := range v.listVal {
			if i > 0 {
				writeMarkupBreak(sb, align, depth)
			}
			if err := writeElement(sb, tag, elem, depth, align); err != nil {
				return err
			}
		}
		return nil

	case KindMap:
		sb.WriteByte('<')
		sb.WriteString(tag)
		sb.WriteByte('>')
		for _, e := range v.mapVal {
			writeMarkupBreak(sb, align, depth+1)
			if err := writeElement(sb, e.Key, e.Value, depth+1, align); err != nil {
				return err
			}
		}
		if v.Len() > 0 {
			writeMarkupBreak(sb, align, depth)
		}
		sb.WriteString("</")
		sb.WriteString(tag)
		sb.WriteByte('>')
		return nil

	default:
		sb.WriteByte('<')
		sb.WriteString(tag)
		sb.WriteByte('>')
		sb.WriteString(xmlEscape(ScalarString(v)))
		sb.WriteString("</")
		sb.WriteString(tag)
		sb.WriteByte('>')
		return nil
	}
}

func writeMarkupBreak(sb *strings.Builder, align bool, depth int) {
	if !align {
		return
	}
	sb.WriteByte('\n')
	for i := 0; i < depth; i++ {
		sb.WriteString("  ")
	}
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func xmlEscape(s string) string {
	return xmlEscaper.Replace(s)
}
