package recast

import (
	"fmt"
	"strings"
)

// ============================================================
// Markup Decoder
// ============================================================

// DecodeXML parses markup text into a Value. Element nodes become
// mappings of their child tag names, with repeated tags collapsed into
// a list; text-only nodes become scalars with numeric coercion;
// whitespace-only text is ignored. The result is always a single-entry
// mapping keyed by the document's root tag.
func DecodeXML(input string) (*Value, error) {
	p := &markupParser{input: input}
	p.skipNonElements()

	node, err := p.parseElement()
	if err != nil {
		return nil, err
	}

	p.skipNonElements()
	if p.pos < len(p.input) {
		return nil, p.errorf("trailing content after root element")
	}

	return Map(Entry(node.tag, markupNodeToValue(node))), nil
}

type markupParser struct {
	input string
	pos   int
}

type markupNode struct {
	tag      string
	children []*markupNode
	text     string
}

func (p *markupParser) errorf(format string, args ...interface{}) *DecodeError {
	return &DecodeError{
		Format:  FormatXML,
		Message: fmt.Sprintf(format, args...),
		Pos:     positionAt(p.input, p.pos),
	}
}

// skipNonElements advances past whitespace, declarations (<?...?>,
// <!...>), and comments.
func (p *markupParser) skipNonElements() {
	for p.pos < len(p.input) {
		switch {
		case p.input[p.pos] == ' ' || p.input[p.pos] == '\t' || p.input[p.pos] == '\r' || p.input[p.pos] == '\n':
			p.pos++
		case strings.HasPrefix(p.input[p.pos:], "<!--"):
			if end := strings.Index(p.input[p.pos:], "-->"); end >= 0 {
				p.pos += end + 3
			} else {
				p.pos = len(p.input)
			}
		case strings.HasPrefix(p.input[p.pos:], "<?"):
			if end := strings.Index(p.input[p.pos:], "?>"); end >= 0 {
				p.pos += end + 2
			} else {
				p.pos = len(p.input)
			}
		case strings.HasPrefix(p.input[p.pos:], "<!"):
			if end := strings.IndexByte(p.input[p.pos:], '>'); end >= 0 {
				p.pos += end + 1
			} else {
				p.pos = len(p.input)
			}
		default:
			return
		}
	}
}

func (p *markupParser) parseElement() (*markupNode, error) {
	if p.pos >= len(p.input) || p.input[p.pos] != '<' {
		return nil, p.errorf("expected '<'")
	}
	p.pos++

	tag := p.scanTagName()
	if tag == "" {
		return nil, p.errorf("expected tag name")
	}

	// Skip attributes up to the tag close.
	selfClosing := false
	for {
		if p.pos >= len(p.input) {
			return nil, p.errorf("unterminated start tag <%s", tag)
		}
		if p.input[p.pos] == '>' {
			p.pos++
			break
		}
		if strings.HasPrefix(p.input[p.pos:], "/>") {
			p.pos += 2
			selfClosing = true
			break
		}
		p.pos++
	}

	node := &markupNode{tag: tag}
	if selfClosing {
		return node, nil
	}

	var text strings.Builder
	for {
		if p.pos >= len(p.input) {
			return nil, p.errorf("missing close tag </%s>", tag)
		}

		if p.input[p.pos] != '<' {
			start := p.pos
			for p.pos < len(p.input) && p.input[p.pos] != '<' {
				p.pos++
			}
			text.WriteString(p.input[start:p.pos])
			continue
		}

		if strings.HasPrefix(p.input[p.pos:], "<!--") {
			p.skipNonElements()
			continue
		}

		if strings.HasPrefix(p.input[p.pos:], "</") {
			p.pos += 2
			closeTag := p.scanTagName()
			if closeTag != tag {
				return nil, p.errorf("mismatched close tag </%s> for <%s>", closeTag, tag)
			}
			if p.pos >= len(p.input) || p.input[p.pos] != '>' {
				return nil, p.errorf("malformed close tag </%s", closeTag)
			}
			p.pos++
			node.text = text.String()
			return node, nil
		}

		child, err := p.parseElement()
		if err != nil {
			return nil, err
		}
		node.children = append(node.children, child)
	}
}

func (p *markupParser) scanTagName() string {
	start := p.pos
	for p.pos < len(p.input) && isTagChar(p.input[p.pos]) {
		p.pos++
	}
	return p.input[start:p.pos]
}

func isTagChar(c byte) bool {
	return isIdentChar(c) || c == ':'
}

func markupNodeToValue(n *markupNode) *Value {
	if len(n.children) > 0 {
		m := Map()
		for _, child := range n.children {
			m.Merge(child.tag, markupNodeToValue(child))
		}
		return m
	}

	text := strings.TrimSpace(xmlUnescape(n.text))
	if text == "" {
		return Map()
	}
	return coerceScalar(text)
}

var xmlUnescaper = strings.NewReplacer("&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'", "&amp;", "&")

func xmlUnescape(s string) string {
	return xmlUnescaper.Replace(s)
}
