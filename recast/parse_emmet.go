package recast

import (
	"fmt"
	"strconv"
)

// ============================================================
// Chain Notation Decoder
// ============================================================
//
// Grammar:
//
//	node   := chain ('+' chain)*
//	chain  := term ('>' term)*
//	term   := group | ident ['*' number] ['{' text '}']
//	group  := '(' node ')'
//
// '>' grafts the next term at the attachment point: the deepest
// single-key mapping reached by descending through sole values. The
// attachment point is recomputed as an explicit key path from the
// chain root on every graft, never held as an aliased reference.
// '+' merges sibling chains at the node root, collapsing key
// collisions into a list.

// DecodeEmmet parses chain notation into a Value.
func DecodeEmmet(input string) (*Value, error) {
	p := &emmetParser{input: input}
	v, err := p.parseNode()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.input) {
		return nil, p.errorf("unexpected trailing input %q", p.input[p.pos:])
	}
	return v, nil
}

type emmetParser struct {
	input string
	pos   int
}

func (p *emmetParser) errorf(format string, args ...interface{}) *GrammarError {
	return &GrammarError{
		Message: fmt.Sprintf(format, args...),
		Pos:     positionAt(p.input, p.pos),
	}
}

func (p *emmetParser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *emmetParser) skipSpace() {
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

// parseNode parses chain ('+' chain)*, merging sibling chains into one
// mapping at the root.
func (p *emmetParser) parseNode() (*Value, error) {
	root, err := p.parseChain()
	if err != nil {
		return nil, err
	}

	for {
		p.skipSpace()
		if p.peek() != '+' {
			return root, nil
		}
		p.pos++

		sibling, err := p.parseChain()
		if err != nil {
			return nil, err
		}
		if root.Kind() != KindMap || sibling.Kind() != KindMap {
			return nil, p.errorf("cannot merge non-mapping siblings")
		}
		mergeEntries(root, sibling)
	}
}

// parseChain parses term ('>' term)*, grafting each further term at
// the current attachment point.
func (p *emmetParser) parseChain() (*Value, error) {
	root, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for {
		p.skipSpace()
		if p.peek() != '>' {
			return root, nil
		}
		p.pos++

		child, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if err := graft(root, child); err != nil {
			return nil, p.errorf("%v", err)
		}
	}
}

// parseTerm parses group | ident ['*' number] ['{' text '}'] and
// lowers it to a single-entry mapping (or the group's mapping).
func (p *emmetParser) parseTerm() (*Value, error) {
	p.skipSpace()

	if p.peek() == '(' {
		p.pos++
		v, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.peek() != ')' {
			return nil, p.errorf("expected ')'")
		}
		p.pos++
		return v, nil
	}

	ident := p.scanIdent()
	if ident == "" {
		return nil, p.errorf("expected identifier")
	}

	repeat := -1
	if p.peek() == '*' {
		p.pos++
		digits := p.scanDigits()
		if digits == "" {
			return nil, p.errorf("expected repeat count after '*'")
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			return nil, p.errorf("invalid repeat count %q", digits)
		}
		repeat = n
	}

	under := Map()
	if p.peek() == '{' {
		p.pos++
		start := p.pos
		for p.pos < len(p.input) && p.input[p.pos] != '}' {
			p.pos++
		}
		if p.pos >= len(p.input) {
			return nil, p.errorf("unterminated '{'")
		}
		under = coerceScalar(p.input[start:p.pos])
		p.pos++ // consume '}'
	}

	if repeat >= 0 {
		l := List()
		for i := 0; i < repeat; i++ {
			l.Append(under.Clone())
		}
		under = l
	}

	return Map(Entry(ident, under)), nil
}

func (p *emmetParser) scanIdent() string {
	start := p.pos
	for p.pos < len(p.input) && isIdentChar(p.input[p.pos]) {
		p.pos++
	}
	return p.input[start:p.pos]
}

func (p *emmetParser) scanDigits() string {
	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
	}
	return p.input[start:p.pos]
}

func isIdentChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_', c == '-', c == '.':
		return true
	}
	return false
}

// ============================================================
// Attachment
// ============================================================

// attachmentPath returns the key path from root to the deepest
// single-key mapping reachable by descending through sole values.
func attachmentPath(root *Value) []string {
	var path []string
	cur := root
	for cur.Kind() == KindMap && cur.Len() == 1 {
		sole := cur.mapVal[0].Value
		if sole.Kind() != KindMap || sole.Len() != 1 {
			break
		}
		path = append(path, cur.mapVal[0].Key)
		cur = sole
	}
	return path
}

func resolvePath(root *Value, path []string) *Value {
	cur := root
	for _, key := range path {
		cur = cur.Get(key)
	}
	return cur
}

// graft attaches child below the attachment point of root.
func graft(root, child *Value) error {
	if root.Kind() != KindMap {
		return fmt.Errorf("cannot graft into %s", root.Kind())
	}
	if child.Kind() != KindMap {
		return fmt.Errorf("cannot graft %s child", child.Kind())
	}

	at := resolvePath(root, attachmentPath(root))
	if at.Len() != 1 {
		// Multi-key mapping from a group (or an empty root): the
		// child's keys join it directly.
		mergeEntries(at, child)
		return nil
	}

	sole := at.mapVal[0].Value
	switch sole.Kind() {
	case KindMap:
		if sole.Len() == 0 {
			at.mapVal[0].Value = child
		} else {
			mergeEntries(sole, child)
		}
	case KindList:
		// A repeated term: every mapping element receives its own copy
		// of the child.
		for i, elem := range sole.listVal {
			if elem.Kind() != KindMap {
				continue
			}
			c := child.Clone()
			if elem.Len() == 0 {
				sole.listVal[i] = c
			} else {
				mergeEntries(elem, c)
			}
		}
	default:
		// A leaf scalar cannot hold children; the child supersedes it.
		at.mapVal[0].Value = child
	}
	return nil
}

// mergeEntries merges src's entries into dst, collapsing key
// collisions into lists.
func mergeEntries(dst, src *Value) {
	for _, e := range src.mapVal {
		dst.Merge(e.Key, e.Value)
	}
}
