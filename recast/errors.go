package recast

import "fmt"

// Position represents a source location within an input text.
type Position struct {
	Line   int
	Column int
	Offset int
}

// String returns position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// positionAt computes the line/column position of a byte offset.
func positionAt(input string, offset int) Position {
	if offset > len(input) {
		offset = len(input)
	}
	pos := Position{Line: 1, Column: 1, Offset: offset}
	for _, c := range input[:offset] {
		if c == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	return pos
}

// SettingsError reports a malformed or out-of-enumeration directive.
type SettingsError struct {
	Line      int
	Directive string
	Message   string
}

func (e *SettingsError) Error() string {
	return fmt.Sprintf("recast: settings line %d: %s (%q)", e.Line, e.Message, e.Directive)
}

// DetectionError reports that format auto-detection failed.
type DetectionError struct {
	Message string
}

func (e *DetectionError) Error() string {
	return "recast: " + e.Message
}

// DecodeError reports input text that does not parse under its format.
type DecodeError struct {
	Format  Format
	Message string
	Pos     Position
	Err     error
}

func (e *DecodeError) Error() string {
	if e.Pos != (Position{}) {
		return fmt.Sprintf("recast: decode %s: %s at %s", e.Format, e.Message, e.Pos)
	}
	return fmt.Sprintf("recast: decode %s: %s", e.Format, e.Message)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// GrammarError reports a chain-notation grammar violation with the
// failing cursor position.
type GrammarError struct {
	Message string
	Pos     Position
}

func (e *GrammarError) Error() string {
	return fmt.Sprintf("recast: grammar: %s at %s", e.Message, e.Pos)
}

// EncodeError reports a value that cannot be rendered in the requested
// output format.
type EncodeError struct {
	Format  Format
	Message string
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("recast: encode %s: %s", e.Format, e.Message)
}
