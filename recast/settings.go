package recast

import (
	"strings"
)

// Format identifies one of the interchange notations.
type Format uint8

const (
	FormatUnknown Format = iota
	FormatAuto
	FormatJSON
	FormatYAML
	FormatXML
	FormatCSV
	FormatEmmet
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatXML:
		return "xml"
	case FormatCSV:
		return "csv"
	case FormatEmmet:
		return "emmet"
	default:
		return "unknown"
	}
}

// ParseFormat resolves a format name. "auto" is only accepted when
// allowAuto is set (it is valid for input, never for output).
func ParseFormat(s string, allowAuto bool) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, true
	case "yaml":
		return FormatYAML, true
	case "xml":
		return FormatXML, true
	case "csv":
		return FormatCSV, true
	case "emmet":
		return FormatEmmet, true
	case "auto":
		if allowAuto {
			return FormatAuto, true
		}
	}
	return FormatUnknown, false
}

// CaseMode selects the mapping-key rewrite applied after decoding.
type CaseMode uint8

const (
	CaseNone CaseMode = iota
	CaseUpper
	CaseCamel
	CaseSnake
)

// String returns the case mode name.
func (m CaseMode) String() string {
	switch m {
	case CaseUpper:
		return "upper"
	case CaseCamel:
		return "camel"
	case CaseSnake:
		return "snake"
	default:
		return "none"
	}
}

// ParseCaseMode resolves a case mode name.
func ParseCaseMode(s string) (CaseMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return CaseNone, true
	case "upper":
		return CaseUpper, true
	case "camel":
		return CaseCamel, true
	case "snake":
		return CaseSnake, true
	}
	return CaseNone, false
}

// Settings is the validated configuration of a single conversion.
type Settings struct {
	InputFormat  Format // may be FormatAuto
	OutputFormat Format
	Align        bool
	Case         CaseMode

	// TagReplacements renames mapping keys (exact match).
	TagReplacements map[string]string
	// ValueReplacements substitutes scalar text (exact match).
	ValueReplacements map[string]string

	// SaveToHistory is parsed here but consumed only by the external
	// persistence collaborator.
	SaveToHistory bool
}

// DefaultSettings returns the settings used when a directive is absent.
func DefaultSettings() *Settings {
	return &Settings{
		InputFormat:  FormatAuto,
		OutputFormat: FormatJSON,
		Align:        true,
		Case:         CaseNone,
	}
}

// HasTransforms reports whether any case rewrite or replacement is
// requested. When false, same-format conversions may short-circuit.
func (s *Settings) HasTransforms() bool {
	return s.Case != CaseNone || len(s.TagReplacements) > 0 || len(s.ValueReplacements) > 0
}

const (
	tagReplacePrefix = "replace.tag."
	valReplacePrefix = "replace.val."
)

// ParseSettings parses newline-delimited directive text into Settings.
// Lines starting with # and blank lines are ignored; every other line
// must be a key=value pair with a recognized key and an in-enumeration
// value. Key lookup is case-insensitive except that the replace.*
// families preserve the find-key's case.
func ParseSettings(text string) (*Settings, error) {
	s := DefaultSettings()

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lineNo := i + 1

		eq := strings.Index(line, "=")
		if eq < 0 {
			return nil, &SettingsError{Line: lineNo, Directive: line, Message: "missing '='"}
		}
		key := strings.TrimSpace(line[:eq])
		value := strings.TrimSpace(line[eq+1:])
		if key == "" {
			return nil, &SettingsError{Line: lineNo, Directive: line, Message: "empty key"}
		}

		lower := strings.ToLower(key)
		switch {
		case strings.HasPrefix(lower, tagReplacePrefix):
			find := key[len(tagReplacePrefix):]
			if find == "" {
				return nil, &SettingsError{Line: lineNo, Directive: line, Message: "empty replacement source key"}
			}
			if s.TagReplacements == nil {
				s.TagReplacements = map[string]string{}
			}
			s.TagReplacements[find] = value

		case strings.HasPrefix(lower, valReplacePrefix):
			find := key[len(valReplacePrefix):]
			if find == "" {
				return nil, &SettingsError{Line: lineNo, Directive: line, Message: "empty replacement source value"}
			}
			if s.ValueReplacements == nil {
				s.ValueReplacements = map[string]string{}
			}
			s.ValueReplacements[find] = value

		case lower == "inputformat":
			f, ok := ParseFormat(value, true)
			if !ok {
				return nil, &SettingsError{Line: lineNo, Directive: line, Message: "invalid input format " + value}
			}
			s.InputFormat = f

		case lower == "outputformat":
			f, ok := ParseFormat(value, false)
			if !ok {
				return nil, &SettingsError{Line: lineNo, Directive: line, Message: "invalid output format " + value}
			}
			s.OutputFormat = f

		case lower == "align":
			b, ok := parseBool(value)
			if !ok {
				return nil, &SettingsError{Line: lineNo, Directive: line, Message: "invalid boolean " + value}
			}
			s.Align = b

		case lower == "case":
			m, ok := ParseCaseMode(value)
			if !ok {
				return nil, &SettingsError{Line: lineNo, Directive: line, Message: "invalid case mode " + value}
			}
			s.Case = m

		case lower == "savetohistory":
			b, ok := parseBool(value)
			if !ok {
				return nil, &SettingsError{Line: lineNo, Directive: line, Message: "invalid boolean " + value}
			}
			s.SaveToHistory = b

		default:
			return nil, &SettingsError{Line: lineNo, Directive: line, Message: "unrecognized key " + key}
		}
	}

	return s, nil
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true, true
	case "false", "0", "no":
		return false, true
	}
	return false, false
}
