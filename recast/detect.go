package recast

import (
	"encoding/json"
	"regexp"
	"strings"
)

// yamlLineRegexp matches an "identifier: value" line.
var yamlLineRegexp = regexp.MustCompile(`(?m)^[ \t]*[A-Za-z_][A-Za-z0-9_-]*:[ \t]+\S`)

// Detect sniffs the format of input text. The heuristics run in strict
// order; notably a comma-containing string that parses as JSON is
// classified json, not csv. Returns FormatUnknown when nothing matches.
func Detect(input string) Format {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return FormatUnknown
	}
	if json.Valid([]byte(trimmed)) {
		return FormatJSON
	}
	if strings.HasPrefix(trimmed, "---") || yamlLineRegexp.MatchString(input) {
		return FormatYAML
	}
	if strings.HasPrefix(trimmed, "<") && strings.HasSuffix(trimmed, ">") {
		return FormatXML
	}
	if strings.Contains(input, ",") {
		return FormatCSV
	}
	return FormatUnknown
}
