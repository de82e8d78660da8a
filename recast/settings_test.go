package recast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSettings_Defaults(t *testing.T) {
	s, err := ParseSettings("")
	require.NoError(t, err)

	assert.Equal(t, FormatAuto, s.InputFormat)
	assert.Equal(t, FormatJSON, s.OutputFormat)
	assert.True(t, s.Align)
	assert.Equal(t, CaseNone, s.Case)
	assert.Empty(t, s.TagReplacements)
	assert.Empty(t, s.ValueReplacements)
	assert.False(t, s.SaveToHistory)
}

func TestParseSettings_Full(t *testing.T) {
	text := `# conversion directives
inputformat=xml

OUTPUTFORMAT=csv
align=no
CASE=Snake
savetohistory=1
replace.tag.FooBar=baz
replace.val.10=Passed
`
	s, err := ParseSettings(text)
	require.NoError(t, err)

	assert.Equal(t, FormatXML, s.InputFormat)
	assert.Equal(t, FormatCSV, s.OutputFormat)
	assert.False(t, s.Align)
	assert.Equal(t, CaseSnake, s.Case)
	assert.True(t, s.SaveToHistory)
	// The find-key keeps its original case.
	assert.Equal(t, map[string]string{"FooBar": "baz"}, s.TagReplacements)
	assert.Equal(t, map[string]string{"10": "Passed"}, s.ValueReplacements)
}

func TestParseSettings_Booleans(t *testing.T) {
	for _, v := range []string{"true", "TRUE", "1", "yes", "Yes"} {
		s, err := ParseSettings("align=" + v)
		require.NoError(t, err, v)
		assert.True(t, s.Align, v)
	}
	for _, v := range []string{"false", "0", "no", "NO"} {
		s, err := ParseSettings("align=" + v)
		require.NoError(t, err, v)
		assert.False(t, s.Align, v)
	}
}

func TestParseSettings_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
		line int
	}{
		{"missing equals", "inputformat", 1},
		{"unknown key", "colour=red", 1},
		{"bad input format", "inputformat=toml", 1},
		{"auto invalid for output", "outputformat=auto", 1},
		{"bad boolean", "align=maybe", 1},
		{"bad case mode", "case=kebab", 1},
		{"empty replace source", "replace.tag.=x", 1},
		{"error names line", "align=true\ncase=bogus", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSettings(tt.text)
			require.Error(t, err)

			var se *SettingsError
			require.True(t, errors.As(err, &se), "expected SettingsError, got %T", err)
			assert.Equal(t, tt.line, se.Line)
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, ok := ParseFormat("auto", true)
	require.True(t, ok)
	assert.Equal(t, FormatAuto, f)

	_, ok = ParseFormat("auto", false)
	assert.False(t, ok)

	for name, want := range map[string]Format{
		"json": FormatJSON, "yaml": FormatYAML, "xml": FormatXML,
		"csv": FormatCSV, "emmet": FormatEmmet,
	} {
		f, ok := ParseFormat(name, false)
		require.True(t, ok, name)
		assert.Equal(t, want, f)
		assert.Equal(t, name, f.String())
	}
}
