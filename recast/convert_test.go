package recast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_DetectionFailure(t *testing.T) {
	_, err := Convert(" ", "inputformat=auto\noutputformat=json")
	require.Error(t, err)

	var de *DetectionError
	require.True(t, errors.As(err, &de), "expected DetectionError, got %T", err)
}

func TestConvert_SettingsErrorPropagates(t *testing.T) {
	_, err := Convert("{}", "outputformat=parquet")
	require.Error(t, err)

	var se *SettingsError
	require.True(t, errors.As(err, &se))
}

func TestConvert_JSONIdentityPrettyPrints(t *testing.T) {
	res, err := Convert(`{"foo":1,"bar":2}`, "inputformat=json\noutputformat=json\nalign=true")
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"foo\": 1,\n  \"bar\": 2\n}", res.Output)
	assert.Equal(t, FormatJSON, res.InputFormat)
	assert.Equal(t, FormatJSON, res.OutputFormat)
}

func TestConvert_JSONIdentitySwallowsMalformed(t *testing.T) {
	// The permissive identity path returns malformed input verbatim.
	res, err := Convert("{oops", "inputformat=json\noutputformat=json\nalign=true")
	require.NoError(t, err)
	assert.Equal(t, "{oops", res.Output)
}

func TestConvert_IdentityWithoutAlignIsVerbatim(t *testing.T) {
	res, err := Convert("ul>li", "inputformat=emmet\noutputformat=emmet")
	require.NoError(t, err)
	assert.Equal(t, "ul>li", res.Output)
}

func TestConvert_IdentityWithTransformsStillDecodes(t *testing.T) {
	res, err := Convert(`{"user_name":"x"}`,
		"inputformat=json\noutputformat=json\nalign=false\ncase=camel")
	require.NoError(t, err)
	assert.Equal(t, `{"userName":"x"}`, res.Output)
}

func TestConvert_EmmetToJSON(t *testing.T) {
	res, err := Convert("ul>(li{One}+li{Two})",
		"inputformat=emmet\noutputformat=json\nalign=false")
	require.NoError(t, err)
	assert.Equal(t, `{"ul":{"li":["One","Two"]}}`, res.Output)

	res, err = Convert("li*3", "inputformat=emmet\noutputformat=json\nalign=false")
	require.NoError(t, err)
	assert.Equal(t, `{"li":[{},{},{}]}`, res.Output)
}

func TestConvert_JSONToEmmet(t *testing.T) {
	res, err := Convert(`{"person":{"name":"John","age":30}}`,
		"inputformat=json\noutputformat=emmet")
	require.NoError(t, err)
	assert.Equal(t, "person>(name{John}+age{30})", res.Output)
}

func TestConvert_JSONToCSV(t *testing.T) {
	res, err := Convert(`{"person":{"name":"John","age":30}}`,
		"inputformat=json\noutputformat=csv")
	require.NoError(t, err)
	assert.Equal(t, "person.name,person.age\nJohn,30", res.Output)
}

func TestConvert_CSVToJSON(t *testing.T) {
	res, err := Convert("a,b\n1,2", "inputformat=csv\noutputformat=json\nalign=false")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":2}`, res.Output)
}

func TestConvert_XMLToJSON(t *testing.T) {
	res, err := Convert("<person><name>John</name><age>30</age></person>",
		"inputformat=xml\noutputformat=json\nalign=false")
	require.NoError(t, err)
	assert.Equal(t, `{"person":{"name":"John","age":30}}`, res.Output)
}

func TestConvert_JSONToXML(t *testing.T) {
	res, err := Convert(`{"ul":{"li":["One","Two"]}}`,
		"inputformat=json\noutputformat=xml\nalign=false")
	require.NoError(t, err)
	assert.Equal(t, "<ul><li>One</li><li>Two</li></ul>", res.Output)
}

func TestConvert_YAMLAutoDetected(t *testing.T) {
	res, err := Convert("name: John\nage: 30", "outputformat=json\nalign=false")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, res.InputFormat)
	assert.Equal(t, `{"name":"John","age":30}`, res.Output)
}

func TestConvert_JSONToYAML(t *testing.T) {
	res, err := Convert(`{"person":{"name":"John"}}`,
		"inputformat=json\noutputformat=yaml")
	require.NoError(t, err)
	assert.Contains(t, res.Output, "person:")
	assert.Contains(t, res.Output, "name: John")
}

func TestConvert_CasePlusReplacements(t *testing.T) {
	res, err := Convert(`{"user_name":"John","score":10}`,
		"inputformat=json\noutputformat=json\nalign=false\ncase=camel\nreplace.tag.userName=login\nreplace.val.10=Passed")
	require.NoError(t, err)
	// Case rewrite runs first, so the replacement targets the rewritten key.
	assert.Equal(t, `{"login":"John","score":"Passed"}`, res.Output)
}

func TestConvert_DecodeErrorPropagates(t *testing.T) {
	_, err := Convert("<a><b></a>", "inputformat=xml\noutputformat=json")
	require.Error(t, err)

	var de *DecodeError
	require.True(t, errors.As(err, &de))
}

func TestConvert_GrammarErrorPropagates(t *testing.T) {
	_, err := Convert("a)b", "inputformat=emmet\noutputformat=json")
	require.Error(t, err)

	var ge *GrammarError
	require.True(t, errors.As(err, &ge))
}

func TestConvert_MetaCarriesSettings(t *testing.T) {
	res, err := Convert(`{"a":1}`, "inputformat=json\noutputformat=emmet\nsavetohistory=yes")
	require.NoError(t, err)

	require.NotNil(t, res.Settings)
	assert.True(t, res.Settings.SaveToHistory)
	assert.Equal(t, FormatEmmet, res.OutputFormat)
}
