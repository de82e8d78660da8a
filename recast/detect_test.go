package recast

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Format
	}{
		{"empty", "", FormatUnknown},
		{"whitespace only", "   \n\t ", FormatUnknown},
		{"json object", `{"a": 1}`, FormatJSON},
		{"json array", `[1, 2, 3]`, FormatJSON},
		{"json with commas beats csv", `{"a": 1, "b": 2}`, FormatJSON},
		{"yaml document marker", "---\na: 1", FormatYAML},
		{"yaml key value line", "name: John\nage: 30", FormatYAML},
		{"xml", "<person><name>John</name></person>", FormatXML},
		{"csv", "a,b,c\n1,2,3", FormatCSV},
		{"bare word", "hello", FormatUnknown},
		{"emmet is never sniffed", "ul>li*3", FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.input); got != tt.want {
				t.Errorf("Detect(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}
