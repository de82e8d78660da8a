package recast

// ============================================================
// Conversion Pipeline
// ============================================================

// ConvertResult bundles the converted text with the resolved formats
// and the effective settings.
type ConvertResult struct {
	Output       string
	InputFormat  Format
	OutputFormat Format
	Settings     *Settings
}

// Convert parses directive text into settings and runs the pipeline:
// resolve the input format, decode to the canonical tree, apply the
// case and replacement passes, encode to the output format.
func Convert(input, settingsText string) (*ConvertResult, error) {
	settings, err := ParseSettings(settingsText)
	if err != nil {
		return nil, err
	}
	return ConvertWithSettings(input, settings)
}

// ConvertWithSettings runs the pipeline with pre-parsed settings.
func ConvertWithSettings(input string, settings *Settings) (*ConvertResult, error) {
	in := settings.InputFormat
	if in == FormatAuto {
		in = Detect(input)
	}
	if in == FormatUnknown || in == FormatAuto {
		return nil, &DetectionError{Message: "unable to detect input format"}
	}

	res := &ConvertResult{
		InputFormat:  in,
		OutputFormat: settings.OutputFormat,
		Settings:     settings,
	}

	if in == settings.OutputFormat && !settings.HasTransforms() {
		res.Output = identityOutput(input, in, settings.Align)
		return res, nil
	}

	v, err := decodeAs(input, in)
	if err != nil {
		return nil, err
	}

	TransformKeys(v, settings.Case)
	ApplyReplacements(v, settings.TagReplacements, settings.ValueReplacements)

	out, err := encodeAs(v, settings.OutputFormat, settings.Align)
	if err != nil {
		return nil, err
	}
	res.Output = out
	return res, nil
}

// identityOutput handles same-format conversions with no transforms.
// Input passes through unchanged, except that aligned json re-serializes
// through a parse/pretty-print round trip; malformed input in that
// shortcut is returned verbatim rather than failing.
func identityOutput(input string, f Format, align bool) string {
	if f != FormatJSON || !align {
		return input
	}
	v, err := DecodeJSON(input)
	if err != nil {
		return input
	}
	out, err := EncodeJSON(v, true)
	if err != nil {
		return input
	}
	return out
}

func decodeAs(input string, f Format) (*Value, error) {
	switch f {
	case FormatJSON:
		return DecodeJSON(input)
	case FormatYAML:
		return DecodeYAML(input)
	case FormatXML:
		return DecodeXML(input)
	case FormatCSV:
		return DecodeCSV(input)
	case FormatEmmet:
		return DecodeEmmet(input)
	default:
		return nil, &DecodeError{Format: f, Message: "no decoder for format"}
	}
}

func encodeAs(v *Value, f Format, align bool) (string, error) {
	switch f {
	case FormatJSON:
		return EncodeJSON(v, align)
	case FormatYAML:
		return EncodeYAML(v)
	case FormatXML:
		return EncodeXML(v, align)
	case FormatCSV:
		return EncodeCSV(v)
	case FormatEmmet:
		return EncodeEmmet(v)
	default:
		return "", &EncodeError{Format: f, Message: "unsupported output format"}
	}
}
