// Package recast converts structured data between five textual
// notations: JSON, YAML-like block notation, XML-like markup, CSV
// rows/columns, and a compact Emmet-style chain notation.
//
// Every codec converts to and from a single canonical tree, [Value]:
//
//	Scalars:    null, bool, int, float, str
//	Containers: list, map (ordered entries, unique keys)
//
// A mapping never holds two entries with the same key; operations that
// would introduce a duplicate merge the colliding values into a list
// instead. Both the chain-notation sibling merge and the markup
// repeated-tag collapse rely on this rule.
//
// # Conversion
//
// [Convert] is the engine entry point. It takes the input text and a
// newline-delimited directive text:
//
//	inputformat=auto
//	outputformat=json
//	align=true
//	case=none
//	replace.tag.person=user
//	replace.val.10=Passed
//
// and returns the converted text plus the resolved formats. With
// inputformat=auto the format is sniffed by [Detect].
//
// # Chain Notation
//
// The compact notation follows the grammar
//
//	node   := chain ('+' chain)*
//	chain  := term ('>' term)*
//	term   := group | ident ['*' number] ['{' text '}']
//	group  := '(' node ')'
//
// so "ul>(li{One}+li{Two})" decodes to {"ul": {"li": ["One", "Two"]}}
// and "li*3" to {"li": [{}, {}, {}]}.
//
// # Block Notation Provider
//
// The YAML-like codec delegates to a [StructuredTextProvider]. The
// stock provider wraps yaml.v3; an alternative can be injected with
// [SetStructuredTextProviderFactory] and is acquired lazily with
// single-flight semantics.
package recast
