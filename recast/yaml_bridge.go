package recast

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
	"gopkg.in/yaml.v3"
)

// ============================================================
// Structured-Text (Block Notation) Bridge
// ============================================================
//
// The block-notation codec is delegated to an injected provider. The
// engine owns only the lazy, memoized, single-flight acquisition of
// that provider and the forwarding of encode/decode calls. The stock
// provider wraps yaml.v3, building node trees directly so mapping
// entry order survives encoding.

// StructuredTextOptions configures provider encoding.
type StructuredTextOptions struct {
	// Indent is the number of spaces per nesting level.
	Indent int
	// ForceBlockStyle disables inline flow collections.
	ForceBlockStyle bool
}

// StructuredTextProvider encodes and decodes the block notation.
// Key-order preservation is not guaranteed by the contract.
type StructuredTextProvider interface {
	Encode(v *Value, opts StructuredTextOptions) (string, error)
	Decode(text string) (*Value, error)
}

var (
	providerMu      sync.RWMutex
	providerCached  StructuredTextProvider
	providerFactory = func() (StructuredTextProvider, error) { return yamlProvider{}, nil }
	providerGroup   singleflight.Group
)

// SetStructuredTextProviderFactory installs the factory used on first
// use to acquire the block-notation provider, discarding any provider
// already memoized. Passing nil restores the stock yaml.v3 provider.
// Factories that fetch the provider remotely get single-flight
// semantics: concurrent first callers share one acquisition.
func SetStructuredTextProviderFactory(f func() (StructuredTextProvider, error)) {
	if f == nil {
		f = func() (StructuredTextProvider, error) { return yamlProvider{}, nil }
	}
	providerMu.Lock()
	defer providerMu.Unlock()
	providerFactory = f
	providerCached = nil
}

func structuredTextProvider() (StructuredTextProvider, error) {
	providerMu.RLock()
	p := providerCached
	providerMu.RUnlock()
	if p != nil {
		return p, nil
	}

	v, err, _ := providerGroup.Do("structured-text", func() (interface{}, error) {
		providerMu.RLock()
		cached := providerCached
		factory := providerFactory
		providerMu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		p, err := factory()
		if err != nil {
			return nil, err
		}
		providerMu.Lock()
		providerCached = p
		providerMu.Unlock()
		return p, nil
	})
	if err != nil {
		return nil, fmt.Errorf("recast: structured-text provider: %w", err)
	}
	return v.(StructuredTextProvider), nil
}

// DecodeYAML parses block-notation text into a Value via the provider.
func DecodeYAML(input string) (*Value, error) {
	p, err := structuredTextProvider()
	if err != nil {
		return nil, err
	}
	return p.Decode(input)
}

// EncodeYAML renders a Value as block-notation text via the provider.
func EncodeYAML(v *Value) (string, error) {
	p, err := structuredTextProvider()
	if err != nil {
		return "", err
	}
	return p.Encode(v, StructuredTextOptions{Indent: 2, ForceBlockStyle: true})
}

// ============================================================
// Stock yaml.v3 Provider
// ============================================================

type yamlProvider struct{}

func (yamlProvider) Encode(v *Value, opts StructuredTextOptions) (string, error) {
	node, err := valueToYAMLNode(v)
	if err != nil {
		return "", err
	}

	indent := opts.Indent
	if indent <= 0 {
		indent = 2
	}

	var sb strings.Builder
	enc := yaml.NewEncoder(&sb)
	enc.SetIndent(indent)
	if err := enc.Encode(node); err != nil {
		return "", &EncodeError{Format: FormatYAML, Message: err.Error()}
	}
	if err := enc.Close(); err != nil {
		return "", &EncodeError{Format: FormatYAML, Message: err.Error()}
	}
	return strings.TrimSuffix(sb.String(), "\n"), nil
}

func (yamlProvider) Decode(input string) (*Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(input), &doc); err != nil {
		return nil, &DecodeError{Format: FormatYAML, Message: err.Error(), Err: err}
	}
	if len(doc.Content) == 0 {
		return Null(), nil
	}
	return yamlNodeToValue(doc.Content[0])
}

func valueToYAMLNode(v *Value) (*yaml.Node, error) {
	scalar := func(tag, value string) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
	}

	switch v.Kind() {
	case KindNull:
		return scalar("!!null", "null"), nil
	case KindBool:
		return scalar("!!bool", strconv.FormatBool(v.boolVal)), nil
	case KindInt:
		return scalar("!!int", strconv.FormatInt(v.intVal, 10)), nil
	case KindFloat:
		return scalar("!!float", canonFloat(v.floatVal)), nil
	case KindStr:
		return scalar("!!str", v.strVal), nil

	case KindList:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, elem := range v.listVal {
			child, err := valueToYAMLNode(elem)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil

	case KindMap:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, e := range v.mapVal {
			child, err := valueToYAMLNode(e.Value)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, scalar("!!str", e.Key), child)
		}
		return node, nil

	default:
		return nil, &EncodeError{Format: FormatYAML, Message: fmt.Sprintf("unsupported kind %s", v.Kind())}
	}
}

func yamlNodeToValue(node *yaml.Node) (*Value, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.Tag {
		case "!!null":
			return Null(), nil
		case "!!bool":
			b, err := strconv.ParseBool(node.Value)
			if err != nil {
				return Str(node.Value), nil
			}
			return Bool(b), nil
		case "!!int":
			n, err := strconv.ParseInt(node.Value, 10, 64)
			if err != nil {
				return Str(node.Value), nil
			}
			return Int(n), nil
		case "!!float":
			f, err := strconv.ParseFloat(node.Value, 64)
			if err != nil {
				return Str(node.Value), nil
			}
			return Float(f), nil
		default:
			return Str(node.Value), nil
		}

	case yaml.SequenceNode:
		l := List()
		for _, child := range node.Content {
			elem, err := yamlNodeToValue(child)
			if err != nil {
				return nil, err
			}
			l.Append(elem)
		}
		return l, nil

	case yaml.MappingNode:
		m := Map()
		for i := 0; i+1 < len(node.Content); i += 2 {
			val, err := yamlNodeToValue(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			m.Set(node.Content[i].Value, val)
		}
		return m, nil

	case yaml.AliasNode:
		return yamlNodeToValue(node.Alias)

	default:
		return nil, &DecodeError{
			Format:  FormatYAML,
			Message: fmt.Sprintf("unsupported node kind %d", node.Kind),
		}
	}
}
