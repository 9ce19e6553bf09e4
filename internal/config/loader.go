// Package config loads YAML documents into the value union, preserving
// mapping key order through the yaml.Node representation.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"iteraptor/value"
)

// LoadFile reads and parses a YAML document from the given path.
func LoadFile(path string) (value.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a value.Value. Mapping key order follows the
// document; an empty document parses to an empty Map.
func Parse(data []byte) (value.Value, error) {
	var doc yaml.Node

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document YAML: %w", err)
	}

	if doc.Kind == 0 || len(doc.Content) == 0 {
		return value.Map{}, nil
	}

	return fromNode(doc.Content[0])
}

func fromNode(n *yaml.Node) (value.Value, error) {
	switch n.Kind {
	default:
		return nil, fmt.Errorf("%w: yaml node kind %d at line %d", value.ErrUnsupportedValue, n.Kind, n.Line)

	case yaml.AliasNode:
		return fromNode(n.Alias)

	case yaml.ScalarNode:
		x, err := scalarPayload(n)
		if err != nil {
			return nil, err
		}
		return value.Scalar{X: x}, nil

	case yaml.SequenceNode:
		out := make(value.Seq, 0, len(n.Content))
		for _, el := range n.Content {
			v, err := fromNode(el)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil

	case yaml.MappingNode:
		out := make(value.Map, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, err := keyOf(n.Content[i])
			if err != nil {
				return nil, err
			}

			v, err := fromNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}

			out = append(out, value.Pair{Key: k, Value: v})
		}
		return out, nil
	}
}

// keyOf types a mapping key: integer-tagged keys become index keys, all
// other scalars keep their rendered text as a name.
func keyOf(n *yaml.Node) (value.Key, error) {
	if n.Kind != yaml.ScalarNode {
		return value.Key{}, fmt.Errorf("%w: non-scalar mapping key at line %d", value.ErrUnsupportedValue, n.Line)
	}

	if n.Tag == "!!int" {
		i, err := strconv.Atoi(n.Value)
		if err == nil && i >= 0 {
			return value.IndexKey(i), nil
		}
	}

	return value.NameKey(n.Value), nil
}

func scalarPayload(n *yaml.Node) (any, error) {
	switch n.Tag {
	default:
		return n.Value, nil

	case "!!null":
		return nil, nil

	case "!!bool":
		return strconv.ParseBool(n.Value)

	case "!!int":
		i, err := strconv.Atoi(n.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to parse integer scalar %q at line %d: %w", n.Value, n.Line, err)
		}
		return i, nil

	case "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse float scalar %q at line %d: %w", n.Value, n.Line, err)
		}
		return f, nil
	}
}
