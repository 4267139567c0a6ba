package options

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads options from a YAML document. A sequence becomes a Sequence, a
// mapping becomes a Mapping that keeps the document's key order. An empty
// document yields empty options.
func Load(r io.Reader) (Options, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return Options{}, nil
		}
		return Options{}, fmt.Errorf("decode options: %w", err)
	}
	node := &doc
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return Options{}, nil
		}
		node = node.Content[0]
	}
	switch node.Kind {
	case yaml.SequenceNode:
		values := make([]any, len(node.Content))
		for i, item := range node.Content {
			v, err := decodeValue(item)
			if err != nil {
				return Options{}, err
			}
			values[i] = v
		}
		return Sequence(values...), nil
	case yaml.MappingNode:
		pairs := make([]Pair, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valueNode := node.Content[i], node.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return Options{}, fmt.Errorf("%w: label at line %d is not a scalar", ErrInvalidOptions, keyNode.Line)
			}
			v, err := decodeValue(valueNode)
			if err != nil {
				return Options{}, err
			}
			pairs = append(pairs, Pair{Label: keyNode.Value, Value: v})
		}
		return Mapping(pairs...), nil
	}
	return Options{}, fmt.Errorf("%w: document at line %d is a scalar", ErrInvalidOptions, node.Line)
}

// LoadFile reads options from the YAML file at path.
func LoadFile(path string) (Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return Options{}, fmt.Errorf("open options file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func decodeValue(node *yaml.Node) (any, error) {
	var v any
	if err := node.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode option at line %d: %w", node.Line, err)
	}
	return v, nil
}
