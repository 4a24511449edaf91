package fixture

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/koskimas/deepmatch/internal/match"
	"github.com/koskimas/deepmatch/internal/model"
)

const (
	// TagMatch marks a scalar as a regular expression: `id: !match ^[0-9]+$`
	TagMatch = "!match"
	// TagKind marks a scalar as a type class: `createdAt: !kind time`
	TagKind = "!kind"
)

// Read reads a YAML or JSON fixture document.
func Read(filePath string) (any, error) {
	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf(`failed to read fixture file "%s": %w`, filePath, err)
	}

	v, err := Decode(fileData)
	if err != nil {
		return nil, fmt.Errorf(`failed to decode fixture file "%s": %w`, filePath, err)
	}

	return v, nil
}

// Decode decodes a YAML or JSON document into maps, slices and scalars.
// Scalars tagged with TagMatch become *regexp.Regexp values and scalars
// tagged with TagKind become match.TypeClass values.
func Decode(data []byte) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	return decodeNode(&doc)
}

func decodeNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case 0:
		return nil, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}

		return decodeNode(n.Content[0])
	case yaml.AliasNode:
		return decodeNode(n.Alias)
	case yaml.MappingNode:
		return decodeMapping(n)
	case yaml.SequenceNode:
		return decodeSequence(n)
	case yaml.ScalarNode:
		return decodeScalar(n)
	}

	return nil, fmt.Errorf(`line %d: unsupported node kind %d`, n.Line, n.Kind)
}

func decodeMapping(n *yaml.Node) (any, error) {
	out := make(map[string]any, len(n.Content)/2)

	for i := 0; i+1 < len(n.Content); i += 2 {
		k := n.Content[i]

		if k.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf(`line %d: mapping keys must be scalars`, k.Line)
		}

		v, err := decodeNode(n.Content[i+1])
		if err != nil {
			return nil, err
		}

		out[k.Value] = v
	}

	return out, nil
}

func decodeSequence(n *yaml.Node) (any, error) {
	out := make([]any, 0, len(n.Content))

	for _, c := range n.Content {
		v, err := decodeNode(c)
		if err != nil {
			return nil, err
		}

		out = append(out, v)
	}

	return out, nil
}

func decodeScalar(n *yaml.Node) (any, error) {
	switch n.Tag {
	case TagMatch:
		re, err := regexp.Compile(n.Value)
		if err != nil {
			return nil, fmt.Errorf(`line %d: invalid pattern "%s": %w`, n.Line, n.Value, err)
		}

		return re, nil
	case TagKind:
		t, err := model.Lookup(n.Value)
		if err != nil {
			return nil, fmt.Errorf(`line %d: %w`, n.Line, err)
		}

		return match.TypeClass{Type: t}, nil
	}

	var v any
	if err := n.Decode(&v); err != nil {
		return nil, fmt.Errorf(`line %d: %w`, n.Line, err)
	}

	return v, nil
}
