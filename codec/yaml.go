package codec

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/poiesic/rolodex/core"
	"gopkg.in/yaml.v3"
)

// EncodeYAML renders records as a YAML sequence. Values are always
// double-quoted so that none of them resolves to another type on reload;
// values that are not valid UTF-8 are written as !!binary.
func EncodeYAML(records []core.Contact) ([]byte, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, r := range records {
		seq.Content = append(seq.Content, &yaml.Node{
			Kind: yaml.MappingNode,
			Tag:  "!!map",
			Content: []*yaml.Node{
				yamlKey("name"), yamlValue(r.Name),
				yamlKey("number"), yamlValue(r.Number),
			},
		})
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(seq); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func yamlKey(key string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
}

func yamlValue(s string) *yaml.Node {
	if !utf8.ValidString(s) {
		return &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!binary",
			Value: base64.StdEncoding.EncodeToString([]byte(s)),
		}
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Style: yaml.DoubleQuotedStyle, Value: s}
}

// DecodeYAML parses a YAML contact list. An empty document is an empty list.
func DecodeYAML(data []byte) ([]core.Contact, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if doc.Kind == 0 {
		return []core.Contact{}, nil
	}

	seq := &doc
	if seq.Kind == yaml.DocumentNode && len(seq.Content) > 0 {
		seq = seq.Content[0]
	}
	if seq.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: line %d: expected a sequence", ErrMalformed, seq.Line)
	}

	records := make([]core.Contact, 0, len(seq.Content))
	for _, elem := range seq.Content {
		if elem.Kind != yaml.MappingNode {
			continue
		}
		name, ok := yamlString(elem, "name")
		if !ok {
			continue
		}
		number, ok := yamlString(elem, "number")
		if !ok {
			continue
		}
		records = append(records, core.Contact{Name: name, Number: number})
	}
	return records, nil
}

// yamlString returns the value of key in a mapping node when it is a plain
// string scalar. Numbers, booleans and nulls do not count as strings.
func yamlString(m *yaml.Node, key string) (string, bool) {
	for i := 0; i+1 < len(m.Content); i += 2 {
		k, v := m.Content[i], m.Content[i+1]
		if k.Value != key {
			continue
		}
		if v.Kind != yaml.ScalarNode {
			return "", false
		}
		switch v.ShortTag() {
		case "!!str":
			return v.Value, true
		case "!!binary":
			raw, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(v.Value), ""))
			if err != nil {
				return "", false
			}
			return string(raw), true
		default:
			return "", false
		}
	}
	return "", false
}
