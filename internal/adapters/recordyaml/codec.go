// Package recordyaml stores named record trees as YAML documents.
//
// A document is a single-key mapping from the root name to its body. Entries
// sharing a name are written as a sequence under that name, in the order the
// names first appear. Reading accepts a scalar, mapping or sequence for any
// name, so a repeated entry that happens to occur once round-trips too.
package recordyaml

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/andrescamacho/eveindustry-go/internal/domain/record"
)

// ErrMalformedDocument is returned when a document does not hold exactly one
// named record
var ErrMalformedDocument = errors.New("malformed record document")

const nullTag = "!!null"

// Codec is the YAML record codec
type Codec struct{}

// Encode implements the record codec port
func (Codec) Encode(name string, obj *record.Object) ([]byte, error) {
	return Marshal(name, obj)
}

// Decode implements the record codec port
func (Codec) Decode(data []byte) (string, *record.Object, error) {
	return Unmarshal(data)
}

// Marshal encodes obj as a YAML document rooted at name
func Marshal(name string, obj *record.Object) ([]byte, error) {
	if obj == nil {
		obj = record.New()
	}
	root := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			scalarNode(name),
			objectNode(obj),
		},
	}
	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode %s record: %w", name, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode %s record: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a YAML document into its root name and record
func Unmarshal(data []byte) (string, *record.Object, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return "", nil, fmt.Errorf("%w: empty document", ErrMalformedDocument)
	}
	root := resolveAlias(doc.Content[0])
	if root.Kind != yaml.MappingNode || len(root.Content) != 2 {
		return "", nil, fmt.Errorf("%w: expected a single root entry", ErrMalformedDocument)
	}

	name := root.Content[0].Value
	body := resolveAlias(root.Content[1])
	switch {
	case body.Kind == yaml.MappingNode:
		obj, err := decodeObject(body)
		if err != nil {
			return "", nil, err
		}
		return name, obj, nil
	case body.Kind == yaml.ScalarNode && body.Tag == nullTag:
		return name, record.New(), nil
	default:
		return "", nil, fmt.Errorf("%w: root %q is not a mapping", ErrMalformedDocument, name)
	}
}

func objectNode(obj *record.Object) *yaml.Node {
	var names []string
	grouped := make(map[string][]record.Entry)
	for _, e := range obj.Entries() {
		if _, seen := grouped[e.Name]; !seen {
			names = append(names, e.Name)
		}
		grouped[e.Name] = append(grouped[e.Name], e)
	}

	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range names {
		entries := grouped[name]
		var value *yaml.Node
		if len(entries) == 1 {
			value = entryNode(entries[0])
		} else {
			value = &yaml.Node{Kind: yaml.SequenceNode}
			for _, e := range entries {
				value.Content = append(value.Content, entryNode(e))
			}
		}
		node.Content = append(node.Content, scalarNode(name), value)
	}
	return node
}

func entryNode(e record.Entry) *yaml.Node {
	if e.IsObject() {
		return objectNode(e.Object)
	}
	return scalarNode(e.Value)
}

func scalarNode(value string) *yaml.Node {
	node := &yaml.Node{Kind: yaml.ScalarNode, Value: value}
	switch value {
	case "", "~", "null", "Null", "NULL":
		// would otherwise read back as null
		node.Style = yaml.DoubleQuotedStyle
	}
	return node
}

func decodeObject(node *yaml.Node) (*record.Object, error) {
	obj := record.New()
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		if err := decodeValue(obj, name, node.Content[i+1], true); err != nil {
			return nil, err
		}
	}
	return obj, nil
}

func decodeValue(obj *record.Object, name string, node *yaml.Node, allowSequence bool) error {
	node = resolveAlias(node)
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == nullTag {
			return nil
		}
		obj.PutString(name, node.Value)
	case yaml.MappingNode:
		child, err := decodeObject(node)
		if err != nil {
			return err
		}
		obj.PutObject(name, child)
	case yaml.SequenceNode:
		if !allowSequence {
			return fmt.Errorf("%w: nested sequence under %q", ErrMalformedDocument, name)
		}
		for _, item := range node.Content {
			if err := decodeValue(obj, name, item, false); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%w: unsupported node under %q", ErrMalformedDocument, name)
	}
	return nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}
