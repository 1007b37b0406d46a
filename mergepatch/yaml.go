package mergepatch

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/variantform/variantform/vferrors"
)

const (
	// MaxAliasDepth bounds how many aliases may be followed while resolving one node.
	MaxAliasDepth = 100
	// MaxYAMLNodes bounds the number of nodes produced by alias expansion.
	MaxYAMLNodes = 1_000_000
)

// ParseYAML decodes the first YAML document in data, keeping mapping order.
// Aliases and merge keys ("<<") are expanded. An empty document is Null.
// Syntax errors are returned as *vferrors.ParseError.
func ParseYAML(data []byte) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &vferrors.ParseError{Format: "yaml", Cause: err}
	}
	b := &yamlBuilder{}
	return b.build(&doc, 0, 0)
}

type yamlBuilder struct {
	nodes int
}

func (b *yamlBuilder) build(n *yaml.Node, depth, aliasDepth int) (Value, error) {
	b.nodes++
	if b.nodes > MaxYAMLNodes {
		return nil, &vferrors.ResourceLimitError{ResourceType: "yaml_nodes", Limit: MaxYAMLNodes}
	}
	if depth > MaxNestingDepth {
		return nil, &vferrors.ResourceLimitError{ResourceType: "nesting_depth", Limit: MaxNestingDepth, Actual: int64(depth)}
	}

	switch n.Kind {
	case 0:
		return Null{}, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null{}, nil
		}
		return b.build(n.Content[0], depth, aliasDepth)
	case yaml.AliasNode:
		if aliasDepth >= MaxAliasDepth {
			return nil, &vferrors.ResourceLimitError{ResourceType: "alias_depth", Limit: MaxAliasDepth, Actual: int64(aliasDepth + 1)}
		}
		if n.Alias == nil {
			return nil, &vferrors.ParseError{Format: "yaml", Line: n.Line, Column: n.Column, Message: "unknown alias " + n.Value}
		}
		return b.build(n.Alias, depth, aliasDepth+1)
	case yaml.SequenceNode:
		arr := make(Array, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := b.build(c, depth+1, aliasDepth)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.MappingNode:
		return b.mapping(n, depth, aliasDepth)
	case yaml.ScalarNode:
		return scalarValue(n)
	}
	return nil, &vferrors.ParseError{Format: "yaml", Line: n.Line, Column: n.Column, Message: fmt.Sprintf("unsupported node kind %d", n.Kind)}
}

// mapping builds an object. Explicit keys win over keys pulled in through
// merge keys, regardless of where the merge key appears.
func (b *yamlBuilder) mapping(n *yaml.Node, depth, aliasDepth int) (Value, error) {
	obj := NewObject()
	explicit := make(map[string]bool)
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valNode := n.Content[i], n.Content[i+1]
		if keyNode.Kind == yaml.ScalarNode && keyNode.ShortTag() == "!!merge" {
			if err := b.mergeInto(obj, explicit, valNode, depth, aliasDepth); err != nil {
				return nil, err
			}
			continue
		}
		key, err := b.key(keyNode, depth, aliasDepth)
		if err != nil {
			return nil, err
		}
		val, err := b.build(valNode, depth+1, aliasDepth)
		if err != nil {
			return nil, err
		}
		obj.Set(key, val)
		explicit[key] = true
	}
	return obj, nil
}

func (b *yamlBuilder) mergeInto(obj *Object, explicit map[string]bool, src *yaml.Node, depth, aliasDepth int) error {
	var sources []*yaml.Node
	resolved := src
	for resolved.Kind == yaml.AliasNode && resolved.Alias != nil {
		resolved = resolved.Alias
	}
	if resolved.Kind == yaml.SequenceNode {
		sources = resolved.Content
	} else {
		sources = []*yaml.Node{src}
	}
	for _, s := range sources {
		v, err := b.build(s, depth+1, aliasDepth)
		if err != nil {
			return err
		}
		m, ok := v.(*Object)
		if !ok {
			return &vferrors.ParseError{Format: "yaml", Line: src.Line, Column: src.Column, Message: "merge key value must be a mapping or a sequence of mappings"}
		}
		for _, k := range m.Keys() {
			if explicit[k] || obj.Has(k) {
				continue
			}
			mv, _ := m.Get(k)
			obj.Set(k, mv)
		}
	}
	return nil
}

// key renders a mapping key as a string. Scalar keys use their source text;
// complex keys use their compact JSON rendering.
func (b *yamlBuilder) key(n *yaml.Node, depth, aliasDepth int) (string, error) {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	if n.Kind == yaml.ScalarNode {
		if n.ShortTag() == "!!null" {
			return "null", nil
		}
		return n.Value, nil
	}
	v, err := b.build(n, depth+1, aliasDepth)
	if err != nil {
		return "", err
	}
	out, err := MarshalJSON(v)
	if err != nil {
		return "", err
	}
	return strings.Join(strings.Fields(string(out)), ""), nil
}

func scalarValue(n *yaml.Node) (Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return Null{}, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, scalarError(n, err)
		}
		return Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return Number(strconv.FormatInt(i, 10)), nil
		}
		var u uint64
		if err := n.Decode(&u); err == nil {
			return Number(strconv.FormatUint(u, 10)), nil
		}
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, scalarError(n, err)
		}
		return floatNumber(f), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, scalarError(n, err)
		}
		return floatNumber(f), nil
	default:
		return String(n.Value), nil
	}
}

func floatNumber(f float64) Number {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return Number(strconv.FormatFloat(f, 'g', -1, 64))
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		return Number(strconv.FormatFloat(f, 'f', -1, 64))
	}
	return Number(strconv.FormatFloat(f, 'g', -1, 64))
}

func scalarError(n *yaml.Node, err error) error {
	return &vferrors.ParseError{Format: "yaml", Line: n.Line, Column: n.Column, Message: fmt.Sprintf("invalid %s scalar %q", n.ShortTag(), n.Value), Cause: err}
}

// MarshalYAML renders v as a YAML document with two-space indentation, sequences
// indented under their parent key and no line wrapping. Multi-line strings use
// literal block style; strings that need quoting get single quotes.
func MarshalYAML(v Value) ([]byte, error) {
	node, err := toNode(v)
	if err != nil {
		return nil, err
	}
	out, err := yaml.Dump(node,
		yaml.WithIndent(2),
		yaml.WithCompactSeqIndent(false),
		yaml.WithLineWidth(-1),
		yaml.WithQuotePreference(yaml.QuoteSingle),
	)
	if err != nil {
		return nil, fmt.Errorf("mergepatch: encode YAML: %w", err)
	}
	return out, nil
}

func toNode(v Value) (*yaml.Node, error) {
	switch val := v.(type) {
	case nil, Null:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case Bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(bool(val))}, nil
	case Number:
		return numberNode(val), nil
	case String:
		n := &yaml.Node{}
		n.SetString(string(val))
		return n, nil
	case Array:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, elem := range val {
			c, err := toNode(elem)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, c)
		}
		if len(val) == 0 {
			n.Style = yaml.FlowStyle
		}
		return n, nil
	case *Object:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range val.keys {
			k := &yaml.Node{}
			k.SetString(key)
			c, err := toNode(val.values[key])
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, k, c)
		}
		if val.Len() == 0 {
			n.Style = yaml.FlowStyle
		}
		return n, nil
	}
	return nil, fmt.Errorf("mergepatch: unsupported value type %T", v)
}

// numberNode emits the literal untagged; plain scalars that look numeric
// resolve back to numbers.
func numberNode(num Number) *yaml.Node {
	value := string(num)
	switch value {
	case "+Inf":
		value = ".inf"
	case "-Inf":
		value = "-.inf"
	case "NaN":
		value = ".nan"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Value: value}
}
