package ir

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// FromYAML parses a YAML document into a Node tree. Used by the CLI for
// YAML input; mapping key order follows the document.
func FromYAML(d []byte) (*Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return FromGo(v)
}

// FromGo converts a decoded Go value (as produced by the YAML and JSON
// libraries) into a Node tree.
func FromGo(v any) (*Node, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(t), nil
	case int:
		return FromInt(int64(t)), nil
	case int64:
		return FromInt(t), nil
	case uint64:
		return FromInt(int64(t)), nil
	case float64:
		return FromFloat(t), nil
	case string:
		return FromString(t), nil
	case []any:
		vals := make([]*Node, 0, len(t))
		for _, e := range t {
			n, err := FromGo(e)
			if err != nil {
				return nil, err
			}
			vals = append(vals, n)
		}
		return FromSlice(vals), nil
	case yaml.MapSlice:
		kvs := make([]KeyVal, 0, len(t))
		for _, item := range t {
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprintf("%v", item.Key)
			}
			n, err := FromGo(item.Value)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, KeyVal{Key: key, Val: n})
		}
		return FromKeyVals(kvs)
	case map[string]any:
		yMap := make(map[string]*Node, len(t))
		for k, e := range t {
			n, err := FromGo(e)
			if err != nil {
				return nil, err
			}
			yMap[k] = n
		}
		return FromMap(yMap), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}
