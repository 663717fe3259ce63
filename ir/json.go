package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"
)

// FromJSON parses a JSON document into a Node tree. Object key order is
// preserved and numbers keep their integer/float distinction: 1 becomes an
// Int64 node, 1.0 a Float64 node.
func FromJSON(d []byte) (*Node, error) {
	dec := gojson.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	node, err := fromJSONValue(dec)
	if err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after JSON value", ErrUnsupportedValue)
	}
	return node, nil
}

func fromJSONValue(dec *gojson.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return fromJSONToken(dec, tok)
}

func fromJSONToken(dec *gojson.Decoder, tok gojson.Token) (*Node, error) {
	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(t), nil
	case string:
		return FromString(t), nil
	case gojson.Number:
		return fromJSONNumber(t)
	case gojson.Delim:
		switch t {
		case '{':
			return fromJSONObject(dec)
		case '[':
			return fromJSONArray(dec)
		}
	}
	return nil, fmt.Errorf("%w: json token %v", ErrUnsupportedValue, tok)
}

func fromJSONNumber(num gojson.Number) (*Node, error) {
	s := num.String()
	if !strings.ContainsAny(s, ".eE") {
		i, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return FromInt(i), nil
		}
		// falls through for integers beyond int64 range
	}
	f, err := num.Float64()
	if err != nil {
		return nil, fmt.Errorf("%w: number %q", ErrUnsupportedValue, s)
	}
	return FromFloat(f), nil
}

func fromJSONObject(dec *gojson.Decoder) (*Node, error) {
	kvs := []KeyVal{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object key %v", ErrUnsupportedValue, keyTok)
		}
		val, err := fromJSONValue(dec)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, KeyVal{Key: key, Val: val})
	}
	if _, err := dec.Token(); err != nil { // closing brace
		return nil, err
	}
	return FromKeyVals(kvs)
}

func fromJSONArray(dec *gojson.Decoder) (*Node, error) {
	vals := []*Node{}
	for dec.More() {
		val, err := fromJSONValue(dec)
		if err != nil {
			return nil, err
		}
		vals = append(vals, val)
	}
	if _, err := dec.Token(); err != nil { // closing bracket
		return nil, err
	}
	return FromSlice(vals), nil
}

// ToJSON renders a Node tree as compact JSON, preserving object key order.
func ToJSON(node *Node) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := writeJSON(buf, node); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, node *Node) error {
	switch node.Type {
	case NullType:
		buf.WriteString("null")
	case BoolType:
		buf.WriteString(strconv.FormatBool(node.Bool))
	case NumberType:
		switch {
		case node.Int64 != nil:
			buf.WriteString(strconv.FormatInt(*node.Int64, 10))
		case node.Float64 != nil:
			v := strconv.FormatFloat(*node.Float64, 'f', -1, 64)
			if !strings.ContainsAny(v, ".eE") {
				v += ".0"
			}
			buf.WriteString(v)
		default:
			return fmt.Errorf("%w: number node without value", ErrUnsupportedValue)
		}
	case StringType:
		d, err := gojson.Marshal(node.String)
		if err != nil {
			return err
		}
		buf.Write(d)
	case ArrayType:
		buf.WriteByte('[')
		for i, v := range node.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, v); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ObjectType:
		buf.WriteByte('{')
		for i, f := range node.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			d, err := gojson.Marshal(f.String)
			if err != nil {
				return err
			}
			buf.Write(d)
			buf.WriteByte(':')
			if err := writeJSON(buf, node.Values[i]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedValue, node.Type)
	}
	return nil
}
