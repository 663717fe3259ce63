package encode

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/toonkit/go-toon/ir"
	"github.com/toonkit/go-toon/validate"
)

// ErrEncoding is the sentinel wrapped by all encoder failures.
var ErrEncoding = errors.New("encoding error")

// EncState carries the per-call encoder configuration and color hooks.
// One EncState serves exactly one Encode call; nothing survives it.
type EncState struct {
	indent     int
	sortKeys   bool
	delim      byte
	fixedDelim bool
	maxDepth   int
	maxSize    int

	colorType ir.Type
	Color     func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w in TOON form. Depth and size limits are checked
// before the first byte is written; a limit violation produces no output.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	if err := validate.Depth(node, es.maxDepth); err != nil {
		return err
	}
	if err := validate.Size(validate.Estimate(node), es.maxSize); err != nil {
		return err
	}
	return encodeValue(node, w, es, 0, "", false)
}

// MustString encodes node to a string, panicking on failure. Intended for
// values already validated, such as test fixtures.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	b := &strings.Builder{}
	if err := Encode(node, b, opts...); err != nil {
		panic(err)
	}
	return b.String()
}

func encodeValue(node *ir.Node, w io.Writer, es *EncState, level int, key string, hasKey bool) error {
	switch node.Type {
	case ir.ObjectType:
		if len(node.Fields) == 0 {
			return encodeScalarEntry(node, w, es, level, key, hasKey)
		}
		return encodeObject(node, w, es, level, key, hasKey)
	case ir.ArrayType:
		if len(node.Values) == 0 {
			return encodeScalarEntry(node, w, es, level, key, hasKey)
		}
		return encodeArray(node, w, es, level, key, hasKey)
	default:
		return encodeScalarEntry(node, w, es, level, key, hasKey)
	}
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState, level int, key string, hasKey bool) error {
	entryLevel := level
	if hasKey {
		es.colorType = ir.ObjectType
		if err := writeLine(w, es, level, es.key(key)+es.sep(":")); err != nil {
			return err
		}
		entryLevel = level + 1
	}
	for _, fi := range KeyOrder(node, es.sortKeys) {
		f := node.Fields[fi]
		if err := encodeValue(node.Values[fi], w, es, entryLevel, KeyText(f.String), true); err != nil {
			return err
		}
	}
	return nil
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState, level int, key string, hasKey bool) error {
	es.colorType = ir.ArrayType
	if cols, ok := TabularColumns(node, es.sortKeys); ok {
		delim := ChooseDelim(node, es.delim, es.fixedDelim)
		header := HeaderText(key, hasKey, len(node.Values), cols, delim)
		if err := writeLine(w, es, level, es.value(ir.ArrayType, header)); err != nil {
			return err
		}
		for _, elem := range node.Values {
			row, err := RowText(elem, cols, delim)
			if err != nil {
				return err
			}
			if err := writeLine(w, es, level+1, es.value(ir.StringType, row)); err != nil {
				return err
			}
		}
		return nil
	}
	header := HeaderText(key, hasKey, len(node.Values), nil, 0)
	if err := writeLine(w, es, level, es.value(ir.ArrayType, header)); err != nil {
		return err
	}
	for i, elem := range node.Values {
		if err := encodeValue(elem, w, es, level+1, strconv.Itoa(i), true); err != nil {
			return err
		}
	}
	return nil
}

func encodeScalarEntry(node *ir.Node, w io.Writer, es *EncState, level int, key string, hasKey bool) error {
	s, err := ScalarText(node, es.delim)
	if err != nil {
		return err
	}
	s = es.value(node.Type, s)
	if hasKey {
		es.colorType = ir.ObjectType
		s = es.key(key) + es.sep(":") + " " + s
	}
	return writeLine(w, es, level, s)
}

func writeLine(w io.Writer, es *EncState, level int, text string) error {
	pad := strings.Repeat(" ", es.indent*level)
	_, err := io.WriteString(w, pad+text+"\n")
	return err
}

// key colorizes already-rendered key or index text. Quoting happens at
// the call site: object keys go through KeyText, array indices never do.
func (es *EncState) key(k string) string {
	if es.Color == nil {
		return k
	}
	return es.Color(es.colorType, FieldColor, k)
}

func (es *EncState) sep(s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(es.colorType, SepColor, s)
}

func (es *EncState) value(t ir.Type, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, ValueColor, v)
}
