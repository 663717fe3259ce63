package encode

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/toonkit/go-toon/ir"
	"github.com/toonkit/go-toon/token"
)

// The planner decides, per value, everything the emitter needs before a
// single byte goes out: key order, tabular eligibility, and the row
// delimiter. The streaming encoder shares these decisions.

// KeyOrder returns the field indices of node in encoding order.
func KeyOrder(node *ir.Node, sortKeys bool) []int {
	order := make([]int, len(node.Fields))
	for i := range order {
		order[i] = i
	}
	if !sortKeys {
		return order
	}
	sort.Slice(order, func(a, b int) bool {
		return node.Fields[order[a]].String < node.Fields[order[b]].String
	})
	return order
}

// TabularColumns reports whether node is a tabular-eligible array and, if
// so, the projected column order. Eligible means: non-empty, every element
// an object, identical key sets, and every cell scalar.
func TabularColumns(node *ir.Node, sortKeys bool) ([]string, bool) {
	if node.Type != ir.ArrayType || len(node.Values) == 0 {
		return nil, false
	}
	first := node.Values[0]
	if first.Type != ir.ObjectType || len(first.Fields) == 0 {
		return nil, false
	}
	order := KeyOrder(first, sortKeys)
	cols := make([]string, len(order))
	colSet := make(map[string]struct{}, len(order))
	for i, fi := range order {
		cols[i] = first.Fields[fi].String
		colSet[cols[i]] = struct{}{}
	}
	for _, elem := range node.Values {
		if elem.Type != ir.ObjectType || len(elem.Fields) != len(cols) {
			return nil, false
		}
		for i, f := range elem.Fields {
			if _, ok := colSet[f.String]; !ok {
				return nil, false
			}
			if !elem.Values[i].IsScalar() {
				return nil, false
			}
		}
	}
	return cols, true
}

// ChooseDelim picks the row delimiter for a tabular array. Candidates are
// tried in the fixed order comma, pipe, tab, starting from the configured
// default; a candidate collides when any stringified cell contains it or a
// newline. When every candidate collides the default wins and colliding
// cells are quoted instead.
func ChooseDelim(node *ir.Node, def byte, fixed bool) byte {
	if fixed {
		return def
	}
	candidates := []byte{def}
	for _, c := range token.Delims {
		if c != def {
			candidates = append(candidates, c)
		}
	}
	for _, cand := range candidates {
		if !delimCollides(node, cand) {
			return cand
		}
	}
	return def
}

func delimCollides(node *ir.Node, delim byte) bool {
	for _, elem := range node.Values {
		for _, cell := range elem.Values {
			if cell.Type != ir.StringType {
				continue
			}
			if strings.IndexByte(cell.String, delim) >= 0 {
				return true
			}
			if strings.IndexByte(cell.String, '\n') >= 0 {
				return true
			}
		}
	}
	return false
}

// ScalarText renders a leaf node as its line token, quoting strings that
// would be ambiguous under delim.
func ScalarText(node *ir.Node, delim byte) (string, error) {
	switch node.Type {
	case ir.NullType:
		return "null", nil
	case ir.BoolType:
		return strconv.FormatBool(node.Bool), nil
	case ir.NumberType:
		return NumberText(node)
	case ir.StringType:
		if token.NeedsQuote(node.String, delim) {
			return token.Quote(node.String), nil
		}
		return node.String, nil
	case ir.ObjectType:
		if len(node.Fields) == 0 {
			return "{}", nil
		}
	case ir.ArrayType:
		if len(node.Values) == 0 {
			return "[]", nil
		}
	}
	return "", fmt.Errorf("%w: %s is not scalar", ErrEncoding, node.Type)
}

// NumberText renders a number in minimal form. Integers carry no decimal
// point; floats whose shortest form looks integral gain a ".0" suffix so
// the distinction survives decoding.
func NumberText(node *ir.Node) (string, error) {
	switch {
	case node.Int64 != nil:
		return strconv.FormatInt(*node.Int64, 10), nil
	case node.Float64 != nil:
		f := *node.Float64
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", fmt.Errorf("%w: %v has no text form", ErrEncoding, f)
		}
		v := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.ContainsAny(v, ".eE") {
			v += ".0"
		}
		return v, nil
	default:
		return "", fmt.Errorf("%w: number node without value", ErrEncoding)
	}
}

// KeyText renders an object key, quoting when the key would be mistaken
// for structure.
func KeyText(key string) string {
	if token.NeedsQuoteKey(key) {
		return token.Quote(key)
	}
	return key
}

// HeaderText renders an array header line. key is already-rendered text:
// object keys arrive through KeyText, array element indices stay as bare
// digits. Tabular headers carry the column list and, for non-comma
// delimiters, the delimiter byte before the colon so the decoder need not
// guess.
func HeaderText(key string, hasKey bool, n int, cols []string, delim byte) string {
	b := &strings.Builder{}
	if hasKey {
		b.WriteString(key)
	}
	b.WriteByte('[')
	b.WriteString(strconv.Itoa(n))
	b.WriteByte(']')
	if cols != nil {
		b.WriteByte('{')
		for i, col := range cols {
			if i > 0 {
				b.WriteByte(',')
			}
			if token.NeedsQuoteKey(col) {
				b.WriteString(token.Quote(col))
			} else {
				b.WriteString(col)
			}
		}
		b.WriteByte('}')
		if delim != ',' {
			b.WriteByte(delim)
		}
	}
	b.WriteByte(':')
	return b.String()
}

// RowText renders one tabular row: the element's cells in column order,
// joined by delim.
func RowText(elem *ir.Node, cols []string, delim byte) (string, error) {
	b := &strings.Builder{}
	for i, col := range cols {
		if i > 0 {
			b.WriteByte(delim)
		}
		cell := ir.Get(elem, col)
		if cell == nil {
			return "", fmt.Errorf("%w: row missing column %q", ErrEncoding, col)
		}
		s, err := ScalarText(cell, delim)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}
