package stream

import (
	"io"
	"strconv"

	"github.com/toonkit/go-toon/encode"
	"github.com/toonkit/go-toon/ir"
	"github.com/toonkit/go-toon/validate"
)

type encKind int

const (
	encObject encKind = iota
	encArray
	encTabular
)

// encFrame is one open container being walked. level is the indent level
// of the container's entries and i the next child to emit.
type encFrame struct {
	kind  encKind
	node  *ir.Node
	order []int
	cols  []string
	delim byte
	level int
	i     int
}

// Encoder produces the document one line at a time. Call Next until it
// returns io.EOF; lines carry no trailing newline. The traversal keeps an
// explicit frame stack, so output starts before the tree has been walked
// and memory stays proportional to nesting depth.
type Encoder struct {
	opts  *options
	stack []*encFrame
	start *ir.Node
}

// NewEncoder validates depth and estimated size up front, so a limit
// violation surfaces before the first line is pulled.
func NewEncoder(root *ir.Node, opts ...Option) (*Encoder, error) {
	o := newOptions(opts)
	if err := validate.Depth(root, o.maxDepth); err != nil {
		return nil, err
	}
	if err := validate.Size(validate.Estimate(root), o.maxSize); err != nil {
		return nil, err
	}
	return &Encoder{opts: o, start: root}, nil
}

// Next returns the next output line, or io.EOF after the last.
func (e *Encoder) Next() (string, error) {
	if e.start != nil {
		root := e.start
		e.start = nil
		return e.emitValue(root, 0, "", false)
	}
	for len(e.stack) > 0 {
		f := e.stack[len(e.stack)-1]
		n := len(f.node.Values)
		if f.kind == encObject {
			n = len(f.order)
		}
		if f.i >= n {
			e.stack = e.stack[:len(e.stack)-1]
			continue
		}
		i := f.i
		f.i++
		switch f.kind {
		case encObject:
			fi := f.order[i]
			return e.emitValue(f.node.Values[fi], f.level, encode.KeyText(f.node.Fields[fi].String), true)
		case encArray:
			return e.emitValue(f.node.Values[i], f.level, strconv.Itoa(i), true)
		default:
			row, err := encode.RowText(f.node.Values[i], f.cols, f.delim)
			if err != nil {
				return "", err
			}
			return pad(f.level*e.opts.indent) + row, nil
		}
	}
	return "", io.EOF
}

// emitValue returns the opening line for node and, for a non-empty
// container, pushes the frame that will emit its children. key is
// already-rendered text: object keys arrive quoted when needed, array
// indices stay bare digits.
func (e *Encoder) emitValue(node *ir.Node, level int, key string, hasKey bool) (string, error) {
	switch node.Type {
	case ir.ObjectType:
		if len(node.Fields) == 0 {
			break
		}
		f := &encFrame{
			kind:  encObject,
			node:  node,
			order: encode.KeyOrder(node, e.opts.sortKeys),
			level: level,
		}
		if !hasKey {
			e.stack = append(e.stack, f)
			return e.Next()
		}
		f.level = level + 1
		e.stack = append(e.stack, f)
		return pad(level*e.opts.indent) + key + ":", nil
	case ir.ArrayType:
		if len(node.Values) == 0 {
			break
		}
		f := &encFrame{kind: encArray, node: node, level: level + 1}
		if cols, ok := encode.TabularColumns(node, e.opts.sortKeys); ok {
			f.kind = encTabular
			f.cols = cols
			f.delim = encode.ChooseDelim(node, e.opts.delim, e.opts.fixedDelim)
		}
		e.stack = append(e.stack, f)
		header := encode.HeaderText(key, hasKey, len(node.Values), f.cols, f.delim)
		return pad(level*e.opts.indent) + header, nil
	}
	s, err := encode.ScalarText(node, e.opts.delim)
	if err != nil {
		return "", err
	}
	if hasKey {
		s = key + ": " + s
	}
	return pad(level*e.opts.indent) + s, nil
}

// Copy drains e into w, one line per Next call. It returns the byte count
// written including newlines.
func Copy(w io.Writer, e *Encoder) (int, error) {
	total := 0
	for {
		ln, err := e.Next()
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
		n, err := io.WriteString(w, ln+"\n")
		total += n
		if err != nil {
			return total, err
		}
	}
}

func pad(n int) string {
	const spaces = "                                                                "
	res := ""
	for n > len(spaces) {
		res += spaces
		n -= len(spaces)
	}
	return res + spaces[:n]
}
