package parse

import (
	"strconv"
	"strings"

	"github.com/toonkit/go-toon/ir"
	"github.com/toonkit/go-toon/token"
	"github.com/toonkit/go-toon/validate"
)

type containerKind int

const (
	objectContainer containerKind = iota
	arrayContainer
	tabularContainer
)

// frame is one open container on the machine stack. level is the indent
// level of the container's entries, not of the line that opened it.
type frame struct {
	level     int
	kind      containerKind
	node      *ir.Node
	key       string
	fromBlock bool
	openLine  int
	keys      map[string]bool
	declaredN int
	count     int
	cols      []string
	delim     byte
}

// Machine consumes scanned lines one at a time and assembles the document
// tree. It is shared by Parse and the streaming decoder; feed every line
// in order, then call Finish for the root.
type Machine struct {
	opts     *parseOpts
	stack    []*frame
	root     *ir.Node
	started  bool
	lastLine int
	err      error
}

func NewMachine(opts ...ParseOption) *Machine {
	return &Machine{opts: newParseOpts(opts...)}
}

func (m *Machine) fail(err error) error {
	m.err = err
	return err
}

func (m *Machine) top() *frame {
	return m.stack[len(m.stack)-1]
}

func (m *Machine) push(f *frame) error {
	if err := validate.StackDepth(len(m.stack)+1, m.opts.maxDepth); err != nil {
		return m.fail(err)
	}
	m.stack = append(m.stack, f)
	return nil
}

// Feed advances the machine by one line. In strict mode the first error is
// sticky and returned from every subsequent call.
func (m *Machine) Feed(ln token.Line) error {
	if m.err != nil {
		return m.err
	}
	m.lastLine = ln.Num
	level := ln.Spaces / m.opts.indent
	if m.opts.strict && ln.Spaces%m.opts.indent != 0 {
		return m.fail(errAt(IndentationError, ln.Num,
			"indent of %d spaces is not a multiple of %d", ln.Spaces, m.opts.indent))
	}
	if !m.started {
		return m.start(ln, level)
	}
	for len(m.stack) > 0 && m.top().level > level {
		if err := m.closeTop(false); err != nil {
			return m.fail(err)
		}
	}
	if len(m.stack) == 0 {
		if m.opts.strict {
			return m.fail(errAt(SyntaxError, ln.Num, "content after document end"))
		}
		return nil
	}
	f := m.top()
	if level > f.level {
		if m.opts.strict {
			return m.fail(errAt(IndentationError, ln.Num,
				"unexpected indent level %d, expected %d", level, f.level))
		}
		return nil
	}
	switch f.kind {
	case tabularContainer:
		return m.tabularRow(f, ln)
	default:
		return m.containerEntry(f, ln)
	}
}

// start classifies the first line: a keyed entry makes the root an object,
// a bare array header makes it an array, anything else is a scalar root.
func (m *Machine) start(ln token.Line, level int) error {
	m.started = true
	if level != 0 || ln.Spaces != 0 {
		if m.opts.strict {
			return m.fail(errAt(IndentationError, ln.Num, "document must start at column 0"))
		}
		m.started = false
		return nil
	}
	e, ok, err := token.ParseEntry(ln.Text)
	if err == nil && ok && e.HasKey {
		obj := &ir.Node{Type: ir.ObjectType}
		m.root = obj
		if err := m.push(&frame{
			level: 0, kind: objectContainer, node: obj,
			openLine: ln.Num, keys: map[string]bool{},
		}); err != nil {
			return err
		}
		return m.containerEntry(m.top(), ln)
	}
	if err == nil && ok {
		arr := &ir.Node{Type: ir.ArrayType}
		m.root = arr
		return m.pushArray(arr, "", e, ln)
	}
	// Not a structural line. Texts like "[]" or "a[1]" trip the header
	// parser but are legitimate scalar roots; take the scalar whenever
	// one parses, and fail only when neither reading works.
	v, perr := parseScalar(ln.Text)
	if perr != nil {
		if m.opts.strict {
			if err != nil {
				return m.fail(errAt(SyntaxError, ln.Num, "bad header: %v", err))
			}
			return m.fail(errAt(SyntaxError, ln.Num, "bad scalar: %v", perr))
		}
		v = ir.FromString(ln.Text)
	}
	m.root = v
	return nil
}

// containerEntry handles one entry line of an object or index-prefixed
// array container.
func (m *Machine) containerEntry(f *frame, ln token.Line) error {
	e, ok, err := token.ParseEntry(ln.Text)
	if err != nil || !ok || !e.HasKey {
		if m.opts.strict {
			if err != nil {
				return m.fail(errAt(SyntaxError, ln.Num, "bad header: %v", err))
			}
			return m.fail(errAt(SyntaxError, ln.Num, "expected an entry, got %q", ln.Text))
		}
		return nil
	}
	if f.kind == objectContainer {
		if f.keys[e.Key] {
			if m.opts.strict {
				return m.fail(errAt(DuplicateKey, ln.Num, "duplicate key %q", e.Key))
			}
			return nil // first wins; nested lines fall out as over-indented
		}
	} else {
		if f.count >= f.declaredN {
			if m.opts.strict {
				return m.fail(errAt(SyntaxError, ln.Num,
					"array declared %d elements, got more", f.declaredN))
			}
			return nil
		}
		if m.opts.strict && e.Key != strconv.Itoa(f.count) {
			return m.fail(errAt(SyntaxError, ln.Num,
				"expected array index %d, got %q", f.count, e.Key))
		}
	}

	attach := func(v *ir.Node) {
		if f.kind == objectContainer {
			appendField(f.node, e.Key, v)
			f.keys[e.Key] = true
		} else {
			appendElem(f.node, v)
			f.count++
		}
	}

	switch e.Kind {
	case token.EntryScalar:
		v, perr := parseScalar(e.Value)
		if perr != nil {
			if m.opts.strict {
				return m.fail(errAt(SyntaxError, ln.Num, "bad scalar: %v", perr))
			}
			v = ir.FromString(e.Value)
		}
		attach(v)
		return nil
	case token.EntryBlock:
		obj := &ir.Node{Type: ir.ObjectType}
		attach(obj)
		return m.push(&frame{
			level: f.level + 1, kind: objectContainer, node: obj,
			key: e.Key, fromBlock: true, openLine: ln.Num, keys: map[string]bool{},
		})
	default:
		// On permissive recovery pushArray may decline to open a frame;
		// the key still binds, to an empty array, and the orphaned rows
		// fall out as over-indented.
		arr := &ir.Node{Type: ir.ArrayType}
		attach(arr)
		return m.pushArray(arr, e.Key, e, ln)
	}
}

// pushArray opens a plain or tabular array container for a parsed header.
func (m *Machine) pushArray(arr *ir.Node, key string, e *token.Entry, ln token.Line) error {
	nf := &frame{
		level: m.frameLevelFor(ln) + 1, kind: arrayContainer, node: arr,
		key: key, openLine: ln.Num, declaredN: e.N,
	}
	if e.Kind == token.EntryTabular {
		if len(e.Cols) == 0 {
			return m.fail(errAt(SyntaxError, ln.Num, "tabular header declares no columns"))
		}
		if dup := firstDup(e.Cols); dup != "" {
			if m.opts.strict {
				return m.fail(errAt(DuplicateKey, ln.Num, "duplicate column %q", dup))
			}
			return nil // drop the header; its rows fall out as over-indented
		}
		nf.kind = tabularContainer
		nf.cols = e.Cols
		nf.delim = e.Delim
	}
	return m.push(nf)
}

func (m *Machine) frameLevelFor(ln token.Line) int {
	return ln.Spaces / m.opts.indent
}

// tabularRow parses one delimiter-joined row into an object element.
func (m *Machine) tabularRow(f *frame, ln token.Line) error {
	if f.count >= f.declaredN {
		if m.opts.strict {
			return m.fail(errAt(SyntaxError, ln.Num,
				"array declared %d rows, got more", f.declaredN))
		}
		return nil
	}
	cells := token.SplitRow(ln.Text, f.delim)
	if len(cells) != len(f.cols) {
		if m.opts.strict {
			return m.fail(errAt(ColumnCountMismatch, ln.Num,
				"row has %d values, header declares %d columns", len(cells), len(f.cols)))
		}
		for len(cells) < len(f.cols) {
			cells = append(cells, "null")
		}
		cells = cells[:len(f.cols)]
	}
	kvs := make([]ir.KeyVal, len(f.cols))
	for i, col := range f.cols {
		v, perr := parseScalar(cells[i])
		if perr != nil {
			if m.opts.strict {
				return m.fail(errAt(SyntaxError, ln.Num, "bad scalar in column %q: %v", col, perr))
			}
			v = ir.FromString(cells[i])
		}
		kvs[i] = ir.KeyVal{Key: col, Val: v}
	}
	obj, err := ir.FromKeyVals(kvs)
	if err != nil {
		return m.fail(errAt(DuplicateKey, ln.Num, "%v", err))
	}
	appendElem(f.node, obj)
	f.count++
	return nil
}

// closeTop pops the innermost container, checking declared counts and
// collapsing never-filled blocks to null.
func (m *Machine) closeTop(atEOF bool) error {
	f := m.top()
	m.stack = m.stack[:len(m.stack)-1]
	switch f.kind {
	case objectContainer:
		if f.fromBlock && len(f.node.Values) == 0 {
			if atEOF && m.opts.strict {
				return errAt(SyntaxError, f.openLine, "key %q has no value", f.key)
			}
			f.node.Type = ir.NullType
		}
	default:
		if m.opts.strict && f.count < f.declaredN {
			return errAt(SyntaxError, f.openLine,
				"array declared %d elements, got %d", f.declaredN, f.count)
		}
	}
	return nil
}

// Finish closes the remaining containers and returns the document root.
// An empty document decodes as null.
func (m *Machine) Finish() (*ir.Node, error) {
	if m.err != nil {
		return nil, m.err
	}
	for len(m.stack) > 0 {
		if err := m.closeTop(true); err != nil {
			return nil, m.fail(err)
		}
	}
	if m.root == nil {
		m.root = ir.Null()
	}
	return m.root, nil
}

func appendField(obj *ir.Node, key string, v *ir.Node) {
	i := len(obj.Values)
	obj.Fields = append(obj.Fields, &ir.Node{
		Parent: obj, ParentIndex: i, ParentField: key,
		Type: ir.StringType, String: key,
	})
	v.Parent = obj
	v.ParentIndex = i
	v.ParentField = key
	obj.Values = append(obj.Values, v)
}

func appendElem(arr *ir.Node, v *ir.Node) {
	v.Parent = arr
	v.ParentIndex = len(arr.Values)
	arr.Values = append(arr.Values, v)
}

func firstDup(cols []string) string {
	seen := make(map[string]bool, len(cols))
	for _, c := range cols {
		if seen[c] {
			return c
		}
		seen[c] = true
	}
	return ""
}

// parseScalar interprets trimmed cell or value text. Unquoted text that is
// not a number or a reserved literal is a plain string.
func parseScalar(s string) (*ir.Node, error) {
	switch s {
	case "", "null":
		return ir.Null(), nil
	case "true":
		return ir.FromBool(true), nil
	case "false":
		return ir.FromBool(false), nil
	case "[]":
		return &ir.Node{Type: ir.ArrayType}, nil
	case "{}":
		return &ir.Node{Type: ir.ObjectType}, nil
	}
	if s[0] == '"' {
		n, v, err := token.QuotedPrefix(s)
		if err != nil {
			return nil, err
		}
		if n != len(s) {
			return nil, token.ErrUnterminated
		}
		return ir.FromString(v), nil
	}
	if token.LooksLikeNumber(s) {
		if token.IsFloatForm(s) {
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, err
			}
			return ir.FromFloat(f), nil
		}
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			// out of int64 range, keep the magnitude
			f, ferr := strconv.ParseFloat(s, 64)
			if ferr != nil {
				return nil, err
			}
			return ir.FromFloat(f), nil
		}
		return ir.FromInt(i), nil
	}
	return ir.FromString(strings.TrimSpace(s)), nil
}
