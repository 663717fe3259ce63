package stream

import (
	"io"
	"strings"

	"github.com/toonkit/go-toon/ir"
	"github.com/toonkit/go-toon/parse"
	"github.com/toonkit/go-toon/token"
	"github.com/toonkit/go-toon/validate"
)

// LineReader yields one raw input line per call and io.EOF when the input
// is exhausted. Lines may carry trailing newline bytes.
type LineReader interface {
	ReadLine() (string, error)
}

// Decoder drives the parse machine over a LineReader, so a document can be
// decoded from a source that arrives incrementally. The size limit is
// enforced cumulatively as lines are read, since the total is not known up
// front.
type Decoder struct {
	opts *options
	m    *parse.Machine
	r    LineReader
	num  int
	read int
	done bool
	err  error
}

func NewDecoder(r LineReader, opts ...Option) *Decoder {
	o := newOptions(opts)
	popts := []parse.ParseOption{
		parse.Indent(o.indent),
		parse.MaxDepth(o.maxDepth),
		parse.MaxSize(o.maxSize),
	}
	if o.strict {
		popts = append(popts, parse.Strict())
	} else {
		popts = append(popts, parse.Permissive())
	}
	return &Decoder{opts: o, m: parse.NewMachine(popts...), r: r}
}

// Step consumes one input line. It returns false once the input is
// exhausted or a decode error is latched; the result is then available
// from Finish.
func (d *Decoder) Step() bool {
	if d.done || d.err != nil {
		return false
	}
	raw, err := d.r.ReadLine()
	if err == io.EOF {
		d.done = true
		return false
	}
	if err != nil {
		d.err = err
		return false
	}
	d.num++
	d.read += len(raw)
	if !strings.HasSuffix(raw, "\n") {
		// line-framed sources deliver lines without their newline byte
		d.read++
	}
	if err := validate.Size(d.read, d.opts.maxSize); err != nil {
		d.err = err
		return false
	}
	ln, ok, err := token.ScanLine(raw, d.num)
	if err != nil {
		if d.opts.strict {
			d.err = err
			return false
		}
		return true // unscannable line dropped
	}
	if !ok {
		return true
	}
	if err := d.m.Feed(ln); err != nil {
		d.err = err
		return false
	}
	return true
}

// Finish returns the decoded root after Step has returned false.
func (d *Decoder) Finish() (*ir.Node, error) {
	if d.err != nil {
		return nil, d.err
	}
	return d.m.Finish()
}

// Decode runs the decoder to completion and returns the document root.
func (d *Decoder) Decode() (*ir.Node, error) {
	for d.Step() {
	}
	return d.Finish()
}
