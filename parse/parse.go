package parse

import (
	"github.com/toonkit/go-toon/ir"
	"github.com/toonkit/go-toon/token"
	"github.com/toonkit/go-toon/validate"
)

// Parse decodes a whole document into its tree form. The input size is
// checked before any line is scanned.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	m := NewMachine(opts...)
	if err := validate.Size(len(d), m.opts.maxSize); err != nil {
		return nil, err
	}
	lines, err := token.ScanLines(d)
	if err != nil {
		if !m.opts.strict {
			// rescan leniently, dropping unscannable lines
			lines = lenientLines(d)
		} else {
			return nil, err
		}
	}
	for _, ln := range lines {
		if err := m.Feed(ln); err != nil {
			return nil, err
		}
	}
	return m.Finish()
}

// ParseString is Parse on a string.
func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

func lenientLines(d []byte) []token.Line {
	var res []token.Line
	num := 0
	for len(d) > 0 {
		raw := d
		if i := indexNewline(d); i >= 0 {
			raw = d[:i]
			d = d[i+1:]
		} else {
			d = nil
		}
		num++
		ln, ok, err := token.ScanLine(string(raw), num)
		if err != nil || !ok {
			continue
		}
		res = append(res, ln)
	}
	return res
}

func indexNewline(d []byte) int {
	for i, c := range d {
		if c == '\n' {
			return i
		}
	}
	return -1
}
