package parse

import "github.com/toonkit/go-toon/validate"

type parseOpts struct {
	strict   bool
	indent   int
	maxDepth int
	maxSize  int
}

// ParseOption configures a single Parse call or Machine.
type ParseOption func(*parseOpts)

// Strict makes the decoder reject malformed input with a *DecodeError
// instead of recovering. This is the default.
func Strict() ParseOption {
	return func(o *parseOpts) {
		o.strict = true
	}
}

// Permissive makes the decoder recover from malformed input: short rows
// are padded with null, long rows truncated, unrecognized lines skipped,
// and the first of duplicate keys wins.
func Permissive() ParseOption {
	return func(o *parseOpts) {
		o.strict = false
	}
}

// Indent sets the number of spaces per nesting level. Values < 1 are
// ignored.
func Indent(n int) ParseOption {
	return func(o *parseOpts) {
		if n >= 1 {
			o.indent = n
		}
	}
}

// MaxDepth caps container nesting while parsing.
func MaxDepth(d int) ParseOption {
	return func(o *parseOpts) {
		o.maxDepth = d
	}
}

// MaxSize caps the input document size in bytes.
func MaxSize(n int) ParseOption {
	return func(o *parseOpts) {
		o.maxSize = n
	}
}

func newParseOpts(opts ...ParseOption) *parseOpts {
	o := &parseOpts{
		strict:   true,
		indent:   2,
		maxDepth: validate.DefaultMaxDepth,
		maxSize:  validate.DefaultMaxSize,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
