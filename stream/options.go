package stream

import "github.com/toonkit/go-toon/validate"

type options struct {
	indent     int
	sortKeys   bool
	delim      byte
	fixedDelim bool
	strict     bool
	maxDepth   int
	maxSize    int
}

// Option configures an Encoder or Decoder. Options that do not apply to
// the configured direction are ignored.
type Option func(*options)

// Indent sets the spaces per nesting level (default 2).
func Indent(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.indent = n
		}
	}
}

// SortKeys selects canonical alphabetical key order for the encoder
// (default) or, when false, insertion order.
func SortKeys(v bool) Option {
	return func(o *options) { o.sortKeys = v }
}

// Delim sets the encoder's default tabular row delimiter (default ',').
func Delim(c byte) Option {
	return func(o *options) { o.delim = c }
}

// FixedDelim disables the encoder's delimiter auto-selection.
func FixedDelim() Option {
	return func(o *options) { o.fixedDelim = true }
}

// Strict makes the decoder reject malformed input. This is the default.
func Strict() Option {
	return func(o *options) { o.strict = true }
}

// Permissive makes the decoder recover from malformed input.
func Permissive() Option {
	return func(o *options) { o.strict = false }
}

// MaxDepth caps container nesting in either direction.
func MaxDepth(n int) Option {
	return func(o *options) { o.maxDepth = n }
}

// MaxSize caps document size in bytes. The encoder checks an estimate up
// front; the decoder checks cumulatively as lines arrive.
func MaxSize(n int) Option {
	return func(o *options) { o.maxSize = n }
}

func newOptions(opts []Option) *options {
	o := &options{
		indent:   2,
		sortKeys: true,
		delim:    ',',
		strict:   true,
		maxDepth: validate.DefaultMaxDepth,
		maxSize:  validate.DefaultMaxSize,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
