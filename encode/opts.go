package encode

import "github.com/toonkit/go-toon/validate"

type EncodeOption func(*EncState)

// Indent sets the spaces per nesting level (default 2).
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// SortKeys selects canonical alphabetical key order (default) or, when
// false, insertion order.
func SortKeys(v bool) EncodeOption {
	return func(es *EncState) { es.sortKeys = v }
}

// Delim sets the default tabular row delimiter (default ',').
func Delim(c byte) EncodeOption {
	return func(es *EncState) { es.delim = c }
}

// FixedDelim disables delimiter auto-selection: colliding cells are quoted
// instead of retargeting to '|' or tab.
func FixedDelim() EncodeOption {
	return func(es *EncState) { es.fixedDelim = true }
}

// MaxDepth sets the nesting ceiling checked before any output is written.
func MaxDepth(n int) EncodeOption {
	return func(es *EncState) { es.maxDepth = n }
}

// MaxSize sets the output byte-size ceiling checked before any output is
// written.
func MaxSize(n int) EncodeOption {
	return func(es *EncState) { es.maxSize = n }
}

// EncodeColors enables colorized output for terminal viewing. Colors are a
// display concern only and never part of the canonical text.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{
		indent:   2,
		sortKeys: true,
		delim:    ',',
		maxDepth: validate.DefaultMaxDepth,
		maxSize:  validate.DefaultMaxSize,
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}
