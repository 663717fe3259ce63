// Package toon is a codec between the JSON value universe and the TOON
// line-oriented text form. TOON keeps the information content of JSON in
// fewer characters: nesting by indentation instead of braces, and uniform
// arrays of flat objects collapsed into delimiter-joined tabular rows.
//
// The subpackages carry the machinery (ir for the value model, encode,
// parse, stream, validate); this package is the convenience surface over
// them.
package toon

import (
	"io"
	"strings"

	"github.com/toonkit/go-toon/encode"
	"github.com/toonkit/go-toon/ir"
	"github.com/toonkit/go-toon/parse"
	"github.com/toonkit/go-toon/stream"
)

// Encode writes node to w in canonical TOON form.
func Encode(node *ir.Node, w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(node, w, opts...)
}

// EncodeString encodes node to a string.
func EncodeString(node *ir.Node, opts ...encode.EncodeOption) (string, error) {
	var sb strings.Builder
	if err := encode.Encode(node, &sb, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Decode parses TOON text into its tree form, strictly by default.
func Decode(d []byte, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.Parse(d, opts...)
}

// DecodeString is Decode on a string.
func DecodeString(s string, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.ParseString(s, opts...)
}

// EncodeStream returns a pull-based encoder yielding one line per Next
// call, for emitting large documents without buffering them.
func EncodeStream(node *ir.Node, opts ...stream.Option) (*stream.Encoder, error) {
	return stream.NewEncoder(node, opts...)
}

// DecodeStream returns a decoder that pulls lines from r incrementally.
func DecodeStream(r io.Reader, opts ...stream.Option) *stream.Decoder {
	return stream.NewDecoder(stream.Reader(r), opts...)
}

// FromJSON converts JSON text into the tree form, preserving key order
// and the int/float distinction.
func FromJSON(d []byte) (*ir.Node, error) {
	return ir.FromJSON(d)
}

// ToJSON converts a tree back to JSON text.
func ToJSON(node *ir.Node) ([]byte, error) {
	return ir.ToJSON(node)
}
