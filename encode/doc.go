// Package encode renders ir nodes as TOON text.
//
// # Usage
//
//	obj, _ := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("alice")},
//	    {Key: "age", Val: ir.FromInt(30)},
//	})
//	err := encode.Encode(obj, os.Stdout)
//
//	// with options
//	err = encode.Encode(obj, w, encode.Indent(4), encode.SortKeys(false))
//
// Arrays of objects sharing one scalar-valued key set collapse into
// tabular form: a `key[N]{col,...}:` header followed by delimiter-joined
// rows. Other arrays encode as `key[N]:` with index-prefixed elements.
//
// Encoding is canonical: the same value and options always produce the
// same text.
//
// # Related Packages
//
//   - github.com/toonkit/go-toon/ir - value model
//   - github.com/toonkit/go-toon/parse - parse text back to nodes
//   - github.com/toonkit/go-toon/stream - line-at-a-time encoding
package encode
