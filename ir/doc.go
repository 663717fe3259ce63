// Package ir provides the value model for TOON documents.
//
// # Overview
//
// Every TOON document, whether parsed from text or built programmatically,
// is represented as a tree of ir.Node values. The Node is a recursive
// tagged union: the Type field selects the active payload.
//
// # Node Types
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value (Int64 or Float64, never both)
//   - StringType: string value
//   - ArrayType: ordered list of nodes
//   - ObjectType: key-value pairs (fields and values)
//
// # Structure Constraints
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i],
// so there are always the same number of fields as values. Keys are unique;
// constructing an object with a duplicate key fails with ErrDuplicateKey.
//
// Number values are placed under Int64 if integral at construction, and
// Float64 otherwise. The distinction survives encoding: FromInt(1) and
// FromFloat(1) are different values and encode differently.
//
// # Creating Nodes
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj, err := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("alice")},
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//
// # Interoperability
//
// FromJSON/ToJSON bridge to JSON preserving key order and the int/float
// distinction. FromYAML accepts YAML input for the CLI.
//
// # Thread Safety
//
// Node trees are immutable by convention once constructed but are not
// guarded; clone before sharing across goroutines that mutate.
package ir
