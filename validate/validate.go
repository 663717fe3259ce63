// Package validate enforces the codec's depth and size limits. Checks run
// before any text is emitted or consumed, so a limit violation never leaves
// partial output behind.
package validate

import (
	"fmt"

	"github.com/toonkit/go-toon/ir"
)

const (
	// DefaultMaxDepth is the nesting ceiling applied when none is set.
	DefaultMaxDepth = 10
	// DefaultMaxSize is the byte-size ceiling applied when none is set.
	DefaultMaxSize = 50 << 20
)

// LimitKind identifies which configured limit was violated.
type LimitKind int

const (
	KindDepth LimitKind = iota
	KindSize
)

func (k LimitKind) String() string {
	switch k {
	case KindDepth:
		return "depth exceeded"
	case KindSize:
		return "size exceeded"
	default:
		return "limit exceeded"
	}
}

// LimitError reports a violated limit together with the observed and
// permitted magnitudes.
type LimitError struct {
	Kind LimitKind
	Got  int
	Max  int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("%s: %d > %d", e.Kind, e.Got, e.Max)
}

// Depth fails with a KindDepth error when any path from the root of node
// nests more than max containers.
func Depth(node *ir.Node, max int) error {
	got := containerDepth(node)
	if got > max {
		return &LimitError{Kind: KindDepth, Got: got, Max: max}
	}
	return nil
}

// StackDepth is the incremental form of Depth used by the decoder: it
// checks a live container-stack depth against max.
func StackDepth(depth, max int) error {
	if depth > max {
		return &LimitError{Kind: KindDepth, Got: depth, Max: max}
	}
	return nil
}

// Size fails with a KindSize error when n bytes exceed max.
func Size(n, max int) error {
	if n > max {
		return &LimitError{Kind: KindSize, Got: n, Max: max}
	}
	return nil
}

// Estimate returns a serialized-length estimate for node, used to apply the
// size limit before encoding emits anything. The estimate counts key and
// scalar text plus per-entry overhead; it deliberately ignores indentation,
// so it lower-bounds the true output size.
func Estimate(node *ir.Node) int {
	switch node.Type {
	case ir.NullType:
		return 4
	case ir.BoolType:
		return 5
	case ir.NumberType:
		return 20
	case ir.StringType:
		return len(node.String) + 2
	case ir.ArrayType:
		n := 4
		for _, v := range node.Values {
			n += Estimate(v) + 4
		}
		return n
	case ir.ObjectType:
		n := 2
		for i, f := range node.Fields {
			n += len(f.String) + 3 + Estimate(node.Values[i])
		}
		return n
	default:
		return 0
	}
}

func containerDepth(node *ir.Node) int {
	switch node.Type {
	case ir.ArrayType, ir.ObjectType:
		max_ := 0
		for _, v := range node.Values {
			if d := containerDepth(v); d > max_ {
				max_ = d
			}
		}
		return max_ + 1
	default:
		return 0
	}
}
