package toon

import (
	"github.com/toonkit/go-toon/encode"
	"github.com/toonkit/go-toon/ir"
	"github.com/toonkit/go-toon/textdiff"
)

// Diff renders a line diff of the canonical encodings of a and b. The
// result is empty exactly when the two documents are equal, since equal
// documents share one canonical text.
func Diff(a, b *ir.Node, opts ...encode.EncodeOption) (string, error) {
	at, err := EncodeString(a, opts...)
	if err != nil {
		return "", err
	}
	bt, err := EncodeString(b, opts...)
	if err != nil {
		return "", err
	}
	return textdiff.Lines(at, bt, textdiff.PlainPrinter), nil
}

// DiffColor is Diff with insertions and removals colorized for terminal
// display.
func DiffColor(a, b *ir.Node, opts ...encode.EncodeOption) (string, error) {
	at, err := EncodeString(a, opts...)
	if err != nil {
		return "", err
	}
	bt, err := EncodeString(b, opts...)
	if err != nil {
		return "", err
	}
	return textdiff.Lines(at, bt, textdiff.ColorPrinter), nil
}
