package token

import (
	"errors"
	"fmt"
)

// Line is one non-blank input line with its indentation stripped.
// Num is 1-based and retained for error reporting only.
type Line struct {
	Num    int
	Spaces int
	Text   string
}

// Delims are the permitted row delimiters, in auto-selection order.
var Delims = []byte{',', '|', '\t'}

// IsDelim reports whether c is a permitted row delimiter.
func IsDelim(c byte) bool {
	switch c {
	case ',', '|', '\t':
		return true
	default:
		return false
	}
}

var (
	ErrUnterminated = errors.New("unterminated quoted string")
	ErrBadEscape    = errors.New("bad escape sequence")
	ErrBadUnicode   = errors.New("bad unicode escape")
	ErrBadHeader    = errors.New("malformed array header")
	ErrBadIndent    = errors.New("tab in indentation")
)

// ScanErr wraps a scanning error with its 1-based source line number.
type ScanErr struct {
	Err  error
	Line int
}

func (e *ScanErr) Unwrap() error {
	return e.Err
}

func (e *ScanErr) Error() string {
	return fmt.Sprintf("%s at line %d", e.Err.Error(), e.Line)
}
