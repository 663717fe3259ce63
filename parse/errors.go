package parse

import (
	"errors"
	"fmt"
)

// ErrParse is the sentinel wrapped by all strict-mode decode failures.
var ErrParse = errors.New("parse error")

// ErrKind classifies a strict-mode decode failure.
type ErrKind int

const (
	SyntaxError ErrKind = iota
	ColumnCountMismatch
	DuplicateKey
	IndentationError
)

func (k ErrKind) String() string {
	switch k {
	case SyntaxError:
		return "syntax error"
	case ColumnCountMismatch:
		return "column count mismatch"
	case DuplicateKey:
		return "duplicate key"
	case IndentationError:
		return "indentation error"
	default:
		return "decode error"
	}
}

// DecodeError is a strict-mode failure carrying the 1-based source line
// number for diagnostics. It unwraps to ErrParse.
type DecodeError struct {
	Kind ErrKind
	Line int
	Msg  string
}

func (e *DecodeError) Unwrap() error {
	return ErrParse
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s at line %d: %s", e.Kind, e.Line, e.Msg)
}

func errAt(kind ErrKind, line int, format string, args ...any) *DecodeError {
	return &DecodeError{Kind: kind, Line: line, Msg: fmt.Sprintf(format, args...)}
}
