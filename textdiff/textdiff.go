// Package textdiff renders line diffs of canonical document text.
package textdiff

import (
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Printer renders one diff hunk line. The plain printer prefixes lines
// with "- ", "+ " or "  "; the color printer additionally paints removals
// red and insertions green.
type Printer func(op diffmatchpatch.Operation, line string) string

func PlainPrinter(op diffmatchpatch.Operation, line string) string {
	switch op {
	case diffmatchpatch.DiffDelete:
		return "- " + line
	case diffmatchpatch.DiffInsert:
		return "+ " + line
	default:
		return "  " + line
	}
}

func ColorPrinter(op diffmatchpatch.Operation, line string) string {
	switch op {
	case diffmatchpatch.DiffDelete:
		return color.New(color.FgRed).Sprint("- " + line)
	case diffmatchpatch.DiffInsert:
		return color.New(color.FgGreen).Sprint("+ " + line)
	default:
		return "  " + line
	}
}

// Lines diffs a and b line-wise and renders every line through p. The
// result is empty exactly when a == b.
func Lines(a, b string, p Printer) string {
	if a == b {
		return ""
	}
	if p == nil {
		p = PlainPrinter
	}
	dmp := diffmatchpatch.New()
	ca, cb, arr := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), arr)
	var sb strings.Builder
	for _, d := range diffs {
		for _, ln := range splitLines(d.Text) {
			sb.WriteString(p(d.Type, ln))
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
