package token

import "strings"

// SplitRow splits a tabular data row on delim, respecting quoted fields.
// Field text keeps its surrounding quotes for the scalar parser; unquoted
// fields are space-trimmed.
func SplitRow(text string, delim byte) []string {
	fields := []string{}
	cur := strings.Builder{}
	inQuote := false
	esc := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case esc:
			cur.WriteByte(c)
			esc = false
		case c == '\\' && inQuote:
			cur.WriteByte(c)
			esc = true
		case c == '"':
			cur.WriteByte(c)
			inQuote = !inQuote
		case c == delim && !inQuote:
			fields = append(fields, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	fields = append(fields, strings.TrimSpace(cur.String()))
	return fields
}
