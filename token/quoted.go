package token

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// NeedsQuote reports whether a scalar string must be quoted when the active
// row delimiter is delim. Unquoted strings must not be mistakable for other
// scalars, structure, or a delimiter boundary.
func NeedsQuote(v string, delim byte) bool {
	if v == "" {
		return true
	}
	if v != strings.TrimSpace(v) {
		return true
	}
	switch v {
	case "true", "false", "null", "[]", "{}":
		return true
	}
	if LooksLikeNumber(v) {
		return true
	}
	switch v[0] {
	case '[', '{', '"':
		return true
	}
	for _, r := range v {
		if r == rune(delim) || r == ':' || r == '"' {
			return true
		}
		if unicode.IsControl(r) {
			return true
		}
	}
	return false
}

// NeedsQuoteKey is NeedsQuote for object keys. Keys additionally collide
// with the array header syntax, so brackets and braces force quoting, and
// numeric keys are quoted to stay distinct from array index markers.
func NeedsQuoteKey(k string) bool {
	if k == "" {
		return true
	}
	if k != strings.TrimSpace(k) {
		return true
	}
	if LooksLikeNumber(k) {
		return true
	}
	if strings.ContainsAny(k, ":\"[]{},|") {
		return true
	}
	for _, r := range k {
		if unicode.IsControl(r) {
			return true
		}
	}
	return false
}

// Quote wraps v in double quotes with backslash escapes. Control characters
// outside the common set escape as \uXXXX so the result stays on one line.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				d = fmt.Appendf(d, "\\u%04x", r)
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// Unquote reverses Quote. The input must be exactly one quoted string.
func Unquote(v string) (string, error) {
	n, s, err := unquotePrefix(v)
	if err != nil {
		return "", err
	}
	if n != len(v) {
		return "", ErrUnterminated
	}
	return s, nil
}

// QuotedPrefix returns the length of the quoted token starting at d[0],
// which must be '"', along with its unquoted value.
func QuotedPrefix(d string) (int, string, error) {
	return unquotePrefix(d)
}

func unquotePrefix(d string) (int, string, error) {
	if len(d) < 2 || d[0] != '"' {
		return 0, "", ErrUnterminated
	}
	b := &strings.Builder{}
	i := 1
	for i < len(d) {
		r, sz := utf8.DecodeRuneInString(d[i:])
		i += sz
		switch r {
		case '"':
			return i, b.String(), nil
		case '\\':
			if i >= len(d) {
				return 0, "", ErrUnterminated
			}
			c := d[i]
			i++
			switch c {
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			case '/':
				b.WriteByte('/')
			case 'b':
				b.WriteByte('\b')
			case 'f':
				b.WriteByte('\f')
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case 'u':
				if i+4 > len(d) {
					return 0, "", ErrBadUnicode
				}
				var cp rune
				for _, h := range d[i : i+4] {
					v, ok := hexVal(byte(h))
					if !ok {
						return 0, "", ErrBadUnicode
					}
					cp = cp<<4 | rune(v)
				}
				b.WriteRune(cp)
				i += 4
			default:
				return 0, "", fmt.Errorf("%w: \\%c", ErrBadEscape, c)
			}
		default:
			b.WriteRune(r)
		}
	}
	return 0, "", ErrUnterminated
}

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
