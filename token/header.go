package token

import (
	"fmt"
	"strconv"
	"strings"
)

// EntryKind classifies a structural line.
type EntryKind int

const (
	// EntryScalar is `key: value`.
	EntryScalar EntryKind = iota
	// EntryBlock is `key:` opening a nested object block.
	EntryBlock
	// EntryArray is `key[N]:` or `[N]:` opening an index-prefixed array.
	EntryArray
	// EntryTabular is `key[N]{col,...}:` or `[N]{col,...}:` with an
	// optional delimiter byte written before the colon.
	EntryTabular
)

// Entry is the parsed form of a structural line. HasKey is false for root
// array headers, and for array elements Key holds the decimal index.
type Entry struct {
	Kind   EntryKind
	Key    string
	HasKey bool
	N      int
	Cols   []string
	Delim  byte
	Value  string
}

// ParseEntry classifies text as a structural line. The second return is
// false when the line is not structural (a tabular row, a root scalar, or
// malformed input); the caller decides from context which of those it is.
func ParseEntry(text string) (*Entry, bool, error) {
	key, rest, hasKey, err := splitKey(text)
	if err != nil {
		return nil, false, err
	}
	if rest == "" {
		return nil, false, nil
	}
	switch rest[0] {
	case ':':
		if !hasKey {
			return nil, false, nil
		}
		rest = rest[1:]
		if rest == "" {
			return &Entry{Kind: EntryBlock, Key: key, HasKey: true}, true, nil
		}
		if rest[0] != ' ' {
			return nil, false, nil
		}
		return &Entry{
			Kind:   EntryScalar,
			Key:    key,
			HasKey: true,
			Value:  strings.TrimSpace(rest[1:]),
		}, true, nil
	case '[':
		ent, err := parseArrayHeader(rest)
		if err != nil {
			return nil, false, err
		}
		ent.Key = key
		ent.HasKey = hasKey
		return ent, true, nil
	default:
		return nil, false, nil
	}
}

// splitKey returns the key (unquoted), the remaining text beginning at the
// structural character, and whether a key was present at all.
func splitKey(text string) (string, string, bool, error) {
	if text == "" {
		return "", "", false, nil
	}
	if text[0] == '"' {
		n, key, err := QuotedPrefix(text)
		if err != nil {
			return "", "", false, nil // not an entry, caller classifies
		}
		return key, text[n:], true, nil
	}
	if text[0] == '[' {
		return "", text, false, nil
	}
	i := strings.IndexAny(text, ":[")
	if i <= 0 {
		return "", "", false, nil
	}
	return text[:i], text[i:], true, nil
}

// parseArrayHeader parses `[N]{col,...}D:` or `[N]:` where D is an
// optional non-comma delimiter byte.
func parseArrayHeader(rest string) (*Entry, error) {
	if len(rest) < 3 || rest[0] != '[' {
		return nil, ErrBadHeader
	}
	close_ := strings.IndexByte(rest, ']')
	if close_ < 0 {
		return nil, ErrBadHeader
	}
	n, err := strconv.Atoi(rest[1:close_])
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: bad element count %q", ErrBadHeader, rest[1:close_])
	}
	rest = rest[close_+1:]
	if rest == ":" {
		return &Entry{Kind: EntryArray, N: n}, nil
	}
	if rest == "" || rest[0] != '{' {
		return nil, ErrBadHeader
	}
	endCols := strings.IndexByte(rest, '}')
	if endCols < 0 {
		return nil, ErrBadHeader
	}
	cols, err := parseCols(rest[1:endCols])
	if err != nil {
		return nil, err
	}
	rest = rest[endCols+1:]
	delim := byte(',')
	if len(rest) == 2 {
		if !IsDelim(rest[0]) {
			return nil, ErrBadHeader
		}
		delim = rest[0]
		rest = rest[1:]
	}
	if rest != ":" {
		return nil, ErrBadHeader
	}
	return &Entry{Kind: EntryTabular, N: n, Cols: cols, Delim: delim}, nil
}

// parseCols splits the brace-enclosed column list. Columns are always
// comma-separated regardless of the row delimiter, and may be quoted.
func parseCols(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	cols := []string{}
	for len(s) > 0 {
		if s[0] == '"' {
			n, col, err := QuotedPrefix(s)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrBadHeader, err)
			}
			cols = append(cols, col)
			s = s[n:]
			if s == "" {
				return cols, nil
			}
			if s[0] != ',' {
				return nil, ErrBadHeader
			}
			s = s[1:]
			continue
		}
		i := strings.IndexByte(s, ',')
		if i < 0 {
			cols = append(cols, strings.TrimSpace(s))
			return cols, nil
		}
		cols = append(cols, strings.TrimSpace(s[:i]))
		s = s[i+1:]
	}
	// trailing comma means an empty final column name
	return nil, ErrBadHeader
}
