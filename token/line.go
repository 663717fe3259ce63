package token

import "strings"

// ScanLines splits d into non-blank Lines, recording leading-space counts
// and 1-based line numbers. Blank (whitespace-only) lines are dropped.
// A tab in the indentation of a non-blank line is a scan error.
func ScanLines(d []byte) ([]Line, error) {
	raw := strings.Split(string(d), "\n")
	res := make([]Line, 0, len(raw))
	for i, ln := range raw {
		ln = strings.TrimRight(ln, "\r")
		if strings.TrimSpace(ln) == "" {
			continue
		}
		spaces := 0
		for spaces < len(ln) && ln[spaces] == ' ' {
			spaces++
		}
		if spaces < len(ln) && ln[spaces] == '\t' {
			return nil, &ScanErr{Err: ErrBadIndent, Line: i + 1}
		}
		res = append(res, Line{
			Num:    i + 1,
			Spaces: spaces,
			Text:   ln[spaces:],
		})
	}
	return res, nil
}

// ScanLine converts a single raw line for the streaming decoder. The second
// return is false for blank lines, which carry no content.
func ScanLine(raw string, num int) (Line, bool, error) {
	raw = strings.TrimRight(raw, "\r\n")
	if strings.TrimSpace(raw) == "" {
		return Line{}, false, nil
	}
	spaces := 0
	for spaces < len(raw) && raw[spaces] == ' ' {
		spaces++
	}
	if spaces < len(raw) && raw[spaces] == '\t' {
		return Line{}, false, &ScanErr{Err: ErrBadIndent, Line: num}
	}
	return Line{Num: num, Spaces: spaces, Text: raw[spaces:]}, true, nil
}
