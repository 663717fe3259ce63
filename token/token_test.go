package token

import (
	"errors"
	"testing"
)

func TestScanLines(t *testing.T) {
	lines, err := ScanLines([]byte("a: 1\n\n  b: 2\r\n\n    c\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	want := []Line{
		{Num: 1, Spaces: 0, Text: "a: 1"},
		{Num: 3, Spaces: 2, Text: "b: 2"},
		{Num: 5, Spaces: 4, Text: "c"},
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d: got %+v, want %+v", i, lines[i], w)
		}
	}
}

func TestScanLinesTabIndent(t *testing.T) {
	_, err := ScanLines([]byte("a: 1\n\tb: 2\n"))
	if !errors.Is(err, ErrBadIndent) {
		t.Fatalf("got %v, want ErrBadIndent", err)
	}
	se := &ScanErr{}
	if !errors.As(err, &se) || se.Line != 2 {
		t.Fatalf("got line %d, want 2", se.Line)
	}
}

type needsQuoteTest struct {
	in    string
	delim byte
	want  bool
}

func TestNeedsQuote(t *testing.T) {
	tests := []needsQuoteTest{
		{"hello", ',', false},
		{"hello world", ',', false},
		{"", ',', true},
		{" padded", ',', true},
		{"padded ", ',', true},
		{"true", ',', true},
		{"false", ',', true},
		{"null", ',', true},
		{"[]", ',', true},
		{"{}", ',', true},
		{"42", ',', true},
		{"-1.5e3", ',', true},
		{"4x", ',', false},
		{"a,b", ',', true},
		{"a,b", '|', false},
		{"a|b", '|', true},
		{"a:b", ',', true},
		{`say "hi"`, ',', true},
		{"[x", ',', true},
		{"{x", ',', true},
		{"line\nbreak", ',', true},
	}
	for _, tt := range tests {
		if got := NeedsQuote(tt.in, tt.delim); got != tt.want {
			t.Errorf("NeedsQuote(%q, %q) = %v, want %v", tt.in, tt.delim, got, tt.want)
		}
	}
}

func TestQuoteUnquote(t *testing.T) {
	for _, in := range []string{
		"",
		"plain",
		"say \"hi\"",
		"back\\slash",
		"tab\there",
		"line\nbreak",
		"\r\b\f",
		"\x01control",
		"unicode éß∂",
	} {
		q := Quote(in)
		out, err := Unquote(q)
		if err != nil {
			t.Fatalf("Unquote(%q): %v", q, err)
		}
		if out != in {
			t.Errorf("round trip %q -> %q -> %q", in, q, out)
		}
	}
}

func TestUnquoteErrors(t *testing.T) {
	for _, in := range []string{`"abc`, `"abc\`, `"\x"`, `"\u12"`, `"\uzzzz"`, `"a"b`} {
		if _, err := Unquote(in); err == nil {
			t.Errorf("Unquote(%q): expected error", in)
		}
	}
}

func TestLooksLikeNumber(t *testing.T) {
	yes := []string{"0", "7", "-7", "3.14", "-0.5", "1e14", "1E14", "2e-3", "2e+3", "10.25e2"}
	no := []string{"", "-", ".", "1.", ".5x", "e3", "1e", "1e+", "0x10", "7up", "- 1", "1 2"}
	for _, s := range yes {
		if !LooksLikeNumber(s) {
			t.Errorf("LooksLikeNumber(%q) = false, want true", s)
		}
	}
	for _, s := range no {
		if LooksLikeNumber(s) {
			t.Errorf("LooksLikeNumber(%q) = true, want false", s)
		}
	}
}

type entryTest struct {
	in   string
	want Entry
}

func TestParseEntry(t *testing.T) {
	tests := []entryTest{
		{"a: 1", Entry{Kind: EntryScalar, Key: "a", HasKey: true, Value: "1"}},
		{"a:", Entry{Kind: EntryBlock, Key: "a", HasKey: true}},
		{`"a b": x`, Entry{Kind: EntryScalar, Key: "a b", HasKey: true, Value: "x"}},
		{"a[3]:", Entry{Kind: EntryArray, Key: "a", HasKey: true, N: 3}},
		{"[3]:", Entry{Kind: EntryArray, N: 3}},
		{
			"items[2]{id,name}:",
			Entry{Kind: EntryTabular, Key: "items", HasKey: true, N: 2,
				Cols: []string{"id", "name"}, Delim: ','},
		},
		{
			"items[2]{id,name}|:",
			Entry{Kind: EntryTabular, Key: "items", HasKey: true, N: 2,
				Cols: []string{"id", "name"}, Delim: '|'},
		},
		{
			"[1]{\"a,b\",c}:",
			Entry{Kind: EntryTabular, N: 1, Cols: []string{"a,b", "c"}, Delim: ','},
		},
	}
	for _, tt := range tests {
		e, ok, err := ParseEntry(tt.in)
		if err != nil || !ok {
			t.Fatalf("ParseEntry(%q): ok=%v err=%v", tt.in, ok, err)
		}
		if e.Kind != tt.want.Kind || e.Key != tt.want.Key || e.HasKey != tt.want.HasKey ||
			e.N != tt.want.N || e.Value != tt.want.Value {
			t.Errorf("ParseEntry(%q) = %+v, want %+v", tt.in, *e, tt.want)
		}
		if len(e.Cols) != len(tt.want.Cols) {
			t.Errorf("ParseEntry(%q) cols = %v, want %v", tt.in, e.Cols, tt.want.Cols)
			continue
		}
		for i := range e.Cols {
			if e.Cols[i] != tt.want.Cols[i] {
				t.Errorf("ParseEntry(%q) cols = %v, want %v", tt.in, e.Cols, tt.want.Cols)
			}
		}
		if tt.want.Cols != nil && e.Delim != tt.want.Delim {
			t.Errorf("ParseEntry(%q) delim = %q, want %q", tt.in, e.Delim, tt.want.Delim)
		}
	}
}

func TestParseEntryNonStructural(t *testing.T) {
	for _, in := range []string{"1,A", "hello", "42", `"quoted"`, ": x", "a:b"} {
		_, ok, err := ParseEntry(in)
		if err != nil {
			t.Fatalf("ParseEntry(%q): %v", in, err)
		}
		if ok {
			t.Errorf("ParseEntry(%q): expected non-structural", in)
		}
	}
}

func TestParseEntryBadHeader(t *testing.T) {
	for _, in := range []string{"a[x]:", "a[-1]:", "a[2:", "a[2]{x:", "a[2]{a,}:"} {
		_, ok, err := ParseEntry(in)
		if ok || err == nil {
			t.Errorf("ParseEntry(%q): ok=%v err=%v, expected header error", in, ok, err)
		}
	}
}

type splitRowTest struct {
	in    string
	delim byte
	want  []string
}

func TestSplitRow(t *testing.T) {
	tests := []splitRowTest{
		{"1,A", ',', []string{"1", "A"}},
		{"1, A ,b", ',', []string{"1", "A", "b"}},
		{`"a,b",c`, ',', []string{`"a,b"`, "c"}},
		{`"say \"hi\"",c`, ',', []string{`"say \"hi\""`, "c"}},
		{"a|b", '|', []string{"a", "b"}},
		{"a\tb", '\t', []string{"a", "b"}},
		{"solo", ',', []string{"solo"}},
		{"a,,c", ',', []string{"a", "", "c"}},
	}
	for _, tt := range tests {
		got := SplitRow(tt.in, tt.delim)
		if len(got) != len(tt.want) {
			t.Errorf("SplitRow(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("SplitRow(%q) = %v, want %v", tt.in, got, tt.want)
			}
		}
	}
}
