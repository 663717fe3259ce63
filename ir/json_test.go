package ir

import (
	"testing"
)

type jsonRoundTest struct {
	in  string
	out string // expected re-rendering; empty means same as in
}

func TestJSONRoundTrip(t *testing.T) {
	tests := []jsonRoundTest{
		{in: `null`},
		{in: `true`},
		{in: `false`},
		{in: `42`},
		{in: `-7`},
		{in: `1.5`},
		{in: `1.0`},
		{in: `"hello"`},
		{in: `""`},
		{in: `[]`},
		{in: `{}`},
		{in: `[1,2,3]`},
		{in: `{"b":1,"a":2}`}, // key order preserved, not sorted
		{in: `{"users":[{"id":1,"name":"Ada"},{"id":2,"name":"Bob"}]}`},
		{in: `"say \"hi\""`},
		{in: `1e2`, out: `100.0`},
		{in: `2.0e0`, out: `2.0`},
	}
	for _, tt := range tests {
		node, err := FromJSON([]byte(tt.in))
		if err != nil {
			t.Fatalf("FromJSON(%q): %v", tt.in, err)
		}
		d, err := ToJSON(node)
		if err != nil {
			t.Fatalf("ToJSON(%q): %v", tt.in, err)
		}
		want := tt.out
		if want == "" {
			want = tt.in
		}
		if string(d) != want {
			t.Errorf("round trip %q = %q, want %q", tt.in, d, want)
		}
	}
}

func TestJSONNumberTyping(t *testing.T) {
	node, err := FromJSON([]byte(`[1,1.0]`))
	if err != nil {
		t.Fatal(err)
	}
	if node.Values[0].Int64 == nil {
		t.Error("1 should decode as integer")
	}
	if node.Values[1].Float64 == nil {
		t.Error("1.0 should decode as float")
	}
	if Compare(node.Values[0], node.Values[1]) == 0 {
		t.Error("1 and 1.0 must stay distinct through JSON")
	}
}

func TestJSONDuplicateKey(t *testing.T) {
	if _, err := FromJSON([]byte(`{"a":1,"a":2}`)); err == nil {
		t.Fatal("duplicate keys must be rejected")
	}
}

func TestJSONTrailingData(t *testing.T) {
	if _, err := FromJSON([]byte(`{"a":1} extra`)); err == nil {
		t.Fatal("trailing data must be rejected")
	}
}

func TestFromYAMLOrderedKeys(t *testing.T) {
	node, err := FromYAML([]byte("b: 1\na: two\nlist:\n  - 1\n  - x\n"))
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ObjectType || len(node.Fields) != 3 {
		t.Fatalf("got %v with %d fields", node.Type, len(node.Fields))
	}
	if node.Fields[0].String != "b" || node.Fields[1].String != "a" {
		t.Errorf("document key order not preserved: %q, %q",
			node.Fields[0].String, node.Fields[1].String)
	}
	list := Get(node, "list")
	if list == nil || list.Type != ArrayType || len(list.Values) != 2 {
		t.Fatalf("list = %+v", list)
	}
}
