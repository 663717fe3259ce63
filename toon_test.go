package toon

import (
	"strings"
	"testing"

	"github.com/toonkit/go-toon/ir"
	"github.com/toonkit/go-toon/parse"
)

const usersJSON = `{"name":"demo","users":[{"id":1,"name":"Ada"},{"id":2,"name":"Bob"}]}`

func TestJSONToToonAndBack(t *testing.T) {
	node, err := FromJSON([]byte(usersJSON))
	if err != nil {
		t.Fatal(err)
	}
	text, err := EncodeString(node)
	if err != nil {
		t.Fatal(err)
	}
	want := "name: demo\nusers[2]{id,name}:\n  1,Ada\n  2,Bob\n"
	if text != want {
		t.Fatalf("encoded:\n%q\nwant:\n%q", text, want)
	}
	back, err := DecodeString(text)
	if err != nil {
		t.Fatal(err)
	}
	if ir.Compare(node, back) != 0 {
		t.Error("decode(encode(x)) != x")
	}
	jd, err := ToJSON(back)
	if err != nil {
		t.Fatal(err)
	}
	if string(jd) != usersJSON {
		t.Errorf("json round trip = %s", jd)
	}
}

func TestCanonicalIdempotence(t *testing.T) {
	node, err := FromJSON([]byte(usersJSON))
	if err != nil {
		t.Fatal(err)
	}
	once, err := EncodeString(node)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := DecodeString(once)
	if err != nil {
		t.Fatal(err)
	}
	twice, err := EncodeString(decoded)
	if err != nil {
		t.Fatal(err)
	}
	if once != twice {
		t.Errorf("canonical text not stable:\n%q\n%q", once, twice)
	}
}

func TestStreamingAgreesWithWhole(t *testing.T) {
	node, err := FromJSON([]byte(usersJSON))
	if err != nil {
		t.Fatal(err)
	}
	enc, err := EncodeStream(node)
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	for {
		ln, lerr := enc.Next()
		if lerr != nil {
			break
		}
		sb.WriteString(ln + "\n")
	}
	whole, err := EncodeString(node)
	if err != nil {
		t.Fatal(err)
	}
	if sb.String() != whole {
		t.Error("streaming and whole encodes disagree")
	}
	back, err := DecodeStream(strings.NewReader(whole)).Decode()
	if err != nil {
		t.Fatal(err)
	}
	if ir.Compare(node, back) != 0 {
		t.Error("streaming decode changed the value")
	}
}

func TestDecodePermissiveOption(t *testing.T) {
	_, err := DecodeString("a: 1\na: 2\n")
	if err == nil {
		t.Fatal("strict decode must reject duplicate keys")
	}
	node, err := DecodeString("a: 1\na: 2\n", parse.Permissive())
	if err != nil {
		t.Fatal(err)
	}
	if v := ir.Get(node, "a"); v == nil || *v.Int64 != 1 {
		t.Errorf("a = %+v, want 1", v)
	}
}

func TestDiff(t *testing.T) {
	a, err := FromJSON([]byte(`{"a":1,"b":2}`))
	if err != nil {
		t.Fatal(err)
	}
	b, err := FromJSON([]byte(`{"a":1,"b":3}`))
	if err != nil {
		t.Fatal(err)
	}
	same, err := Diff(a, a)
	if err != nil {
		t.Fatal(err)
	}
	if same != "" {
		t.Errorf("diff of equal documents = %q, want empty", same)
	}
	d, err := Diff(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(d, "- b: 2") || !strings.Contains(d, "+ b: 3") {
		t.Errorf("diff = %q", d)
	}
	if !strings.Contains(d, "  a: 1") {
		t.Errorf("diff should keep common lines: %q", d)
	}
}
