package textdiff

import (
	"strings"
	"testing"
)

func TestLinesEqual(t *testing.T) {
	if d := Lines("a: 1\nb: 2\n", "a: 1\nb: 2\n", nil); d != "" {
		t.Errorf("diff of equal texts = %q, want empty", d)
	}
}

func TestLinesChanges(t *testing.T) {
	a := "a: 1\nb: 2\nc: 3\n"
	b := "a: 1\nb: 9\nc: 3\n"
	d := Lines(a, b, PlainPrinter)
	want := []string{"  a: 1", "- b: 2", "+ b: 9", "  c: 3"}
	got := strings.Split(strings.TrimSuffix(d, "\n"), "\n")
	if len(got) != len(want) {
		t.Fatalf("diff lines = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLinesInsertDelete(t *testing.T) {
	d := Lines("keep\n", "keep\nnew\n", PlainPrinter)
	if !strings.Contains(d, "+ new") {
		t.Errorf("diff = %q, missing insertion", d)
	}
	d = Lines("keep\ngone\n", "keep\n", PlainPrinter)
	if !strings.Contains(d, "- gone") {
		t.Errorf("diff = %q, missing deletion", d)
	}
}
