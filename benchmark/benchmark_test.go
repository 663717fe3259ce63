package benchmark

import (
	"strings"
	"testing"

	"github.com/toonkit/go-toon/ir"
)

func TestEstimateTokens(t *testing.T) {
	if got := EstimateTokens(""); got != 0 {
		t.Errorf("empty = %d, want 0", got)
	}
	if got := EstimateTokens("word"); got != 1 {
		t.Errorf("word = %d, want 1", got)
	}
	// punctuation costs one token per byte
	if got := EstimateTokens("{},:"); got != 4 {
		t.Errorf("punctuation = %d, want 4", got)
	}
	long := EstimateTokens(strings.Repeat("a", 40))
	if long != 10 {
		t.Errorf("40 letters = %d, want 10", long)
	}
}

func TestCompareTabularSavings(t *testing.T) {
	rows := make([]*ir.Node, 50)
	for i := range rows {
		obj, err := ir.FromKeyVals([]ir.KeyVal{
			{Key: "id", Val: ir.FromInt(int64(i))},
			{Key: "name", Val: ir.FromString("user")},
			{Key: "active", Val: ir.FromBool(i%2 == 0)},
		})
		if err != nil {
			t.Fatal(err)
		}
		rows[i] = obj
	}
	doc, err := ir.FromKeyVals([]ir.KeyVal{{Key: "users", Val: ir.FromSlice(rows)}})
	if err != nil {
		t.Fatal(err)
	}
	cmp, err := Compare(doc)
	if err != nil {
		t.Fatal(err)
	}
	if cmp.TOON.Chars >= cmp.JSON.Chars {
		t.Errorf("toon %d chars, json %d: tabular data should be smaller",
			cmp.TOON.Chars, cmp.JSON.Chars)
	}
	if cmp.TokenReductionPct() <= 0 {
		t.Errorf("token reduction = %.1f%%, want positive", cmp.TokenReductionPct())
	}
	out := cmp.String()
	if !strings.Contains(out, "json") || !strings.Contains(out, "toon") {
		t.Errorf("report missing format rows: %q", out)
	}
}
