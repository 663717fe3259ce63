// Package benchmark estimates the token cost of a document in JSON form
// versus TOON form. Token counts use a model-free heuristic, close enough
// to rank formats without pulling in a tokenizer.
package benchmark

import (
	"fmt"
	"strings"

	"github.com/toonkit/go-toon/encode"
	"github.com/toonkit/go-toon/ir"
)

// Stats describes one encoded rendition of a document.
type Stats struct {
	Format string
	Tokens int
	Chars  int
}

// TokensPerChar is tokens divided by characters; lower is denser.
func (s Stats) TokensPerChar() float64 {
	if s.Chars == 0 {
		return 0
	}
	return float64(s.Tokens) / float64(s.Chars)
}

// Comparison holds the JSON and TOON stats for one document plus the
// relative savings of TOON over JSON.
type Comparison struct {
	JSON Stats
	TOON Stats
}

func (c Comparison) TokenReductionPct() float64 {
	return reductionPct(c.JSON.Tokens, c.TOON.Tokens)
}

func (c Comparison) CharReductionPct() float64 {
	return reductionPct(c.JSON.Chars, c.TOON.Chars)
}

func reductionPct(from, to int) float64 {
	if from == 0 {
		return 0
	}
	return float64(from-to) / float64(from) * 100
}

func (c Comparison) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "format  tokens  chars  tokens/char\n")
	for _, s := range []Stats{c.JSON, c.TOON} {
		fmt.Fprintf(&sb, "%-6s  %6d  %5d  %.4f\n", s.Format, s.Tokens, s.Chars, s.TokensPerChar())
	}
	fmt.Fprintf(&sb, "token reduction: %.1f%%\n", c.TokenReductionPct())
	fmt.Fprintf(&sb, "char reduction:  %.1f%%\n", c.CharReductionPct())
	return sb.String()
}

// Compare encodes node both ways and estimates the token cost of each.
func Compare(node *ir.Node, opts ...encode.EncodeOption) (*Comparison, error) {
	jd, err := ir.ToJSON(node)
	if err != nil {
		return nil, err
	}
	var tb strings.Builder
	if err := encode.Encode(node, &tb, opts...); err != nil {
		return nil, err
	}
	td := tb.String()
	return &Comparison{
		JSON: Stats{Format: "json", Tokens: EstimateTokens(string(jd)), Chars: len(jd)},
		TOON: Stats{Format: "toon", Tokens: EstimateTokens(td), Chars: len(td)},
	}, nil
}

// EstimateTokens approximates a subword tokenizer: each run of letters,
// digits or spaces costs about one token per four characters, and every
// punctuation or structural byte costs a token of its own.
func EstimateTokens(text string) int {
	tokens := 0
	run := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if isWordish(c) {
			run++
			continue
		}
		tokens += runTokens(run)
		run = 0
		tokens++
	}
	return tokens + runTokens(run)
}

func runTokens(n int) int {
	return (n + 3) / 4
}

func isWordish(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == ' ', c == '_':
		return true
	default:
		return false
	}
}
