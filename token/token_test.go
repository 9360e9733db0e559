package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── round-trip invariant ──────────────────────────────────────────────────────

func TestTokenizeRoundTrip(t *testing.T) {
	patterns := []string{
		"",
		"#,##0.00",
		"¤#,##0.00",
		"$#,##0",
		"#0.##%",
		"yyyy-MM-dd",
		"yyyy-MM-dd HH:mm:ss",
		"HH:mm",
		"%{value}",
		"Total: {amount}",
		"{missing_close",
		"{{{}",
		"abc",
		"0.00 €",
		"v1.x",
	}
	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			toks := Tokenize(pattern)
			var sb strings.Builder
			lastPos := -1
			for _, tok := range toks {
				assert.Greater(t, tok.Pos, lastPos, "positions must be strictly increasing")
				lastPos = tok.Pos
				sb.WriteString(tok.Text)
			}
			assert.Equal(t, pattern, sb.String(), "token texts must reconstruct the pattern")
		})
	}
}

func TestTokenizePartition(t *testing.T) {
	// Every code point belongs to exactly one token.
	pattern := "¤#,##0.00 on yyyy-MM-dd {at} HH:mm"
	toks := Tokenize(pattern)
	next := 0
	for _, tok := range toks {
		require.Equal(t, next, tok.Pos, "token %q must start where the previous ended", tok.Text)
		next += len([]rune(tok.Text))
	}
	require.Equal(t, len([]rune(pattern)), next)
}

// ── classification ────────────────────────────────────────────────────────────

func TestTokenizeKinds(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    []Token
	}{
		{
			name:    "plain literals are one token per character",
			pattern: "abc",
			want: []Token{
				{Literal, "a", 0},
				{Literal, "b", 1},
				{Literal, "c", 2},
			},
		},
		{
			name:    "grouped number with decimals",
			pattern: "#,##0.00",
			want: []Token{
				{NumberComponent, "#,##0", 0},
				{Separator, ".", 5},
				{NumberComponent, "00", 6},
			},
		},
		{
			name:    "currency marker is a single-character token",
			pattern: "¤#,##0.00",
			want: []Token{
				{CurrencySymbol, "¤", 0},
				{NumberComponent, "#,##0", 1},
				{Separator, ".", 6},
				{NumberComponent, "00", 7},
			},
		},
		{
			name:    "date components split per run",
			pattern: "yyyy-MM-dd",
			want: []Token{
				{DateComponent, "yyyy", 0},
				{Literal, "-", 4},
				{DateComponent, "MM", 5},
				{Literal, "-", 7},
				{DateComponent, "dd", 8},
			},
		},
		{
			name:    "time components",
			pattern: "HH:mm:ss",
			want: []Token{
				{TimeComponent, "HH", 0},
				{Literal, ":", 2},
				{TimeComponent, "mm", 3},
				{Literal, ":", 5},
				{TimeComponent, "ss", 6},
			},
		},
		{
			name:    "text placeholder with sigil",
			pattern: "%{value}",
			want: []Token{
				{Literal, "%", 0},
				{BraceOpen, "{", 1},
				{TextPlaceholder, "value", 2},
				{BraceClose, "}", 7},
			},
		},
		{
			name:    "percent stays literal in numeric pattern",
			pattern: "#0.##%",
			want: []Token{
				{NumberComponent, "#0", 0},
				{Separator, ".", 2},
				{NumberComponent, "##", 3},
				{Literal, "%", 5},
			},
		},
		{
			name:    "dot outside numeric context is a literal",
			pattern: "v1.x",
			want: []Token{
				{Literal, "v", 0},
				{Literal, "1", 1},
				{Literal, ".", 2},
				{Literal, "x", 3},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Tokenize(tc.pattern)
			require.Len(t, got, len(tc.want))
			for i := range tc.want {
				assert.Equal(t, tc.want[i], got[i], "token %d", i)
			}
		})
	}
}

func TestTokenizeEmpty(t *testing.T) {
	assert.Empty(t, Tokenize(""))
}

func TestTokenizeMalformedBraces(t *testing.T) {
	// Tokenization is total: malformed braces still tokenize.
	toks := Tokenize("{{{}")
	require.Len(t, toks, 4)
	assert.Equal(t, BraceOpen, toks[0].Kind)
	assert.Equal(t, BraceOpen, toks[1].Kind)
	assert.Equal(t, BraceOpen, toks[2].Kind)
	assert.Equal(t, BraceClose, toks[3].Kind)

	toks = Tokenize("}")
	require.Len(t, toks, 1)
	assert.Equal(t, BraceClose, toks[0].Kind)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "number_component", NumberComponent.String())
	assert.Equal(t, "brace_open", BraceOpen.String())
	assert.Equal(t, "text_placeholder", TextPlaceholder.String())
}
