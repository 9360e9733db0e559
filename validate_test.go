package patfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reportkit/go-patfmt/diag"
)

// requireParseError asserts err is a *diag.ParseError with all four
// diagnostic fields populated, and returns it.
func requireParseError(t *testing.T, err error) *diag.ParseError {
	t.Helper()
	require.Error(t, err)
	var perr *diag.ParseError
	require.ErrorAs(t, err, &perr)
	assert.NotEmpty(t, perr.Message)
	assert.GreaterOrEqual(t, perr.Position, 0)
	require.NotEmpty(t, perr.Suggestions)
	return perr
}

func TestValidateEmptyPattern(t *testing.T) {
	perr := requireParseError(t, Validate(""))
	assert.Equal(t, diag.EmptyPattern, perr.Kind)
	assert.Contains(t, perr.Message, "Parse failed")
	assert.Contains(t, perr.Message, "empty")
	assert.Equal(t, 0, perr.Position)
}

func TestValidateUnbalancedBraces(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantPos int
	}{
		{"missing close", "{missing_close", 0},
		{"stray close", "abc}", 3},
		{"nested never closed", "a{b{c}", 1},
		{"pathological open run", "{{{}", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			perr := requireParseError(t, Validate(tc.pattern))
			assert.Equal(t, diag.UnbalancedBraces, perr.Kind)
			assert.Contains(t, perr.Message, "Unbalanced braces")
			assert.Equal(t, tc.wantPos, perr.Position)
			assert.NotEmpty(t, perr.Context)

			joined := diag.JoinSuggestions(perr.Suggestions)
			assert.Contains(t, joined, "brace")
			assert.Contains(t, joined, "matching")
		})
	}
}

func TestValidateRepeatedRuns(t *testing.T) {
	for _, p := range []string{"0....0", ",,,,", "0.00%%%"} {
		t.Run(p, func(t *testing.T) {
			perr := requireParseError(t, Validate(p))
			assert.Equal(t, diag.InvalidSyntax, perr.Kind)
			assert.Contains(t, perr.Message, "Invalid pattern syntax")
		})
	}
	// Long placeholder runs stay legal.
	assert.NoError(t, Validate("00000"))
	assert.NoError(t, Validate("yyyy"))
}

func TestValidateAcceptsWellFormed(t *testing.T) {
	for _, p := range []string{
		"#,##0.00", "¤#,##0.00", "#0.##%", "yyyy-MM-dd",
		"HH:mm:ss", "yyyy-MM-dd HH:mm:ss", "%{value}", "Total: {x}", "abc",
	} {
		assert.NoError(t, Validate(p), "pattern %q", p)
	}
}

func TestParseTypeMismatch(t *testing.T) {
	tests := []struct {
		pattern  string
		asserted FormatType
	}{
		{"#,##0.00", TypeDate},
		{"yyyy-MM-dd", TypeNumber},
		{"%{value}", TypeCurrency},
	}
	for _, tc := range tests {
		t.Run(tc.pattern, func(t *testing.T) {
			_, err := Parse(tc.pattern, FormatOptions{Type: tc.asserted})
			perr := requireParseError(t, err)
			assert.Equal(t, diag.TypeMismatch, perr.Kind)
			assert.Contains(t, perr.Message, "type mismatch")
		})
	}
}

func TestParseMatchingAssertedType(t *testing.T) {
	spec, err := Parse("#,##0.00", FormatOptions{Type: TypeNumber, NoCache: true})
	require.NoError(t, err)
	assert.Equal(t, TypeNumber, spec.Type)
}

func TestStrictMode(t *testing.T) {
	// Strict rejects family mixing and empty placeholders.
	for _, p := range []string{"yyyy#0", "¤ yyyy", "a{}b"} {
		t.Run(p, func(t *testing.T) {
			_, err := Parse(p, FormatOptions{Strict: true, NoCache: true})
			perr := requireParseError(t, err)
			assert.Equal(t, diag.InvalidSyntax, perr.Kind)

			// Never more permissive than default: the same pattern passes
			// without strict.
			_, err = Parse(p, FormatOptions{NoCache: true})
			assert.NoError(t, err)
		})
	}

	// Ordinary single-family patterns pass strict validation.
	for _, p := range []string{"#,##0.00", "yyyy-MM-dd", "%{v}"} {
		_, err := Parse(p, FormatOptions{Strict: true, NoCache: true})
		assert.NoError(t, err, "pattern %q", p)
	}
}
