// Package diag defines the structured diagnostics produced by the pattern
// validator and by compiled formatters.
//
// A ParseError always carries four populated fields: a human-readable
// message, the code-point position of the problem, a context snippet of the
// pattern around that position, and at least one actionable suggestion.
// Callers render cells with a fallback on any diagnostic; nothing here is
// ever raised as a panic.
package diag

import (
	"fmt"
	"strings"
)

// Kind identifies the failure class of a diagnostic.
type Kind int

const (
	// EmptyPattern: the pattern string is zero-length.
	EmptyPattern Kind = iota
	// UnbalancedBraces: placeholder brace nesting does not close.
	UnbalancedBraces
	// InvalidSyntax: a structurally nonsensical symbol sequence.
	InvalidSyntax
	// TypeMismatch: the caller-asserted type disagrees with the detected one.
	TypeMismatch
	// InvalidValue: a compiled formatter received a runtime value
	// incompatible with its pattern family.
	InvalidValue
)

var kindNames = map[Kind]string{
	EmptyPattern:     "empty_pattern",
	UnbalancedBraces: "unbalanced_braces",
	InvalidSyntax:    "invalid_syntax",
	TypeMismatch:     "type_mismatch",
	InvalidValue:     "invalid_value",
}

// String returns the snake_case name of the kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// snippetRadius is how many code points of pattern context are kept on each
// side of the error position.
const snippetRadius = 10

// ParseError describes why a pattern failed validation.
type ParseError struct {
	// Kind is the failure class.
	Kind Kind
	// Message is the human-readable description.  Stable substrings per
	// kind: "empty pattern", "Unbalanced braces", "Invalid pattern syntax",
	// "type mismatch".
	Message string
	// Position is the 0-based code-point offset of the problem.
	Position int
	// Context is the pattern substring around Position, clipped to the
	// string bounds.  Non-empty whenever the pattern itself is non-empty.
	Context string
	// Suggestions holds at least one actionable hint.
	Suggestions []string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at position %d", e.Message, e.Position)
}

// NewParseError builds a fully populated ParseError for the given pattern.
// The context snippet and the suggestion list (canned per-kind hints plus
// one derived from the character at pos) are filled in here so no caller
// can produce a half-built diagnostic.
func NewParseError(kind Kind, pattern string, pos int, msg string) *ParseError {
	return &ParseError{
		Kind:        kind,
		Message:     msg,
		Position:    pos,
		Context:     Snippet(pattern, pos, snippetRadius),
		Suggestions: suggestionsFor(kind, pattern, pos),
	}
}

// Snippet returns the substring of pattern within radius code points of pos,
// clipped to the string bounds.  The empty pattern yields "".
func Snippet(pattern string, pos, radius int) string {
	runes := []rune(pattern)
	if len(runes) == 0 {
		return ""
	}
	lo := pos - radius
	if lo < 0 {
		lo = 0
	}
	hi := pos + radius
	if hi > len(runes) {
		hi = len(runes)
	}
	if lo > len(runes) {
		lo = len(runes)
	}
	return string(runes[lo:hi])
}

// FormatError describes why a compiled formatter rejected a runtime value.
// It is distinct from ParseError: the pattern was fine, the value was not.
type FormatError struct {
	// Kind is the failure class, normally InvalidValue.
	Kind Kind
	// Message is the human-readable description.
	Message string
}

// Error implements the error interface.
func (e *FormatError) Error() string { return e.Message }

// NewValueError builds a FormatError for a runtime value of the wrong shape.
func NewValueError(family string, v any) *FormatError {
	return &FormatError{
		Kind:    InvalidValue,
		Message: fmt.Sprintf("invalid value for %s formatter: %T(%v)", family, v, v),
	}
}

// ── suggestions ───────────────────────────────────────────────────────────────

// canned maps each diagnostic kind to its fixed hints.  One dynamic hint
// derived from the offending character is appended by suggestionsFor, keeping
// suggestion output deterministic and testable.
var canned = map[Kind][]string{
	EmptyPattern: {
		"provide a non-empty format pattern",
		"call PatternInfo() for examples of each pattern family",
	},
	UnbalancedBraces: {
		"add the matching brace so every '{' pairs with a '}'",
		"remove the stray brace if no placeholder was intended",
	},
	InvalidSyntax: {
		"remove the repeated structural symbols",
		"compare the pattern against the examples in PatternInfo()",
	},
	TypeMismatch: {
		"drop the explicit type option to use the detected type",
		"rewrite the pattern to match the asserted type's symbols",
	},
	InvalidValue: {
		"pass a value matching the pattern family",
	},
}

func suggestionsFor(kind Kind, pattern string, pos int) []string {
	base := canned[kind]
	out := make([]string, 0, len(base)+1)
	out = append(out, base...)

	runes := []rune(pattern)
	if pos >= 0 && pos < len(runes) {
		out = append(out, fmt.Sprintf("check the %q at position %d", string(runes[pos]), pos))
	}
	if len(out) == 0 {
		// Unreachable for known kinds, but the contract is "never empty".
		out = append(out, "check the pattern against PatternInfo() examples")
	}
	return out
}

// JoinSuggestions renders the suggestion list for single-line display.
func JoinSuggestions(s []string) string {
	return strings.Join(s, "; ")
}
