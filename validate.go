package patfmt

import (
	"fmt"

	"github.com/reportkit/go-patfmt/diag"
	"github.com/reportkit/go-patfmt/token"
)

// Validate checks a pattern for structural well-formedness.  It returns nil
// for a valid pattern and a [*diag.ParseError] — message, position, context
// snippet, suggestions all populated — for an invalid one.
func Validate(pattern string) error {
	if perr := validatePattern(pattern, token.Tokenize(pattern), FormatOptions{}); perr != nil {
		return perr
	}
	return nil
}

// validatePattern runs the ordered structural checks, short-circuiting on
// the first failure:
//
//  1. empty pattern
//  2. brace balance
//  3. nonsensical repeated structural runs
//  4. asserted type vs detected type
//  5. strict-mode restrictions (never more permissive than the default)
func validatePattern(pattern string, toks []token.Token, opts FormatOptions) *diag.ParseError {
	if pattern == "" {
		return diag.NewParseError(diag.EmptyPattern, pattern, 0, "Parse failed: empty pattern")
	}

	if perr := checkBraceBalance(pattern, toks); perr != nil {
		return perr
	}

	if perr := checkRepeatedRuns(pattern); perr != nil {
		return perr
	}

	if opts.Type != "" {
		if detected := DetectType(pattern); detected != opts.Type {
			return diag.NewParseError(diag.TypeMismatch, pattern, 0,
				fmt.Sprintf("type mismatch: pattern detected as %s, caller asserted %s", detected, opts.Type))
		}
	}

	if opts.Strict {
		if perr := checkStrict(pattern, toks); perr != nil {
			return perr
		}
	}
	return nil
}

// checkBraceBalance verifies placeholder braces pair up.  The diagnostic
// points at the first unmatched brace: a stray '}' is reported where it
// occurs; an unclosed '{' is reported at the earliest open that never
// closes.  Pathological runs like "{{{}" are therefore reported as
// unbalanced rather than as generic syntax errors — one rule, applied
// uniformly.
func checkBraceBalance(pattern string, toks []token.Token) *diag.ParseError {
	var openStack []int
	for _, tok := range toks {
		switch tok.Kind {
		case token.BraceOpen:
			openStack = append(openStack, tok.Pos)
		case token.BraceClose:
			if len(openStack) == 0 {
				return diag.NewParseError(diag.UnbalancedBraces, pattern, tok.Pos,
					"Unbalanced braces: unexpected '}' with no matching '{'")
			}
			openStack = openStack[:len(openStack)-1]
		}
	}
	if len(openStack) > 0 {
		return diag.NewParseError(diag.UnbalancedBraces, pattern, openStack[0],
			"Unbalanced braces: '{' is never closed")
	}
	return nil
}

// repeatedRunLimit is the length at which a run of identical structural
// symbols stops being a plausible pattern and becomes garbage ("....",
// ",,,,", "%%%").
const repeatedRunLimit = 3

// checkRepeatedRuns rejects runs of identical separator or percent symbols
// long enough to be unambiguous garbage.  Digit-placeholder and date/time
// runs of any length stay legal — "yyyy" and "00000" are meaningful.
func checkRepeatedRuns(pattern string) *diag.ParseError {
	var prev rune
	runLen := 0
	for i, r := range []rune(pattern) {
		if r == prev && (r == ',' || r == '.' || r == '%') {
			runLen++
			if runLen == repeatedRunLimit {
				return diag.NewParseError(diag.InvalidSyntax, pattern, i-repeatedRunLimit+1,
					fmt.Sprintf("Invalid pattern syntax: repeated %q run", string(r)))
			}
		} else {
			runLen = 1
		}
		prev = r
	}
	return nil
}

// checkStrict applies the extra strict-mode rules:
//
//   - date/time symbols must not mix with digit placeholders or currency
//     markers (unrelated families in one pattern)
//   - placeholders must not be empty ("{}")
func checkStrict(pattern string, toks []token.Token) *diag.ParseError {
	tr := scanTraits(pattern)
	if (tr.date || tr.clock) && (tr.digit || tr.currency) {
		return diag.NewParseError(diag.InvalidSyntax, pattern, 0,
			"Invalid pattern syntax: date/time symbols mixed with numeric symbols")
	}
	for i, tok := range toks {
		if tok.Kind == token.BraceOpen &&
			i+1 < len(toks) && toks[i+1].Kind == token.BraceClose {
			return diag.NewParseError(diag.InvalidSyntax, pattern, tok.Pos,
				"Invalid pattern syntax: empty placeholder")
		}
	}
	return nil
}
