package render

import (
	"strings"

	"github.com/reportkit/go-patfmt/token"
)

// Lookup resolves a placeholder name to a replacement string.  It is the
// wiring point for callers that substitute named fields ("%{customer}")
// from an external source; a nil Lookup, or a miss, falls back to the
// runtime value's canonical string form.
type Lookup func(name string) (string, bool)

// Text compiles a tokenized text pattern ("%{value}", "Total: {amount}")
// into a formatter.  A brace pair — with or without a placeholder name — is
// one substitution site; everything else passes through verbatim.
//
// This is the most permissive family: it never fails, whatever the runtime
// value's type.
func Text(toks []token.Token, lookup Lookup) Func {
	own := make([]token.Token, len(toks))
	copy(own, toks)

	return func(v any, _ CallOptions) (string, error) {
		var sb strings.Builder
		depth := 0
		substituted := false

		for i, tok := range own {
			// A '%' immediately before '{' is the placeholder sigil
			// ("%{value}"), not display text.
			if tok.Kind == token.Literal && tok.Text == "%" &&
				i+1 < len(own) && own[i+1].Kind == token.BraceOpen {
				continue
			}
			switch tok.Kind {
			case token.BraceOpen:
				depth++
				substituted = false
			case token.BraceClose:
				if depth > 0 {
					depth--
					if !substituted {
						// Empty "{}" placeholder still substitutes the value.
						sb.WriteString(Stringify(v))
					}
				} else {
					// Stray close brace (tokenizer is total; the validator
					// rejects this upstream) — pass through.
					sb.WriteString(tok.Text)
				}
			case token.TextPlaceholder:
				if lookup != nil {
					if s, ok := lookup(tok.Text); ok {
						sb.WriteString(s)
						substituted = true
						continue
					}
				}
				sb.WriteString(Stringify(v))
				substituted = true
			default:
				if depth == 0 {
					sb.WriteString(tok.Text)
				}
			}
		}
		return sb.String(), nil
	}
}
