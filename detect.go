package patfmt

import "github.com/reportkit/go-patfmt/token"

// patternTraits holds the character-class flags one scan of a pattern
// produces.  Detection works on these flags alone — no tokenization — so it
// stays cheap enough to run on every parse.
type patternTraits struct {
	currency bool // ¤ $ € £ ¥ anywhere
	percent  bool // literal '%', excluding the "%{" placeholder sigil
	date     bool // y M d
	clock    bool // H h m s
	digit    bool // # 0
	brace    bool // a '{' with a later '}'
}

// scanTraits performs the single character-class pass over pattern.
func scanTraits(pattern string) patternTraits {
	var tr patternTraits
	runes := []rune(pattern)
	openSeen := false
	for i, r := range runes {
		switch {
		case token.IsCurrencyRune(r):
			tr.currency = true
		case r == '%':
			// "%{name}" is a text placeholder sigil, not a percent sign.
			if i+1 >= len(runes) || runes[i+1] != '{' {
				tr.percent = true
			}
		case token.IsDateRune(r):
			tr.date = true
		case token.IsTimeRune(r):
			tr.clock = true
		case r == '#' || r == '0':
			tr.digit = true
		case r == '{':
			openSeen = true
		case r == '}':
			if openSeen {
				tr.brace = true
			}
		}
	}
	return tr
}

// DetectType classifies a pattern into its semantic family by scanning
// character classes.  It never fails; unrecognized input (including the
// empty string) yields [TypeCustom].  Note that [Validate] still rejects the
// empty string — detection and validation are independent judgments.
//
// Precedence, first match wins:
//
//  1. currency — a currency marker anywhere overrides everything
//  2. percentage — a literal '%'
//  3. datetime — both date (y, M, d) and time (H, h, m, s) symbols
//  4. date — date symbols without clock symbols or digit placeholders
//  5. time — clock symbols without date symbols or digit placeholders
//  6. text — a brace-delimited placeholder, with or without a leading '%'
//  7. number — digit placeholders without any other family's symbols
//  8. custom — nothing matched
//
// Currency and percent markers are unambiguous, so they override
// numeric-looking structure; datetime is checked before date and time to
// catch combined patterns.
func DetectType(pattern string) FormatType {
	tr := scanTraits(pattern)
	switch {
	case tr.currency:
		return TypeCurrency
	case tr.percent:
		return TypePercentage
	case tr.date && tr.clock:
		return TypeDateTime
	case tr.date && !tr.digit && !tr.brace:
		return TypeDate
	case tr.clock && !tr.digit && !tr.brace:
		return TypeTime
	case tr.brace:
		return TypeText
	case tr.digit && !tr.date && !tr.clock:
		return TypeNumber
	default:
		return TypeCustom
	}
}
